package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	b, err := NewBundle("nl")
	require.NoError(t, err)

	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "supported en", code: "en", want: "en"},
		{name: "supported nl", code: "nl", want: "nl"},
		{name: "uppercase", code: "EN", want: "en"},
		{name: "mixed case", code: "Nl", want: "nl"},
		{name: "unsupported", code: "fr", want: "nl"},
		{name: "absent", code: "", want: "nl"},
		{name: "garbage", code: "not-a-language", want: "nl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Resolve(tt.code))
		})
	}
}

func TestResolveUsesConfiguredDefault(t *testing.T) {
	b, err := NewBundle("en")
	require.NoError(t, err)

	assert.Equal(t, "en", b.Resolve("de"))
	assert.Equal(t, "en", b.Default())
}

func TestNewBundleRejectsUnknownDefault(t *testing.T) {
	_, err := NewBundle("fr")
	require.Error(t, err)
}

func TestCatalogResolvesUnknownCodes(t *testing.T) {
	b, err := NewBundle("nl")
	require.NoError(t, err)

	assert.Equal(t, b.Catalog("nl"), b.Catalog("fr"))
	assert.NotEqual(t, b.Catalog("en"), b.Catalog("nl"))
}

func TestQuestionIDsMatchAcrossLanguages(t *testing.T) {
	b, err := NewBundle("nl")
	require.NoError(t, err)

	supported := b.Supported()
	require.NotEmpty(t, supported)

	ref := b.Catalog(supported[0]).Questions
	require.NotEmpty(t, ref)

	for _, code := range supported[1:] {
		qs := b.Catalog(code).Questions
		require.Len(t, qs, len(ref), "catalog %s", code)
		for i := range qs {
			assert.Equal(t, ref[i].ID, qs[i].ID, "catalog %s question %d", code, i)
			assert.NotEmpty(t, qs[i].Text, "catalog %s question %d", code, i)
		}
	}
}

func TestSupportedIsACopy(t *testing.T) {
	b, err := NewBundle("nl")
	require.NoError(t, err)

	s := b.Supported()
	s[0] = "xx"
	assert.NotEqual(t, "xx", b.Supported()[0])
}
