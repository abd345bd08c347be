package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwestra/zzpcheck/internal/handler"
	"github.com/mwestra/zzpcheck/internal/i18n"
	"github.com/mwestra/zzpcheck/internal/pdf"
	"github.com/mwestra/zzpcheck/internal/repository"
	"github.com/mwestra/zzpcheck/internal/router"
	"github.com/mwestra/zzpcheck/internal/service"
)

func newTestServer(t *testing.T) (http.Handler, string) {
	t.Helper()
	bundle, err := i18n.NewBundle("nl")
	require.NoError(t, err)

	dir := t.TempDir()
	repo := repository.NewSubmissionRepo(dir, bundle, pdf.NewRenderer(), "nl")
	require.NoError(t, repo.EnsureDir())

	svc := service.NewChecklistService(bundle, repo)
	h := handler.NewChecklistHandler(svc, bundle, "test-secret")
	return router.New(h), dir
}

func submitForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func fullForm(lang string) url.Values {
	form := url.Values{}
	form.Set("language", lang)
	form.Set("contractor_name", "Jane Doe")
	form.Set("contractor_company", "Doe Ontwerp")
	form.Set("client_name", "Acme BV")
	form.Set("project_name", "Website redesign")
	form.Set("notes", "Geen bijzonderheden.")
	for _, id := range []string{"multiple_clients", "controls_schedule", "provides_tools", "entrepreneurial_risk", "can_substitute", "sets_rates"} {
		form.Set(id, "yes")
	}
	return form
}

func storedFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestSubmitEnglishStoresFullArtifactSet(t *testing.T) {
	srv, dir := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, submitForm(fullForm("en")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Regexp(t, `^attachment; filename="\d{8}_\d{6}_Jane_Doe_en\.pdf"$`, rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))

	files := storedFiles(t, dir)
	require.Len(t, files, 3)

	var jsonName string
	var sawFallback bool
	for _, name := range files {
		if strings.HasSuffix(name, "_Jane_Doe_en.json") {
			jsonName = name
		}
		if strings.HasSuffix(name, "_Jane_Doe_nl.pdf") {
			sawFallback = true
		}
	}
	require.NotEmpty(t, jsonName, "expected a JSON snapshot, got %v", files)
	assert.True(t, sawFallback, "expected a Dutch archival copy, got %v", files)

	raw, err := os.ReadFile(filepath.Join(dir, jsonName))
	require.NoError(t, err)
	var snap map[string]string
	require.NoError(t, json.Unmarshal(raw, &snap))
	assert.Equal(t, "yes", snap["multiple_clients"])
	assert.Equal(t, "en", snap["language"])
}

func TestSubmitDutchSkipsArchivalCopy(t *testing.T) {
	srv, dir := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, submitForm(fullForm("nl")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Regexp(t, `filename="\d{8}_\d{6}_Jane_Doe_nl\.pdf"`, rec.Header().Get("Content-Disposition"))

	files := storedFiles(t, dir)
	require.Len(t, files, 2, "no duplicate fallback copy expected, got %v", files)
}

func TestSubmitUnknownLanguageUsesDefault(t *testing.T) {
	srv, dir := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, submitForm(fullForm("fr")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Regexp(t, `filename="\d{8}_\d{6}_Jane_Doe_nl\.pdf"`, rec.Header().Get("Content-Disposition"))
	require.Len(t, storedFiles(t, dir), 2)
}

func TestSubmitBlankContractorName(t *testing.T) {
	srv, dir := newTestServer(t)

	form := fullForm("nl")
	form.Set("contractor_name", "")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, submitForm(form))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Regexp(t, `filename="\d{8}_\d{6}_anonymous_nl\.pdf"`, rec.Header().Get("Content-Disposition"))

	for _, name := range storedFiles(t, dir) {
		assert.Contains(t, name, "_anonymous_nl.")
	}
}

func TestFormPageLocalization(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name     string
		path     string
		contains string
	}{
		{name: "default is dutch", path: "/", contains: "Checklist zelfstandige zonder schijnzelfstandigheid"},
		{name: "english", path: "/?lang=en", contains: "Independent Contractor Checklist"},
		{name: "dutch", path: "/?lang=nl", contains: "Beantwoord elke vraag met Ja of Nee."},
		{name: "unsupported falls back", path: "/?lang=fr", contains: "Checklist zelfstandige zonder schijnzelfstandigheid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestFormPageListsQuestions(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?lang=en", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, id := range []string{"multiple_clients", "controls_schedule", "provides_tools", "entrepreneurial_risk", "can_substitute", "sets_rates"} {
		assert.Contains(t, body, `name="`+id+`"`)
	}
}

func TestSuccessNoticeShowsOnceAfterSubmit(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, submitForm(fullForm("en")))
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Checklist submitted. Your PDF download will begin shortly.")

	// The notice cookie is cleared on display.
	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "zzp_flash" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}
