// Package i18n holds the compiled-in language catalogs for the checklist
// form. Translations live in data.go; nothing is loaded from disk.
package i18n

import (
	"fmt"
	"strings"
)

// Question is one checklist question. IDs are shared across languages so an
// answer keyed by ID stays meaningful regardless of the catalog it was
// entered under.
type Question struct {
	ID   string
	Text string
}

// Catalog is the full set of user-facing strings for one language.
type Catalog struct {
	Title             string
	Description       string
	ContractorDetails string
	ClientDetails     string
	ProjectDetails    string
	ContractorName    string
	ContractorCompany string
	ClientName        string
	ProjectName       string
	LanguageLabel     string
	ChooseLanguage    string
	QuestionsIntro    string
	Questions         []Question
	AdditionalNotes   string
	Declaration       string
	DeclarationText   string
	DateLabel         string
	Submit            string
	Yes               string
	No                string
	SuccessMessage    string
	LanguageNotice    string
}

// Bundle is the read-only set of all catalogs plus the configured default
// language. Built once at startup and shared across requests.
type Bundle struct {
	catalogs    map[string]Catalog
	order       []string
	defaultLang string
}

// NewBundle builds the bundle with the given default language code.
// It fails if the default is not a supported language or if the catalogs
// disagree on question IDs or their order.
func NewBundle(defaultLang string) (*Bundle, error) {
	b := &Bundle{
		catalogs:    catalogs,
		order:       supportedOrder,
		defaultLang: strings.ToLower(defaultLang),
	}
	if _, ok := b.catalogs[b.defaultLang]; !ok {
		return nil, fmt.Errorf("unsupported default language %q", defaultLang)
	}
	if err := b.checkQuestionParity(); err != nil {
		return nil, err
	}
	return b, nil
}

// Resolve maps any string to a supported language code: the lowercased input
// if supported, the default otherwise. Never fails.
func (b *Bundle) Resolve(code string) string {
	code = strings.ToLower(code)
	if _, ok := b.catalogs[code]; ok {
		return code
	}
	return b.defaultLang
}

// Catalog returns the catalog for code, resolving unknown codes to the
// default language first.
func (b *Bundle) Catalog(code string) Catalog {
	return b.catalogs[b.Resolve(code)]
}

// Supported returns the supported language codes in stable order.
func (b *Bundle) Supported() []string {
	return append([]string(nil), b.order...)
}

// IsSupported reports whether code names a catalog.
func (b *Bundle) IsSupported(code string) bool {
	_, ok := b.catalogs[strings.ToLower(code)]
	return ok
}

// Default returns the configured default language code.
func (b *Bundle) Default() string {
	return b.defaultLang
}

func (b *Bundle) checkQuestionParity() error {
	ref := b.catalogs[b.order[0]].Questions
	for _, code := range b.order[1:] {
		qs := b.catalogs[code].Questions
		if len(qs) != len(ref) {
			return fmt.Errorf("catalog %s has %d questions, %s has %d", code, len(qs), b.order[0], len(ref))
		}
		for i := range qs {
			if qs[i].ID != ref[i].ID {
				return fmt.Errorf("catalog %s question %d has id %q, want %q", code, i, qs[i].ID, ref[i].ID)
			}
		}
	}
	return nil
}
