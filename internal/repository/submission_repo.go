// Package repository persists submissions as flat files: a PDF in the
// submitted language, a JSON snapshot, and an archival PDF in the fallback
// language when the two differ. There is no locking and no atomicity across
// the writes; a crash mid-save can leave a partial artifact set.
package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mwestra/zzpcheck/internal/i18n"
	"github.com/mwestra/zzpcheck/internal/models"
)

const anonymousName = "anonymous"

// Renderer turns a submission plus its language catalog into PDF bytes.
type Renderer interface {
	Render(sub *models.Submission, cat i18n.Catalog) ([]byte, error)
}

type SubmissionRepo struct {
	dir      string
	bundle   *i18n.Bundle
	renderer Renderer
	fallback string
	now      func() time.Time
}

func NewSubmissionRepo(dir string, bundle *i18n.Bundle, renderer Renderer, fallbackLang string) *SubmissionRepo {
	return &SubmissionRepo{
		dir:      dir,
		bundle:   bundle,
		renderer: renderer,
		fallback: fallbackLang,
		now:      time.Now,
	}
}

// EnsureDir creates the submissions directory if it does not exist.
func (r *SubmissionRepo) EnsureDir() error {
	return os.MkdirAll(r.dir, 0o755)
}

// Save writes the artifact set for one submission and returns the path of
// the primary-language PDF. The filename stem is captured once, so all
// artifacts of a save share the same timestamp token.
func (r *SubmissionRepo) Save(sub *models.Submission) (string, error) {
	stamp := r.now().UTC().Format("20060102_150405")
	safe := SafeName(sub.ContractorName)
	base := fmt.Sprintf("%s_%s_%s", stamp, safe, sub.Language)

	data, err := r.renderer.Render(sub, r.bundle.Catalog(sub.Language))
	if err != nil {
		return "", fmt.Errorf("render %s pdf: %w", sub.Language, err)
	}
	pdfPath := filepath.Join(r.dir, base+".pdf")
	if err := os.WriteFile(pdfPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}

	snap, err := encodeSnapshot(sub.Snapshot())
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(filepath.Join(r.dir, base+".json"), snap, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	// Archival copy: every submission yields a fallback-language PDF, so the
	// authoritative-language document always exists.
	if sub.Language != r.fallback {
		archival := sub.WithLanguage(r.fallback)
		data, err := r.renderer.Render(archival, r.bundle.Catalog(r.fallback))
		if err != nil {
			return "", fmt.Errorf("render %s pdf: %w", r.fallback, err)
		}
		archivalPath := filepath.Join(r.dir, fmt.Sprintf("%s_%s_%s.pdf", stamp, safe, r.fallback))
		if err := os.WriteFile(archivalPath, data, 0o644); err != nil {
			return "", fmt.Errorf("write archival pdf: %w", err)
		}
	}

	return pdfPath, nil
}

// SafeName makes a contractor name usable as a filename segment: spaces
// become underscores, an empty name becomes the anonymous placeholder.
func SafeName(name string) string {
	safe := strings.ReplaceAll(name, " ", "_")
	if safe == "" {
		return anonymousName
	}
	return safe
}

// encodeSnapshot writes indented UTF-8 JSON with non-ASCII characters kept
// literal, matching how the snapshot is meant to be read by humans.
func encodeSnapshot(snap map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
