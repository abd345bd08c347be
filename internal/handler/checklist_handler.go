package handler

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mwestra/zzpcheck/internal/i18n"
	"github.com/mwestra/zzpcheck/internal/service"
)

//go:embed templates/index.html
var templateFS embed.FS

type ChecklistHandler struct {
	svc    *service.ChecklistService
	bundle *i18n.Bundle
	secret string
	tmpl   *template.Template
}

func NewChecklistHandler(svc *service.ChecklistService, bundle *i18n.Bundle, secret string) *ChecklistHandler {
	return &ChecklistHandler{
		svc:    svc,
		bundle: bundle,
		secret: secret,
		tmpl:   template.Must(template.ParseFS(templateFS, "templates/index.html")),
	}
}

type formPage struct {
	Language    string
	Catalog     i18n.Catalog
	Supported   []string
	CurrentDate string
	Notice      string
}

// Index serves the localized checklist form. ?lang= selects the language;
// anything unsupported falls back to the default.
func (h *ChecklistHandler) Index(w http.ResponseWriter, r *http.Request) {
	lang := h.bundle.Resolve(r.URL.Query().Get("lang"))
	page := formPage{
		Language:    lang,
		Catalog:     h.bundle.Catalog(lang),
		Supported:   h.bundle.Supported(),
		CurrentDate: time.Now().UTC().Format("2006-01-02"),
		Notice:      popFlash(w, r, h.secret),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, page); err != nil {
		log.Printf("render form page: %v", err)
	}
}

// Submit stores the submission and streams the primary PDF back as a
// download. The success notice rides along as a one-shot cookie and shows
// on the next form view.
func (h *ChecklistHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	pdfPath, cat, err := h.svc.Submit(r.PostForm)
	if err != nil {
		log.Printf("save submission: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to store submission")
		return
	}

	data, err := os.ReadFile(pdfPath)
	if err != nil {
		log.Printf("read stored pdf: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to read stored submission")
		return
	}

	setFlash(w, h.secret, cat.SuccessMessage)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filepath.Base(pdfPath)))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}
