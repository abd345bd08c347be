package service

import (
	"net/url"
	"strings"
	"time"

	"github.com/mwestra/zzpcheck/internal/i18n"
	"github.com/mwestra/zzpcheck/internal/models"
	"github.com/mwestra/zzpcheck/internal/repository"
)

const submittedAtLayout = "2006-01-02 15:04 UTC"

type ChecklistService struct {
	bundle *i18n.Bundle
	repo   *repository.SubmissionRepo
	now    func() time.Time
}

func NewChecklistService(bundle *i18n.Bundle, repo *repository.SubmissionRepo) *ChecklistService {
	return &ChecklistService{bundle: bundle, repo: repo, now: time.Now}
}

// Normalize builds a submission from raw form values. Missing fields become
// empty strings, text fields are trimmed, and the timestamp is stamped once
// here. Nothing is rejected: blank names and unknown languages are fine.
func (s *ChecklistService) Normalize(form url.Values) *models.Submission {
	lang := s.bundle.Resolve(form.Get("language"))
	cat := s.bundle.Catalog(lang)

	answers := make(map[string]string, len(cat.Questions))
	for _, q := range cat.Questions {
		answers[q.ID] = form.Get(q.ID)
	}

	return &models.Submission{
		ContractorName:    strings.TrimSpace(form.Get("contractor_name")),
		ContractorCompany: strings.TrimSpace(form.Get("contractor_company")),
		ClientName:        strings.TrimSpace(form.Get("client_name")),
		ProjectName:       strings.TrimSpace(form.Get("project_name")),
		Notes:             strings.TrimSpace(form.Get("notes")),
		SubmittedAt:       s.now().UTC().Format(submittedAtLayout),
		Language:          lang,
		Answers:           answers,
	}
}

// Submit normalizes and stores a submission. It returns the primary PDF
// path and the catalog the submission was resolved against, so the caller
// can localize its response.
func (s *ChecklistService) Submit(form url.Values) (string, i18n.Catalog, error) {
	sub := s.Normalize(form)
	path, err := s.repo.Save(sub)
	if err != nil {
		return "", i18n.Catalog{}, err
	}
	return path, s.bundle.Catalog(sub.Language), nil
}
