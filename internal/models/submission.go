package models

// Submission is one normalized checklist record. Answers is keyed by
// question ID and holds the raw posted value ("yes", "no", or whatever
// the client sent).
type Submission struct {
	ContractorName    string
	ContractorCompany string
	ClientName        string
	ProjectName       string
	Notes             string
	SubmittedAt       string
	Language          string
	Answers           map[string]string
}

// Snapshot flattens the submission into a single map, the shape stored as
// the JSON audit artifact next to the PDF.
func (s *Submission) Snapshot() map[string]string {
	snap := map[string]string{
		"contractor_name":    s.ContractorName,
		"contractor_company": s.ContractorCompany,
		"client_name":        s.ClientName,
		"project_name":       s.ProjectName,
		"notes":              s.Notes,
		"submitted_at":       s.SubmittedAt,
		"language":           s.Language,
	}
	for id, answer := range s.Answers {
		snap[id] = answer
	}
	return snap
}

// WithLanguage returns a copy of the submission with only the language
// overridden. Used for the fallback-language archival render.
func (s *Submission) WithLanguage(code string) *Submission {
	clone := *s
	clone.Language = code
	return &clone
}
