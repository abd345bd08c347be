// Package pdf renders a checklist submission into a paginated A4 document.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/mwestra/zzpcheck/internal/i18n"
	"github.com/mwestra/zzpcheck/internal/models"
)

// submittedAtLayout matches the human-readable stamp on submissions.
const submittedAtLayout = "2006-01-02 15:04 UTC"

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render lays out the submission top to bottom in catalog order and returns
// the PDF bytes. It performs no validation and no I/O; rendering the same
// submission twice yields identical bytes.
func (r *Renderer) Render(sub *models.Submission, cat i18n.Catalog) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)

	// Pin the document dates to the submission stamp, otherwise fpdf embeds
	// the wall clock and re-renders stop being byte-identical.
	ts, err := time.Parse(submittedAtLayout, sub.SubmittedAt)
	if err != nil {
		ts = time.Unix(0, 0).UTC()
	}
	doc.SetCreationDate(ts)
	doc.SetModificationDate(ts)

	tr := doc.UnicodeTranslatorFromDescriptor("")

	heading := func(text string) {
		doc.SetFont("Helvetica", "B", 12)
		doc.CellFormat(0, 8, tr(text), "", 1, "L", false, 0, "")
	}
	line := func(text string) {
		doc.MultiCell(0, 6, tr(text), "", "L", false)
	}

	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.MultiCell(0, 10, tr(cat.Title), "", "L", false)

	doc.SetFont("Helvetica", "", 12)
	line(cat.Description)
	doc.Ln(4)

	heading(cat.ContractorDetails)
	doc.SetFont("Helvetica", "", 11)
	line(fmt.Sprintf("%s: %s", cat.ContractorName, sub.ContractorName))
	line(fmt.Sprintf("%s: %s", cat.ContractorCompany, sub.ContractorCompany))
	doc.Ln(2)

	heading(cat.ClientDetails)
	doc.SetFont("Helvetica", "", 11)
	line(fmt.Sprintf("%s: %s", cat.ClientName, sub.ClientName))
	doc.Ln(2)

	heading(cat.ProjectDetails)
	doc.SetFont("Helvetica", "", 11)
	line(fmt.Sprintf("%s: %s", cat.ProjectName, sub.ProjectName))
	doc.Ln(4)

	heading(cat.QuestionsIntro)
	doc.SetFont("Helvetica", "", 11)
	for _, q := range cat.Questions {
		answer := sub.Answers[q.ID]
		switch answer {
		case "yes":
			answer = cat.Yes
		case "no":
			answer = cat.No
		}
		line(fmt.Sprintf("- %s : %s", q.Text, answer))
	}
	doc.Ln(2)

	heading(cat.AdditionalNotes)
	doc.SetFont("Helvetica", "", 11)
	line(sub.Notes)
	doc.Ln(2)

	heading(cat.Declaration)
	doc.SetFont("Helvetica", "", 11)
	line(cat.DeclarationText)
	line(fmt.Sprintf("%s: %s", cat.DateLabel, sub.SubmittedAt))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
