package pdfexport

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	jobapimodels "smartjob-backend/models/api/job"
)

// GenerateJobPosting renders a printable one-page job posting.
func GenerateJobPosting(job jobapimodels.JobView, companyName string) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateJobPosting panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(job.Title, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// header
	if companyName != "" {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.CellFormat(0, 6, tr(companyName), "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 9, tr(job.Title), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range jobSummary(job) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(45, 6, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(row[1]), "", "L", false)
	}

	section(pdf, tr, "Description", job.Description)
	section(pdf, tr, "Qualification", job.Qualification)
	if len(job.Skills) > 0 {
		section(pdf, tr, "Skills", strings.Join(job.Skills, ", "))
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func jobSummary(job jobapimodels.JobView) [][2]string {
	return [][2]string{
		{"Location", job.Location},
		{"Job type", string(job.JobType)},
		{"Experience", string(job.ExperienceLevel)},
		{"Salary", SalaryRange(job.SalaryMin, job.SalaryMax)},
	}
}

func section(pdf *fpdf.Fpdf, tr func(string) string, title, body string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 7, tr(title), "B", 1, "L", false, 0, "")
	pdf.Ln(1)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 5.5, tr(body), "", "L", false)
}

func SalaryRange(min, max int) string {
	switch {
	case min > 0 && max > 0:
		return fmt.Sprintf("%d - %d", min, max)
	case min > 0:
		return fmt.Sprintf("from %d", min)
	case max > 0:
		return fmt.Sprintf("up to %d", max)
	}
	return "not specified"
}
