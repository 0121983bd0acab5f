// Package document renders completed birth registrations into printable
// certificates.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// Certificate carries the fields printed on a birth certificate. The issue
// date is stamped at render time.
type Certificate struct {
	ChildName       string
	DateOfBirth     string
	Sex             string
	FatherName      string
	MotherName      string
	ReferenceNumber string
}

// Renderer produces a certificate artifact and returns its location.
// Implementations must fail with an error rather than hang; the engine treats
// failures as non-fatal and completes the workflow without a document.
type Renderer interface {
	Render(cert Certificate) (string, error)
}

// PDFRenderer writes A4 certificates under a fixed output directory.
type PDFRenderer struct {
	outDir string
}

// NewPDFRenderer returns a renderer rooted at outDir.
func NewPDFRenderer(outDir string) *PDFRenderer {
	return &PDFRenderer{outDir: outDir}
}

// OutputPath derives the on-disk filename for a reference number.
func (r *PDFRenderer) OutputPath(referenceNumber string) string {
	name := strings.ReplaceAll(referenceNumber, "/", "_") + ".pdf"
	return filepath.Join(r.outDir, name)
}

// Render writes the certificate PDF: national header, title, and labeled rows
// for each registered field. The filename is derived from the reference number.
func (r *PDFRenderer) Render(cert Certificate) (string, error) {
	outputPath := r.OutputPath(cert.ReferenceNumber)
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	pdf := fpdf.New("P", "cm", "A4", "")
	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(0, 2)
	pdf.CellFormat(pageWidth, 0.8, "Federal Democratic Republic of Ethiopia", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(0, 3.5)
	pdf.CellFormat(pageWidth, 1, "Birth Certificate", "", 1, "C", false, 0, "")

	pdf.SetLineWidth(0.03)
	pdf.Line(2, 5, pageWidth-2, 5)

	rows := []struct {
		label string
		value string
		gap   float64
	}{
		{"Child Name:", cert.ChildName, 0.8},
		{"Date of Birth:", cert.DateOfBirth, 0.8},
		{"Sex:", cert.Sex, 1.2},
		{"Father Name:", cert.FatherName, 0.8},
		{"Mother Name:", cert.MotherName, 1.2},
		{"Reference Number:", cert.ReferenceNumber, 0.8},
		{"Issue Date:", time.Now().Format("02/01/2006"), 0.8},
	}

	y := 6.0
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(3, y, row.label)
		pdf.SetFont("Helvetica", "", 12)
		pdf.Text(7, y, row.value)
		y += row.gap
	}

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(0, 27.5)
	pdf.CellFormat(pageWidth, 0.5, "Kebele Intake Service", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return "", fmt.Errorf("write certificate pdf: %w", err)
	}
	return outputPath, nil
}
