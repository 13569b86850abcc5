package labels

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const labelFontFamily = "Helvetica"

// pdfMeasurer measures text against the document's live font metrics so the
// layout engine and the drawn output agree exactly.
type pdfMeasurer struct {
	doc *gofpdf.Fpdf
}

func (m pdfMeasurer) TextWidth(text string, fontSize float64) float64 {
	m.doc.SetFontSize(fontSize)
	return m.doc.GetStringWidth(text)
}

// ExportPDF lays every record onto the template grid and writes the document
// to w. Pages are US Letter portrait in inches; the label face is bold
// Helvetica sized per template.
func ExportPDF(records []LabelRecord, t Template, w io.Writer) (int, error) {
	if len(records) == 0 {
		return 0, errors.New("no records to export")
	}
	doc := gofpdf.New("P", "in", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)
	doc.SetFont(labelFontFamily, "B", t.FontSize)

	meas := pdfMeasurer{doc: doc}
	pages := 0
	for i, rec := range records {
		pos := Locate(i, t)
		for pages < pos.Page {
			doc.AddPage()
			pages++
		}
		for _, op := range LayoutCell(meas, t, pos, rec) {
			doc.SetFontSize(op.FontSize)
			doc.Text(op.X, op.Y, op.Text)
		}
	}
	if err := doc.Output(w); err != nil {
		return 0, fmt.Errorf("write pdf: %w", err)
	}
	return pages, nil
}

// ExportPDFFile renders the records into path, creating parent directories
// as needed.
func ExportPDFFile(records []LabelRecord, t Template, path string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	pages, err := ExportPDF(records, t, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return pages, err
}

// ExportFilename embeds the template identifier and the date, e.g.
// "mailing_labels_30-up_2026-08-28.pdf".
func ExportFilename(t Template, now time.Time) string {
	return fmt.Sprintf("mailing_labels_%s_%s.pdf", t.ID, now.Format("2006-01-02"))
}
