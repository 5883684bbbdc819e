package pdfgen

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// pdfDocument adapts gofpdf to the Page interface. Section coordinates are
// bottom-left origin; gofpdf draws from the top-left, so Y is flipped here.
type pdfDocument struct {
	fpdf   *gofpdf.Fpdf
	width  float64
	height float64
}

// newLetterDocument creates a single-page US-Letter portrait document.
// Auto page breaks are disabled: the assembler is a single-page walk and
// overflow is a documented limitation, not a layout trigger.
func newLetterDocument() *pdfDocument {
	f := gofpdf.New("P", "pt", "Letter", "")
	f.SetAutoPageBreak(false, 0)
	f.AddPage()
	w, h := f.GetPageSize()
	return &pdfDocument{fpdf: f, width: w, height: h}
}

func (d *pdfDocument) DrawText(spec TextSpec) {
	style := ""
	if spec.Font == FontBold {
		style = "B"
	}
	size := spec.Size
	if size <= 0 {
		size = DefaultStyles().FontSize
	}
	d.fpdf.SetFont("Helvetica", style, size)
	d.fpdf.Text(spec.X, d.height-spec.Y, spec.Text)
}

func (d *pdfDocument) DrawLine(spec LineSpec) {
	if spec.Width > 0 {
		d.fpdf.SetLineWidth(spec.Width)
	}
	d.fpdf.Line(spec.X1, d.height-spec.Y1, spec.X2, d.height-spec.Y2)
}

func (d *pdfDocument) Size() (float64, float64) {
	return d.width, d.height
}

// Bytes serializes the document to a PDF byte stream.
func (d *pdfDocument) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.fpdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdfgen: failed to serialize document: %w", err)
	}
	return buf.Bytes(), nil
}
