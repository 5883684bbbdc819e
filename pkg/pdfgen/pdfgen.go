// Package pdfgen lays out contractor documents (estimates, invoices,
// contracts) onto a fixed-size page and serializes them to PDF bytes.
//
// Section functions depend only on the Page capability interface so the
// layout logic never touches the underlying drawing library.
package pdfgen

// Font is an opaque style handle resolved by the Page implementation.
type Font int

const (
	// FontRegular is the default body font.
	FontRegular Font = iota
	// FontBold is used for headings and emphasized values.
	FontBold
)

// TextSpec describes a single run of text at an absolute position.
// Y is measured from the bottom of the page, increasing upward.
type TextSpec struct {
	Text string
	X    float64
	Y    float64
	Size float64
	Font Font
}

// LineSpec describes a straight line between two absolute points.
type LineSpec struct {
	X1, Y1 float64
	X2, Y2 float64
	Width  float64
}

// Page is the drawing surface handed to section functions. Implementations
// own serialization; sections only emit drawing instructions.
type Page interface {
	DrawText(spec TextSpec)
	DrawLine(spec LineSpec)
	// Size returns the page width and height in points.
	Size() (width, height float64)
}

// Styles carries the shared layout constants threaded through every section.
type Styles struct {
	Regular    Font
	Bold       Font
	FontSize   float64
	LineHeight float64
	SectionPad float64
	Margin     float64
}

// DefaultStyles returns the layout constants used for US-Letter documents.
func DefaultStyles() Styles {
	return Styles{
		Regular:    FontRegular,
		Bold:       FontBold,
		FontSize:   11,
		LineHeight: 18,
		SectionPad: 10,
		Margin:     50,
	}
}
