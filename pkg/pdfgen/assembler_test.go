package pdfgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePage records drawing instructions so tests can assert on layout
// without a PDF backend.
type fakePage struct {
	texts []TextSpec
	lines []LineSpec
	w, h  float64
}

func newFakePage() *fakePage {
	return &fakePage{w: 612, h: 792}
}

func (p *fakePage) DrawText(spec TextSpec)   { p.texts = append(p.texts, spec) }
func (p *fakePage) DrawLine(spec LineSpec)   { p.lines = append(p.lines, spec) }
func (p *fakePage) Size() (float64, float64) { return p.w, p.h }

func (p *fakePage) containsText(s string) bool {
	for _, t := range p.texts {
		if strings.Contains(t.Text, s) {
			return true
		}
	}
	return false
}

func TestDrawTextSectionConsumesFixedBudget(t *testing.T) {
	p := newFakePage()
	st := DefaultStyles()
	initialY := 500.0

	newY := drawTextSection(p, initialY, st, "Terms & Conditions", "Net 30")

	assert.Equal(t, initialY-2*st.LineHeight-st.SectionPad, newY)
	require.Len(t, p.texts, 2)
	assert.Equal(t, "Terms & Conditions", p.texts[0].Text)
	assert.Equal(t, st.Bold, p.texts[0].Font)
	assert.Equal(t, initialY, p.texts[0].Y)
	assert.Equal(t, "Net 30", p.texts[1].Text)
	assert.Equal(t, initialY-st.LineHeight, p.texts[1].Y)
}

func TestDrawTextSectionSkipsEmptyBody(t *testing.T) {
	p := newFakePage()
	st := DefaultStyles()
	initialY := 500.0

	newY := drawTextSection(p, initialY, st, "Scope of Work", "")

	assert.Equal(t, initialY, newY, "skipped section must leave the cursor unchanged")
	assert.Empty(t, p.texts)
}

func TestContractSkipsAbsentScopeOfWork(t *testing.T) {
	p := newFakePage()
	a := NewAssembler()

	doc := ContractDocument{
		Reference:  "CON-000007",
		Date:       "2026-08-30",
		Contractor: Party{Name: "Ray Builders"},
		Customer:   Party{Name: "Dana Holt"},
		Amount:     4500,
		Terms:      "Net 30",
	}
	a.assembleContract(p, doc)

	assert.False(t, p.containsText("Scope of Work"))
	assert.True(t, p.containsText("Terms & Conditions"))
	assert.True(t, p.containsText("Net 30"))
}

func TestContractTermsCursorBudget(t *testing.T) {
	p := newFakePage()
	st := DefaultStyles()

	// scope of work absent: the terms section starts exactly where the
	// scope section would have, and consumes only its own budget
	y := 400.0
	y = drawTextSection(p, y, st, "Scope of Work", "")
	after := drawTextSection(p, y, st, "Terms & Conditions", "Net 30")

	assert.Equal(t, 400.0-(2*st.LineHeight+st.SectionPad), after)
}

func TestDrawTitleCentersWithFixedOffset(t *testing.T) {
	p := newFakePage()
	st := DefaultStyles()

	newY := drawTitle(p, 742, st, "INVOICE")

	require.Len(t, p.texts, 1)
	assert.Equal(t, p.w/2-titleCenterOffset, p.texts[0].X)
	assert.Equal(t, st.Bold, p.texts[0].Font)
	assert.Equal(t, 742-2*st.LineHeight, newY)
}

func TestDrawLineItemsRowsAndBudget(t *testing.T) {
	p := newFakePage()
	st := DefaultStyles()
	items := []Item{
		{Description: "Labor", Quantity: 2, Rate: 50, Amount: 100},
		{Description: "Materials", Quantity: 1, Rate: 240.5, Amount: 240.5},
	}

	newY := drawLineItems(p, 600, st, items, p.w)

	// header (4 cells) + 2 rows x 4 cells
	assert.Len(t, p.texts, 12)
	assert.Len(t, p.lines, 1, "header rule")
	assert.Equal(t, 600-3*st.LineHeight-st.SectionPad, newY)
	assert.True(t, p.containsText("240.50"), "amounts use two-decimal display formatting")
	assert.True(t, p.containsText("Labor"))
}

func TestDrawTotalsBlock(t *testing.T) {
	p := newFakePage()
	st := DefaultStyles()
	totals := Totals{Subtotal: 100, TaxRate: 10, TaxAmount: 10, Total: 110}

	newY := drawTotals(p, 400, st, totals, p.w)

	assert.Equal(t, 400-3*st.LineHeight-st.SectionPad, newY)
	assert.True(t, p.containsText("Tax (10%)"))
	assert.True(t, p.containsText("110.00"))
}

func TestDrawSignaturesUsesFixedOffsets(t *testing.T) {
	p := newFakePage()
	st := DefaultStyles()

	newY := drawSignatures(p, 200, st)

	require.Len(t, p.lines, 2)
	assert.Equal(t, float64(signContractorX1), p.lines[0].X1)
	assert.Equal(t, float64(signContractorX2), p.lines[0].X2)
	assert.Equal(t, float64(signCustomerX1), p.lines[1].X1)
	assert.Equal(t, float64(signCustomerX2), p.lines[1].X2)
	assert.Equal(t, 200-3*st.LineHeight-st.SectionPad, newY)
	assert.True(t, p.containsText("Contractor Signature"))
	assert.True(t, p.containsText("Customer Signature"))
}

func TestAssembleInvoiceSectionOrder(t *testing.T) {
	p := newFakePage()
	a := NewAssembler()

	doc := InvoiceDocument{
		Reference:  "INV-000012",
		Date:       "2026-08-01",
		DueDate:    "2026-08-31",
		Contractor: Party{Name: "Ray Builders", Email: "ray@example.com"},
		Customer:   Party{Name: "Dana Holt"},
		Items:      []Item{{Description: "Labor", Quantity: 2, Rate: 50, Amount: 100}},
		Totals:     Totals{Subtotal: 100, TaxRate: 10, TaxAmount: 10, Total: 110},
		Notes:      "Thanks for your business",
	}
	a.assembleInvoice(p, doc)

	// title first, then every later section strictly below it
	require.NotEmpty(t, p.texts)
	assert.Equal(t, "INVOICE", p.texts[0].Text)
	for _, spec := range p.texts[1:] {
		assert.Less(t, spec.Y, p.texts[0].Y)
	}
	assert.True(t, p.containsText("Reference: INV-000012"))
	assert.True(t, p.containsText("Due: 2026-08-31"))
	assert.True(t, p.containsText("Thanks for your business"))
	assert.False(t, p.containsText("Terms & Conditions"), "absent terms section is skipped")
}

func TestRenderEstimateProducesPDFBytes(t *testing.T) {
	a := NewAssembler()

	out, err := a.RenderEstimate(EstimateDocument{
		Reference:  "EST-000003",
		Date:       "2026-08-15",
		Contractor: Party{Name: "Ray Builders"},
		Customer:   Party{Name: "Dana Holt"},
		Items:      []Item{{Description: "Labor", Quantity: 2, Rate: 50, Amount: 100}},
		Totals:     Totals{Subtotal: 100, TaxRate: 10, TaxAmount: 10, Total: 110},
	})

	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(string(out[:5]), "%PDF-"))
}
