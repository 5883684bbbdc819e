package pdfgen

import "fmt"

// Layout constants shared by the section functions. Heights are fixed
// per-section budgets, not measured text metrics: very long text can run
// into the next section, which callers accept for the fixed content used.
const (
	titleFontSize   = 20
	headingFontSize = 12

	// naive centering offset: half of a typical 8-9 char title at 20pt
	titleCenterOffset = 60

	// signature columns use absolute offsets and ignore page width
	signContractorX1 = 50
	signContractorX2 = 250
	signCustomerX1   = 340
	signCustomerX2   = 540
)

// Each section function draws at the cursor and returns the new cursor
// position below the space it consumed.

// drawTitle centers the document title using a fixed-offset heuristic
// rather than true text measurement.
func drawTitle(p Page, y float64, st Styles, title string) float64 {
	width, _ := p.Size()
	p.DrawText(TextSpec{
		Text: title,
		X:    width/2 - titleCenterOffset,
		Y:    y,
		Size: titleFontSize,
		Font: st.Bold,
	})
	return y - 2*st.LineHeight
}

// drawMeta renders reference/date lines under the title, one per line.
func drawMeta(p Page, y float64, st Styles, lines []string) float64 {
	for i, line := range lines {
		p.DrawText(TextSpec{
			Text: line,
			X:    st.Margin,
			Y:    y - float64(i)*st.LineHeight,
			Size: st.FontSize,
			Font: st.Regular,
		})
	}
	return y - float64(len(lines))*st.LineHeight - st.SectionPad
}

// Party identifies one side of a document.
type Party struct {
	Name    string
	Company string
	Address string
	Phone   string
	Email   string
}

func (p Party) lines() []string {
	out := make([]string, 0, 5)
	for _, s := range []string{p.Name, p.Company, p.Address, p.Phone, p.Email} {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// drawParties renders the contractor and customer blocks in two columns.
// The budget is fixed at a heading plus five lines regardless of how many
// fields are present.
func drawParties(p Page, y float64, st Styles, contractor, customer Party) float64 {
	width, _ := p.Size()
	leftX := st.Margin
	rightX := width/2 + 20

	p.DrawText(TextSpec{Text: "FROM", X: leftX, Y: y, Size: headingFontSize, Font: st.Bold})
	p.DrawText(TextSpec{Text: "TO", X: rightX, Y: y, Size: headingFontSize, Font: st.Bold})

	for i, line := range contractor.lines() {
		p.DrawText(TextSpec{Text: line, X: leftX, Y: y - float64(i+1)*st.LineHeight, Size: st.FontSize, Font: st.Regular})
	}
	for i, line := range customer.lines() {
		p.DrawText(TextSpec{Text: line, X: rightX, Y: y - float64(i+1)*st.LineHeight, Size: st.FontSize, Font: st.Regular})
	}

	return y - 6*st.LineHeight - st.SectionPad
}

// Item is one billable row rendered in the line-item table.
type Item struct {
	Description string
	Quantity    float64
	Rate        float64
	Amount      float64
}

// drawLineItems renders the item table: bold header row, a rule, then one
// row per item. Column positions derive from the page width parameter.
func drawLineItems(p Page, y float64, st Styles, items []Item, width float64) float64 {
	descX := st.Margin
	qtyX := width - 230
	rateX := width - 160
	amountX := width - 90

	p.DrawText(TextSpec{Text: "Description", X: descX, Y: y, Size: st.FontSize, Font: st.Bold})
	p.DrawText(TextSpec{Text: "Qty", X: qtyX, Y: y, Size: st.FontSize, Font: st.Bold})
	p.DrawText(TextSpec{Text: "Rate", X: rateX, Y: y, Size: st.FontSize, Font: st.Bold})
	p.DrawText(TextSpec{Text: "Amount", X: amountX, Y: y, Size: st.FontSize, Font: st.Bold})

	ruleY := y - st.LineHeight/3
	p.DrawLine(LineSpec{X1: descX, Y1: ruleY, X2: width - st.Margin, Y2: ruleY, Width: 0.5})

	rowY := y
	for _, item := range items {
		rowY -= st.LineHeight
		p.DrawText(TextSpec{Text: item.Description, X: descX, Y: rowY, Size: st.FontSize, Font: st.Regular})
		p.DrawText(TextSpec{Text: formatQuantity(item.Quantity), X: qtyX, Y: rowY, Size: st.FontSize, Font: st.Regular})
		p.DrawText(TextSpec{Text: formatMoney(item.Rate), X: rateX, Y: rowY, Size: st.FontSize, Font: st.Regular})
		p.DrawText(TextSpec{Text: formatMoney(item.Amount), X: amountX, Y: rowY, Size: st.FontSize, Font: st.Regular})
	}

	return y - float64(len(items)+1)*st.LineHeight - st.SectionPad
}

// Totals carries the derived money summary for one document.
type Totals struct {
	Subtotal  float64
	TaxRate   float64
	TaxAmount float64
	Total     float64
}

// drawTotals renders the subtotal/tax/total block aligned to the right
// side of the content area.
func drawTotals(p Page, y float64, st Styles, totals Totals, width float64) float64 {
	labelX := width - 220
	valueX := width - 90

	rows := []struct {
		label string
		value string
		font  Font
	}{
		{"Subtotal", formatMoney(totals.Subtotal), st.Regular},
		{fmt.Sprintf("Tax (%s%%)", formatQuantity(totals.TaxRate)), formatMoney(totals.TaxAmount), st.Regular},
		{"Total", formatMoney(totals.Total), st.Bold},
	}

	rowY := y
	for _, row := range rows {
		p.DrawText(TextSpec{Text: row.label, X: labelX, Y: rowY, Size: st.FontSize, Font: row.font})
		p.DrawText(TextSpec{Text: row.value, X: valueX, Y: rowY, Size: st.FontSize, Font: row.font})
		rowY -= st.LineHeight
	}

	return y - 3*st.LineHeight - st.SectionPad
}

// drawAmountDue renders the contract amount in the fixed two-column layout
// shared with the signature block.
func drawAmountDue(p Page, y float64, st Styles, amount float64) float64 {
	p.DrawText(TextSpec{Text: "Contract Amount", X: signContractorX1, Y: y, Size: headingFontSize, Font: st.Bold})
	p.DrawText(TextSpec{Text: "$" + formatMoney(amount), X: signCustomerX1, Y: y, Size: headingFontSize, Font: st.Bold})
	return y - st.LineHeight - st.SectionPad
}

// drawTextSection renders an optional heading+body block (job description,
// scope of work, terms, notes). An empty body skips the section entirely,
// leaving the cursor unchanged.
func drawTextSection(p Page, y float64, st Styles, heading, body string) float64 {
	if body == "" {
		return y
	}

	p.DrawText(TextSpec{Text: heading, X: st.Margin, Y: y, Size: headingFontSize, Font: st.Bold})
	p.DrawText(TextSpec{Text: body, X: st.Margin, Y: y - st.LineHeight, Size: st.FontSize, Font: st.Regular})

	return y - 2*st.LineHeight - st.SectionPad
}

// drawSignatures renders the contractor/customer signature lines at fixed
// absolute offsets; it does not adapt to the page width.
func drawSignatures(p Page, y float64, st Styles) float64 {
	lineY := y - st.LineHeight
	p.DrawLine(LineSpec{X1: signContractorX1, Y1: lineY, X2: signContractorX2, Y2: lineY, Width: 0.75})
	p.DrawLine(LineSpec{X1: signCustomerX1, Y1: lineY, X2: signCustomerX2, Y2: lineY, Width: 0.75})

	labelY := lineY - st.LineHeight
	p.DrawText(TextSpec{Text: "Contractor Signature / Date", X: signContractorX1, Y: labelY, Size: st.FontSize, Font: st.Regular})
	p.DrawText(TextSpec{Text: "Customer Signature / Date", X: signCustomerX1, Y: labelY, Size: st.FontSize, Font: st.Regular})

	return y - 3*st.LineHeight - st.SectionPad
}

func formatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// formatQuantity trims trailing zeros so "2" stays "2" and "1.5" stays "1.5".
func formatQuantity(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
