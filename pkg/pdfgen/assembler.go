package pdfgen

// EstimateDocument is the resolved data rendered onto an estimate PDF.
type EstimateDocument struct {
	Reference      string
	Date           string
	Contractor     Party
	Customer       Party
	Items          []Item
	Totals         Totals
	JobDescription string
	ScopeOfWork    string
	Terms          string
}

// InvoiceDocument is the resolved data rendered onto an invoice PDF.
type InvoiceDocument struct {
	Reference  string
	Date       string
	DueDate    string
	Contractor Party
	Customer   Party
	Items      []Item
	Totals     Totals
	Notes      string
	Terms      string
}

// ContractDocument is the resolved data rendered onto a contract PDF.
type ContractDocument struct {
	Reference      string
	Date           string
	Contractor     Party
	Customer       Party
	Amount         float64
	JobDescription string
	ScopeOfWork    string
	Terms          string
}

// Assembler walks a vertical cursor down a page, rendering document
// sections in a fixed order. Inputs are assumed to be resolved and
// validated upstream; the assembler itself has no failure path beyond
// errors from the drawing backend.
type Assembler struct {
	styles Styles
}

// NewAssembler creates an assembler with the default Letter styles.
func NewAssembler() *Assembler {
	return &Assembler{styles: DefaultStyles()}
}

// RenderEstimate assembles an estimate onto a fresh Letter page and
// returns the PDF bytes.
func (a *Assembler) RenderEstimate(doc EstimateDocument) ([]byte, error) {
	page := newLetterDocument()
	a.assembleEstimate(page, doc)
	return page.Bytes()
}

// RenderInvoice assembles an invoice onto a fresh Letter page and returns
// the PDF bytes.
func (a *Assembler) RenderInvoice(doc InvoiceDocument) ([]byte, error) {
	page := newLetterDocument()
	a.assembleInvoice(page, doc)
	return page.Bytes()
}

// RenderContract assembles a contract onto a fresh Letter page and returns
// the PDF bytes.
func (a *Assembler) RenderContract(doc ContractDocument) ([]byte, error) {
	page := newLetterDocument()
	a.assembleContract(page, doc)
	return page.Bytes()
}

// The pipelines below are single-pass cursor walks: strictly ordered,
// no branching beyond skipped optional sections, one page assumed.

func (a *Assembler) assembleEstimate(p Page, doc EstimateDocument) {
	st := a.styles
	width, height := p.Size()

	y := height - st.Margin
	y = drawTitle(p, y, st, "ESTIMATE")
	y = drawMeta(p, y, st, metaLines(doc.Reference, "Date: "+doc.Date))
	y = drawParties(p, y, st, doc.Contractor, doc.Customer)
	y = drawLineItems(p, y, st, doc.Items, width)
	y = drawTotals(p, y, st, doc.Totals, width)
	y = drawTextSection(p, y, st, "Job Description", doc.JobDescription)
	y = drawTextSection(p, y, st, "Scope of Work", doc.ScopeOfWork)
	y = drawTextSection(p, y, st, "Terms & Conditions", doc.Terms)
	drawSignatures(p, y, st)
}

func (a *Assembler) assembleInvoice(p Page, doc InvoiceDocument) {
	st := a.styles
	width, height := p.Size()

	y := height - st.Margin
	y = drawTitle(p, y, st, "INVOICE")
	y = drawMeta(p, y, st, metaLines(doc.Reference, "Date: "+doc.Date, "Due: "+doc.DueDate))
	y = drawParties(p, y, st, doc.Contractor, doc.Customer)
	y = drawLineItems(p, y, st, doc.Items, width)
	y = drawTotals(p, y, st, doc.Totals, width)
	y = drawTextSection(p, y, st, "Notes", doc.Notes)
	y = drawTextSection(p, y, st, "Terms & Conditions", doc.Terms)
	drawSignatures(p, y, st)
}

func (a *Assembler) assembleContract(p Page, doc ContractDocument) {
	st := a.styles
	_, height := p.Size()

	y := height - st.Margin
	y = drawTitle(p, y, st, "CONTRACT")
	y = drawMeta(p, y, st, metaLines(doc.Reference, "Date: "+doc.Date))
	y = drawParties(p, y, st, doc.Contractor, doc.Customer)
	y = drawAmountDue(p, y, st, doc.Amount)
	y = drawTextSection(p, y, st, "Job Description", doc.JobDescription)
	y = drawTextSection(p, y, st, "Scope of Work", doc.ScopeOfWork)
	y = drawTextSection(p, y, st, "Terms & Conditions", doc.Terms)
	drawSignatures(p, y, st)
}

func metaLines(reference string, rest ...string) []string {
	lines := make([]string, 0, len(rest)+1)
	if reference != "" {
		lines = append(lines, "Reference: "+reference)
	}
	return append(lines, rest...)
}
