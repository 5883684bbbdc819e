package ledger

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// ErrLastLineItem signals a rejected removal that would empty the ledger.
// It is recoverable: the ledger is left unchanged.
var ErrLastLineItem = errors.New("ledger: cannot delete the last line item")

// LineItem is one billable row on an estimate or invoice.
// Amount is derived: it always equals Quantity * Rate and is recomputed by
// every mutator, never set directly.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// DocumentTotals holds the derived money fields for one document.
type DocumentTotals struct {
	Subtotal  float64 `json:"subtotal"`
	TaxRate   float64 `json:"tax_rate"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`
}

var itemSeq atomic.Int64

// nextItemID returns a session-unique, monotonic identifier. Persisted IDs
// are assigned by the repository on save; these only need to be unique while
// a document is being edited.
func nextItemID() string {
	return fmt.Sprintf("li-%d-%d", time.Now().UnixNano(), itemSeq.Add(1))
}

// Ledger is the in-memory collection of line items for one document being
// edited. It has a single logical owner per editing session and is not safe
// for concurrent use.
type Ledger struct {
	items []LineItem
}

// New creates a ledger seeded with the given items. Passing nothing starts
// an empty ledger; most callers immediately AddItem once.
func New(items ...LineItem) *Ledger {
	l := &Ledger{items: make([]LineItem, len(items))}
	copy(l.items, items)
	return l
}

// Items returns a copy of the current line items in order.
func (l *Ledger) Items() []LineItem {
	out := make([]LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of line items.
func (l *Ledger) Len() int {
	return len(l.items)
}

// AddItem appends a zeroed line item with a fresh identifier and returns it.
func (l *Ledger) AddItem() LineItem {
	item := LineItem{ID: nextItemID()}
	l.items = append(l.items, item)
	return item
}

// UpdateDescription sets the description of the item matching id.
// An unknown id is a no-op and returns false; that indicates the caller's
// view of the ledger has drifted out of sync.
func (l *Ledger) UpdateDescription(id, description string) bool {
	idx := l.find(id)
	if idx < 0 {
		return false
	}
	l.items[idx].Description = description
	return true
}

// UpdateQuantity sets the quantity of the item matching id and recomputes
// its amount from the current rate. Unknown ids are a no-op returning false.
func (l *Ledger) UpdateQuantity(id string, quantity float64) bool {
	idx := l.find(id)
	if idx < 0 {
		return false
	}
	l.items[idx].Quantity = quantity
	l.items[idx].Amount = l.items[idx].Quantity * l.items[idx].Rate
	return true
}

// UpdateRate sets the rate of the item matching id and recomputes its amount
// from the current quantity. Unknown ids are a no-op returning false.
func (l *Ledger) UpdateRate(id string, rate float64) bool {
	idx := l.find(id)
	if idx < 0 {
		return false
	}
	l.items[idx].Rate = rate
	l.items[idx].Amount = l.items[idx].Quantity * l.items[idx].Rate
	return true
}

// RemoveItem deletes the item matching id. Removing the last remaining item
// is rejected with ErrLastLineItem and the ledger is left unchanged.
func (l *Ledger) RemoveItem(id string) error {
	idx := l.find(id)
	if idx < 0 {
		return nil
	}
	if len(l.items) <= 1 {
		return ErrLastLineItem
	}
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	return nil
}

// ComputeTotals derives the document totals for the ledger's current items.
func (l *Ledger) ComputeTotals(taxRatePercent float64) DocumentTotals {
	return ComputeTotals(l.items, taxRatePercent)
}

// ComputeTotals is the pure totals function: subtotal is the sum of item
// amounts, tax is subtotal * rate/100, total is their sum. It is idempotent
// and side-effect free; no rounding is applied to intermediate values.
func ComputeTotals(items []LineItem, taxRatePercent float64) DocumentTotals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Amount
	}

	taxAmount := subtotal * taxRatePercent / 100
	return DocumentTotals{
		Subtotal:  subtotal,
		TaxRate:   taxRatePercent,
		TaxAmount: taxAmount,
		Total:     subtotal + taxAmount,
	}
}

func (l *Ledger) find(id string) int {
	for i := range l.items {
		if l.items[i].ID == id {
			return i
		}
	}
	return -1
}
