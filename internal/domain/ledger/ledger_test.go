package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemAssignsUniqueIDs(t *testing.T) {
	l := New()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		item := l.AddItem()
		assert.NotEmpty(t, item.ID)
		assert.False(t, seen[item.ID], "duplicate item id %s", item.ID)
		seen[item.ID] = true
		assert.Zero(t, item.Quantity)
		assert.Zero(t, item.Rate)
		assert.Zero(t, item.Amount)
	}
	assert.Equal(t, 50, l.Len())
}

func TestUpdateQuantityRecomputesAmount(t *testing.T) {
	l := New()
	item := l.AddItem()

	require.True(t, l.UpdateRate(item.ID, 50))
	require.True(t, l.UpdateQuantity(item.ID, 2))
	assert.Equal(t, 100.0, l.Items()[0].Amount)

	// amount follows whichever field changed last, using the other's
	// current value
	require.True(t, l.UpdateQuantity(item.ID, 3))
	assert.Equal(t, 150.0, l.Items()[0].Amount)

	require.True(t, l.UpdateRate(item.ID, 10))
	assert.Equal(t, 30.0, l.Items()[0].Amount)
}

func TestUpdateDescriptionDoesNotTouchAmount(t *testing.T) {
	l := New()
	item := l.AddItem()
	require.True(t, l.UpdateQuantity(item.ID, 4))
	require.True(t, l.UpdateRate(item.ID, 25))

	require.True(t, l.UpdateDescription(item.ID, "Labor"))
	got := l.Items()[0]
	assert.Equal(t, "Labor", got.Description)
	assert.Equal(t, 100.0, got.Amount)
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	l := New()
	item := l.AddItem()
	require.True(t, l.UpdateQuantity(item.ID, 2))

	assert.False(t, l.UpdateQuantity("li-missing", 9))
	assert.False(t, l.UpdateRate("li-missing", 9))
	assert.False(t, l.UpdateDescription("li-missing", "ghost"))

	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2.0, items[0].Quantity)
}

func TestRemoveItemKeepsMinimumOne(t *testing.T) {
	l := New()
	first := l.AddItem()
	second := l.AddItem()

	require.NoError(t, l.RemoveItem(first.ID))
	assert.Equal(t, 1, l.Len())

	err := l.RemoveItem(second.ID)
	assert.ErrorIs(t, err, ErrLastLineItem)
	assert.Equal(t, 1, l.Len(), "rejected removal must leave the ledger unchanged")
	assert.Equal(t, second.ID, l.Items()[0].ID)
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	l := New()
	l.AddItem()
	l.AddItem()

	require.NoError(t, l.RemoveItem("li-missing"))
	assert.Equal(t, 2, l.Len())
}

func TestComputeTotals(t *testing.T) {
	items := []LineItem{
		{ID: "a", Description: "Labor", Quantity: 2, Rate: 50, Amount: 100},
	}

	totals := ComputeTotals(items, 10)
	assert.Equal(t, 100.0, totals.Subtotal)
	assert.Equal(t, 10.0, totals.TaxRate)
	assert.Equal(t, 10.0, totals.TaxAmount)
	assert.Equal(t, 110.0, totals.Total)
}

func TestComputeTotalsIdempotent(t *testing.T) {
	items := []LineItem{
		{ID: "a", Quantity: 3, Rate: 19.99, Amount: 59.97},
		{ID: "b", Quantity: 1.5, Rate: 80, Amount: 120},
	}

	first := ComputeTotals(items, 8.25)
	second := ComputeTotals(items, 8.25)
	assert.Equal(t, first, second)
}

func TestComputeTotalsEmptyItems(t *testing.T) {
	totals := ComputeTotals(nil, 10)
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.TaxAmount)
	assert.Zero(t, totals.Total)
}

func TestLedgerComputeTotalsMatchesPureFunction(t *testing.T) {
	l := New()
	item := l.AddItem()
	require.True(t, l.UpdateDescription(item.ID, "Demolition"))
	require.True(t, l.UpdateQuantity(item.ID, 8))
	require.True(t, l.UpdateRate(item.ID, 75))

	assert.Equal(t, ComputeTotals(l.Items(), 7.5), l.ComputeTotals(7.5))
}
