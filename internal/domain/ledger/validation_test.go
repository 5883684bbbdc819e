package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validItems() []LineItem {
	return []LineItem{
		{ID: "a", Description: "Labor", Quantity: 2, Rate: 50, Amount: 100},
	}
}

func TestValidateAllValid(t *testing.T) {
	state := Validate("EST-000001", "cust-1", validItems(), 10)

	assert.True(t, state.IsReferenceValid)
	assert.True(t, state.IsCustomerValid)
	assert.True(t, state.IsItemsValid)
	assert.True(t, state.IsTaxRateValid)
	assert.True(t, state.AllRequiredValid)
	assert.Empty(t, state.Reason)
}

func TestValidateBlankReference(t *testing.T) {
	state := Validate("", "cust-1", validItems(), 10)

	assert.False(t, state.IsReferenceValid)
	assert.False(t, state.AllRequiredValid)
	assert.Equal(t, "Please enter a valid reference number", state.Reason)

	// whitespace-only trims to empty
	state = Validate("   ", "cust-1", validItems(), 10)
	assert.False(t, state.IsReferenceValid)
}

func TestValidateNoCustomer(t *testing.T) {
	state := Validate("EST-000001", "", validItems(), 10)

	assert.False(t, state.IsCustomerValid)
	assert.False(t, state.AllRequiredValid)
	assert.Equal(t, ReasonCustomer, state.Reason)
}

func TestValidateEmptyItems(t *testing.T) {
	state := Validate("EST-000001", "cust-1", nil, 10)
	assert.False(t, state.IsItemsValid)
	assert.False(t, state.AllRequiredValid)
	assert.Equal(t, ReasonItems, state.Reason)

	// empty items invalid regardless of the other fields
	state = Validate("", "", nil, 150)
	assert.False(t, state.IsItemsValid)
}

func TestValidateIncompleteItem(t *testing.T) {
	cases := []struct {
		name string
		item LineItem
	}{
		{"blank description", LineItem{Description: "  ", Quantity: 1, Rate: 10}},
		{"zero quantity", LineItem{Description: "Labor", Quantity: 0, Rate: 10}},
		{"negative quantity", LineItem{Description: "Labor", Quantity: -1, Rate: 10}},
		{"zero rate", LineItem{Description: "Labor", Quantity: 1, Rate: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := Validate("EST-000001", "cust-1", []LineItem{tc.item}, 10)
			assert.False(t, state.IsItemsValid)
			assert.Equal(t, ReasonItems, state.Reason)
		})
	}
}

func TestValidateTaxRateBounds(t *testing.T) {
	assert.True(t, Validate("R", "c", validItems(), 0).IsTaxRateValid)
	assert.True(t, Validate("R", "c", validItems(), 100).IsTaxRateValid)
	assert.False(t, Validate("R", "c", validItems(), 150).IsTaxRateValid)
	assert.False(t, Validate("R", "c", validItems(), -1).IsTaxRateValid)
	assert.False(t, Validate("R", "c", validItems(), math.NaN()).IsTaxRateValid)
	assert.False(t, Validate("R", "c", validItems(), math.Inf(1)).IsTaxRateValid)

	state := Validate("R", "c", validItems(), 150)
	assert.False(t, state.AllRequiredValid)
	assert.Equal(t, ReasonTaxRate, state.Reason)
}

func TestValidateReasonPriorityOrder(t *testing.T) {
	// every check fails; reference wins
	state := Validate("", "", nil, 500)
	assert.Equal(t, ReasonReference, state.Reason)

	// reference ok; customer is next in priority
	state = Validate("R", "", nil, 500)
	assert.Equal(t, ReasonCustomer, state.Reason)

	// items before tax rate
	state = Validate("R", "c", nil, 500)
	assert.Equal(t, ReasonItems, state.Reason)
}

func TestValidateIsAndOfSubChecks(t *testing.T) {
	state := Validate("R", "c", validItems(), 10)
	assert.True(t, state.AllRequiredValid)

	// flipping any single input flips the aggregate
	assert.False(t, Validate("", "c", validItems(), 10).AllRequiredValid)
	assert.False(t, Validate("R", "", validItems(), 10).AllRequiredValid)
	assert.False(t, Validate("R", "c", nil, 10).AllRequiredValid)
	assert.False(t, Validate("R", "c", validItems(), 101).AllRequiredValid)
}
