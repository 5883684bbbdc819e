package ledger

import (
	"math"
	"strings"
)

// Validation reason messages, in check priority order.
const (
	ReasonReference  = "Please enter a valid reference number"
	ReasonCustomer   = "Please select a customer"
	ReasonItems      = "Please complete all line items"
	ReasonTaxRate    = "Tax rate must be between 0 and 100"
	ReasonIncomplete = "Please complete all required fields"
)

// ValidationState is a derived snapshot gating save/submit actions. It is
// advisory only: it never mutates the ledger and is not persisted.
type ValidationState struct {
	IsReferenceValid bool   `json:"is_reference_valid"`
	IsCustomerValid  bool   `json:"is_customer_valid"`
	IsItemsValid     bool   `json:"is_items_valid"`
	IsTaxRateValid   bool   `json:"is_tax_rate_valid"`
	AllRequiredValid bool   `json:"all_required_valid"`
	Reason           string `json:"reason,omitempty"`
}

// Validate recomputes the validation snapshot from the current inputs.
// Reason carries the first failing check in the fixed priority order
// reference, customer, items, tax rate.
func Validate(reference, customerID string, items []LineItem, taxRatePercent float64) ValidationState {
	state := ValidationState{
		IsReferenceValid: strings.TrimSpace(reference) != "",
		IsCustomerValid:  customerID != "",
		IsItemsValid:     itemsValid(items),
		IsTaxRateValid: !math.IsNaN(taxRatePercent) && !math.IsInf(taxRatePercent, 0) &&
			taxRatePercent >= 0 && taxRatePercent <= 100,
	}

	state.AllRequiredValid = state.IsReferenceValid && state.IsCustomerValid &&
		state.IsItemsValid && state.IsTaxRateValid

	switch {
	case state.AllRequiredValid:
	case !state.IsReferenceValid:
		state.Reason = ReasonReference
	case !state.IsCustomerValid:
		state.Reason = ReasonCustomer
	case !state.IsItemsValid:
		state.Reason = ReasonItems
	case !state.IsTaxRateValid:
		state.Reason = ReasonTaxRate
	default:
		state.Reason = ReasonIncomplete
	}

	return state
}

func itemsValid(items []LineItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if strings.TrimSpace(item.Description) == "" || item.Quantity <= 0 || item.Rate <= 0 {
			return false
		}
	}
	return true
}
