package request

import "time"

// LineItemRequest represents one billable row in an estimate or invoice
type LineItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	Rate        float64 `json:"rate" binding:"gte=0"`
}

// CreateEstimateRequest represents an estimate creation request
type CreateEstimateRequest struct {
	CustomerID     *string           `json:"customer_id" binding:"required"`
	Date           time.Time         `json:"date" binding:"required"`
	TaxRate        float64           `json:"tax_rate" binding:"gte=0,lte=100"`
	JobDescription *string           `json:"job_description"`
	ScopeOfWork    *string           `json:"scope_of_work"`
	Terms          *string           `json:"terms"`
	Items          []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateEstimateRequest represents an estimate update request
type UpdateEstimateRequest struct {
	CustomerID     *string           `json:"customer_id" binding:"required"`
	Date           time.Time         `json:"date" binding:"required"`
	TaxRate        float64           `json:"tax_rate" binding:"gte=0,lte=100"`
	JobDescription *string           `json:"job_description"`
	ScopeOfWork    *string           `json:"scope_of_work"`
	Terms          *string           `json:"terms"`
	Items          []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateInvoiceRequest represents an invoice creation request
type CreateInvoiceRequest struct {
	CustomerID *string           `json:"customer_id" binding:"required"`
	EstimateID *string           `json:"estimate_id"`
	Date       time.Time         `json:"date" binding:"required"`
	DueDate    *time.Time        `json:"due_date"`
	TaxRate    float64           `json:"tax_rate" binding:"gte=0,lte=100"`
	Notes      *string           `json:"notes"`
	Terms      *string           `json:"terms"`
	Items      []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateInvoiceRequest represents an invoice update request
type UpdateInvoiceRequest struct {
	CustomerID *string           `json:"customer_id" binding:"required"`
	Date       time.Time         `json:"date" binding:"required"`
	DueDate    *time.Time        `json:"due_date"`
	TaxRate    float64           `json:"tax_rate" binding:"gte=0,lte=100"`
	Notes      *string           `json:"notes"`
	Terms      *string           `json:"terms"`
	Items      []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// InvoiceFromEstimateRequest creates an invoice from an approved estimate
type InvoiceFromEstimateRequest struct {
	EstimateID string     `json:"estimate_id" binding:"required,uuid"`
	DueDate    *time.Time `json:"due_date"`
}

// CreateContractRequest represents a contract creation request
type CreateContractRequest struct {
	CustomerID     *string   `json:"customer_id" binding:"required"`
	EstimateID     *string   `json:"estimate_id"`
	Date           time.Time `json:"date" binding:"required"`
	Amount         float64   `json:"amount" binding:"gte=0"`
	JobDescription *string   `json:"job_description"`
	ScopeOfWork    *string   `json:"scope_of_work"`
	Terms          *string   `json:"terms"`
}

// UpdateContractRequest represents a contract update request
type UpdateContractRequest struct {
	CustomerID     *string   `json:"customer_id" binding:"required"`
	Date           time.Time `json:"date" binding:"required"`
	Amount         float64   `json:"amount" binding:"gte=0"`
	JobDescription *string   `json:"job_description"`
	ScopeOfWork    *string   `json:"scope_of_work"`
	Terms          *string   `json:"terms"`
}

// ContractFromEstimateRequest creates a contract from an approved estimate
type ContractFromEstimateRequest struct {
	EstimateID string `json:"estimate_id" binding:"required,uuid"`
}

// UpdateSettingsRequest represents a settings update request
type UpdateSettingsRequest struct {
	Currency       string  `json:"currency" binding:"required,len=3"`
	DateFormat     string  `json:"date_format" binding:"required"`
	DefaultTaxRate float64 `json:"default_tax_rate" binding:"gte=0,lte=100"`
	DefaultTerms   *string `json:"default_terms"`
}

// UpdateUserRolesRequest replaces a user's role assignments
type UpdateUserRolesRequest struct {
	RoleIDs []uint `json:"role_ids" binding:"required"`
}
