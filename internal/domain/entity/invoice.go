package entity

import (
	"time"

	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice represents a bill issued to a customer
type Invoice struct {
	ID           uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ContractorID uuid.UUID          `gorm:"type:uuid;not null;index" json:"contractor_id"`
	UserID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID   *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	EstimateID   *uuid.UUID         `gorm:"type:uuid;index" json:"estimate_id,omitempty"`
	Date         time.Time          `gorm:"type:date;not null" json:"date"`
	DueDate      *time.Time         `gorm:"type:date" json:"due_date,omitempty"`
	Reference    string             `gorm:"size:100;unique;not null" json:"reference"`
	Subtotal     float64            `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	TaxRate      float64            `gorm:"type:decimal(5,2);default:0" json:"tax_rate"`
	TaxAmount    float64            `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	Total        float64            `gorm:"type:decimal(15,2);default:0" json:"total"`
	Status       enum.InvoiceStatus `gorm:"default:0" json:"status"`
	PaidAt       *time.Time         `json:"paid_at,omitempty"`
	Notes        *string            `gorm:"type:text" json:"notes,omitempty"`
	Terms        *string            `gorm:"type:text" json:"terms,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	DeletedAt    gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Contractor Contractor    `gorm:"foreignKey:ContractorID" json:"-"`
	User       User          `gorm:"foreignKey:UserID" json:"-"`
	Customer   *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Estimate   *Estimate     `gorm:"foreignKey:EstimateID" json:"-"`
	Items      []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem represents a line item on an invoice. Amount is always
// derived from quantity * rate by the ledger before persisting.
type InvoiceItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Description string         `gorm:"size:500;not null" json:"description"`
	Quantity    float64        `gorm:"type:decimal(10,2);not null" json:"quantity"`
	Rate        float64        `gorm:"type:decimal(15,2);not null" json:"rate"`
	Amount      float64        `gorm:"type:decimal(15,2);not null" json:"amount"`
	Position    int            `gorm:"default:0" json:"position"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (ii *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if ii.ID == uuid.Nil {
		ii.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
