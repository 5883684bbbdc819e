package entity

import (
	"time"

	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Estimate represents a price estimate for a customer job
type Estimate struct {
	ID             uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	ContractorID   uuid.UUID           `gorm:"type:uuid;not null;index" json:"contractor_id"`
	UserID         uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID     *uuid.UUID          `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Date           time.Time           `gorm:"type:date;not null" json:"date"`
	Reference      string              `gorm:"size:100;unique;not null" json:"reference"`
	Subtotal       float64             `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	TaxRate        float64             `gorm:"type:decimal(5,2);default:0" json:"tax_rate"`
	TaxAmount      float64             `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	Total          float64             `gorm:"type:decimal(15,2);default:0" json:"total"`
	Status         enum.EstimateStatus `gorm:"default:0" json:"status"`
	JobDescription *string             `gorm:"type:text" json:"job_description,omitempty"`
	ScopeOfWork    *string             `gorm:"type:text" json:"scope_of_work,omitempty"`
	Terms          *string             `gorm:"type:text" json:"terms,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	DeletedAt      gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Contractor Contractor     `gorm:"foreignKey:ContractorID" json:"-"`
	User       User           `gorm:"foreignKey:UserID" json:"-"`
	Customer   *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items      []EstimateItem `gorm:"foreignKey:EstimateID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new estimate
func (e *Estimate) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Estimate model
func (Estimate) TableName() string {
	return "estimates"
}

// EstimateItem represents a line item on an estimate. Amount is always
// derived from quantity * rate by the ledger before persisting.
type EstimateItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	EstimateID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"estimate_id"`
	Description string         `gorm:"size:500;not null" json:"description"`
	Quantity    float64        `gorm:"type:decimal(10,2);not null" json:"quantity"`
	Rate        float64        `gorm:"type:decimal(15,2);not null" json:"rate"`
	Amount      float64        `gorm:"type:decimal(15,2);not null" json:"amount"`
	Position    int            `gorm:"default:0" json:"position"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Estimate Estimate `gorm:"foreignKey:EstimateID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new estimate item
func (ei *EstimateItem) BeforeCreate(tx *gorm.DB) error {
	if ei.ID == uuid.Nil {
		ei.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the EstimateItem model
func (EstimateItem) TableName() string {
	return "estimate_items"
}
