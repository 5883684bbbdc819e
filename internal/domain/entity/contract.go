package entity

import (
	"time"

	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contract represents a signed work agreement between a contractor and a
// customer, usually created from an approved estimate.
type Contract struct {
	ID             uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	ContractorID   uuid.UUID           `gorm:"type:uuid;not null;index" json:"contractor_id"`
	UserID         uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID     *uuid.UUID          `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	EstimateID     *uuid.UUID          `gorm:"type:uuid;index" json:"estimate_id,omitempty"`
	Date           time.Time           `gorm:"type:date;not null" json:"date"`
	Reference      string              `gorm:"size:100;unique;not null" json:"reference"`
	Amount         float64             `gorm:"type:decimal(15,2);default:0" json:"amount"`
	Status         enum.ContractStatus `gorm:"default:0" json:"status"`
	SignedAt       *time.Time          `json:"signed_at,omitempty"`
	JobDescription *string             `gorm:"type:text" json:"job_description,omitempty"`
	ScopeOfWork    *string             `gorm:"type:text" json:"scope_of_work,omitempty"`
	Terms          *string             `gorm:"type:text" json:"terms,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	DeletedAt      gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Contractor Contractor `gorm:"foreignKey:ContractorID" json:"-"`
	User       User       `gorm:"foreignKey:UserID" json:"-"`
	Customer   *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Estimate   *Estimate  `gorm:"foreignKey:EstimateID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new contract
func (c *Contract) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Contract model
func (Contract) TableName() string {
	return "contracts"
}
