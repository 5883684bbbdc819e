package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a client of a contractor
type Customer struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ContractorID uuid.UUID      `gorm:"type:uuid;not null;index" json:"contractor_id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	CompanyName  *string        `gorm:"size:255" json:"company_name,omitempty"`
	Email        *string        `gorm:"size:255" json:"email,omitempty"`
	Phone        *string        `gorm:"size:50" json:"phone,omitempty"`
	Address      *string        `gorm:"type:text" json:"address,omitempty"`
	Notes        *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Contractor Contractor `gorm:"foreignKey:ContractorID" json:"-"`
	User       User       `gorm:"foreignKey:UserID" json:"-"`
	Estimates  []Estimate `gorm:"foreignKey:CustomerID" json:"-"`
	Invoices   []Invoice  `gorm:"foreignKey:CustomerID" json:"-"`
	Contracts  []Contract `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
