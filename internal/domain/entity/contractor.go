package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contractor represents a contracting business; every customer and document
// belongs to exactly one contractor.
type Contractor struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CompanyName  string         `gorm:"size:255;not null" json:"company_name"`
	ContactName  *string        `gorm:"size:255" json:"contact_name,omitempty"`
	Email        *string        `gorm:"size:255" json:"email,omitempty"`
	Phone        *string        `gorm:"size:50" json:"phone,omitempty"`
	Address      *string        `gorm:"type:text" json:"address,omitempty"`
	LicenseNo    *string        `gorm:"size:100" json:"license_no,omitempty"`
	LogoPath     *string        `gorm:"size:255" json:"logo_path,omitempty"`
	DefaultTerms *string        `gorm:"type:text" json:"default_terms,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Users     []User     `gorm:"foreignKey:ContractorID" json:"-"`
	Customers []Customer `gorm:"foreignKey:ContractorID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new contractor
func (c *Contractor) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Contractor model
func (Contractor) TableName() string {
	return "contractors"
}
