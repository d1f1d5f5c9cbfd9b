package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ContactTypeCustomer = "customer"
	ContactTypeVendor   = "vendor"
	ContactTypeBoth     = "both"
)

// Address is stored as JSONB on the contact.
type Address struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

type Contact struct {
	ID          string `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string `json:"name" gorm:"not null;index"`
	ContactType string `json:"contact_type" gorm:"not null;default:customer;index"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Mobile      string `json:"mobile"`
	GSTIN       string `json:"gstin"`
	PAN         string `json:"pan"`

	BillingAddress  datatypes.JSON `json:"billing_address" gorm:"type:jsonb"`
	ShippingAddress datatypes.JSON `json:"shipping_address" gorm:"type:jsonb"`

	// PaymentTerms is the default due-date offset in days for this contact's
	// bills and invoices.
	PaymentTerms int             `json:"payment_terms" gorm:"default:30"`
	CreditLimit  decimal.Decimal `json:"credit_limit" gorm:"type:decimal(15,2);default:0"`

	Notes      string    `json:"notes"`
	IsArchived bool      `json:"is_archived" gorm:"default:false;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Contact) TableName() string {
	return "contacts"
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// IsCustomer reports whether the contact can appear on sales documents.
func (c *Contact) IsCustomer() bool {
	return c.ContactType == ContactTypeCustomer || c.ContactType == ContactTypeBoth
}

// IsVendor reports whether the contact can appear on purchase documents.
func (c *Contact) IsVendor() bool {
	return c.ContactType == ContactTypeVendor || c.ContactType == ContactTypeBoth
}

type ContactRequest struct {
	Name            string           `json:"name"`
	ContactType     string           `json:"contact_type"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	Mobile          string           `json:"mobile"`
	GSTIN           string           `json:"gstin"`
	PAN             string           `json:"pan"`
	BillingAddress  *Address         `json:"billing_address"`
	ShippingAddress *Address         `json:"shipping_address"`
	PaymentTerms    *int             `json:"payment_terms"`
	CreditLimit     *decimal.Decimal `json:"credit_limit"`
	Notes           *string          `json:"notes"`
}

type ContactFilter struct {
	ContactType     string
	Search          string
	IncludeArchived bool
	Page            int
	Limit           int
}
