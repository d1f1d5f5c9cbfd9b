package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentTypeIncoming = "incoming"
	PaymentTypeOutgoing = "outgoing"
)

// Accepted payment methods.
var PaymentMethods = []string{"cash", "bank_transfer", "cheque", "upi", "card", "online"}

func IsValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// Payment records money moving in or out. When linked to a posted invoice or
// bill, creating it also moves the document's amount_paid/amount_due, and
// deleting it reverses that.
type Payment struct {
	ID            string `json:"id" gorm:"type:uuid;primaryKey"`
	PaymentNumber string `json:"payment_number" gorm:"uniqueIndex;not null"`
	PaymentType   string `json:"payment_type" gorm:"not null;index"`

	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(15,2);not null"`
	PaymentMethod string          `json:"payment_method" gorm:"not null"`
	PaymentDate   time.Time       `json:"payment_date" gorm:"not null"`

	ContactID *string `json:"contact_id" gorm:"type:uuid;index"`
	InvoiceID *string `json:"invoice_id" gorm:"type:uuid;index"`
	BillID    *string `json:"bill_id" gorm:"type:uuid;index"`

	ReferenceNumber string `json:"reference_number"`
	Notes           string `json:"notes"`

	IsReconciled bool `json:"is_reconciled" gorm:"default:false;index"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type PaymentRequest struct {
	PaymentType     string           `json:"payment_type"`
	Amount          *decimal.Decimal `json:"amount"`
	PaymentMethod   string           `json:"payment_method"`
	PaymentDate     *time.Time       `json:"payment_date"`
	ContactID       *string          `json:"contact_id"`
	InvoiceID       *string          `json:"invoice_id"`
	BillID          *string          `json:"bill_id"`
	ReferenceNumber string           `json:"reference_number"`
	Notes           string           `json:"notes"`
}

// PaymentUpdateRequest covers the only fields editable after creation.
type PaymentUpdateRequest struct {
	PaymentMethod   *string    `json:"payment_method"`
	PaymentDate     *time.Time `json:"payment_date"`
	ReferenceNumber *string    `json:"reference_number"`
	Notes           *string    `json:"notes"`
}

type PaymentFilter struct {
	PaymentType string
	ContactID   string
	InvoiceID   string
	BillID      string
	DateFrom    *time.Time
	DateTo      *time.Time
	Page        int
	Limit       int
}

// PaymentDetail is a payment joined with snippets of its related records.
type PaymentDetail struct {
	Payment
	ContactName   string `json:"contact_name,omitempty"`
	InvoiceNumber string `json:"invoice_number,omitempty"`
	BillNumber    string `json:"bill_number,omitempty"`
}
