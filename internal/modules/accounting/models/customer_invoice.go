package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Customer invoice lifecycle. Payments only apply to posted invoices.
const (
	CustomerInvoiceStatusDraft     = "draft"
	CustomerInvoiceStatusPosted    = "posted"
	CustomerInvoiceStatusCancelled = "cancelled"
)

type CustomerInvoice struct {
	ID            string `json:"id" gorm:"type:uuid;primaryKey"`
	InvoiceNumber string `json:"invoice_number" gorm:"uniqueIndex;not null"`
	CustomerID    string `json:"customer_id" gorm:"type:uuid;not null;index"`

	// SalesOrderID links the invoice back to the order it bills.
	SalesOrderID *string `json:"sales_order_id" gorm:"type:uuid;index"`

	InvoiceDate time.Time  `json:"invoice_date" gorm:"not null"`
	DueDate     *time.Time `json:"due_date" gorm:"index"`

	Status string `json:"status" gorm:"default:draft;index"`

	Items datatypes.JSON `json:"items" gorm:"type:jsonb"`

	Subtotal       decimal.Decimal `json:"subtotal" gorm:"type:decimal(15,2);default:0"`
	TaxAmount      decimal.Decimal `json:"tax_amount" gorm:"type:decimal(15,2);default:0"`
	DiscountAmount decimal.Decimal `json:"discount_amount" gorm:"type:decimal(15,2);default:0"`
	TotalAmount    decimal.Decimal `json:"total_amount" gorm:"type:decimal(15,2);default:0"`

	AmountPaid    decimal.Decimal `json:"amount_paid" gorm:"type:decimal(15,2);default:0"`
	AmountDue     decimal.Decimal `json:"amount_due" gorm:"type:decimal(15,2);default:0"`
	PaymentStatus string          `json:"payment_status" gorm:"default:not_paid;index"`

	AnalyticalAccountID *string `json:"analytical_account_id" gorm:"type:uuid;index"`

	Notes     string    `json:"notes"`
	PDFURL    string    `json:"pdf_url"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CustomerInvoice) TableName() string {
	return "customer_invoices"
}

func (ci *CustomerInvoice) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return nil
}

type CustomerInvoiceRequest struct {
	CustomerID          string            `json:"customer_id"`
	SalesOrderID        *string           `json:"sales_order_id"`
	InvoiceDate         *time.Time        `json:"invoice_date"`
	DueDate             *time.Time        `json:"due_date"`
	Items               []LineItemRequest `json:"items"`
	DiscountAmount      *decimal.Decimal  `json:"discount_amount"`
	AnalyticalAccountID *string           `json:"analytical_account_id"`
	Notes               *string           `json:"notes"`
}
