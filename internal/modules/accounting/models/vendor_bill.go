package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Vendor bill lifecycle. Payments only apply to posted bills.
const (
	VendorBillStatusDraft     = "draft"
	VendorBillStatusPosted    = "posted"
	VendorBillStatusCancelled = "cancelled"
)

type VendorBill struct {
	ID         string `json:"id" gorm:"type:uuid;primaryKey"`
	BillNumber string `json:"bill_number" gorm:"uniqueIndex;not null"`
	// VendorBillNumber is the vendor's own reference on their invoice.
	VendorBillNumber string `json:"vendor_bill_number"`
	VendorID         string `json:"vendor_id" gorm:"type:uuid;not null;index"`

	// PurchaseOrderID links the bill back to the order it settles.
	PurchaseOrderID *string `json:"purchase_order_id" gorm:"type:uuid;index"`

	BillDate time.Time  `json:"bill_date" gorm:"not null"`
	DueDate  *time.Time `json:"due_date" gorm:"index"`

	Status string `json:"status" gorm:"default:draft;index"`

	Items datatypes.JSON `json:"items" gorm:"type:jsonb"`

	Subtotal    decimal.Decimal `json:"subtotal" gorm:"type:decimal(15,2);default:0"`
	TaxAmount   decimal.Decimal `json:"tax_amount" gorm:"type:decimal(15,2);default:0"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(15,2);default:0"`

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

func (VendorBill) TableName() string {
	return "vendor_bills"
}

func (vb *VendorBill) BeforeCreate(tx *gorm.DB) error {
	if vb.ID == "" {
		vb.ID = uuid.New().String()
	}
	return nil
}

type VendorBillRequest struct {
	VendorID            string            `json:"vendor_id"`
	VendorBillNumber    string            `json:"vendor_bill_number"`
	PurchaseOrderID     *string           `json:"purchase_order_id"`
	BillDate            *time.Time        `json:"bill_date"`
	DueDate             *time.Time        `json:"due_date"`
	Items               []LineItemRequest `json:"items"`
	AnalyticalAccountID *string           `json:"analytical_account_id"`
	Notes               *string           `json:"notes"`
}
