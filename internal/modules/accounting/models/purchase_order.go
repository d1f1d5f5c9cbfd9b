package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Purchase order lifecycle.
const (
	PurchaseOrderStatusDraft     = "draft"
	PurchaseOrderStatusConfirmed = "confirmed"
	PurchaseOrderStatusReceived  = "received"
	PurchaseOrderStatusCancelled = "cancelled"
)

type PurchaseOrder struct {
	ID       string `json:"id" gorm:"type:uuid;primaryKey"`
	PONumber string `json:"po_number" gorm:"uniqueIndex;not null"`
	VendorID string `json:"vendor_id" gorm:"type:uuid;not null;index"`

	OrderDate    time.Time  `json:"order_date" gorm:"not null"`
	ExpectedDate *time.Time `json:"expected_date"`

	Status string `json:"status" gorm:"default:draft;index"`

	Items datatypes.JSON `json:"items" gorm:"type:jsonb"`

	Subtotal    decimal.Decimal `json:"subtotal" gorm:"type:decimal(15,2);default:0"`
	TaxAmount   decimal.Decimal `json:"tax_amount" gorm:"type:decimal(15,2);default:0"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(15,2);default:0"`

	AnalyticalAccountID *string `json:"analytical_account_id" gorm:"type:uuid;index"`

	Notes     string    `json:"notes"`
	PDFURL    string    `json:"pdf_url"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

func (po *PurchaseOrder) BeforeCreate(tx *gorm.DB) error {
	if po.ID == "" {
		po.ID = uuid.New().String()
	}
	return nil
}

type PurchaseOrderRequest struct {
	VendorID            string            `json:"vendor_id"`
	OrderDate           *time.Time        `json:"order_date"`
	ExpectedDate        *time.Time        `json:"expected_date"`
	Items               []LineItemRequest `json:"items"`
	AnalyticalAccountID *string           `json:"analytical_account_id"`
	Notes               *string           `json:"notes"`
}

type DocumentFilter struct {
	Status         string
	CounterpartyID string
	DateFrom       *time.Time
	DateTo         *time.Time
	Search         string
	Page           int
	Limit          int
}
