package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Sales order lifecycle.
const (
	SalesOrderStatusDraft     = "draft"
	SalesOrderStatusConfirmed = "confirmed"
	SalesOrderStatusDelivered = "delivered"
	SalesOrderStatusCancelled = "cancelled"
)

type SalesOrder struct {
	ID         string `json:"id" gorm:"type:uuid;primaryKey"`
	SONumber   string `json:"so_number" gorm:"uniqueIndex;not null"`
	CustomerID string `json:"customer_id" gorm:"type:uuid;not null;index"`

	OrderDate    time.Time  `json:"order_date" gorm:"not null"`
	DeliveryDate *time.Time `json:"delivery_date"`

	Status string `json:"status" gorm:"default:draft;index"`

	Items datatypes.JSON `json:"items" gorm:"type:jsonb"`

	Subtotal       decimal.Decimal `json:"subtotal" gorm:"type:decimal(15,2);default:0"`
	TaxAmount      decimal.Decimal `json:"tax_amount" gorm:"type:decimal(15,2);default:0"`
	DiscountAmount decimal.Decimal `json:"discount_amount" gorm:"type:decimal(15,2);default:0"`
	TotalAmount    decimal.Decimal `json:"total_amount" gorm:"type:decimal(15,2);default:0"`

	AnalyticalAccountID *string `json:"analytical_account_id" gorm:"type:uuid;index"`

	ShippingAddress datatypes.JSON `json:"shipping_address" gorm:"type:jsonb"`

	Notes     string    `json:"notes"`
	PDFURL    string    `json:"pdf_url"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SalesOrder) TableName() string {
	return "sales_orders"
}

func (so *SalesOrder) BeforeCreate(tx *gorm.DB) error {
	if so.ID == "" {
		so.ID = uuid.New().String()
	}
	return nil
}

type SalesOrderRequest struct {
	CustomerID          string            `json:"customer_id"`
	OrderDate           *time.Time        `json:"order_date"`
	DeliveryDate        *time.Time        `json:"delivery_date"`
	Items               []LineItemRequest `json:"items"`
	DiscountAmount      *decimal.Decimal  `json:"discount_amount"`
	AnalyticalAccountID *string           `json:"analytical_account_id"`
	ShippingAddress     *Address          `json:"shipping_address"`
	Notes               *string           `json:"notes"`
}
