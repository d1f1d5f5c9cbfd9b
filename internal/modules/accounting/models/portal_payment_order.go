package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PortalPaymentOrderStatusCreated   = "created"
	PortalPaymentOrderStatusCompleted = "completed"
)

// PortalPaymentOrder tracks a gateway checkout a portal customer started
// for an invoice, so the completion callback can be tied back to it.
type PortalPaymentOrder struct {
	ID             string `json:"id" gorm:"type:uuid;primaryKey"`
	InvoiceID      string `json:"invoice_id" gorm:"type:uuid;not null;index"`
	ContactID      string `json:"contact_id" gorm:"type:uuid;not null;index"`
	GatewayName    string `json:"gateway_name"`
	GatewayOrderID string `json:"gateway_order_id" gorm:"uniqueIndex;not null"`

	Amount decimal.Decimal `json:"amount" gorm:"type:decimal(15,2);not null"`
	Status string          `json:"status" gorm:"default:created;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PortalPaymentOrder) TableName() string {
	return "portal_payment_orders"
}

func (o *PortalPaymentOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}
