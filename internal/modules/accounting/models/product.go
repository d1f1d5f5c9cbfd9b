package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ProductTypeGoods   = "goods"
	ProductTypeService = "service"
)

type Product struct {
	ID          string `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string `json:"name" gorm:"not null;index"`
	SKU         string `json:"sku" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
	Category    string `json:"category" gorm:"index"`
	ProductType string `json:"product_type" gorm:"default:goods"`
	Unit        string `json:"unit" gorm:"default:pcs"`

	PurchasePrice decimal.Decimal `json:"purchase_price" gorm:"type:decimal(15,2);default:0"`
	SalePrice     decimal.Decimal `json:"sale_price" gorm:"type:decimal(15,2);default:0"`
	TaxRate       decimal.Decimal `json:"tax_rate" gorm:"type:decimal(5,2);default:18"`

	// DefaultAnalyticalAccountID is the classification fallback when no
	// auto-analytical rule matches a document built from this product.
	DefaultAnalyticalAccountID *string `json:"default_analytical_account_id" gorm:"type:uuid"`

	IsArchived bool      `json:"is_archived" gorm:"default:false;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type ProductRequest struct {
	Name                       string           `json:"name"`
	SKU                        string           `json:"sku"`
	Description                string           `json:"description"`
	Category                   string           `json:"category"`
	ProductType                string           `json:"product_type"`
	Unit                       string           `json:"unit"`
	PurchasePrice              *decimal.Decimal `json:"purchase_price"`
	SalePrice                  *decimal.Decimal `json:"sale_price"`
	TaxRate                    *decimal.Decimal `json:"tax_rate"`
	DefaultAnalyticalAccountID *string          `json:"default_analytical_account_id"`
}

type ProductFilter struct {
	Category        string
	ProductType     string
	Search          string
	IncludeArchived bool
	Page            int
	Limit           int
}
