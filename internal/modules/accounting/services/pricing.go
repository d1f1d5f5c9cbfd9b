package services

import (
	"errors"

	"github.com/bizledger/bizledger-be/internal/core/apperr"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/repositories"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Price side decides which product price fills a missing unit price.
const (
	PriceSidePurchase = "purchase"
	PriceSideSale     = "sale"
)

// PricingService turns raw item requests into priced line items, pulling
// defaults and snapshots from the product catalog.
type PricingService struct {
	productRepo repositories.ProductRepo
}

func NewPricingService(productRepo repositories.ProductRepo) *PricingService {
	return &PricingService{productRepo: productRepo}
}

// BuildLineItems validates and prices the requested items. The first
// returned product is the document's first-item product, which the
// classifier keys on.
func (s *PricingService) BuildLineItems(requests []models.LineItemRequest, side string) ([]models.LineItem, *models.Product, error) {
	if len(requests) == 0 {
		return nil, nil, apperr.InvalidRequest("at least one line item is required")
	}

	items := make([]models.LineItem, 0, len(requests))
	var firstProduct *models.Product

	for _, req := range requests {
		if req.ProductID == "" {
			return nil, nil, apperr.InvalidRequest("line item product_id is required")
		}

		product, err := s.productRepo.GetByID(req.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, apperr.NotFound("product %s not found", req.ProductID)
			}
			return nil, nil, err
		}
		if firstProduct == nil {
			firstProduct = product
		}

		quantity := decimal.NewFromInt(1)
		if req.Quantity != nil {
			if !req.Quantity.IsPositive() {
				return nil, nil, apperr.InvalidRequest("line item quantity must be positive")
			}
			quantity = *req.Quantity
		}

		unitPrice := product.SalePrice
		if side == PriceSidePurchase {
			unitPrice = product.PurchasePrice
		}
		if req.UnitPrice != nil {
			if req.UnitPrice.IsNegative() {
				return nil, nil, apperr.InvalidRequest("line item unit_price cannot be negative")
			}
			unitPrice = *req.UnitPrice
		}

		taxRate := product.TaxRate
		if req.TaxRate != nil {
			if req.TaxRate.IsNegative() {
				return nil, nil, apperr.InvalidRequest("line item tax_rate cannot be negative")
			}
			taxRate = *req.TaxRate
		}

		unit := product.Unit
		if req.Unit != "" {
			unit = req.Unit
		}
		if unit == "" {
			unit = "pcs"
		}

		item := models.LineItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			ProductSKU:  product.SKU,
			Description: req.Description,
			Quantity:    quantity,
			Unit:        unit,
			UnitPrice:   unitPrice,
			TaxRate:     taxRate,
		}
		item.Compute()
		items = append(items, item)
	}

	return items, firstProduct, nil
}
