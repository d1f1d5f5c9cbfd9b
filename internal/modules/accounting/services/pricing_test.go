package services

import (
	"testing"

	"github.com/bizledger/bizledger-be/internal/core/apperr"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func decp(s string) *decimal.Decimal {
	v := dec(s)
	return &v
}

func seedProduct(repo *fakeProductRepo) *models.Product {
	p := &models.Product{
		Name:          "Steel Bolt",
		SKU:           "BOLT-10",
		Category:      "Hardware",
		Unit:          "pcs",
		PurchasePrice: dec("8"),
		SalePrice:     dec("12"),
		TaxRate:       dec("18"),
	}
	_ = repo.Create(p)
	return p
}

func TestBuildLineItemsDefaults(t *testing.T) {
	productRepo := newFakeProductRepo()
	product := seedProduct(productRepo)
	pricing := NewPricingService(productRepo)

	items, first, err := pricing.BuildLineItems([]models.LineItemRequest{
		{ProductID: product.ID},
	}, PriceSideSale)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, product.ID, first.ID)
	assert.True(t, items[0].Quantity.Equal(dec("1")))
	assert.True(t, items[0].UnitPrice.Equal(dec("12")), "sale price used")
	assert.True(t, items[0].TaxRate.Equal(dec("18")), "product tax rate used")
	assert.Equal(t, "pcs", items[0].Unit)
	assert.Equal(t, "Steel Bolt", items[0].ProductName)
	assert.Equal(t, "BOLT-10", items[0].ProductSKU)
}

func TestBuildLineItemsPurchaseSideUsesPurchasePrice(t *testing.T) {
	productRepo := newFakeProductRepo()
	product := seedProduct(productRepo)
	pricing := NewPricingService(productRepo)

	items, _, err := pricing.BuildLineItems([]models.LineItemRequest{
		{ProductID: product.ID, Quantity: decp("10")},
	}, PriceSidePurchase)
	require.NoError(t, err)

	assert.True(t, items[0].UnitPrice.Equal(dec("8")))
	assert.True(t, items[0].Subtotal.Equal(dec("80")))
	assert.True(t, items[0].TaxAmount.Equal(dec("14.40")))
	assert.True(t, items[0].Total.Equal(dec("94.40")))
}

func TestBuildLineItemsOverrides(t *testing.T) {
	productRepo := newFakeProductRepo()
	product := seedProduct(productRepo)
	pricing := NewPricingService(productRepo)

	items, _, err := pricing.BuildLineItems([]models.LineItemRequest{
		{ProductID: product.ID, Quantity: decp("2"), UnitPrice: decp("100"), TaxRate: decp("5"), Unit: "box"},
	}, PriceSideSale)
	require.NoError(t, err)

	assert.True(t, items[0].UnitPrice.Equal(dec("100")))
	assert.True(t, items[0].TaxRate.Equal(dec("5")))
	assert.Equal(t, "box", items[0].Unit)
	assert.True(t, items[0].Total.Equal(dec("210")))
}

func TestBuildLineItemsValidation(t *testing.T) {
	productRepo := newFakeProductRepo()
	product := seedProduct(productRepo)
	pricing := NewPricingService(productRepo)

	_, _, err := pricing.BuildLineItems(nil, PriceSideSale)
	assert.True(t, apperr.IsInvalidRequest(err), "empty items")

	_, _, err = pricing.BuildLineItems([]models.LineItemRequest{{ProductID: ""}}, PriceSideSale)
	assert.True(t, apperr.IsInvalidRequest(err), "missing product id")

	_, _, err = pricing.BuildLineItems([]models.LineItemRequest{{ProductID: "nope"}}, PriceSideSale)
	assert.True(t, apperr.IsNotFound(err), "unknown product")

	_, _, err = pricing.BuildLineItems([]models.LineItemRequest{
		{ProductID: product.ID, Quantity: decp("0")},
	}, PriceSideSale)
	assert.True(t, apperr.IsInvalidRequest(err), "zero quantity")

	_, _, err = pricing.BuildLineItems([]models.LineItemRequest{
		{ProductID: product.ID, UnitPrice: decp("-1")},
	}, PriceSideSale)
	assert.True(t, apperr.IsInvalidRequest(err), "negative price")
}
