package services

import (
	"testing"

	"github.com/bizledger/bizledger-be/internal/core/apperr"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductDefaults(t *testing.T) {
	service := NewProductService(newFakeProductRepo(), newFakeAccountRepo())

	product, err := service.Create(models.ProductRequest{Name: "Steel Bolt", SKU: "BOLT-10"})
	require.NoError(t, err)

	assert.Equal(t, models.ProductTypeGoods, product.ProductType)
	assert.Equal(t, "pcs", product.Unit)
	assert.True(t, product.TaxRate.Equal(dec("18")), "GST default")
	assert.True(t, product.PurchasePrice.IsZero())
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	service := NewProductService(newFakeProductRepo(), newFakeAccountRepo())

	_, err := service.Create(models.ProductRequest{Name: "Steel Bolt", SKU: "BOLT-10"})
	require.NoError(t, err)

	_, err = service.Create(models.ProductRequest{Name: "Another Bolt", SKU: "BOLT-10"})
	assert.True(t, apperr.IsConflict(err))
}

func TestCreateProductValidation(t *testing.T) {
	service := NewProductService(newFakeProductRepo(), newFakeAccountRepo())

	_, err := service.Create(models.ProductRequest{SKU: "BOLT-10"})
	assert.True(t, apperr.IsInvalidRequest(err), "missing name")

	_, err = service.Create(models.ProductRequest{Name: "Steel Bolt"})
	assert.True(t, apperr.IsInvalidRequest(err), "missing sku")

	_, err = service.Create(models.ProductRequest{Name: "Steel Bolt", SKU: "B-1", ProductType: "digital"})
	assert.True(t, apperr.IsInvalidRequest(err), "bad type")

	_, err = service.Create(models.ProductRequest{Name: "Steel Bolt", SKU: "B-1", SalePrice: decp("-1")})
	assert.True(t, apperr.IsInvalidRequest(err), "negative price")

	missing := "missing"
	_, err = service.Create(models.ProductRequest{Name: "Steel Bolt", SKU: "B-1", DefaultAnalyticalAccountID: &missing})
	assert.True(t, apperr.IsNotFound(err), "unknown default account")
}

func TestUpdateProductSKUChangeChecked(t *testing.T) {
	service := NewProductService(newFakeProductRepo(), newFakeAccountRepo())

	first, err := service.Create(models.ProductRequest{Name: "Steel Bolt", SKU: "BOLT-10"})
	require.NoError(t, err)
	second, err := service.Create(models.ProductRequest{Name: "Brass Bolt", SKU: "BOLT-20"})
	require.NoError(t, err)

	_, err = service.Update(second.ID, models.ProductRequest{SKU: first.SKU})
	assert.True(t, apperr.IsConflict(err))

	updated, err := service.Update(second.ID, models.ProductRequest{SKU: "BOLT-21", SalePrice: decp("15")})
	require.NoError(t, err)
	assert.Equal(t, "BOLT-21", updated.SKU)
	assert.True(t, updated.SalePrice.Equal(dec("15")))
}

func TestToggleArchiveProduct(t *testing.T) {
	service := NewProductService(newFakeProductRepo(), newFakeAccountRepo())

	product, err := service.Create(models.ProductRequest{Name: "Steel Bolt", SKU: "BOLT-10"})
	require.NoError(t, err)

	archived, err := service.ToggleArchive(product.ID)
	require.NoError(t, err)
	assert.True(t, archived.IsArchived)
}
