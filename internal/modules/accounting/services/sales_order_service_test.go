package services

import (
	"strings"
	"testing"

	"github.com/bizledger/bizledger-be/internal/core/apperr"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type soFixture struct {
	service     *SalesOrderService
	soRepo      *fakeSalesOrderRepo
	contactRepo *fakeContactRepo
	productRepo *fakeProductRepo
	notifier    *fakeNotifier
	customer    *models.Contact
	product     *models.Product
}

func newSOFixture() *soFixture {
	soRepo := newFakeSalesOrderRepo()
	contactRepo := newFakeContactRepo()
	productRepo := newFakeProductRepo()
	notifier := &fakeNotifier{}

	customer := &models.Contact{Name: "Acme Traders", ContactType: models.ContactTypeCustomer}
	_ = contactRepo.Create(customer)
	product := seedProduct(productRepo)

	service := NewSalesOrderService(
		soRepo,
		contactRepo,
		NewPricingService(productRepo),
		NewClassifierService(&fakeRuleRepo{}),
		&fakeNumbers{},
		fakeRenderer{},
		&fakeFileStore{},
		notifier,
		"BizLedger",
	)
	return &soFixture{
		service:     service,
		soRepo:      soRepo,
		contactRepo: contactRepo,
		productRepo: productRepo,
		notifier:    notifier,
		customer:    customer,
		product:     product,
	}
}

func (f *soFixture) create(t *testing.T, req models.SalesOrderRequest) *models.SalesOrder {
	t.Helper()
	if req.CustomerID == "" {
		req.CustomerID = f.customer.ID
	}
	if req.Items == nil {
		req.Items = []models.LineItemRequest{{ProductID: f.product.ID, Quantity: decp("5")}}
	}
	so, err := f.service.Create(req, "user-1")
	require.NoError(t, err)
	return so
}

func TestCreateSalesOrder(t *testing.T) {
	f := newSOFixture()
	so := f.create(t, models.SalesOrderRequest{})

	assert.True(t, strings.HasPrefix(so.SONumber, "SO-"))
	assert.Equal(t, models.SalesOrderStatusDraft, so.Status)
	assert.True(t, so.Subtotal.Equal(dec("60")), "5 x sale price 12")
	assert.True(t, so.TaxAmount.Equal(dec("10.80")))
	assert.True(t, so.TotalAmount.Equal(dec("70.80")))

	require.Len(t, f.notifier.titles, 1)
	assert.Equal(t, "New sales order", f.notifier.titles[0])
}

func TestCreateSalesOrderWithDiscount(t *testing.T) {
	f := newSOFixture()
	so := f.create(t, models.SalesOrderRequest{DiscountAmount: decp("10")})

	assert.True(t, so.DiscountAmount.Equal(dec("10")))
	assert.True(t, so.TotalAmount.Equal(dec("60.80")))

	_, err := f.service.Create(models.SalesOrderRequest{
		CustomerID:     f.customer.ID,
		Items:          []models.LineItemRequest{{ProductID: f.product.ID}},
		DiscountAmount: decp("-1"),
	}, "u")
	assert.True(t, apperr.IsInvalidRequest(err))
}

func TestCreateSalesOrderInheritsShippingAddress(t *testing.T) {
	f := newSOFixture()
	f.customer.ShippingAddress = marshalAddress(&models.Address{Line1: "12 Market Road", City: "Pune"})
	_ = f.contactRepo.Update(f.customer)

	so := f.create(t, models.SalesOrderRequest{})
	assert.Equal(t, f.customer.ShippingAddress, so.ShippingAddress)
}

func TestCreateSalesOrderRejectsNonCustomer(t *testing.T) {
	f := newSOFixture()
	vendor := &models.Contact{Name: "Supplies Co", ContactType: models.ContactTypeVendor}
	_ = f.contactRepo.Create(vendor)

	_, err := f.service.Create(models.SalesOrderRequest{
		CustomerID: vendor.ID,
		Items:      []models.LineItemRequest{{ProductID: f.product.ID}},
	}, "u")
	assert.True(t, apperr.IsInvalidRequest(err))
}

func TestSalesOrderLifecycle(t *testing.T) {
	f := newSOFixture()
	so := f.create(t, models.SalesOrderRequest{})

	_, err := f.service.MarkDelivered(so.ID)
	assert.True(t, apperr.IsInvalidState(err), "draft cannot be delivered")

	so, err = f.service.Confirm(so.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SalesOrderStatusConfirmed, so.Status)

	so, err = f.service.MarkDelivered(so.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SalesOrderStatusDelivered, so.Status)
}

func TestUpdateSalesOrderRecomputesWithDiscount(t *testing.T) {
	f := newSOFixture()
	so := f.create(t, models.SalesOrderRequest{})

	updated, err := f.service.Update(so.ID, models.SalesOrderRequest{DiscountAmount: decp("20")})
	require.NoError(t, err)
	assert.True(t, updated.TotalAmount.Equal(dec("50.80")), "existing items repriced with new discount")

	_, err = f.service.Confirm(so.ID)
	require.NoError(t, err)
	_, err = f.service.Update(so.ID, models.SalesOrderRequest{Notes: strp("too late")})
	assert.True(t, apperr.IsInvalidState(err))
}

func TestCancelSalesOrderBlockedByInvoices(t *testing.T) {
	f := newSOFixture()
	so := f.create(t, models.SalesOrderRequest{})
	f.soRepo.hasInvoices = true

	_, err := f.service.Cancel(so.ID)
	assert.True(t, apperr.IsConflict(err))
}
