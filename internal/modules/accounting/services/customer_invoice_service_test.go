package services

import (
	"strings"
	"testing"
	"time"

	"github.com/bizledger/bizledger-be/internal/core/apperr"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invoiceFixture struct {
	service     *CustomerInvoiceService
	invoiceRepo *fakeCustomerInvoiceRepo
	soRepo      *fakeSalesOrderRepo
	contactRepo *fakeContactRepo
	productRepo *fakeProductRepo
	mailer      *fakeMailer
	customer    *models.Contact
	product     *models.Product
}

func newInvoiceFixture() *invoiceFixture {
	invoiceRepo := newFakeCustomerInvoiceRepo()
	soRepo := newFakeSalesOrderRepo()
	contactRepo := newFakeContactRepo()
	productRepo := newFakeProductRepo()
	mailer := &fakeMailer{}

	customer := &models.Contact{
		Name:         "Acme Traders",
		ContactType:  models.ContactTypeCustomer,
		Email:        "billing@acme.test",
		PaymentTerms: 15,
	}
	_ = contactRepo.Create(customer)
	product := seedProduct(productRepo)

	service := NewCustomerInvoiceService(
		invoiceRepo,
		soRepo,
		contactRepo,
		NewPricingService(productRepo),
		NewClassifierService(&fakeRuleRepo{}),
		&fakeNumbers{},
		fakeRenderer{},
		&fakeFileStore{},
		mailer,
		fakeQRProvider{},
		"BizLedger",
	)
	return &invoiceFixture{
		service:     service,
		invoiceRepo: invoiceRepo,
		soRepo:      soRepo,
		contactRepo: contactRepo,
		productRepo: productRepo,
		mailer:      mailer,
		customer:    customer,
		product:     product,
	}
}

func (f *invoiceFixture) create(t *testing.T, req models.CustomerInvoiceRequest) *models.CustomerInvoice {
	t.Helper()
	if req.CustomerID == "" {
		req.CustomerID = f.customer.ID
	}
	if req.Items == nil {
		req.Items = []models.LineItemRequest{{ProductID: f.product.ID, Quantity: decp("5")}}
	}
	invoice, err := f.service.Create(req, "user-1")
	require.NoError(t, err)
	return invoice
}

func TestCreateCustomerInvoice(t *testing.T) {
	f := newInvoiceFixture()
	invoiceDate := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	invoice := f.create(t, models.CustomerInvoiceRequest{InvoiceDate: &invoiceDate})

	assert.True(t, strings.HasPrefix(invoice.InvoiceNumber, "INV-"))
	assert.Equal(t, models.CustomerInvoiceStatusDraft, invoice.Status)
	assert.True(t, invoice.TotalAmount.Equal(dec("70.80")))
	assert.True(t, invoice.AmountDue.Equal(dec("70.80")))
	assert.Equal(t, models.PaymentStatusNotPaid, invoice.PaymentStatus)

	// Due date defaults from the customer's payment terms.
	require.NotNil(t, invoice.DueDate)
	assert.Equal(t, invoiceDate.AddDate(0, 0, 15), *invoice.DueDate)
}

func TestCreateCustomerInvoiceRejectsForeignSalesOrder(t *testing.T) {
	f := newInvoiceFixture()
	other := &models.Contact{Name: "Other Co", ContactType: models.ContactTypeCustomer}
	_ = f.contactRepo.Create(other)
	so := &models.SalesOrder{SONumber: "SO-202608-0001", CustomerID: other.ID, Status: models.SalesOrderStatusConfirmed}
	_ = f.soRepo.Create(so)

	_, err := f.service.Create(models.CustomerInvoiceRequest{
		CustomerID:   f.customer.ID,
		SalesOrderID: &so.ID,
		Items:        []models.LineItemRequest{{ProductID: f.product.ID}},
	}, "u")
	assert.True(t, apperr.IsInvalidRequest(err))
}

func TestPostCustomerInvoiceEmailsCustomer(t *testing.T) {
	f := newInvoiceFixture()
	invoice := f.create(t, models.CustomerInvoiceRequest{})

	invoice, err := f.service.Post(invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CustomerInvoiceStatusPosted, invoice.Status)
	assert.Equal(t, 1, f.mailer.invoicesSent)

	_, err = f.service.Post(invoice.ID)
	assert.True(t, apperr.IsInvalidState(err))
}

func TestPostCustomerInvoiceNoEmailWithoutAddress(t *testing.T) {
	f := newInvoiceFixture()
	f.customer.Email = ""
	_ = f.contactRepo.Update(f.customer)
	invoice := f.create(t, models.CustomerInvoiceRequest{})

	_, err := f.service.Post(invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, f.mailer.invoicesSent)
}

func TestSendInvoiceEmail(t *testing.T) {
	f := newInvoiceFixture()
	invoice := f.create(t, models.CustomerInvoiceRequest{})
	_, err := f.service.Post(invoice.ID)
	require.NoError(t, err)
	require.Equal(t, 1, f.mailer.invoicesSent)

	// Manual resend after the post-time email.
	require.NoError(t, f.service.SendEmail(invoice.ID))
	assert.Equal(t, 2, f.mailer.invoicesSent)
}

func TestSendInvoiceEmailRequiresCustomerAddress(t *testing.T) {
	f := newInvoiceFixture()
	invoice := f.create(t, models.CustomerInvoiceRequest{})
	f.customer.Email = ""
	_ = f.contactRepo.Update(f.customer)

	err := f.service.SendEmail(invoice.ID)
	assert.True(t, apperr.IsInvalidRequest(err))
	assert.Equal(t, 0, f.mailer.invoicesSent)

	err = f.service.SendEmail("missing")
	assert.True(t, apperr.IsNotFound(err))
}

func TestCancelCustomerInvoiceGuards(t *testing.T) {
	f := newInvoiceFixture()
	invoice := f.create(t, models.CustomerInvoiceRequest{})

	invoice, err := f.service.Cancel(invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CustomerInvoiceStatusCancelled, invoice.Status)

	_, err = f.service.Cancel(invoice.ID)
	assert.True(t, apperr.IsInvalidState(err), "already cancelled")

	paid := f.create(t, models.CustomerInvoiceRequest{})
	stored, _ := f.invoiceRepo.GetByID(paid.ID)
	stored.AmountPaid, stored.AmountDue, stored.PaymentStatus =
		models.ApplyPayment(stored.AmountPaid, stored.TotalAmount, dec("10"))
	_ = f.invoiceRepo.Update(stored)

	_, err = f.service.Cancel(paid.ID)
	assert.True(t, apperr.IsInvalidState(err), "has recorded payments")
}

func TestUpdateCustomerInvoiceKeepsPaymentBookkeeping(t *testing.T) {
	f := newInvoiceFixture()
	invoice := f.create(t, models.CustomerInvoiceRequest{})

	updated, err := f.service.Update(invoice.ID, models.CustomerInvoiceRequest{
		Items: []models.LineItemRequest{{ProductID: f.product.ID, Quantity: decp("10"), TaxRate: decp("0")}},
	})
	require.NoError(t, err)
	assert.True(t, updated.TotalAmount.Equal(dec("120")))
	assert.True(t, updated.AmountDue.Equal(dec("120")))
	assert.Equal(t, models.PaymentStatusNotPaid, updated.PaymentStatus)
}

func TestUpdateCustomerInvoiceKeepsNotesWhenOmitted(t *testing.T) {
	f := newInvoiceFixture()
	invoice := f.create(t, models.CustomerInvoiceRequest{Notes: strp("payment by NEFT only")})

	updated, err := f.service.Update(invoice.ID, models.CustomerInvoiceRequest{
		Items: []models.LineItemRequest{{ProductID: f.product.ID, Quantity: decp("2")}},
	})
	require.NoError(t, err)
	assert.Equal(t, "payment by NEFT only", updated.Notes)

	updated, err = f.service.Update(invoice.ID, models.CustomerInvoiceRequest{Notes: strp("")})
	require.NoError(t, err)
	assert.Empty(t, updated.Notes)
}

func TestDeleteCustomerInvoiceDraftOnly(t *testing.T) {
	f := newInvoiceFixture()
	invoice := f.create(t, models.CustomerInvoiceRequest{})
	_, err := f.service.Post(invoice.ID)
	require.NoError(t, err)

	err = f.service.Delete(invoice.ID)
	assert.True(t, apperr.IsInvalidState(err))

	draft := f.create(t, models.CustomerInvoiceRequest{})
	require.NoError(t, f.service.Delete(draft.ID))
}

func TestGenerateInvoicePDF(t *testing.T) {
	f := newInvoiceFixture()
	invoice := f.create(t, models.CustomerInvoiceRequest{})

	invoice, err := f.service.GeneratePDF(invoice.ID)
	require.NoError(t, err)
	assert.Contains(t, invoice.PDFURL, invoice.InvoiceNumber)
}
