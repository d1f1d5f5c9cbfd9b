package services

import (
	"errors"
	"testing"

	"github.com/bizledger/bizledger-be/internal/core/apperr"
	gateway "github.com/bizledger/bizledger-be/internal/core/payment"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGateway struct {
	orders    int
	rejectSig bool
}

func (g *stubGateway) Name() string { return "stub" }

func (g *stubGateway) CreateOrder(amount decimal.Decimal, reference string) (*gateway.Order, error) {
	g.orders++
	return &gateway.Order{
		GatewayOrderID: "order_stub_1",
		Amount:         amount,
		Currency:       "INR",
	}, nil
}

func (g *stubGateway) VerifyCallback(orderID, paymentID, signature string) error {
	if g.rejectSig {
		return errors.New("signature mismatch")
	}
	return nil
}

type portalFixture struct {
	service         *PortalService
	invoiceRepo     *fakeCustomerInvoiceRepo
	soRepo          *fakeSalesOrderRepo
	contactRepo     *fakeContactRepo
	portalOrderRepo *fakePortalOrderRepo
	paymentRepo     *fakePaymentRepo
	gateway         *stubGateway
	customer        *models.Contact
	stranger        *models.Contact
}

func newPortalFixture() *portalFixture {
	invoiceRepo := newFakeCustomerInvoiceRepo()
	billRepo := newFakeVendorBillRepo()
	soRepo := newFakeSalesOrderRepo()
	contactRepo := newFakeContactRepo()
	portalOrderRepo := newFakePortalOrderRepo()
	paymentRepo := newFakePaymentRepo(invoiceRepo, billRepo)
	gw := &stubGateway{}

	customer := &models.Contact{Name: "Acme Traders", ContactType: models.ContactTypeCustomer}
	_ = contactRepo.Create(customer)
	stranger := &models.Contact{Name: "Other Co", ContactType: models.ContactTypeCustomer}
	_ = contactRepo.Create(stranger)

	payments := NewPaymentService(paymentRepo, invoiceRepo, billRepo, contactRepo, &fakeNumbers{}, &fakeMailer{}, &fakeNotifier{})
	return &portalFixture{
		service:         NewPortalService(contactRepo, invoiceRepo, soRepo, portalOrderRepo, payments, gw),
		invoiceRepo:     invoiceRepo,
		soRepo:          soRepo,
		contactRepo:     contactRepo,
		portalOrderRepo: portalOrderRepo,
		paymentRepo:     paymentRepo,
		gateway:         gw,
		customer:        customer,
		stranger:        stranger,
	}
}

func (f *portalFixture) seedInvoice(customerID, status, due string) *models.CustomerInvoice {
	inv := &models.CustomerInvoice{
		InvoiceNumber: "INV-202608-0001",
		CustomerID:    customerID,
		Status:        status,
		TotalAmount:   dec(due),
		AmountDue:     dec(due),
		PaymentStatus: models.PaymentStatusNotPaid,
	}
	_ = f.invoiceRepo.Create(inv)
	return inv
}

func TestPortalGetInvoiceOwnership(t *testing.T) {
	f := newPortalFixture()
	inv := f.seedInvoice(f.customer.ID, models.CustomerInvoiceStatusPosted, "500")

	got, err := f.service.GetInvoice(f.customer.ID, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, inv.ID, got.ID)

	_, err = f.service.GetInvoice(f.stranger.ID, inv.ID)
	assert.True(t, apperr.IsForbidden(err))
}

func TestPortalGetOrderOwnership(t *testing.T) {
	f := newPortalFixture()
	so := &models.SalesOrder{SONumber: "SO-202608-0001", CustomerID: f.customer.ID, Status: models.SalesOrderStatusConfirmed}
	_ = f.soRepo.Create(so)

	_, err := f.service.GetOrder(f.customer.ID, so.ID)
	require.NoError(t, err)

	_, err = f.service.GetOrder(f.stranger.ID, so.ID)
	assert.True(t, apperr.IsForbidden(err))
}

func TestPortalUpdateProfileLeavesFinancialFields(t *testing.T) {
	f := newPortalFixture()
	f.customer.PaymentTerms = 45
	f.customer.CreditLimit = dec("10000")
	_ = f.contactRepo.Update(f.customer)

	terms := 1
	updated, err := f.service.UpdateProfile(f.customer.ID, models.ContactRequest{
		Name:         "Acme Traders Pvt Ltd",
		Email:        "accounts@acme.test",
		PaymentTerms: &terms,
		CreditLimit:  decp("1"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Traders Pvt Ltd", updated.Name)
	assert.Equal(t, "accounts@acme.test", updated.Email)
	assert.Equal(t, 45, updated.PaymentTerms, "terms stay admin-only")
	assert.True(t, updated.CreditLimit.Equal(dec("10000")), "credit limit stays admin-only")
}

func TestPortalInitiatePayment(t *testing.T) {
	f := newPortalFixture()
	inv := f.seedInvoice(f.customer.ID, models.CustomerInvoiceStatusPosted, "500")

	order, err := f.service.InitiatePayment(f.customer.ID, inv.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, f.gateway.orders)
	assert.True(t, order.Amount.Equal(dec("500")))

	record, err := f.portalOrderRepo.GetByGatewayOrderID(order.GatewayOrderID)
	require.NoError(t, err)
	assert.Equal(t, inv.ID, record.InvoiceID)
	assert.Equal(t, "stub", record.GatewayName)
	assert.Equal(t, models.PortalPaymentOrderStatusCreated, record.Status)
}

func TestPortalInitiatePaymentGuards(t *testing.T) {
	f := newPortalFixture()

	draft := f.seedInvoice(f.customer.ID, models.CustomerInvoiceStatusDraft, "500")
	_, err := f.service.InitiatePayment(f.customer.ID, draft.ID)
	assert.True(t, apperr.IsInvalidState(err), "draft invoice")

	settled := f.seedInvoice(f.customer.ID, models.CustomerInvoiceStatusPosted, "500")
	settled.AmountDue = decimal.Zero
	settled.AmountPaid = dec("500")
	settled.PaymentStatus = models.PaymentStatusPaid
	_ = f.invoiceRepo.Update(settled)
	_, err = f.service.InitiatePayment(f.customer.ID, settled.ID)
	assert.True(t, apperr.IsInvalidState(err), "nothing outstanding")

	foreign := f.seedInvoice(f.stranger.ID, models.CustomerInvoiceStatusPosted, "500")
	_, err = f.service.InitiatePayment(f.customer.ID, foreign.ID)
	assert.True(t, apperr.IsForbidden(err))
}

func TestPortalCompletePayment(t *testing.T) {
	f := newPortalFixture()
	inv := f.seedInvoice(f.customer.ID, models.CustomerInvoiceStatusPosted, "500")
	order, err := f.service.InitiatePayment(f.customer.ID, inv.ID)
	require.NoError(t, err)

	payment, err := f.service.CompletePayment(PaymentCallbackRequest{
		GatewayOrderID:   order.GatewayOrderID,
		GatewayPaymentID: "pay_stub_1",
		Signature:        "sig",
	})
	require.NoError(t, err)

	assert.Equal(t, "online", payment.PaymentMethod)
	assert.Equal(t, "pay_stub_1", payment.ReferenceNumber)

	saved := f.paymentRepo.savedInvoice
	require.NotNil(t, saved)
	assert.Equal(t, models.PaymentStatusPaid, saved.PaymentStatus)

	record, _ := f.portalOrderRepo.GetByGatewayOrderID(order.GatewayOrderID)
	assert.Equal(t, models.PortalPaymentOrderStatusCompleted, record.Status)

	// Replays are rejected once completed.
	_, err = f.service.CompletePayment(PaymentCallbackRequest{
		GatewayOrderID:   order.GatewayOrderID,
		GatewayPaymentID: "pay_stub_1",
		Signature:        "sig",
	})
	assert.True(t, apperr.IsInvalidState(err))
}

func TestPortalCompletePaymentBadSignature(t *testing.T) {
	f := newPortalFixture()
	inv := f.seedInvoice(f.customer.ID, models.CustomerInvoiceStatusPosted, "500")
	order, err := f.service.InitiatePayment(f.customer.ID, inv.ID)
	require.NoError(t, err)

	f.gateway.rejectSig = true
	_, err = f.service.CompletePayment(PaymentCallbackRequest{
		GatewayOrderID:   order.GatewayOrderID,
		GatewayPaymentID: "pay_stub_1",
		Signature:        "bad",
	})
	assert.True(t, apperr.IsInvalidRequest(err))

	stored, _ := f.invoiceRepo.GetByID(inv.ID)
	assert.True(t, stored.AmountPaid.IsZero(), "no payment recorded on bad signature")
	assert.Empty(t, f.paymentRepo.payments)
}

func TestPortalCompletePaymentUnknownOrder(t *testing.T) {
	f := newPortalFixture()
	_, err := f.service.CompletePayment(PaymentCallbackRequest{
		GatewayOrderID:   "order_missing",
		GatewayPaymentID: "pay_1",
		Signature:        "sig",
	})
	assert.True(t, apperr.IsNotFound(err))
}
