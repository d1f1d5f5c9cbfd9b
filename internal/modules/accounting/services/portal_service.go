package services

import (
	"errors"

	"github.com/bizledger/bizledger-be/internal/core/apperr"
	gateway "github.com/bizledger/bizledger-be/internal/core/payment"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/repositories"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PortalService is the customer-facing surface: a portal user only ever
// sees documents belonging to their own contact.
type PortalService struct {
	contactRepo     repositories.ContactRepo
	invoiceRepo     repositories.CustomerInvoiceRepo
	soRepo          repositories.SalesOrderRepo
	portalOrderRepo repositories.PortalPaymentOrderRepo
	payments        *PaymentService
	gateway         gateway.Gateway
}

func NewPortalService(
	contactRepo repositories.ContactRepo,
	invoiceRepo repositories.CustomerInvoiceRepo,
	soRepo repositories.SalesOrderRepo,
	portalOrderRepo repositories.PortalPaymentOrderRepo,
	payments *PaymentService,
	gw gateway.Gateway,
) *PortalService {
	return &PortalService{
		contactRepo:     contactRepo,
		invoiceRepo:     invoiceRepo,
		soRepo:          soRepo,
		portalOrderRepo: portalOrderRepo,
		payments:        payments,
		gateway:         gw,
	}
}

func (s *PortalService) Profile(contactID string) (*models.Contact, error) {
	contact, err := s.contactRepo.GetByID(contactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("contact not found")
		}
		return nil, err
	}
	return contact, nil
}

// UpdateProfile lets the customer maintain their own coordinates. Financial
// fields (payment terms, credit limit) stay admin-only.
func (s *PortalService) UpdateProfile(contactID string, req models.ContactRequest) (*models.Contact, error) {
	contact, err := s.Profile(contactID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		contact.Name = req.Name
	}
	contact.Email = req.Email
	contact.Phone = req.Phone
	contact.Mobile = req.Mobile
	if req.BillingAddress != nil {
		contact.BillingAddress = marshalAddress(req.BillingAddress)
	}
	if req.ShippingAddress != nil {
		contact.ShippingAddress = marshalAddress(req.ShippingAddress)
	}

	if err := s.contactRepo.Update(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *PortalService) ListInvoices(contactID string) ([]models.CustomerInvoice, error) {
	return s.invoiceRepo.ListByCustomer(contactID)
}

func (s *PortalService) GetInvoice(contactID, invoiceID string) (*models.CustomerInvoice, error) {
	invoice, err := s.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("invoice not found")
		}
		return nil, err
	}
	if invoice.CustomerID != contactID {
		return nil, apperr.Forbidden("invoice belongs to another customer")
	}
	return invoice, nil
}

func (s *PortalService) ListOrders(contactID string) ([]models.SalesOrder, error) {
	return s.soRepo.ListByCustomer(contactID)
}

func (s *PortalService) GetOrder(contactID, orderID string) (*models.SalesOrder, error) {
	order, err := s.soRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("sales order not found")
		}
		return nil, err
	}
	if order.CustomerID != contactID {
		return nil, apperr.Forbidden("sales order belongs to another customer")
	}
	return order, nil
}

// InitiatePayment opens a gateway order for the invoice's outstanding
// balance and remembers it for the callback.
func (s *PortalService) InitiatePayment(contactID, invoiceID string) (*gateway.Order, error) {
	invoice, err := s.GetInvoice(contactID, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status != models.CustomerInvoiceStatusPosted {
		return nil, apperr.InvalidState("only posted invoices can be paid")
	}
	if !invoice.AmountDue.GreaterThan(decimal.Zero) {
		return nil, apperr.InvalidState("invoice has no outstanding balance")
	}

	order, err := s.gateway.CreateOrder(invoice.AmountDue, invoice.InvoiceNumber)
	if err != nil {
		return nil, err
	}

	record := &models.PortalPaymentOrder{
		InvoiceID:      invoice.ID,
		ContactID:      contactID,
		GatewayName:    s.gateway.Name(),
		GatewayOrderID: order.GatewayOrderID,
		Amount:         order.Amount,
		Status:         models.PortalPaymentOrderStatusCreated,
	}
	if err := s.portalOrderRepo.Create(record); err != nil {
		return nil, err
	}
	log.Info().
		Str("invoice_id", invoice.ID).
		Str("gateway_order_id", order.GatewayOrderID).
		Msg("portal payment initiated")
	return order, nil
}

// PaymentCallbackRequest is what the gateway checkout posts back.
type PaymentCallbackRequest struct {
	GatewayOrderID   string `json:"gateway_order_id"`
	GatewayPaymentID string `json:"gateway_payment_id"`
	Signature        string `json:"signature"`
}

// CompletePayment verifies the gateway signature and only then records the
// payment against the invoice.
func (s *PortalService) CompletePayment(req PaymentCallbackRequest) (*models.Payment, error) {
	if req.GatewayOrderID == "" || req.GatewayPaymentID == "" || req.Signature == "" {
		return nil, apperr.InvalidRequest("gateway_order_id, gateway_payment_id and signature are required")
	}

	record, err := s.portalOrderRepo.GetByGatewayOrderID(req.GatewayOrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("payment order not found")
		}
		return nil, err
	}
	if record.Status == models.PortalPaymentOrderStatusCompleted {
		return nil, apperr.InvalidState("payment order is already completed")
	}

	if err := s.gateway.VerifyCallback(req.GatewayOrderID, req.GatewayPaymentID, req.Signature); err != nil {
		log.Warn().Str("gateway_order_id", req.GatewayOrderID).Msg("payment callback signature rejected")
		return nil, apperr.InvalidRequest("payment signature verification failed")
	}

	amount := record.Amount
	payment, err := s.payments.Create(models.PaymentRequest{
		PaymentType:     models.PaymentTypeIncoming,
		Amount:          &amount,
		PaymentMethod:   "online",
		InvoiceID:       &record.InvoiceID,
		ReferenceNumber: req.GatewayPaymentID,
		Notes:           "Portal payment via " + record.GatewayName,
	}, "portal")
	if err != nil {
		return nil, err
	}

	record.Status = models.PortalPaymentOrderStatusCompleted
	if err := s.portalOrderRepo.Update(record); err != nil {
		log.Warn().Err(err).Str("gateway_order_id", record.GatewayOrderID).Msg("failed to mark payment order completed")
	}
	return payment, nil
}
