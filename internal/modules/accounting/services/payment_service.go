package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/bizledger/bizledger-be/internal/core/apperr"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/repositories"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PaymentService applies money against posted invoices and bills. Creating
// a linked payment and moving the document's paid/due amounts is a single
// transaction; deleting a payment reverses it symmetrically.
type PaymentService struct {
	paymentRepo repositories.PaymentRepo
	invoiceRepo repositories.CustomerInvoiceRepo
	billRepo    repositories.VendorBillRepo
	contactRepo repositories.ContactRepo
	numbers     NumberGenerator
	mailer      Mailer
	notifier    Notifier
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepo,
	invoiceRepo repositories.CustomerInvoiceRepo,
	billRepo repositories.VendorBillRepo,
	contactRepo repositories.ContactRepo,
	numbers NumberGenerator,
	mailer Mailer,
	notifier Notifier,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		billRepo:    billRepo,
		contactRepo: contactRepo,
		numbers:     numbers,
		mailer:      mailer,
		notifier:    notifier,
	}
}

func (s *PaymentService) Create(req models.PaymentRequest, createdBy string) (*models.Payment, error) {
	if req.PaymentType != models.PaymentTypeIncoming && req.PaymentType != models.PaymentTypeOutgoing {
		return nil, apperr.InvalidRequest("payment_type must be incoming or outgoing")
	}
	if req.Amount == nil || !req.Amount.IsPositive() {
		return nil, apperr.InvalidRequest("payment amount must be positive")
	}
	if req.PaymentMethod == "" || !models.IsValidPaymentMethod(req.PaymentMethod) {
		return nil, apperr.InvalidRequest("payment_method must be one of cash, bank_transfer, cheque, upi, card, online")
	}
	if req.InvoiceID != nil && *req.InvoiceID != "" && req.PaymentType != models.PaymentTypeIncoming {
		return nil, apperr.InvalidRequest("invoice payments must be incoming")
	}
	if req.BillID != nil && *req.BillID != "" && req.PaymentType != models.PaymentTypeOutgoing {
		return nil, apperr.InvalidRequest("bill payments must be outgoing")
	}

	amount := *req.Amount
	paymentDate := time.Now().UTC()
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	payment := &models.Payment{
		PaymentType:     req.PaymentType,
		Amount:          amount,
		PaymentMethod:   req.PaymentMethod,
		PaymentDate:     paymentDate,
		ContactID:       req.ContactID,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
		CreatedBy:       createdBy,
	}

	var invoice *models.CustomerInvoice
	var bill *models.VendorBill

	switch {
	case req.InvoiceID != nil && *req.InvoiceID != "":
		var err error
		invoice, err = s.invoiceRepo.GetByID(*req.InvoiceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("invoice not found")
			}
			return nil, err
		}
		if invoice.Status != models.CustomerInvoiceStatusPosted {
			return nil, apperr.InvalidState("payments can only be applied to posted invoices")
		}
		if invoice.AmountPaid.Add(amount).GreaterThan(invoice.TotalAmount) {
			return nil, apperr.InvalidRequest("payment amount exceeds invoice balance")
		}
		invoice.AmountPaid, invoice.AmountDue, invoice.PaymentStatus =
			models.ApplyPayment(invoice.AmountPaid, invoice.TotalAmount, amount)
		payment.InvoiceID = &invoice.ID
		payment.ContactID = &invoice.CustomerID

	case req.BillID != nil && *req.BillID != "":
		var err error
		bill, err = s.billRepo.GetByID(*req.BillID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("vendor bill not found")
			}
			return nil, err
		}
		if bill.Status != models.VendorBillStatusPosted {
			return nil, apperr.InvalidState("payments can only be applied to posted bills")
		}
		if bill.AmountPaid.Add(amount).GreaterThan(bill.TotalAmount) {
			return nil, apperr.InvalidRequest("payment amount exceeds bill balance")
		}
		bill.AmountPaid, bill.AmountDue, bill.PaymentStatus =
			models.ApplyPayment(bill.AmountPaid, bill.TotalAmount, amount)
		payment.BillID = &bill.ID
		payment.ContactID = &bill.VendorID

	default:
		// Freestanding payment, optionally tied to a contact.
		if req.ContactID != nil && *req.ContactID != "" {
			if _, err := s.contactRepo.GetByID(*req.ContactID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, apperr.NotFound("contact not found")
				}
				return nil, err
			}
		}
	}

	number, err := s.numbers.Next("PAY", time.Now().UTC())
	if err != nil {
		return nil, err
	}
	payment.PaymentNumber = number

	if err := s.paymentRepo.CreateApplied(payment, invoice, bill); err != nil {
		return nil, err
	}
	log.Info().
		Str("payment_id", payment.ID).
		Str("payment_number", payment.PaymentNumber).
		Str("payment_type", payment.PaymentType).
		Str("amount", payment.Amount.StringFixed(2)).
		Msg("payment recorded")

	s.afterCreate(payment, invoice)
	return payment, nil
}

// afterCreate fires notifications and the confirmation email. Failures are
// logged, never surfaced: the payment is already committed.
func (s *PaymentService) afterCreate(payment *models.Payment, invoice *models.CustomerInvoice) {
	if s.notifier != nil {
		_ = s.notifier.NotifyAdmins(
			"New payment",
			fmt.Sprintf("%s payment %s of %s recorded", payment.PaymentType, payment.PaymentNumber, payment.Amount.StringFixed(2)),
			"payment",
		)
	}

	if s.mailer == nil || payment.PaymentType != models.PaymentTypeIncoming || payment.ContactID == nil {
		return
	}
	contact, err := s.contactRepo.GetByID(*payment.ContactID)
	if err != nil || contact.Email == "" {
		return
	}
	invoiceNumber := ""
	if invoice != nil {
		invoiceNumber = invoice.InvoiceNumber
	}
	if err := s.mailer.SendPaymentConfirmation(payment, contact, invoiceNumber); err != nil {
		log.Warn().Err(err).Str("payment_id", payment.ID).Msg("failed to send payment confirmation")
	}
}

func (s *PaymentService) Get(id string) (*models.PaymentDetail, error) {
	detail, err := s.paymentRepo.GetDetail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("payment not found")
		}
		return nil, err
	}
	return detail, nil
}

func (s *PaymentService) List(filter models.PaymentFilter) ([]models.PaymentDetail, int64, error) {
	return s.paymentRepo.List(filter)
}

// Update edits bookkeeping fields only. Amount, type and target are fixed;
// delete and re-create to change them.
func (s *PaymentService) Update(id string, req models.PaymentUpdateRequest) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("payment not found")
		}
		return nil, err
	}
	if payment.IsReconciled {
		return nil, apperr.InvalidState("reconciled payments cannot be edited")
	}

	if req.PaymentMethod != nil {
		if !models.IsValidPaymentMethod(*req.PaymentMethod) {
			return nil, apperr.InvalidRequest("payment_method must be one of cash, bank_transfer, cheque, upi, card, online")
		}
		payment.PaymentMethod = *req.PaymentMethod
	}
	if req.PaymentDate != nil {
		payment.PaymentDate = *req.PaymentDate
	}
	if req.ReferenceNumber != nil {
		payment.ReferenceNumber = *req.ReferenceNumber
	}
	if req.Notes != nil {
		payment.Notes = *req.Notes
	}

	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// Delete removes a payment and rolls its amount back off the linked
// document, clamping paid at zero.
func (s *PaymentService) Delete(id string) error {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("payment not found")
		}
		return err
	}
	if payment.IsReconciled {
		return apperr.InvalidState("reconciled payments cannot be deleted")
	}

	var invoice *models.CustomerInvoice
	var bill *models.VendorBill

	if payment.InvoiceID != nil {
		invoice, err = s.invoiceRepo.GetByID(*payment.InvoiceID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if invoice != nil {
			invoice.AmountPaid, invoice.AmountDue, invoice.PaymentStatus =
				models.ReversePayment(invoice.AmountPaid, invoice.TotalAmount, payment.Amount)
		}
	}
	if payment.BillID != nil {
		bill, err = s.billRepo.GetByID(*payment.BillID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if bill != nil {
			bill.AmountPaid, bill.AmountDue, bill.PaymentStatus =
				models.ReversePayment(bill.AmountPaid, bill.TotalAmount, payment.Amount)
		}
	}

	if err := s.paymentRepo.DeleteReversed(payment, invoice, bill); err != nil {
		return err
	}
	log.Info().Str("payment_id", payment.ID).Str("payment_number", payment.PaymentNumber).Msg("payment deleted and reversed")
	return nil
}

// ToggleReconcile flips the reconciliation flag. Reconciled payments are
// locked against edits and deletion.
func (s *PaymentService) ToggleReconcile(id string) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("payment not found")
		}
		return nil, err
	}
	payment.IsReconciled = !payment.IsReconciled
	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, err
	}
	return payment, nil
}
