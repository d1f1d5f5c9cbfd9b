package services

import (
	"errors"
	"time"

	"github.com/bizledger/bizledger-be/internal/core/apperr"
	"github.com/bizledger/bizledger-be/internal/core/export"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/repositories"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CustomerInvoiceService struct {
	invoiceRepo repositories.CustomerInvoiceRepo
	soRepo      repositories.SalesOrderRepo
	contactRepo repositories.ContactRepo
	pricing     *PricingService
	classifier  *ClassifierService
	numbers     NumberGenerator
	renderer    DocumentRenderer
	files       FileStore
	mailer      Mailer
	paymentQR   PaymentQRProvider

	businessName string
}

func NewCustomerInvoiceService(
	invoiceRepo repositories.CustomerInvoiceRepo,
	soRepo repositories.SalesOrderRepo,
	contactRepo repositories.ContactRepo,
	pricing *PricingService,
	classifier *ClassifierService,
	numbers NumberGenerator,
	renderer DocumentRenderer,
	files FileStore,
	mailer Mailer,
	paymentQR PaymentQRProvider,
	businessName string,
) *CustomerInvoiceService {
	return &CustomerInvoiceService{
		invoiceRepo:  invoiceRepo,
		soRepo:       soRepo,
		contactRepo:  contactRepo,
		pricing:      pricing,
		classifier:   classifier,
		numbers:      numbers,
		renderer:     renderer,
		files:        files,
		mailer:       mailer,
		paymentQR:    paymentQR,
		businessName: businessName,
	}
}

func (s *CustomerInvoiceService) getCustomer(customerID string) (*models.Contact, error) {
	if customerID == "" {
		return nil, apperr.InvalidRequest("customer_id is required")
	}
	customer, err := s.contactRepo.GetByID(customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("customer not found")
		}
		return nil, err
	}
	if !customer.IsCustomer() {
		return nil, apperr.InvalidRequest("contact %s is not a customer", customer.Name)
	}
	return customer, nil
}

func (s *CustomerInvoiceService) checkSalesOrder(soID *string, customerID string) error {
	if soID == nil || *soID == "" {
		return nil
	}
	so, err := s.soRepo.GetByID(*soID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("sales order not found")
		}
		return err
	}
	if so.CustomerID != customerID {
		return apperr.InvalidRequest("sales order belongs to a different customer")
	}
	return nil
}

func (s *CustomerInvoiceService) Create(req models.CustomerInvoiceRequest, createdBy string) (*models.CustomerInvoice, error) {
	customer, err := s.getCustomer(req.CustomerID)
	if err != nil {
		return nil, err
	}
	if err := s.checkSalesOrder(req.SalesOrderID, customer.ID); err != nil {
		return nil, err
	}

	items, firstProduct, err := s.pricing.BuildLineItems(req.Items, PriceSideSale)
	if err != nil {
		return nil, err
	}

	discount := decimal.Zero
	if req.DiscountAmount != nil {
		if req.DiscountAmount.IsNegative() {
			return nil, apperr.InvalidRequest("discount_amount cannot be negative")
		}
		discount = *req.DiscountAmount
	}
	totals := models.ComputeTotals(items, discount)

	invoiceDate := time.Now().UTC()
	if req.InvoiceDate != nil {
		invoiceDate = *req.InvoiceDate
	}
	dueDate := req.DueDate
	if dueDate == nil {
		// Default from the customer's payment terms.
		d := invoiceDate.AddDate(0, 0, customer.PaymentTerms)
		dueDate = &d
	}

	accountID := req.AnalyticalAccountID
	if accountID == nil || *accountID == "" {
		accountID, err = s.classifier.Classify(ClassificationInput{
			Product:     firstProduct,
			ContactID:   customer.ID,
			TotalAmount: totals.TotalAmount,
		})
		if err != nil {
			return nil, err
		}
	}

	number, err := s.numbers.Next("INV", time.Now().UTC())
	if err != nil {
		return nil, err
	}
	rawItems, err := models.MarshalItems(items)
	if err != nil {
		return nil, err
	}

	invoice := &models.CustomerInvoice{
		InvoiceNumber:       number,
		CustomerID:          customer.ID,
		SalesOrderID:        req.SalesOrderID,
		InvoiceDate:         invoiceDate,
		DueDate:             dueDate,
		Status:              models.CustomerInvoiceStatusDraft,
		Items:               rawItems,
		Subtotal:            totals.Subtotal,
		TaxAmount:           totals.TaxAmount,
		DiscountAmount:      discount,
		TotalAmount:         totals.TotalAmount,
		AmountDue:           totals.TotalAmount,
		PaymentStatus:       models.PaymentStatusNotPaid,
		AnalyticalAccountID: accountID,
		CreatedBy:           createdBy,
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}
	if err := s.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}
	log.Info().Str("invoice_id", invoice.ID).Str("invoice_number", invoice.InvoiceNumber).Msg("customer invoice created")
	return invoice, nil
}

func (s *CustomerInvoiceService) Get(id string) (*models.CustomerInvoice, error) {
	invoice, err := s.invoiceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("customer invoice not found")
		}
		return nil, err
	}
	return invoice, nil
}

func (s *CustomerInvoiceService) List(filter models.DocumentFilter) ([]models.CustomerInvoice, int64, error) {
	return s.invoiceRepo.List(filter)
}

// Update edits a draft invoice; posted invoices are immutable.
func (s *CustomerInvoiceService) Update(id string, req models.CustomerInvoiceRequest) (*models.CustomerInvoice, error) {
	invoice, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if invoice.Status != models.CustomerInvoiceStatusDraft {
		return nil, apperr.InvalidState("only draft invoices can be edited")
	}

	if req.CustomerID != "" && req.CustomerID != invoice.CustomerID {
		customer, err := s.getCustomer(req.CustomerID)
		if err != nil {
			return nil, err
		}
		invoice.CustomerID = customer.ID
	}
	if req.SalesOrderID != nil {
		if err := s.checkSalesOrder(req.SalesOrderID, invoice.CustomerID); err != nil {
			return nil, err
		}
		invoice.SalesOrderID = req.SalesOrderID
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}
	if req.InvoiceDate != nil {
		invoice.InvoiceDate = *req.InvoiceDate
	}
	if req.DueDate != nil {
		invoice.DueDate = req.DueDate
	}
	if req.AnalyticalAccountID != nil {
		invoice.AnalyticalAccountID = req.AnalyticalAccountID
	}
	if req.DiscountAmount != nil {
		if req.DiscountAmount.IsNegative() {
			return nil, apperr.InvalidRequest("discount_amount cannot be negative")
		}
		invoice.DiscountAmount = *req.DiscountAmount
	}

	items, err := models.UnmarshalItems(invoice.Items)
	if err != nil {
		return nil, err
	}
	if req.Items != nil {
		items, _, err = s.pricing.BuildLineItems(req.Items, PriceSideSale)
		if err != nil {
			return nil, err
		}
		rawItems, err := models.MarshalItems(items)
		if err != nil {
			return nil, err
		}
		invoice.Items = rawItems
	}
	totals := models.ComputeTotals(items, invoice.DiscountAmount)
	invoice.Subtotal = totals.Subtotal
	invoice.TaxAmount = totals.TaxAmount
	invoice.TotalAmount = totals.TotalAmount
	invoice.AmountDue = totals.TotalAmount.Sub(invoice.AmountPaid)
	invoice.PaymentStatus = models.PaymentStatusFor(invoice.AmountPaid, invoice.TotalAmount)

	if err := s.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// Post makes the invoice payable and emails it to the customer.
func (s *CustomerInvoiceService) Post(id string) (*models.CustomerInvoice, error) {
	invoice, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if invoice.Status != models.CustomerInvoiceStatusDraft {
		return nil, apperr.InvalidState("only draft invoices can be posted")
	}
	invoice.Status = models.CustomerInvoiceStatusPosted
	if err := s.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	log.Info().Str("invoice_id", invoice.ID).Str("invoice_number", invoice.InvoiceNumber).Msg("customer invoice posted")

	if s.mailer != nil {
		customer, err := s.contactRepo.GetByID(invoice.CustomerID)
		if err == nil && customer.Email != "" {
			if err := s.mailer.SendInvoicePosted(invoice, customer); err != nil {
				log.Warn().Err(err).Str("invoice_id", invoice.ID).Msg("failed to send invoice email")
			}
		}
	}
	return invoice, nil
}

// SendEmail re-sends the invoice email on demand. It fails when the
// customer has no email address on file.
func (s *CustomerInvoiceService) SendEmail(id string) error {
	invoice, err := s.Get(id)
	if err != nil {
		return err
	}
	customer, err := s.contactRepo.GetByID(invoice.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("customer not found")
		}
		return err
	}
	if customer.Email == "" {
		return apperr.InvalidRequest("customer email not found")
	}
	if s.mailer == nil {
		return apperr.InvalidRequest("outbound email is not configured")
	}
	if err := s.mailer.SendInvoicePosted(invoice, customer); err != nil {
		return err
	}
	log.Info().Str("invoice_id", invoice.ID).Str("email", customer.Email).Msg("invoice email sent")
	return nil
}

func (s *CustomerInvoiceService) Cancel(id string) (*models.CustomerInvoice, error) {
	invoice, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if invoice.Status == models.CustomerInvoiceStatusCancelled {
		return nil, apperr.InvalidState("invoice is already cancelled")
	}
	if invoice.AmountPaid.GreaterThan(decimal.Zero) {
		return nil, apperr.InvalidState("cannot cancel an invoice with recorded payments")
	}
	invoice.Status = models.CustomerInvoiceStatusCancelled
	if err := s.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	log.Info().Str("invoice_id", invoice.ID).Msg("customer invoice cancelled")
	return invoice, nil
}

func (s *CustomerInvoiceService) Delete(id string) error {
	invoice, err := s.Get(id)
	if err != nil {
		return err
	}
	if invoice.Status != models.CustomerInvoiceStatusDraft {
		return apperr.InvalidState("only draft invoices can be deleted")
	}
	return s.invoiceRepo.Delete(invoice.ID)
}

// GeneratePDF renders the invoice with an optional UPI QR, stores the file
// and records its URL.
func (s *CustomerInvoiceService) GeneratePDF(id string) (*models.CustomerInvoice, error) {
	invoice, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	customer, err := s.contactRepo.GetByID(invoice.CustomerID)
	if err != nil {
		return nil, err
	}
	items, err := models.UnmarshalItems(invoice.Items)
	if err != nil {
		return nil, err
	}

	paid := invoice.AmountPaid
	due := invoice.AmountDue
	data := export.DocumentData{
		Title:          "TAX INVOICE",
		Number:         invoice.InvoiceNumber,
		Date:           invoice.InvoiceDate,
		DueDate:        invoice.DueDate,
		PartyLabel:     "Customer",
		PartyName:      customer.Name,
		PartyLines:     addressLines(customer.BillingAddress),
		Lines:          exportLines(items),
		Subtotal:       invoice.Subtotal,
		TaxAmount:      invoice.TaxAmount,
		DiscountAmount: invoice.DiscountAmount,
		TotalAmount:    invoice.TotalAmount,
		AmountPaid:     &paid,
		AmountDue:      &due,
		Notes:          invoice.Notes,
		BusinessName:   s.businessName,
	}
	if s.paymentQR != nil && invoice.AmountDue.GreaterThan(decimal.Zero) {
		if qr, err := s.paymentQR.PaymentQR(invoice.AmountDue, invoice.InvoiceNumber); err == nil {
			data.QRPNG = qr
		}
	}

	pdf, err := s.renderer.Render(data)
	if err != nil {
		return nil, err
	}
	url, err := s.files.Upload(pdfKey("customer_invoices", invoice.InvoiceNumber), pdf, "application/pdf")
	if err != nil {
		return nil, err
	}

	invoice.PDFURL = url
	if err := s.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}
