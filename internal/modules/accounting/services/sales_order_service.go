package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/bizledger/bizledger-be/internal/core/apperr"
	"github.com/bizledger/bizledger-be/internal/core/export"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/repositories"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SalesOrderService struct {
	soRepo      repositories.SalesOrderRepo
	contactRepo repositories.ContactRepo
	pricing     *PricingService
	classifier  *ClassifierService
	numbers     NumberGenerator
	renderer    DocumentRenderer
	files       FileStore
	notifier    Notifier

	businessName string
}

func NewSalesOrderService(
	soRepo repositories.SalesOrderRepo,
	contactRepo repositories.ContactRepo,
	pricing *PricingService,
	classifier *ClassifierService,
	numbers NumberGenerator,
	renderer DocumentRenderer,
	files FileStore,
	notifier Notifier,
	businessName string,
) *SalesOrderService {
	return &SalesOrderService{
		soRepo:       soRepo,
		contactRepo:  contactRepo,
		pricing:      pricing,
		classifier:   classifier,
		numbers:      numbers,
		renderer:     renderer,
		files:        files,
		notifier:     notifier,
		businessName: businessName,
	}
}

func (s *SalesOrderService) getCustomer(customerID string) (*models.Contact, error) {
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

func (s *SalesOrderService) Create(req models.SalesOrderRequest, createdBy string) (*models.SalesOrder, error) {
	customer, err := s.getCustomer(req.CustomerID)
	if err != nil {
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

	orderDate := time.Now().UTC()
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
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

	number, err := s.numbers.Next("SO", time.Now().UTC())
	if err != nil {
		return nil, err
	}
	rawItems, err := models.MarshalItems(items)
	if err != nil {
		return nil, err
	}

	so := &models.SalesOrder{
		SONumber:            number,
		CustomerID:          customer.ID,
		OrderDate:           orderDate,
		DeliveryDate:        req.DeliveryDate,
		Status:              models.SalesOrderStatusDraft,
		Items:               rawItems,
		Subtotal:            totals.Subtotal,
		TaxAmount:           totals.TaxAmount,
		DiscountAmount:      discount,
		TotalAmount:         totals.TotalAmount,
		AnalyticalAccountID: accountID,
		ShippingAddress:     marshalAddress(req.ShippingAddress),
		CreatedBy:           createdBy,
	}
	if req.Notes != nil {
		so.Notes = *req.Notes
	}
	if so.ShippingAddress == nil {
		so.ShippingAddress = customer.ShippingAddress
	}
	if err := s.soRepo.Create(so); err != nil {
		return nil, err
	}
	log.Info().Str("so_id", so.ID).Str("so_number", so.SONumber).Msg("sales order created")

	if s.notifier != nil {
		_ = s.notifier.NotifyAdmins(
			"New sales order",
			fmt.Sprintf("%s created for %s, total %s", so.SONumber, customer.Name, so.TotalAmount.StringFixed(2)),
			"order",
		)
	}
	return so, nil
}

func (s *SalesOrderService) Get(id string) (*models.SalesOrder, error) {
	so, err := s.soRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("sales order not found")
		}
		return nil, err
	}
	return so, nil
}

func (s *SalesOrderService) List(filter models.DocumentFilter) ([]models.SalesOrder, int64, error) {
	return s.soRepo.List(filter)
}

// Update edits a draft order; confirmed and later states are immutable.
func (s *SalesOrderService) Update(id string, req models.SalesOrderRequest) (*models.SalesOrder, error) {
	so, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if so.Status != models.SalesOrderStatusDraft {
		return nil, apperr.InvalidState("only draft sales orders can be edited")
	}

	if req.CustomerID != "" && req.CustomerID != so.CustomerID {
		customer, err := s.getCustomer(req.CustomerID)
		if err != nil {
			return nil, err
		}
		so.CustomerID = customer.ID
	}
	if req.OrderDate != nil {
		so.OrderDate = *req.OrderDate
	}
	if req.DeliveryDate != nil {
		so.DeliveryDate = req.DeliveryDate
	}
	if req.Notes != nil {
		so.Notes = *req.Notes
	}
	if req.AnalyticalAccountID != nil {
		so.AnalyticalAccountID = req.AnalyticalAccountID
	}
	if req.ShippingAddress != nil {
		so.ShippingAddress = marshalAddress(req.ShippingAddress)
	}
	if req.DiscountAmount != nil {
		if req.DiscountAmount.IsNegative() {
			return nil, apperr.InvalidRequest("discount_amount cannot be negative")
		}
		so.DiscountAmount = *req.DiscountAmount
	}

	items, err := models.UnmarshalItems(so.Items)
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
		so.Items = rawItems
	}
	totals := models.ComputeTotals(items, so.DiscountAmount)
	so.Subtotal = totals.Subtotal
	so.TaxAmount = totals.TaxAmount
	so.TotalAmount = totals.TotalAmount

	if err := s.soRepo.Update(so); err != nil {
		return nil, err
	}
	return so, nil
}

func (s *SalesOrderService) Confirm(id string) (*models.SalesOrder, error) {
	so, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if so.Status != models.SalesOrderStatusDraft {
		return nil, apperr.InvalidState("only draft sales orders can be confirmed")
	}
	so.Status = models.SalesOrderStatusConfirmed
	if err := s.soRepo.Update(so); err != nil {
		return nil, err
	}
	log.Info().Str("so_id", so.ID).Msg("sales order confirmed")
	return so, nil
}

func (s *SalesOrderService) MarkDelivered(id string) (*models.SalesOrder, error) {
	so, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if so.Status != models.SalesOrderStatusConfirmed {
		return nil, apperr.InvalidState("only confirmed sales orders can be delivered")
	}
	so.Status = models.SalesOrderStatusDelivered
	if err := s.soRepo.Update(so); err != nil {
		return nil, err
	}
	return so, nil
}

func (s *SalesOrderService) Cancel(id string) (*models.SalesOrder, error) {
	so, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if so.Status == models.SalesOrderStatusCancelled {
		return nil, apperr.InvalidState("sales order is already cancelled")
	}
	hasInvoices, err := s.soRepo.HasInvoices(so.ID)
	if err != nil {
		return nil, err
	}
	if hasInvoices {
		return nil, apperr.Conflict("cannot cancel sales order with linked invoices")
	}
	so.Status = models.SalesOrderStatusCancelled
	if err := s.soRepo.Update(so); err != nil {
		return nil, err
	}
	log.Info().Str("so_id", so.ID).Msg("sales order cancelled")
	return so, nil
}

func (s *SalesOrderService) Delete(id string) error {
	so, err := s.Get(id)
	if err != nil {
		return err
	}
	if so.Status != models.SalesOrderStatusDraft {
		return apperr.InvalidState("only draft sales orders can be deleted")
	}
	hasInvoices, err := s.soRepo.HasInvoices(so.ID)
	if err != nil {
		return err
	}
	if hasInvoices {
		return apperr.Conflict("cannot delete sales order with linked invoices")
	}
	return s.soRepo.Delete(so.ID)
}

// GeneratePDF renders the order, stores the file and records its URL.
func (s *SalesOrderService) GeneratePDF(id string) (*models.SalesOrder, error) {
	so, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	customer, err := s.contactRepo.GetByID(so.CustomerID)
	if err != nil {
		return nil, err
	}
	items, err := models.UnmarshalItems(so.Items)
	if err != nil {
		return nil, err
	}

	data := export.DocumentData{
		Title:          "SALES ORDER",
		Number:         so.SONumber,
		Date:           so.OrderDate,
		PartyLabel:     "Customer",
		PartyName:      customer.Name,
		PartyLines:     addressLines(so.ShippingAddress),
		Lines:          exportLines(items),
		Subtotal:       so.Subtotal,
		TaxAmount:      so.TaxAmount,
		DiscountAmount: so.DiscountAmount,
		TotalAmount:    so.TotalAmount,
		Notes:          so.Notes,
		BusinessName:   s.businessName,
	}
	pdf, err := s.renderer.Render(data)
	if err != nil {
		return nil, err
	}
	url, err := s.files.Upload(pdfKey("sales_orders", so.SONumber), pdf, "application/pdf")
	if err != nil {
		return nil, err
	}

	so.PDFURL = url
	if err := s.soRepo.Update(so); err != nil {
		return nil, err
	}
	return so, nil
}
