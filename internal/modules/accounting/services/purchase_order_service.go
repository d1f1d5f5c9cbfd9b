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

type PurchaseOrderService struct {
	poRepo      repositories.PurchaseOrderRepo
	contactRepo repositories.ContactRepo
	pricing     *PricingService
	classifier  *ClassifierService
	numbers     NumberGenerator
	renderer    DocumentRenderer
	files       FileStore

	businessName string
}

func NewPurchaseOrderService(
	poRepo repositories.PurchaseOrderRepo,
	contactRepo repositories.ContactRepo,
	pricing *PricingService,
	classifier *ClassifierService,
	numbers NumberGenerator,
	renderer DocumentRenderer,
	files FileStore,
	businessName string,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		poRepo:       poRepo,
		contactRepo:  contactRepo,
		pricing:      pricing,
		classifier:   classifier,
		numbers:      numbers,
		renderer:     renderer,
		files:        files,
		businessName: businessName,
	}
}

func (s *PurchaseOrderService) getVendor(vendorID string) (*models.Contact, error) {
	if vendorID == "" {
		return nil, apperr.InvalidRequest("vendor_id is required")
	}
	vendor, err := s.contactRepo.GetByID(vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("vendor not found")
		}
		return nil, err
	}
	if !vendor.IsVendor() {
		return nil, apperr.InvalidRequest("contact %s is not a vendor", vendor.Name)
	}
	return vendor, nil
}

func (s *PurchaseOrderService) Create(req models.PurchaseOrderRequest, createdBy string) (*models.PurchaseOrder, error) {
	vendor, err := s.getVendor(req.VendorID)
	if err != nil {
		return nil, err
	}

	items, firstProduct, err := s.pricing.BuildLineItems(req.Items, PriceSidePurchase)
	if err != nil {
		return nil, err
	}
	totals := models.ComputeTotals(items, decimal.Zero)

	orderDate := time.Now().UTC()
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	accountID := req.AnalyticalAccountID
	if accountID == nil || *accountID == "" {
		accountID, err = s.classifier.Classify(ClassificationInput{
			Product:     firstProduct,
			ContactID:   vendor.ID,
			TotalAmount: totals.TotalAmount,
		})
		if err != nil {
			return nil, err
		}
	}

	number, err := s.numbers.Next("PO", time.Now().UTC())
	if err != nil {
		return nil, err
	}
	rawItems, err := models.MarshalItems(items)
	if err != nil {
		return nil, err
	}

	po := &models.PurchaseOrder{
		PONumber:            number,
		VendorID:            vendor.ID,
		OrderDate:           orderDate,
		ExpectedDate:        req.ExpectedDate,
		Status:              models.PurchaseOrderStatusDraft,
		Items:               rawItems,
		Subtotal:            totals.Subtotal,
		TaxAmount:           totals.TaxAmount,
		TotalAmount:         totals.TotalAmount,
		AnalyticalAccountID: accountID,
		CreatedBy:           createdBy,
	}
	if req.Notes != nil {
		po.Notes = *req.Notes
	}
	if err := s.poRepo.Create(po); err != nil {
		return nil, err
	}
	log.Info().Str("po_id", po.ID).Str("po_number", po.PONumber).Msg("purchase order created")
	return po, nil
}

func (s *PurchaseOrderService) Get(id string) (*models.PurchaseOrder, error) {
	po, err := s.poRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("purchase order not found")
		}
		return nil, err
	}
	return po, nil
}

func (s *PurchaseOrderService) List(filter models.DocumentFilter) ([]models.PurchaseOrder, int64, error) {
	return s.poRepo.List(filter)
}

// Update edits a draft order; confirmed and later states are immutable.
func (s *PurchaseOrderService) Update(id string, req models.PurchaseOrderRequest) (*models.PurchaseOrder, error) {
	po, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if po.Status != models.PurchaseOrderStatusDraft {
		return nil, apperr.InvalidState("only draft purchase orders can be edited")
	}

	if req.VendorID != "" && req.VendorID != po.VendorID {
		vendor, err := s.getVendor(req.VendorID)
		if err != nil {
			return nil, err
		}
		po.VendorID = vendor.ID
	}
	if req.OrderDate != nil {
		po.OrderDate = *req.OrderDate
	}
	if req.ExpectedDate != nil {
		po.ExpectedDate = req.ExpectedDate
	}
	if req.Notes != nil {
		po.Notes = *req.Notes
	}
	if req.AnalyticalAccountID != nil {
		po.AnalyticalAccountID = req.AnalyticalAccountID
	}

	if req.Items != nil {
		items, _, err := s.pricing.BuildLineItems(req.Items, PriceSidePurchase)
		if err != nil {
			return nil, err
		}
		totals := models.ComputeTotals(items, decimal.Zero)
		rawItems, err := models.MarshalItems(items)
		if err != nil {
			return nil, err
		}
		po.Items = rawItems
		po.Subtotal = totals.Subtotal
		po.TaxAmount = totals.TaxAmount
		po.TotalAmount = totals.TotalAmount
	}

	if err := s.poRepo.Update(po); err != nil {
		return nil, err
	}
	return po, nil
}

func (s *PurchaseOrderService) Confirm(id string) (*models.PurchaseOrder, error) {
	po, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if po.Status != models.PurchaseOrderStatusDraft {
		return nil, apperr.InvalidState("only draft purchase orders can be confirmed")
	}
	po.Status = models.PurchaseOrderStatusConfirmed
	if err := s.poRepo.Update(po); err != nil {
		return nil, err
	}
	log.Info().Str("po_id", po.ID).Msg("purchase order confirmed")
	return po, nil
}

func (s *PurchaseOrderService) MarkReceived(id string) (*models.PurchaseOrder, error) {
	po, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if po.Status != models.PurchaseOrderStatusConfirmed {
		return nil, apperr.InvalidState("only confirmed purchase orders can be received")
	}
	po.Status = models.PurchaseOrderStatusReceived
	if err := s.poRepo.Update(po); err != nil {
		return nil, err
	}
	return po, nil
}

func (s *PurchaseOrderService) Cancel(id string) (*models.PurchaseOrder, error) {
	po, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if po.Status == models.PurchaseOrderStatusCancelled {
		return nil, apperr.InvalidState("purchase order is already cancelled")
	}
	hasBills, err := s.poRepo.HasBills(po.ID)
	if err != nil {
		return nil, err
	}
	if hasBills {
		return nil, apperr.Conflict("cannot cancel purchase order with linked vendor bills")
	}
	po.Status = models.PurchaseOrderStatusCancelled
	if err := s.poRepo.Update(po); err != nil {
		return nil, err
	}
	log.Info().Str("po_id", po.ID).Msg("purchase order cancelled")
	return po, nil
}

func (s *PurchaseOrderService) Delete(id string) error {
	po, err := s.Get(id)
	if err != nil {
		return err
	}
	if po.Status != models.PurchaseOrderStatusDraft {
		return apperr.InvalidState("only draft purchase orders can be deleted")
	}
	hasBills, err := s.poRepo.HasBills(po.ID)
	if err != nil {
		return err
	}
	if hasBills {
		return apperr.Conflict("cannot delete purchase order with linked vendor bills")
	}
	return s.poRepo.Delete(po.ID)
}

// GeneratePDF renders the order, stores the file and records its URL.
func (s *PurchaseOrderService) GeneratePDF(id string) (*models.PurchaseOrder, error) {
	po, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	vendor, err := s.contactRepo.GetByID(po.VendorID)
	if err != nil {
		return nil, err
	}
	items, err := models.UnmarshalItems(po.Items)
	if err != nil {
		return nil, err
	}

	data := export.DocumentData{
		Title:        "PURCHASE ORDER",
		Number:       po.PONumber,
		Date:         po.OrderDate,
		PartyLabel:   "Vendor",
		PartyName:    vendor.Name,
		PartyLines:   addressLines(vendor.BillingAddress),
		Lines:        exportLines(items),
		Subtotal:     po.Subtotal,
		TaxAmount:    po.TaxAmount,
		TotalAmount:  po.TotalAmount,
		Notes:        po.Notes,
		BusinessName: s.businessName,
	}
	pdf, err := s.renderer.Render(data)
	if err != nil {
		return nil, err
	}
	url, err := s.files.Upload(pdfKey("purchase_orders", po.PONumber), pdf, "application/pdf")
	if err != nil {
		return nil, err
	}

	po.PDFURL = url
	if err := s.poRepo.Update(po); err != nil {
		return nil, err
	}
	return po, nil
}
