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

type VendorBillService struct {
	billRepo    repositories.VendorBillRepo
	poRepo      repositories.PurchaseOrderRepo
	contactRepo repositories.ContactRepo
	pricing     *PricingService
	classifier  *ClassifierService
	numbers     NumberGenerator
	renderer    DocumentRenderer
	files       FileStore

	businessName string
}

func NewVendorBillService(
	billRepo repositories.VendorBillRepo,
	poRepo repositories.PurchaseOrderRepo,
	contactRepo repositories.ContactRepo,
	pricing *PricingService,
	classifier *ClassifierService,
	numbers NumberGenerator,
	renderer DocumentRenderer,
	files FileStore,
	businessName string,
) *VendorBillService {
	return &VendorBillService{
		billRepo:     billRepo,
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

func (s *VendorBillService) getVendor(vendorID string) (*models.Contact, error) {
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

func (s *VendorBillService) checkPurchaseOrder(poID *string, vendorID string) error {
	if poID == nil || *poID == "" {
		return nil
	}
	po, err := s.poRepo.GetByID(*poID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("purchase order not found")
		}
		return err
	}
	if po.VendorID != vendorID {
		return apperr.InvalidRequest("purchase order belongs to a different vendor")
	}
	return nil
}

func (s *VendorBillService) Create(req models.VendorBillRequest, createdBy string) (*models.VendorBill, error) {
	vendor, err := s.getVendor(req.VendorID)
	if err != nil {
		return nil, err
	}
	if err := s.checkPurchaseOrder(req.PurchaseOrderID, vendor.ID); err != nil {
		return nil, err
	}

	items, firstProduct, err := s.pricing.BuildLineItems(req.Items, PriceSidePurchase)
	if err != nil {
		return nil, err
	}
	totals := models.ComputeTotals(items, decimal.Zero)

	billDate := time.Now().UTC()
	if req.BillDate != nil {
		billDate = *req.BillDate
	}
	dueDate := req.DueDate
	if dueDate == nil {
		// Default from the vendor's payment terms.
		d := billDate.AddDate(0, 0, vendor.PaymentTerms)
		dueDate = &d
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

	number, err := s.numbers.Next("BILL", time.Now().UTC())
	if err != nil {
		return nil, err
	}
	rawItems, err := models.MarshalItems(items)
	if err != nil {
		return nil, err
	}

	bill := &models.VendorBill{
		BillNumber:          number,
		VendorBillNumber:    req.VendorBillNumber,
		VendorID:            vendor.ID,
		PurchaseOrderID:     req.PurchaseOrderID,
		BillDate:            billDate,
		DueDate:             dueDate,
		Status:              models.VendorBillStatusDraft,
		Items:               rawItems,
		Subtotal:            totals.Subtotal,
		TaxAmount:           totals.TaxAmount,
		TotalAmount:         totals.TotalAmount,
		AmountDue:           totals.TotalAmount,
		PaymentStatus:       models.PaymentStatusNotPaid,
		AnalyticalAccountID: accountID,
		CreatedBy:           createdBy,
	}
	if req.Notes != nil {
		bill.Notes = *req.Notes
	}
	if err := s.billRepo.Create(bill); err != nil {
		return nil, err
	}
	log.Info().Str("bill_id", bill.ID).Str("bill_number", bill.BillNumber).Msg("vendor bill created")
	return bill, nil
}

func (s *VendorBillService) Get(id string) (*models.VendorBill, error) {
	bill, err := s.billRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("vendor bill not found")
		}
		return nil, err
	}
	return bill, nil
}

func (s *VendorBillService) List(filter models.DocumentFilter) ([]models.VendorBill, int64, error) {
	return s.billRepo.List(filter)
}

// Update edits a draft bill; posted bills are immutable.
func (s *VendorBillService) Update(id string, req models.VendorBillRequest) (*models.VendorBill, error) {
	bill, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if bill.Status != models.VendorBillStatusDraft {
		return nil, apperr.InvalidState("only draft vendor bills can be edited")
	}

	if req.VendorID != "" && req.VendorID != bill.VendorID {
		vendor, err := s.getVendor(req.VendorID)
		if err != nil {
			return nil, err
		}
		bill.VendorID = vendor.ID
	}
	if req.PurchaseOrderID != nil {
		if err := s.checkPurchaseOrder(req.PurchaseOrderID, bill.VendorID); err != nil {
			return nil, err
		}
		bill.PurchaseOrderID = req.PurchaseOrderID
	}
	bill.VendorBillNumber = req.VendorBillNumber
	if req.Notes != nil {
		bill.Notes = *req.Notes
	}
	if req.BillDate != nil {
		bill.BillDate = *req.BillDate
	}
	if req.DueDate != nil {
		bill.DueDate = req.DueDate
	}
	if req.AnalyticalAccountID != nil {
		bill.AnalyticalAccountID = req.AnalyticalAccountID
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
		bill.Items = rawItems
		bill.Subtotal = totals.Subtotal
		bill.TaxAmount = totals.TaxAmount
		bill.TotalAmount = totals.TotalAmount
		bill.AmountDue = totals.TotalAmount.Sub(bill.AmountPaid)
		bill.PaymentStatus = models.PaymentStatusFor(bill.AmountPaid, bill.TotalAmount)
	}

	if err := s.billRepo.Update(bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// Post makes the bill payable. Only posted bills accept payments.
func (s *VendorBillService) Post(id string) (*models.VendorBill, error) {
	bill, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if bill.Status != models.VendorBillStatusDraft {
		return nil, apperr.InvalidState("only draft vendor bills can be posted")
	}
	bill.Status = models.VendorBillStatusPosted
	if err := s.billRepo.Update(bill); err != nil {
		return nil, err
	}
	log.Info().Str("bill_id", bill.ID).Str("bill_number", bill.BillNumber).Msg("vendor bill posted")
	return bill, nil
}

func (s *VendorBillService) Cancel(id string) (*models.VendorBill, error) {
	bill, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if bill.Status == models.VendorBillStatusCancelled {
		return nil, apperr.InvalidState("vendor bill is already cancelled")
	}
	if bill.AmountPaid.GreaterThan(decimal.Zero) {
		return nil, apperr.InvalidState("cannot cancel a bill with recorded payments")
	}
	bill.Status = models.VendorBillStatusCancelled
	if err := s.billRepo.Update(bill); err != nil {
		return nil, err
	}
	log.Info().Str("bill_id", bill.ID).Msg("vendor bill cancelled")
	return bill, nil
}

func (s *VendorBillService) Delete(id string) error {
	bill, err := s.Get(id)
	if err != nil {
		return err
	}
	if bill.Status != models.VendorBillStatusDraft {
		return apperr.InvalidState("only draft vendor bills can be deleted")
	}
	return s.billRepo.Delete(bill.ID)
}

// GeneratePDF renders the bill, stores the file and records its URL.
func (s *VendorBillService) GeneratePDF(id string) (*models.VendorBill, error) {
	bill, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	vendor, err := s.contactRepo.GetByID(bill.VendorID)
	if err != nil {
		return nil, err
	}
	items, err := models.UnmarshalItems(bill.Items)
	if err != nil {
		return nil, err
	}

	paid := bill.AmountPaid
	due := bill.AmountDue
	data := export.DocumentData{
		Title:        "VENDOR BILL",
		Number:       bill.BillNumber,
		Date:         bill.BillDate,
		DueDate:      bill.DueDate,
		PartyLabel:   "Vendor",
		PartyName:    vendor.Name,
		PartyLines:   addressLines(vendor.BillingAddress),
		Lines:        exportLines(items),
		Subtotal:     bill.Subtotal,
		TaxAmount:    bill.TaxAmount,
		TotalAmount:  bill.TotalAmount,
		AmountPaid:   &paid,
		AmountDue:    &due,
		Notes:        bill.Notes,
		BusinessName: s.businessName,
	}
	pdf, err := s.renderer.Render(data)
	if err != nil {
		return nil, err
	}
	url, err := s.files.Upload(pdfKey("vendor_bills", bill.BillNumber), pdf, "application/pdf")
	if err != nil {
		return nil, err
	}

	bill.PDFURL = url
	if err := s.billRepo.Update(bill); err != nil {
		return nil, err
	}
	return bill, nil
}
