package repositories

import (
	"time"

	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VendorBillRepo interface {
	Create(bill *models.VendorBill) error
	GetByID(id string) (*models.VendorBill, error)
	List(filter models.DocumentFilter) ([]models.VendorBill, int64, error)
	Update(bill *models.VendorBill) error
	Delete(id string) error

	// ListOutstanding returns posted, not fully paid bills for aging and
	// overdue checks.
	ListOutstanding() ([]models.VendorBill, error)
	CountOutstanding() (int64, error)
	SumOutstandingDue() (decimal.Decimal, error)
	SumPostedTotalBetween(from, to time.Time) (decimal.Decimal, error)
	SumPostedTotalForAccount(accountID string, from, to time.Time) (decimal.Decimal, error)
	PostedTotalsByAccount() ([]AccountTotal, error)
	SummaryBetween(from, to time.Time) (TradeAggregate, error)
	TopVendors(from, to time.Time, limit int) ([]models.CounterpartyTotal, error)
}

type vendorBillRepo struct {
	db *gorm.DB
}

func NewVendorBillRepo(db *gorm.DB) VendorBillRepo {
	return &vendorBillRepo{db: db}
}

func (r *vendorBillRepo) Create(bill *models.VendorBill) error {
	return r.db.Create(bill).Error
}

func (r *vendorBillRepo) GetByID(id string) (*models.VendorBill, error) {
	var bill models.VendorBill
	if err := r.db.First(&bill, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *vendorBillRepo) List(filter models.DocumentFilter) ([]models.VendorBill, int64, error) {
	var bills []models.VendorBill
	var total int64

	query := r.db.Model(&models.VendorBill{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CounterpartyID != "" {
		query = query.Where("vendor_id = ?", filter.CounterpartyID)
	}
	if filter.DateFrom != nil {
		query = query.Where("bill_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("bill_date <= ?", *filter.DateTo)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("bill_number ILIKE ? OR vendor_bill_number ILIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = paginate(query, filter.Page, filter.Limit)
	if err := query.Order("bill_date DESC, created_at DESC").Find(&bills).Error; err != nil {
		return nil, 0, err
	}
	return bills, total, nil
}

func (r *vendorBillRepo) Update(bill *models.VendorBill) error {
	return r.db.Save(bill).Error
}

func (r *vendorBillRepo) Delete(id string) error {
	return r.db.Delete(&models.VendorBill{}, "id = ?", id).Error
}

func (r *vendorBillRepo) outstanding() *gorm.DB {
	return r.db.Model(&models.VendorBill{}).
		Where("status = ? AND payment_status <> ?", models.VendorBillStatusPosted, models.PaymentStatusPaid)
}

func (r *vendorBillRepo) ListOutstanding() ([]models.VendorBill, error) {
	var bills []models.VendorBill
	err := r.outstanding().Find(&bills).Error
	return bills, err
}

func (r *vendorBillRepo) CountOutstanding() (int64, error) {
	var count int64
	err := r.outstanding().Count(&count).Error
	return count, err
}

func (r *vendorBillRepo) SumOutstandingDue() (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.outstanding().
		Select("COALESCE(SUM(amount_due), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *vendorBillRepo) SumPostedTotalBetween(from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.Model(&models.VendorBill{}).
		Where("status = ? AND bill_date >= ? AND bill_date <= ?", models.VendorBillStatusPosted, from, to).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *vendorBillRepo) SumPostedTotalForAccount(accountID string, from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.Model(&models.VendorBill{}).
		Where("status = ? AND analytical_account_id = ? AND bill_date >= ? AND bill_date <= ?",
			models.VendorBillStatusPosted, accountID, from, to).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *vendorBillRepo) PostedTotalsByAccount() ([]AccountTotal, error) {
	var totals []AccountTotal
	err := r.db.Model(&models.VendorBill{}).
		Where("status = ? AND analytical_account_id IS NOT NULL", models.VendorBillStatusPosted).
		Select("analytical_account_id AS account_id, COALESCE(SUM(total_amount), 0) AS total").
		Group("analytical_account_id").
		Scan(&totals).Error
	return totals, err
}

func (r *vendorBillRepo) SummaryBetween(from, to time.Time) (TradeAggregate, error) {
	var agg TradeAggregate
	err := r.db.Model(&models.VendorBill{}).
		Where("status = ? AND bill_date >= ? AND bill_date <= ?", models.VendorBillStatusPosted, from, to).
		Select("COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS total_amount, " +
			"COALESCE(SUM(amount_paid), 0) AS total_paid, COALESCE(SUM(amount_due), 0) AS total_due").
		Scan(&agg).Error
	return agg, err
}

func (r *vendorBillRepo) TopVendors(from, to time.Time, limit int) ([]models.CounterpartyTotal, error) {
	var rows []models.CounterpartyTotal
	err := r.db.Table("vendor_bills vb").
		Select("vb.vendor_id AS contact_id, c.name AS contact_name, COALESCE(SUM(vb.total_amount), 0) AS total").
		Joins("LEFT JOIN contacts c ON c.id = vb.vendor_id").
		Where("vb.status = ? AND vb.bill_date >= ? AND vb.bill_date <= ?", models.VendorBillStatusPosted, from, to).
		Group("vb.vendor_id, c.name").
		Order("total DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
