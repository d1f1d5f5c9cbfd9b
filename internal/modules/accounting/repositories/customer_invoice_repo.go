package repositories

import (
	"time"

	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CustomerInvoiceRepo interface {
	Create(invoice *models.CustomerInvoice) error
	GetByID(id string) (*models.CustomerInvoice, error)
	List(filter models.DocumentFilter) ([]models.CustomerInvoice, int64, error)
	ListByCustomer(customerID string) ([]models.CustomerInvoice, error)
	Update(invoice *models.CustomerInvoice) error
	Delete(id string) error

	// ListOutstanding returns posted, not fully paid invoices for aging and
	// overdue checks.
	ListOutstanding() ([]models.CustomerInvoice, error)
	// ListOverdue returns outstanding invoices whose due date has passed.
	ListOverdue(asOf time.Time) ([]models.CustomerInvoice, error)
	CountOutstanding() (int64, error)
	SumOutstandingDue() (decimal.Decimal, error)
	SumPostedTotalBetween(from, to time.Time) (decimal.Decimal, error)
	SumPostedTotalForAccount(accountID string, from, to time.Time) (decimal.Decimal, error)
	PostedTotalsByAccount() ([]AccountTotal, error)
	SummaryBetween(from, to time.Time) (TradeAggregate, error)
	TopCustomers(from, to time.Time, limit int) ([]models.CounterpartyTotal, error)
}

type customerInvoiceRepo struct {
	db *gorm.DB
}

func NewCustomerInvoiceRepo(db *gorm.DB) CustomerInvoiceRepo {
	return &customerInvoiceRepo{db: db}
}

func (r *customerInvoiceRepo) Create(invoice *models.CustomerInvoice) error {
	return r.db.Create(invoice).Error
}

func (r *customerInvoiceRepo) GetByID(id string) (*models.CustomerInvoice, error) {
	var invoice models.CustomerInvoice
	if err := r.db.First(&invoice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *customerInvoiceRepo) List(filter models.DocumentFilter) ([]models.CustomerInvoice, int64, error) {
	var invoices []models.CustomerInvoice
	var total int64

	query := r.db.Model(&models.CustomerInvoice{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CounterpartyID != "" {
		query = query.Where("customer_id = ?", filter.CounterpartyID)
	}
	if filter.DateFrom != nil {
		query = query.Where("invoice_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("invoice_date <= ?", *filter.DateTo)
	}
	if filter.Search != "" {
		query = query.Where("invoice_number ILIKE ?", "%"+filter.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = paginate(query, filter.Page, filter.Limit)
	if err := query.Order("invoice_date DESC, created_at DESC").Find(&invoices).Error; err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}

func (r *customerInvoiceRepo) ListByCustomer(customerID string) ([]models.CustomerInvoice, error) {
	var invoices []models.CustomerInvoice
	err := r.db.Where("customer_id = ?", customerID).Order("invoice_date DESC").Find(&invoices).Error
	return invoices, err
}

func (r *customerInvoiceRepo) Update(invoice *models.CustomerInvoice) error {
	return r.db.Save(invoice).Error
}

func (r *customerInvoiceRepo) Delete(id string) error {
	return r.db.Delete(&models.CustomerInvoice{}, "id = ?", id).Error
}

func (r *customerInvoiceRepo) outstanding() *gorm.DB {
	return r.db.Model(&models.CustomerInvoice{}).
		Where("status = ? AND payment_status <> ?", models.CustomerInvoiceStatusPosted, models.PaymentStatusPaid)
}

func (r *customerInvoiceRepo) ListOutstanding() ([]models.CustomerInvoice, error) {
	var invoices []models.CustomerInvoice
	err := r.outstanding().Find(&invoices).Error
	return invoices, err
}

func (r *customerInvoiceRepo) ListOverdue(asOf time.Time) ([]models.CustomerInvoice, error) {
	var invoices []models.CustomerInvoice
	err := r.outstanding().
		Where("due_date IS NOT NULL AND due_date < ?", asOf).
		Order("due_date ASC").
		Find(&invoices).Error
	return invoices, err
}

func (r *customerInvoiceRepo) CountOutstanding() (int64, error) {
	var count int64
	err := r.outstanding().Count(&count).Error
	return count, err
}

func (r *customerInvoiceRepo) SumOutstandingDue() (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.outstanding().
		Select("COALESCE(SUM(amount_due), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *customerInvoiceRepo) SumPostedTotalBetween(from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.Model(&models.CustomerInvoice{}).
		Where("status = ? AND invoice_date >= ? AND invoice_date <= ?", models.CustomerInvoiceStatusPosted, from, to).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *customerInvoiceRepo) SumPostedTotalForAccount(accountID string, from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.Model(&models.CustomerInvoice{}).
		Where("status = ? AND analytical_account_id = ? AND invoice_date >= ? AND invoice_date <= ?",
			models.CustomerInvoiceStatusPosted, accountID, from, to).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *customerInvoiceRepo) PostedTotalsByAccount() ([]AccountTotal, error) {
	var totals []AccountTotal
	err := r.db.Model(&models.CustomerInvoice{}).
		Where("status = ? AND analytical_account_id IS NOT NULL", models.CustomerInvoiceStatusPosted).
		Select("analytical_account_id AS account_id, COALESCE(SUM(total_amount), 0) AS total").
		Group("analytical_account_id").
		Scan(&totals).Error
	return totals, err
}

func (r *customerInvoiceRepo) SummaryBetween(from, to time.Time) (TradeAggregate, error) {
	var agg TradeAggregate
	err := r.db.Model(&models.CustomerInvoice{}).
		Where("status = ? AND invoice_date >= ? AND invoice_date <= ?", models.CustomerInvoiceStatusPosted, from, to).
		Select("COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS total_amount, " +
			"COALESCE(SUM(amount_paid), 0) AS total_paid, COALESCE(SUM(amount_due), 0) AS total_due").
		Scan(&agg).Error
	return agg, err
}

func (r *customerInvoiceRepo) TopCustomers(from, to time.Time, limit int) ([]models.CounterpartyTotal, error) {
	var rows []models.CounterpartyTotal
	err := r.db.Table("customer_invoices ci").
		Select("ci.customer_id AS contact_id, c.name AS contact_name, COALESCE(SUM(ci.total_amount), 0) AS total").
		Joins("LEFT JOIN contacts c ON c.id = ci.customer_id").
		Where("ci.status = ? AND ci.invoice_date >= ? AND ci.invoice_date <= ?", models.CustomerInvoiceStatusPosted, from, to).
		Group("ci.customer_id, c.name").
		Order("total DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
