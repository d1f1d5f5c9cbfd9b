package repositories

import (
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"gorm.io/gorm"
)

type SalesOrderRepo interface {
	Create(so *models.SalesOrder) error
	GetByID(id string) (*models.SalesOrder, error)
	List(filter models.DocumentFilter) ([]models.SalesOrder, int64, error)
	ListByCustomer(customerID string) ([]models.SalesOrder, error)
	Update(so *models.SalesOrder) error
	Delete(id string) error
	// HasInvoices reports whether any customer invoice references the order.
	HasInvoices(soID string) (bool, error)
}

type salesOrderRepo struct {
	db *gorm.DB
}

func NewSalesOrderRepo(db *gorm.DB) SalesOrderRepo {
	return &salesOrderRepo{db: db}
}

func (r *salesOrderRepo) Create(so *models.SalesOrder) error {
	return r.db.Create(so).Error
}

func (r *salesOrderRepo) GetByID(id string) (*models.SalesOrder, error) {
	var so models.SalesOrder
	if err := r.db.First(&so, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &so, nil
}

func (r *salesOrderRepo) List(filter models.DocumentFilter) ([]models.SalesOrder, int64, error) {
	var orders []models.SalesOrder
	var total int64

	query := r.db.Model(&models.SalesOrder{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CounterpartyID != "" {
		query = query.Where("customer_id = ?", filter.CounterpartyID)
	}
	if filter.DateFrom != nil {
		query = query.Where("order_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("order_date <= ?", *filter.DateTo)
	}
	if filter.Search != "" {
		query = query.Where("so_number ILIKE ?", "%"+filter.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = paginate(query, filter.Page, filter.Limit)
	if err := query.Order("order_date DESC, created_at DESC").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *salesOrderRepo) ListByCustomer(customerID string) ([]models.SalesOrder, error) {
	var orders []models.SalesOrder
	err := r.db.Where("customer_id = ?", customerID).Order("order_date DESC").Find(&orders).Error
	return orders, err
}

func (r *salesOrderRepo) Update(so *models.SalesOrder) error {
	return r.db.Save(so).Error
}

func (r *salesOrderRepo) Delete(id string) error {
	return r.db.Delete(&models.SalesOrder{}, "id = ?", id).Error
}

func (r *salesOrderRepo) HasInvoices(soID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.CustomerInvoice{}).Where("sales_order_id = ?", soID).Count(&count).Error
	return count > 0, err
}
