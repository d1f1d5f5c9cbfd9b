package repositories

import (
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"gorm.io/gorm"
)

type PurchaseOrderRepo interface {
	Create(po *models.PurchaseOrder) error
	GetByID(id string) (*models.PurchaseOrder, error)
	List(filter models.DocumentFilter) ([]models.PurchaseOrder, int64, error)
	ListByVendor(vendorID string) ([]models.PurchaseOrder, error)
	Update(po *models.PurchaseOrder) error
	Delete(id string) error
	// HasBills reports whether any vendor bill references the order.
	HasBills(poID string) (bool, error)
}

type purchaseOrderRepo struct {
	db *gorm.DB
}

func NewPurchaseOrderRepo(db *gorm.DB) PurchaseOrderRepo {
	return &purchaseOrderRepo{db: db}
}

func (r *purchaseOrderRepo) Create(po *models.PurchaseOrder) error {
	return r.db.Create(po).Error
}

func (r *purchaseOrderRepo) GetByID(id string) (*models.PurchaseOrder, error) {
	var po models.PurchaseOrder
	if err := r.db.First(&po, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &po, nil
}

func (r *purchaseOrderRepo) List(filter models.DocumentFilter) ([]models.PurchaseOrder, int64, error) {
	var orders []models.PurchaseOrder
	var total int64

	query := r.db.Model(&models.PurchaseOrder{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CounterpartyID != "" {
		query = query.Where("vendor_id = ?", filter.CounterpartyID)
	}
	if filter.DateFrom != nil {
		query = query.Where("order_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("order_date <= ?", *filter.DateTo)
	}
	if filter.Search != "" {
		query = query.Where("po_number ILIKE ?", "%"+filter.Search+"%")
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

func (r *purchaseOrderRepo) ListByVendor(vendorID string) ([]models.PurchaseOrder, error) {
	var orders []models.PurchaseOrder
	err := r.db.Where("vendor_id = ?", vendorID).Order("order_date DESC").Find(&orders).Error
	return orders, err
}

func (r *purchaseOrderRepo) Update(po *models.PurchaseOrder) error {
	return r.db.Save(po).Error
}

func (r *purchaseOrderRepo) Delete(id string) error {
	return r.db.Delete(&models.PurchaseOrder{}, "id = ?", id).Error
}

func (r *purchaseOrderRepo) HasBills(poID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.VendorBill{}).Where("purchase_order_id = ?", poID).Count(&count).Error
	return count > 0, err
}
