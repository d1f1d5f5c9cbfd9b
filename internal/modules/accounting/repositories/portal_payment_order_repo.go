package repositories

import (
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"gorm.io/gorm"
)

type PortalPaymentOrderRepo interface {
	Create(order *models.PortalPaymentOrder) error
	GetByGatewayOrderID(gatewayOrderID string) (*models.PortalPaymentOrder, error)
	Update(order *models.PortalPaymentOrder) error
}

type portalPaymentOrderRepo struct {
	db *gorm.DB
}

func NewPortalPaymentOrderRepo(db *gorm.DB) PortalPaymentOrderRepo {
	return &portalPaymentOrderRepo{db: db}
}

func (r *portalPaymentOrderRepo) Create(order *models.PortalPaymentOrder) error {
	return r.db.Create(order).Error
}

func (r *portalPaymentOrderRepo) GetByGatewayOrderID(gatewayOrderID string) (*models.PortalPaymentOrder, error) {
	var order models.PortalPaymentOrder
	if err := r.db.First(&order, "gateway_order_id = ?", gatewayOrderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *portalPaymentOrderRepo) Update(order *models.PortalPaymentOrder) error {
	return r.db.Save(order).Error
}
