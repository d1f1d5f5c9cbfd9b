package repositories

import (
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"gorm.io/gorm"
)

type PaymentRepo interface {
	// CreateApplied writes the payment and, when a target document is
	// given, its updated paid/due amounts in a single transaction. Either
	// both land or neither does.
	CreateApplied(payment *models.Payment, invoice *models.CustomerInvoice, bill *models.VendorBill) error
	// DeleteReversed removes the payment and persists the reversed target
	// document in the same transaction.
	DeleteReversed(payment *models.Payment, invoice *models.CustomerInvoice, bill *models.VendorBill) error
	GetByID(id string) (*models.Payment, error)
	GetDetail(id string) (*models.PaymentDetail, error)
	List(filter models.PaymentFilter) ([]models.PaymentDetail, int64, error)
	Update(payment *models.Payment) error
}

type paymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) PaymentRepo {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) CreateApplied(payment *models.Payment, invoice *models.CustomerInvoice, bill *models.VendorBill) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		if invoice != nil {
			if err := tx.Save(invoice).Error; err != nil {
				return err
			}
		}
		if bill != nil {
			if err := tx.Save(bill).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *paymentRepo) DeleteReversed(payment *models.Payment, invoice *models.CustomerInvoice, bill *models.VendorBill) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Payment{}, "id = ?", payment.ID).Error; err != nil {
			return err
		}
		if invoice != nil {
			if err := tx.Save(invoice).Error; err != nil {
				return err
			}
		}
		if bill != nil {
			if err := tx.Save(bill).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *paymentRepo) GetByID(id string) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.First(&payment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepo) detailQuery() *gorm.DB {
	return r.db.Table("payments p").
		Select("p.*, c.name AS contact_name, i.invoice_number AS invoice_number, b.bill_number AS bill_number").
		Joins("LEFT JOIN contacts c ON c.id = p.contact_id").
		Joins("LEFT JOIN customer_invoices i ON i.id = p.invoice_id").
		Joins("LEFT JOIN vendor_bills b ON b.id = p.bill_id")
}

func (r *paymentRepo) GetDetail(id string) (*models.PaymentDetail, error) {
	var detail models.PaymentDetail
	err := r.detailQuery().Where("p.id = ?", id).Scan(&detail).Error
	if err != nil {
		return nil, err
	}
	if detail.ID == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return &detail, nil
}

func (r *paymentRepo) List(filter models.PaymentFilter) ([]models.PaymentDetail, int64, error) {
	var total int64
	countQuery := r.db.Model(&models.Payment{})
	query := r.detailQuery()

	apply := func(q *gorm.DB, col string) *gorm.DB {
		if filter.PaymentType != "" {
			q = q.Where(col+"payment_type = ?", filter.PaymentType)
		}
		if filter.ContactID != "" {
			q = q.Where(col+"contact_id = ?", filter.ContactID)
		}
		if filter.InvoiceID != "" {
			q = q.Where(col+"invoice_id = ?", filter.InvoiceID)
		}
		if filter.BillID != "" {
			q = q.Where(col+"bill_id = ?", filter.BillID)
		}
		if filter.DateFrom != nil {
			q = q.Where(col+"payment_date >= ?", *filter.DateFrom)
		}
		if filter.DateTo != nil {
			q = q.Where(col+"payment_date <= ?", *filter.DateTo)
		}
		return q
	}

	if err := apply(countQuery, "").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var details []models.PaymentDetail
	query = apply(query, "p.")
	query = paginate(query, filter.Page, filter.Limit)
	if err := query.Order("p.payment_date DESC, p.created_at DESC").Scan(&details).Error; err != nil {
		return nil, 0, err
	}
	return details, total, nil
}

func (r *paymentRepo) Update(payment *models.Payment) error {
	return r.db.Save(payment).Error
}
