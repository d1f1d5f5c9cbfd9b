package repositories

import (
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"gorm.io/gorm"
)

type ContactRepo interface {
	Create(contact *models.Contact) error
	GetByID(id string) (*models.Contact, error)
	List(filter models.ContactFilter) ([]models.Contact, int64, error)
	Update(contact *models.Contact) error
	Delete(id string) error
	// HasTransactions reports whether any order, bill or invoice references
	// the contact.
	HasTransactions(contactID string) (bool, error)
	CountCustomers() (int64, error)
	CountVendors() (int64, error)
}

type contactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) ContactRepo {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

func (r *contactRepo) GetByID(id string) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepo) List(filter models.ContactFilter) ([]models.Contact, int64, error) {
	var contacts []models.Contact
	var total int64

	query := r.db.Model(&models.Contact{})
	if filter.ContactType != "" {
		query = query.Where("contact_type = ? OR contact_type = ?", filter.ContactType, models.ContactTypeBoth)
	}
	if !filter.IncludeArchived {
		query = query.Where("is_archived = ?", false)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = paginate(query, filter.Page, filter.Limit)
	if err := query.Order("name ASC").Find(&contacts).Error; err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

func (r *contactRepo) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

func (r *contactRepo) Delete(id string) error {
	return r.db.Delete(&models.Contact{}, "id = ?", id).Error
}

func (r *contactRepo) HasTransactions(contactID string) (bool, error) {
	type countQuery struct {
		model interface{}
		where string
	}
	queries := []countQuery{
		{&models.PurchaseOrder{}, "vendor_id = ?"},
		{&models.SalesOrder{}, "customer_id = ?"},
		{&models.VendorBill{}, "vendor_id = ?"},
		{&models.CustomerInvoice{}, "customer_id = ?"},
	}
	for _, q := range queries {
		var count int64
		if err := r.db.Model(q.model).Where(q.where, contactID).Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}

func (r *contactRepo) CountCustomers() (int64, error) {
	return r.countByType(models.ContactTypeCustomer)
}

func (r *contactRepo) CountVendors() (int64, error) {
	return r.countByType(models.ContactTypeVendor)
}

func (r *contactRepo) countByType(contactType string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).
		Where("(contact_type = ? OR contact_type = ?) AND is_archived = ?", contactType, models.ContactTypeBoth, false).
		Count(&count).Error
	return count, err
}
