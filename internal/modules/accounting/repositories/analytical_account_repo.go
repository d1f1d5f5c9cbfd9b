package repositories

import (
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"gorm.io/gorm"
)

type AnalyticalAccountRepo interface {
	Create(account *models.AnalyticalAccount) error
	GetByID(id string) (*models.AnalyticalAccount, error)
	GetByCode(code string) (*models.AnalyticalAccount, error)
	List(includeArchived bool) ([]models.AnalyticalAccount, error)
	Update(account *models.AnalyticalAccount) error
	Delete(id string) error
	HasChildren(id string) (bool, error)
	HasBudgets(id string) (bool, error)
}

type analyticalAccountRepo struct {
	db *gorm.DB
}

func NewAnalyticalAccountRepo(db *gorm.DB) AnalyticalAccountRepo {
	return &analyticalAccountRepo{db: db}
}

func (r *analyticalAccountRepo) Create(account *models.AnalyticalAccount) error {
	return r.db.Create(account).Error
}

func (r *analyticalAccountRepo) GetByID(id string) (*models.AnalyticalAccount, error) {
	var account models.AnalyticalAccount
	if err := r.db.First(&account, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *analyticalAccountRepo) GetByCode(code string) (*models.AnalyticalAccount, error) {
	var account models.AnalyticalAccount
	if err := r.db.First(&account, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *analyticalAccountRepo) List(includeArchived bool) ([]models.AnalyticalAccount, error) {
	var accounts []models.AnalyticalAccount
	query := r.db.Model(&models.AnalyticalAccount{})
	if !includeArchived {
		query = query.Where("is_archived = ?", false)
	}
	if err := query.Order("code ASC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *analyticalAccountRepo) Update(account *models.AnalyticalAccount) error {
	return r.db.Save(account).Error
}

func (r *analyticalAccountRepo) Delete(id string) error {
	return r.db.Delete(&models.AnalyticalAccount{}, "id = ?", id).Error
}

func (r *analyticalAccountRepo) HasChildren(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.AnalyticalAccount{}).Where("parent_id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *analyticalAccountRepo) HasBudgets(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Budget{}).Where("analytical_account_id = ?", id).Count(&count).Error
	return count > 0, err
}
