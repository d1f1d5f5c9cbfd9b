package repositories

import (
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"gorm.io/gorm"
)

type AutoAnalyticalRuleRepo interface {
	Create(rule *models.AutoAnalyticalRule) error
	GetByID(id string) (*models.AutoAnalyticalRule, error)
	List(includeInactive bool) ([]models.AutoAnalyticalRule, error)
	// ListActiveOrdered returns active rules in matching order: priority
	// descending, creation time ascending as the tie-break.
	ListActiveOrdered() ([]models.AutoAnalyticalRule, error)
	Update(rule *models.AutoAnalyticalRule) error
	Delete(id string) error
}

type autoAnalyticalRuleRepo struct {
	db *gorm.DB
}

func NewAutoAnalyticalRuleRepo(db *gorm.DB) AutoAnalyticalRuleRepo {
	return &autoAnalyticalRuleRepo{db: db}
}

func (r *autoAnalyticalRuleRepo) Create(rule *models.AutoAnalyticalRule) error {
	return r.db.Create(rule).Error
}

func (r *autoAnalyticalRuleRepo) GetByID(id string) (*models.AutoAnalyticalRule, error) {
	var rule models.AutoAnalyticalRule
	if err := r.db.First(&rule, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *autoAnalyticalRuleRepo) List(includeInactive bool) ([]models.AutoAnalyticalRule, error) {
	var rules []models.AutoAnalyticalRule
	query := r.db.Model(&models.AutoAnalyticalRule{})
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("priority DESC, created_at ASC").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *autoAnalyticalRuleRepo) ListActiveOrdered() ([]models.AutoAnalyticalRule, error) {
	return r.List(false)
}

func (r *autoAnalyticalRuleRepo) Update(rule *models.AutoAnalyticalRule) error {
	return r.db.Save(rule).Error
}

func (r *autoAnalyticalRuleRepo) Delete(id string) error {
	return r.db.Delete(&models.AutoAnalyticalRule{}, "id = ?", id).Error
}
