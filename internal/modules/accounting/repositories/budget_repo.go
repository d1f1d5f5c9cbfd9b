package repositories

import (
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"gorm.io/gorm"
)

type BudgetRepo interface {
	Create(budget *models.Budget) error
	GetByID(id string) (*models.Budget, error)
	List(filter models.BudgetFilter) ([]models.Budget, int64, error)
	ListActive(filter models.BudgetFilter) ([]models.Budget, error)
	Update(budget *models.Budget) error
	// UpdateWithRevision persists the amount change and its revision record
	// together.
	UpdateWithRevision(budget *models.Budget, revision *models.BudgetRevision) error
	// Delete removes the budget and cascades to its revisions.
	Delete(id string) error
	ListRevisions(budgetID string) ([]models.BudgetRevision, error)
}

type budgetRepo struct {
	db *gorm.DB
}

func NewBudgetRepo(db *gorm.DB) BudgetRepo {
	return &budgetRepo{db: db}
}

func (r *budgetRepo) Create(budget *models.Budget) error {
	return r.db.Create(budget).Error
}

func (r *budgetRepo) GetByID(id string) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.First(&budget, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &budget, nil
}

func (r *budgetRepo) applyFilter(query *gorm.DB, filter models.BudgetFilter) *gorm.DB {
	if filter.AnalyticalAccountID != "" {
		query = query.Where("analytical_account_id = ?", filter.AnalyticalAccountID)
	}
	if filter.BudgetType != "" {
		query = query.Where("budget_type = ?", filter.BudgetType)
	}
	if !filter.IncludeArchived {
		query = query.Where("is_archived = ?", false)
	}
	// Period filters keep budgets whose period overlaps the window.
	if filter.PeriodFrom != nil {
		query = query.Where("period_end >= ?", *filter.PeriodFrom)
	}
	if filter.PeriodTo != nil {
		query = query.Where("period_start <= ?", *filter.PeriodTo)
	}
	return query
}

func (r *budgetRepo) List(filter models.BudgetFilter) ([]models.Budget, int64, error) {
	var budgets []models.Budget
	var total int64

	query := r.applyFilter(r.db.Model(&models.Budget{}), filter)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = paginate(query, filter.Page, filter.Limit)
	if err := query.Order("period_start DESC").Find(&budgets).Error; err != nil {
		return nil, 0, err
	}
	return budgets, total, nil
}

func (r *budgetRepo) ListActive(filter models.BudgetFilter) ([]models.Budget, error) {
	filter.IncludeArchived = false
	var budgets []models.Budget
	query := r.applyFilter(r.db.Model(&models.Budget{}), filter)
	if err := query.Order("period_start DESC").Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

func (r *budgetRepo) Update(budget *models.Budget) error {
	return r.db.Save(budget).Error
}

func (r *budgetRepo) UpdateWithRevision(budget *models.Budget, revision *models.BudgetRevision) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(budget).Error; err != nil {
			return err
		}
		return tx.Create(revision).Error
	})
}

func (r *budgetRepo) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.BudgetRevision{}, "budget_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Budget{}, "id = ?", id).Error
	})
}

func (r *budgetRepo) ListRevisions(budgetID string) ([]models.BudgetRevision, error) {
	var revisions []models.BudgetRevision
	err := r.db.Where("budget_id = ?", budgetID).Order("created_at DESC").Find(&revisions).Error
	return revisions, err
}
