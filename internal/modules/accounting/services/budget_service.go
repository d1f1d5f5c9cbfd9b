package services

import (
	"errors"
	"time"

	"github.com/bizledger/bizledger-be/internal/core/apperr"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/repositories"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var hundred = decimal.NewFromInt(100)

type BudgetService struct {
	budgetRepo  repositories.BudgetRepo
	accountRepo repositories.AnalyticalAccountRepo
	billRepo    repositories.VendorBillRepo
	invoiceRepo repositories.CustomerInvoiceRepo
}

func NewBudgetService(
	budgetRepo repositories.BudgetRepo,
	accountRepo repositories.AnalyticalAccountRepo,
	billRepo repositories.VendorBillRepo,
	invoiceRepo repositories.CustomerInvoiceRepo,
) *BudgetService {
	return &BudgetService{
		budgetRepo:  budgetRepo,
		accountRepo: accountRepo,
		billRepo:    billRepo,
		invoiceRepo: invoiceRepo,
	}
}

func (s *BudgetService) Create(req models.BudgetRequest, createdBy string) (*models.Budget, error) {
	if req.Name == "" {
		return nil, apperr.InvalidRequest("budget name is required")
	}
	if req.AnalyticalAccountID == "" {
		return nil, apperr.InvalidRequest("analytical_account_id is required")
	}
	if req.BudgetType != models.BudgetTypeIncome && req.BudgetType != models.BudgetTypeExpense {
		return nil, apperr.InvalidRequest("budget_type must be income or expense")
	}
	if req.PeriodStart == nil || req.PeriodEnd == nil {
		return nil, apperr.InvalidRequest("period_start and period_end are required")
	}
	if !req.PeriodStart.Before(*req.PeriodEnd) {
		return nil, apperr.InvalidRequest("period_start must be before period_end")
	}
	if req.BudgetedAmount == nil {
		return nil, apperr.InvalidRequest("budgeted_amount is required")
	}
	if req.BudgetedAmount.IsNegative() {
		return nil, apperr.InvalidRequest("budgeted_amount cannot be negative")
	}
	if _, err := s.accountRepo.GetByID(req.AnalyticalAccountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("analytical account not found")
		}
		return nil, err
	}

	budget := &models.Budget{
		Name:                req.Name,
		AnalyticalAccountID: req.AnalyticalAccountID,
		BudgetType:          req.BudgetType,
		PeriodStart:         *req.PeriodStart,
		PeriodEnd:           *req.PeriodEnd,
		BudgetedAmount:      *req.BudgetedAmount,
		CreatedBy:           createdBy,
	}
	if req.Notes != nil {
		budget.Notes = *req.Notes
	}
	if err := s.budgetRepo.Create(budget); err != nil {
		return nil, err
	}
	log.Info().Str("budget_id", budget.ID).Str("name", budget.Name).Msg("budget created")
	return budget, nil
}

func (s *BudgetService) Get(id string) (*models.Budget, error) {
	budget, err := s.budgetRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("budget not found")
		}
		return nil, err
	}
	return budget, nil
}

func (s *BudgetService) List(filter models.BudgetFilter) ([]models.Budget, int64, error) {
	return s.budgetRepo.List(filter)
}

func (s *BudgetService) ListRevisions(budgetID string) ([]models.BudgetRevision, error) {
	if _, err := s.Get(budgetID); err != nil {
		return nil, err
	}
	return s.budgetRepo.ListRevisions(budgetID)
}

// Update edits the budget. Changing the planned amount writes a revision
// record in the same transaction.
func (s *BudgetService) Update(id string, req models.BudgetRequest, revisedBy string) (*models.Budget, error) {
	budget, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		budget.Name = req.Name
	}
	if req.Notes != nil {
		budget.Notes = *req.Notes
	}
	if req.BudgetType != "" {
		if req.BudgetType != models.BudgetTypeIncome && req.BudgetType != models.BudgetTypeExpense {
			return nil, apperr.InvalidRequest("budget_type must be income or expense")
		}
		budget.BudgetType = req.BudgetType
	}
	if req.AnalyticalAccountID != "" && req.AnalyticalAccountID != budget.AnalyticalAccountID {
		if _, err := s.accountRepo.GetByID(req.AnalyticalAccountID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("analytical account not found")
			}
			return nil, err
		}
		budget.AnalyticalAccountID = req.AnalyticalAccountID
	}
	if req.PeriodStart != nil {
		budget.PeriodStart = *req.PeriodStart
	}
	if req.PeriodEnd != nil {
		budget.PeriodEnd = *req.PeriodEnd
	}
	if !budget.PeriodStart.Before(budget.PeriodEnd) {
		return nil, apperr.InvalidRequest("period_start must be before period_end")
	}

	var revision *models.BudgetRevision
	if req.BudgetedAmount != nil && !req.BudgetedAmount.Equal(budget.BudgetedAmount) {
		if req.BudgetedAmount.IsNegative() {
			return nil, apperr.InvalidRequest("budgeted_amount cannot be negative")
		}
		reason := req.RevisionReason
		if reason == "" {
			reason = "Budget amount updated"
		}
		revision = &models.BudgetRevision{
			BudgetID:       budget.ID,
			PreviousAmount: budget.BudgetedAmount,
			NewAmount:      *req.BudgetedAmount,
			Reason:         reason,
			RevisedBy:      revisedBy,
		}
		budget.BudgetedAmount = *req.BudgetedAmount
	}

	if revision != nil {
		if err := s.budgetRepo.UpdateWithRevision(budget, revision); err != nil {
			return nil, err
		}
	} else if err := s.budgetRepo.Update(budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (s *BudgetService) ToggleArchive(id string) (*models.Budget, error) {
	budget, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	budget.IsArchived = !budget.IsArchived
	if err := s.budgetRepo.Update(budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (s *BudgetService) Delete(id string) error {
	budget, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.budgetRepo.Delete(budget.ID)
}

// actualFor sums posted documents against the budget's account: vendor
// bills for expense budgets, customer invoices for income budgets. The sum
// covers the budget's own period unless an override window is supplied.
func (s *BudgetService) actualFor(budget *models.Budget, periodStart, periodEnd *time.Time) (decimal.Decimal, error) {
	start, end := budget.PeriodStart, budget.PeriodEnd
	if periodStart != nil {
		start = *periodStart
	}
	if periodEnd != nil {
		end = *periodEnd
	}
	if budget.BudgetType == models.BudgetTypeExpense {
		return s.billRepo.SumPostedTotalForAccount(budget.AnalyticalAccountID, start, end)
	}
	return s.invoiceRepo.SumPostedTotalForAccount(budget.AnalyticalAccountID, start, end)
}

// Performance computes actuals for one budget, optionally over an override
// window instead of the budget's own period. Achievement is 0 when the
// planned amount is zero.
func (s *BudgetService) Performance(id string, periodStart, periodEnd *time.Time) (*models.BudgetPerformance, error) {
	budget, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return s.performanceOf(budget, periodStart, periodEnd)
}

func (s *BudgetService) performanceOf(budget *models.Budget, periodStart, periodEnd *time.Time) (*models.BudgetPerformance, error) {
	actual, err := s.actualFor(budget, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	achievement := decimal.Zero
	if !budget.BudgetedAmount.IsZero() {
		achievement = actual.Div(budget.BudgetedAmount).Mul(hundred).Round(2)
	}
	remaining := budget.BudgetedAmount.Sub(actual)

	perf := &models.BudgetPerformance{
		Budget:          *budget,
		ActualAmount:    actual,
		RemainingAmount: remaining,
		Variance:        remaining,
		AchievementPct:  achievement,
		OnTrack:         achievement.LessThanOrEqual(hundred),
	}
	if account, err := s.accountRepo.GetByID(budget.AnalyticalAccountID); err == nil {
		perf.AccountCode = account.Code
		perf.AccountName = account.Name
	}
	return perf, nil
}

// Portfolio computes performance across all active budgets matching the
// filter. An override window applies to every budget's actuals.
func (s *BudgetService) Portfolio(filter models.BudgetFilter, periodStart, periodEnd *time.Time) (*models.BudgetPortfolio, error) {
	budgets, err := s.budgetRepo.ListActive(filter)
	if err != nil {
		return nil, err
	}

	portfolio := &models.BudgetPortfolio{
		Budgets:       make([]models.BudgetPerformance, 0, len(budgets)),
		TotalBudgeted: decimal.Zero,
		TotalActual:   decimal.Zero,
	}
	for i := range budgets {
		perf, err := s.performanceOf(&budgets[i], periodStart, periodEnd)
		if err != nil {
			return nil, err
		}
		portfolio.Budgets = append(portfolio.Budgets, *perf)
		portfolio.TotalBudgeted = portfolio.TotalBudgeted.Add(perf.BudgetedAmount)
		portfolio.TotalActual = portfolio.TotalActual.Add(perf.ActualAmount)
		if perf.OnTrack {
			portfolio.OnTrackCount++
		} else {
			portfolio.OverCount++
		}
	}
	return portfolio, nil
}
