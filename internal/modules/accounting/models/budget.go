package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BudgetTypeIncome  = "income"
	BudgetTypeExpense = "expense"
)

// Budget is a planned amount for one analytical account over a period.
// Actuals come from posted bills (expense) or posted invoices (income).
type Budget struct {
	ID                  string `json:"id" gorm:"type:uuid;primaryKey"`
	Name                string `json:"name" gorm:"not null"`
	AnalyticalAccountID string `json:"analytical_account_id" gorm:"type:uuid;not null;index"`
	BudgetType          string `json:"budget_type" gorm:"not null;index"`

	PeriodStart time.Time `json:"period_start" gorm:"not null"`
	PeriodEnd   time.Time `json:"period_end" gorm:"not null"`

	BudgetedAmount decimal.Decimal `json:"budgeted_amount" gorm:"type:decimal(15,2);not null"`

	Notes      string    `json:"notes"`
	IsArchived bool      `json:"is_archived" gorm:"default:false;index"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Budget) TableName() string {
	return "budgets"
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

// BudgetRevision logs every change to a budget's planned amount.
type BudgetRevision struct {
	ID       string `json:"id" gorm:"type:uuid;primaryKey"`
	BudgetID string `json:"budget_id" gorm:"type:uuid;not null;index"`

	PreviousAmount decimal.Decimal `json:"previous_amount" gorm:"type:decimal(15,2);not null"`
	NewAmount      decimal.Decimal `json:"new_amount" gorm:"type:decimal(15,2);not null"`
	Reason         string          `json:"reason"`
	RevisedBy      string          `json:"revised_by"`

	CreatedAt time.Time `json:"created_at"`
}

func (BudgetRevision) TableName() string {
	return "budget_revisions"
}

func (br *BudgetRevision) BeforeCreate(tx *gorm.DB) error {
	if br.ID == "" {
		br.ID = uuid.New().String()
	}
	return nil
}

type BudgetRequest struct {
	Name                string           `json:"name"`
	AnalyticalAccountID string           `json:"analytical_account_id"`
	BudgetType          string           `json:"budget_type"`
	PeriodStart         *time.Time       `json:"period_start"`
	PeriodEnd           *time.Time       `json:"period_end"`
	BudgetedAmount      *decimal.Decimal `json:"budgeted_amount"`
	Notes               *string          `json:"notes"`
	RevisionReason      string           `json:"revision_reason"`
}

type BudgetFilter struct {
	AnalyticalAccountID string
	BudgetType          string
	IncludeArchived     bool
	PeriodFrom          *time.Time
	PeriodTo            *time.Time
	Page                int
	Limit               int
}

// BudgetPerformance is one budget with its actuals for the reporting layer.
type BudgetPerformance struct {
	Budget
	AccountCode     string          `json:"account_code"`
	AccountName     string          `json:"account_name"`
	ActualAmount    decimal.Decimal `json:"actual_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	Variance        decimal.Decimal `json:"variance"`
	AchievementPct  decimal.Decimal `json:"achievement_pct"`
	OnTrack         bool            `json:"on_track"`
}
