package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AccountTypeIncome  = "income"
	AccountTypeExpense = "expense"
	AccountTypeBoth    = "both"
)

// AnalyticalAccount is a cost/revenue dimension transactions are tagged
// with. Accounts form a tree via ParentID.
type AnalyticalAccount struct {
	ID          string  `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Code        string  `json:"code" gorm:"uniqueIndex;not null"`
	Description string  `json:"description"`
	AccountType string  `json:"account_type" gorm:"default:both"`
	ParentID    *string `json:"parent_id" gorm:"type:uuid;index"`

	IsArchived bool      `json:"is_archived" gorm:"default:false;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (AnalyticalAccount) TableName() string {
	return "analytical_accounts"
}

func (a *AnalyticalAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

type AnalyticalAccountRequest struct {
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
	AccountType string  `json:"account_type"`
	ParentID    *string `json:"parent_id"`
}

// AnalyticalAccountNode is one node of the account tree endpoint.
type AnalyticalAccountNode struct {
	AnalyticalAccount
	Children []*AnalyticalAccountNode `json:"children"`
}
