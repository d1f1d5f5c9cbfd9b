package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rule types recognized by the classification engine.
const (
	RuleTypeProduct         = "product"
	RuleTypeProductCategory = "product_category"
	RuleTypeContact         = "contact"
	RuleTypeAmountRange     = "amount_range"
)

// RuleTypes lists the supported rule types with a human description, for the
// rule-types endpoint.
var RuleTypes = []map[string]string{
	{"value": RuleTypeProduct, "label": "Product", "description": "Matches when the document's first item is the given product (rule_value = product id)"},
	{"value": RuleTypeProductCategory, "label": "Product Category", "description": "Matches the first item's product category, case-insensitively (rule_value = category name)"},
	{"value": RuleTypeContact, "label": "Contact", "description": "Matches the document counterparty (rule_value = contact id)"},
	{"value": RuleTypeAmountRange, "label": "Amount Range", "description": "Matches the document total against 'min-max'; omit max for an open upper bound"},
}

// AutoAnalyticalRule assigns an analytical account to new documents when its
// condition matches. Higher priority wins; equal priority falls back to
// creation order.
type AutoAnalyticalRule struct {
	ID                  string `json:"id" gorm:"type:uuid;primaryKey"`
	Name                string `json:"name" gorm:"not null"`
	Description         string `json:"description"`
	RuleType            string `json:"rule_type" gorm:"not null;index"`
	RuleValue           string `json:"rule_value" gorm:"not null"`
	AnalyticalAccountID string `json:"analytical_account_id" gorm:"type:uuid;not null"`
	Priority            int    `json:"priority" gorm:"default:0;index"`
	IsActive            bool   `json:"is_active" gorm:"default:true;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AutoAnalyticalRule) TableName() string {
	return "auto_analytical_rules"
}

func (r *AutoAnalyticalRule) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

type AutoAnalyticalRuleRequest struct {
	Name                string `json:"name"`
	Description         string `json:"description"`
	RuleType            string `json:"rule_type"`
	RuleValue           string `json:"rule_value"`
	AnalyticalAccountID string `json:"analytical_account_id"`
	Priority            *int   `json:"priority"`
	IsActive            *bool  `json:"is_active"`
}
