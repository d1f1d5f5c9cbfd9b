package services

import (
	"strings"

	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/repositories"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ClassificationInput carries the document features the rule engine looks
// at: the first line item's product, the counterparty and the grand total.
type ClassificationInput struct {
	Product     *models.Product
	ContactID   string
	TotalAmount decimal.Decimal
}

// ClassifierService picks an analytical account for a new document. Active
// rules are evaluated by priority (creation order on ties) and the first
// match wins; without a match the product's default account applies.
type ClassifierService struct {
	ruleRepo repositories.AutoAnalyticalRuleRepo
}

func NewClassifierService(ruleRepo repositories.AutoAnalyticalRuleRepo) *ClassifierService {
	return &ClassifierService{ruleRepo: ruleRepo}
}

// Classify returns the matched analytical account id, or nil when neither a
// rule nor a product default applies.
func (s *ClassifierService) Classify(input ClassificationInput) (*string, error) {
	rules, err := s.ruleRepo.ListActiveOrdered()
	if err != nil {
		return nil, err
	}

	for _, rule := range rules {
		if s.matches(rule, input) {
			log.Debug().
				Str("rule_id", rule.ID).
				Str("rule_type", rule.RuleType).
				Str("account_id", rule.AnalyticalAccountID).
				Msg("classification rule matched")
			accountID := rule.AnalyticalAccountID
			return &accountID, nil
		}
	}

	if input.Product != nil && input.Product.DefaultAnalyticalAccountID != nil {
		accountID := *input.Product.DefaultAnalyticalAccountID
		return &accountID, nil
	}
	return nil, nil
}

func (s *ClassifierService) matches(rule models.AutoAnalyticalRule, input ClassificationInput) bool {
	switch rule.RuleType {
	case models.RuleTypeProduct:
		return input.Product != nil && input.Product.ID == rule.RuleValue
	case models.RuleTypeProductCategory:
		return input.Product != nil &&
			strings.EqualFold(input.Product.Category, rule.RuleValue)
	case models.RuleTypeContact:
		return input.ContactID != "" && input.ContactID == rule.RuleValue
	case models.RuleTypeAmountRange:
		return matchAmountRange(rule.RuleValue, input.TotalAmount)
	default:
		return false
	}
}

// matchAmountRange parses "min-max" (max optional for an open upper bound)
// and checks the total against it. Malformed values never match.
func matchAmountRange(ruleValue string, total decimal.Decimal) bool {
	parts := strings.SplitN(ruleValue, "-", 2)

	min, err := decimal.NewFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return false
	}
	if total.LessThan(min) {
		return false
	}

	if len(parts) == 1 || strings.TrimSpace(parts[1]) == "" {
		return true
	}
	max, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return false
	}
	return total.LessThanOrEqual(max)
}
