package services

import (
	"errors"

	"github.com/bizledger/bizledger-be/internal/core/apperr"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/repositories"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AutoAnalyticalRuleService struct {
	ruleRepo    repositories.AutoAnalyticalRuleRepo
	accountRepo repositories.AnalyticalAccountRepo
	productRepo repositories.ProductRepo
	classifier  *ClassifierService
}

func NewAutoAnalyticalRuleService(
	ruleRepo repositories.AutoAnalyticalRuleRepo,
	accountRepo repositories.AnalyticalAccountRepo,
	productRepo repositories.ProductRepo,
	classifier *ClassifierService,
) *AutoAnalyticalRuleService {
	return &AutoAnalyticalRuleService{
		ruleRepo:    ruleRepo,
		accountRepo: accountRepo,
		productRepo: productRepo,
		classifier:  classifier,
	}
}

func validRuleType(t string) bool {
	switch t {
	case models.RuleTypeProduct, models.RuleTypeProductCategory, models.RuleTypeContact, models.RuleTypeAmountRange:
		return true
	}
	return false
}

func (s *AutoAnalyticalRuleService) Create(req models.AutoAnalyticalRuleRequest) (*models.AutoAnalyticalRule, error) {
	if req.Name == "" {
		return nil, apperr.InvalidRequest("rule name is required")
	}
	if !validRuleType(req.RuleType) {
		return nil, apperr.InvalidRequest("rule_type must be one of product, product_category, contact, amount_range")
	}
	if req.RuleValue == "" {
		return nil, apperr.InvalidRequest("rule_value is required")
	}
	if req.AnalyticalAccountID == "" {
		return nil, apperr.InvalidRequest("analytical_account_id is required")
	}
	if _, err := s.accountRepo.GetByID(req.AnalyticalAccountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("analytical account not found")
		}
		return nil, err
	}

	rule := &models.AutoAnalyticalRule{
		Name:                req.Name,
		Description:         req.Description,
		RuleType:            req.RuleType,
		RuleValue:           req.RuleValue,
		AnalyticalAccountID: req.AnalyticalAccountID,
		IsActive:            true,
	}
	if req.Priority != nil {
		rule.Priority = *req.Priority
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := s.ruleRepo.Create(rule); err != nil {
		return nil, err
	}
	log.Info().Str("rule_id", rule.ID).Str("rule_type", rule.RuleType).Msg("classification rule created")
	return rule, nil
}

func (s *AutoAnalyticalRuleService) Get(id string) (*models.AutoAnalyticalRule, error) {
	rule, err := s.ruleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("rule not found")
		}
		return nil, err
	}
	return rule, nil
}

func (s *AutoAnalyticalRuleService) List(includeInactive bool) ([]models.AutoAnalyticalRule, error) {
	return s.ruleRepo.List(includeInactive)
}

func (s *AutoAnalyticalRuleService) Update(id string, req models.AutoAnalyticalRuleRequest) (*models.AutoAnalyticalRule, error) {
	rule, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		rule.Name = req.Name
	}
	rule.Description = req.Description
	if req.RuleType != "" {
		if !validRuleType(req.RuleType) {
			return nil, apperr.InvalidRequest("rule_type must be one of product, product_category, contact, amount_range")
		}
		rule.RuleType = req.RuleType
	}
	if req.RuleValue != "" {
		rule.RuleValue = req.RuleValue
	}
	if req.AnalyticalAccountID != "" && req.AnalyticalAccountID != rule.AnalyticalAccountID {
		if _, err := s.accountRepo.GetByID(req.AnalyticalAccountID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("analytical account not found")
			}
			return nil, err
		}
		rule.AnalyticalAccountID = req.AnalyticalAccountID
	}
	if req.Priority != nil {
		rule.Priority = *req.Priority
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := s.ruleRepo.Update(rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *AutoAnalyticalRuleService) ToggleActive(id string) (*models.AutoAnalyticalRule, error) {
	rule, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	rule.IsActive = !rule.IsActive
	if err := s.ruleRepo.Update(rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *AutoAnalyticalRuleService) Delete(id string) error {
	rule, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.ruleRepo.Delete(rule.ID)
}

// RuleTypes lists the supported rule types for UI pickers.
func (s *AutoAnalyticalRuleService) RuleTypes() []map[string]string {
	return models.RuleTypes
}

// TestClassificationRequest is a dry-run classification payload.
type TestClassificationRequest struct {
	ProductID   string           `json:"product_id"`
	ContactID   string           `json:"contact_id"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
}

// TestClassification runs the rule engine against a hypothetical document
// and returns the account it would pick, if any.
func (s *AutoAnalyticalRuleService) TestClassification(req TestClassificationRequest) (*models.AnalyticalAccount, error) {
	input := ClassificationInput{ContactID: req.ContactID}
	if req.TotalAmount != nil {
		input.TotalAmount = *req.TotalAmount
	}
	if req.ProductID != "" {
		product, err := s.productRepo.GetByID(req.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("product not found")
			}
			return nil, err
		}
		input.Product = product
	}

	accountID, err := s.classifier.Classify(input)
	if err != nil {
		return nil, err
	}
	if accountID == nil {
		return nil, nil
	}
	account, err := s.accountRepo.GetByID(*accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return account, nil
}
