package services

import (
	"testing"

	"github.com/bizledger/bizledger-be/internal/core/apperr"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ruleFixture struct {
	service     *AutoAnalyticalRuleService
	ruleRepo    *fakeRuleRepo
	accountRepo *fakeAccountRepo
	productRepo *fakeProductRepo
	account     *models.AnalyticalAccount
}

func newRuleFixture() *ruleFixture {
	ruleRepo := &fakeRuleRepo{}
	accountRepo := newFakeAccountRepo()
	productRepo := newFakeProductRepo()

	account := &models.AnalyticalAccount{Code: "MKT", Name: "Marketing"}
	_ = accountRepo.Create(account)

	return &ruleFixture{
		service:     NewAutoAnalyticalRuleService(ruleRepo, accountRepo, productRepo, NewClassifierService(ruleRepo)),
		ruleRepo:    ruleRepo,
		accountRepo: accountRepo,
		productRepo: productRepo,
		account:     account,
	}
}

func TestCreateRule(t *testing.T) {
	f := newRuleFixture()

	rule, err := f.service.Create(models.AutoAnalyticalRuleRequest{
		Name:                "Hardware spend",
		RuleType:            models.RuleTypeProductCategory,
		RuleValue:           "Hardware",
		AnalyticalAccountID: f.account.ID,
	})
	require.NoError(t, err)

	assert.True(t, rule.IsActive, "rules start active")
	assert.Equal(t, 0, rule.Priority)
}

func TestCreateRuleValidation(t *testing.T) {
	f := newRuleFixture()
	valid := models.AutoAnalyticalRuleRequest{
		Name:                "Hardware spend",
		RuleType:            models.RuleTypeProductCategory,
		RuleValue:           "Hardware",
		AnalyticalAccountID: f.account.ID,
	}

	req := valid
	req.Name = ""
	_, err := f.service.Create(req)
	assert.True(t, apperr.IsInvalidRequest(err), "missing name")

	req = valid
	req.RuleType = "weekday"
	_, err = f.service.Create(req)
	assert.True(t, apperr.IsInvalidRequest(err), "unknown type")

	req = valid
	req.RuleValue = ""
	_, err = f.service.Create(req)
	assert.True(t, apperr.IsInvalidRequest(err), "missing value")

	req = valid
	req.AnalyticalAccountID = "missing"
	_, err = f.service.Create(req)
	assert.True(t, apperr.IsNotFound(err), "unknown account")
}

func TestToggleRuleActive(t *testing.T) {
	f := newRuleFixture()
	rule, err := f.service.Create(models.AutoAnalyticalRuleRequest{
		Name:                "Hardware spend",
		RuleType:            models.RuleTypeProductCategory,
		RuleValue:           "Hardware",
		AnalyticalAccountID: f.account.ID,
	})
	require.NoError(t, err)

	toggled, err := f.service.ToggleActive(rule.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)
}

func TestTestClassificationDryRun(t *testing.T) {
	f := newRuleFixture()
	product := seedProduct(f.productRepo)
	_, err := f.service.Create(models.AutoAnalyticalRuleRequest{
		Name:                "Hardware spend",
		RuleType:            models.RuleTypeProductCategory,
		RuleValue:           "Hardware",
		AnalyticalAccountID: f.account.ID,
	})
	require.NoError(t, err)

	account, err := f.service.TestClassification(TestClassificationRequest{ProductID: product.ID})
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "MKT", account.Code)

	// No rule fires for an unrelated contact.
	account, err = f.service.TestClassification(TestClassificationRequest{ContactID: "c-unknown"})
	require.NoError(t, err)
	assert.Nil(t, account)

	_, err = f.service.TestClassification(TestClassificationRequest{ProductID: "missing"})
	assert.True(t, apperr.IsNotFound(err))
}
