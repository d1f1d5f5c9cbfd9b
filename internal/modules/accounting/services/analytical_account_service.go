package services

import (
	"errors"
	"strings"

	"github.com/bizledger/bizledger-be/internal/core/apperr"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/repositories"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AnalyticalAccountService struct {
	accountRepo repositories.AnalyticalAccountRepo
}

func NewAnalyticalAccountService(accountRepo repositories.AnalyticalAccountRepo) *AnalyticalAccountService {
	return &AnalyticalAccountService{accountRepo: accountRepo}
}

func validAccountType(t string) bool {
	return t == models.AccountTypeIncome || t == models.AccountTypeExpense || t == models.AccountTypeBoth
}

func (s *AnalyticalAccountService) Create(req models.AnalyticalAccountRequest) (*models.AnalyticalAccount, error) {
	if req.Name == "" {
		return nil, apperr.InvalidRequest("account name is required")
	}
	if req.Code == "" {
		return nil, apperr.InvalidRequest("account code is required")
	}
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	if existing, err := s.accountRepo.GetByCode(code); err == nil && existing != nil {
		return nil, apperr.Conflict("analytical account with code %s already exists", code)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	accountType := req.AccountType
	if accountType == "" {
		accountType = models.AccountTypeBoth
	}
	if !validAccountType(accountType) {
		return nil, apperr.InvalidRequest("account_type must be income, expense or both")
	}

	if req.ParentID != nil && *req.ParentID != "" {
		if _, err := s.accountRepo.GetByID(*req.ParentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("parent account not found")
			}
			return nil, err
		}
	}

	account := &models.AnalyticalAccount{
		Name:        req.Name,
		Code:        code,
		Description: req.Description,
		AccountType: accountType,
		ParentID:    req.ParentID,
	}
	if err := s.accountRepo.Create(account); err != nil {
		return nil, err
	}
	log.Info().Str("account_id", account.ID).Str("code", account.Code).Msg("analytical account created")
	return account, nil
}

func (s *AnalyticalAccountService) Get(id string) (*models.AnalyticalAccount, error) {
	account, err := s.accountRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("analytical account not found")
		}
		return nil, err
	}
	return account, nil
}

func (s *AnalyticalAccountService) List(includeArchived bool) ([]models.AnalyticalAccount, error) {
	return s.accountRepo.List(includeArchived)
}

// checkParentCycle walks the ancestor chain from parentID and rejects the
// assignment if it would ever reach accountID.
func (s *AnalyticalAccountService) checkParentCycle(accountID, parentID string) error {
	if accountID == parentID {
		return apperr.InvalidRequest("account cannot be its own parent")
	}
	current := parentID
	for current != "" {
		parent, err := s.accountRepo.GetByID(current)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("parent account not found")
			}
			return err
		}
		if parent.ID == accountID {
			return apperr.InvalidRequest("parent assignment would create a cycle")
		}
		if parent.ParentID == nil {
			break
		}
		current = *parent.ParentID
	}
	return nil
}

func (s *AnalyticalAccountService) Update(id string, req models.AnalyticalAccountRequest) (*models.AnalyticalAccount, error) {
	account, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Code != "" {
		code := strings.ToUpper(strings.TrimSpace(req.Code))
		if code != account.Code {
			if existing, err := s.accountRepo.GetByCode(code); err == nil && existing != nil {
				return nil, apperr.Conflict("analytical account with code %s already exists", code)
			} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			account.Code = code
		}
	}
	if req.Name != "" {
		account.Name = req.Name
	}
	account.Description = req.Description
	if req.AccountType != "" {
		if !validAccountType(req.AccountType) {
			return nil, apperr.InvalidRequest("account_type must be income, expense or both")
		}
		account.AccountType = req.AccountType
	}
	if req.ParentID != nil {
		if *req.ParentID == "" {
			account.ParentID = nil
		} else {
			if err := s.checkParentCycle(account.ID, *req.ParentID); err != nil {
				return nil, err
			}
			account.ParentID = req.ParentID
		}
	}

	if err := s.accountRepo.Update(account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AnalyticalAccountService) ToggleArchive(id string) (*models.AnalyticalAccount, error) {
	account, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	account.IsArchived = !account.IsArchived
	if err := s.accountRepo.Update(account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AnalyticalAccountService) Delete(id string) error {
	account, err := s.Get(id)
	if err != nil {
		return err
	}
	hasChildren, err := s.accountRepo.HasChildren(account.ID)
	if err != nil {
		return err
	}
	if hasChildren {
		return apperr.Conflict("cannot delete account with child accounts")
	}
	hasBudgets, err := s.accountRepo.HasBudgets(account.ID)
	if err != nil {
		return err
	}
	if hasBudgets {
		return apperr.Conflict("cannot delete account with budgets")
	}
	return s.accountRepo.Delete(account.ID)
}

// Tree assembles the full account hierarchy. Orphaned parents (archived or
// missing) surface their children at the root.
func (s *AnalyticalAccountService) Tree(includeArchived bool) ([]*models.AnalyticalAccountNode, error) {
	accounts, err := s.accountRepo.List(includeArchived)
	if err != nil {
		return nil, err
	}

	nodes := make(map[string]*models.AnalyticalAccountNode, len(accounts))
	for _, account := range accounts {
		nodes[account.ID] = &models.AnalyticalAccountNode{
			AnalyticalAccount: account,
			Children:          []*models.AnalyticalAccountNode{},
		}
	}

	var roots []*models.AnalyticalAccountNode
	for _, account := range accounts {
		node := nodes[account.ID]
		if account.ParentID != nil {
			if parent, ok := nodes[*account.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots, nil
}
