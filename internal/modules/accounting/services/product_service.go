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

type ProductService struct {
	productRepo repositories.ProductRepo
	accountRepo repositories.AnalyticalAccountRepo
}

func NewProductService(productRepo repositories.ProductRepo, accountRepo repositories.AnalyticalAccountRepo) *ProductService {
	return &ProductService{productRepo: productRepo, accountRepo: accountRepo}
}

func (s *ProductService) checkDefaultAccount(accountID *string) error {
	if accountID == nil || *accountID == "" {
		return nil
	}
	if _, err := s.accountRepo.GetByID(*accountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("analytical account not found")
		}
		return err
	}
	return nil
}

func (s *ProductService) Create(req models.ProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, apperr.InvalidRequest("product name is required")
	}
	if req.SKU == "" {
		return nil, apperr.InvalidRequest("product sku is required")
	}
	if existing, err := s.productRepo.GetBySKU(req.SKU); err == nil && existing != nil {
		return nil, apperr.Conflict("product with sku %s already exists", req.SKU)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := s.checkDefaultAccount(req.DefaultAnalyticalAccountID); err != nil {
		return nil, err
	}

	productType := req.ProductType
	if productType == "" {
		productType = models.ProductTypeGoods
	}
	if productType != models.ProductTypeGoods && productType != models.ProductTypeService {
		return nil, apperr.InvalidRequest("product_type must be goods or service")
	}
	unit := req.Unit
	if unit == "" {
		unit = "pcs"
	}

	product := &models.Product{
		Name:                       req.Name,
		SKU:                        req.SKU,
		Description:                req.Description,
		Category:                   req.Category,
		ProductType:                productType,
		Unit:                       unit,
		TaxRate:                    decimal.NewFromInt(18),
		DefaultAnalyticalAccountID: req.DefaultAnalyticalAccountID,
	}
	if req.PurchasePrice != nil {
		if req.PurchasePrice.IsNegative() {
			return nil, apperr.InvalidRequest("purchase_price cannot be negative")
		}
		product.PurchasePrice = *req.PurchasePrice
	}
	if req.SalePrice != nil {
		if req.SalePrice.IsNegative() {
			return nil, apperr.InvalidRequest("sale_price cannot be negative")
		}
		product.SalePrice = *req.SalePrice
	}
	if req.TaxRate != nil {
		if req.TaxRate.IsNegative() {
			return nil, apperr.InvalidRequest("tax_rate cannot be negative")
		}
		product.TaxRate = *req.TaxRate
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	log.Info().Str("product_id", product.ID).Str("sku", product.SKU).Msg("product created")
	return product, nil
}

func (s *ProductService) Get(id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) List(filter models.ProductFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

func (s *ProductService) Update(id string, req models.ProductRequest) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.SKU != "" && req.SKU != product.SKU {
		if existing, err := s.productRepo.GetBySKU(req.SKU); err == nil && existing != nil {
			return nil, apperr.Conflict("product with sku %s already exists", req.SKU)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		product.SKU = req.SKU
	}
	if err := s.checkDefaultAccount(req.DefaultAnalyticalAccountID); err != nil {
		return nil, err
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	product.Description = req.Description
	product.Category = req.Category
	if req.ProductType != "" {
		if req.ProductType != models.ProductTypeGoods && req.ProductType != models.ProductTypeService {
			return nil, apperr.InvalidRequest("product_type must be goods or service")
		}
		product.ProductType = req.ProductType
	}
	if req.Unit != "" {
		product.Unit = req.Unit
	}
	if req.PurchasePrice != nil {
		if req.PurchasePrice.IsNegative() {
			return nil, apperr.InvalidRequest("purchase_price cannot be negative")
		}
		product.PurchasePrice = *req.PurchasePrice
	}
	if req.SalePrice != nil {
		if req.SalePrice.IsNegative() {
			return nil, apperr.InvalidRequest("sale_price cannot be negative")
		}
		product.SalePrice = *req.SalePrice
	}
	if req.TaxRate != nil {
		if req.TaxRate.IsNegative() {
			return nil, apperr.InvalidRequest("tax_rate cannot be negative")
		}
		product.TaxRate = *req.TaxRate
	}
	if req.DefaultAnalyticalAccountID != nil {
		product.DefaultAnalyticalAccountID = req.DefaultAnalyticalAccountID
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) ToggleArchive(id string) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	product.IsArchived = !product.IsArchived
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(id string) error {
	product, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.productRepo.Delete(product.ID)
}
