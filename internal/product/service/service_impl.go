package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/gstbill/internal/product/domain"
	"github.com/smallbiznis/gstbill/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("product.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Product{}, domain.ErrInvalidName
	}
	if req.UnitPrice.IsNegative() {
		return domain.Product{}, domain.ErrInvalidUnitPrice
	}
	if req.TaxRatePercent.IsNegative() {
		return domain.Product{}, domain.ErrInvalidTaxRate
	}
	if req.StockQuantity.IsNegative() || req.LowStockThreshold.IsNegative() {
		return domain.Product{}, domain.ErrInvalidStock
	}

	now := time.Now().UTC()
	product := domain.Product{
		ID:                s.genID.Generate(),
		Name:              name,
		Description:       req.Description,
		HSNCode:           strings.TrimSpace(req.HSNCode),
		UnitPrice:         req.UnitPrice,
		TaxRatePercent:    req.TaxRatePercent,
		StockQuantity:     req.StockQuantity,
		LowStockThreshold: req.LowStockThreshold,
		Active:            true,
		Metadata:          datatypes.JSONMap{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Insert(ctx, s.db, &product); err != nil {
		return domain.Product{}, err
	}

	return product, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Product, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.Product{}, domain.ErrInvalidID
	}

	product, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Product{}, err
	}
	if product == nil {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return *product, nil
}

func (s *Service) List(ctx context.Context, req domain.ListProductRequest) (domain.ListProductResponse, error) {
	req.Normalize()

	products, total, err := s.repo.List(ctx, s.db, domain.ListProductFilter{Name: strings.TrimSpace(req.Name)}, req.Pagination)
	if err != nil {
		return domain.ListProductResponse{}, err
	}

	return domain.ListProductResponse{
		PageInfo: pagination.BuildPageInfo(req.Pagination, total),
		Products: products,
	}, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateProductRequest) (domain.Product, error) {
	product, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return domain.Product{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Product{}, domain.ErrInvalidName
		}
		product.Name = name
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.HSNCode != nil {
		product.HSNCode = strings.TrimSpace(*req.HSNCode)
	}
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return domain.Product{}, domain.ErrInvalidUnitPrice
		}
		product.UnitPrice = *req.UnitPrice
	}
	if req.TaxRatePercent != nil {
		if req.TaxRatePercent.IsNegative() {
			return domain.Product{}, domain.ErrInvalidTaxRate
		}
		product.TaxRatePercent = *req.TaxRatePercent
	}
	if req.StockQuantity != nil {
		if req.StockQuantity.IsNegative() {
			return domain.Product{}, domain.ErrInvalidStock
		}
		product.StockQuantity = *req.StockQuantity
	}
	if req.LowStockThreshold != nil {
		if req.LowStockThreshold.IsNegative() {
			return domain.Product{}, domain.ErrInvalidStock
		}
		product.LowStockThreshold = *req.LowStockThreshold
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	product.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, &product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, product.ID)
}

func (s *Service) ListLowStock(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListLowStock(ctx, s.db)
}
