package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/gstbill/internal/supplier/domain"
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
		log:   p.Log.Named("supplier.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateSupplierRequest) (domain.Supplier, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Supplier{}, domain.ErrInvalidName
	}

	email := strings.TrimSpace(req.Email)
	if email != "" && !strings.Contains(email, "@") {
		return domain.Supplier{}, domain.ErrInvalidEmail
	}

	now := time.Now().UTC()
	supplier := domain.Supplier{
		ID:        s.genID.Generate(),
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		Address:   strings.TrimSpace(req.Address),
		GSTIN:     strings.TrimSpace(req.GSTIN),
		State:     strings.TrimSpace(req.State),
		StateCode: strings.TrimSpace(req.StateCode),
		Metadata:  datatypes.JSONMap{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, &supplier); err != nil {
		return domain.Supplier{}, err
	}

	return supplier, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Supplier, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.Supplier{}, domain.ErrInvalidID
	}

	supplier, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Supplier{}, err
	}
	if supplier == nil {
		return domain.Supplier{}, domain.ErrSupplierNotFound
	}
	return *supplier, nil
}

func (s *Service) List(ctx context.Context, req domain.ListSupplierRequest) (domain.ListSupplierResponse, error) {
	req.Normalize()

	suppliers, total, err := s.repo.List(ctx, s.db, domain.ListSupplierFilter{Name: strings.TrimSpace(req.Name)}, req.Pagination)
	if err != nil {
		return domain.ListSupplierResponse{}, err
	}

	return domain.ListSupplierResponse{
		PageInfo:  pagination.BuildPageInfo(req.Pagination, total),
		Suppliers: suppliers,
	}, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateSupplierRequest) (domain.Supplier, error) {
	supplier, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return domain.Supplier{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Supplier{}, domain.ErrInvalidName
		}
		supplier.Name = name
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email != "" && !strings.Contains(email, "@") {
			return domain.Supplier{}, domain.ErrInvalidEmail
		}
		supplier.Email = email
	}
	if req.Phone != nil {
		supplier.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		supplier.Address = strings.TrimSpace(*req.Address)
	}
	if req.GSTIN != nil {
		supplier.GSTIN = strings.TrimSpace(*req.GSTIN)
	}
	if req.State != nil {
		supplier.State = strings.TrimSpace(*req.State)
	}
	if req.StateCode != nil {
		supplier.StateCode = strings.TrimSpace(*req.StateCode)
	}

	supplier.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, &supplier); err != nil {
		return domain.Supplier{}, err
	}
	return supplier, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	supplier, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, supplier.ID)
}
