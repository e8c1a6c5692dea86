package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/gstbill/internal/company/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
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
		log:   p.Log.Named("company.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Get(ctx context.Context) (domain.Profile, error) {
	profile, err := s.repo.Get(ctx, s.db)
	if err != nil {
		return domain.Profile{}, err
	}
	if profile == nil {
		return domain.Profile{}, domain.ErrNotConfigured
	}
	return *profile, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateProfileRequest) (domain.Profile, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Profile{}, domain.ErrInvalidName
	}
	stateCode := strings.TrimSpace(req.StateCode)
	if stateCode == "" {
		return domain.Profile{}, domain.ErrInvalidStateCode
	}

	now := time.Now().UTC()
	profile := domain.Profile{
		Name:      name,
		Address:   strings.TrimSpace(req.Address),
		GSTIN:     strings.TrimSpace(req.GSTIN),
		State:     strings.TrimSpace(req.State),
		StateCode: stateCode,
		Phone:     strings.TrimSpace(req.Phone),
		Email:     strings.TrimSpace(req.Email),

		BankAccountHolderName: strings.TrimSpace(req.BankAccountHolderName),
		BankName:              strings.TrimSpace(req.BankName),
		BankAccountNumber:     strings.TrimSpace(req.BankAccountNumber),
		BankBranch:            strings.TrimSpace(req.BankBranch),
		BankIFSCCode:          strings.TrimSpace(req.BankIFSCCode),

		DefaultNotes: req.DefaultNotes,
		DefaultTerms: req.DefaultTerms,

		UpdatedAt: now,
	}

	existing, err := s.repo.Get(ctx, s.db)
	if err != nil {
		return domain.Profile{}, err
	}
	if existing != nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.ID = s.genID.Generate()
		profile.CreatedAt = now
	}

	if err := s.repo.Upsert(ctx, s.db, &profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}
