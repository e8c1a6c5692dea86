package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Get(ctx context.Context, db *gorm.DB) (*Profile, error)
	Upsert(ctx context.Context, db *gorm.DB, profile *Profile) error
}
