package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/gstbill/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListProductFilter struct {
	Name string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, product *Product) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Product, error)
	List(ctx context.Context, db *gorm.DB, filter ListProductFilter, page pagination.Pagination) ([]Product, int64, error)
	ListLowStock(ctx context.Context, db *gorm.DB) ([]Product, error)
	Update(ctx context.Context, db *gorm.DB, product *Product) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error

	// AdjustStock applies a signed delta to the stored stock quantity.
	AdjustStock(ctx context.Context, db *gorm.DB, id snowflake.ID, delta decimal.Decimal) error
}
