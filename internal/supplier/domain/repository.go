package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/gstbill/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListSupplierFilter struct {
	Name string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, supplier *Supplier) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Supplier, error)
	List(ctx context.Context, db *gorm.DB, filter ListSupplierFilter, page pagination.Pagination) ([]Supplier, int64, error)
	Update(ctx context.Context, db *gorm.DB, supplier *Supplier) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
