package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/gstbill/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListInvoiceFilter struct {
	CustomerID snowflake.ID
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice, items []InvoiceItem) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Invoice, error)
	ListItems(ctx context.Context, db *gorm.DB, invoiceID snowflake.ID) ([]InvoiceItem, error)
	List(ctx context.Context, db *gorm.DB, filter ListInvoiceFilter, page pagination.Pagination) ([]Invoice, int64, error)

	// CountOnDay counts invoices issued on the calendar day of the given
	// time, used to allocate the daily number sequence.
	CountOnDay(ctx context.Context, db *gorm.DB, day time.Time) (int64, error)
}
