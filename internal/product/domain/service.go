package domain

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/gstbill/pkg/db/pagination"
)

type CreateProductRequest struct {
	Name              string          `json:"name"`
	Description       *string         `json:"description,omitempty"`
	HSNCode           string          `json:"hsn_code"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	TaxRatePercent    decimal.Decimal `json:"tax_rate_percent"`
	StockQuantity     decimal.Decimal `json:"stock_quantity"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
}

type UpdateProductRequest struct {
	ID                string           `json:"-"`
	Name              *string          `json:"name,omitempty"`
	Description       *string          `json:"description,omitempty"`
	HSNCode           *string          `json:"hsn_code,omitempty"`
	UnitPrice         *decimal.Decimal `json:"unit_price,omitempty"`
	TaxRatePercent    *decimal.Decimal `json:"tax_rate_percent,omitempty"`
	StockQuantity     *decimal.Decimal `json:"stock_quantity,omitempty"`
	LowStockThreshold *decimal.Decimal `json:"low_stock_threshold,omitempty"`
	Active            *bool            `json:"active,omitempty"`
}

type ListProductRequest struct {
	Name string `form:"name"`
	pagination.Pagination
}

type ListProductResponse struct {
	pagination.PageInfo
	Products []Product `json:"products"`
}

type Service interface {
	Create(ctx context.Context, req CreateProductRequest) (Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	List(ctx context.Context, req ListProductRequest) (ListProductResponse, error)
	Update(ctx context.Context, req UpdateProductRequest) (Product, error)
	Delete(ctx context.Context, id string) error

	// ListLowStock returns active products at or below their alert threshold.
	ListLowStock(ctx context.Context) ([]Product, error)
}
