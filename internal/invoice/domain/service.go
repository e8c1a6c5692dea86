package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/gstbill/pkg/db/pagination"
)

// CreateInvoiceItemRequest is one requested line. A product reference fills
// the description, HSN code, unit rate, and tax rate from the catalogue and
// decrements stock; explicit fields override the catalogue values.
type CreateInvoiceItemRequest struct {
	ProductID      string           `json:"product_id,omitempty"`
	Description    string           `json:"description,omitempty"`
	HSNCode        string           `json:"hsn_code,omitempty"`
	Quantity       decimal.Decimal  `json:"quantity"`
	UnitRate       *decimal.Decimal `json:"unit_rate,omitempty"`
	TaxRatePercent *decimal.Decimal `json:"tax_rate_percent,omitempty"`
	Discount       decimal.Decimal  `json:"discount"`
}

type CreateInvoiceRequest struct {
	CustomerID    string                     `json:"customer_id"`
	InvoiceDate   time.Time                  `json:"invoice_date,omitempty"`
	DueDate       time.Time                  `json:"due_date,omitempty"`
	PlaceOfSupply string                     `json:"place_of_supply,omitempty"`
	Notes         string                     `json:"notes,omitempty"`
	Terms         string                     `json:"terms,omitempty"`
	Items         []CreateInvoiceItemRequest `json:"items"`
}

type ListInvoiceRequest struct {
	CustomerID string `form:"customer_id"`
	pagination.Pagination
}

type ListInvoiceResponse struct {
	pagination.PageInfo
	Invoices []Invoice `json:"invoices"`
}

// RenderPDFResponse carries the complete rendered document. Content is never
// partial; a render failure returns an error instead.
type RenderPDFResponse struct {
	Filename string
	Content  []byte
}

type Service interface {
	Create(ctx context.Context, req CreateInvoiceRequest) (Invoice, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
	List(ctx context.Context, req ListInvoiceRequest) (ListInvoiceResponse, error)
	RenderPDF(ctx context.Context, id string) (RenderPDFResponse, error)
}
