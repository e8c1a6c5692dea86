package domain

import (
	"context"

	"github.com/smallbiznis/gstbill/pkg/db/pagination"
)

type CreateSupplierRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	GSTIN     string `json:"gstin"`
	State     string `json:"state"`
	StateCode string `json:"state_code"`
}

type UpdateSupplierRequest struct {
	ID        string  `json:"-"`
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	GSTIN     *string `json:"gstin,omitempty"`
	State     *string `json:"state,omitempty"`
	StateCode *string `json:"state_code,omitempty"`
}

type ListSupplierRequest struct {
	Name string `form:"name"`
	pagination.Pagination
}

type ListSupplierResponse struct {
	pagination.PageInfo
	Suppliers []Supplier `json:"suppliers"`
}

type Service interface {
	Create(ctx context.Context, req CreateSupplierRequest) (Supplier, error)
	GetByID(ctx context.Context, id string) (Supplier, error)
	List(ctx context.Context, req ListSupplierRequest) (ListSupplierResponse, error)
	Update(ctx context.Context, req UpdateSupplierRequest) (Supplier, error)
	Delete(ctx context.Context, id string) error
}
