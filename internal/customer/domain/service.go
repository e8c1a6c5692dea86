package domain

import (
	"context"

	"github.com/smallbiznis/gstbill/pkg/db/pagination"
)

type CreateCustomerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	GSTIN     string `json:"gstin"`
	State     string `json:"state"`
	StateCode string `json:"state_code"`
}

type UpdateCustomerRequest struct {
	ID        string  `json:"-"`
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	GSTIN     *string `json:"gstin,omitempty"`
	State     *string `json:"state,omitempty"`
	StateCode *string `json:"state_code,omitempty"`
}

type ListCustomerRequest struct {
	Name string `form:"name"`
	pagination.Pagination
}

type ListCustomerResponse struct {
	pagination.PageInfo
	Customers []Customer `json:"customers"`
}

type Service interface {
	Create(ctx context.Context, req CreateCustomerRequest) (Customer, error)
	GetByID(ctx context.Context, id string) (Customer, error)
	List(ctx context.Context, req ListCustomerRequest) (ListCustomerResponse, error)
	Update(ctx context.Context, req UpdateCustomerRequest) (Customer, error)
	Delete(ctx context.Context, id string) error
}
