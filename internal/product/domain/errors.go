package domain

import "errors"

var (
	ErrInvalidName       = errors.New("invalid_name")
	ErrInvalidUnitPrice  = errors.New("invalid_unit_price")
	ErrInvalidTaxRate    = errors.New("invalid_tax_rate")
	ErrInvalidStock      = errors.New("invalid_stock")
	ErrInvalidID         = errors.New("invalid_id")
	ErrProductNotFound   = errors.New("product_not_found")
	ErrInsufficientStock = errors.New("insufficient_stock")
)
