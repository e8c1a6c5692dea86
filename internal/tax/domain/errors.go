package domain

import "errors"

var (
	ErrInvalidQuantity       = errors.New("invalid_quantity")
	ErrInvalidUnitRate       = errors.New("invalid_unit_rate")
	ErrInvalidTaxRate        = errors.New("invalid_tax_rate")
	ErrInvalidDiscount       = errors.New("invalid_discount")
	ErrNegativeTaxableAmount = errors.New("negative_taxable_amount")
)
