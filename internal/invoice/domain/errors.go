package domain

import "errors"

var (
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvoiceNotFound = errors.New("invoice_not_found")
	ErrTotalsMismatch  = errors.New("invoice_totals_mismatch")
)
