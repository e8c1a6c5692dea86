package domain

import "errors"

var (
	ErrInvalidName      = errors.New("invalid_name")
	ErrInvalidEmail     = errors.New("invalid_email")
	ErrInvalidStateCode = errors.New("invalid_state_code")
	ErrInvalidID        = errors.New("invalid_id")
	ErrCustomerNotFound = errors.New("customer_not_found")
)
