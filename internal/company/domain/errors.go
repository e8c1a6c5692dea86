package domain

import "errors"

var (
	ErrInvalidName      = errors.New("invalid_name")
	ErrInvalidStateCode = errors.New("invalid_state_code")
	ErrNotConfigured    = errors.New("company_not_configured")
)
