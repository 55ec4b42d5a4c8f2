package company

import "errors"

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrValidation      = errors.New("all fields required")
	ErrInvalidDate     = errors.New("invalid visit date")
)
