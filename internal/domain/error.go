package domain

import "errors"

var (
	// Common domain errors
	ErrNotFound            = errors.New("entity not found")
	ErrAlreadyExists       = errors.New("entity already exists")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrAcquirerFailure     = errors.New("acquirer failure")
	ErrOperationFailed     = errors.New("operation failed")
)
