package domain

import "errors"

// Domain errors (no external dependencies). The HTTP layer is the single
// place that maps these to status codes and response bodies.
var (
	ErrStoreNotFound    = errors.New("store not found")
	ErrProductNotFound  = errors.New("product not found in this store")
	ErrStoreExists      = errors.New("store already exists for this user")
	ErrDuplicateSKU     = errors.New("SKU already exists in this store")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNegativeQuantity = errors.New("resulting quantity would be negative")
)
