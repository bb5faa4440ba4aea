package models

import "errors"

// Shared error taxonomy. Repositories and services return these sentinels;
// controllers translate them to HTTP statuses.
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product is not available")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrCartConflict       = errors.New("conflicting cart creation")
)
