package services

import (
	"errors"

	"pantry/pkg/domain/repositories"
)

// Recoverable operation failures. Every rejected operation returns one of these
// and leaves both the products and the history untouched.
var (
	// ErrInvalidQuantity is returned when a supplied quantity is not greater than zero.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrProductNotFound is returned when a consume targets a product not in the pantry.
	ErrProductNotFound = repositories.ErrNotFound

	// ErrInsufficientQuantity is returned when a consume asks for more than is held.
	ErrInsufficientQuantity = errors.New("not enough quantity to consume")
)
