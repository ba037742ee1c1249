package repositories

import (
	"errors"

	"pantry/pkg/domain/entities"
)

// ErrNotFound is returned when a requested product is not in the repository.
var ErrNotFound = errors.New("product not found")

// ProductRepository defines the interface for product storage
type ProductRepository interface {
	// Get returns the product stored under name, or ErrNotFound
	Get(name string) (*entities.Product, error)

	// Save stores a product under its name, replacing any existing entry
	Save(product *entities.Product) error

	// Delete removes the product stored under name, or returns ErrNotFound
	Delete(name string) error

	// All returns every stored product in no particular order
	All() ([]*entities.Product, error)
}

// ActionLog defines the interface for the append-only history of pantry actions
type ActionLog interface {
	// Append adds a record to the end of the log
	Append(record entities.ActionRecord)

	// All returns every record in append order
	All() []entities.ActionRecord

	// Stream returns the records for a single product in append order
	Stream(productName string) []entities.ActionRecord
}
