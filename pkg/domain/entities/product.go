package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product represents a perishable good tracked by the pantry
type Product struct {
	Name           string
	Quantity       decimal.Decimal
	ExpirationDate string
}

// NewProduct creates a validated Product
func NewProduct(name string, quantity decimal.Decimal, expirationDate string) (*Product, error) {
	if name == "" {
		return nil, fmt.Errorf("product name cannot be empty")
	}
	if quantity.Sign() <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %s", quantity)
	}
	if expirationDate == "" {
		return nil, fmt.Errorf("expiration date cannot be empty")
	}

	return &Product{
		Name:           name,
		Quantity:       quantity,
		ExpirationDate: expirationDate,
	}, nil
}

// AddQuantity adds amount to the current quantity. Caller guarantees amount > 0.
func (p *Product) AddQuantity(amount decimal.Decimal) {
	p.Quantity = p.Quantity.Add(amount)
}

// ConsumeQuantity subtracts amount from the current quantity.
// Caller guarantees 0 < amount <= Quantity.
func (p *Product) ConsumeQuantity(amount decimal.Decimal) {
	p.Quantity = p.Quantity.Sub(amount)
}

// ExpiredAsOf reports whether the product is expired on the given reference date.
// Dates are compared lexicographically in YYYY-MM-DD format; a product counts as
// expired on its own expiration date.
func (p *Product) ExpiredAsOf(referenceDate string) bool {
	return referenceDate >= p.ExpirationDate
}
