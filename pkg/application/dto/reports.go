package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus is one row of the pantry status report
type ProductStatus struct {
	Name           string          `json:"name"`
	Quantity       decimal.Decimal `json:"quantity"`
	ExpirationDate string          `json:"expiration_date"`
}

// ActionEntry is one line of the action history report
type ActionEntry struct {
	Kind        string          `json:"kind"`
	ProductName string          `json:"product"`
	Amount      decimal.Decimal `json:"amount"`
	RecordedAt  time.Time       `json:"recorded_at"`
}

// ShoppingSuggestion pairs a product name with its cumulative consumed amount
// across the entire action history
type ShoppingSuggestion struct {
	ProductName   string          `json:"product"`
	TotalConsumed decimal.Decimal `json:"total_consumed"`
}
