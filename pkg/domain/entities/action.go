package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ActionKind represents the kind of a logged pantry action
type ActionKind int

const (
	ActionInsert ActionKind = iota
	ActionConsume
)

// String method for ActionKind enum
func (k ActionKind) String() string {
	switch k {
	case ActionInsert:
		return "Inserted"
	case ActionConsume:
		return "Consumed"
	default:
		return "Unknown"
	}
}

// ActionRecord is a structured fact describing one successful insert or consume.
// Records are append-only: once logged they are never mutated or removed.
type ActionRecord struct {
	ID          uuid.UUID
	Kind        ActionKind
	ProductName string
	Amount      decimal.Decimal
	RecordedAt  time.Time
}

// NewActionRecord creates an ActionRecord stamped with a fresh ID and the current time
func NewActionRecord(kind ActionKind, productName string, amount decimal.Decimal) ActionRecord {
	return ActionRecord{
		ID:          uuid.New(),
		Kind:        kind,
		ProductName: productName,
		Amount:      amount,
		RecordedAt:  time.Now(),
	}
}
