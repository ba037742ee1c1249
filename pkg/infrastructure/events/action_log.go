package events

import (
	"sync"

	"pantry/pkg/domain/entities"
	"pantry/pkg/domain/repositories"
)

// InMemoryActionLog is an append-only in-memory log of pantry actions. It keeps
// the global append order alongside a per-product stream for targeted reads.
type InMemoryActionLog struct {
	mutex      sync.RWMutex
	streams    map[string][]entities.ActionRecord
	allRecords []entities.ActionRecord
}

// NewInMemoryActionLog creates a new empty action log
func NewInMemoryActionLog() *InMemoryActionLog {
	return &InMemoryActionLog{
		streams:    make(map[string][]entities.ActionRecord),
		allRecords: make([]entities.ActionRecord, 0),
	}
}

// Verify interface compliance
var _ repositories.ActionLog = (*InMemoryActionLog)(nil)

// Append adds a record to the end of the log and to its product's stream
func (l *InMemoryActionLog) Append(record entities.ActionRecord) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.streams[record.ProductName] = append(l.streams[record.ProductName], record)
	l.allRecords = append(l.allRecords, record)
}

// All returns a copy of every record in append order
func (l *InMemoryActionLog) All() []entities.ActionRecord {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	records := make([]entities.ActionRecord, len(l.allRecords))
	copy(records, l.allRecords)
	return records
}

// Stream returns a copy of the records for a single product in append order
func (l *InMemoryActionLog) Stream(productName string) []entities.ActionRecord {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	stream, ok := l.streams[productName]
	if !ok {
		return []entities.ActionRecord{}
	}

	records := make([]entities.ActionRecord, len(stream))
	copy(records, stream)
	return records
}
