package services

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pantry/pkg/application/dto"
	"pantry/pkg/domain/entities"
	"pantry/pkg/domain/repositories"
)

// PantryService implements the pantry store contract on top of a product
// repository and an action log. Every operation runs under a single mutex;
// individual operations are not designed to compose atomically from outside.
type PantryService struct {
	mu       sync.Mutex
	products repositories.ProductRepository
	log      repositories.ActionLog
	logger   *zap.Logger
}

// NewPantryService creates a pantry service over the given repositories
func NewPantryService(products repositories.ProductRepository, log repositories.ActionLog, logger *zap.Logger) *PantryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PantryService{
		products: products,
		log:      log,
		logger:   logger,
	}
}

// InsertProduct adds quantity of a product, creating it when absent. When the
// product already exists its stored expiration date is kept unchanged; only the
// first insert of a name sets the expiration date.
func (s *PantryService) InsertProduct(name string, quantity decimal.Decimal, expirationDate string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity.Sign() <= 0 {
		s.logger.Warn("rejected insert",
			zap.String("product", name),
			zap.String("quantity", quantity.String()),
			zap.Error(ErrInvalidQuantity))
		return ErrInvalidQuantity
	}

	existing, err := s.products.Get(name)
	switch {
	case err == nil:
		existing.AddQuantity(quantity)
		if err := s.products.Save(existing); err != nil {
			return err
		}
	case errors.Is(err, repositories.ErrNotFound):
		product, err := entities.NewProduct(name, quantity, expirationDate)
		if err != nil {
			return err
		}
		if err := s.products.Save(product); err != nil {
			return err
		}
	default:
		return err
	}

	s.log.Append(entities.NewActionRecord(entities.ActionInsert, name, quantity))
	s.logger.Info("inserted product",
		zap.String("product", name),
		zap.String("quantity", quantity.String()))
	return nil
}

// ConsumeProduct removes quantity of a product. A product whose quantity reaches
// exactly zero is deleted from the pantry. On any failure nothing changes and no
// history record is written.
func (s *PantryService) ConsumeProduct(name string, quantity decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity.Sign() <= 0 {
		s.logger.Warn("rejected consume",
			zap.String("product", name),
			zap.String("quantity", quantity.String()),
			zap.Error(ErrInvalidQuantity))
		return ErrInvalidQuantity
	}

	product, err := s.products.Get(name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			s.logger.Warn("rejected consume",
				zap.String("product", name),
				zap.Error(ErrProductNotFound))
			return ErrProductNotFound
		}
		return err
	}

	if product.Quantity.LessThan(quantity) {
		s.logger.Warn("rejected consume",
			zap.String("product", name),
			zap.String("requested", quantity.String()),
			zap.String("held", product.Quantity.String()),
			zap.Error(ErrInsufficientQuantity))
		return ErrInsufficientQuantity
	}

	product.ConsumeQuantity(quantity)
	if product.Quantity.IsZero() {
		if err := s.products.Delete(name); err != nil {
			return err
		}
	} else {
		if err := s.products.Save(product); err != nil {
			return err
		}
	}

	s.log.Append(entities.NewActionRecord(entities.ActionConsume, name, quantity))
	s.logger.Info("consumed product",
		zap.String("product", name),
		zap.String("quantity", quantity.String()))
	return nil
}

// Status lists every product currently in the pantry. Order is unspecified;
// an empty slice means the pantry is empty.
func (s *PantryService) Status() ([]dto.ProductStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.products.All()
	if err != nil {
		return nil, err
	}

	statuses := make([]dto.ProductStatus, 0, len(products))
	for _, product := range products {
		statuses = append(statuses, dto.ProductStatus{
			Name:           product.Name,
			Quantity:       product.Quantity,
			ExpirationDate: product.ExpirationDate,
		})
	}
	return statuses, nil
}

// History returns every logged action in the order the operations succeeded
func (s *PantryService) History() []dto.ActionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return toActionEntries(s.log.All())
}

// ProductHistory returns the logged actions for a single product in append order
func (s *PantryService) ProductHistory(name string) []dto.ActionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return toActionEntries(s.log.Stream(name))
}

// CheckExpirations removes every product whose expiration date is on or before
// referenceDate and returns the removed names. This is a destructive sweep:
// expired products are permanently deleted, not merely flagged.
func (s *PantryService) CheckExpirations(referenceDate string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.products.All()
	if err != nil {
		return nil, err
	}

	removed := make([]string, 0)
	for _, product := range products {
		if !product.ExpiredAsOf(referenceDate) {
			continue
		}
		if err := s.products.Delete(product.Name); err != nil {
			return removed, err
		}
		removed = append(removed, product.Name)
	}

	if len(removed) > 0 {
		s.logger.Info("removed expired products",
			zap.Strings("products", removed),
			zap.String("reference_date", referenceDate))
	}
	return removed, nil
}

// ShoppingList reports cumulative historical consumption per product, computed
// by summing the Consume records across the entire history. Totals are lifetime
// counters: inserts and current stock never offset them.
func (s *PantryService) ShoppingList() []dto.ShoppingSuggestion {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, record := range s.log.All() {
		if record.Kind != entities.ActionConsume {
			continue
		}
		if _, ok := totals[record.ProductName]; !ok {
			order = append(order, record.ProductName)
		}
		totals[record.ProductName] = totals[record.ProductName].Add(record.Amount)
	}

	suggestions := make([]dto.ShoppingSuggestion, 0, len(order))
	for _, name := range order {
		suggestions = append(suggestions, dto.ShoppingSuggestion{
			ProductName:   name,
			TotalConsumed: totals[name],
		})
	}
	return suggestions
}

func toActionEntries(records []entities.ActionRecord) []dto.ActionEntry {
	entries := make([]dto.ActionEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, dto.ActionEntry{
			Kind:        record.Kind.String(),
			ProductName: record.ProductName,
			Amount:      record.Amount,
			RecordedAt:  record.RecordedAt,
		})
	}
	return entries
}
