package memory

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"pantry/pkg/domain/entities"
	"pantry/pkg/domain/repositories"
)

func TestProductRepository_SaveAndGet(t *testing.T) {
	repo := NewProductRepository()

	product, err := entities.NewProduct("milk", decimal.NewFromInt(3), "2025-06-01")
	if err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}

	if err := repo.Save(product); err != nil {
		t.Fatalf("Failed to save product: %v", err)
	}

	retrieved, err := repo.Get("milk")
	if err != nil {
		t.Fatalf("Failed to get product: %v", err)
	}

	if retrieved.Name != product.Name {
		t.Errorf("Expected name %s, got %s", product.Name, retrieved.Name)
	}
	if !retrieved.Quantity.Equal(product.Quantity) {
		t.Errorf("Expected quantity %s, got %s", product.Quantity, retrieved.Quantity)
	}
	if retrieved.ExpirationDate != product.ExpirationDate {
		t.Errorf("Expected expiration date %s, got %s", product.ExpirationDate, retrieved.ExpirationDate)
	}
}

func TestProductRepository_GetMissing(t *testing.T) {
	repo := NewProductRepository()

	if _, err := repo.Get("missing"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestProductRepository_Delete(t *testing.T) {
	repo := NewProductRepository()

	product, err := entities.NewProduct("egg", decimal.NewFromInt(6), "2025-06-01")
	if err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}
	if err := repo.Save(product); err != nil {
		t.Fatalf("Failed to save product: %v", err)
	}

	if err := repo.Delete("egg"); err != nil {
		t.Fatalf("Failed to delete product: %v", err)
	}
	if _, err := repo.Get("egg"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	if err := repo.Delete("egg"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestProductRepository_All(t *testing.T) {
	repo := NewProductRepository()

	names := []string{"milk", "egg", "butter"}
	for _, name := range names {
		product, err := entities.NewProduct(name, decimal.NewFromInt(1), "2025-06-01")
		if err != nil {
			t.Fatalf("Failed to create product: %v", err)
		}
		if err := repo.Save(product); err != nil {
			t.Fatalf("Failed to save product: %v", err)
		}
	}

	all, err := repo.All()
	if err != nil {
		t.Fatalf("Failed to list products: %v", err)
	}
	if len(all) != len(names) {
		t.Fatalf("Expected %d products, got %d", len(names), len(all))
	}

	seen := make(map[string]bool)
	for _, product := range all {
		seen[product.Name] = true
	}
	for _, name := range names {
		if !seen[name] {
			t.Errorf("Expected product %s in listing", name)
		}
	}
}
