package memory

import (
	"pantry/pkg/domain/entities"
	"pantry/pkg/domain/repositories"
)

// ProductRepository provides in-memory product storage keyed by product name
type ProductRepository struct {
	products map[string]*entities.Product
}

// NewProductRepository creates a new in-memory product repository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[string]*entities.Product),
	}
}

// Verify interface compliance
var _ repositories.ProductRepository = (*ProductRepository)(nil)

// Get returns the product stored under name
func (r *ProductRepository) Get(name string) (*entities.Product, error) {
	product, ok := r.products[name]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return product, nil
}

// Save stores a product under its name, replacing any existing entry
func (r *ProductRepository) Save(product *entities.Product) error {
	r.products[product.Name] = product
	return nil
}

// Delete removes the product stored under name
func (r *ProductRepository) Delete(name string) error {
	if _, ok := r.products[name]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.products, name)
	return nil
}

// All returns every stored product in no particular order
func (r *ProductRepository) All() ([]*entities.Product, error) {
	products := make([]*entities.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	return products, nil
}
