package repositories

import (
	"time"

	"wegotboard/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products *memoryCollection[models.Product]
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: newMemoryCollection("product", func(p *models.Product) *string { return &p.ID }),
	}
}

// GetAll returns all products in insertion order.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	return r.products.all(nil), nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	return r.products.get(id)
}

// GetByIDs returns the products that exist among ids.
func (r *MockProductRepository) GetByIDs(ids []string) ([]models.Product, error) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	return r.products.all(func(p *models.Product) bool { return wanted[p.ID] }), nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	return r.products.insert(product)
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	product.UpdatedAt = time.Now()
	return r.products.replace(product)
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	return r.products.remove(id)
}
