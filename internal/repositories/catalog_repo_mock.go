package repositories

import "wegotboard/internal/models"

// MockCategoryRepository is an in-memory implementation of CategoryRepository.
type MockCategoryRepository struct {
	categories *memoryCollection[models.Category]
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: newMemoryCollection("category", func(c *models.Category) *string { return &c.ID }),
	}
}

func (r *MockCategoryRepository) GetAll() ([]models.Category, error) {
	return r.categories.all(nil), nil
}

func (r *MockCategoryRepository) GetByID(id string) (*models.Category, error) {
	return r.categories.get(id)
}

func (r *MockCategoryRepository) Create(category *models.Category) error {
	return r.categories.insert(category)
}

// MockTagRepository is an in-memory implementation of TagRepository.
type MockTagRepository struct {
	tags *memoryCollection[models.Tag]
}

func NewMockTagRepository() *MockTagRepository {
	return &MockTagRepository{
		tags: newMemoryCollection("tag", func(t *models.Tag) *string { return &t.ID }),
	}
}

func (r *MockTagRepository) GetAll() ([]models.Tag, error) {
	return r.tags.all(nil), nil
}

func (r *MockTagRepository) GetByID(id string) (*models.Tag, error) {
	return r.tags.get(id)
}

func (r *MockTagRepository) Create(tag *models.Tag) error {
	return r.tags.insert(tag)
}

// NewMockRepositories wires one in-memory repository per collection.
func NewMockRepositories() *Repositories {
	return &Repositories{
		Users:      NewMockUserRepository(),
		Products:   NewMockProductRepository(),
		Reviews:    NewMockReviewRepository(),
		Categories: NewMockCategoryRepository(),
		Tags:       NewMockTagRepository(),
	}
}
