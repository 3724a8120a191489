package repositories

import (
	"errors"

	"wegotboard/internal/models"
)

// ErrNotFound is wrapped by every repository when the requested document does not exist.
var ErrNotFound = errors.New("record not found")

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id string) error
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	// GetByIDs returns the products that exist among ids, in no particular order.
	GetByIDs(ids []string) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	GetAll() ([]models.UserReview, error)
	GetByProduct(productID string) ([]models.UserReview, error)
	GetByID(id string) (*models.UserReview, error)
	Create(review *models.UserReview) error
	Update(review *models.UserReview) error
	Delete(id string) error
}

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Create(category *models.Category) error
}

// TagRepository defines the interface for tag data access.
type TagRepository interface {
	GetAll() ([]models.Tag, error)
	GetByID(id string) (*models.Tag, error)
	Create(tag *models.Tag) error
}

// Repositories bundles one repository per collection.
type Repositories struct {
	Users      UserRepository
	Products   ProductRepository
	Reviews    ReviewRepository
	Categories CategoryRepository
	Tags       TagRepository
}
