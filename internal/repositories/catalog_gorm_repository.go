package repositories

import (
	"errors"
	"fmt"

	"wegotboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

func (r *GORMCategoryRepository) GetByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by ID %s: %w", id, err)
	}
	return &category, nil
}

func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GORMTagRepository is a GORM implementation of TagRepository.
type GORMTagRepository struct {
	db *gorm.DB
}

func NewGORMTagRepository(db *gorm.DB) *GORMTagRepository {
	return &GORMTagRepository{db: db}
}

func (r *GORMTagRepository) GetAll() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Order("name").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to get all tags: %w", err)
	}
	return tags, nil
}

func (r *GORMTagRepository) GetByID(id string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tag with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tag by ID %s: %w", id, err)
	}
	return &tag, nil
}

func (r *GORMTagRepository) Create(tag *models.Tag) error {
	if tag.ID == "" {
		tag.ID = uuid.New().String()
	}
	if err := r.db.Create(tag).Error; err != nil {
		return fmt.Errorf("failed to create tag: %w", err)
	}
	return nil
}

// NewGORMRepositories wires one GORM repository per collection on db.
func NewGORMRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewGORMUserRepository(db),
		Products:   NewGORMProductRepository(db),
		Reviews:    NewGORMReviewRepository(db),
		Categories: NewGORMCategoryRepository(db),
		Tags:       NewGORMTagRepository(db),
	}
}

// Migrate creates or updates the tables backing every repository.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.UserReview{},
		&models.Category{},
		&models.Tag{},
	)
}
