package services

import (
	"errors"
	"strings"

	"wegotboard/internal/models"
	"wegotboard/internal/repositories"
)

// ProductService handles business logic related to the catalog: products,
// their categories and their tags.
type ProductService struct {
	repo         repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	tagRepo      repositories.TagRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, tagRepo repositories.TagRepository) *ProductService {
	return &ProductService{
		repo:         repo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, internalError("failed to list products", err)
	}
	return products, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, storeError(err, ErrProductNotFound, "get product")
	}
	return product, nil
}

// CreateProduct validates a new product against the schema and stores it.
func (s *ProductService) CreateProduct(product *models.Product) error {
	product.ID = ""
	if err := s.checkProduct(product); err != nil {
		return err
	}
	if err := s.repo.Create(product); err != nil {
		return internalError("failed to create product", err)
	}
	return nil
}

// UpdateProduct replaces the product stored under product.ID.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	existing, err := s.GetProductByID(product.ID)
	if err != nil {
		return err
	}
	product.CreatedAt = existing.CreatedAt
	if err := s.checkProduct(product); err != nil {
		return err
	}
	if err := s.repo.Update(product); err != nil {
		return storeError(err, ErrProductNotFound, "update product")
	}
	return nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return storeError(err, ErrProductNotFound, "delete product")
	}
	return nil
}

// GetAllCategories retrieves all categories.
func (s *ProductService) GetAllCategories() ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, internalError("failed to list categories", err)
	}
	return categories, nil
}

// CreateCategory stores a new category.
func (s *ProductService) CreateCategory(category *models.Category) error {
	category.ID = ""
	category.Name = strings.TrimSpace(category.Name)
	if fieldErrs := models.Validate(category); fieldErrs != nil {
		return &ValidationError{Fields: fieldErrs}
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return internalError("failed to create category", err)
	}
	return nil
}

// GetAllTags retrieves all tags.
func (s *ProductService) GetAllTags() ([]models.Tag, error) {
	tags, err := s.tagRepo.GetAll()
	if err != nil {
		return nil, internalError("failed to list tags", err)
	}
	return tags, nil
}

// CreateTag stores a new tag.
func (s *ProductService) CreateTag(tag *models.Tag) error {
	tag.ID = ""
	tag.Name = strings.TrimSpace(tag.Name)
	if fieldErrs := models.Validate(tag); fieldErrs != nil {
		return &ValidationError{Fields: fieldErrs}
	}
	if err := s.tagRepo.Create(tag); err != nil {
		return internalError("failed to create tag", err)
	}
	return nil
}

// checkProduct applies schema defaults, validates the document and confirms
// that its category and tags exist.
func (s *ProductService) checkProduct(product *models.Product) error {
	product.Name = strings.TrimSpace(product.Name)
	product.Description = strings.TrimSpace(product.Description)
	product.ApplyDefaults()

	if fieldErrs := models.Validate(product); fieldErrs != nil {
		return &ValidationError{Fields: fieldErrs}
	}

	if _, err := s.categoryRepo.GetByID(product.CategoryID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUnknownCategory
		}
		return internalError("failed to check category", err)
	}
	for _, tagID := range product.Tags {
		if _, err := s.tagRepo.GetByID(tagID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrUnknownTag
			}
			return internalError("failed to check tag", err)
		}
	}
	return nil
}
