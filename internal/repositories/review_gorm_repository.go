package repositories

import (
	"errors"
	"fmt"

	"wegotboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// GetAll retrieves every review.
func (r *GORMReviewRepository) GetAll() ([]models.UserReview, error) {
	var reviews []models.UserReview
	if err := r.db.Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get all reviews: %w", err)
	}
	return reviews, nil
}

// GetByProduct retrieves the reviews left on a single product.
func (r *GORMReviewRepository) GetByProduct(productID string) ([]models.UserReview, error) {
	var reviews []models.UserReview
	if err := r.db.Where("product_id = ?", productID).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews for product %s: %w", productID, err)
	}
	return reviews, nil
}

// GetByID retrieves a review by its ID.
func (r *GORMReviewRepository) GetByID(id string) (*models.UserReview, error) {
	var review models.UserReview
	if err := r.db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("review with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get review by ID %s: %w", id, err)
	}
	return &review, nil
}

// Create inserts a new review.
func (r *GORMReviewRepository) Create(review *models.UserReview) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// Update overwrites an existing review.
func (r *GORMReviewRepository) Update(review *models.UserReview) error {
	res := r.db.Model(&models.UserReview{}).Where("id = ?", review.ID).Select("*").Updates(review)
	if res.Error != nil {
		return fmt.Errorf("failed to update review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review with ID %s for update: %w", review.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a review by its ID.
func (r *GORMReviewRepository) Delete(id string) error {
	res := r.db.Delete(&models.UserReview{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review with ID %s for deletion: %w", id, ErrNotFound)
	}
	return nil
}
