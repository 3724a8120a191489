package repositories

import "wegotboard/internal/models"

// MockReviewRepository is an in-memory implementation of ReviewRepository.
type MockReviewRepository struct {
	reviews *memoryCollection[models.UserReview]
}

// NewMockReviewRepository creates a new instance of MockReviewRepository.
func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{
		reviews: newMemoryCollection("review", func(r *models.UserReview) *string { return &r.ID }),
	}
}

func (r *MockReviewRepository) GetAll() ([]models.UserReview, error) {
	return r.reviews.all(nil), nil
}

func (r *MockReviewRepository) GetByProduct(productID string) ([]models.UserReview, error) {
	return r.reviews.all(func(rv *models.UserReview) bool { return rv.ProductID == productID }), nil
}

func (r *MockReviewRepository) GetByID(id string) (*models.UserReview, error) {
	return r.reviews.get(id)
}

func (r *MockReviewRepository) Create(review *models.UserReview) error {
	return r.reviews.insert(review)
}

func (r *MockReviewRepository) Update(review *models.UserReview) error {
	return r.reviews.replace(review)
}

func (r *MockReviewRepository) Delete(id string) error {
	return r.reviews.remove(id)
}
