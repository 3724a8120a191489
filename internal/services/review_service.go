package services

import (
	"errors"

	"wegotboard/internal/models"
	"wegotboard/internal/repositories"
)

// ReviewService handles business logic related to product reviews.
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	events      EventPublisher
}

// NewReviewService creates a new ReviewService. events may be nil.
func NewReviewService(reviewRepo repositories.ReviewRepository, userRepo repositories.UserRepository, productRepo repositories.ProductRepository, events EventPublisher) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		events:      events,
	}
}

// ReviewInput is the body of a new review.
type ReviewInput struct {
	Rating int
	Review string
}

// ReviewPatch lists the review fields an update may replace. Nil fields are left untouched.
type ReviewPatch struct {
	Rating  *int
	Review  *string
	User    *string
	Product *string
}

// ListReviews returns every review with its user and product resolved.
func (s *ReviewService) ListReviews() ([]models.ReviewDetail, error) {
	reviews, err := s.reviewRepo.GetAll()
	if err != nil {
		return nil, internalError("failed to list reviews", err)
	}

	productIDs := make([]string, 0, len(reviews))
	for _, r := range reviews {
		productIDs = append(productIDs, r.ProductID)
	}
	found, err := s.productRepo.GetByIDs(productIDs)
	if err != nil {
		return nil, internalError("failed to resolve reviewed products", err)
	}
	products := make(map[string]*models.Product, len(found))
	for i := range found {
		products[found[i].ID] = &found[i]
	}

	users := newUserLookup(s.userRepo)
	details := make([]models.ReviewDetail, 0, len(reviews))
	for _, r := range reviews {
		user, err := users.get(r.UserID)
		if err != nil {
			return nil, err
		}
		details = append(details, models.ReviewDetail{
			ID:      r.ID,
			User:    user,
			Product: products[r.ProductID],
			Rating:  r.Rating,
			Review:  r.Review,
		})
	}
	return details, nil
}

// ListProductReviews returns the reviews of one product with each author
// reduced to a display name.
func (s *ReviewService) ListProductReviews(productID string) ([]models.ProductReview, error) {
	reviews, err := s.reviewRepo.GetByProduct(productID)
	if err != nil {
		return nil, internalError("failed to list product reviews", err)
	}

	users := newUserLookup(s.userRepo)
	list := make([]models.ProductReview, 0, len(reviews))
	for _, r := range reviews {
		user, err := users.get(r.UserID)
		if err != nil {
			return nil, err
		}
		var author *models.ReviewAuthor
		if user != nil {
			author = &models.ReviewAuthor{ID: user.ID, Name: user.Name}
		}
		list = append(list, models.ProductReview{
			ID:      r.ID,
			User:    author,
			Product: r.ProductID,
			Rating:  r.Rating,
			Review:  r.Review,
		})
	}
	return list, nil
}

// CreateReview records the caller's rating of productID.
// A user may review the same product more than once.
func (s *ReviewService) CreateReview(productID string, identity *models.Identity, in ReviewInput) (*models.UserReview, error) {
	if identity == nil || in.Rating == 0 {
		return nil, ErrReviewFieldsRequired
	}
	if !models.ValidRating(in.Rating) {
		return nil, ErrRatingOutOfRange
	}

	review := &models.UserReview{
		UserID:    identity.UserID,
		ProductID: productID,
		Rating:    in.Rating,
		Review:    in.Review,
	}
	if fieldErrs := models.Validate(review); fieldErrs != nil {
		return nil, &ValidationError{Fields: fieldErrs}
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, internalError("failed to create review", err)
	}

	publishEvent(s.events, EventReviewCreated, map[string]interface{}{
		"reviewID":  review.ID,
		"productID": review.ProductID,
		"userID":    review.UserID,
		"rating":    review.Rating,
	})
	return review, nil
}

// UpdateReview applies patch to an existing review. The owning user may be
// reassigned through the patch.
func (s *ReviewService) UpdateReview(reviewID string, patch ReviewPatch) (*models.UserReview, error) {
	if patch.Rating != nil && !models.ValidRating(*patch.Rating) {
		return nil, ErrRatingOutOfRange
	}

	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return nil, storeError(err, ErrReviewNotFound, "get review")
	}

	if patch.Rating != nil {
		review.Rating = *patch.Rating
	}
	if patch.Review != nil {
		review.Review = *patch.Review
	}
	if patch.User != nil && *patch.User != "" {
		review.UserID = *patch.User
	}
	if patch.Product != nil && *patch.Product != "" {
		review.ProductID = *patch.Product
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, storeError(err, ErrReviewNotFound, "update review")
	}
	return review, nil
}

// DeleteReview removes a review by ID.
func (s *ReviewService) DeleteReview(reviewID string) error {
	if err := s.reviewRepo.Delete(reviewID); err != nil {
		return storeError(err, ErrReviewNotFound, "delete review")
	}
	publishEvent(s.events, EventReviewDeleted, map[string]interface{}{
		"reviewID": reviewID,
	})
	return nil
}

// userLookup memoizes user reads while a review listing is resolved.
// A user that no longer exists resolves to nil.
type userLookup struct {
	repo  repositories.UserRepository
	cache map[string]*models.User
}

func newUserLookup(repo repositories.UserRepository) *userLookup {
	return &userLookup{repo: repo, cache: make(map[string]*models.User)}
}

func (l *userLookup) get(id string) (*models.User, error) {
	if user, ok := l.cache[id]; ok {
		return user, nil
	}
	user, err := l.repo.GetByID(id)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, internalError("failed to resolve review author", err)
	}
	l.cache[id] = user
	return user, nil
}
