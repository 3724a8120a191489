package services_test

import (
	"testing"

	"wegotboard/internal/models"
	"wegotboard/internal/repositories"
	"wegotboard/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewFixture struct {
	service  *services.ReviewService
	users    *repositories.MockUserRepository
	products *repositories.MockProductRepository
	events   *MockEventPublisher
}

func newReviewFixture() *reviewFixture {
	users := repositories.NewMockUserRepository()
	products := repositories.NewMockProductRepository()
	events := new(MockEventPublisher)
	events.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()
	return &reviewFixture{
		service:  services.NewReviewService(repositories.NewMockReviewRepository(), users, products, events),
		users:    users,
		products: products,
		events:   events,
	}
}

func (f *reviewFixture) user(t *testing.T, name, email string) *models.Identity {
	t.Helper()
	user := &models.User{Name: name, Email: email, Password: "hash"}
	require.NoError(t, f.users.Create(user))
	return &models.Identity{UserID: user.ID, Email: email}
}

func (f *reviewFixture) product(t *testing.T, name string) string {
	t.Helper()
	product := &models.Product{Name: name}
	require.NoError(t, f.products.Create(product))
	return product.ID
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestReviewService_CreateReview(t *testing.T) {
	f := newReviewFixture()
	ada := f.user(t, "Ada", "ada@example.com")
	catan := f.product(t, "Catan")

	review, err := f.service.CreateReview(catan, ada, services.ReviewInput{Rating: 4, Review: "Great"})
	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)
	assert.Equal(t, ada.UserID, review.UserID)
	assert.Equal(t, catan, review.ProductID)
	assert.Equal(t, 4, review.Rating)
	f.events.AssertCalled(t, "Publish", services.EventReviewCreated, mock.Anything)

	// A second review of the same product by the same user is accepted
	_, err = f.service.CreateReview(catan, ada, services.ReviewInput{Rating: 2})
	assert.NoError(t, err)
}

func TestReviewService_CreateReviewRejectsBadInput(t *testing.T) {
	f := newReviewFixture()
	ada := f.user(t, "Ada", "ada@example.com")
	catan := f.product(t, "Catan")

	_, err := f.service.CreateReview(catan, nil, services.ReviewInput{Rating: 4})
	assert.Equal(t, services.ErrReviewFieldsRequired, err)

	_, err = f.service.CreateReview(catan, ada, services.ReviewInput{})
	assert.Equal(t, services.ErrReviewFieldsRequired, err)

	for _, rating := range []int{-1, 6, 10} {
		_, err = f.service.CreateReview(catan, ada, services.ReviewInput{Rating: rating})
		assert.Equal(t, services.ErrRatingOutOfRange, err, "rating %d", rating)
	}

	reviews, err := f.service.ListProductReviews(catan)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestReviewService_ListProductReviews(t *testing.T) {
	f := newReviewFixture()
	ada := f.user(t, "Ada", "ada@example.com")
	bob := f.user(t, "Bob", "bob@example.com")
	catan := f.product(t, "Catan")
	azul := f.product(t, "Azul")

	_, err := f.service.CreateReview(catan, ada, services.ReviewInput{Rating: 5})
	require.NoError(t, err)
	_, err = f.service.CreateReview(catan, bob, services.ReviewInput{Rating: 3, Review: "Long"})
	require.NoError(t, err)
	_, err = f.service.CreateReview(azul, bob, services.ReviewInput{Rating: 1})
	require.NoError(t, err)

	reviews, err := f.service.ListProductReviews(catan)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, &models.ReviewAuthor{ID: ada.UserID, Name: "Ada"}, reviews[0].User)
	assert.Equal(t, "Bob", reviews[1].User.Name)
	assert.Equal(t, catan, reviews[1].Product)
	assert.Equal(t, "Long", reviews[1].Review)
}

func TestReviewService_ListReviewsResolvesReferences(t *testing.T) {
	f := newReviewFixture()
	ada := f.user(t, "Ada", "ada@example.com")
	catan := f.product(t, "Catan")

	_, err := f.service.CreateReview(catan, ada, services.ReviewInput{Rating: 5})
	require.NoError(t, err)
	_, err = f.service.CreateReview("missing-product", ada, services.ReviewInput{Rating: 2})
	require.NoError(t, err)

	details, err := f.service.ListReviews()
	require.NoError(t, err)
	require.Len(t, details, 2)

	require.NotNil(t, details[0].User)
	assert.Equal(t, "Ada", details[0].User.Name)
	require.NotNil(t, details[0].Product)
	assert.Equal(t, "Catan", details[0].Product.Name)
	assert.Nil(t, details[1].Product)

	// Deleted authors resolve to nil
	require.NoError(t, f.users.Delete(ada.UserID))
	details, err = f.service.ListReviews()
	require.NoError(t, err)
	assert.Nil(t, details[0].User)
}

func TestReviewService_UpdateReview(t *testing.T) {
	f := newReviewFixture()
	ada := f.user(t, "Ada", "ada@example.com")
	bob := f.user(t, "Bob", "bob@example.com")
	catan := f.product(t, "Catan")

	review, err := f.service.CreateReview(catan, ada, services.ReviewInput{Rating: 4, Review: "Good"})
	require.NoError(t, err)

	updated, err := f.service.UpdateReview(review.ID, services.ReviewPatch{Rating: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)
	assert.Equal(t, "Good", updated.Review)

	// The owner can be reassigned; empty references are ignored
	updated, err = f.service.UpdateReview(review.ID, services.ReviewPatch{
		User:    strPtr(bob.UserID),
		Product: strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, bob.UserID, updated.UserID)
	assert.Equal(t, catan, updated.ProductID)

	_, err = f.service.UpdateReview(review.ID, services.ReviewPatch{Rating: intPtr(6)})
	assert.Equal(t, services.ErrRatingOutOfRange, err)

	_, err = f.service.UpdateReview("missing", services.ReviewPatch{Review: strPtr("x")})
	assert.Equal(t, services.ErrReviewNotFound, err)
}

func TestReviewService_DeleteReview(t *testing.T) {
	f := newReviewFixture()
	ada := f.user(t, "Ada", "ada@example.com")
	catan := f.product(t, "Catan")

	review, err := f.service.CreateReview(catan, ada, services.ReviewInput{Rating: 4})
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteReview(review.ID))
	f.events.AssertCalled(t, "Publish", services.EventReviewDeleted, mock.Anything)
	assert.Equal(t, services.ErrReviewNotFound, f.service.DeleteReview(review.ID))
}
