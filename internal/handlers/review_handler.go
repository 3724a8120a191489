package handlers

import (
	"log"

	"wegotboard/internal/middleware"
	"wegotboard/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for product reviews.
type ReviewHandler struct {
	service *services.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service: service,
	}
}

// RegisterRoutes registers the review routes with the Fiber app.
// In all routes :id is the product the review belongs to.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	reviewRoutes := router.Group("/r")
	reviewRoutes.Get("/", h.HandleGetReviews)
	reviewRoutes.Get("/:id", h.HandleGetProductReviews)
	reviewRoutes.Post("/:id", h.HandleCreateReview)
	reviewRoutes.Put("/:id/:reviewId", h.HandleUpdateReview)
	reviewRoutes.Delete("/:id/:reviewId", h.HandleDeleteReview)
}

// CreateReviewRequest represents the request body of a new review.
type CreateReviewRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// UpdateReviewRequest represents the request body of a review update.
// Absent fields are left unchanged.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Review  *string `json:"review"`
	User    *string `json:"user"`
	Product *string `json:"product"`
}

// HandleGetReviews returns every review with user and product resolved.
func (h *ReviewHandler) HandleGetReviews(c *fiber.Ctx) error {
	reviews, err := h.service.ListReviews()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reviews)
}

// HandleGetProductReviews returns the reviews of one product.
func (h *ReviewHandler) HandleGetProductReviews(c *fiber.Ctx) error {
	reviews, err := h.service.ListProductReviews(param(c, "id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reviews)
}

// HandleCreateReview records the caller's review of a product.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	review, err := h.service.CreateReview(param(c, "id"), middleware.IdentityFrom(c), services.ReviewInput{
		Rating: req.Rating,
		Review: req.Review,
	})
	if err != nil {
		log.Printf("Error creating review for product %s: %v", param(c, "id"), err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// HandleUpdateReview changes the fields present in the body.
func (h *ReviewHandler) HandleUpdateReview(c *fiber.Ctx) error {
	var req UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	review, err := h.service.UpdateReview(param(c, "reviewId"), services.ReviewPatch{
		Rating:  req.Rating,
		Review:  req.Review,
		User:    req.User,
		Product: req.Product,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(review)
}

// HandleDeleteReview removes a review.
func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	if err := h.service.DeleteReview(param(c, "reviewId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Review deleted successfully",
	})
}
