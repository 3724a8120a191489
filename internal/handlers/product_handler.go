package handlers

import (
	"wegotboard/internal/middleware"
	"wegotboard/internal/models"
	"wegotboard/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
// Reads are public; writes need an administrator.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/p")
	admin := middleware.RequireAdmin()

	productRoutes.Get("/categories", h.HandleGetCategories)
	productRoutes.Post("/categories", admin, h.HandleCreateCategory)
	productRoutes.Get("/tags", h.HandleGetTags)
	productRoutes.Post("/tags", admin, h.HandleCreateTag)

	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", admin, h.HandleCreateProduct)
	productRoutes.Put("/:id", admin, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", admin, h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(param(c, "id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return badBody(c, err)
	}
	if err := h.service.CreateProduct(&product); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct replaces an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return badBody(c, err)
	}
	product.ID = param(c, "id")
	if err := h.service.UpdateProduct(&product); err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := param(c, "id")
	if err := h.service.DeleteProduct(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product " + id + " deleted successfully",
	})
}

// HandleGetCategories lists all categories.
func (h *ProductHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

// HandleCreateCategory creates a category.
func (h *ProductHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return badBody(c, err)
	}
	if err := h.service.CreateCategory(&category); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleGetTags lists all tags.
func (h *ProductHandler) HandleGetTags(c *fiber.Ctx) error {
	tags, err := h.service.GetAllTags()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tags)
}

// HandleCreateTag creates a tag.
func (h *ProductHandler) HandleCreateTag(c *fiber.Ctx) error {
	var tag models.Tag
	if err := c.BodyParser(&tag); err != nil {
		return badBody(c, err)
	}
	if err := h.service.CreateTag(&tag); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}
