package handlers

import (
	"log"

	"wegotboard/internal/middleware"
	"wegotboard/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for accounts, sessions and wishlists.
type UserHandler struct {
	userService *services.UserService
	cookies     CookieOptions
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, cookies CookieOptions) *UserHandler {
	return &UserHandler{
		userService: userService,
		cookies:     cookies,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/u")
	userRoutes.Post("/", h.HandleRegister)
	userRoutes.Post("/login", h.HandleLogin)
	userRoutes.Post("/logout", h.HandleLogout)
	userRoutes.Put("/", h.HandleUpdate)
	userRoutes.Delete("/", h.HandleDelete)

	userRoutes.Get("/wishlist", h.HandleGetWishlist)
	userRoutes.Post("/wishlist", h.HandleAddToWishlist)
	userRoutes.Delete("/wishlist/all", h.HandleClearWishlist)
	userRoutes.Delete("/wishlist", h.HandleRemoveFromWishlist)

	// Registered last so it does not shadow /wishlist.
	userRoutes.Get("/:id", h.HandleGetUser)
}

// RegisterRequest represents the request body for sign-up.
type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	PhoneNumber  string `json:"phoneNumber"`
	IsAdmin      bool   `json:"isAdmin"`
	IsSubscribed bool   `json:"isSubscribed"`
	Location     string `json:"location"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LogoutRequest represents the request body for logout.
type LogoutRequest struct {
	Email string `json:"email"`
}

// UpdateUserRequest represents the request body for a profile update.
// Absent fields are left unchanged.
type UpdateUserRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Password     *string `json:"password"`
	PhoneNumber  *string `json:"phoneNumber"`
	IsSubscribed *bool   `json:"isSubscribed"`
	Location     *string `json:"location"`
}

// WishlistRequest represents the request body of wishlist add and remove.
type WishlistRequest struct {
	ProductID string `json:"productId"`
}

// HandleGetUser returns a single user by ID.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	user, err := h.userService.GetUser(param(c, "id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// HandleRegister creates an account and starts a session for it.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	user, token, err := h.userService.Register(services.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		PhoneNumber:  req.PhoneNumber,
		IsAdmin:      req.IsAdmin,
		IsSubscribed: req.IsSubscribed,
		Location:     req.Location,
	})
	if err != nil {
		log.Printf("Error registering user %s: %v", req.Email, err)
		return respondError(c, err)
	}

	h.cookies.setSession(c, token)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    user,
	})
}

// HandleLogin checks the credentials and starts a new session.
func (h *UserHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	_, token, err := h.userService.Login(req.Email, req.Password)
	if err != nil {
		log.Printf("Error during login for user %s: %v", req.Email, err)
		return respondError(c, err)
	}

	h.cookies.setSession(c, token)
	return c.JSON(fiber.Map{
		"message": "User logged in successfully",
		"token":   token,
	})
}

// HandleLogout clears the session cookie, whatever the outcome of the lookup.
// A request without a body looks up the empty email.
func (h *UserHandler) HandleLogout(c *fiber.Ctx) error {
	h.cookies.clearSession(c)

	var req LogoutRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badBody(c, err)
		}
	}
	if err := h.userService.Logout(req.Email); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "User logged out successfully",
	})
}

// HandleUpdate changes the caller's own profile.
func (h *UserHandler) HandleUpdate(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		return respondError(c, services.ErrNotLoggedIn)
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	_, err := h.userService.UpdateProfile(identity, services.UserPatch{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		PhoneNumber:  req.PhoneNumber,
		IsSubscribed: req.IsSubscribed,
		Location:     req.Location,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "User updated successfully",
	})
}

// HandleDelete removes the caller's own account.
func (h *UserHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.userService.DeleteAccount(middleware.IdentityFrom(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "User deleted successfully",
	})
}

// HandleAddToWishlist adds a product to the caller's wishlist.
func (h *UserHandler) HandleAddToWishlist(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		return respondError(c, services.ErrNotLoggedIn)
	}

	var req WishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	user, err := h.userService.AddToWishlist(identity, req.ProductID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// HandleGetWishlist returns the caller's wishlist as full products.
func (h *UserHandler) HandleGetWishlist(c *fiber.Ctx) error {
	products, err := h.userService.GetWishlist(middleware.IdentityFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// HandleRemoveFromWishlist removes a product from the caller's wishlist.
func (h *UserHandler) HandleRemoveFromWishlist(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		return respondError(c, services.ErrNotLoggedIn)
	}

	var req WishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	if _, err := h.userService.RemoveFromWishlist(identity, req.ProductID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product removed from wishlist",
	})
}

// HandleClearWishlist empties the caller's wishlist.
func (h *UserHandler) HandleClearWishlist(c *fiber.Ctx) error {
	if _, err := h.userService.ClearWishlist(middleware.IdentityFrom(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Wishlist deleted successfully",
	})
}
