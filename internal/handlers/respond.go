package handlers

import (
	"errors"
	"log"
	"time"

	"wegotboard/internal/middleware"
	"wegotboard/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// param returns a route parameter that stays valid after the handler returns.
// Fiber reuses the request buffer between requests.
func param(c *fiber.Ctx, name string) string {
	return utils.CopyString(c.Params(name))
}

// respondError writes the single terminal response for a failed request.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErr.Fields,
		})
	}

	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(status).JSON(fiber.Map{
			"message": "Something went wrong",
		})
	}

	message := err.Error()
	var serviceErr *services.Error
	if errors.As(err, &serviceErr) {
		message = serviceErr.Message
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrConflict):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func badBody(c *fiber.Ctx, err error) error {
	log.Printf("Error parsing request body on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// CookieOptions controls the attributes of the session cookie.
// The cookie is SameSite=None, and fasthttp always marks such cookies Secure,
// so Secure=false has no effect and browsers only return it over HTTPS.
type CookieOptions struct {
	Secure bool
}

func (o CookieOptions) setSession(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		HTTPOnly: true,
		Secure:   o.Secure,
		SameSite: fiber.CookieSameSiteNoneMode,
		MaxAge:   int(services.SessionDuration / time.Second),
	})
}

func (o CookieOptions) clearSession(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		HTTPOnly: true,
		Secure:   o.Secure,
		SameSite: fiber.CookieSameSiteNoneMode,
		Expires:  time.Now().Add(-time.Hour),
	})
}
