package middleware

import (
	"errors"
	"log"
	"strings"

	"wegotboard/internal/models"
	"wegotboard/internal/services"

	"github.com/gofiber/fiber/v2"
)

// TokenCookie is the name of the cookie carrying the session token.
const TokenCookie = "token"

const identityKey = "identity"

// Identifier resolves a session token to the caller it belongs to.
type Identifier interface {
	Identify(token string) (*models.Identity, error)
}

// LoadIdentity attaches the caller identity to the request when it carries a
// valid session token, either in the token cookie or as a Bearer header.
// Requests without one continue anonymously; the services decide whether
// that is allowed.
func LoadIdentity(auth Identifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := sessionToken(c)
		if tokenString == "" {
			return c.Next()
		}

		identity, err := auth.Identify(tokenString)
		if err != nil {
			if errors.Is(err, services.ErrInternal) {
				log.Printf("Identity lookup failed: %v", err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"message": "Something went wrong",
				})
			}
			log.Printf("Ignoring session token: %v", err)
			return c.Next()
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// IdentityFrom returns the caller attached by LoadIdentity, or nil.
func IdentityFrom(c *fiber.Ctx) *models.Identity {
	identity, _ := c.Locals(identityKey).(*models.Identity)
	return identity
}

func sessionToken(c *fiber.Ctx) string {
	if token := c.Cookies(TokenCookie); token != "" {
		return token
	}
	// Expected format: "Bearer <token>"
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// RequireAdmin rejects requests whose caller is not an administrator.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := IdentityFrom(c)
		if identity == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": services.ErrNotLoggedIn.Message,
			})
		}
		if !identity.IsAdmin {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Admin access required",
			})
		}
		return c.Next()
	}
}
