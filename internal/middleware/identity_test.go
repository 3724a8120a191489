package middleware_test

import (
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"wegotboard/internal/middleware"
	"wegotboard/internal/models"
	"wegotboard/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type fakeIdentifier map[string]*models.Identity

func (f fakeIdentifier) Identify(token string) (*models.Identity, error) {
	if token == "broken-store" {
		return nil, &services.Error{Kind: services.ErrInternal, Message: "failed", Err: errors.New("db down")}
	}
	identity, ok := f[token]
	if !ok {
		return nil, services.ErrInvalidToken
	}
	return identity, nil
}

func newTestApp() *fiber.App {
	auth := fakeIdentifier{
		"ada-token":   {UserID: "u1", Email: "ada@example.com"},
		"admin-token": {UserID: "u2", Email: "root@example.com", IsAdmin: true},
	}
	app := fiber.New()
	app.Use(middleware.LoadIdentity(auth))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		identity := middleware.IdentityFrom(c)
		if identity == nil {
			return c.SendString("anonymous")
		}
		return c.SendString(identity.UserID)
	})
	app.Get("/admin", middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func call(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestLoadIdentity(t *testing.T) {
	app := newTestApp()

	t.Run("no token", func(t *testing.T) {
		status, body := call(t, app, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "anonymous", body)
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: "ada-token"})
		_, body := call(t, app, req)
		assert.Equal(t, "u1", body)
	})

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer ada-token")
		_, body := call(t, app, req)
		assert.Equal(t, "u1", body)
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: "admin-token"})
		req.Header.Set("Authorization", "Bearer ada-token")
		_, body := call(t, app, req)
		assert.Equal(t, "u2", body)
	})

	t.Run("invalid token continues anonymously", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer forged")
		status, body := call(t, app, req)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "anonymous", body)
	})

	t.Run("store failure", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer broken-store")
		status, body := call(t, app, req)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.JSONEq(t, `{"message":"Something went wrong"}`, body)
	})
}

func TestRequireAdmin(t *testing.T) {
	app := newTestApp()

	status, body := call(t, app, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.JSONEq(t, `{"message":"User is not logged in"}`, body)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer ada-token")
	status, body = call(t, app, req)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.JSONEq(t, `{"message":"Admin access required"}`, body)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	status, body = call(t, app, req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body)
}
