package server_test

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"wegotboard/internal/config"
	"wegotboard/internal/server"
	"wegotboard/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		Port:           ":0",
		Environment:    "test",
		JWTSecret:      "test_jwt_secret",
		DatabaseDriver: config.DriverSQLite,
		CORSOrigins:    "*",
	}
}

func TestHealthCheck(t *testing.T) {
	app := server.New(testConfig(), store.NewMemory(), nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, false, body["events"])
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	app := server.New(testConfig(), store.NewMemory(), nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nowhere", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Route /nowhere not found", body["message"])
}

func TestRequestIDHeader(t *testing.T) {
	app := server.New(testConfig(), store.NewMemory(), nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/p", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}
