package config_test

import (
	"testing"

	"wegotboard/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]string) *viper.Viper {
	v := viper.New()
	v.SetDefault("APP_PORT", ":3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DATABASE_DRIVER", config.DriverPostgres)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper(t *testing.T) {
	cfg, err := config.FromViper(newViper(map[string]string{
		"JWT_SECRET":   "secret",
		"DATABASE_URL": "postgres://localhost/wegotboard",
		"APP_PORT":     "8080",
	}))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, config.DriverPostgres, cfg.DatabaseDriver)
	assert.False(t, cfg.IsProduction())
}

func TestFromViper_Production(t *testing.T) {
	cfg, err := config.FromViper(newViper(map[string]string{
		"JWT_SECRET":      "secret",
		"DATABASE_URL":    "mongodb://localhost:27017",
		"DATABASE_DRIVER": "MONGO",
		"APP_ENV":         "production",
	}))
	require.NoError(t, err)
	assert.Equal(t, config.DriverMongo, cfg.DatabaseDriver)
	assert.True(t, cfg.IsProduction())
}

func TestFromViper_FailsFast(t *testing.T) {
	_, err := config.FromViper(newViper(map[string]string{
		"DATABASE_URL": "postgres://localhost/wegotboard",
	}))
	assert.ErrorContains(t, err, "JWT_SECRET")

	_, err = config.FromViper(newViper(map[string]string{
		"JWT_SECRET": "secret",
	}))
	assert.ErrorContains(t, err, "DATABASE_URL")

	_, err = config.FromViper(newViper(map[string]string{
		"JWT_SECRET":      "secret",
		"DATABASE_URL":    "redis://localhost",
		"DATABASE_DRIVER": "redis",
	}))
	assert.ErrorContains(t, err, "unsupported DATABASE_DRIVER")
}
