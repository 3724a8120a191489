package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values of DATABASE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
)

// Config holds all configuration for the application.
type Config struct {
	Port        string
	Environment string

	JWTSecret string

	DatabaseDriver string
	DatabaseURL    string
	MongoDatabase  string

	RabbitMQURL      string
	RabbitMQExchange string

	CORSOrigins string
}

// IsProduction reports whether the process runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads configuration from a .env file, if present, and the environment.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("APP_PORT", ":3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DATABASE_DRIVER", DriverPostgres)
	v.SetDefault("MONGO_DATABASE", "wegotboard")
	v.SetDefault("RABBITMQ_EXCHANGE", "catalog_events")
	v.SetDefault("CORS_ORIGINS", "*")
	v.AutomaticEnv()

	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:             v.GetString("APP_PORT"),
		Environment:      v.GetString("APP_ENV"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		DatabaseDriver:   strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseURL:      v.GetString("DATABASE_URL"),
		MongoDatabase:    v.GetString("MONGO_DATABASE"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		RabbitMQExchange: v.GetString("RABBITMQ_EXCHANGE"),
		CORSOrigins:      v.GetString("CORS_ORIGINS"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required")
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL environment variable is required")
	}
	switch cfg.DatabaseDriver {
	case DriverPostgres, DriverSQLite, DriverMongo:
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}
	if !strings.HasPrefix(cfg.Port, ":") {
		cfg.Port = ":" + cfg.Port
	}

	return cfg, nil
}
