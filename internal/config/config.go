package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"assettracking/internal/lifecycle"
	"assettracking/pkg/currency"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const defaultRates = "USD:1,EUR:0.85,GBP:0.75"

type Config struct {
	DatabaseURL  string
	AppHost      string
	LifespanDays int
	BaseCurrency string
	Rates        map[string]decimal.Decimal

	Log struct {
		Level  string
		Format string
	}
}

// LoadEnvFile loads a .env file without overriding variables already set.
func LoadEnvFile(paths ...string) error {
	return godotenv.Load(paths...)
}

func Load() (*Config, error) {
	cfg := &Config{}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.AppHost = getEnv("APP_HOST", ":8080")
	cfg.BaseCurrency = strings.ToUpper(getEnv("BASE_CURRENCY", currency.DefaultBaseCurrency))

	lifespan, err := strconv.Atoi(getEnv("LIFESPAN_DAYS", strconv.Itoa(lifecycle.DefaultLifespanDays)))
	if err != nil {
		return nil, fmt.Errorf("invalid LIFESPAN_DAYS: %w", err)
	}
	if lifespan <= 0 {
		return nil, fmt.Errorf("LIFESPAN_DAYS must be positive, got %d", lifespan)
	}
	cfg.LifespanDays = lifespan

	cfg.Rates, err = currency.ParseRates(getEnv("CURRENCY_RATES", defaultRates))
	if err != nil {
		return nil, fmt.Errorf("invalid CURRENCY_RATES: %w", err)
	}
	if _, ok := cfg.Rates[cfg.BaseCurrency]; !ok {
		return nil, fmt.Errorf("base currency %s is missing from CURRENCY_RATES", cfg.BaseCurrency)
	}

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "console")

	return cfg, nil
}

func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is not set")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
