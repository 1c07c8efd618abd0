package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. It is built once at
// startup and passed by reference; no other layer reads the process
// environment.
type Config struct {
	// Upstream ledger service
	UpstreamURL     string
	UpstreamAPIKey  string
	BudgetSyncID    string
	UpstreamTimeout time.Duration

	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// Rate limiting
	RateLimitPerMinute int
	RateLimitBurst     int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		UpstreamURL:        getEnv("LEDGER_URL", ""),
		UpstreamAPIKey:     getEnv("LEDGER_API_KEY", ""),
		BudgetSyncID:       getEnv("BUDGET_SYNC_ID", ""),
		UpstreamTimeout:    getDurationEnv("LEDGER_TIMEOUT", 30*time.Second),
		Port:               getEnv("PORT", "8080"),
		CORSOrigins:        strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		Env:                getEnv("ENV", "development"),
		RateLimitPerMinute: getIntEnv("RATE_LIMIT_PER_MINUTE", 100),
		RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.UpstreamURL == "" {
		return fmt.Errorf("LEDGER_URL is required")
	}
	if c.UpstreamAPIKey == "" {
		return fmt.Errorf("LEDGER_API_KEY is required")
	}
	if c.BudgetSyncID == "" {
		return fmt.Errorf("BUDGET_SYNC_ID is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
