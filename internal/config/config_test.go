package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LEDGER_URL", "http://localhost:5006")
	t.Setenv("LEDGER_API_KEY", "secret")
	t.Setenv("BUDGET_SYNC_ID", "sync-1")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.UpstreamTimeout != 30*time.Second {
		t.Errorf("Expected default timeout 30s, got %s", cfg.UpstreamTimeout)
	}
	if cfg.RateLimitPerMinute != 100 {
		t.Errorf("Expected default rate limit 100, got %d", cfg.RateLimitPerMinute)
	}
}

func TestLoad_MissingUpstreamURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LEDGER_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for missing LEDGER_URL, got nil")
	}
}

func TestLoad_MissingSyncID(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BUDGET_SYNC_ID", "")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for missing BUDGET_SYNC_ID, got nil")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LEDGER_TIMEOUT", "5s")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "20")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.UpstreamTimeout != 5*time.Second {
		t.Errorf("Expected timeout 5s, got %s", cfg.UpstreamTimeout)
	}
	if cfg.RateLimitPerMinute != 20 {
		t.Errorf("Expected rate limit 20, got %d", cfg.RateLimitPerMinute)
	}
}

func TestLoad_BadIntFallsBackToDefault(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RATE_LIMIT_BURST", "lots")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.RateLimitBurst != 10 {
		t.Errorf("Expected fallback burst 10, got %d", cfg.RateLimitBurst)
	}
}
