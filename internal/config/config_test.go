package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_PORT", "LOG_LEVEL", "DATABASE_URL", "REDIS_ADDR", "REDIS_DB", "SESSION_SECRET",
		"SESSION_TTL_MINUTES", "RESULT_TTL_MINUTES", "CLASSIFY_RATE_LIMIT", "CLASSIFY_RATE_WINDOW_SECONDS",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.HTTPPort)
	}
	if cfg.SessionTTL() != 24*time.Hour || cfg.ResultTTL() != 24*time.Hour {
		t.Fatalf("unexpected ttl defaults: %v %v", cfg.SessionTTL(), cfg.ResultTTL())
	}
	if cfg.ClassifyRateLimit != 30 || cfg.ClassifyRateWindow() != time.Minute {
		t.Fatalf("unexpected rate limit defaults: %d per %v", cfg.ClassifyRateLimit, cfg.ClassifyRateWindow())
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SESSION_TTL_MINUTES", "30")
	t.Setenv("CLASSIFY_RATE_LIMIT", "5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPPort != "9090" || cfg.RedisAddr != "localhost:6379" || cfg.RedisDB != 2 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.SessionTTL() != 30*time.Minute || cfg.ClassifyRateLimit != 5 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestLoadConfig_InvalidNumber(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected parse error")
	}
}
