package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	os.Unsetenv("CONFIG_FILE")
	t.Setenv("VOLTEDGE_JWT_SECRET", "")
	os.Unsetenv("VOLTEDGE_JWT_SECRET")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without jwt secret")
	}
}

func TestLoadDefaultsAndEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	os.Unsetenv("CONFIG_FILE")
	t.Setenv("VOLTEDGE_JWT_SECRET", "test-secret")
	t.Setenv("VOLTEDGE_HTTP_PORT", "9090")
	t.Setenv("VOLTEDGE_STARTING_BALANCE", "75.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddress() != ":9090" {
		t.Fatalf("expected :9090, got %s", cfg.HTTPAddress())
	}
	if cfg.Auth.TokenTTLMin != 60 {
		t.Fatalf("expected default ttl 60, got %d", cfg.Auth.TokenTTLMin)
	}
	if cfg.TokenTTL() != time.Hour {
		t.Fatalf("expected 1h ttl, got %s", cfg.TokenTTL())
	}
	if cfg.Billing.StartingBalance != 75.5 {
		t.Fatalf("expected starting balance 75.5, got %.2f", cfg.Billing.StartingBalance)
	}
}

func TestLoadYAMLFileWithEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "http:\n  port: \"7070\"\nauth:\n  jwtSecret: from-file\n  tokenTtlMinutes: 30\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("VOLTEDGE_HTTP_PORT", "6060")
	t.Setenv("VOLTEDGE_JWT_SECRET", "")
	os.Unsetenv("VOLTEDGE_JWT_SECRET")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// Environment beats file.
	if cfg.HTTPAddress() != ":6060" {
		t.Fatalf("expected env override :6060, got %s", cfg.HTTPAddress())
	}
	if cfg.Auth.JWTSecret != "from-file" {
		t.Fatalf("expected file secret, got %q", cfg.Auth.JWTSecret)
	}
	if cfg.TokenTTL() != 30*time.Minute {
		t.Fatalf("expected 30m ttl, got %s", cfg.TokenTTL())
	}
}
