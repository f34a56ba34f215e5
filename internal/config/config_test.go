package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("JWT_SECRET", "")

	if _, err := NewConfig(); err == nil {
		t.Fatal("NewConfig() error = nil, want error for missing JWT_SECRET")
	}
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("DIGEST_MONTHS", "6")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SENDER_EMAIL", "forecast@example.com")
	t.Setenv("DIGEST_SCHEDULE", "")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.TokenTTL != 2*time.Hour {
		t.Errorf("TokenTTL = %v, want 2h", cfg.TokenTTL)
	}
	if cfg.DigestMonths != 6 {
		t.Errorf("DigestMonths = %d, want 6", cfg.DigestMonths)
	}
	if cfg.JWTSecret != "test-secret" {
		t.Errorf("JWTSecret = %q", cfg.JWTSecret)
	}
}

func TestNewConfigRejectsDigestHorizon(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DIGEST_MONTHS", "40")

	if _, err := NewConfig(); err == nil {
		t.Fatal("NewConfig() error = nil, want error for DIGEST_MONTHS=40")
	}
}

func TestNewConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finance.yaml")
	body := "jwt_secret: file-secret\nsmtp_host: mail.local\nsender_email: bot@mail.local\ndigest_schedule: \"0 9 * * 1\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SENDER_EMAIL", "")
	t.Setenv("DIGEST_SCHEDULE", "")
	t.Setenv("DIGEST_MONTHS", "")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.JWTSecret != "file-secret" {
		t.Errorf("JWTSecret = %q, want file-secret", cfg.JWTSecret)
	}
	if cfg.DigestSchedule != "0 9 * * 1" {
		t.Errorf("DigestSchedule = %q", cfg.DigestSchedule)
	}
	if !cfg.DigestEnabled() {
		t.Error("DigestEnabled() = false, want true")
	}
}
