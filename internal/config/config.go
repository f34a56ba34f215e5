package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBConn    string
	LogLevel  string
	JWTSecret string
	TokenTTL  time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string

	DigestSchedule string
	DigestMonths   int
}

var defaults = map[string]any{
	"PORT":            "8080",
	"DB_CONN":         "host=localhost port=5436 user=test password=test dbname=finance sslmode=disable",
	"LOG_LEVEL":       "info",
	"TOKEN_TTL":       "24h",
	"SMTP_PORT":       "587",
	"DIGEST_SCHEDULE": "0 8 1 * *",
	"DIGEST_MONTHS":   3,
}

// NewConfig loads configuration from environment variables and, when
// CONFIG_FILE is set, from that file. Environment variables win.
func NewConfig() (*Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Port:           v.GetString("PORT"),
		DBConn:         v.GetString("DB_CONN"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		TokenTTL:       v.GetDuration("TOKEN_TTL"),
		SMTPHost:       v.GetString("SMTP_HOST"),
		SMTPPort:       v.GetString("SMTP_PORT"),
		SMTPUsername:   v.GetString("SMTP_USERNAME"),
		SMTPPassword:   v.GetString("SMTP_PASSWORD"),
		SenderEmail:    v.GetString("SENDER_EMAIL"),
		DigestSchedule: v.GetString("DIGEST_SCHEDULE"),
		DigestMonths:   v.GetInt("DIGEST_MONTHS"),
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	// The signing key is never generated; it must come from the environment
	// or a secret store mounted as CONFIG_FILE.
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	if cfg.DigestMonths < 1 || cfg.DigestMonths > 36 {
		return nil, fmt.Errorf("DIGEST_MONTHS must be between 1 and 36, got %d", cfg.DigestMonths)
	}

	return cfg, nil
}

// DigestEnabled reports whether forecast digests can be scheduled
func (c *Config) DigestEnabled() bool {
	return c.DigestSchedule != "" && c.SMTPHost != "" && c.SenderEmail != ""
}
