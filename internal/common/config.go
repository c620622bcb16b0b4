// Package common provides shared utilities for Varlik
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Varlik
type Config struct {
	Environment     string          `toml:"environment"`
	DisplayCurrency string          `toml:"display_currency"` // Currency code used for display formatting only, never for conversion
	Server          ServerConfig    `toml:"server"`
	Storage         StorageConfig   `toml:"storage"`
	Clients         ClientsConfig   `toml:"clients"`
	Auth            AuthConfig      `toml:"auth"`
	Reminders       RemindersConfig `toml:"reminders"`
	Logging         LoggingConfig   `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig holds the path for the embedded balance-book database.
type StorageConfig struct {
	Path string `toml:"path"`
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Gemini GeminiConfig `toml:"gemini"`
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey  string `toml:"api_key"`
	Model   string `toml:"model"`
	Timeout string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *GeminiConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 60 * time.Second
	}
	return d
}

// AuthConfig holds device PIN / JWT session configuration.
type AuthConfig struct {
	JWTSecret   string `toml:"jwt_secret"`
	TokenExpiry string `toml:"token_expiry"` // duration string, default "720h"
}

// GetTokenExpiry parses and returns the token expiry duration.
func (c *AuthConfig) GetTokenExpiry() time.Duration {
	d, err := time.ParseDuration(c.TokenExpiry)
	if err != nil {
		return 720 * time.Hour
	}
	return d
}

// RemindersConfig holds the due-date reminder scheduler configuration.
type RemindersConfig struct {
	Enabled    bool   `toml:"enabled"`
	Schedule   string `toml:"schedule"`    // cron expression, default daily at 09:00
	WindowDays int    `toml:"window_days"` // how far ahead to look for due dates
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment:     "development",
		DisplayCurrency: "TRY",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Storage: StorageConfig{
			Path: "data/book",
		},
		Clients: ClientsConfig{
			Gemini: GeminiConfig{
				Model:   "gemini-2.0-flash",
				Timeout: "60s",
			},
		},
		Auth: AuthConfig{
			JWTSecret:   "dev-jwt-secret-change-in-production",
			TokenExpiry: "720h",
		},
		Reminders: RemindersConfig{
			Enabled:    true,
			Schedule:   "0 9 * * *",
			WindowDays: 7,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)
	validateDisplayCurrency(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("VARLIK_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("VARLIK_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("VARLIK_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("VARLIK_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("VARLIK_DATA_PATH"); path != "" {
		config.Storage.Path = path
	}

	if dc := os.Getenv("VARLIK_DISPLAY_CURRENCY"); dc != "" {
		config.DisplayCurrency = strings.ToUpper(dc)
	}

	if v := os.Getenv("VARLIK_AUTH_JWT_SECRET"); v != "" {
		config.Auth.JWTSecret = v
	}
	if v := os.Getenv("VARLIK_AUTH_TOKEN_EXPIRY"); v != "" {
		config.Auth.TokenExpiry = v
	}

	for _, name := range []string{"VARLIK_GEMINI_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if v := os.Getenv(name); v != "" {
			config.Clients.Gemini.APIKey = v
			break
		}
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

// validateDisplayCurrency ensures DisplayCurrency is a known ISO code,
// defaulting to "TRY". Unknown codes would leave the UI without a symbol.
func validateDisplayCurrency(config *Config) {
	code := strings.ToUpper(strings.TrimSpace(config.DisplayCurrency))
	if money.GetCurrency(code) == nil {
		code = "TRY"
	}
	config.DisplayCurrency = code
}
