package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Store
	DatabaseURL    string // empty means store-less mode
	DatabaseName   string
	ConnectTimeout time.Duration

	// HTTP server
	Port           string
	BrandName      string
	AllowedOrigins []string // "*" allows any origin
	GinMode        string

	// Logging
	LogLevel  string
	LogFormat string // "json" or "console"
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DatabaseName:   "arcadia",
		ConnectTimeout: 10 * time.Second,
		Port:           "8000",
		BrandName:      "Arcadia",
		AllowedOrigins: []string{"*"},
		GinMode:        "release",
		LogLevel:       "info",
		LogFormat:      "json",
	}
}

// LoadFromEnv loads .env file (if present) then overrides config from environment variables.
func (c *Config) LoadFromEnv() {
	// Auto-load .env file; silently ignored if missing
	_ = godotenv.Load()

	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	} else if v := os.Getenv("MONGODB_URI"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("DATABASE_NAME"); v != "" {
		c.DatabaseName = v
	}
	if v := os.Getenv("DB_CONNECT_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.ConnectTimeout = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("BRAND_NAME"); v != "" {
		c.BrandName = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = ParseOrigins(v)
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		c.GinMode = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
}

// StoreConfigured reports whether a connection string was provided.
func (c *Config) StoreConfigured() bool {
	return c.DatabaseURL != ""
}

// ParseOrigins splits a comma separated origin list, dropping blanks.
func ParseOrigins(v string) []string {
	var origins []string
	for _, origin := range strings.Split(v, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
