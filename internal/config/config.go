// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DataDir         string // Base directory for the cache database (always absolute)
	UniverseFile    string // Path to the YAML ticker universe
	ProviderBaseURL string // Market data API base URL
	CacheTTLHours   int    // Price series cache expiry
	SyncSchedule    string // Cron expression for the universe prefetch job ("" = disabled)
	LogLevel        string
	Port            int
	DevMode         bool
}

// Load reads configuration from environment variables.
// A .env file in the working directory is applied first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dataDir := getEnv("CORRDASH_DATA_DIR", "./data")
	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}
	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:         absDataDir,
		UniverseFile:    getEnv("CORRDASH_UNIVERSE_FILE", "universe.yaml"),
		ProviderBaseURL: getEnv("CORRDASH_PROVIDER_URL", "https://query1.finance.yahoo.com"),
		CacheTTLHours:   getEnvAsInt("CORRDASH_CACHE_TTL_HOURS", 12),
		SyncSchedule:    getEnv("CORRDASH_SYNC_SCHEDULE", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Port:            getEnvAsInt("CORRDASH_PORT", 8080),
		DevMode:         getEnvAsBool("DEV_MODE", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.CacheTTLHours < 0 {
		return fmt.Errorf("invalid cache TTL: %d hours", c.CacheTTLHours)
	}
	if c.UniverseFile == "" {
		return fmt.Errorf("universe file path is required")
	}
	return nil
}

// CacheDBPath returns the path of the price cache database.
func (c *Config) CacheDBPath() string {
	return filepath.Join(c.DataDir, "cache.db")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
