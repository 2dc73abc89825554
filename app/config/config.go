package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the catalog service. It is loaded
// once at startup and read-only afterwards.
type Config struct {
	// Server
	Port     string
	Host     string
	LogLevel string

	// Database
	DatabaseHost     string
	DatabasePort     string
	DatabaseName     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseSSLMode  string

	// Kratos
	KratosPublicURL string
	KratosAdminURL  string

	// Cache
	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration

	// Tokens
	SecretKey string
	TokenTTL  time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "8000")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseHost = getEnvOrDefault("DB_HOST", "catalog-postgres")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "catalog_db")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "catalog_user")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")

	// Kratos configuration
	config.KratosPublicURL = os.Getenv("KRATOS_PUBLIC_URL")
	if config.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}

	config.KratosAdminURL = os.Getenv("KRATOS_ADMIN_URL")
	if config.KratosAdminURL == "" {
		return nil, fmt.Errorf("KRATOS_ADMIN_URL is required")
	}

	// Cache configuration. An empty address disables caching; the
	// service then serves straight from the system of record.
	config.RedisAddr = os.Getenv("REDIS_ADDR")
	config.RedisPassword = os.Getenv("REDIS_PASSWORD")

	var err error
	cacheTTLStr := getEnvOrDefault("CACHE_TTL", "1800s")
	config.CacheTTL, err = time.ParseDuration(cacheTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	// Token configuration. A missing secret is a fatal startup condition.
	config.SecretKey = os.Getenv("SECRET_KEY")
	if config.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is required")
	}

	tokenTTLStr := getEnvOrDefault("TOKEN_TTL", "1h")
	config.TokenTTL, err = time.ParseDuration(tokenTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate token lifetime (minimum 1 minute)
	if c.TokenTTL < time.Minute {
		return fmt.Errorf("token ttl must be at least 1 minute, got: %v", c.TokenTTL)
	}

	// Validate cache time-to-live (minimum 1 second)
	if c.CacheTTL < time.Second {
		return fmt.Errorf("cache ttl must be at least 1 second, got: %v", c.CacheTTL)
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
