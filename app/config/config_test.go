package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv establishes the minimal environment Load needs; tests
// override individual keys on top of it.
func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("DB_PASSWORD", "db-password")
	t.Setenv("KRATOS_PUBLIC_URL", "http://kratos:4433")
	t.Setenv("KRATOS_ADMIN_URL", "http://kratos:4434")
	t.Setenv("SECRET_KEY", "test-signing-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("TOKEN_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "5432", cfg.DatabasePort)
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CACHE_TTL", "10m")
	t.Setenv("TOKEN_TTL", "2h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
}

func TestLoad_RequiredValues(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{name: "missing database password", unset: "DB_PASSWORD"},
		{name: "missing kratos public url", unset: "KRATOS_PUBLIC_URL"},
		{name: "missing kratos admin url", unset: "KRATOS_ADMIN_URL"},
		{name: "missing secret key", unset: "SECRET_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.unset)
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-numeric port", key: "PORT", value: "not-a-port"},
		{name: "port out of range", key: "PORT", value: "70000"},
		{name: "unknown log level", key: "LOG_LEVEL", value: "verbose"},
		{name: "unparseable cache ttl", key: "CACHE_TTL", value: "soon"},
		{name: "cache ttl below one second", key: "CACHE_TTL", value: "500ms"},
		{name: "unparseable token ttl", key: "TOKEN_TTL", value: "eventually"},
		{name: "token ttl below one minute", key: "TOKEN_TTL", value: "30s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := &Config{
		Port:     "8000",
		LogLevel: "info",
		TokenTTL: time.Hour,
		CacheTTL: 30 * time.Minute,
	}
	assert.NoError(t, valid.Validate())

	invalidPort := *valid
	invalidPort.Port = "0"
	assert.Error(t, invalidPort.Validate())
}
