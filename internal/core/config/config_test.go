package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://backend.test/")

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "https://backend.test", cfg.Backend.URL)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout())
	assert.Equal(t, 4, cfg.Backend.ProductImageWorkers)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Cache.RedisURL)
	assert.Equal(t, 15*time.Minute, cfg.Cache.SnapshotTTL())
	assert.Equal(t, []string{"Razorpay"}, cfg.Payments.Methods())
	assert.Empty(t, cfg.Auth.JWTSecret)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_TIMEZONE", "Asia/Kolkata")
	t.Setenv("BACKEND_URL", "https://api.example.com")
	t.Setenv("GATEWAY_PAYMENT_METHODS", "Razorpay, Stripe ,")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "https://api.example.com", cfg.Backend.URL)
	assert.Equal(t, []string{"Razorpay", "Stripe"}, cfg.Payments.Methods())
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
BACKEND_URL=https://staging.example.com
SNAPSHOT_TTL_SECONDS=60
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, time.Minute, cfg.Cache.SnapshotTTL())
}

// TestLoad_ValidationFailure verifies that missing required fields return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	os.Unsetenv("BACKEND_URL")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration: BACKEND_URL")
}

func TestAppConfig_Location_Invalid(t *testing.T) {
	cfg := &AppConfig{Timezone: "Mars/Olympus"}

	_, err := cfg.Location()
	assert.Error(t, err)
}
