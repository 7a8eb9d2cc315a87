package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"admin-console/internal/core/cache"
	"admin-console/internal/core/config"
	"admin-console/internal/core/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("connection refused") }

// TestNew verifies that New creates a Server with the correct configuration.
func TestNew(t *testing.T) {
	cfg := &config.AppConfig{
		ServerPort: 8080,
	}

	logger.Init("development", "debug")
	srv := New(cfg, nil)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.App)
	assert.Equal(t, cfg, srv.cfg)
}

func TestServer_RequestID(t *testing.T) {
	srv := New(&config.AppConfig{}, nil)
	srv.App.Get("/echo", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("requestid").(string))
	})

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/echo", nil))
	require.NoError(t, err)

	rayID := resp.Header.Get("X-Ray-ID")
	_, err = uuid.Parse(rayID)
	assert.NoError(t, err)
}

func TestServer_Health(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		srv := New(&config.AppConfig{}, nil)

		resp, err := srv.App.Test(httptest.NewRequest("GET", "/healthz", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, HealthResponse{Status: "ok", Cache: "disabled"}, body)
	})

	t.Run("Redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		c, err := cache.NewRedisAdapter("redis://"+mr.Addr(), "test")
		require.NoError(t, err)
		defer c.Close()

		srv := New(&config.AppConfig{}, c)

		resp, err := srv.App.Test(httptest.NewRequest("GET", "/healthz", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Unreachable", func(t *testing.T) {
		srv := New(&config.AppConfig{}, failingPinger{})

		resp, err := srv.App.Test(httptest.NewRequest("GET", "/healthz", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

// TestServer_Run_Error verifies that Run returns an error when binding fails (e.g., privileged port).
func TestServer_Run_Error(t *testing.T) {
	// Privileged port 1 should fail
	cfg := &config.AppConfig{
		ServerPort: 1,
	}
	logger.Init("development", "error")

	srv := New(cfg, nil)

	errCh := make(chan error)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		assert.Error(t, err)
	case <-time.After(1 * time.Second):
		srv.Shutdown(time.Second)
		t.Log("Server unexpectedly started or timed out on Error test")
	}
}
