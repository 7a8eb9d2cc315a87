package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"admin-console/internal/core/httpclient"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBackend(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "Unauthorized",
			err:            fmt.Errorf("wrap: %w", &httpclient.BackendError{StatusCode: http.StatusUnauthorized}),
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Not authorized",
		},
		{
			name:           "ExpiredTokenEnvelope",
			err:            fmt.Errorf("wrap: %w", &httpclient.BackendError{StatusCode: http.StatusOK, Message: "Not Authorized Login Again"}),
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Not Authorized Login Again",
		},
		{
			name:           "RejectedWithMessage",
			err:            &httpclient.BackendError{StatusCode: http.StatusOK, Message: "Order not found"},
			expectedStatus: http.StatusBadGateway,
			expectedMsg:    "Order not found",
		},
		{
			name:           "ServerErrorWithoutMessage",
			err:            &httpclient.BackendError{StatusCode: http.StatusInternalServerError},
			expectedStatus: http.StatusBadGateway,
			expectedMsg:    "Backend request failed",
		},
		{
			name:           "Network",
			err:            errors.New("failed to execute request: connection refused"),
			expectedStatus: http.StatusBadGateway,
			expectedMsg:    "Backend unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(func(c *fiber.Ctx) error {
				c.Locals("requestid", "ray-1")
				return c.Next()
			})
			app.Get("/", func(c *fiber.Ctx) error {
				return FromBackend(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.expectedMsg, body.Message)
			assert.Equal(t, "ray-1", body.RayID)
		})
	}
}

func TestRayID_Unknown(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(RayID(c))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	buf := make([]byte, 16)
	n, _ := resp.Body.Read(buf)
	assert.Equal(t, "unknown", string(buf[:n]))
}
