package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"admin-console/internal/core/apierror"
	"admin-console/internal/core/httpclient"
	"admin-console/internal/features/auth/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAuthService is a mock implementation of ports.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Authenticate(token string) (domain.Principal, error) {
	args := m.Called(token)
	return args.Get(0).(domain.Principal), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, creds domain.Credentials) (domain.Principal, error) {
	args := m.Called(ctx, creds)
	return args.Get(0).(domain.Principal), args.Error(1)
}

func setupApp(service *MockAuthService) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})

	h := NewAuthHandler(service)
	app.Post("/auth/login", h.Login)
	app.Get("/auth/me", Authenticate(service), h.Me)

	admin := app.Group("/admin", Authenticate(service), RequireRole(domain.RoleAdmin))
	admin.Get("/ping", func(c *fiber.Ctx) error { return c.SendString(Token(c)) })
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockAuthService)
		app := setupApp(svc)

		creds := domain.Credentials{Email: "ops@example.com", Password: "pw", Role: domain.RoleBranch}
		svc.On("Login", mock.Anything, creds).Return(domain.Principal{Role: domain.RoleBranch, Token: "jwt"}, nil).Once()

		resp := postJSON(t, app, "/auth/login", LoginRequest{Email: "ops@example.com", Password: "pw", Role: "branch"})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body LoginResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, LoginResponse{Token: "jwt", Role: domain.RoleBranch}, body)
		svc.AssertExpectations(t)
	})

	t.Run("ValidationError", func(t *testing.T) {
		svc := new(MockAuthService)
		app := setupApp(svc)

		resp := postJSON(t, app, "/auth/login", LoginRequest{Email: "not-an-email", Password: "pw", Role: "owner"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})

	t.Run("RejectedByBackend", func(t *testing.T) {
		svc := new(MockAuthService)
		app := setupApp(svc)

		svc.On("Login", mock.Anything, mock.Anything).
			Return(domain.Principal{}, &httpclient.BackendError{StatusCode: http.StatusOK, Message: "Invalid credentials"}).Once()

		resp := postJSON(t, app, "/auth/login", LoginRequest{Email: "ops@example.com", Password: "bad", Role: "admin"})
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

		var body apierror.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Invalid credentials", body.Message)
		assert.Equal(t, "test-ray-id", body.RayID)
	})

	t.Run("TokenWithoutRole", func(t *testing.T) {
		svc := new(MockAuthService)
		app := setupApp(svc)

		svc.On("Login", mock.Anything, mock.Anything).Return(domain.Principal{}, domain.ErrUnauthorized).Once()

		resp := postJSON(t, app, "/auth/login", LoginRequest{Email: "ops@example.com", Password: "pw", Role: "admin"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		value          string
		principal      domain.Principal
		authErr        error
		expectedStatus int
	}{
		{
			name:           "TokenHeader",
			header:         "token",
			value:          "t-admin",
			principal:      domain.Principal{Role: domain.RoleAdmin, Token: "t-admin"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "BearerHeader",
			header:         "Authorization",
			value:          "Bearer t-admin",
			principal:      domain.Principal{Role: domain.RoleAdmin, Token: "t-admin"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "BranchForbidden",
			header:         "token",
			value:          "t-admin",
			principal:      domain.Principal{Role: domain.RoleBranch, Token: "t-admin"},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "InvalidToken",
			header:         "token",
			value:          "t-admin",
			authErr:        domain.ErrUnauthorized,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			app := setupApp(svc)
			svc.On("Authenticate", "t-admin").Return(tt.principal, tt.authErr).Maybe()

			req := httptest.NewRequest("GET", "/admin/ping", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusOK {
				buf := new(bytes.Buffer)
				buf.ReadFrom(resp.Body)
				assert.Equal(t, "t-admin", buf.String())
			}
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	svc := new(MockAuthService)
	app := setupApp(svc)
	svc.On("Authenticate", "t").Return(domain.Principal{Role: domain.RoleBranch, Subject: "b1", Token: "t"}, nil).Once()

	req := httptest.NewRequest("GET", "/auth/me", nil)
	req.Header.Set("token", "t")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]string{"role": "branch", "subject": "b1"}, body)
}

func TestRequireRole_WithoutAuthenticate(t *testing.T) {
	app := fiber.New()
	app.Get("/x", RequireRole(domain.RoleAdmin), func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
