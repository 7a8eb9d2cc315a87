package adapter

import (
	"context"
	"fmt"
	"net/http"

	"admin-console/internal/core/httpclient"
	"admin-console/internal/features/auth/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginResponse struct {
	httpclient.Envelope
	Token string `json:"token"`
}

// BackendAdapter implements ports.CredentialBackend with /api/user/admin.
type BackendAdapter struct {
	client *httpclient.APIClient
}

// NewBackendAdapter creates a new instance of BackendAdapter.
func NewBackendAdapter(client *httpclient.APIClient) *BackendAdapter {
	return &BackendAdapter{client: client}
}

// Login posts the credentials and returns the issued token.
func (a *BackendAdapter) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	body := loginRequest{
		Email:    creds.Email,
		Password: creds.Password,
		Role:     string(creds.Role),
	}

	var resp loginResponse
	if err := a.client.Do(ctx, http.MethodPost, "/api/user/admin", "", body, &resp); err != nil {
		return "", fmt.Errorf("failed to log in: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("failed to log in: %w", domain.ErrUnauthorized)
	}

	return resp.Token, nil
}
