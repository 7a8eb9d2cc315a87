package ports

import (
	"context"

	"admin-console/internal/features/auth/domain"
)

// CredentialBackend exchanges credentials for a bearer token.
// This is a Secondary Port (Driven Port).
type CredentialBackend interface {
	Login(ctx context.Context, creds domain.Credentials) (string, error)
}

// Authenticator turns a bearer token into a Principal.
type Authenticator interface {
	Authenticate(token string) (domain.Principal, error)
}

// AuthService is the driving port of the auth feature.
type AuthService interface {
	Authenticator
	// Login returns the principal of the issued token.
	Login(ctx context.Context, creds domain.Credentials) (domain.Principal, error)
}
