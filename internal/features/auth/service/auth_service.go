package service

import (
	"context"
	"fmt"

	"admin-console/internal/features/auth/domain"
	"admin-console/internal/features/auth/ports"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService issues and decodes admin console credentials.
type AuthService struct {
	backend ports.CredentialBackend
	// secret enables signature verification when non-empty.
	secret []byte
	parser *jwt.Parser
}

// NewAuthService creates a new AuthService. With an empty secret the role claim is trusted as issued.
func NewAuthService(backend ports.CredentialBackend, secret string) *AuthService {
	return &AuthService{
		backend: backend,
		secret:  []byte(secret),
		parser:  jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// Login exchanges credentials with the backend and decodes the issued token.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (domain.Principal, error) {
	if _, err := domain.ParseRole(string(creds.Role)); err != nil {
		return domain.Principal{}, err
	}

	token, err := s.backend.Login(ctx, creds)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("service: %w", err)
	}

	return s.Authenticate(token)
}

// Authenticate decodes the role claim of token.
func (s *AuthService) Authenticate(token string) (domain.Principal, error) {
	if token == "" {
		return domain.Principal{}, domain.ErrUnauthorized
	}

	claims := jwt.MapClaims{}
	if len(s.secret) == 0 {
		if _, _, err := s.parser.ParseUnverified(token, claims); err != nil {
			return domain.Principal{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
		}
	} else {
		parsed, err := s.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
			return s.secret, nil
		})
		if err != nil || !parsed.Valid {
			return domain.Principal{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
		}
	}

	rawRole, _ := claims["role"].(string)
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: role claim %q", domain.ErrUnauthorized, rawRole)
	}

	return domain.Principal{
		Role:    role,
		Subject: subject(claims),
		Token:   token,
	}, nil
}

// subject picks the first identifying claim present.
func subject(claims jwt.MapClaims) string {
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		return sub
	}
	for _, key := range []string{"id", "email"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
