package handler

import (
	"net/http"
	"strings"

	"admin-console/internal/core/apierror"
	"admin-console/internal/core/httpclient"
	"admin-console/internal/features/auth/domain"
	"admin-console/internal/features/auth/ports"

	"github.com/gofiber/fiber/v2"
)

const principalKey = "principal"

// SetPrincipal stores p for the rest of the request.
func SetPrincipal(c *fiber.Ctx, p domain.Principal) {
	c.Locals(principalKey, p)
}

// CurrentPrincipal returns the principal stored by Authenticate.
func CurrentPrincipal(c *fiber.Ctx) (domain.Principal, bool) {
	p, ok := c.Locals(principalKey).(domain.Principal)
	return p, ok
}

// Token returns the raw credential of the current principal, or "".
func Token(c *fiber.Ctx) string {
	p, _ := CurrentPrincipal(c)
	return p.Token
}

// bearer reads the credential from the backend style "token" header or an Authorization bearer.
func bearer(c *fiber.Ctx) string {
	if t := strings.TrimSpace(c.Get(httpclient.TokenHeader)); t != "" {
		return t
	}
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// Authenticate builds the request Principal once from the presented credential.
func Authenticate(auth ports.Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearer(c)
		if token == "" {
			return apierror.Respond(c, http.StatusUnauthorized, "Missing credential")
		}

		p, err := auth.Authenticate(token)
		if err != nil {
			return apierror.Respond(c, http.StatusUnauthorized, "Invalid credential")
		}

		SetPrincipal(c, p)
		return c.Next()
	}
}

// RequireRole lets through principals holding one of roles.
func RequireRole(roles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := CurrentPrincipal(c)
		if !ok {
			return apierror.Respond(c, http.StatusUnauthorized, "Missing credential")
		}
		for _, r := range roles {
			if p.Role == r {
				return c.Next()
			}
		}
		return apierror.Respond(c, http.StatusForbidden, domain.ErrForbidden.Error())
	}
}
