package handler

import (
	"errors"
	"net/http"

	"admin-console/internal/core/apierror"
	"admin-console/internal/core/logger"
	"admin-console/internal/features/auth/domain"
	"admin-console/internal/features/auth/ports"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler handles login and session introspection.
type AuthHandler struct {
	service  ports.AuthService
	validate *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// LoginRequest is the body of a login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin branch"`
}

// LoginResponse carries the issued bearer credential.
type LoginResponse struct {
	Token string      `json:"token"`
	Role  domain.Role `json:"role"`
}

// Login handles POST /auth/login.
// @Summary Log in
// @Description Exchanges admin or branch credentials for a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} apierror.ErrorResponse
// @Failure 401 {object} apierror.ErrorResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apierror.Respond(c, http.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return apierror.Respond(c, http.StatusBadRequest, err.Error())
	}

	p, err := h.service.Login(c.UserContext(), domain.Credentials{
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return apierror.Respond(c, http.StatusUnauthorized, "Issued credential carries no usable role")
		}
		logger.Get().Warn("Login failed",
			zap.String("role", req.Role),
			zap.String("ray_id", apierror.RayID(c)),
			zap.Error(err),
		)
		return apierror.FromBackend(c, err)
	}

	return c.Status(http.StatusOK).JSON(LoginResponse{
		Token: p.Token,
		Role:  p.Role,
	})
}

// Me handles GET /auth/me.
// @Summary Current principal
// @Tags Auth
// @Produce json
// @Security TokenAuth
// @Success 200 {object} domain.Principal
// @Failure 401 {object} apierror.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	p, ok := CurrentPrincipal(c)
	if !ok {
		return apierror.Respond(c, http.StatusUnauthorized, "Missing credential")
	}
	return c.Status(http.StatusOK).JSON(p)
}
