package handler

import (
	"errors"
	"net/http"

	"admin-console/internal/core/apierror"
	"admin-console/internal/core/logger"
	authhandler "admin-console/internal/features/auth/handler"
	"admin-console/internal/features/banners/domain"
	"admin-console/internal/features/banners/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BannerHandler handles HTTP requests for banners.
type BannerHandler struct {
	service ports.BannerService
}

// NewBannerHandler creates a new BannerHandler.
func NewBannerHandler(service ports.BannerService) *BannerHandler {
	return &BannerHandler{service: service}
}

// ListResponse is the reply of GET /admin/banners.
type ListResponse struct {
	Count   int             `json:"count"`
	Banners []domain.Banner `json:"banners"`
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListBanners handles GET /admin/banners.
// @Summary List hero banners
// @Tags Banners
// @Produce json
// @Security TokenAuth
// @Success 200 {object} ListResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /admin/banners [get]
func (h *BannerHandler) ListBanners(c *fiber.Ctx) error {
	banners, err := h.service.List(c.UserContext())
	if err != nil {
		logger.Get().Error("Failed to list banners", zap.String("ray_id", apierror.RayID(c)), zap.Error(err))
		return apierror.FromBackend(c, err)
	}

	return c.Status(http.StatusOK).JSON(ListResponse{Count: len(banners), Banners: banners})
}

// RemoveBanner handles DELETE /admin/banners/:id.
// @Summary Remove a hero banner
// @Tags Banners
// @Produce json
// @Security TokenAuth
// @Param id path string true "Banner ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} apierror.ErrorResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /admin/banners/{id} [delete]
func (h *BannerHandler) RemoveBanner(c *fiber.Ctx) error {
	if err := h.service.Remove(c.UserContext(), authhandler.Token(c), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrBannerIDRequired) {
			return apierror.Respond(c, http.StatusBadRequest, err.Error())
		}
		logger.Get().Error("Failed to remove banner", zap.String("ray_id", apierror.RayID(c)), zap.Error(err))
		return apierror.FromBackend(c, err)
	}

	return c.Status(http.StatusOK).JSON(MessageResponse{Message: "Banner removed successfully"})
}
