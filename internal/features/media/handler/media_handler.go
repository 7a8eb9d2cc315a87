package handler

import (
	"errors"
	"net/http"

	"admin-console/internal/core/apierror"
	"admin-console/internal/core/logger"
	authhandler "admin-console/internal/features/auth/handler"
	"admin-console/internal/features/media/domain"
	"admin-console/internal/features/media/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MediaHandler handles HTTP requests for the media gallery.
type MediaHandler struct {
	service ports.MediaService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(service ports.MediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

// ListResponse is the reply of GET /admin/media.
type ListResponse struct {
	Count int           `json:"count"`
	Media []domain.Item `json:"media"`
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListMedia handles GET /admin/media.
// @Summary List gallery images
// @Tags Media
// @Produce json
// @Security TokenAuth
// @Success 200 {object} ListResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /admin/media [get]
func (h *MediaHandler) ListMedia(c *fiber.Ctx) error {
	items, err := h.service.List(c.UserContext())
	if err != nil {
		return fail(c, "Failed to list media", err)
	}
	return c.Status(http.StatusOK).JSON(ListResponse{Count: len(items), Media: items})
}

// RemoveMedia handles DELETE /admin/media/:id.
// @Summary Remove a gallery image
// @Tags Media
// @Produce json
// @Security TokenAuth
// @Param id path string true "Media ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} apierror.ErrorResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /admin/media/{id} [delete]
func (h *MediaHandler) RemoveMedia(c *fiber.Ctx) error {
	if err := h.service.Remove(c.UserContext(), authhandler.Token(c), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrMediaIDRequired) {
			return apierror.Respond(c, http.StatusBadRequest, err.Error())
		}
		return fail(c, "Failed to remove media", err)
	}
	return c.Status(http.StatusOK).JSON(MessageResponse{Message: "Deleted"})
}

func fail(c *fiber.Ctx, msg string, err error) error {
	logger.Get().Error(msg,
		zap.String("ray_id", apierror.RayID(c)),
		zap.Error(err),
	)
	return apierror.FromBackend(c, err)
}
