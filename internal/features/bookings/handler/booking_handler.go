package handler

import (
	"net/http"

	"admin-console/internal/core/apierror"
	"admin-console/internal/core/logger"
	authhandler "admin-console/internal/features/auth/handler"
	"admin-console/internal/features/bookings/domain"
	"admin-console/internal/features/bookings/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	service ports.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// ListBookings handles GET /admin/bookings.
// @Summary List facility bookings
// @Tags Bookings
// @Produce json
// @Security TokenAuth
// @Param gym query string false "Gym branch or All"
// @Param facility query string false "Facility or All"
// @Param search query string false "Search term"
// @Success 200 {object} domain.Listing
// @Failure 401 {object} apierror.ErrorResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /admin/bookings [get]
func (h *BookingHandler) ListBookings(c *fiber.Ctx) error {
	filter := domain.Filter{
		Gym:      c.Query("gym"),
		Facility: c.Query("facility"),
		Search:   c.Query("search"),
	}

	listing, err := h.service.List(c.UserContext(), authhandler.Token(c), filter)
	if err != nil {
		return fail(c, "Failed to list bookings", err)
	}

	return c.Status(http.StatusOK).JSON(listing)
}

// BranchBookings handles GET /branch/bookings.
// @Summary Bookings of the caller's branch
// @Tags Branch
// @Produce json
// @Security TokenAuth
// @Success 200 {object} domain.Roster[domain.Booking]
// @Failure 502 {object} apierror.ErrorResponse
// @Router /branch/bookings [get]
func (h *BookingHandler) BranchBookings(c *fiber.Ctx) error {
	roster, err := h.service.BranchBookings(c.UserContext(), authhandler.Token(c))
	if err != nil {
		return fail(c, "Failed to list branch bookings", err)
	}
	return c.Status(http.StatusOK).JSON(roster)
}

// BranchMembers handles GET /branch/members.
// @Summary Members of the caller's branch
// @Tags Branch
// @Produce json
// @Security TokenAuth
// @Success 200 {object} domain.Roster[domain.Member]
// @Failure 502 {object} apierror.ErrorResponse
// @Router /branch/members [get]
func (h *BookingHandler) BranchMembers(c *fiber.Ctx) error {
	roster, err := h.service.BranchMembers(c.UserContext(), authhandler.Token(c))
	if err != nil {
		return fail(c, "Failed to list branch members", err)
	}
	return c.Status(http.StatusOK).JSON(roster)
}

func fail(c *fiber.Ctx, msg string, err error) error {
	logger.Get().Error(msg,
		zap.String("ray_id", apierror.RayID(c)),
		zap.Error(err),
	)
	return apierror.FromBackend(c, err)
}
