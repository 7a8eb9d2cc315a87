package handler

import (
	"errors"
	"net/http"
	"strconv"

	"admin-console/internal/core/apierror"
	"admin-console/internal/core/logger"
	"admin-console/internal/features/analytics/domain"
	"admin-console/internal/features/analytics/ports"
	authhandler "admin-console/internal/features/auth/handler"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AnalyticsHandler serves the sales dashboard.
type AnalyticsHandler struct {
	service ports.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(service ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetReport handles GET /admin/analytics.
// @Summary Sales analytics
// @Description All-time and windowed totals, the monthly series of a year and the trailing seven days.
// @Description month and date are mutually exclusive.
// @Tags Analytics
// @Produce json
// @Security TokenAuth
// @Param month query int false "Month 1-12"
// @Param year query int false "Year of month and chart, defaults to the current year"
// @Param date query string false "Calendar date YYYY-MM-DD"
// @Success 200 {object} domain.Report
// @Failure 400 {object} apierror.ErrorResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /admin/analytics [get]
func (h *AnalyticsHandler) GetReport(c *fiber.Ctx) error {
	month, err := queryInt(c, "month")
	if err != nil {
		return apierror.Respond(c, http.StatusBadRequest, "month must be a number between 1 and 12")
	}
	year, err := queryInt(c, "year")
	if err != nil {
		return apierror.Respond(c, http.StatusBadRequest, "year must be a number")
	}

	q := domain.Query{Month: month, Year: year, Date: c.Query("date")}

	report, err := h.service.Report(c.UserContext(), authhandler.Token(c), q)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingWindow) || errors.Is(err, domain.ErrInvalidWindow) {
			return apierror.Respond(c, http.StatusBadRequest, err.Error())
		}
		logger.Get().Error("Failed to build analytics report",
			zap.String("ray_id", apierror.RayID(c)),
			zap.Error(err),
		)
		return apierror.FromBackend(c, err)
	}

	return c.Status(http.StatusOK).JSON(report)
}

func queryInt(c *fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
