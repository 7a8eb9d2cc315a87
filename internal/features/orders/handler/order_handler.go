package handler

import (
	"errors"
	"net/http"

	"admin-console/internal/core/apierror"
	"admin-console/internal/core/logger"
	authhandler "admin-console/internal/features/auth/handler"
	"admin-console/internal/features/orders/domain"
	"admin-console/internal/features/orders/ports"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var errInvalidBody = errors.New("invalid request body")

// OrderHandler handles HTTP requests related to orders.
type OrderHandler struct {
	// service is the order use case port.
	service  ports.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s ports.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  s,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ListResponse is the reply of the order listing.
type ListResponse struct {
	Count  int                `json:"count"`
	Orders []domain.OrderView `json:"orders"`
}

// RefreshResponse is the reply of a snapshot refresh.
type RefreshResponse struct {
	Count     int    `json:"count"`
	FetchedAt string `json:"fetched_at"`
}

// StatusRequest is the body of a status update.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// NotesRequest is the body of a notes update.
type NotesRequest struct {
	AdminNotes string `json:"admin_notes" validate:"max=2000"`
}

// TrackingRequest is the body of a tracking URL update. An empty URL clears it.
type TrackingRequest struct {
	TrackingURL string `json:"tracking_url" validate:"omitempty,url"`
}

// CancelRequest is the body of a cancellation.
type CancelRequest struct {
	UserEmail string `json:"user_email" validate:"omitempty,email"`
}

// MessageResponse acknowledges a command.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListOrders handles GET /admin/orders.
// @Summary List orders
// @Description Orders of the session snapshot, newest first, with reconciled totals and payment status.
// @Tags Orders
// @Produce json
// @Security TokenAuth
// @Param search query string false "Search term"
// @Param status query string false "Order status or All"
// @Param date query string false "Calendar date YYYY-MM-DD"
// @Success 200 {object} ListResponse
// @Failure 400 {object} apierror.ErrorResponse
// @Failure 401 {object} apierror.ErrorResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /admin/orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	filter := domain.ListFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Date:   c.Query("date"),
	}

	views, err := h.service.List(c.UserContext(), authhandler.Token(c), filter)
	if err != nil {
		return h.fail(c, "Failed to list orders", "", err)
	}

	return c.Status(http.StatusOK).JSON(ListResponse{
		Count:  len(views),
		Orders: views,
	})
}

// Refresh handles POST /admin/orders/refresh.
// @Summary Refresh the order snapshot
// @Tags Orders
// @Produce json
// @Security TokenAuth
// @Success 200 {object} RefreshResponse
// @Failure 401 {object} apierror.ErrorResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /admin/orders/refresh [post]
func (h *OrderHandler) Refresh(c *fiber.Ctx) error {
	snapshot, err := h.service.Refresh(c.UserContext(), authhandler.Token(c))
	if err != nil {
		return h.fail(c, "Failed to refresh orders", "", err)
	}

	return c.Status(http.StatusOK).JSON(RefreshResponse{
		Count:     len(snapshot.Orders),
		FetchedAt: snapshot.FetchedAt.UTC().Format(http.TimeFormat),
	})
}

// UpdateStatus handles PUT /admin/orders/:id/status.
// @Summary Update order status
// @Tags Orders
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "Order ID"
// @Param body body StatusRequest true "New status"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} apierror.ErrorResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /admin/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var req StatusRequest
	if err := h.bind(c, &req); err != nil {
		return apierror.Respond(c, http.StatusBadRequest, err.Error())
	}

	orderID := c.Params("id")
	if err := h.service.UpdateStatus(c.UserContext(), authhandler.Token(c), orderID, req.Status); err != nil {
		return h.fail(c, "Failed to update order status", orderID, err)
	}

	return c.Status(http.StatusOK).JSON(MessageResponse{Message: "Status updated"})
}

// UpdateNotes handles PUT /admin/orders/:id/notes.
// @Summary Update admin notes
// @Tags Orders
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "Order ID"
// @Param body body NotesRequest true "Notes"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} apierror.ErrorResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /admin/orders/{id}/notes [put]
func (h *OrderHandler) UpdateNotes(c *fiber.Ctx) error {
	var req NotesRequest
	if err := h.bind(c, &req); err != nil {
		return apierror.Respond(c, http.StatusBadRequest, err.Error())
	}

	orderID := c.Params("id")
	if err := h.service.UpdateNotes(c.UserContext(), authhandler.Token(c), orderID, req.AdminNotes); err != nil {
		return h.fail(c, "Failed to update order notes", orderID, err)
	}

	return c.Status(http.StatusOK).JSON(MessageResponse{Message: "Notes updated"})
}

// UpdateTracking handles PUT /admin/orders/:id/tracking.
// @Summary Update tracking URL
// @Tags Orders
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "Order ID"
// @Param body body TrackingRequest true "Tracking URL"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} apierror.ErrorResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /admin/orders/{id}/tracking [put]
func (h *OrderHandler) UpdateTracking(c *fiber.Ctx) error {
	var req TrackingRequest
	if err := h.bind(c, &req); err != nil {
		return apierror.Respond(c, http.StatusBadRequest, err.Error())
	}

	orderID := c.Params("id")
	if err := h.service.UpdateTrackingURL(c.UserContext(), authhandler.Token(c), orderID, req.TrackingURL); err != nil {
		return h.fail(c, "Failed to update tracking URL", orderID, err)
	}

	return c.Status(http.StatusOK).JSON(MessageResponse{Message: "Tracking URL updated"})
}

// Cancel handles POST /admin/orders/:id/cancel.
// @Summary Cancel an order
// @Description Cancels the order and lets the backend notify the customer.
// @Tags Orders
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "Order ID"
// @Param body body CancelRequest false "Notification address"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} apierror.ErrorResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /admin/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	var req CancelRequest
	if len(c.Body()) > 0 {
		if err := h.bind(c, &req); err != nil {
			return apierror.Respond(c, http.StatusBadRequest, err.Error())
		}
	}

	orderID := c.Params("id")
	msg, err := h.service.Cancel(c.UserContext(), authhandler.Token(c), orderID, req.UserEmail)
	if err != nil {
		return h.fail(c, "Failed to cancel order", orderID, err)
	}
	if msg == "" {
		msg = "Order cancelled"
	}

	return c.Status(http.StatusOK).JSON(MessageResponse{Message: msg})
}

// bind decodes and validates the request body.
func (h *OrderHandler) bind(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return errInvalidBody
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}
	return nil
}

func (h *OrderHandler) fail(c *fiber.Ctx, msg, orderID string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrOrderIDRequired),
		errors.Is(err, domain.ErrInvalidDate):
		return apierror.Respond(c, http.StatusBadRequest, err.Error())
	}

	logger.Get().Error(msg,
		zap.String("order_id", orderID),
		zap.String("ray_id", apierror.RayID(c)),
		zap.Error(err),
	)
	return apierror.FromBackend(c, err)
}
