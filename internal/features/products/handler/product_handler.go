package handler

import (
	"errors"
	"net/http"

	"admin-console/internal/core/apierror"
	"admin-console/internal/core/logger"
	authhandler "admin-console/internal/features/auth/handler"
	"admin-console/internal/features/products/domain"
	"admin-console/internal/features/products/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service ports.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// ListResponse is the reply of GET /admin/products.
type ListResponse struct {
	Count    int           `json:"count"`
	Products []domain.View `json:"products"`
}

// MessageResponse carries the backend's confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListProducts handles GET /admin/products.
// @Summary List catalog products
// @Description Products whose name, category or sub-category contain the search term, with discounted prices.
// @Tags Products
// @Produce json
// @Security TokenAuth
// @Param search query string false "Search term"
// @Success 200 {object} ListResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /admin/products [get]
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	views, err := h.service.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return fail(c, "Failed to list products", err)
	}
	return c.Status(http.StatusOK).JSON(ListResponse{Count: len(views), Products: views})
}

// RemoveProduct handles DELETE /admin/products/:id.
// @Summary Remove a product
// @Tags Products
// @Produce json
// @Security TokenAuth
// @Param id path string true "Product ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} apierror.ErrorResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) RemoveProduct(c *fiber.Ctx) error {
	msg, err := h.service.Remove(c.UserContext(), authhandler.Token(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductIDRequired) {
			return apierror.Respond(c, http.StatusBadRequest, err.Error())
		}
		return fail(c, "Failed to remove product", err)
	}
	if msg == "" {
		msg = "Product removed"
	}
	return c.Status(http.StatusOK).JSON(MessageResponse{Message: msg})
}

func fail(c *fiber.Ctx, msg string, err error) error {
	logger.Get().Error(msg,
		zap.String("ray_id", apierror.RayID(c)),
		zap.Error(err),
	)
	return apierror.FromBackend(c, err)
}
