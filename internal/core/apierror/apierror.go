package apierror

import (
	"net/http"

	"admin-console/internal/core/httpclient"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// RayID returns the request id set by the requestid middleware.
func RayID(c *fiber.Ctx) string {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return rayID
}

// Respond writes an ErrorResponse with the given status.
func Respond(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   RayID(c),
	})
}

// FromBackend maps a failed backend call to a response.
// Rejected credentials become 401, anything else 502 with the backend message when there is one.
func FromBackend(c *fiber.Ctx, err error) error {
	if be, ok := httpclient.AsBackendError(err); ok {
		if be.Unauthorized() {
			return Respond(c, http.StatusUnauthorized, messageOr(be.Message, "Not authorized"))
		}
		return Respond(c, http.StatusBadGateway, messageOr(be.Message, "Backend request failed"))
	}
	return Respond(c, http.StatusBadGateway, "Backend unavailable")
}

func messageOr(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
