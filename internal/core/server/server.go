package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"admin-console/internal/core/config"
	"admin-console/internal/core/logger"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"go.uber.org/zap"

	_ "admin-console/docs/swagger"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse is the reply of /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg   *config.AppConfig
	cache Pinger
}

// New creates a new Server instance with configured middleware.
// cache may be nil, in which case /healthz reports it as disabled.
func New(cfg *config.AppConfig, cache Pinger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "admin-console",
	})

	app.Use(requestid.New(requestid.Config{
		Header:    "X-Ray-ID",
		Generator: uuid.NewString,
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	s := &Server{
		App:   app,
		cfg:   cfg,
		cache: cache,
	}

	app.Get("/healthz", s.health)

	return s
}

// health handles GET /healthz.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /healthz [get]
func (s *Server) health(c *fiber.Ctx) error {
	if s.cache == nil {
		return c.Status(http.StatusOK).JSON(HealthResponse{Status: "ok", Cache: "disabled"})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := s.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Cache health check failed", zap.Error(err))
		return c.Status(http.StatusServiceUnavailable).JSON(HealthResponse{Status: "degraded", Cache: "unreachable"})
	}

	return c.Status(http.StatusOK).JSON(HealthResponse{Status: "ok", Cache: "ok"})
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests up to timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	return s.App.ShutdownWithTimeout(timeout)
}
