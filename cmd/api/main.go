package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"admin-console/internal/core/cache"
	"admin-console/internal/core/config"
	"admin-console/internal/core/httpclient"
	"admin-console/internal/core/logger"
	"admin-console/internal/core/server"
	analyticshandler "admin-console/internal/features/analytics/handler"
	analyticsservice "admin-console/internal/features/analytics/service"
	authadapter "admin-console/internal/features/auth/adapters"
	authhandler "admin-console/internal/features/auth/handler"
	authservice "admin-console/internal/features/auth/service"
	banneradapter "admin-console/internal/features/banners/adapters"
	bannerhandler "admin-console/internal/features/banners/handler"
	bannerservice "admin-console/internal/features/banners/service"
	bookingadapter "admin-console/internal/features/bookings/adapters"
	bookinghandler "admin-console/internal/features/bookings/handler"
	bookingservice "admin-console/internal/features/bookings/service"
	mediaadapter "admin-console/internal/features/media/adapters"
	mediahandler "admin-console/internal/features/media/handler"
	mediaservice "admin-console/internal/features/media/service"
	orderadapter "admin-console/internal/features/orders/adapters"
	orderdomain "admin-console/internal/features/orders/domain"
	orderhandler "admin-console/internal/features/orders/handler"
	orderservice "admin-console/internal/features/orders/service"
	productadapter "admin-console/internal/features/products/adapters"
	producthandler "admin-console/internal/features/products/handler"
	productservice "admin-console/internal/features/products/service"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title Admin Console API
// @version 1.0
// @description Back-office API for orders, sales analytics, gym bookings and storefront catalog content.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey TokenAuth
// @in header
// @name token
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("timezone", cfg.Timezone),
	)

	loc, err := cfg.Location()
	if err != nil {
		l.Fatal("Invalid timezone", zap.Error(err))
	}

	// Snapshot cache
	snapshotCache, err := cache.NewRedisAdapter(cfg.Cache.RedisURL, "admin-console")
	if err != nil {
		l.Fatal("Failed to create Redis cache", zap.Error(err))
	}
	defer snapshotCache.Close()

	backend := httpclient.NewAPIClient(cfg.Backend.URL, cfg.Backend.Timeout())
	classifier := orderdomain.NewClassifier(cfg.Payments.Methods()...)

	// Orders
	orderSvc := orderservice.NewOrderService(
		orderadapter.NewBackendAdapter(backend),
		orderadapter.NewProductAdapter(backend, cfg.Backend.ProductImageWorkers),
		orderadapter.NewRedisSnapshotRepository(snapshotCache, cfg.Cache.SnapshotTTL()),
		classifier,
		loc,
	)

	// Analytics reads the same session snapshot as the order listing.
	analyticsSvc := analyticsservice.NewAnalyticsService(orderSvc, classifier, loc)

	// Bookings
	bookingSvc := bookingservice.NewBookingService(bookingadapter.NewBackendAdapter(backend))

	// Catalog and storefront content
	productSvc := productservice.NewProductService(productadapter.NewBackendAdapter(backend))
	bannerSvc := bannerservice.NewBannerService(banneradapter.NewBackendAdapter(backend))
	mediaSvc := mediaservice.NewMediaService(mediaadapter.NewBackendAdapter(backend))

	// Auth
	authSvc := authservice.NewAuthService(authadapter.NewBackendAdapter(backend), cfg.Auth.JWTSecret)
	if cfg.Auth.JWTSecret == "" {
		l.Warn("AUTH_JWT_SECRET is not set, role claims are trusted without signature verification")
	}

	srv := server.New(cfg, snapshotCache)

	registerRoutes(srv.App, authSvc, handlers{
		auth:      authhandler.NewAuthHandler(authSvc),
		orders:    orderhandler.NewOrderHandler(orderSvc),
		analytics: analyticshandler.NewAnalyticsHandler(analyticsSvc),
		bookings:  bookinghandler.NewBookingHandler(bookingSvc),
		banners:   bannerhandler.NewBannerHandler(bannerSvc),
		media:     mediahandler.NewMediaHandler(mediaSvc),
		products:  producthandler.NewProductHandler(productSvc),
	})

	go func() {
		if err := srv.Run(); err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("Shutting down server")
	if err := srv.Shutdown(shutdownTimeout); err != nil {
		l.Error("Server shutdown failed", zap.Error(err))
	}
}
