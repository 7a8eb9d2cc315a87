package main

import (
	analyticshandler "admin-console/internal/features/analytics/handler"
	authdomain "admin-console/internal/features/auth/domain"
	authhandler "admin-console/internal/features/auth/handler"
	authports "admin-console/internal/features/auth/ports"
	bannerhandler "admin-console/internal/features/banners/handler"
	bookinghandler "admin-console/internal/features/bookings/handler"
	mediahandler "admin-console/internal/features/media/handler"
	orderhandler "admin-console/internal/features/orders/handler"
	producthandler "admin-console/internal/features/products/handler"

	"github.com/gofiber/fiber/v2"
)

// handlers groups the HTTP handlers of every feature.
type handlers struct {
	auth      *authhandler.AuthHandler
	orders    *orderhandler.OrderHandler
	analytics *analyticshandler.AnalyticsHandler
	bookings  *bookinghandler.BookingHandler
	banners   *bannerhandler.BannerHandler
	media     *mediahandler.MediaHandler
	products  *producthandler.ProductHandler
}

// registerRoutes mounts the public routes and one group per role.
// A principal only reaches the group of its own role.
func registerRoutes(app *fiber.App, authn authports.Authenticator, h handlers) {
	authenticate := authhandler.Authenticate(authn)

	app.Post("/auth/login", h.auth.Login)
	app.Get("/auth/me", authenticate, h.auth.Me)

	admin := app.Group("/admin", authenticate, authhandler.RequireRole(authdomain.RoleAdmin))
	admin.Get("/orders", h.orders.ListOrders)
	admin.Post("/orders/refresh", h.orders.Refresh)
	admin.Put("/orders/:id/status", h.orders.UpdateStatus)
	admin.Put("/orders/:id/notes", h.orders.UpdateNotes)
	admin.Put("/orders/:id/tracking", h.orders.UpdateTracking)
	admin.Post("/orders/:id/cancel", h.orders.Cancel)
	admin.Get("/analytics", h.analytics.GetReport)
	admin.Get("/bookings", h.bookings.ListBookings)
	admin.Get("/products", h.products.ListProducts)
	admin.Delete("/products/:id", h.products.RemoveProduct)
	admin.Get("/banners", h.banners.ListBanners)
	admin.Delete("/banners/:id", h.banners.RemoveBanner)
	admin.Get("/media", h.media.ListMedia)
	admin.Delete("/media/:id", h.media.RemoveMedia)

	branch := app.Group("/branch", authenticate, authhandler.RequireRole(authdomain.RoleBranch))
	branch.Get("/bookings", h.bookings.BranchBookings)
	branch.Get("/members", h.bookings.BranchMembers)
}
