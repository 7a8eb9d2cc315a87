package ports

import (
	"context"

	"admin-console/internal/features/analytics/domain"
	orders "admin-console/internal/features/orders/domain"
)

// OrderSource supplies the full order collection of a session.
type OrderSource interface {
	Orders(ctx context.Context, token string) ([]orders.Order, error)
}

// AnalyticsService is the driving port of the analytics feature.
type AnalyticsService interface {
	Report(ctx context.Context, token string, q domain.Query) (*domain.Report, error)
}
