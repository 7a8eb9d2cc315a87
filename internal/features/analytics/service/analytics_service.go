package service

import (
	"context"
	"fmt"
	"time"

	"admin-console/internal/features/analytics/domain"
	"admin-console/internal/features/analytics/ports"
	orders "admin-console/internal/features/orders/domain"
)

// AnalyticsService builds sales reports from the session's order snapshot.
type AnalyticsService struct {
	source     ports.OrderSource
	classifier *orders.Classifier
	loc        *time.Location
	now        func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(source ports.OrderSource, classifier *orders.Classifier, loc *time.Location) *AnalyticsService {
	return &AnalyticsService{
		source:     source,
		classifier: classifier,
		loc:        loc,
		now:        time.Now,
	}
}

// Report resolves q and aggregates every order of the session.
func (s *AnalyticsService) Report(ctx context.Context, token string, q domain.Query) (*domain.Report, error) {
	now := s.now().In(s.loc)

	sel, chartYear, err := q.Resolve(now.Year())
	if err != nil {
		return nil, err
	}

	list, err := s.source.Orders(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load orders: %w", err)
	}

	report := domain.Aggregate(domain.Input{
		Orders:    list,
		Window:    sel.Window(),
		ChartYear: chartYear,
		Now:       now,
		Location:  s.loc,
	}, s.classifier)

	return &report, nil
}
