package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"admin-console/internal/core/httpclient"
	"admin-console/internal/core/logger"
	"admin-console/internal/features/bookings/domain"

	"go.uber.org/zap"
)

type backendBooking struct {
	ID        string                 `json:"_id"`
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	Phone     httpclient.LooseString `json:"phone"`
	Gym       string                 `json:"gym"`
	Facility  string                 `json:"facility"`
	Date      string                 `json:"date"`
	TimeSlot  string                 `json:"timeSlot"`
	Status    string                 `json:"status"`
	CreatedAt httpclient.Time        `json:"createdAt"`
}

type backendMember struct {
	Name         string                 `json:"name"`
	Email        string                 `json:"email"`
	Phone        httpclient.LooseString `json:"phone"`
	BookingCount int                    `json:"bookingCount"`
	FirstBooking httpclient.Time        `json:"firstBooking"`
}

type bookingsResponse struct {
	httpclient.Envelope
	Gym      string           `json:"gym"`
	Bookings []backendBooking `json:"bookings"`
}

type membersResponse struct {
	httpclient.Envelope
	Gym     string          `json:"gym"`
	Members []backendMember `json:"members"`
}

// BackendAdapter implements ports.BookingBackend against /api/bookings.
type BackendAdapter struct {
	client *httpclient.APIClient
}

// NewBackendAdapter creates a new instance of BackendAdapter.
func NewBackendAdapter(client *httpclient.APIClient) *BackendAdapter {
	return &BackendAdapter{client: client}
}

// ListBookings fetches every booking.
func (a *BackendAdapter) ListBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	var resp bookingsResponse
	if err := a.client.Do(ctx, http.MethodGet, "/api/bookings/list", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	logger.Named("bookings.backend").Debug("Fetched bookings", zap.Int("count", len(resp.Bookings)))

	return mapBookings(resp.Bookings), nil
}

// BranchBookings fetches the bookings of the caller's branch.
func (a *BackendAdapter) BranchBookings(ctx context.Context, token string) (string, []domain.Booking, error) {
	var resp bookingsResponse
	if err := a.client.Do(ctx, http.MethodGet, "/api/bookings/branch/bookings", token, nil, &resp); err != nil {
		return "", nil, fmt.Errorf("failed to list branch bookings: %w", err)
	}
	return resp.Gym, mapBookings(resp.Bookings), nil
}

// BranchMembers fetches the members of the caller's branch.
func (a *BackendAdapter) BranchMembers(ctx context.Context, token string) (string, []domain.Member, error) {
	var resp membersResponse
	if err := a.client.Do(ctx, http.MethodGet, "/api/bookings/branch/members", token, nil, &resp); err != nil {
		return "", nil, fmt.Errorf("failed to list branch members: %w", err)
	}

	members := make([]domain.Member, 0, len(resp.Members))
	for _, m := range resp.Members {
		members = append(members, domain.Member{
			Name:         m.Name,
			Email:        m.Email,
			Phone:        string(m.Phone),
			BookingCount: m.BookingCount,
			FirstBooking: time.Time(m.FirstBooking),
		})
	}
	return resp.Gym, members, nil
}

func mapBookings(in []backendBooking) []domain.Booking {
	out := make([]domain.Booking, 0, len(in))
	for _, b := range in {
		out = append(out, domain.Booking{
			ID:        b.ID,
			Name:      b.Name,
			Email:     b.Email,
			Phone:     string(b.Phone),
			Gym:       b.Gym,
			Facility:  b.Facility,
			Date:      b.Date,
			TimeSlot:  b.TimeSlot,
			Status:    b.Status,
			CreatedAt: time.Time(b.CreatedAt),
		})
	}
	return out
}
