package ports

import (
	"context"

	"admin-console/internal/features/bookings/domain"
)

// BookingBackend reads bookings from the shop backend.
// This is a Secondary Port (Driven Port).
type BookingBackend interface {
	// ListBookings returns every booking across branches (admin credential).
	ListBookings(ctx context.Context, token string) ([]domain.Booking, error)
	// BranchBookings returns the caller's gym name and its bookings (branch credential).
	BranchBookings(ctx context.Context, token string) (string, []domain.Booking, error)
	// BranchMembers returns the caller's gym name and its members (branch credential).
	BranchMembers(ctx context.Context, token string) (string, []domain.Member, error)
}

// BookingService is the driving port of the bookings feature.
type BookingService interface {
	List(ctx context.Context, token string, filter domain.Filter) (*domain.Listing, error)
	BranchBookings(ctx context.Context, token string) (*domain.Roster[domain.Booking], error)
	BranchMembers(ctx context.Context, token string) (*domain.Roster[domain.Member], error)
}
