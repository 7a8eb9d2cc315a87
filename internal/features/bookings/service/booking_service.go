package service

import (
	"context"
	"fmt"

	"admin-console/internal/features/bookings/domain"
	"admin-console/internal/features/bookings/ports"
)

// BookingService serves facility bookings and branch rosters.
type BookingService struct {
	backend ports.BookingBackend
}

// NewBookingService creates a new BookingService.
func NewBookingService(backend ports.BookingBackend) *BookingService {
	return &BookingService{backend: backend}
}

// List returns every booking matching filter, with stats over all bookings.
func (s *BookingService) List(ctx context.Context, token string, filter domain.Filter) (*domain.Listing, error) {
	all, err := s.backend.ListBookings(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	listing := domain.NewListing(all, filter)
	return &listing, nil
}

// BranchBookings returns the bookings of the caller's branch.
func (s *BookingService) BranchBookings(ctx context.Context, token string) (*domain.Roster[domain.Booking], error) {
	gym, bookings, err := s.backend.BranchBookings(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	items := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, b.WithDefaults())
	}

	return &domain.Roster[domain.Booking]{Gym: gym, Count: len(items), Items: items}, nil
}

// BranchMembers returns the members of the caller's branch.
func (s *BookingService) BranchMembers(ctx context.Context, token string) (*domain.Roster[domain.Member], error) {
	gym, members, err := s.backend.BranchMembers(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if members == nil {
		members = []domain.Member{}
	}

	return &domain.Roster[domain.Member]{Gym: gym, Count: len(members), Items: members}, nil
}
