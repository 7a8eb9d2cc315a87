package service

import (
	"context"
	"fmt"
	"strings"

	"admin-console/internal/features/banners/domain"
	"admin-console/internal/features/banners/ports"
)

// BannerService implements ports.BannerService.
type BannerService struct {
	backend ports.BannerBackend
}

// NewBannerService creates a new BannerService.
func NewBannerService(backend ports.BannerBackend) *BannerService {
	return &BannerService{backend: backend}
}

// List returns every banner with its link kind.
func (s *BannerService) List(ctx context.Context) ([]domain.Banner, error) {
	banners, err := s.backend.ListBanners(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list banners: %w", err)
	}

	out := make([]domain.Banner, 0, len(banners))
	for _, b := range banners {
		out = append(out, b.WithLinkKind())
	}
	return out, nil
}

// Remove deletes a banner.
func (s *BannerService) Remove(ctx context.Context, token, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrBannerIDRequired
	}

	if err := s.backend.DeleteBanner(ctx, token, id); err != nil {
		return fmt.Errorf("service: failed to remove banner: %w", err)
	}
	return nil
}
