package ports

import (
	"context"

	"admin-console/internal/features/banners/domain"
)

// BannerBackend reads and deletes banners on the shop backend.
// This is a Secondary Port (Driven Port).
type BannerBackend interface {
	ListBanners(ctx context.Context) ([]domain.Banner, error)
	DeleteBanner(ctx context.Context, token, id string) error
}

// BannerService defines the primary port for banner operations.
type BannerService interface {
	List(ctx context.Context) ([]domain.Banner, error)
	Remove(ctx context.Context, token, id string) error
}
