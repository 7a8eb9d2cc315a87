package ports

import (
	"context"

	"admin-console/internal/features/media/domain"
)

// MediaBackend reads and deletes gallery images on the shop backend.
// This is a Secondary Port (Driven Port).
type MediaBackend interface {
	ListMedia(ctx context.Context) ([]domain.Item, error)
	DeleteMedia(ctx context.Context, token, id string) error
}

// MediaService is the driving port of the media gallery.
type MediaService interface {
	List(ctx context.Context) ([]domain.Item, error)
	Remove(ctx context.Context, token, id string) error
}
