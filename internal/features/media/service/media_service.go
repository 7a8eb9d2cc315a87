package service

import (
	"context"
	"fmt"
	"strings"

	"admin-console/internal/features/media/domain"
	"admin-console/internal/features/media/ports"
)

// MediaService serves the gallery to administrators.
type MediaService struct {
	backend ports.MediaBackend
}

// NewMediaService creates a new MediaService.
func NewMediaService(backend ports.MediaBackend) *MediaService {
	return &MediaService{backend: backend}
}

// List returns the gallery, newest first.
func (s *MediaService) List(ctx context.Context) ([]domain.Item, error) {
	items, err := s.backend.ListMedia(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return domain.Newest(items), nil
}

// Remove deletes a gallery image.
func (s *MediaService) Remove(ctx context.Context, token, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrMediaIDRequired
	}

	if err := s.backend.DeleteMedia(ctx, token, id); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	return nil
}
