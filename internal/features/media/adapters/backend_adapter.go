package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"admin-console/internal/core/httpclient"
	"admin-console/internal/features/media/domain"
)

type backendMedia struct {
	ID        string           `json:"_id"`
	Image     httpclient.Image `json:"image"`
	Caption   string           `json:"caption"`
	CreatedAt httpclient.Time  `json:"createdAt"`
}

type listMediaResponse struct {
	httpclient.Envelope
	Media []backendMedia `json:"media"`
}

// BackendAdapter implements ports.MediaBackend against /api/media.
type BackendAdapter struct {
	client *httpclient.APIClient
}

// NewBackendAdapter creates a new instance of BackendAdapter.
func NewBackendAdapter(client *httpclient.APIClient) *BackendAdapter {
	return &BackendAdapter{client: client}
}

// ListMedia fetches the gallery. The listing is public on the backend.
func (a *BackendAdapter) ListMedia(ctx context.Context) ([]domain.Item, error) {
	var resp listMediaResponse
	if err := a.client.Do(ctx, http.MethodGet, "/api/media/list", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}

	items := make([]domain.Item, 0, len(resp.Media))
	for _, m := range resp.Media {
		items = append(items, domain.Item{
			ID:        m.ID,
			Image:     string(m.Image),
			Caption:   m.Caption,
			CreatedAt: time.Time(m.CreatedAt),
		})
	}
	return items, nil
}

// DeleteMedia removes one gallery image.
func (a *BackendAdapter) DeleteMedia(ctx context.Context, token, id string) error {
	if err := a.client.Do(ctx, http.MethodDelete, "/api/media/"+url.PathEscape(id), token, nil, nil); err != nil {
		return fmt.Errorf("failed to delete media %s: %w", id, err)
	}
	return nil
}
