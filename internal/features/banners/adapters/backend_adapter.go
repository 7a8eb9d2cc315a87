package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"admin-console/internal/core/httpclient"
	"admin-console/internal/core/logger"
	"admin-console/internal/features/banners/domain"

	"go.uber.org/zap"
)

type backendBanner struct {
	ID    string           `json:"_id"`
	Image httpclient.Image `json:"image"`
	Link  string           `json:"link"`
	Title string           `json:"title"`
}

type listBannersResponse struct {
	httpclient.Envelope
	Banners []backendBanner `json:"banners"`
}

// BackendAdapter implements ports.BannerBackend against /api/banner.
type BackendAdapter struct {
	client *httpclient.APIClient
}

// NewBackendAdapter creates a new instance of BackendAdapter.
func NewBackendAdapter(client *httpclient.APIClient) *BackendAdapter {
	return &BackendAdapter{client: client}
}

// ListBanners fetches every banner. The listing is public on the backend.
func (a *BackendAdapter) ListBanners(ctx context.Context) ([]domain.Banner, error) {
	var resp listBannersResponse
	if err := a.client.Do(ctx, http.MethodGet, "/api/banner/list", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}

	logger.Named("banners.backend").Debug("Fetched banners", zap.Int("count", len(resp.Banners)))

	banners := make([]domain.Banner, 0, len(resp.Banners))
	for _, b := range resp.Banners {
		banners = append(banners, domain.Banner{
			ID:    b.ID,
			Image: string(b.Image),
			Link:  b.Link,
			Title: b.Title,
		})
	}
	return banners, nil
}

// DeleteBanner removes one banner.
func (a *BackendAdapter) DeleteBanner(ctx context.Context, token, id string) error {
	if err := a.client.Do(ctx, http.MethodDelete, "/api/banner/"+url.PathEscape(id), token, nil, nil); err != nil {
		return fmt.Errorf("failed to delete banner %s: %w", id, err)
	}
	return nil
}
