package adapter

import (
	"context"
	"fmt"
	"net/http"

	"admin-console/internal/core/httpclient"
	"admin-console/internal/core/logger"
	"admin-console/internal/features/products/domain"

	"go.uber.org/zap"
)

type backendProduct struct {
	ID                  string   `json:"_id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Price               float64  `json:"price"`
	Discount            float64  `json:"discount"`
	Category            string   `json:"category"`
	SubCategory         string   `json:"subCategory"`
	Image               []string `json:"image"`
	ManufacturerDetails string   `json:"manufacturerDetails"`
}

type listProductsResponse struct {
	httpclient.Envelope
	Products []backendProduct `json:"products"`
}

type removeProductRequest struct {
	ID string `json:"id"`
}

// BackendAdapter implements ports.ProductBackend against /api/product.
type BackendAdapter struct {
	client *httpclient.APIClient
}

// NewBackendAdapter creates a new instance of BackendAdapter.
func NewBackendAdapter(client *httpclient.APIClient) *BackendAdapter {
	return &BackendAdapter{client: client}
}

// ListProducts fetches the whole catalog. The listing is public on the backend.
func (a *BackendAdapter) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var resp listProductsResponse
	if err := a.client.Do(ctx, http.MethodGet, "/api/product/list", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	logger.Named("products.backend").Debug("Fetched products", zap.Int("count", len(resp.Products)))

	products := make([]domain.Product, 0, len(resp.Products))
	for _, p := range resp.Products {
		images := p.Image
		if images == nil {
			images = []string{}
		}
		products = append(products, domain.Product{
			ID:                  p.ID,
			Name:                p.Name,
			Description:         p.Description,
			Category:            p.Category,
			SubCategory:         p.SubCategory,
			Price:               p.Price,
			Discount:            p.Discount,
			Images:              images,
			ManufacturerDetails: p.ManufacturerDetails,
		})
	}
	return products, nil
}

// RemoveProduct deletes a product from the catalog.
func (a *BackendAdapter) RemoveProduct(ctx context.Context, token, id string) (string, error) {
	var resp httpclient.Envelope
	if err := a.client.Do(ctx, http.MethodPost, "/api/product/remove", token, removeProductRequest{ID: id}, &resp); err != nil {
		return "", fmt.Errorf("failed to remove product %s: %w", id, err)
	}
	return resp.Message, nil
}
