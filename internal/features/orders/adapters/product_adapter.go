package adapter

import (
	"context"
	"net/http"
	"sync"

	"admin-console/internal/core/httpclient"
	"admin-console/internal/core/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProductAdapter implements ports.ProductCatalog with /api/product/single lookups.
type ProductAdapter struct {
	client  *httpclient.APIClient
	workers int
}

// NewProductAdapter creates a ProductAdapter running at most workers lookups at once.
func NewProductAdapter(client *httpclient.APIClient, workers int) *ProductAdapter {
	if workers < 1 {
		workers = 1
	}
	return &ProductAdapter{
		client:  client,
		workers: workers,
	}
}

// Images resolves the first image of each product. Failed lookups are logged and left out.
func (a *ProductAdapter) Images(ctx context.Context, token string, productIDs []string) map[string]string {
	images := make(map[string]string, len(productIDs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	log := logger.Named("orders.products")

	for _, id := range productIDs {
		g.Go(func() error {
			var resp singleProductResponse
			err := a.client.Do(gctx, http.MethodPost, "/api/product/single", token, map[string]string{"productId": id}, &resp)
			if err != nil {
				log.Warn("Failed to fetch product image", zap.String("product_id", id), zap.Error(err))
				return nil
			}
			if resp.Product == nil || resp.Product.Image == "" {
				return nil
			}

			mu.Lock()
			images[id] = string(resp.Product.Image)
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()

	return images
}
