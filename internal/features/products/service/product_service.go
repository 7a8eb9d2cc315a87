package service

import (
	"context"
	"fmt"
	"strings"

	"admin-console/internal/features/products/domain"
	"admin-console/internal/features/products/ports"
)

// ProductService serves the catalog listing and removals.
type ProductService struct {
	backend ports.ProductBackend
}

// NewProductService creates a new ProductService.
func NewProductService(backend ports.ProductBackend) *ProductService {
	return &ProductService{backend: backend}
}

// List returns the products matching search with their effective prices.
func (s *ProductService) List(ctx context.Context, search string) ([]domain.View, error) {
	products, err := s.backend.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	matched := domain.Search(products, search)
	views := make([]domain.View, 0, len(matched))
	for _, p := range matched {
		views = append(views, domain.NewView(p))
	}
	return views, nil
}

// Remove deletes a product and returns the backend's message.
func (s *ProductService) Remove(ctx context.Context, token, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", domain.ErrProductIDRequired
	}

	msg, err := s.backend.RemoveProduct(ctx, token, id)
	if err != nil {
		return "", fmt.Errorf("service: %w", err)
	}
	return msg, nil
}
