package ports

import (
	"context"

	"admin-console/internal/features/products/domain"
)

// ProductBackend reads and removes catalog products on the shop backend.
// This is a Secondary Port (Driven Port).
type ProductBackend interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// RemoveProduct returns the backend's confirmation message.
	RemoveProduct(ctx context.Context, token, id string) (string, error)
}

// ProductService is the driving port of the product catalog.
type ProductService interface {
	List(ctx context.Context, search string) ([]domain.View, error)
	Remove(ctx context.Context, token, id string) (string, error)
}
