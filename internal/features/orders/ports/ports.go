package ports

import (
	"context"
	"time"

	"admin-console/internal/features/orders/domain"
)

// OrderBackend is the shop backend that owns orders.
// This is a Secondary Port (Driven Port). token is the admin credential forwarded as-is.
type OrderBackend interface {
	// ListOrders returns the full order collection.
	ListOrders(ctx context.Context, token string) ([]domain.Order, error)
	// SetStatus assigns a new fulfilment status.
	SetStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) error
	// SetNotes replaces the administrator notes.
	SetNotes(ctx context.Context, token, orderID, notes string) error
	// SetTrackingURL replaces the shipment tracking URL.
	SetTrackingURL(ctx context.Context, token, orderID, trackingURL string) error
	// Cancel cancels the order; the backend notifies notifyEmail. Returns the backend message.
	Cancel(ctx context.Context, token, orderID, notifyEmail string) (string, error)
}

// ProductCatalog resolves display images for products referenced by line items.
type ProductCatalog interface {
	// Images returns product id -> first image URL. Products that cannot be resolved are omitted.
	Images(ctx context.Context, token string, productIDs []string) map[string]string
}

// Snapshot is a point-in-time copy of the order collection.
type Snapshot struct {
	// Sequence orders fetches within one snapshot key; higher is newer.
	Sequence  uint64         `json:"sequence"`
	FetchedAt time.Time      `json:"fetched_at"`
	Orders    []domain.Order `json:"orders"`
}

// SnapshotRepository stores the latest snapshot per session key.
type SnapshotRepository interface {
	// Get returns the stored snapshot, or nil when there is none.
	Get(ctx context.Context, key string) (*Snapshot, error)
	Save(ctx context.Context, key string, snapshot *Snapshot) error
	Delete(ctx context.Context, key string) error
}

// OrderService is the driving port used by the HTTP layer and by analytics.
type OrderService interface {
	// Orders returns the session snapshot's orders, fetching them on a cold snapshot.
	Orders(ctx context.Context, token string) ([]domain.Order, error)
	// Refresh re-fetches the session snapshot.
	Refresh(ctx context.Context, token string) (*Snapshot, error)
	// List returns the listing rows matching filter.
	List(ctx context.Context, token string, filter domain.ListFilter) ([]domain.OrderView, error)
	UpdateStatus(ctx context.Context, token, orderID, status string) error
	UpdateNotes(ctx context.Context, token, orderID, notes string) error
	UpdateTrackingURL(ctx context.Context, token, orderID, trackingURL string) error
	// Cancel cancels the order and returns the backend confirmation message.
	// An empty notifyEmail falls back to the order's contact email.
	Cancel(ctx context.Context, token, orderID, notifyEmail string) (string, error)
}
