package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"admin-console/internal/core/logger"
	"admin-console/internal/features/orders/domain"
	"admin-console/internal/features/orders/ports"

	"go.uber.org/zap"
)

// OrderService serves listings and commands from a per-session order snapshot.
type OrderService struct {
	backend    ports.OrderBackend
	catalog    ports.ProductCatalog
	snapshots  ports.SnapshotRepository
	classifier *domain.Classifier
	loc        *time.Location
	now        func() time.Time

	// mu guards the sequences map. Each sequence has its own lock.
	mu        sync.Mutex
	sequences map[string]*sequence
}

// sequence tracks fetches for one snapshot key. It lives only while some
// operation on the key holds a reference.
type sequence struct {
	refs int

	mu      sync.Mutex
	issued  uint64
	applied uint64
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(
	backend ports.OrderBackend,
	catalog ports.ProductCatalog,
	snapshots ports.SnapshotRepository,
	classifier *domain.Classifier,
	loc *time.Location,
) *OrderService {
	return &OrderService{
		backend:    backend,
		catalog:    catalog,
		snapshots:  snapshots,
		classifier: classifier,
		loc:        loc,
		now:        time.Now,
		sequences:  make(map[string]*sequence),
	}
}

// SnapshotKey derives the storage key of a session from its credential.
func SnapshotKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Orders returns the session snapshot's orders. A cold snapshot costs one backend round trip.
func (s *OrderService) Orders(ctx context.Context, token string) ([]domain.Order, error) {
	key := SnapshotKey(token)

	snapshot, err := s.snapshots.Get(ctx, key)
	if err != nil {
		logger.Named("orders.service").Warn("Snapshot read failed, fetching from backend", zap.Error(err))
	}
	if snapshot != nil {
		return snapshot.Orders, nil
	}

	snapshot, err = s.fetch(ctx, token, key)
	if err != nil {
		return nil, err
	}
	return snapshot.Orders, nil
}

// Refresh re-fetches the session snapshot.
func (s *OrderService) Refresh(ctx context.Context, token string) (*ports.Snapshot, error) {
	return s.fetch(ctx, token, SnapshotKey(token))
}

// List returns the listable orders matching filter with their derived totals and images.
func (s *OrderService) List(ctx context.Context, token string, filter domain.ListFilter) ([]domain.OrderView, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	orders, err := s.Orders(ctx, token)
	if err != nil {
		return nil, err
	}

	listed := domain.List(orders, filter, s.classifier, s.loc)

	var images map[string]string
	if ids := domain.ProductIDs(listed); len(ids) > 0 {
		images = s.catalog.Images(ctx, token, ids)
	}

	views := make([]domain.OrderView, 0, len(listed))
	for _, o := range listed {
		views = append(views, domain.NewOrderView(o, s.classifier, images))
	}
	return views, nil
}

// UpdateStatus assigns a new status to an order.
func (s *OrderService) UpdateStatus(ctx context.Context, token, orderID, status string) error {
	if err := requireID(orderID); err != nil {
		return err
	}
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return err
	}

	if err := s.backend.SetStatus(ctx, token, orderID, parsed); err != nil {
		return fmt.Errorf("service: %w", err)
	}

	s.afterMutation(ctx, token)
	return nil
}

// UpdateNotes replaces the admin notes of an order.
func (s *OrderService) UpdateNotes(ctx context.Context, token, orderID, notes string) error {
	if err := requireID(orderID); err != nil {
		return err
	}

	if err := s.backend.SetNotes(ctx, token, orderID, notes); err != nil {
		return fmt.Errorf("service: %w", err)
	}

	s.afterMutation(ctx, token)
	return nil
}

// UpdateTrackingURL replaces the tracking URL of an order. An empty URL clears it.
func (s *OrderService) UpdateTrackingURL(ctx context.Context, token, orderID, trackingURL string) error {
	if err := requireID(orderID); err != nil {
		return err
	}

	if err := s.backend.SetTrackingURL(ctx, token, orderID, strings.TrimSpace(trackingURL)); err != nil {
		return fmt.Errorf("service: %w", err)
	}

	s.afterMutation(ctx, token)
	return nil
}

// Cancel cancels an order. Without notifyEmail the order's contact email is notified.
func (s *OrderService) Cancel(ctx context.Context, token, orderID, notifyEmail string) (string, error) {
	if err := requireID(orderID); err != nil {
		return "", err
	}

	if notifyEmail == "" {
		orders, err := s.Orders(ctx, token)
		if err != nil {
			return "", err
		}
		for _, o := range orders {
			if o.ID == orderID {
				notifyEmail = o.Address.Email
				break
			}
		}
	}

	msg, err := s.backend.Cancel(ctx, token, orderID, notifyEmail)
	if err != nil {
		return "", fmt.Errorf("service: %w", err)
	}

	s.afterMutation(ctx, token)
	return msg, nil
}

// fetch loads the orders from the backend and stores them unless a newer fetch
// already landed or the snapshot was invalidated after this fetch was issued.
func (s *OrderService) fetch(ctx context.Context, token, key string) (*ports.Snapshot, error) {
	st := s.acquire(key)
	defer s.release(key, st)

	st.mu.Lock()
	st.issued++
	seq := st.issued
	st.mu.Unlock()

	orders, err := s.backend.ListOrders(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	snapshot := &ports.Snapshot{
		Sequence:  seq,
		FetchedAt: s.now(),
		Orders:    orders,
	}

	log := logger.Named("orders.service")

	st.mu.Lock()
	defer st.mu.Unlock()

	if seq <= st.applied {
		log.Debug("Discarding superseded snapshot", zap.Uint64("sequence", seq), zap.Uint64("applied", st.applied))
		if current, err := s.snapshots.Get(ctx, key); err == nil && current != nil {
			return current, nil
		}
		return snapshot, nil
	}
	st.applied = seq

	if err := s.snapshots.Save(ctx, key, snapshot); err != nil {
		log.Warn("Failed to store snapshot", zap.Error(err))
	}

	return snapshot, nil
}

func (s *OrderService) acquire(key string) *sequence {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sequences[key]
	if !ok {
		st = &sequence{}
		s.sequences[key] = st
	}
	st.refs++
	return st
}

// release drops the sequence once nothing holds it. A later fetch starts a
// fresh sequence, which is safe because no older fetch is left to race it.
func (s *OrderService) release(key string, st *sequence) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st.refs--
	if st.refs == 0 {
		delete(s.sequences, key)
	}
}

// afterMutation re-fetches the snapshot. When that fails the snapshot is dropped
// and every fetch issued so far is marked superseded, so the next read goes to
// the backend and no pre-mutation response can be stored.
func (s *OrderService) afterMutation(ctx context.Context, token string) {
	key := SnapshotKey(token)

	st := s.acquire(key)
	defer s.release(key, st)

	if _, err := s.Refresh(ctx, token); err == nil {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	st.applied = st.issued
	if err := s.snapshots.Delete(ctx, key); err != nil {
		logger.Named("orders.service").Warn("Failed to invalidate snapshot", zap.Error(err))
	}
}

func requireID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return domain.ErrOrderIDRequired
	}
	return nil
}
