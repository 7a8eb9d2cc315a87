package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"admin-console/internal/core/cache"
	"admin-console/internal/features/orders/ports"
)

const snapshotKeyPrefix = "orders_snapshot:"

// RedisSnapshotRepository implements ports.SnapshotRepository on top of the cache.
type RedisSnapshotRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisSnapshotRepository creates a repository whose snapshots expire after ttl (0 keeps them).
func NewRedisSnapshotRepository(c cache.Cache, ttl time.Duration) *RedisSnapshotRepository {
	return &RedisSnapshotRepository{
		cache: c,
		ttl:   ttl,
	}
}

// Save stores the snapshot under key.
func (r *RedisSnapshotRepository) Save(ctx context.Context, key string, snapshot *ports.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := r.cache.Set(ctx, snapshotKeyPrefix+key, data, r.ttl); err != nil {
		return fmt.Errorf("failed to save snapshot to cache: %w", err)
	}

	return nil
}

// Get retrieves the snapshot stored under key, or nil when there is none.
func (r *RedisSnapshotRepository) Get(ctx context.Context, key string) (*ports.Snapshot, error) {
	data, err := r.cache.Get(ctx, snapshotKeyPrefix+key)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot from cache: %w", err)
	}

	var snapshot ports.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}

// Delete removes the snapshot stored under key.
func (r *RedisSnapshotRepository) Delete(ctx context.Context, key string) error {
	if err := r.cache.Delete(ctx, snapshotKeyPrefix+key); err != nil {
		return fmt.Errorf("failed to delete snapshot from cache: %w", err)
	}
	return nil
}
