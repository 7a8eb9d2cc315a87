package adapter

import (
	"context"
	"testing"
	"time"

	"admin-console/internal/core/cache"
	"admin-console/internal/features/orders/domain"
	"admin-console/internal/features/orders/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSnapshotRepo(t *testing.T, ttl time.Duration) (*RedisSnapshotRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := cache.NewRedisAdapter("redis://"+mr.Addr(), "admin")
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	return NewRedisSnapshotRepository(c, ttl), mr
}

func TestRedisSnapshotRepository_SaveGet(t *testing.T) {
	repo, mr := newSnapshotRepo(t, time.Minute)
	ctx := context.Background()

	snapshot := &ports.Snapshot{
		Sequence:  3,
		FetchedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Orders: []domain.Order{{
			ID:     "o1",
			Status: domain.OrderStatusDelivered,
			Date:   time.Date(2025, 2, 28, 12, 0, 0, 0, time.UTC),
			Items:  []domain.LineItem{{Name: "Mat", Price: 1000, Discount: 10, Quantity: 2}},
		}},
	}

	require.NoError(t, repo.Save(ctx, "session-a", snapshot))
	assert.True(t, mr.Exists("admin:orders_snapshot:session-a"))

	got, err := repo.Get(ctx, "session-a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint64(3), got.Sequence)
	assert.True(t, snapshot.FetchedAt.Equal(got.FetchedAt))
	require.Len(t, got.Orders, 1)
	assert.Equal(t, int64(1800), got.Orders[0].ActualTotal())
}

func TestRedisSnapshotRepository_GetMissing(t *testing.T) {
	repo, _ := newSnapshotRepo(t, time.Minute)

	got, err := repo.Get(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisSnapshotRepository_Expires(t *testing.T) {
	repo, mr := newSnapshotRepo(t, time.Second)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "k", &ports.Snapshot{Sequence: 1}))
	mr.FastForward(2 * time.Second)

	got, err := repo.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisSnapshotRepository_Delete(t *testing.T) {
	repo, _ := newSnapshotRepo(t, 0)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "k", &ports.Snapshot{Sequence: 1}))
	require.NoError(t, repo.Delete(ctx, "k"))

	got, err := repo.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisSnapshotRepository_CorruptData(t *testing.T) {
	repo, mr := newSnapshotRepo(t, 0)
	require.NoError(t, mr.Set("admin:orders_snapshot:k", "{not json"))

	_, err := repo.Get(context.Background(), "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal snapshot")
}
