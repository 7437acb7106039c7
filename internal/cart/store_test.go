package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (Store, *miniredis.Miniredis) {
	t.Helper()

	srv, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(srv.Close)

	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewStore(rdb), srv
}

func TestStore_IncrItem(t *testing.T) {
	store, srv := newTestStore(t)
	ctx := context.Background()

	t.Run("Accumulates", func(t *testing.T) {
		qty, err := store.IncrItem(ctx, 1, 10, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), qty)

		qty, err = store.IncrItem(ctx, 1, 10, 3)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), qty)
	})

	t.Run("SetsTTL", func(t *testing.T) {
		_, err := store.IncrItem(ctx, 2, 10, 1)
		assert.NoError(t, err)
		assert.Greater(t, srv.TTL("cart:2"), time.Duration(0))
	})

	t.Run("SeparateSessions", func(t *testing.T) {
		_, err := store.IncrItem(ctx, 3, 10, 7)
		assert.NoError(t, err)

		items, err := store.Items(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, 5, items[10])
	})
}

func TestStore_RemoveItem(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.IncrItem(ctx, 1, 10, 2)
	require.NoError(t, err)

	t.Run("Removes", func(t *testing.T) {
		err := store.RemoveItem(ctx, 1, 10)
		assert.NoError(t, err)

		items, err := store.Items(ctx, 1)
		assert.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("AbsentIsNoop", func(t *testing.T) {
		err := store.RemoveItem(ctx, 1, 999)
		assert.NoError(t, err)

		err = store.RemoveItem(ctx, 42, 10)
		assert.NoError(t, err)
	})
}

func TestStore_Items(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	t.Run("EmptyCart", func(t *testing.T) {
		items, err := store.Items(ctx, 1)
		assert.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("ReturnsMapping", func(t *testing.T) {
		_, err := store.IncrItem(ctx, 1, 10, 2)
		require.NoError(t, err)
		_, err = store.IncrItem(ctx, 1, 20, 1)
		require.NoError(t, err)

		items, err := store.Items(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, map[uint]int{10: 2, 20: 1}, items)
	})
}

func TestStore_Clear(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.IncrItem(ctx, 1, 10, 2)
	require.NoError(t, err)

	err = store.Clear(ctx, 1)
	assert.NoError(t, err)

	items, err := store.Items(ctx, 1)
	assert.NoError(t, err)
	assert.Empty(t, items)

	// Idempotent
	assert.NoError(t, store.Clear(ctx, 1))
}
