package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*InMemorySummaryCache, *time.Time) {
	t.Helper()
	c := NewInMemorySummaryCache(time.Hour)
	t.Cleanup(func() { _ = c.Close() })

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestInMemorySummaryCache_GetSet(t *testing.T) {
	ctx := context.Background()

	t.Run("miss on unknown key", func(t *testing.T) {
		c, _ := newTestCache(t)
		value, ok, err := c.Get(ctx, "payables:bills")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, value)
	})

	t.Run("hit before expiry", func(t *testing.T) {
		c, _ := newTestCache(t)
		require.NoError(t, c.Set(ctx, "payables:bills", []byte(`{"total":80}`), time.Minute))

		value, ok, err := c.Get(ctx, "payables:bills")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"total":80}`, string(value))
	})

	t.Run("miss after expiry", func(t *testing.T) {
		c, now := newTestCache(t)
		require.NoError(t, c.Set(ctx, "summary", []byte("x"), time.Minute))

		*now = now.Add(time.Minute)
		_, ok, err := c.Get(ctx, "summary")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("non-positive ttl stores nothing", func(t *testing.T) {
		c, _ := newTestCache(t)
		require.NoError(t, c.Set(ctx, "summary", []byte("x"), 0))
		assert.Zero(t, c.Size())
	})

	t.Run("stored value is isolated from caller buffer", func(t *testing.T) {
		c, _ := newTestCache(t)
		buf := []byte("abc")
		require.NoError(t, c.Set(ctx, "k", buf, time.Minute))
		buf[0] = 'z'

		value, _, _ := c.Get(ctx, "k")
		value[1] = 'z'

		again, _, _ := c.Get(ctx, "k")
		assert.Equal(t, "abc", string(again))
	})
}

func TestInMemorySummaryCache_Sweep(t *testing.T) {
	ctx := context.Background()
	c, now := newTestCache(t)

	require.NoError(t, c.Set(ctx, "short", []byte("1"), time.Second))
	require.NoError(t, c.Set(ctx, "long", []byte("2"), time.Hour))
	assert.Equal(t, 2, c.Size())

	*now = now.Add(time.Minute)
	c.sweep()

	assert.Equal(t, 1, c.Size())
	_, ok, _ := c.Get(ctx, "long")
	assert.True(t, ok)
}

func TestInMemorySummaryCache_Concurrent(t *testing.T) {
	c := NewInMemorySummaryCache(time.Millisecond)
	defer c.Close()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Set(ctx, "receivables", []byte("v"), time.Second)
			_, _, _ = c.Get(ctx, "receivables")
		}()
	}
	wg.Wait()

	_, ok, err := c.Get(ctx, "receivables")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInMemorySummaryCache_CloseIdempotent(t *testing.T) {
	c := NewInMemorySummaryCache(time.Minute)
	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}
