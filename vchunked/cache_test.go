package vchunked_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenchrcum/udcore-go/vchunked"
)

func TestL2CacheRoundTrip(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer client.Close()

	cache := vchunked.NewL2Cache[int](client, "points")
	ctx := context.Background()

	_, ok := cache.Get(ctx, 3)
	assert.False(t, ok, "empty cache must miss")

	cache.Put(ctx, 3, []int{10, 11, 12, 13})
	chunk, ok := cache.Get(ctx, 3)
	require.True(t, ok)
	assert.Equal(t, []int{10, 11, 12, 13}, chunk)

	// Chunks are namespaced: a different array's cache must not see them.
	other := vchunked.NewL2Cache[int](client, "normals")
	_, ok = other.Get(ctx, 3)
	assert.False(t, ok)
}

func TestArraySpillsThroughL2Cache(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer client.Close()

	a, err := vchunked.Init[int](4, "", 1)
	require.NoError(t, err)
	defer a.Close()
	cache := vchunked.NewL2Cache[int](client, "wired")
	a.UseL2Cache(cache)

	// Push enough to evict chunk 0; the spill must have populated the
	// shared tier.
	for i := 0; i < 12; i++ {
		require.NoError(t, a.PushBack(i))
	}
	require.False(t, a.IsElementInMemory(0))
	cached, ok := cache.Get(context.Background(), 0)
	require.True(t, ok, "evicted chunk must land in the L2 tier")
	assert.Equal(t, []int{0, 1, 2, 3}, cached)

	// Poison the cached copy: page-in must prefer the L2 tier over the
	// spill file, so the poisoned values come back.
	cache.Put(context.Background(), 0, []int{90, 91, 92, 93})
	v, err := a.GetElement(0)
	require.NoError(t, err)
	assert.Equal(t, 90, v)

	// A flushed tier degrades to the spill file, not an error: chunk 1
	// was never touched after its spill, so its file copy comes back.
	srv.FlushAll()
	v, err = a.GetElement(5)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestL2CacheSurvivesServerRestartMiss(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer client.Close()

	cache := vchunked.NewL2Cache[float64](client, "heights")
	cache.Put(context.Background(), 0, []float64{1.5, 2.5})

	srv.FlushAll()
	_, ok := cache.Get(context.Background(), 0)
	assert.False(t, ok, "flushed cache degrades to a miss, not an error")
}
