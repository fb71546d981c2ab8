package vchunked

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// L2Cache is an optional shared cache tier sitting in front of the spill
// file: a chunk evicted from process memory can still be served from a
// shared Redis instance before falling back to disk, useful when several
// processes page through overlapping ranges of the same dataset. This has
// no analogue in the
// original source, which only ever spills to a local file; it's new
// wiring for a distributed deployment of this module.
type L2Cache[T any] struct {
	client  *redis.Client
	keyFunc func(chunkIdx int) string
}

// NewL2Cache creates a cache tier keyed under the given namespace prefix.
func NewL2Cache[T any](client *redis.Client, namespace string) *L2Cache[T] {
	return &L2Cache[T]{
		client: client,
		keyFunc: func(chunkIdx int) string {
			return fmt.Sprintf("%s:chunk:%d", namespace, chunkIdx)
		},
	}
}

// Get attempts to fetch chunkIdx's data from the cache.
func (c *L2Cache[T]) Get(ctx context.Context, chunkIdx int) ([]T, bool) {
	raw, err := c.client.Get(ctx, c.keyFunc(chunkIdx)).Bytes()
	if err != nil {
		return nil, false
	}
	var chunk []T
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&chunk); err != nil {
		return nil, false
	}
	return chunk, true
}

// Put stores chunkIdx's data in the cache, best-effort.
func (c *L2Cache[T]) Put(ctx context.Context, chunkIdx int, chunk []T) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(chunk); err != nil {
		return
	}
	c.client.Set(ctx, c.keyFunc(chunkIdx), buf.Bytes(), 0)
}
