package cache

import (
	"context"
	"time"
)

// Store is a byte-oriented response cache. Values are stored exactly as
// given and returned exactly as stored, so a cache hit serves the same
// payload the origin produced on the preceding miss.
//
// Get's second return value reports presence: a miss is (nil, false), never
// an error. Expired entries are treated as absent.
type Store interface {
	// Get retrieves the cached value for key, or (nil, false) on a miss
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key for the given TTL. A zero TTL uses the
	// store's configured default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Invalidate removes the entry for key. Removing an absent key is a no-op.
	Invalidate(ctx context.Context, key string) error

	// Close releases any resources held by the store
	Close() error
}
