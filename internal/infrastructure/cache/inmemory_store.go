package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Constants for in-memory store configuration
const (
	defaultTTL             = 5 * time.Minute
	defaultCleanupInterval = 30 * time.Second
)

// InMemoryStore implements Store using in-process storage. Entries expire
// lazily on read and eagerly through a background cleanup goroutine.
type InMemoryStore struct {
	entries         sync.Map // map[string]*cacheEntry
	defaultTTL      time.Duration
	cleanupInterval time.Duration
	logger          *zap.Logger
	stopCh          chan struct{} // Channel to stop the cleanup goroutine
	stopped         int32         // Atomic flag to track if store is stopped

	// Stats for monitoring
	hits   int64
	misses int64
}

// cacheEntry wraps a cached value with expiration time
type cacheEntry struct {
	value     []byte
	expiresAt time.Time
}

// isExpired checks if the cache entry has expired
func (e *cacheEntry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// InMemoryStoreOption is a functional option for configuring the store
type InMemoryStoreOption func(*InMemoryStore)

// WithInMemoryTTL sets the default entry TTL
func WithInMemoryTTL(ttl time.Duration) InMemoryStoreOption {
	return func(s *InMemoryStore) {
		if ttl > 0 {
			s.defaultTTL = ttl
		}
	}
}

// WithInMemoryCleanupInterval sets how often expired entries are swept
func WithInMemoryCleanupInterval(interval time.Duration) InMemoryStoreOption {
	return func(s *InMemoryStore) {
		if interval > 0 {
			s.cleanupInterval = interval
		}
	}
}

// WithInMemoryLogger sets the logger for the store
func WithInMemoryLogger(logger *zap.Logger) InMemoryStoreOption {
	return func(s *InMemoryStore) {
		s.logger = logger
	}
}

// NewInMemoryStore creates a new in-process cache store
func NewInMemoryStore(opts ...InMemoryStoreOption) *InMemoryStore {
	store := &InMemoryStore{
		defaultTTL:      defaultTTL,
		cleanupInterval: defaultCleanupInterval,
		logger:          zap.NewNop(),
		stopCh:          make(chan struct{}),
	}

	for _, opt := range opts {
		opt(store)
	}

	// Start background cleanup goroutine
	go store.cleanupExpired()

	return store
}

// Get retrieves the cached value for key
func (s *InMemoryStore) Get(ctx context.Context, key string) ([]byte, bool) {
	if value, ok := s.entries.Load(key); ok {
		entry := value.(*cacheEntry)
		if !entry.isExpired() {
			atomic.AddInt64(&s.hits, 1)
			s.logger.Debug("Cache hit", zap.String("key", key))
			return entry.value, true
		}
		// Expired, remove from cache
		s.entries.Delete(key)
	}

	atomic.AddInt64(&s.misses, 1)
	s.logger.Debug("Cache miss", zap.String("key", key))
	return nil, false
}

// Set stores value under key
func (s *InMemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if value == nil {
		return nil
	}

	if ttl == 0 {
		ttl = s.defaultTTL
	}

	entry := &cacheEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}

	s.entries.Store(key, entry)
	s.logger.Debug("Cached entry",
		zap.String("key", key),
		zap.Int("bytes", len(value)),
		zap.Duration("ttl", ttl))
	return nil
}

// Invalidate removes the entry for key
func (s *InMemoryStore) Invalidate(ctx context.Context, key string) error {
	s.entries.Delete(key)
	s.logger.Debug("Invalidated cache entry", zap.String("key", key))
	return nil
}

// Close stops the cleanup goroutine
func (s *InMemoryStore) Close() error {
	// Only close once
	if atomic.CompareAndSwapInt32(&s.stopped, 0, 1) {
		close(s.stopCh)
	}
	return nil
}

// GetStats returns cache statistics
func (s *InMemoryStore) GetStats() (hits, misses int64) {
	return atomic.LoadInt64(&s.hits), atomic.LoadInt64(&s.misses)
}

// Count returns the number of entries in the store
func (s *InMemoryStore) Count() int {
	count := 0
	s.entries.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}

// cleanupExpired periodically removes expired entries from the store
func (s *InMemoryStore) cleanupExpired() {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						s.logger.Error("Panic in cache cleanup",
							zap.Any("panic", r))
					}
				}()
				s.doCleanup()
			}()
		}
	}
}

// doCleanup removes expired entries
func (s *InMemoryStore) doCleanup() {
	var removed int

	s.entries.Range(func(key, value any) bool {
		entry := value.(*cacheEntry)
		if entry.isExpired() {
			s.entries.Delete(key)
			removed++
		}
		return true
	})

	if removed > 0 {
		s.logger.Debug("Cleaned up expired cache entries",
			zap.Int("removed", removed))
	}
}

// Ensure InMemoryStore implements Store
var _ Store = (*InMemoryStore)(nil)
