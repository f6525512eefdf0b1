package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisConfig holds the Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// RedisStore implements Store using Redis. Expiry is delegated to Redis
// through per-key TTLs.
type RedisStore struct {
	client     *redis.Client
	ownsClient bool // true if we created the client and should close it
	defaultTTL time.Duration
	logger     *zap.Logger
}

// RedisStoreOption is a functional option for configuring the store
type RedisStoreOption func(*RedisStore)

// WithRedisTTL sets the default entry TTL
func WithRedisTTL(ttl time.Duration) RedisStoreOption {
	return func(s *RedisStore) {
		if ttl > 0 {
			s.defaultTTL = ttl
		}
	}
}

// WithRedisLogger sets the logger for the store
func WithRedisLogger(logger *zap.Logger) RedisStoreOption {
	return func(s *RedisStore) {
		s.logger = logger
	}
}

// NewRedisStore creates a new Redis-backed cache store
func NewRedisStore(cfg RedisConfig, opts ...RedisStoreOption) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	store := &RedisStore{
		client:     client,
		ownsClient: true, // We created this client, so we own it
		defaultTTL: defaultTTL,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(store)
	}

	return store, nil
}

// NewRedisStoreWithClient creates a store with an existing Redis client.
// The caller retains ownership of the client and is responsible for closing it.
func NewRedisStoreWithClient(client *redis.Client, opts ...RedisStoreOption) *RedisStore {
	store := &RedisStore{
		client:     client,
		ownsClient: false, // Client is shared, don't close it
		defaultTTL: defaultTTL,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

// Get retrieves the cached value for key
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		// Cache miss
		s.logger.Debug("Cache miss", zap.String("key", key))
		return nil, false
	}
	if err != nil {
		// A degraded cache must not fail the read path
		s.logger.Error("Failed to get entry from cache",
			zap.String("key", key),
			zap.Error(err))
		return nil, false
	}

	s.logger.Debug("Cache hit", zap.String("key", key))
	return data, true
}

// Set stores value under key
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if value == nil {
		return nil
	}

	if ttl == 0 {
		ttl = s.defaultTTL
	}

	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		s.logger.Error("Failed to set entry in cache",
			zap.String("key", key),
			zap.Error(err))
		return fmt.Errorf("failed to set entry in cache: %w", err)
	}

	s.logger.Debug("Cached entry",
		zap.String("key", key),
		zap.Int("bytes", len(value)),
		zap.Duration("ttl", ttl))
	return nil
}

// Invalidate removes the entry for key
func (s *RedisStore) Invalidate(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.Error("Failed to invalidate cache entry",
			zap.String("key", key),
			zap.Error(err))
		return fmt.Errorf("failed to invalidate cache entry: %w", err)
	}

	s.logger.Debug("Invalidated cache entry", zap.String("key", key))
	return nil
}

// Close releases the Redis client if the store owns it
func (s *RedisStore) Close() error {
	if s.ownsClient {
		return s.client.Close()
	}
	return nil
}

// GetClient returns the underlying Redis client (for testing/monitoring)
func (s *RedisStore) GetClient() *redis.Client {
	return s.client
}

// Ensure RedisStore implements Store
var _ Store = (*RedisStore)(nil)
