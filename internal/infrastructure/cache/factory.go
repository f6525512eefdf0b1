package cache

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Driver names for the cache store factory
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// Config selects and tunes the cache store implementation
type Config struct {
	Driver          string
	TTL             time.Duration
	CleanupInterval time.Duration
	Redis           RedisConfig
}

// NewStore builds a cache store from the configured driver
func NewStore(cfg Config, logger *zap.Logger) (Store, error) {
	switch cfg.Driver {
	case DriverMemory, "":
		return NewInMemoryStore(
			WithInMemoryTTL(cfg.TTL),
			WithInMemoryCleanupInterval(cfg.CleanupInterval),
			WithInMemoryLogger(logger),
		), nil
	case DriverRedis:
		return NewRedisStore(cfg.Redis,
			WithRedisTTL(cfg.TTL),
			WithRedisLogger(logger),
		)
	default:
		return nil, fmt.Errorf("unknown cache driver: %s", cfg.Driver)
	}
}
