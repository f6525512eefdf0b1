package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "clubhub-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 30*time.Second, cfg.Cache.CleanupInterval)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CLUBHUB_DATABASE_HOST", "db.internal")
	t.Setenv("CLUBHUB_CACHE_DRIVER", "redis")
	t.Setenv("CLUBHUB_CACHE_TTL", "90s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "redis", cfg.Cache.Driver)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
}

func TestValidate(t *testing.T) {
	t.Run("rejects unknown cache driver", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.Cache.Driver = "memcached"

		err := cfg.validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cache.driver")
	})

	t.Run("rejects idle conns exceeding open conns", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.Database.MaxIdleConns = 100

		err := cfg.validate()

		require.Error(t, err)
	})

	t.Run("requires password in production", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.App.Env = "production"
		cfg.Database.SSLMode = "require"

		err := cfg.validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password")
	})
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "clubhub",
		SSLMode:  "disable",
	}

	dsn := d.DSN()

	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "sslmode=disable")
	// Special characters in the password must be escaped
	assert.NotContains(t, dsn, "p@ss/word")
}
