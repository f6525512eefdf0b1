// Package integration provides end-to-end tests that exercise the HTTP
// surface against a real database and cache store.
package integration

import (
	"testing"

	"github.com/clubhub/backend/internal/infrastructure/accounting"
	"github.com/clubhub/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens an isolated in-memory SQLite database with the full schema
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to open test database")

	err = db.AutoMigrate(
		&models.CustomerModel{},
		&models.ProfileModel{},
		&models.AccountModel{},
		&models.SubscriptionModel{},
		&accounting.LedgerEntryModel{},
	)
	require.NoError(t, err, "Failed to migrate test schema")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
