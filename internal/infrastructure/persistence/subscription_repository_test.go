package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockSubscriptionRepository(t *testing.T) (*GormSubscriptionRepository, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockDB(t)
	return NewGormSubscriptionRepository(gormDB), mock, mockDB
}

func TestGormSubscriptionRepository_FindByAccount(t *testing.T) {
	repo, mock, mockDB := newMockSubscriptionRepository(t)
	defer mockDB.Close()

	accountID := uuid.New()
	customerID := uuid.New()
	subscriptionID := uuid.New()
	purchased := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	expires := purchased.AddDate(1, 0, 0)

	rows := sqlmock.NewRows([]string{"id", "account_id", "customer_id", "pin", "status", "price", "purchased_at", "expires_at"}).
		AddRow(subscriptionID, accountID, customerID, "4821", "active", decimal.NewFromInt(499), purchased, expires)

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE account_id = \$1 ORDER BY created_at`).
		WithArgs(accountID).
		WillReturnRows(rows)

	subscriptions, err := repo.FindByAccount(context.Background(), accountID)

	assert.NoError(t, err)
	require.Len(t, subscriptions, 1)
	assert.Equal(t, customerID, subscriptions[0].CustomerID)
	assert.Equal(t, "4821", subscriptions[0].PIN)
	assert.True(t, subscriptions[0].Price.Equal(decimal.NewFromInt(499)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSubscriptionRepository_FindByCustomer(t *testing.T) {
	repo, mock, mockDB := newMockSubscriptionRepository(t)
	defer mockDB.Close()

	customerID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE customer_id = \$1 ORDER BY created_at`).
		WithArgs(customerID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "customer_id"}))

	subscriptions, err := repo.FindByCustomer(context.Background(), customerID)

	assert.NoError(t, err)
	assert.Empty(t, subscriptions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSubscriptionRepository_ExistsForAccountAndCustomer(t *testing.T) {
	t.Run("reports existing link", func(t *testing.T) {
		repo, mock, mockDB := newMockSubscriptionRepository(t)
		defer mockDB.Close()

		accountID := uuid.New()
		customerID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "subscriptions" WHERE account_id = \$1 AND customer_id = \$2`).
			WithArgs(accountID, customerID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsForAccountAndCustomer(context.Background(), accountID, customerID)

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports absent link", func(t *testing.T) {
		repo, mock, mockDB := newMockSubscriptionRepository(t)
		defer mockDB.Close()

		accountID := uuid.New()
		customerID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "subscriptions" WHERE account_id = \$1 AND customer_id = \$2`).
			WithArgs(accountID, customerID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsForAccountAndCustomer(context.Background(), accountID, customerID)

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
