package crm

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/clubhub/backend/internal/domain/billing"
	domaincrm "github.com/clubhub/backend/internal/domain/crm"
	"github.com/clubhub/backend/internal/domain/shared"
	"github.com/clubhub/backend/internal/infrastructure/cache"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCustomerService(t *testing.T) (*CustomerService, *MockCustomerRepository, *MockAccountRepository, *MockSubscriptionRepository, *cache.InMemoryStore) {
	t.Helper()

	customerRepo := new(MockCustomerRepository)
	accountRepo := new(MockAccountRepository)
	subscriptionRepo := new(MockSubscriptionRepository)
	store := cache.NewInMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	svc := NewCustomerService(customerRepo, accountRepo, subscriptionRepo, store, time.Minute, nil)
	return svc, customerRepo, accountRepo, subscriptionRepo, store
}

func newTestCustomer(t *testing.T, tenantID uuid.UUID, first, last string) *domaincrm.Customer {
	t.Helper()
	customer, err := domaincrm.NewCustomer(tenantID, first, last, "", "")
	require.NoError(t, err)
	return customer
}

func TestCustomerServiceList(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("loads from repository on miss and caches the payload", func(t *testing.T) {
		svc, customerRepo, _, _, store := newCustomerService(t)

		customer := newTestCustomer(t, tenantID, "Ana", "Cruz")
		customerRepo.On("FindAllForTenant", ctx, tenantID).Return([]domaincrm.Customer{*customer}, nil).Once()

		response, err := svc.List(ctx, tenantID)

		require.NoError(t, err)
		assert.Equal(t, int64(1), response.Count)
		require.Len(t, response.Customers, 1)
		assert.Equal(t, "Ana", response.Customers[0].FirstName)

		cached, ok := store.Get(ctx, cache.CustomerListKey(tenantID))
		require.True(t, ok)

		fresh, err := json.Marshal(response)
		require.NoError(t, err)
		assert.Equal(t, fresh, cached)

		customerRepo.AssertExpectations(t)
	})

	t.Run("serves the cached payload without hitting the repository", func(t *testing.T) {
		svc, customerRepo, _, _, _ := newCustomerService(t)

		customer := newTestCustomer(t, tenantID, "Ana", "Cruz")
		customerRepo.On("FindAllForTenant", ctx, tenantID).Return([]domaincrm.Customer{*customer}, nil).Once()

		first, err := svc.List(ctx, tenantID)
		require.NoError(t, err)

		second, err := svc.List(ctx, tenantID)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		customerRepo.AssertNumberOfCalls(t, "FindAllForTenant", 1)
	})

	t.Run("returns empty collection", func(t *testing.T) {
		svc, customerRepo, _, _, _ := newCustomerService(t)

		customerRepo.On("FindAllForTenant", ctx, tenantID).Return([]domaincrm.Customer{}, nil).Once()

		response, err := svc.List(ctx, tenantID)

		require.NoError(t, err)
		assert.Equal(t, int64(0), response.Count)
		assert.Empty(t, response.Customers)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		svc, customerRepo, _, _, _ := newCustomerService(t)

		customerRepo.On("FindAllForTenant", ctx, tenantID).Return(nil, assert.AnError).Once()

		_, err := svc.List(ctx, tenantID)

		require.Error(t, err)
	})
}

func TestCustomerServiceGet(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("composes customer with its accounts", func(t *testing.T) {
		svc, customerRepo, accountRepo, subscriptionRepo, _ := newCustomerService(t)

		customer := newTestCustomer(t, tenantID, "Ana", "Cruz")
		account, err := billing.NewAccount(tenantID, "Family Plan", "prod-basic-01")
		require.NoError(t, err)

		sub, err := billing.NewSubscription(account.ID, customer.ID, "4821", billing.SubscriptionStatusActive,
			decimal.NewFromInt(499), time.Now(), time.Now().AddDate(1, 0, 0))
		require.NoError(t, err)

		customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil).Once()
		subscriptionRepo.On("FindByCustomer", ctx, customer.ID).Return([]billing.Subscription{*sub}, nil).Once()
		accountRepo.On("FindByIDs", ctx, tenantID, []uuid.UUID{account.ID}).Return([]billing.Account{*account}, nil).Once()

		detail, err := svc.Get(ctx, tenantID, customer.ID)

		require.NoError(t, err)
		assert.Equal(t, "Ana", detail.FirstName)
		require.Len(t, detail.Accounts, 1)
		assert.Equal(t, "Family Plan", detail.Accounts[0].Name)
	})

	t.Run("short-circuits on unknown customer", func(t *testing.T) {
		svc, customerRepo, _, subscriptionRepo, _ := newCustomerService(t)

		customerID := uuid.New()
		customerRepo.On("FindByIDForTenant", ctx, tenantID, customerID).Return(nil, shared.ErrNotFound).Once()

		_, err := svc.Get(ctx, tenantID, customerID)

		require.ErrorIs(t, err, shared.ErrNotFound)
		subscriptionRepo.AssertNotCalled(t, "FindByCustomer", mock.Anything, mock.Anything)
	})
}

func TestCustomerServiceUpdate(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("applies partial update and invalidates the collection", func(t *testing.T) {
		svc, customerRepo, _, _, store := newCustomerService(t)

		customer := newTestCustomer(t, tenantID, "Ana", "Cruz")
		require.NoError(t, store.Set(ctx, cache.CustomerListKey(tenantID), []byte(`{"count":1}`), time.Minute))

		customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil).Once()
		customerRepo.On("Save", ctx, customer).Return(nil).Once()

		newFirst := "Maria"
		response, err := svc.Update(ctx, tenantID, customer.ID, UpdateCustomerRequest{FirstName: &newFirst})

		require.NoError(t, err)
		assert.Equal(t, "Maria", response.FirstName)
		assert.Equal(t, "Cruz", response.LastName)

		_, ok := store.Get(ctx, cache.CustomerListKey(tenantID))
		assert.False(t, ok)
	})

	t.Run("short-circuits on unknown customer without saving", func(t *testing.T) {
		svc, customerRepo, _, _, _ := newCustomerService(t)

		customerID := uuid.New()
		customerRepo.On("FindByIDForTenant", ctx, tenantID, customerID).Return(nil, shared.ErrNotFound).Once()

		newFirst := "Maria"
		_, err := svc.Update(ctx, tenantID, customerID, UpdateCustomerRequest{FirstName: &newFirst})

		require.ErrorIs(t, err, shared.ErrNotFound)
		customerRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCustomerServiceDelete(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("deletes and invalidates only this tenant's collection", func(t *testing.T) {
		svc, customerRepo, _, _, store := newCustomerService(t)

		otherTenant := uuid.New()
		require.NoError(t, store.Set(ctx, cache.CustomerListKey(tenantID), []byte(`{"count":1}`), time.Minute))
		require.NoError(t, store.Set(ctx, cache.CustomerListKey(otherTenant), []byte(`{"count":3}`), time.Minute))

		customerID := uuid.New()
		customerRepo.On("DeleteForTenant", ctx, tenantID, customerID).Return(nil).Once()

		err := svc.Delete(ctx, tenantID, customerID)

		require.NoError(t, err)

		_, ok := store.Get(ctx, cache.CustomerListKey(tenantID))
		assert.False(t, ok)

		other, ok := store.Get(ctx, cache.CustomerListKey(otherTenant))
		require.True(t, ok)
		assert.Equal(t, []byte(`{"count":3}`), other)
	})

	t.Run("leaves cache untouched on unknown customer", func(t *testing.T) {
		svc, customerRepo, _, _, store := newCustomerService(t)

		require.NoError(t, store.Set(ctx, cache.CustomerListKey(tenantID), []byte(`{"count":1}`), time.Minute))

		customerID := uuid.New()
		customerRepo.On("DeleteForTenant", ctx, tenantID, customerID).Return(shared.ErrNotFound).Once()

		err := svc.Delete(ctx, tenantID, customerID)

		require.ErrorIs(t, err, shared.ErrNotFound)

		_, ok := store.Get(ctx, cache.CustomerListKey(tenantID))
		assert.True(t, ok)
	})
}
