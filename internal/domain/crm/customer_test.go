package crm

import (
	"testing"

	"github.com/clubhub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates customer with valid fields", func(t *testing.T) {
		customer, err := NewCustomer(tenantID, "Ana", "Cruz", "+63 917 555 0101", "Ana.Cruz@Example.com")

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, customer.ID)
		assert.Equal(t, tenantID, customer.TenantID)
		assert.Equal(t, "Ana", customer.FirstName)
		assert.Equal(t, "Cruz", customer.LastName)
		assert.Equal(t, "ana.cruz@example.com", customer.Email)
		assert.Equal(t, 1, customer.GetVersion())

		events := customer.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeCustomerCreated, events[0].EventType())
	})

	t.Run("allows empty phone and email", func(t *testing.T) {
		customer, err := NewCustomer(tenantID, "Ana", "Cruz", "", "")

		require.NoError(t, err)
		assert.Empty(t, customer.Phone)
		assert.Empty(t, customer.Email)
	})

	t.Run("rejects empty first name", func(t *testing.T) {
		_, err := NewCustomer(tenantID, "", "Cruz", "", "")

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_FIRST_NAME", domainErr.Code)
	})

	t.Run("rejects empty last name", func(t *testing.T) {
		_, err := NewCustomer(tenantID, "Ana", "", "", "")

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_LAST_NAME", domainErr.Code)
	})

	t.Run("rejects malformed phone", func(t *testing.T) {
		_, err := NewCustomer(tenantID, "Ana", "Cruz", "not-a-phone!", "")

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PHONE", domainErr.Code)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := NewCustomer(tenantID, "Ana", "Cruz", "", "nope@")

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_EMAIL", domainErr.Code)
	})
}

func TestCustomerUpdate(t *testing.T) {
	tenantID := uuid.New()

	t.Run("updates fields and bumps version", func(t *testing.T) {
		customer, err := NewCustomer(tenantID, "Ana", "Cruz", "", "")
		require.NoError(t, err)
		customer.ClearDomainEvents()

		err = customer.Update("Maria", "Santos", "0917 555 0102", "maria@example.com")

		require.NoError(t, err)
		assert.Equal(t, "Maria", customer.FirstName)
		assert.Equal(t, "Santos", customer.LastName)
		assert.Equal(t, 2, customer.GetVersion())

		events := customer.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeCustomerUpdated, events[0].EventType())
	})

	t.Run("rejects invalid update without mutating", func(t *testing.T) {
		customer, err := NewCustomer(tenantID, "Ana", "Cruz", "", "")
		require.NoError(t, err)

		err = customer.Update("", "Santos", "", "")

		require.Error(t, err)
		assert.Equal(t, "Ana", customer.FirstName)
		assert.Equal(t, 1, customer.GetVersion())
	})
}

func TestCustomerFullName(t *testing.T) {
	customer, err := NewCustomer(uuid.New(), "Ana", "Cruz", "", "")
	require.NoError(t, err)

	assert.Equal(t, "Ana Cruz", customer.FullName())
}
