package cache

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCustomerListKey(t *testing.T) {
	tenantID := uuid.MustParse("8f14e45f-ceea-467f-a0f6-6f3d51b2a1c0")

	key := CustomerListKey(tenantID)

	assert.Equal(t, "8f14e45f-ceea-467f-a0f6-6f3d51b2a1c0/customers", key)
	// Deterministic: same inputs, same key
	assert.Equal(t, key, CustomerListKey(tenantID))
}

func TestAccountingProfileKey(t *testing.T) {
	tenantID := uuid.MustParse("8f14e45f-ceea-467f-a0f6-6f3d51b2a1c0")

	key := AccountingProfileKey(tenantID, "prod-basic-01")

	assert.Equal(t, "8f14e45f-ceea-467f-a0f6-6f3d51b2a1c0/prod-basic-01/accounting", key)
}

func TestKeysAreTenantScoped(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	assert.NotEqual(t, CustomerListKey(a), CustomerListKey(b))
	assert.NotEqual(t, AccountingProfileKey(a, "prod-basic-01"), AccountingProfileKey(b, "prod-basic-01"))
	assert.NotEqual(t, AccountingProfileKey(a, "prod-basic-01"), AccountingProfileKey(a, "prod-basic-02"))
}
