package cache

import "github.com/google/uuid"

// Cache keys are derived from request identity only, so identical requests
// always address the same entry and a tenant's entries never collide with
// another tenant's.

// CustomerListKey addresses the cached customer collection of a tenant
func CustomerListKey(tenantID uuid.UUID) string {
	return tenantID.String() + "/customers"
}

// AccountingProfileKey addresses the cached accounting profile for a
// tenant's billing product
func AccountingProfileKey(tenantID uuid.UUID, productID string) string {
	return tenantID.String() + "/" + productID + "/accounting"
}
