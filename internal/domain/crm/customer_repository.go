package crm

import (
	"context"

	"github.com/google/uuid"
)

// CustomerRepository defines the persistence operations for customers.
// All reads and writes are tenant-scoped: a customer is only visible to the
// tenant that created it.
type CustomerRepository interface {
	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error

	// FindByIDForTenant finds a customer by ID within a tenant.
	// Returns shared.ErrNotFound when no matching row exists.
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Customer, error)

	// FindAllForTenant finds all customers for a tenant, with profile
	// enrichment loaded
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]Customer, error)

	// FindByIDs finds multiple customers by their IDs within a tenant
	FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]Customer, error)

	// CountForTenant counts customers for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)

	// DeleteForTenant deletes a customer within a tenant.
	// Returns shared.ErrNotFound when no row was deleted.
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
}
