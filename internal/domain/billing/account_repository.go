package billing

import (
	"context"

	"github.com/google/uuid"
)

// AccountRepository defines the persistence operations for accounts
type AccountRepository interface {
	// Save creates or updates an account
	Save(ctx context.Context, account *Account) error

	// FindByIDForTenant finds an account by ID within a tenant.
	// Returns shared.ErrNotFound when no matching row exists.
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Account, error)

	// FindByIDs finds multiple accounts by their IDs within a tenant
	FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]Account, error)

	// FindAllForTenant finds all accounts for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]Account, error)
}

// SubscriptionRepository defines the persistence operations for the
// account↔customer association
type SubscriptionRepository interface {
	// Save creates or updates a subscription link
	Save(ctx context.Context, subscription *Subscription) error

	// FindByAccount finds all subscriptions attached to an account
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]Subscription, error)

	// FindByCustomer finds all subscriptions held by a customer
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]Subscription, error)

	// ExistsForAccountAndCustomer reports whether the link already exists
	ExistsForAccountAndCustomer(ctx context.Context, accountID, customerID uuid.UUID) (bool, error)
}
