package billing

import (
	"time"

	"github.com/clubhub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Account represents a billable account owned by a tenant. Customers are
// attached to an account through subscriptions; the account itself carries a
// reference to the billing product it is charged against.
type Account struct {
	shared.TenantAggregateRoot
	Name      string `gorm:"type:varchar(200);not null"`
	ProductID string `gorm:"type:varchar(100);not null;index"`
}

// TableName returns the table name for GORM
func (Account) TableName() string {
	return "accounts"
}

// NewAccount creates a new account with required fields
func NewAccount(tenantID uuid.UUID, name, productID string) (*Account, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Account name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Account name cannot exceed 200 characters")
	}
	if productID == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Account product reference cannot be empty")
	}

	account := &Account{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		ProductID:           productID,
	}

	account.AddDomainEvent(NewAccountCreatedEvent(account))

	return account, nil
}

// Rename updates the account's display name
func (a *Account) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Account name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Account name cannot exceed 200 characters")
	}

	a.Name = name
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}
