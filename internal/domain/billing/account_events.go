package billing

import (
	"github.com/clubhub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeAccount = "Account"

// Event type constants
const (
	EventTypeAccountCreated     = "AccountCreated"
	EventTypeCustomerSubscribed = "CustomerSubscribed"
)

// AccountCreatedEvent is published when a new account is created
type AccountCreatedEvent struct {
	shared.BaseDomainEvent
	AccountID uuid.UUID `json:"account_id"`
	Name      string    `json:"name"`
	ProductID string    `json:"product_id"`
}

// NewAccountCreatedEvent creates a new AccountCreatedEvent
func NewAccountCreatedEvent(account *Account) *AccountCreatedEvent {
	return &AccountCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAccountCreated, AggregateTypeAccount, account.ID, account.TenantID),
		AccountID:       account.ID,
		Name:            account.Name,
		ProductID:       account.ProductID,
	}
}

// CustomerSubscribedEvent is published when a customer is attached to an
// account through a subscription
type CustomerSubscribedEvent struct {
	shared.BaseDomainEvent
	AccountID  uuid.UUID       `json:"account_id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	Price      decimal.Decimal `json:"price"`
}

// NewCustomerSubscribedEvent creates a new CustomerSubscribedEvent
func NewCustomerSubscribedEvent(account *Account, subscription *Subscription) *CustomerSubscribedEvent {
	return &CustomerSubscribedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerSubscribed, AggregateTypeAccount, account.ID, account.TenantID),
		AccountID:       account.ID,
		CustomerID:      subscription.CustomerID,
		Price:           subscription.Price,
	}
}
