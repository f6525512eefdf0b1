package billing

import (
	"regexp"
	"time"

	"github.com/clubhub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionStatus represents the status of a subscription
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusTrial     SubscriptionStatus = "trial"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

var pinFormat = regexp.MustCompile(`^\d{4,10}$`)

// Subscription is the association entity linking a customer to an account.
// It is created atomically with the account↔customer link and has no
// independent lifecycle: deleting either end removes it.
type Subscription struct {
	shared.BaseEntity
	AccountID   uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_subscription_account_customer,priority:1"`
	CustomerID  uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_subscription_account_customer,priority:2"`
	PIN         string             `gorm:"type:varchar(10);not null"`
	Status      SubscriptionStatus `gorm:"type:varchar(20);not null;default:'active'"`
	Price       decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	PurchasedAt time.Time          `gorm:"not null"`
	ExpiresAt   time.Time          `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Subscription) TableName() string {
	return "subscriptions"
}

// NewSubscription creates the association between an account and a customer
func NewSubscription(accountID, customerID uuid.UUID, pin string, status SubscriptionStatus, price decimal.Decimal, purchasedAt, expiresAt time.Time) (*Subscription, error) {
	if !pinFormat.MatchString(pin) {
		return nil, shared.NewDomainError("INVALID_PIN", "PIN must be 4 to 10 digits")
	}
	if err := validateSubscriptionStatus(status); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Subscription price cannot be negative")
	}
	if !expiresAt.After(purchasedAt) {
		return nil, shared.NewDomainError("INVALID_EXPIRY", "Subscription expiry must be after the purchase date")
	}

	return &Subscription{
		BaseEntity:  shared.NewBaseEntity(),
		AccountID:   accountID,
		CustomerID:  customerID,
		PIN:         pin,
		Status:      status,
		Price:       price,
		PurchasedAt: purchasedAt,
		ExpiresAt:   expiresAt,
	}, nil
}

// IsExpired reports whether the subscription has passed its expiry date
func (s *Subscription) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

func validateSubscriptionStatus(status SubscriptionStatus) error {
	switch status {
	case SubscriptionStatusActive, SubscriptionStatusTrial, SubscriptionStatusExpired, SubscriptionStatusCancelled:
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Invalid subscription status")
	}
}
