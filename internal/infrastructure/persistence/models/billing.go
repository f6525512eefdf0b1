package models

import (
	"time"

	"github.com/clubhub/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountModel is the persistence model for the Account domain entity.
type AccountModel struct {
	TenantAggregateModel
	Name      string `gorm:"type:varchar(200);not null"`
	ProductID string `gorm:"type:varchar(100);not null;index"`
}

// TableName returns the table name for GORM
func (AccountModel) TableName() string {
	return "accounts"
}

// ToDomain converts the persistence model to a domain Account entity.
func (m *AccountModel) ToDomain() *billing.Account {
	return &billing.Account{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		Name:                m.Name,
		ProductID:           m.ProductID,
	}
}

// FromDomain populates the persistence model from a domain Account entity.
func (m *AccountModel) FromDomain(a *billing.Account) {
	m.FromDomainTenantAggregateRoot(a.TenantAggregateRoot)
	m.Name = a.Name
	m.ProductID = a.ProductID
}

// AccountModelFromDomain creates a new persistence model from a domain Account entity.
func AccountModelFromDomain(a *billing.Account) *AccountModel {
	m := &AccountModel{}
	m.FromDomain(a)
	return m
}

// SubscriptionModel is the persistence model for the Subscription association.
// Rows are removed by FK cascade when either end is deleted.
type SubscriptionModel struct {
	BaseModel
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_subscription_account_customer,priority:1"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_subscription_account_customer,priority:2"`
	PIN         string          `gorm:"type:varchar(10);not null"`
	Status      string          `gorm:"type:varchar(20);not null;default:'active'"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PurchasedAt time.Time       `gorm:"not null"`
	ExpiresAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// ToDomain converts the persistence model to a domain Subscription entity.
func (m *SubscriptionModel) ToDomain() *billing.Subscription {
	return &billing.Subscription{
		BaseEntity:  m.BaseModel.ToDomain(),
		AccountID:   m.AccountID,
		CustomerID:  m.CustomerID,
		PIN:         m.PIN,
		Status:      billing.SubscriptionStatus(m.Status),
		Price:       m.Price,
		PurchasedAt: m.PurchasedAt,
		ExpiresAt:   m.ExpiresAt,
	}
}

// FromDomain populates the persistence model from a domain Subscription entity.
func (m *SubscriptionModel) FromDomain(s *billing.Subscription) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.AccountID = s.AccountID
	m.CustomerID = s.CustomerID
	m.PIN = s.PIN
	m.Status = string(s.Status)
	m.Price = s.Price
	m.PurchasedAt = s.PurchasedAt
	m.ExpiresAt = s.ExpiresAt
}

// SubscriptionModelFromDomain creates a new persistence model from a domain Subscription entity.
func SubscriptionModelFromDomain(s *billing.Subscription) *SubscriptionModel {
	m := &SubscriptionModel{}
	m.FromDomain(s)
	return m
}
