package persistence

import (
	"context"

	"github.com/clubhub/backend/internal/domain/billing"
	"github.com/clubhub/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSubscriptionRepository implements billing.SubscriptionRepository using GORM
type GormSubscriptionRepository struct {
	db *gorm.DB
}

// NewGormSubscriptionRepository creates a new GormSubscriptionRepository
func NewGormSubscriptionRepository(db *gorm.DB) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{db: db}
}

// Save creates or updates a subscription link
func (r *GormSubscriptionRepository) Save(ctx context.Context, subscription *billing.Subscription) error {
	model := models.SubscriptionModelFromDomain(subscription)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByAccount finds all subscriptions attached to an account
func (r *GormSubscriptionRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]billing.Subscription, error) {
	var subscriptionModels []models.SubscriptionModel
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at").
		Find(&subscriptionModels).Error; err != nil {
		return nil, err
	}

	subscriptions := make([]billing.Subscription, len(subscriptionModels))
	for i := range subscriptionModels {
		subscriptions[i] = *subscriptionModels[i].ToDomain()
	}
	return subscriptions, nil
}

// FindByCustomer finds all subscriptions held by a customer
func (r *GormSubscriptionRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]billing.Subscription, error) {
	var subscriptionModels []models.SubscriptionModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at").
		Find(&subscriptionModels).Error; err != nil {
		return nil, err
	}

	subscriptions := make([]billing.Subscription, len(subscriptionModels))
	for i := range subscriptionModels {
		subscriptions[i] = *subscriptionModels[i].ToDomain()
	}
	return subscriptions, nil
}

// ExistsForAccountAndCustomer reports whether the link already exists
func (r *GormSubscriptionRepository) ExistsForAccountAndCustomer(ctx context.Context, accountID, customerID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SubscriptionModel{}).
		Where("account_id = ? AND customer_id = ?", accountID, customerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormSubscriptionRepository implements billing.SubscriptionRepository
var _ billing.SubscriptionRepository = (*GormSubscriptionRepository)(nil)
