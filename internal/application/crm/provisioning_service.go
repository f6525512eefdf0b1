package crm

import (
	"context"
	"fmt"
	"time"

	"github.com/clubhub/backend/internal/domain/billing"
	"github.com/clubhub/backend/internal/domain/crm"
	"github.com/clubhub/backend/internal/domain/shared"
	"github.com/clubhub/backend/internal/infrastructure/cache"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProvisioningService runs the multi-step workflow that attaches a new
// customer to an existing account. Steps after account resolution are not
// rolled back on later failure: a created customer row survives a failed
// subscription save. The accounting notification is best-effort.
type ProvisioningService struct {
	accountRepo      billing.AccountRepository
	customerRepo     crm.CustomerRepository
	subscriptionRepo billing.SubscriptionRepository
	notifier         billing.AccountingNotifier
	cache            cache.Store
	logger           *zap.Logger
}

// NewProvisioningService creates a new ProvisioningService
func NewProvisioningService(
	accountRepo billing.AccountRepository,
	customerRepo crm.CustomerRepository,
	subscriptionRepo billing.SubscriptionRepository,
	notifier billing.AccountingNotifier,
	cacheStore cache.Store,
	logger *zap.Logger,
) *ProvisioningService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProvisioningService{
		accountRepo:      accountRepo,
		customerRepo:     customerRepo,
		subscriptionRepo: subscriptionRepo,
		notifier:         notifier,
		cache:            cacheStore,
		logger:           logger,
	}
}

// AddCustomer creates a customer and subscribes it to the given account.
// An unknown account short-circuits the workflow before any write.
func (s *ProvisioningService) AddCustomer(ctx context.Context, tenantID, accountID uuid.UUID, req AddCustomerRequest) (*AccountDetailResponse, error) {
	account, err := s.accountRepo.FindByIDForTenant(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}

	customer, err := crm.NewCustomer(tenantID, req.Customer.FirstName, req.Customer.LastName, req.Customer.Phone, req.Customer.Email)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	subscription, err := s.buildSubscription(ctx, account.ID, customer.ID, req.Subscription)
	if err != nil {
		return nil, err
	}
	if err := s.subscriptionRepo.Save(ctx, subscription); err != nil {
		return nil, err
	}

	account.AddDomainEvent(billing.NewCustomerSubscribedEvent(account, subscription))

	description := fmt.Sprintf("%s %s subscribed to account %q at ₱%s on %s",
		customer.FirstName,
		customer.LastName,
		account.Name,
		subscription.Price.StringFixed(2),
		subscription.PurchasedAt.Format("2006-01-02"))

	if err := s.notifier.RecordSubscription(ctx, account.ProductID, subscription.Price, description); err != nil {
		// Best-effort by contract: the subscription stands either way
		s.logger.Warn("Accounting notification failed",
			zap.String("product_id", account.ProductID),
			zap.String("account_id", account.ID.String()),
			zap.Error(err))
	}

	detail, err := s.composeAccountDetail(ctx, tenantID, account.ID)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.AccountingProfileKey(tenantID, account.ProductID))
	s.invalidate(ctx, cache.CustomerListKey(tenantID))

	return detail, nil
}

// AddIndirectCustomer creates a customer without an account association
func (s *ProvisioningService) AddIndirectCustomer(ctx context.Context, tenantID uuid.UUID, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := crm.NewCustomer(tenantID, req.FirstName, req.LastName, req.Phone, req.Email)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.CustomerListKey(tenantID))

	response := ToCustomerResponse(customer)
	return &response, nil
}

// buildSubscription applies request defaults and constructs the link entity
func (s *ProvisioningService) buildSubscription(ctx context.Context, accountID, customerID uuid.UUID, req SubscriptionRequest) (*billing.Subscription, error) {
	status := billing.SubscriptionStatus(req.Status)
	if req.Status == "" {
		status = billing.SubscriptionStatusActive
	}

	purchasedAt := req.PurchasedAt
	if purchasedAt.IsZero() {
		purchasedAt = time.Now()
	}
	expiresAt := req.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = purchasedAt.AddDate(1, 0, 0)
	}

	exists, err := s.subscriptionRepo.ExistsForAccountAndCustomer(ctx, accountID, customerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer is already subscribed to this account")
	}

	return billing.NewSubscription(accountID, customerID, req.PIN, status, req.Price, purchasedAt, expiresAt)
}

// composeAccountDetail re-reads canonical state from the repositories
func (s *ProvisioningService) composeAccountDetail(ctx context.Context, tenantID, accountID uuid.UUID) (*AccountDetailResponse, error) {
	account, err := s.accountRepo.FindByIDForTenant(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}

	subscriptions, err := s.subscriptionRepo.FindByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	customerIDs := make([]uuid.UUID, len(subscriptions))
	for i := range subscriptions {
		customerIDs[i] = subscriptions[i].CustomerID
	}

	customers, err := s.customerRepo.FindByIDs(ctx, tenantID, customerIDs)
	if err != nil {
		return nil, err
	}

	detail := &AccountDetailResponse{
		AccountResponse: ToAccountResponse(account),
		Subscriptions:   make([]SubscriptionResponse, len(subscriptions)),
		Customers:       ToCustomerResponses(customers),
	}
	for i := range subscriptions {
		detail.Subscriptions[i] = ToSubscriptionResponse(&subscriptions[i])
	}

	return detail, nil
}

func (s *ProvisioningService) invalidate(ctx context.Context, key string) {
	if err := s.cache.Invalidate(ctx, key); err != nil {
		s.logger.Warn("Failed to invalidate cache entry",
			zap.String("key", key),
			zap.Error(err))
	}
}
