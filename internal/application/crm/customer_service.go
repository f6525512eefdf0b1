package crm

import (
	"context"
	"encoding/json"
	"time"

	"github.com/clubhub/backend/internal/domain/billing"
	"github.com/clubhub/backend/internal/domain/crm"
	"github.com/clubhub/backend/internal/infrastructure/cache"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CustomerService handles customer reads and direct mutations. The customer
// collection read is cache-aside: the marshaled payload is stored under the
// tenant's collection key and served verbatim until invalidated or expired.
type CustomerService struct {
	customerRepo     crm.CustomerRepository
	accountRepo      billing.AccountRepository
	subscriptionRepo billing.SubscriptionRepository
	cache            cache.Store
	cacheTTL         time.Duration
	logger           *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(
	customerRepo crm.CustomerRepository,
	accountRepo billing.AccountRepository,
	subscriptionRepo billing.SubscriptionRepository,
	cacheStore cache.Store,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *CustomerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerService{
		customerRepo:     customerRepo,
		accountRepo:      accountRepo,
		subscriptionRepo: subscriptionRepo,
		cache:            cacheStore,
		cacheTTL:         cacheTTL,
		logger:           logger,
	}
}

// List retrieves the customer collection for a tenant, serving from cache
// when a fresh entry exists
func (s *CustomerService) List(ctx context.Context, tenantID uuid.UUID) (*CustomerListResponse, error) {
	key := cache.CustomerListKey(tenantID)

	if data, ok := s.cache.Get(ctx, key); ok {
		var cached CustomerListResponse
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
		// Corrupted entry, drop it and fall through to the repository
		s.logger.Warn("Dropping unreadable cache entry", zap.String("key", key))
		_ = s.cache.Invalidate(ctx, key)
	}

	customers, err := s.customerRepo.FindAllForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	response := &CustomerListResponse{
		Count:     int64(len(customers)),
		Customers: ToCustomerResponses(customers),
	}

	data, err := json.Marshal(response)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		// A degraded cache must not fail the read path
		s.logger.Warn("Failed to cache customer collection",
			zap.String("key", key),
			zap.Error(err))
	}

	return response, nil
}

// Get retrieves a single customer with the accounts it is subscribed to.
// Single-customer reads always go to the repositories.
func (s *CustomerService) Get(ctx context.Context, tenantID, customerID uuid.UUID) (*CustomerDetailResponse, error) {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	subscriptions, err := s.subscriptionRepo.FindByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	accountIDs := make([]uuid.UUID, len(subscriptions))
	for i := range subscriptions {
		accountIDs[i] = subscriptions[i].AccountID
	}

	accounts, err := s.accountRepo.FindByIDs(ctx, tenantID, accountIDs)
	if err != nil {
		return nil, err
	}

	detail := &CustomerDetailResponse{
		CustomerResponse: ToCustomerResponse(customer),
		Accounts:         make([]AccountResponse, len(accounts)),
	}
	for i := range accounts {
		detail.Accounts[i] = ToAccountResponse(&accounts[i])
	}

	return detail, nil
}

// Update updates a customer's details and invalidates the tenant's cached
// customer collection
func (s *CustomerService) Update(ctx context.Context, tenantID, customerID uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	firstName := customer.FirstName
	lastName := customer.LastName
	phone := customer.Phone
	email := customer.Email

	if req.FirstName != nil {
		firstName = *req.FirstName
	}
	if req.LastName != nil {
		lastName = *req.LastName
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Email != nil {
		email = *req.Email
	}

	if err := customer.Update(firstName, lastName, phone, email); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	s.invalidateCollection(ctx, tenantID)

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Delete removes a customer within the tenant and invalidates the tenant's
// cached customer collection
func (s *CustomerService) Delete(ctx context.Context, tenantID, customerID uuid.UUID) error {
	if err := s.customerRepo.DeleteForTenant(ctx, tenantID, customerID); err != nil {
		return err
	}

	s.invalidateCollection(ctx, tenantID)
	return nil
}

func (s *CustomerService) invalidateCollection(ctx context.Context, tenantID uuid.UUID) {
	key := cache.CustomerListKey(tenantID)
	if err := s.cache.Invalidate(ctx, key); err != nil {
		s.logger.Warn("Failed to invalidate customer collection cache",
			zap.String("key", key),
			zap.Error(err))
	}
}
