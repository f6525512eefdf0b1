package crm

import (
	"time"

	"github.com/clubhub/backend/internal/domain/billing"
	"github.com/clubhub/backend/internal/domain/crm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest is the request to create a customer
type CreateCustomerRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Phone     string `json:"phone" binding:"omitempty,max=50"`
	Email     string `json:"email" binding:"omitempty,email,max=200"`
}

// SubscriptionRequest carries the subscription terms when attaching a
// customer to an account
type SubscriptionRequest struct {
	PIN         string          `json:"pin" binding:"required,pin"`
	Status      string          `json:"status" binding:"omitempty,oneof=active trial expired cancelled"`
	Price       decimal.Decimal `json:"price"`
	PurchasedAt time.Time       `json:"purchased_at"`
	ExpiresAt   time.Time       `json:"expires_at"`
}

// AddCustomerRequest is the request for the provisioning workflow
type AddCustomerRequest struct {
	Customer     CreateCustomerRequest `json:"customer" binding:"required"`
	Subscription SubscriptionRequest   `json:"subscription" binding:"required"`
}

// UpdateCustomerRequest is the request to update a customer.
// Nil fields are left unchanged.
type UpdateCustomerRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
	Phone     *string `json:"phone" binding:"omitempty,max=50"`
	Email     *string `json:"email" binding:"omitempty,email,max=200"`
}

// ProfileResponse is the display enrichment in customer responses
type ProfileResponse struct {
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

// CustomerResponse is the customer representation in responses
type CustomerResponse struct {
	ID        uuid.UUID        `json:"id"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Phone     string           `json:"phone,omitempty"`
	Email     string           `json:"email,omitempty"`
	Profile   *ProfileResponse `json:"profile,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// CustomerListResponse is the cached customer collection payload
type CustomerListResponse struct {
	Count     int64              `json:"count"`
	Customers []CustomerResponse `json:"customers"`
}

// SubscriptionResponse is the subscription representation in responses
type SubscriptionResponse struct {
	ID          uuid.UUID       `json:"id"`
	AccountID   uuid.UUID       `json:"account_id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	PIN         string          `json:"pin"`
	Status      string          `json:"status"`
	Price       decimal.Decimal `json:"price"`
	PurchasedAt time.Time       `json:"purchased_at"`
	ExpiresAt   time.Time       `json:"expires_at"`
}

// AccountResponse is the account representation in responses
type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ProductID string    `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountDetailResponse is an account composed with its subscriptions and
// the customers they attach
type AccountDetailResponse struct {
	AccountResponse
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	Customers     []CustomerResponse     `json:"customers"`
}

// CustomerDetailResponse is a customer composed with the accounts it is
// subscribed to
type CustomerDetailResponse struct {
	CustomerResponse
	Accounts []AccountResponse `json:"accounts"`
}

// ToCustomerResponse converts a domain customer to a response DTO
func ToCustomerResponse(customer *crm.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Phone:     customer.Phone,
		Email:     customer.Email,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
	if customer.Profile != nil {
		resp.Profile = &ProfileResponse{
			DisplayName: customer.Profile.DisplayName,
			AvatarURL:   customer.Profile.AvatarURL,
			Bio:         customer.Profile.Bio,
		}
	}
	return resp
}

// ToCustomerResponses converts a slice of domain customers
func ToCustomerResponses(customers []crm.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}

// ToSubscriptionResponse converts a domain subscription to a response DTO
func ToSubscriptionResponse(sub *billing.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:          sub.ID,
		AccountID:   sub.AccountID,
		CustomerID:  sub.CustomerID,
		PIN:         sub.PIN,
		Status:      string(sub.Status),
		Price:       sub.Price,
		PurchasedAt: sub.PurchasedAt,
		ExpiresAt:   sub.ExpiresAt,
	}
}

// ToAccountResponse converts a domain account to a response DTO
func ToAccountResponse(account *billing.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		ProductID: account.ProductID,
		CreatedAt: account.CreatedAt,
	}
}
