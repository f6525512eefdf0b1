package crm

import (
	"regexp"
	"strings"
	"time"

	"github.com/clubhub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Customer represents a person registered under a tenant.
// It is the aggregate root for customer-related operations; a customer may be
// attached to any number of accounts through subscriptions, but its own
// lifecycle is independent of those links.
type Customer struct {
	shared.TenantAggregateRoot
	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100);not null"`
	Phone     string `gorm:"type:varchar(50);index"`
	Email     string `gorm:"type:varchar(200);index"`

	// Profile is a read-only display enrichment loaded alongside the
	// customer. It is never mutated through this aggregate.
	Profile *Profile `gorm:"-"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with required fields
func NewCustomer(tenantID uuid.UUID, firstName, lastName, phone, email string) (*Customer, error) {
	if err := validateName(firstName, "INVALID_FIRST_NAME", "First name"); err != nil {
		return nil, err
	}
	if err := validateName(lastName, "INVALID_LAST_NAME", "Last name"); err != nil {
		return nil, err
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return nil, err
		}
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return nil, err
		}
	}

	customer := &Customer{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		FirstName:           firstName,
		LastName:            lastName,
		Phone:               phone,
		Email:               strings.ToLower(email),
	}

	customer.AddDomainEvent(NewCustomerCreatedEvent(customer))

	return customer, nil
}

// Update updates the customer's details
func (c *Customer) Update(firstName, lastName, phone, email string) error {
	if err := validateName(firstName, "INVALID_FIRST_NAME", "First name"); err != nil {
		return err
	}
	if err := validateName(lastName, "INVALID_LAST_NAME", "Last name"); err != nil {
		return err
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	c.FirstName = firstName
	c.LastName = lastName
	c.Phone = phone
	c.Email = strings.ToLower(email)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerUpdatedEvent(c))

	return nil
}

// FullName returns the customer's display name
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Validation functions

func validateName(name, code, label string) error {
	if name == "" {
		return shared.NewDomainError(code, label+" cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError(code, label+" cannot exceed 100 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
	}
	validPhone := regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	if !validPhone.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
