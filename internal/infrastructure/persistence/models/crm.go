package models

import (
	"github.com/clubhub/backend/internal/domain/crm"
	"github.com/google/uuid"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	TenantAggregateModel
	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100);not null"`
	Phone     string `gorm:"type:varchar(50);index"`
	Email     string `gorm:"type:varchar(200);index"`

	Profile *ProfileModel `gorm:"foreignKey:CustomerID"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *crm.Customer {
	customer := &crm.Customer{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		FirstName:           m.FirstName,
		LastName:            m.LastName,
		Phone:               m.Phone,
		Email:               m.Email,
	}
	if m.Profile != nil {
		customer.Profile = m.Profile.ToDomain()
	}
	return customer
}

// FromDomain populates the persistence model from a domain Customer entity.
// The profile is read-only enrichment and is never written through this model.
func (m *CustomerModel) FromDomain(c *crm.Customer) {
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	m.FirstName = c.FirstName
	m.LastName = c.LastName
	m.Phone = c.Phone
	m.Email = c.Email
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *crm.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// ProfileModel is the persistence model for the Profile enrichment entity.
type ProfileModel struct {
	BaseModel
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	DisplayName string    `gorm:"type:varchar(200)"`
	AvatarURL   string    `gorm:"type:varchar(500)"`
	Bio         string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToDomain converts the persistence model to a domain Profile entity.
func (m *ProfileModel) ToDomain() *crm.Profile {
	return &crm.Profile{
		BaseEntity:  m.BaseModel.ToDomain(),
		CustomerID:  m.CustomerID,
		DisplayName: m.DisplayName,
		AvatarURL:   m.AvatarURL,
		Bio:         m.Bio,
	}
}
