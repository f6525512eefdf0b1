package crm

import (
	"github.com/clubhub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Profile is a read-only display enrichment attached to a customer.
// It is composed into customer reads and never mutated through the CRM
// operations in this service.
type Profile struct {
	shared.BaseEntity
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	DisplayName string    `gorm:"type:varchar(200)"`
	AvatarURL   string    `gorm:"type:varchar(500)"`
	Bio         string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Profile) TableName() string {
	return "profiles"
}
