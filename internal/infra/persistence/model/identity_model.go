// Package model holds the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// IdentityModel mirrors the 'identities' table. (provider, provider_subject_id) is unique.
type IdentityModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Provider          string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_identities_provider_subject"`
	ProviderSubjectID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_identities_provider_subject;index:idx_identities_subject"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Username          string    `gorm:"type:varchar(255);not null"`
	Email             *string   `gorm:"type:varchar(320);index:idx_identities_email"`
	AvatarURL         *string   `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"not null"`
	LastLoginAt       time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}
