package model

import (
	"time"

	"github.com/google/uuid"
)

// LoginEventModel mirrors the 'login_events' audit table. The primary key is the published event id.
type LoginEventModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	RequestID         string    `gorm:"type:varchar(64)"`
	IdentityID        uuid.UUID `gorm:"type:uuid;not null;index:idx_login_events_identity_occurred,priority:1"`
	Provider          string    `gorm:"type:varchar(32);not null"`
	ProviderSubjectID string    `gorm:"type:varchar(255);not null"`
	FirstLogin        bool      `gorm:"not null;default:false"`
	OccurredAt        time.Time `gorm:"not null;index:idx_login_events_identity_occurred,priority:2,sort:desc"`
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoginEventModel) TableName() string {
	return "login_events"
}
