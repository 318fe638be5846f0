package entity

import (
	"time"

	"github.com/google/uuid"
)

// LoginEvent records one successful provider login.
type LoginEvent struct {
	ID                uuid.UUID
	RequestID         string
	IdentityID        uuid.UUID
	Provider          ProviderType
	ProviderSubjectID string
	FirstLogin        bool // True when the login created the identity.
	OccurredAt        time.Time
}
