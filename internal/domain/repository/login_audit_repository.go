package repository

import (
	"context"

	"algoarena/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginAuditRepository stores delivered login events.
type LoginAuditRepository interface {
	// Record stores the event. Replaying an event with the same ID is a no-op.
	Record(ctx context.Context, event *entity.LoginEvent) error

	// ListByIdentity returns the most recent events first.
	ListByIdentity(ctx context.Context, identityID uuid.UUID, limit int) ([]*entity.LoginEvent, error)

	CountByIdentity(ctx context.Context, identityID uuid.UUID) (int64, error)

	// DeleteByIdentity removes the audit trail of a deleted identity.
	DeleteByIdentity(ctx context.Context, identityID uuid.UUID) error
}
