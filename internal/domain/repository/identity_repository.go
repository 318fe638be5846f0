// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"algoarena/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrIdentityNotFound is returned when no identity matches the lookup.
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrIdentityConflict is returned by Create when (provider, subject) is already taken.
	ErrIdentityConflict = errors.New("identity already exists for provider subject")
)

// IdentityRepository persists identities. Implementations must enforce
// uniqueness of (Provider, ProviderSubjectID) at the storage level.
type IdentityRepository interface {
	// FindByProviderSubject is the primary lookup used by logins and the authentication gate.
	FindByProviderSubject(ctx context.Context, provider entity.ProviderType, subject string) (*entity.Identity, error)

	// FindBySubject serves credentials that carry no provider claim.
	// When several providers share the subject the oldest identity wins.
	FindBySubject(ctx context.Context, subject string) (*entity.Identity, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindByEmail returns the oldest identity holding the address.
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)

	// ListAll returns every identity ordered by creation time.
	ListAll(ctx context.Context) ([]*entity.Identity, error)

	// Create inserts a new identity and fills in its ID.
	Create(ctx context.Context, identity *entity.Identity) error

	// TouchLastLogin stamps a successful login without altering any other field.
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// UpdateProfile writes the editable display fields (name, username).
	UpdateProfile(ctx context.Context, identity *entity.Identity) error

	DeleteByID(ctx context.Context, id uuid.UUID) error
}
