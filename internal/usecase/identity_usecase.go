// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"algoarena/internal/domain/entity"
	"algoarena/internal/domain/service"
)

// ReconcileOutput is the identity a provider login resolved to.
type ReconcileOutput struct {
	Identity   *entity.Identity
	FirstLogin bool
}

// IdentityBridge turns a provider profile into a persisted identity.
// Reconciling the same (provider, subject) twice never creates a second record,
// including when two first logins race each other.
type IdentityBridge interface {
	Reconcile(ctx context.Context, provider entity.ProviderType, profile service.ProviderProfile) (*ReconcileOutput, error)
}
