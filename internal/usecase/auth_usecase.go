package usecase

import (
	"context"

	"algoarena/internal/domain/entity"
)

// --- Output DTOs ---

// CredentialOutput carries freshly issued credentials.
// RefreshToken is empty and Identity is nil when only an access credential was renewed.
type CredentialOutput struct {
	Credentials *entity.CredentialPair
	Identity    *entity.Identity
}

// ValidateOutput reports whether a presented credential is currently acceptable.
type ValidateOutput struct {
	Valid   bool
	UserID  string
	Message string
}

// AuthUsecase covers every operation that reads or mints bearer credentials.
type AuthUsecase interface {
	// Authenticate resolves an access credential to its identity.
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)

	IssueForIdentity(ctx context.Context, identity *entity.Identity) (*CredentialOutput, error)
	IssueForEmail(ctx context.Context, email string) (*CredentialOutput, error)

	// Refresh exchanges a refresh credential for a new access credential.
	Refresh(ctx context.Context, refreshToken string) (*CredentialOutput, error)

	// Validate never fails; the outcome is reported in the output.
	Validate(ctx context.Context, token string) *ValidateOutput
}
