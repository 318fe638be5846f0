package usecase

import (
	"context"

	"algoarena/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput holds the editable profile fields. Blank fields are left untouched.
type UpdateProfileInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// DashboardOutput summarizes an identity's account activity.
type DashboardOutput struct {
	Identity     *entity.Identity
	TotalLogins  int64
	RecentLogins []*entity.LoginEvent
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, identityID uuid.UUID) (*entity.Identity, error)
	UpdateProfile(ctx context.Context, identityID uuid.UUID, input *UpdateProfileInput) (*entity.Identity, error)
	Dashboard(ctx context.Context, identityID uuid.UUID) (*DashboardOutput, error)
	ListIdentities(ctx context.Context) ([]*entity.Identity, error)
	DeleteIdentity(ctx context.Context, identityID uuid.UUID) error
}
