package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "algoarena/internal/delivery/context"
	"algoarena/internal/domain/entity"
	domainerrors "algoarena/internal/domain/errors"
	"algoarena/internal/domain/repository"
	"algoarena/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const dashboardRecentLogins = 5

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager    repository.TransactionManager
	identityRepo repository.IdentityRepository
	auditRepo    repository.LoginAuditRepository
	logger       *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	identityRepo repository.IdentityRepository,
	auditRepo repository.LoginAuditRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager:    txManager,
		identityRepo: identityRepo,
		auditRepo:    auditRepo,
		logger:       logger,
	}
}

func (srv *profileService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves a single identity.
func (srv *profileService) GetProfile(ctx context.Context, identityID uuid.UUID) (*entity.Identity, error) {
	identity, err := srv.identityRepo.FindByID(ctx, identityID)
	if err != nil {
		return nil, wrapIdentityLookupError(err)
	}

	return identity, nil
}

// UpdateProfile renames the identity. At least one non-blank field is required.
func (srv *profileService) UpdateProfile(ctx context.Context, identityID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Identity, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("provide 'name' or 'username' to update")
	}

	srv.getLogger(ctx).Info("Updating profile", slog.String("identity_id", identityID.String()))

	var updated *entity.Identity

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()

		// 1. Load the current record
		identity, err := identityRepo.FindByID(ctx, identityID)
		if err != nil {
			return wrapIdentityLookupError(err)
		}

		// 2. Apply non-blank fields
		if !identity.Rename(input.Name, input.Username) {
			if isBlank(input.Name) && isBlank(input.Username) {
				return domainerrors.ErrValidationFailed.WithDetails("provide 'name' or 'username' to update")
			}
			updated = identity

			return nil
		}

		// 3. Persist
		if err := identityRepo.UpdateProfile(ctx, identity); err != nil {
			return wrapIdentityLookupError(err)
		}
		updated = identity

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return updated, nil
}

// Dashboard combines the identity with its recent login activity.
func (srv *profileService) Dashboard(ctx context.Context, identityID uuid.UUID) (*usecase.DashboardOutput, error) {
	identity, err := srv.identityRepo.FindByID(ctx, identityID)
	if err != nil {
		return nil, wrapIdentityLookupError(err)
	}

	total, err := srv.auditRepo.CountByIdentity(ctx, identityID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count logins")
	}

	recent, err := srv.auditRepo.ListByIdentity(ctx, identityID, dashboardRecentLogins)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent logins")
	}

	return &usecase.DashboardOutput{
		Identity:     identity,
		TotalLogins:  total,
		RecentLogins: recent,
	}, nil
}

func (srv *profileService) ListIdentities(ctx context.Context) ([]*entity.Identity, error) {
	identities, err := srv.identityRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list identities")
	}

	return identities, nil
}

// DeleteIdentity removes the identity together with its login audit trail.
func (srv *profileService) DeleteIdentity(ctx context.Context, identityID uuid.UUID) error {
	srv.getLogger(ctx).Info("Deleting identity", slog.String("identity_id", identityID.String()))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.LoginAuditRepo().DeleteByIdentity(ctx, identityID); err != nil {
			return errors.Wrap(err, "failed to delete login events")
		}

		if err := repoFactory.IdentityRepo().DeleteByID(ctx, identityID); err != nil {
			return wrapIdentityLookupError(err)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete identity")
	}

	return nil
}

func wrapIdentityLookupError(err error) error {
	if errors.Is(err, repository.ErrIdentityNotFound) {
		return errors.Wrap(domainerrors.ErrIdentityNotFound, "identity not found")
	}

	return errors.Wrap(err, "failed to access identity")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
