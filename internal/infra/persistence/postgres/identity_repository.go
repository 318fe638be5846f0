// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"algoarena/internal/domain/entity"
	domainerrors "algoarena/internal/domain/errors"
	"algoarena/internal/domain/repository"
	"algoarena/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// identityRepository implements repository.IdentityRepository using GORM.
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository returns the repository as a domain interface, adhering to dependency inversion.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{db: db}
}

// FindByProviderSubject reads from the primary so a caller that just lost an
// insert race sees the winning row even when replicas lag.
func (repo *identityRepository) FindByProviderSubject(ctx context.Context, provider entity.ProviderType, subject string) (*entity.Identity, error) {
	var identityM model.IdentityModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("provider = ? AND provider_subject_id = ?", provider.String(), subject).
		Take(&identityM).Error
	if err != nil {
		return nil, translateFindError(err, "failed to find identity by provider subject")
	}

	return toIdentityDomain(&identityM), nil
}

func (repo *identityRepository) FindBySubject(ctx context.Context, subject string) (*entity.Identity, error) {
	var identityM model.IdentityModel
	err := repo.db.WithContext(ctx).
		Where("provider_subject_id = ?", subject).
		Order("created_at ASC").
		First(&identityM).Error
	if err != nil {
		return nil, translateFindError(err, "failed to find identity by subject")
	}

	return toIdentityDomain(&identityM), nil
}

func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	var identityM model.IdentityModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&identityM).Error; err != nil {
		return nil, translateFindError(err, "failed to find identity by id")
	}

	return toIdentityDomain(&identityM), nil
}

func (repo *identityRepository) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	var identityM model.IdentityModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at ASC").
		First(&identityM).Error
	if err != nil {
		return nil, translateFindError(err, "failed to find identity by email")
	}

	return toIdentityDomain(&identityM), nil
}

func (repo *identityRepository) ListAll(ctx context.Context) ([]*entity.Identity, error) {
	var identityMs []*model.IdentityModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&identityMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list identities")
	}

	identities := make([]*entity.Identity, 0, len(identityMs))
	for _, identityM := range identityMs {
		identities = append(identities, toIdentityDomain(identityM))
	}

	return identities, nil
}

// Create inserts the identity. A concurrent insert of the same provider subject
// surfaces as repository.ErrIdentityConflict.
func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	identityM := fromIdentityDomain(identity)

	if err := repo.db.WithContext(ctx).Create(identityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrIdentityConflict, err.Error())
		}
		if isConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("identity violates a storage constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity")
	}

	identity.ID = identityM.ID
	identity.CreatedAt = identityM.CreatedAt

	return nil
}

func (repo *identityRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("id = ?", id).
		Update("last_login_at", at)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update last login")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdentityNotFound
	}

	return nil
}

func (repo *identityRepository) UpdateProfile(ctx context.Context, identity *entity.Identity) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("id = ?", identity.ID).
		Updates(map[string]any{
			"name":     identity.Name,
			"username": identity.Username,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update identity profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdentityNotFound
	}

	return nil
}

func (repo *identityRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.IdentityModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete identity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdentityNotFound
	}

	return nil
}

func translateFindError(err error, details string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrIdentityNotFound
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func toIdentityDomain(identityM *model.IdentityModel) *entity.Identity {
	if identityM == nil {
		return nil
	}

	return &entity.Identity{
		ID:                identityM.ID,
		Provider:          entity.ProviderType(identityM.Provider),
		ProviderSubjectID: identityM.ProviderSubjectID,
		Name:              identityM.Name,
		Username:          identityM.Username,
		Email:             derefString(identityM.Email),
		AvatarURL:         derefString(identityM.AvatarURL),
		CreatedAt:         identityM.CreatedAt,
		LastLoginAt:       identityM.LastLoginAt,
	}
}

func fromIdentityDomain(identity *entity.Identity) *model.IdentityModel {
	return &model.IdentityModel{
		ID:                identity.ID,
		Provider:          identity.Provider.String(),
		ProviderSubjectID: identity.ProviderSubjectID,
		Name:              identity.Name,
		Username:          identity.Username,
		Email:             optionalString(identity.Email),
		AvatarURL:         optionalString(identity.AvatarURL),
		CreatedAt:         identity.CreatedAt,
		LastLoginAt:       identity.LastLoginAt,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
