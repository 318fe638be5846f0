package postgres

import (
	"context"

	"algoarena/internal/domain/entity"
	domainerrors "algoarena/internal/domain/errors"
	"algoarena/internal/domain/repository"
	"algoarena/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultAuditListLimit = 50

type loginAuditRepository struct {
	db *gorm.DB
}

// NewLoginAuditRepository is the constructor for loginAuditRepository.
func NewLoginAuditRepository(db *gorm.DB) repository.LoginAuditRepository {
	return &loginAuditRepository{db: db}
}

// Record inserts the event, ignoring redeliveries of an already stored id.
func (repo *loginAuditRepository) Record(ctx context.Context, event *entity.LoginEvent) error {
	eventM := fromLoginEventDomain(event)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(eventM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record login event")
	}

	return nil
}

func (repo *loginAuditRepository) ListByIdentity(ctx context.Context, identityID uuid.UUID, limit int) ([]*entity.LoginEvent, error) {
	if limit <= 0 {
		limit = defaultAuditListLimit
	}

	var eventMs []*model.LoginEventModel
	err := repo.db.WithContext(ctx).
		Where("identity_id = ?", identityID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&eventMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list login events")
	}

	events := make([]*entity.LoginEvent, 0, len(eventMs))
	for _, eventM := range eventMs {
		events = append(events, toLoginEventDomain(eventM))
	}

	return events, nil
}

func (repo *loginAuditRepository) CountByIdentity(ctx context.Context, identityID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.LoginEventModel{}).
		Where("identity_id = ?", identityID).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count login events")
	}

	return count, nil
}

func (repo *loginAuditRepository) DeleteByIdentity(ctx context.Context, identityID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("identity_id = ?", identityID).Delete(&model.LoginEventModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete login events")
	}

	return nil
}

func toLoginEventDomain(eventM *model.LoginEventModel) *entity.LoginEvent {
	return &entity.LoginEvent{
		ID:                eventM.ID,
		RequestID:         eventM.RequestID,
		IdentityID:        eventM.IdentityID,
		Provider:          entity.ProviderType(eventM.Provider),
		ProviderSubjectID: eventM.ProviderSubjectID,
		FirstLogin:        eventM.FirstLogin,
		OccurredAt:        eventM.OccurredAt,
	}
}

func fromLoginEventDomain(event *entity.LoginEvent) *model.LoginEventModel {
	return &model.LoginEventModel{
		ID:                event.ID,
		RequestID:         event.RequestID,
		IdentityID:        event.IdentityID,
		Provider:          event.Provider.String(),
		ProviderSubjectID: event.ProviderSubjectID,
		FirstLogin:        event.FirstLogin,
		OccurredAt:        event.OccurredAt,
	}
}
