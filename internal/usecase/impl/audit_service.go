package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "algoarena/internal/delivery/context"
	"algoarena/internal/domain/entity"
	domainerrors "algoarena/internal/domain/errors"
	"algoarena/internal/domain/repository"
	"algoarena/internal/domain/service"
	"algoarena/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// auditService implements the AuditUsecase interface.
type auditService struct {
	auditRepo repository.LoginAuditRepository
	logger    *slog.Logger
}

// NewAuditService is the constructor for auditService.
func NewAuditService(auditRepo repository.LoginAuditRepository, logger *slog.Logger) usecase.AuditUsecase {
	return &auditService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

func (srv *auditService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordLogin stores a delivered login event. Malformed events fail validation
// so the caller can drop them instead of retrying.
func (srv *auditService) RecordLogin(ctx context.Context, msg *service.LoginEventMessage) error {
	event, err := loginEventFromMessage(msg)
	if err != nil {
		return err
	}

	if err := srv.auditRepo.Record(ctx, event); err != nil {
		return errors.Wrap(err, "failed to record login event")
	}

	srv.getLogger(ctx).Info("Login event recorded",
		slog.String("event_id", event.ID.String()),
		slog.String("identity_id", event.IdentityID.String()),
		slog.Bool("first_login", event.FirstLogin),
	)

	return nil
}

func loginEventFromMessage(msg *service.LoginEventMessage) (*entity.LoginEvent, error) {
	if msg == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "login event is empty")
	}

	eventID, err := uuid.Parse(msg.EventID)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid event id %q", msg.EventID)
	}

	identityID, err := uuid.Parse(msg.IdentityID)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid identity id %q", msg.IdentityID)
	}

	provider, ok := entity.ParseProviderType(msg.Provider)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown provider %q", msg.Provider)
	}

	if strings.TrimSpace(msg.ProviderSubjectID) == "" || msg.OccurredAt.IsZero() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "login event is missing subject or timestamp")
	}

	return &entity.LoginEvent{
		ID:                eventID,
		RequestID:         msg.RequestID,
		IdentityID:        identityID,
		Provider:          provider,
		ProviderSubjectID: msg.ProviderSubjectID,
		FirstLogin:        msg.FirstLogin,
		OccurredAt:        msg.OccurredAt.UTC(),
	}, nil
}
