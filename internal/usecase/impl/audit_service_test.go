package impl

import (
	"context"
	"testing"
	"time"

	"algoarena/internal/domain/entity"
	domainerrors "algoarena/internal/domain/errors"
	"algoarena/internal/domain/service"
	mockRepo "algoarena/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLoginEventMessage() *service.LoginEventMessage {
	return &service.LoginEventMessage{
		RequestID:         "req-1",
		EventID:           uuid.NewString(),
		IdentityID:        uuid.NewString(),
		Provider:          "github",
		ProviderSubjectID: "42",
		FirstLogin:        true,
		OccurredAt:        time.Date(2026, 2, 2, 8, 0, 0, 0, time.FixedZone("CET", 3600)),
	}
}

func TestAuditService_RecordLogin(t *testing.T) {
	auditRepo := mockRepo.NewMockLoginAuditRepository(t)
	svc := NewAuditService(auditRepo, newDiscardLogger())
	ctx := context.Background()
	msg := newLoginEventMessage()

	auditRepo.EXPECT().
		Record(ctx, mock.MatchedBy(func(event *entity.LoginEvent) bool {
			return event.ID.String() == msg.EventID &&
				event.IdentityID.String() == msg.IdentityID &&
				event.Provider == entity.ProviderTypeGitHub &&
				event.FirstLogin &&
				event.OccurredAt.Location() == time.UTC &&
				event.OccurredAt.Equal(msg.OccurredAt)
		})).
		Return(nil)

	require.NoError(t, svc.RecordLogin(ctx, msg))
}

func TestAuditService_RecordLogin_RejectsMalformedEvents(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(msg *service.LoginEventMessage)
	}{
		{name: "bad event id", mutate: func(msg *service.LoginEventMessage) { msg.EventID = "nope" }},
		{name: "bad identity id", mutate: func(msg *service.LoginEventMessage) { msg.IdentityID = "" }},
		{name: "unknown provider", mutate: func(msg *service.LoginEventMessage) { msg.Provider = "gitlab" }},
		{name: "missing subject", mutate: func(msg *service.LoginEventMessage) { msg.ProviderSubjectID = "" }},
		{name: "missing timestamp", mutate: func(msg *service.LoginEventMessage) { msg.OccurredAt = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auditRepo := mockRepo.NewMockLoginAuditRepository(t)
			svc := NewAuditService(auditRepo, newDiscardLogger())
			msg := newLoginEventMessage()
			tt.mutate(msg)

			err := svc.RecordLogin(context.Background(), msg)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}

	svc := NewAuditService(mockRepo.NewMockLoginAuditRepository(t), newDiscardLogger())
	assert.ErrorIs(t, svc.RecordLogin(context.Background(), nil), domainerrors.ErrValidationFailed)
}

func TestAuditService_RecordLogin_StoreFailure(t *testing.T) {
	auditRepo := mockRepo.NewMockLoginAuditRepository(t)
	svc := NewAuditService(auditRepo, newDiscardLogger())
	ctx := context.Background()

	auditRepo.EXPECT().Record(ctx, mock.Anything).Return(errors.New("disk full"))

	err := svc.RecordLogin(ctx, newLoginEventMessage())

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
}
