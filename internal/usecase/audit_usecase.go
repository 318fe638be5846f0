package usecase

import (
	"context"

	"algoarena/internal/domain/service"
)

// AuditUsecase persists login events delivered by the message queue.
type AuditUsecase interface {
	RecordLogin(ctx context.Context, msg *service.LoginEventMessage) error
}
