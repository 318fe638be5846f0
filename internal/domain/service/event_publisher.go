package service

import (
	"context"
	"time"
)

// LoginEventMessage is the wire form of a login event handed to the audit worker.
type LoginEventMessage struct {
	RequestID         string    `json:"request_id,omitempty"` // For distributed tracing
	EventID           string    `json:"event_id"`
	IdentityID        string    `json:"identity_id"`
	Provider          string    `json:"provider"`
	ProviderSubjectID string    `json:"provider_subject_id"`
	FirstLogin        bool      `json:"first_login"`
	OccurredAt        time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLoginEvent hands a login event to the audit pipeline.
	PublishLoginEvent(ctx context.Context, event *LoginEventMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
