// Package pubsub hands login events to the audit worker, either through
// Google Cloud Pub/Sub or by posting the push envelope straight to a local worker.
package pubsub

import (
	"context"
	"log/slog"

	"algoarena/config"
	"algoarena/internal/domain/constants"
	"algoarena/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// discardPublisher drops events when no audit pipeline is configured.
// Login never depends on the audit trail, so this is a valid production setting.
type discardPublisher struct {
	logger *slog.Logger
}

func (p *discardPublisher) PublishLoginEvent(ctx context.Context, event *service.LoginEventMessage) error {
	p.logger.Debug("[Audit] No publisher configured, login event discarded",
		slog.String("event_id", event.EventID),
	)

	return nil
}

func (p *discardPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the publisher named by pubsub.provider and closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing login event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, login events will not be audited")

		return &discardPublisher{logger: logger}, nil
	}

	if err := validatePubSubConfig(cfg); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		logger.Info("Publishing login events to local worker", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	default:
		logger.Info("Publishing login events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	}
}

func validatePubSubConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub.localEndpoint is required for the local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}

	return nil
}
