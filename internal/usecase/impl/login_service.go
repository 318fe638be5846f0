package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "algoarena/internal/delivery/context"
	"algoarena/internal/domain/entity"
	domainerrors "algoarena/internal/domain/errors"
	"algoarena/internal/domain/service"
	"algoarena/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// publishTimeout bounds how long a login waits on the audit pipeline.
const publishTimeout = 5 * time.Second

// loginService implements the LoginUsecase interface.
type loginService struct {
	registry    service.OAuthRegistry
	bridge      usecase.IdentityBridge
	credentials service.CredentialService
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// NewLoginService is the constructor for loginService.
func NewLoginService(
	registry service.OAuthRegistry,
	bridge usecase.IdentityBridge,
	credentials service.CredentialService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.LoginUsecase {
	return &loginService{
		registry:    registry,
		bridge:      bridge,
		credentials: credentials,
		publisher:   publisher,
		logger:      logger,
	}
}

func (srv *loginService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *loginService) Providers() []entity.ProviderType {
	return srv.registry.Providers()
}

func (srv *loginService) AuthorizationURL(provider entity.ProviderType, state string) (string, error) {
	oauthProvider, ok := srv.registry.Get(provider)
	if !ok {
		return "", errors.Wrapf(domainerrors.ErrUnsupportedProvider, "provider %q is not configured", provider)
	}
	if state == "" {
		return "", errors.Wrap(domainerrors.ErrOAuthStateMismatch, "state is required")
	}

	return oauthProvider.AuthCodeURL(state), nil
}

// CompleteLogin exchanges the authorization code, reconciles the identity and
// issues a credential pair. Publishing the audit event is best effort.
func (srv *loginService) CompleteLogin(ctx context.Context, provider entity.ProviderType, code string) (*usecase.LoginOutput, error) {
	logger := srv.getLogger(ctx)

	oauthProvider, ok := srv.registry.Get(provider)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrUnsupportedProvider, "provider %q is not configured", provider)
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, "authorization code is missing")
	}

	profile, err := oauthProvider.FetchProfile(ctx, code)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, err.Error())
	}

	reconciled, err := srv.bridge.Reconcile(ctx, provider, profile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reconcile identity")
	}

	pair, err := srv.credentials.IssuePair(reconciled.Identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue credentials")
	}

	logger.Info("Provider login completed",
		slog.String("identity_id", reconciled.Identity.ID.String()),
		slog.String("provider", provider.String()),
		slog.Bool("first_login", reconciled.FirstLogin),
	)

	srv.publishLoginEvent(ctx, reconciled)

	return &usecase.LoginOutput{
		Credentials: pair,
		Identity:    reconciled.Identity,
		FirstLogin:  reconciled.FirstLogin,
	}, nil
}

func (srv *loginService) publishLoginEvent(ctx context.Context, reconciled *usecase.ReconcileOutput) {
	event := &service.LoginEventMessage{
		RequestID:         deliverycontext.GetRequestIDFromContext(ctx),
		EventID:           uuid.New().String(),
		IdentityID:        reconciled.Identity.ID.String(),
		Provider:          reconciled.Identity.Provider.String(),
		ProviderSubjectID: reconciled.Identity.ProviderSubjectID,
		FirstLogin:        reconciled.FirstLogin,
		OccurredAt:        reconciled.Identity.LastLoginAt,
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := srv.publisher.PublishLoginEvent(publishCtx, event); err != nil {
		srv.getLogger(ctx).Warn("Failed to publish login event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}
