package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "algoarena/internal/delivery/context"
	"algoarena/internal/domain/constants"
	"algoarena/internal/domain/entity"
	domainerrors "algoarena/internal/domain/errors"
	"algoarena/internal/domain/repository"
	"algoarena/internal/domain/service"
	"algoarena/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const bearerScheme = "Bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	credentials  service.CredentialService
	identityRepo repository.IdentityRepository
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	credentials service.CredentialService,
	identityRepo repository.IdentityRepository,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		credentials:  credentials,
		identityRepo: identityRepo,
		logger:       logger,
	}
}

func (srv *authService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate accepts only access credentials.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	return srv.resolve(ctx, token, entity.CredentialKindAccess)
}

// IssueForIdentity mints a credential pair for an already resolved identity.
func (srv *authService) IssueForIdentity(ctx context.Context, identity *entity.Identity) (*usecase.CredentialOutput, error) {
	if identity == nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "no authenticated identity")
	}

	pair, err := srv.credentials.IssuePair(identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue credentials")
	}

	srv.getLogger(ctx).Debug("Issued credential pair",
		slog.String("identity_id", identity.ID.String()),
	)

	return &usecase.CredentialOutput{Credentials: pair, Identity: identity}, nil
}

// IssueForEmail looks an identity up by email and mints a pair for it.
// Only reachable when test routes are enabled.
func (srv *authService) IssueForEmail(ctx context.Context, email string) (*usecase.CredentialOutput, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "email is required")
	}

	identity, err := srv.identityRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrIdentityNotFound, "no identity with email %s", email)
		}

		return nil, errors.Wrap(err, "failed to find identity by email")
	}

	return srv.IssueForIdentity(ctx, identity)
}

// Refresh mints a new access credential. The refresh credential itself is not rotated.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.CredentialOutput, error) {
	identity, err := srv.resolve(ctx, strings.TrimSpace(refreshToken), entity.CredentialKindRefresh)
	if err != nil {
		return nil, err
	}

	accessToken, err := srv.credentials.IssueAccess(identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access credential")
	}

	return &usecase.CredentialOutput{
		Credentials: &entity.CredentialPair{
			AccessToken: accessToken,
			TokenType:   constants.TokenTypeBearer,
			ExpiresIn:   int64(srv.credentials.AccessTTL().Seconds()),
		},
	}, nil
}

// Validate accepts credentials of either kind, with or without the "Bearer " prefix.
func (srv *authService) Validate(ctx context.Context, token string) *usecase.ValidateOutput {
	token = stripBearerScheme(token)
	if token == "" {
		return &usecase.ValidateOutput{Message: "No token provided"}
	}

	claims, err := srv.credentials.Inspect(token)
	if err != nil {
		srv.getLogger(ctx).Debug("Credential failed validation", slog.String("reason", credentialFailureReason(err)))

		return &usecase.ValidateOutput{Message: "Token is invalid or expired"}
	}

	userID, _ := claims[entity.ClaimUserID].(string)

	return &usecase.ValidateOutput{
		Valid:   true,
		UserID:  userID,
		Message: "Token is valid",
	}
}

// resolve verifies the credential, checks its kind and loads the identity it names.
func (srv *authService) resolve(ctx context.Context, token string, kind entity.CredentialKind) (*entity.Identity, error) {
	claims, err := srv.credentials.Inspect(token)
	if err != nil {
		return nil, err
	}

	if tokenKind, _ := claims[entity.ClaimTokenType].(string); entity.CredentialKind(tokenKind) != kind {
		return nil, errors.Wrapf(domainerrors.ErrWrongCredentialKind, "expected %s credential", kind)
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, errors.Wrap(domainerrors.ErrMalformedCredential, "subject claim missing")
	}

	identity, err := srv.lookup(ctx, claims, subject)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "identity named by credential no longer exists")
		}

		return nil, errors.Wrap(domainerrors.ErrStoreFailure, err.Error())
	}

	return identity, nil
}

// lookup prefers the provider-scoped key. Credentials without a provider claim
// fall back to the oldest identity with that subject.
func (srv *authService) lookup(ctx context.Context, claims jwt.MapClaims, subject string) (*entity.Identity, error) {
	rawProvider, _ := claims[entity.ClaimProvider].(string)
	if provider, ok := entity.ParseProviderType(rawProvider); ok {
		return srv.identityRepo.FindByProviderSubject(ctx, provider, subject)
	}

	return srv.identityRepo.FindBySubject(ctx, subject)
}

// stripBearerScheme drops an optional leading "Bearer" scheme.
func stripBearerScheme(raw string) string {
	fields := strings.Fields(raw)
	switch {
	case len(fields) == 0:
		return ""
	case strings.EqualFold(fields[0], bearerScheme):
		return strings.Join(fields[1:], "")
	default:
		return strings.Join(fields, "")
	}
}

// credentialFailureReason names the failure category without echoing the token.
func credentialFailureReason(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return "UNKNOWN"
}
