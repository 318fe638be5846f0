package middleware

import (
	"log/slog"
	"strings"

	"algoarena/config"
	deliverycontext "algoarena/internal/delivery/context"
	"algoarena/internal/delivery/http/policy"
	"algoarena/internal/delivery/http/response"
	domainerrors "algoarena/internal/domain/errors"
	"algoarena/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerScheme = "Bearer"

// AuthMiddleware attaches the caller's identity and enforces the access policy.
// Authenticate never rejects a request; Authorize does.
type AuthMiddleware struct {
	authUC    usecase.AuthUsecase
	skipPaths *policy.Table
	policy    *policy.Table
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthMiddleware {
	var publicPaths []string
	if cfg.Auth != nil {
		publicPaths = cfg.Auth.PublicPaths
	}

	return &AuthMiddleware{
		authUC:    authUC,
		skipPaths: policy.PublicTable(publicPaths),
		policy:    policy.DefaultTable(),
		logger:    logger,
	}
}

// Authenticate resolves a bearer credential to a principal when one is presented.
// Missing, invalid or orphaned credentials leave the request anonymous.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.skipPaths.IsPublic(c.Request().URL.Path) {
			return next(c)
		}

		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return next(c)
		}

		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		identity, err := m.authUC.Authenticate(ctx, token)
		if err != nil {
			if errors.Is(err, domainerrors.ErrStoreFailure) {
				logger.Error("Identity lookup failed during authentication", slog.Any("error", err))
			} else {
				logger.Debug("Bearer credential not accepted", slog.String("reason", failureReason(err)))
			}

			return next(c)
		}

		deliverycontext.SetPrincipal(c, identity)

		return next(c)
	}
}

// Authorize rejects anonymous requests to paths the policy does not mark public.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) Authorize(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.policy.IsPublic(c.Request().URL.Path) || deliverycontext.GetPrincipal(c) != nil {
			return next(c)
		}

		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid or expired token")
	}
}

// bearerToken extracts the credential from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}

// failureReason names the failure category without echoing the credential.
func failureReason(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return "UNKNOWN"
}
