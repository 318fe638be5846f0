package handler

import (
	"crypto/rand"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"time"

	"algoarena/config"
	deliverycontext "algoarena/internal/delivery/context"
	"algoarena/internal/delivery/http/response"
	"algoarena/internal/domain/entity"
	domainerrors "algoarena/internal/domain/errors"
	"algoarena/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	stateCookieName   = "__oauth_state"
	stateCookiePath   = "/login/oauth2"
	stateCookieMaxAge = 5 * time.Minute

	authFailedError = "auth_failed"
)

// LoginURLResponse tells the frontend where to send the browser to start a provider login.
type LoginURLResponse struct {
	Provider string `json:"provider"`
	LoginURL string `json:"loginUrl"`
}

// CurrentUserResponse is the frontend-friendly view of the caller.
type CurrentUserResponse struct {
	Authenticated bool                 `json:"authenticated"`
	Message       string               `json:"message,omitempty"`
	User          *response.UserDetail `json:"user,omitempty"`
}

// OAuthHandler runs the provider login flow and the frontend helpers around it.
type OAuthHandler struct {
	loginUC       usecase.LoginUsecase
	frontendBase  string
	secureCookies bool
	logger        *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler, injected by Fx.
func NewOAuthHandler(loginUC usecase.LoginUsecase, cfg *config.Config, logger *slog.Logger) *OAuthHandler {
	handler := &OAuthHandler{
		loginUC: loginUC,
		logger:  logger,
	}
	if cfg.Frontend != nil {
		handler.frontendBase = cfg.Frontend.BaseURL
	}
	if cfg.Auth != nil {
		handler.secureCookies = cfg.Auth.SecureCookies
	}

	return handler
}

// StartLogin binds a fresh anti-forgery state to the browser and redirects to the provider.
func (h *OAuthHandler) StartLogin(c echo.Context) error {
	provider, ok := entity.ParseProviderType(c.Param("provider"))
	if !ok {
		return errors.WithStack(domainerrors.ErrUnsupportedProvider)
	}

	state := rand.Text()

	authURL, err := h.loginUC.AuthorizationURL(provider, state)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.stateCookie(state, int(stateCookieMaxAge.Seconds())))

	return c.Redirect(http.StatusFound, authURL)
}

// Callback completes the provider login and hands the credentials to the frontend.
// Every failure ends in the same generic redirect; details stay in the logs.
func (h *OAuthHandler) Callback(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	expectedState := ""
	if cookie, err := c.Cookie(stateCookieName); err == nil {
		expectedState = cookie.Value
	}
	c.SetCookie(h.stateCookie("", -1))

	provider, ok := entity.ParseProviderType(c.Param("provider"))
	if !ok {
		logger.Warn("OAuth callback for unknown provider", slog.String("provider", c.Param("provider")))

		return h.redirectFailure(c)
	}

	if providerErr := c.QueryParam("error"); providerErr != "" {
		logger.Warn("Provider denied authorization",
			slog.String("provider", provider.String()),
			slog.String("provider_error", providerErr),
		)

		return h.redirectFailure(c)
	}

	if !statesMatch(expectedState, c.QueryParam("state")) {
		logger.Warn("OAuth state mismatch", slog.String("provider", provider.String()))

		return h.redirectFailure(c)
	}

	output, err := h.loginUC.CompleteLogin(ctx, provider, c.QueryParam("code"))
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, domainerrors.ErrStoreFailure) {
			level = slog.LevelError
		}
		logger.Log(ctx, level, "OAuth login failed",
			slog.String("provider", provider.String()),
			slog.Any("error", err),
		)

		return h.redirectFailure(c)
	}

	query := url.Values{}
	query.Set("accessToken", output.Credentials.AccessToken)
	query.Set("refreshToken", output.Credentials.RefreshToken)
	query.Set("tokenType", output.Credentials.TokenType)
	query.Set("expiresIn", strconv.FormatInt(output.Credentials.ExpiresIn, 10))

	return c.Redirect(http.StatusFound, h.frontendBase+"/auth/callback?"+query.Encode())
}

// LoginURL returns the login entry point for a provider, or redirects to it when redirect=true.
func (h *OAuthHandler) LoginURL(c echo.Context) error {
	provider, ok := entity.ParseProviderType(c.Param("provider"))
	if !ok || !slices.Contains(h.loginUC.Providers(), provider) {
		return errors.WithStack(domainerrors.ErrUnsupportedProvider)
	}

	loginURL := "/oauth2/authorization/" + provider.String()
	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusFound, loginURL)
	}

	return c.JSON(http.StatusOK, LoginURLResponse{
		Provider: provider.String(),
		LoginURL: loginURL,
	})
}

// Logout acknowledges a logout. Credentials are stateless; the client discards them.
func (h *OAuthHandler) Logout(c echo.Context) error {
	return response.Message(c, "Logged out successfully")
}

// CurrentUser reports whether the caller is authenticated and, if so, who they are.
func (h *OAuthHandler) CurrentUser(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal != nil {
		return c.JSON(http.StatusOK, CurrentUserResponse{
			Authenticated: true,
			User:          response.NewUserDetail(principal),
		})
	}

	message := "Token is invalid or expired"
	if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
		message = "No valid token provided"
	}

	return c.JSON(http.StatusUnauthorized, CurrentUserResponse{Message: message})
}

// stateCookie builds the state cookie. A negative maxAge deletes it.
func (h *OAuthHandler) stateCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     stateCookieName,
		Value:    value,
		Path:     stateCookiePath,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *OAuthHandler) redirectFailure(c echo.Context) error {
	query := url.Values{}
	query.Set("error", authFailedError)

	return c.Redirect(http.StatusFound, h.frontendBase+"?"+query.Encode())
}

func statesMatch(expected, actual string) bool {
	if expected == "" || actual == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(expected), []byte(actual)) == 1
}
