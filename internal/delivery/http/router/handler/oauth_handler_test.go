package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"algoarena/config"
	deliverycontext "algoarena/internal/delivery/context"
	"algoarena/internal/delivery/http/response"
	"algoarena/internal/domain/entity"
	domainerrors "algoarena/internal/domain/errors"
	mockUsecase "algoarena/internal/mocks/usecase"
	"algoarena/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testFrontendBase = "http://localhost:3000"

func newTestOAuthHandler(t *testing.T) (*OAuthHandler, *mockUsecase.MockLoginUsecase) {
	loginUC := mockUsecase.NewMockLoginUsecase(t)
	cfg := &config.Config{
		Frontend: &config.FrontendConfig{BaseURL: testFrontendBase},
		Auth:     &config.AuthConfig{SecureCookies: true},
	}

	return NewOAuthHandler(loginUC, cfg, newTestLogger()), loginUC
}

func newCallbackContext(provider, query, stateCookie string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newTestContext(http.MethodGet, "/login/oauth2/code/"+provider+"?"+query, "")
	c.SetParamNames("provider")
	c.SetParamValues(provider)
	if stateCookie != "" {
		c.Request().AddCookie(&http.Cookie{Name: stateCookieName, Value: stateCookie})
	}

	return c, rec
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func assertFailureRedirect(t *testing.T, location string) {
	t.Helper()

	assert.Equal(t, testFrontendBase+"?error=auth_failed", location)
}

func TestOAuthHandler_StartLogin(t *testing.T) {
	h, loginUC := newTestOAuthHandler(t)
	c, rec := newTestContext(http.MethodGet, "/oauth2/authorization/github", "")
	c.SetParamNames("provider")
	c.SetParamValues("github")

	var boundState string
	loginUC.EXPECT().AuthorizationURL(entity.ProviderTypeGitHub, mock.AnythingOfType("string")).
		RunAndReturn(func(_ entity.ProviderType, state string) (string, error) {
			boundState = state

			return "https://github.com/login/oauth/authorize?state=" + state, nil
		})

	require.NoError(t, h.StartLogin(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://github.com/login/oauth/authorize?state="+boundState, rec.Header().Get(echo.HeaderLocation))
	assert.NotEmpty(t, boundState)

	cookie := findCookie(rec.Result().Cookies(), stateCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, boundState, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 300, cookie.MaxAge)
}

func TestOAuthHandler_StartLogin_UnknownProvider(t *testing.T) {
	h, _ := newTestOAuthHandler(t)
	c, _ := newTestContext(http.MethodGet, "/oauth2/authorization/gitlab", "")
	c.SetParamNames("provider")
	c.SetParamValues("gitlab")

	assert.ErrorIs(t, h.StartLogin(c), domainerrors.ErrUnsupportedProvider)
}

func TestOAuthHandler_Callback_Success(t *testing.T) {
	h, loginUC := newTestOAuthHandler(t)
	c, rec := newCallbackContext("github", "code=code-1&state=state-1", "state-1")

	loginUC.EXPECT().CompleteLogin(mock.Anything, entity.ProviderTypeGitHub, "code-1").
		Return(&usecase.LoginOutput{Credentials: newPair(), Identity: newAlice(), FirstLogin: true}, nil)

	require.NoError(t, h.Callback(c))

	result := rec.Result()
	assert.Equal(t, http.StatusFound, result.StatusCode)

	location, err := url.Parse(result.Header.Get(echo.HeaderLocation))
	require.NoError(t, err)
	assert.Equal(t, "localhost:3000", location.Host)
	assert.Equal(t, "/auth/callback", location.Path)
	assert.Equal(t, "access-token", location.Query().Get("accessToken"))
	assert.Equal(t, "refresh-token", location.Query().Get("refreshToken"))
	assert.Equal(t, "Bearer", location.Query().Get("tokenType"))
	assert.Equal(t, "86400", location.Query().Get("expiresIn"))

	cleared := findCookie(result.Cookies(), stateCookieName)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
	assert.Contains(t, result.Header.Get(echo.HeaderSetCookie), "Max-Age=0")
}

func TestOAuthHandler_Callback_Failures(t *testing.T) {
	tests := []struct {
		name        string
		provider    string
		query       string
		stateCookie string
		loginErr    error
	}{
		{name: "state mismatch", provider: "github", query: "code=c&state=forged", stateCookie: "state-1"},
		{name: "missing state cookie", provider: "github", query: "code=c&state=state-1"},
		{name: "missing state parameter", provider: "github", query: "code=c", stateCookie: "state-1"},
		{name: "provider denied consent", provider: "github", query: "error=access_denied&state=state-1", stateCookie: "state-1"},
		{name: "unknown provider", provider: "gitlab", query: "code=c&state=state-1", stateCookie: "state-1"},
		{name: "incomplete profile", provider: "github", query: "code=c&state=state-1", stateCookie: "state-1", loginErr: domainerrors.ErrProviderDataIncomplete},
		{name: "store failure", provider: "github", query: "code=c&state=state-1", stateCookie: "state-1", loginErr: errors.Wrap(domainerrors.ErrStoreFailure, "down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, loginUC := newTestOAuthHandler(t)
			c, rec := newCallbackContext(tt.provider, tt.query, tt.stateCookie)

			if tt.loginErr != nil {
				loginUC.EXPECT().CompleteLogin(mock.Anything, entity.ProviderTypeGitHub, "c").Return(nil, tt.loginErr)
			}

			require.NoError(t, h.Callback(c))

			result := rec.Result()
			assert.Equal(t, http.StatusFound, result.StatusCode)
			assertFailureRedirect(t, result.Header.Get(echo.HeaderLocation))
			assert.NotContains(t, result.Header.Get(echo.HeaderLocation), "accessToken")

			cleared := findCookie(result.Cookies(), stateCookieName)
			require.NotNil(t, cleared)
			assert.Negative(t, cleared.MaxAge)
		})
	}
}

func TestOAuthHandler_LoginURL(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		h, loginUC := newTestOAuthHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/frontend/auth/google", "")
		c.SetParamNames("provider")
		c.SetParamValues("google")

		loginUC.EXPECT().Providers().Return([]entity.ProviderType{entity.ProviderTypeGoogle, entity.ProviderTypeGitHub})

		require.NoError(t, h.LoginURL(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, LoginURLResponse{Provider: "google", LoginURL: "/oauth2/authorization/google"}, decodeBody[LoginURLResponse](t, rec))
	})

	t.Run("redirect", func(t *testing.T) {
		h, loginUC := newTestOAuthHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/frontend/auth/github?redirect=true", "")
		c.SetParamNames("provider")
		c.SetParamValues("github")

		loginUC.EXPECT().Providers().Return([]entity.ProviderType{entity.ProviderTypeGitHub})

		require.NoError(t, h.LoginURL(c))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/oauth2/authorization/github", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("unconfigured provider", func(t *testing.T) {
		h, loginUC := newTestOAuthHandler(t)
		c, _ := newTestContext(http.MethodGet, "/api/frontend/auth/google", "")
		c.SetParamNames("provider")
		c.SetParamValues("google")

		loginUC.EXPECT().Providers().Return([]entity.ProviderType{entity.ProviderTypeGitHub})

		assert.ErrorIs(t, h.LoginURL(c), domainerrors.ErrUnsupportedProvider)
	})
}

func TestOAuthHandler_Logout(t *testing.T) {
	h, _ := newTestOAuthHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/frontend/auth/logout", "")

	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, response.MessageResponse{Success: true, Message: "Logged out successfully"}, decodeBody[response.MessageResponse](t, rec))
}

func TestOAuthHandler_CurrentUser(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		h, _ := newTestOAuthHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/frontend/user", "")
		deliverycontext.SetPrincipal(c, newAlice())

		require.NoError(t, h.CurrentUser(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[CurrentUserResponse](t, rec)
		assert.True(t, body.Authenticated)
		assert.Equal(t, "alice", body.User.Username)
	})

	t.Run("no credential", func(t *testing.T) {
		h, _ := newTestOAuthHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/frontend/user", "")

		require.NoError(t, h.CurrentUser(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, CurrentUserResponse{Message: "No valid token provided"}, decodeBody[CurrentUserResponse](t, rec))
	})

	t.Run("rejected credential", func(t *testing.T) {
		h, _ := newTestOAuthHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/frontend/user", "")
		c.Request().Header.Set(echo.HeaderAuthorization, "Bearer expired")

		require.NoError(t, h.CurrentUser(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Token is invalid or expired", decodeBody[CurrentUserResponse](t, rec).Message)
	})
}
