package handler

import (
	"net/http"
	"testing"

	"algoarena/internal/domain/entity"
	domainerrors "algoarena/internal/domain/errors"
	mockUsecase "algoarena/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHomeHandler_Home(t *testing.T) {
	loginUC := mockUsecase.NewMockLoginUsecase(t)
	h := NewHomeHandler(loginUC, mockUsecase.NewMockProfileUsecase(t))
	c, rec := newTestContext(http.MethodGet, "/", "")

	loginUC.EXPECT().Providers().Return([]entity.ProviderType{entity.ProviderTypeGoogle, entity.ProviderTypeGitHub})

	require.NoError(t, h.Home(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Body.String(), `<a href="/oauth2/authorization/google">Login with google</a>`)
	assert.Contains(t, rec.Body.String(), `<a href="/oauth2/authorization/github">Login with github</a>`)
	assert.Contains(t, rec.Body.String(), `/api/users`)
}

func TestHomeHandler_Public(t *testing.T) {
	h := NewHomeHandler(mockUsecase.NewMockLoginUsecase(t), mockUsecase.NewMockProfileUsecase(t))
	c, rec := newTestContext(http.MethodGet, "/public", "")

	require.NoError(t, h.Public(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "This is a public endpoint - no login required!", rec.Body.String())
}

func TestHomeHandler_Users(t *testing.T) {
	t.Run("lists identities", func(t *testing.T) {
		profileUC := mockUsecase.NewMockProfileUsecase(t)
		h := NewHomeHandler(mockUsecase.NewMockLoginUsecase(t), profileUC)
		c, rec := newTestContext(http.MethodGet, "/api/users", "")

		profileUC.EXPECT().ListIdentities(mock.Anything).Return([]*entity.Identity{newAlice()}, nil)

		require.NoError(t, h.Users(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[PublicUsersResponse](t, rec)
		assert.Equal(t, 1, body.Count)
		assert.Equal(t, "alice@example.com", body.Users[0].Email)
	})

	t.Run("store failure", func(t *testing.T) {
		profileUC := mockUsecase.NewMockProfileUsecase(t)
		h := NewHomeHandler(mockUsecase.NewMockLoginUsecase(t), profileUC)
		c, _ := newTestContext(http.MethodGet, "/api/users", "")

		profileUC.EXPECT().ListIdentities(mock.Anything).Return(nil, errors.Wrap(domainerrors.ErrStoreFailure, "list"))

		assert.ErrorIs(t, h.Users(c), domainerrors.ErrStoreFailure)
	})
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"status": "ok"}, decodeBody[map[string]string](t, rec))
}
