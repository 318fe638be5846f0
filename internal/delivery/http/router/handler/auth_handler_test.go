package handler

import (
	"net/http"
	"testing"

	deliverycontext "algoarena/internal/delivery/context"
	"algoarena/internal/delivery/http/response"
	"algoarena/internal/domain/entity"
	domainerrors "algoarena/internal/domain/errors"
	mockUsecase "algoarena/internal/mocks/usecase"
	"algoarena/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)

	return NewAuthHandler(authUC, newTestLogger()), authUC
}

func TestAuthHandler_GenerateToken(t *testing.T) {
	t.Run("no principal", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/auth/generate-token", "")

		require.NoError(t, h.GenerateToken(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody[response.ErrorResponse](t, rec)
		assert.Equal(t, "Please login first", body.Message)
	})

	t.Run("issues for principal", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		alice := newAlice()
		c, rec := newTestContext(http.MethodPost, "/api/auth/generate-token", "")
		deliverycontext.SetPrincipal(c, alice)

		authUC.EXPECT().IssueForIdentity(mock.Anything, alice).
			Return(&usecase.CredentialOutput{Credentials: newPair(), Identity: alice}, nil)

		require.NoError(t, h.GenerateToken(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[response.CredentialResponse](t, rec)
		assert.Equal(t, "access-token", body.AccessToken)
		assert.Equal(t, "refresh-token", body.RefreshToken)
		assert.Equal(t, "Bearer", body.TokenType)
		assert.Equal(t, int64(86400), body.ExpiresIn)
		require.NotNil(t, body.User)
		assert.Equal(t, "alice", body.User.Username)
		assert.Equal(t, "github", body.User.Provider)
	})
}

func TestAuthHandler_GenerateTokenTest(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)
		c, _ := newTestContext(http.MethodPost, "/api/auth/generate-token-test", `{"email":"not-an-email"}`)

		err := h.GenerateTokenTest(c)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown email", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		c, _ := newTestContext(http.MethodPost, "/api/auth/generate-token-test", `{"email":"nobody@example.com"}`)

		authUC.EXPECT().IssueForEmail(mock.Anything, "nobody@example.com").Return(nil, domainerrors.ErrIdentityNotFound)

		assert.ErrorIs(t, h.GenerateTokenTest(c), domainerrors.ErrIdentityNotFound)
	})

	t.Run("known email", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		alice := newAlice()
		c, rec := newTestContext(http.MethodPost, "/api/auth/generate-token-test", `{"email":"alice@example.com"}`)

		authUC.EXPECT().IssueForEmail(mock.Anything, "alice@example.com").
			Return(&usecase.CredentialOutput{Credentials: newPair(), Identity: alice}, nil)

		require.NoError(t, h.GenerateTokenTest(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice@example.com", decodeBody[response.CredentialResponse](t, rec).User.Email)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("missing refresh token", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)
		c, _ := newTestContext(http.MethodPost, "/api/auth/refresh", `{}`)

		assert.ErrorIs(t, h.Refresh(c), domainerrors.ErrValidationFailed)
	})

	t.Run("rejected credential", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		c, _ := newTestContext(http.MethodPost, "/api/auth/refresh", `{"refreshToken":"access-token"}`)

		authUC.EXPECT().Refresh(mock.Anything, "access-token").Return(nil, domainerrors.ErrWrongCredentialKind)

		assert.ErrorIs(t, h.Refresh(c), domainerrors.ErrWrongCredentialKind)
	})

	t.Run("renews access credential", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/auth/refresh", `{"refreshToken":"refresh-token"}`)

		authUC.EXPECT().Refresh(mock.Anything, "refresh-token").Return(&usecase.CredentialOutput{
			Credentials: &entity.CredentialPair{AccessToken: "new-access-token", TokenType: "Bearer", ExpiresIn: 86400},
		}, nil)

		require.NoError(t, h.Refresh(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "refreshToken")
		assert.NotContains(t, rec.Body.String(), `"user"`)
		body := decodeBody[response.CredentialResponse](t, rec)
		assert.Equal(t, "new-access-token", body.AccessToken)
		assert.Equal(t, int64(86400), body.ExpiresIn)
	})
}

func TestAuthHandler_Validate(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/auth/validate", `{}`)

		require.NoError(t, h.Validate(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody[ValidateResponse](t, rec)
		assert.False(t, body.Valid)
		assert.Equal(t, "No token provided", body.Message)
	})

	t.Run("valid token", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/auth/validate", `{"token":"Bearer abc"}`)

		authUC.EXPECT().Validate(mock.Anything, "Bearer abc").
			Return(&usecase.ValidateOutput{Valid: true, UserID: "u-1", Message: "Token is valid"})

		require.NoError(t, h.Validate(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, ValidateResponse{Valid: true, UserID: "u-1", Message: "Token is valid"}, decodeBody[ValidateResponse](t, rec))
	})

	t.Run("invalid token is still a 200", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/auth/validate", `{"token":"abc"}`)

		authUC.EXPECT().Validate(mock.Anything, "abc").
			Return(&usecase.ValidateOutput{Message: "Token is invalid or expired"})

		require.NoError(t, h.Validate(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, decodeBody[ValidateResponse](t, rec).Valid)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/auth/me", "")

		require.NoError(t, h.Me(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("principal", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)
		alice := newAlice()
		c, rec := newTestContext(http.MethodGet, "/api/auth/me", "")
		deliverycontext.SetPrincipal(c, alice)

		require.NoError(t, h.Me(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[response.UserDetail](t, rec)
		assert.Equal(t, alice.ID.String(), body.ID)
		assert.Equal(t, "alice", body.Username)
		assert.True(t, alice.CreatedAt.Equal(body.CreatedAt))
		assert.True(t, alice.LastLoginAt.Equal(body.LastLoginAt))
	})
}
