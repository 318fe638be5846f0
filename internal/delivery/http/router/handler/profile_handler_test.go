package handler

import (
	"net/http"
	"testing"
	"time"

	deliverycontext "algoarena/internal/delivery/context"
	"algoarena/internal/delivery/http/response"
	"algoarena/internal/domain/entity"
	domainerrors "algoarena/internal/domain/errors"
	mockUsecase "algoarena/internal/mocks/usecase"
	"algoarena/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProfileHandler(t *testing.T) (*ProfileHandler, *mockUsecase.MockProfileUsecase) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)

	return NewProfileHandler(profileUC, newTestLogger()), profileUC
}

func TestProfileHandler_GetProfile(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)
	alice := newAlice()
	c, rec := newTestContext(http.MethodGet, "/api/protected/profile", "")
	deliverycontext.SetPrincipal(c, alice)

	profileUC.EXPECT().GetProfile(mock.Anything, alice.ID).Return(alice, nil)

	require.NoError(t, h.GetProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[ProfileResponse](t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, alice.ID.String(), body.User.ID)
	assert.Equal(t, "github", body.User.Provider)
}

func TestProfileHandler_GetProfile_NoPrincipal(t *testing.T) {
	h, _ := newTestProfileHandler(t)
	c, _ := newTestContext(http.MethodGet, "/api/protected/profile", "")

	assert.ErrorIs(t, h.GetProfile(c), domainerrors.ErrUnauthorized)
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)
	alice := newAlice()
	c, rec := newTestContext(http.MethodPut, "/api/protected/profile", `{"name":"Alice Liddell"}`)
	deliverycontext.SetPrincipal(c, alice)

	renamed := *alice
	renamed.Name = "Alice Liddell"
	profileUC.EXPECT().UpdateProfile(mock.Anything, alice.ID, &usecase.UpdateProfileInput{Name: "Alice Liddell"}).
		Return(&renamed, nil)

	require.NoError(t, h.UpdateProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[ProfileResponse](t, rec)
	assert.Equal(t, "Profile updated successfully", body.Message)
	assert.Equal(t, "Alice Liddell", body.User.Name)
}

func TestProfileHandler_UpdateProfile_Errors(t *testing.T) {
	t.Run("name too long", func(t *testing.T) {
		h, _ := newTestProfileHandler(t)
		long := make([]byte, 101)
		for i := range long {
			long[i] = 'a'
		}
		c, _ := newTestContext(http.MethodPut, "/api/protected/profile", `{"name":"`+string(long)+`"}`)
		deliverycontext.SetPrincipal(c, newAlice())

		assert.ErrorIs(t, h.UpdateProfile(c), domainerrors.ErrValidationFailed)
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := newTestProfileHandler(t)
		c, rec := newTestContext(http.MethodPut, "/api/protected/profile", `{"name":`)
		deliverycontext.SetPrincipal(c, newAlice())

		require.NoError(t, h.UpdateProfile(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeBody[response.ErrorResponse](t, rec).Code)
	})

	t.Run("nothing to update", func(t *testing.T) {
		h, profileUC := newTestProfileHandler(t)
		alice := newAlice()
		c, _ := newTestContext(http.MethodPut, "/api/protected/profile", `{}`)
		deliverycontext.SetPrincipal(c, alice)

		profileUC.EXPECT().UpdateProfile(mock.Anything, alice.ID, &usecase.UpdateProfileInput{}).
			Return(nil, domainerrors.ErrValidationFailed.WithDetails("provide 'name' or 'username' to update"))

		assert.ErrorIs(t, h.UpdateProfile(c), domainerrors.ErrValidationFailed)
	})
}

func TestProfileHandler_Dashboard(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)
	alice := newAlice()
	c, rec := newTestContext(http.MethodGet, "/api/protected/dashboard", "")
	deliverycontext.SetPrincipal(c, alice)

	occurredAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	profileUC.EXPECT().Dashboard(mock.Anything, alice.ID).Return(&usecase.DashboardOutput{
		Identity:    alice,
		TotalLogins: 3,
		RecentLogins: []*entity.LoginEvent{
			{IdentityID: alice.ID, Provider: entity.ProviderTypeGitHub, FirstLogin: true, OccurredAt: occurredAt},
		},
	}, nil)

	require.NoError(t, h.Dashboard(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[DashboardResponse](t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "Welcome back, Alice!", body.Data.WelcomeMessage)
	assert.Equal(t, UserStats{
		TotalLogins: 3,
		AccountAge:  "Member since 2025-12-24",
		Provider:    "Signed in with github",
	}, body.Data.UserStats)
	require.Len(t, body.Data.RecentLogins, 1)
	assert.True(t, body.Data.RecentLogins[0].FirstLogin)
	assert.True(t, occurredAt.Equal(body.Data.RecentLogins[0].OccurredAt))
	assert.Equal(t, dashboardQuickActions, body.Data.QuickActions)
	assert.Equal(t, DashboardUser{Name: "Alice", AvatarURL: alice.AvatarURL}, body.User)
}

func TestProfileHandler_ListUsers(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)
	alice := newAlice()
	bob := newAlice()
	bob.ID = uuid.New()
	bob.Name = "Bob"
	c, rec := newTestContext(http.MethodGet, "/api/protected/admin/users", "")
	deliverycontext.SetPrincipal(c, alice)

	profileUC.EXPECT().ListIdentities(mock.Anything).Return([]*entity.Identity{alice, bob}, nil)

	require.NoError(t, h.ListUsers(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[UserListResponse](t, rec)
	assert.Len(t, body.Users, 2)
	assert.Equal(t, "Alice", body.RequestedBy)
}

func TestProfileHandler_DeleteUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, profileUC := newTestProfileHandler(t)
		target := uuid.New()
		c, rec := newTestContext(http.MethodDelete, "/api/protected/admin/users/"+target.String(), "")
		c.SetParamNames("id")
		c.SetParamValues(target.String())
		deliverycontext.SetPrincipal(c, newAlice())

		profileUC.EXPECT().DeleteIdentity(mock.Anything, target).Return(nil)

		require.NoError(t, h.DeleteUser(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "User deleted successfully", decodeBody[response.MessageResponse](t, rec).Message)
	})

	t.Run("invalid id", func(t *testing.T) {
		h, _ := newTestProfileHandler(t)
		c, rec := newTestContext(http.MethodDelete, "/api/protected/admin/users/not-a-uuid", "")
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")
		deliverycontext.SetPrincipal(c, newAlice())

		require.NoError(t, h.DeleteUser(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeBody[response.ErrorResponse](t, rec).Code)
	})

	t.Run("unknown identity", func(t *testing.T) {
		h, profileUC := newTestProfileHandler(t)
		target := uuid.New()
		c, _ := newTestContext(http.MethodDelete, "/api/protected/admin/users/"+target.String(), "")
		c.SetParamNames("id")
		c.SetParamValues(target.String())
		deliverycontext.SetPrincipal(c, newAlice())

		profileUC.EXPECT().DeleteIdentity(mock.Anything, target).Return(domainerrors.ErrIdentityNotFound)

		assert.ErrorIs(t, h.DeleteUser(c), domainerrors.ErrIdentityNotFound)
	})
}
