package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "algoarena/internal/delivery/context"
	"algoarena/internal/delivery/http/response"
	"algoarena/internal/domain/entity"
	domainerrors "algoarena/internal/domain/errors"
	"algoarena/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UpdateProfileRequest holds the editable profile fields. Blank fields are left untouched.
type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"max=100"`
	Username string `json:"username" validate:"max=50"`
}

// ProfileResponse wraps a single identity.
type ProfileResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message,omitempty"`
	User    *response.UserDetail `json:"user"`
}

// UserListResponse wraps a list of identities.
type UserListResponse struct {
	Success     bool                   `json:"success"`
	Users       []*response.UserDetail `json:"users"`
	RequestedBy string                 `json:"requestedBy,omitempty"`
}

// DashboardResponse is the account summary shown after login.
type DashboardResponse struct {
	Success bool          `json:"success"`
	Data    DashboardData `json:"data"`
	User    DashboardUser `json:"user"`
}

// DashboardData holds the dashboard widgets.
type DashboardData struct {
	WelcomeMessage string        `json:"welcomeMessage"`
	UserStats      UserStats     `json:"userStats"`
	RecentLogins   []RecentLogin `json:"recentLogins"`
	QuickActions   []string      `json:"quickActions"`
}

// UserStats summarizes account activity.
type UserStats struct {
	TotalLogins int64  `json:"totalLogins"`
	AccountAge  string `json:"accountAge"`
	Provider    string `json:"provider"`
}

// RecentLogin is one row of the recent login list.
type RecentLogin struct {
	Provider   string    `json:"provider"`
	FirstLogin bool      `json:"firstLogin"`
	OccurredAt time.Time `json:"occurredAt"`
}

// DashboardUser is the header block of the dashboard.
type DashboardUser struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

var dashboardQuickActions = []string{"View Profile", "Update Settings", "View Activity", "Logout"}

// ProfileHandler serves the endpoints under /api/protected.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(profileUC usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUC: profileUC,
		logger:    logger,
	}
}

// GetProfile returns the caller's stored profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	identity, err := h.profileUC.GetProfile(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, ProfileResponse{Success: true, User: response.NewUserDetail(identity)})
}

// UpdateProfile renames the caller.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var input UpdateProfileRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	identity, err := h.profileUC.UpdateProfile(c.Request().Context(), principal.ID, &usecase.UpdateProfileInput{
		Name:     input.Name,
		Username: input.Username,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		Success: true,
		Message: "Profile updated successfully",
		User:    response.NewUserDetail(identity),
	})
}

// Dashboard returns the caller's account summary.
func (h *ProfileHandler) Dashboard(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	output, err := h.profileUC.Dashboard(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	recent := make([]RecentLogin, 0, len(output.RecentLogins))
	for _, event := range output.RecentLogins {
		recent = append(recent, RecentLogin{
			Provider:   event.Provider.String(),
			FirstLogin: event.FirstLogin,
			OccurredAt: event.OccurredAt,
		})
	}

	identity := output.Identity

	return c.JSON(http.StatusOK, DashboardResponse{
		Success: true,
		Data: DashboardData{
			WelcomeMessage: fmt.Sprintf("Welcome back, %s!", identity.Name),
			UserStats: UserStats{
				TotalLogins: output.TotalLogins,
				AccountAge:  "Member since " + identity.CreatedAt.Format(time.DateOnly),
				Provider:    "Signed in with " + identity.Provider.String(),
			},
			RecentLogins: recent,
			QuickActions: dashboardQuickActions,
		},
		User: DashboardUser{Name: identity.Name, AvatarURL: identity.AvatarURL},
	})
}

// ListUsers returns every identity.
func (h *ProfileHandler) ListUsers(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	identities, err := h.profileUC.ListIdentities(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, UserListResponse{
		Success:     true,
		Users:       response.NewUserDetails(identities),
		RequestedBy: principal.Name,
	})
}

// DeleteUser removes an identity and its login history.
func (h *ProfileHandler) DeleteUser(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	identityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "User id must be a UUID")
	}

	if err := h.profileUC.DeleteIdentity(c.Request().Context(), identityID); err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Identity deleted",
		slog.String("identity_id", identityID.String()),
		slog.String("deleted_by", principal.ID.String()),
	)

	return response.Message(c, "User deleted successfully")
}

// requirePrincipal returns the authenticated caller. The router guards these routes
// with Authorize, so a nil principal only happens when a route is misregistered.
func requirePrincipal(c echo.Context) (*entity.Identity, error) {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return principal, nil
}
