// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "algoarena/internal/delivery/context"
	"algoarena/internal/delivery/http/response"
	"algoarena/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TestTokenRequest names the identity a test credential is issued for.
type TestTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RefreshRequest carries the refresh credential.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// ValidateRequest carries a credential, with or without the "Bearer " prefix.
type ValidateRequest struct {
	Token string `json:"token"`
}

// ValidateResponse reports the outcome of a validation request.
type ValidateResponse struct {
	Valid   bool   `json:"valid"`
	UserID  string `json:"userId,omitempty"`
	Message string `json:"message"`
}

// AuthHandler serves the credential endpoints under /api/auth.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// GenerateToken issues a credential pair for the principal attached by the authentication gate.
func (h *AuthHandler) GenerateToken(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.BadRequest(c, "NO_AUTHENTICATED_USER", "Please login first")
	}

	output, err := h.authUC.IssueForIdentity(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewCredentialResponse(output.Credentials, output.Identity))
}

// GenerateTokenTest issues a credential pair for the identity with the given email.
// Registered only when test routes are enabled.
func (h *AuthHandler) GenerateTokenTest(c echo.Context) error {
	var input TestTokenRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Please provide email in request body")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.IssueForEmail(c.Request().Context(), input.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewCredentialResponse(output.Credentials, output.Identity))
}

// Refresh exchanges a refresh credential for a new access credential.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var input RefreshRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid refresh token input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.Refresh(c.Request().Context(), input.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewCredentialResponse(output.Credentials, nil))
}

// Validate reports whether a credential is currently acceptable. Invalid credentials are a 200.
func (h *AuthHandler) Validate(c echo.Context) error {
	var input ValidateRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid validate input")
	}

	if strings.TrimSpace(input.Token) == "" {
		return c.JSON(http.StatusBadRequest, ValidateResponse{Message: "No token provided"})
	}

	output := h.authUC.Validate(c.Request().Context(), input.Token)

	return c.JSON(http.StatusOK, ValidateResponse{
		Valid:   output.Valid,
		UserID:  output.UserID,
		Message: output.Message,
	})
}

// Me returns the identity behind the presented access credential.
func (h *AuthHandler) Me(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Please provide a valid Bearer token")
	}

	return c.JSON(http.StatusOK, response.NewUserDetail(principal))
}
