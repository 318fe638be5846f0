package middleware

import (
	"encoding/json"
	"net/http"
	"testing"

	"algoarena/internal/delivery/http/response"
	domainerrors "algoarena/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails string
	}{
		{
			name:        "wrapped domain error",
			err:         errors.Wrap(domainerrors.ErrIdentityNotFound, "lookup"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "IDENTITY_NOT_FOUND",
			wantMessage: "Identity not found",
		},
		{
			name:        "validation details are exposed",
			err:         domainerrors.ErrValidationFailed.WithDetails("email is required"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantMessage: "Input validation failed",
			wantDetails: "email is required",
		},
		{
			name:        "store failure hides details",
			err:         errors.Wrap(domainerrors.ErrStoreFailure.WithDetails("dial tcp 10.0.0.1:5432"), "lookup"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "STORE_FAILURE",
			wantMessage: "Identity store is unavailable",
		},
		{
			name:        "echo error",
			err:         echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    "HTTP_ERROR",
			wantMessage: "Method Not Allowed",
		},
		{
			name:        "unknown error",
			err:         errors.New("pq: relation \"identities\" does not exist"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewErrorMiddleware(newTestLogger())
			c, rec := newContext(http.MethodGet, "/api/auth/me", "")

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, http.StatusText(tt.wantStatus), body.Error)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Equal(t, tt.wantDetails, body.Details)
			assert.NotContains(t, rec.Body.String(), "relation")
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponses(t *testing.T) {
	m := NewErrorMiddleware(newTestLogger())
	c, rec := newContext(http.MethodGet, "/", "")
	require.NoError(t, c.String(http.StatusOK, "done"))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
