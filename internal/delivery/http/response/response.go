// Package response renders the JSON bodies returned by the HTTP API.
package response

import (
	"net/http"

	deliverycontext "algoarena/internal/delivery/context"
	domainerrors "algoarena/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`             // Short title, e.g. "Unauthorized"
	Message   string `json:"message"`           // User-friendly explanation
	Code      string `json:"code"`              // Machine-readable error code, e.g. "VALIDATION_FAILED"
	Details   string `json:"details,omitempty"` // Only for 4xx errors other than 401/403
	RequestID string `json:"requestId,omitempty"`
}

// MessageResponse acknowledges an operation that has no payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = ""
	}

	return c.JSON(statusCode, ErrorResponse{
		Error:     http.StatusText(statusCode),
		Message:   message,
		Code:      errorCode,
		Details:   details,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, "")
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}

// Message acknowledges a successful operation without payload.
func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: message})
}

// HandleAppError renders domain errors directly and passes anything else to the error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
