package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches any BaseError with the same error code, so copies made by WithDetails
// still satisfy errors.Is against the sentinel.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return other.errorCode == e.errorCode
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Credential errors. Only credential inspection tells them apart; callers that
// need a yes/no answer treat all of them as "not authenticated".
var (
	ErrMissingCredential = NewBaseError(
		http.StatusUnauthorized,
		"MISSING_CREDENTIAL",
		"Authentication credential is required",
		"",
	)

	ErrMalformedCredential = NewBaseError(
		http.StatusUnauthorized,
		"MALFORMED_CREDENTIAL",
		"Authentication credential is malformed",
		"",
	)

	ErrExpiredCredential = NewBaseError(
		http.StatusUnauthorized,
		"EXPIRED_CREDENTIAL",
		"Authentication credential has expired",
		"",
	)

	ErrInvalidSignature = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_SIGNATURE",
		"Authentication credential signature is invalid",
		"",
	)

	ErrWrongCredentialKind = NewBaseError(
		http.StatusUnauthorized,
		"WRONG_CREDENTIAL_KIND",
		"Authentication credential cannot be used here",
		"",
	)
)

// Identity errors
var (
	ErrIdentityNotFound = NewBaseError(
		http.StatusNotFound,
		"IDENTITY_NOT_FOUND",
		"Identity not found",
		"",
	)

	ErrProviderDataIncomplete = NewBaseError(
		http.StatusBadGateway,
		"PROVIDER_DATA_INCOMPLETE",
		"Identity provider returned incomplete profile data",
		"",
	)

	ErrUnsupportedProvider = NewBaseError(
		http.StatusNotFound,
		"UNSUPPORTED_PROVIDER",
		"Identity provider is not supported",
		"",
	)

	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"OAuth authentication failed",
		"",
	)

	ErrOAuthStateMismatch = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_MISMATCH",
		"OAuth state is missing or does not match",
		"",
	)
)

// General errors
var (
	ErrStoreFailure = NewBaseError(
		http.StatusInternalServerError,
		"STORE_FAILURE",
		"Identity store is unavailable",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication is required",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error to errors.Is and errors.As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
