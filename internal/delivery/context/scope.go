// Package context carries request-scoped values (request id, logger, principal)
// across the echo and standard library contexts.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header that carries the request id in both directions.
const HeaderXRequestID = echo.HeaderXRequestID

type scopeKey int

const (
	requestIDKey scopeKey = iota
	loggerKey
	principalKey
)

// echoKey names the echo.Context slot mirroring a scope key.
func (k scopeKey) echoKey() string {
	switch k {
	case requestIDKey:
		return "request_id"
	case loggerKey:
		return "logger"
	default:
		return "principal"
	}
}

// BindRequest stores the request id and its logger on the echo context and on the
// request's context, so handlers and use cases read the same values.
func BindRequest(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(requestIDKey.echoKey(), requestID)
	c.Set(loggerKey.echoKey(), logger)

	ctx := WithLogger(WithRequestID(c.Request().Context(), requestID), logger)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetRequestID returns the id bound by the request id middleware, or "" outside it.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey.echoKey()).(string); ok {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

// GetRequestIDFromContext returns the request id carried by ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithRequestID returns a copy of ctx carrying the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLogger returns the request-scoped logger carried by ctx, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to the given one.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a copy of ctx carrying the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
