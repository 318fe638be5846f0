package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"algoarena/config"
	deliverycontext "algoarena/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

var redactedQueryKeys = []string{"code", "state", "accessToken", "refreshToken", "token"}

// LoggerMiddleware writes one structured line per request.
// Debug mode adds the query string and user agent.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Let the error handler write the response so the logged status is final.
			c.Error(err)
		}

		m.logRequest(c, start, err)

		return nil
	}
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}

	if principal := deliverycontext.GetPrincipal(c); principal != nil {
		fields = append(fields, slog.String("identity_id", principal.ID.String()))
	}

	if m.debug {
		fields = append(fields, slog.String("user_agent", req.UserAgent()))
		if len(req.URL.RawQuery) > 0 {
			fields = append(fields, slog.String("query", redactQuery(req)))
		}
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}

// redactQuery hides authorization codes and state values returned by providers.
func redactQuery(req *http.Request) string {
	query := req.URL.Query()
	for _, key := range redactedQueryKeys {
		if query.Has(key) {
			query.Set(key, "REDACTED")
		}
	}

	return query.Encode()
}
