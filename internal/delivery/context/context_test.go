package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"algoarena/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestPrincipal_RoundTrip(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Nil(t, GetPrincipal(c))

	identity := &entity.Identity{ID: uuid.New(), ProviderSubjectID: "123"}
	SetPrincipal(c, identity)

	assert.Same(t, identity, GetPrincipal(c))
	assert.Same(t, identity, PrincipalFromContext(c.Request().Context()))
	assert.Nil(t, PrincipalFromContext(context.Background()))
}

func TestBindRequest(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
	assert.Nil(t, GetLogger(c.Request().Context()))

	logger := slog.New(slog.DiscardHandler)
	BindRequest(c, "req-1", logger)

	assert.Equal(t, "req-1", GetRequestID(c))
	assert.Equal(t, "req-1", GetRequestIDFromContext(c.Request().Context()))
	assert.Same(t, logger, GetLogger(c.Request().Context()))
}

func TestRequestID_FromStandardContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithRequestID(req.Context(), "req-2"))
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "req-2", GetRequestID(c))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)
	scoped := slog.New(slog.DiscardHandler)

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}
