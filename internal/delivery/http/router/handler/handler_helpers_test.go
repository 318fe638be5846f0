package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"algoarena/internal/delivery/http/validator"
	"algoarena/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func newAlice() *entity.Identity {
	return &entity.Identity{
		ID:                uuid.New(),
		Provider:          entity.ProviderTypeGitHub,
		ProviderSubjectID: "123",
		Name:              "Alice",
		Username:          "alice",
		Email:             "alice@example.com",
		AvatarURL:         "https://avatars.example.com/alice.png",
		CreatedAt:         time.Date(2025, 12, 24, 9, 0, 0, 0, time.UTC),
		LastLoginAt:       time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func newPair() *entity.CredentialPair {
	return &entity.CredentialPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    86400,
	}
}
