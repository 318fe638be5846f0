package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"algoarena/config"
	deliverycontext "algoarena/internal/delivery/context"
	"algoarena/internal/domain/constants"
	domainerrors "algoarena/internal/domain/errors"
	"algoarena/internal/domain/service"
	"algoarena/internal/infra/pubsub"
	mockUsecase "algoarena/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newLoginEvent() *service.LoginEventMessage {
	return &service.LoginEventMessage{
		EventID:           "3f1c4d2e-0000-4000-8000-000000000001",
		IdentityID:        "3f1c4d2e-0000-4000-8000-000000000002",
		Provider:          "google",
		ProviderSubjectID: "sub-1",
		OccurredAt:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func pushBody(t *testing.T, event *service.LoginEventMessage, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.EventID
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/test/subscriptions/login-audit"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func newPushContext(body, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockAuditUsecase) {
	auditUC := mockUsecase.NewMockAuditUsecase(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}

	return NewPushHandler(PushHandlerParams{
		Config:  cfg,
		Logger:  slog.New(slog.DiscardHandler),
		AuditUC: auditUC,
	}), auditUC
}

func TestPushHandler_RecordsLoginEvent(t *testing.T) {
	h, auditUC := newTestPushHandler(t)
	event := newLoginEvent()
	c, rec := newPushContext(pushBody(t, event, map[string]string{"request_id": "req-attr"}), "")

	auditUC.EXPECT().RecordLogin(
		mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-attr"
		}),
		event,
	).Return(nil)

	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RejectsUndecodablePayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "envelope is not json", body: `{"message":`},
		{name: "data is not base64", body: `{"message":{"data":"***"}}`},
		{name: "data is not a login event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2]")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t)
			c, rec := newPushContext(tt.body, "")

			require.NoError(t, h.HandlePush(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_RecordFailures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "malformed event is acknowledged", err: errors.Wrap(domainerrors.ErrValidationFailed, "invalid event id"), wantCode: http.StatusOK},
		{name: "store failure is redelivered", err: errors.New("connection refused"), wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, auditUC := newTestPushHandler(t)
			event := newLoginEvent()
			c, rec := newPushContext(pushBody(t, event, nil), "")

			auditUC.EXPECT().RecordLogin(mock.Anything, event).Return(tt.err)

			require.NoError(t, h.HandlePush(c))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		payload       *idtoken.Payload
		validateErr   error
		wantCode      int
	}{
		{name: "missing header", wantCode: http.StatusUnauthorized},
		{name: "wrong scheme", authorization: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "invalid token", authorization: "Bearer bad", validateErr: errors.New("bad signature"), wantCode: http.StatusUnauthorized},
		{name: "foreign issuer", authorization: "Bearer tok", payload: &idtoken.Payload{Issuer: "https://evil.example.com"}, wantCode: http.StatusUnauthorized},
		{
			name:          "unverified email",
			authorization: "Bearer tok",
			payload:       &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantCode:      http.StatusUnauthorized,
		},
		{name: "google issuer", authorization: "Bearer tok", payload: &idtoken.Payload{Issuer: "https://accounts.google.com"}, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, auditUC := newTestPushHandler(t)
			h.verifyPushAuth = true
			h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "http://example.com/push", audience)

				return tt.payload, tt.validateErr
			}

			event := newLoginEvent()
			c, rec := newPushContext(pushBody(t, event, nil), tt.authorization)
			if tt.wantCode == http.StatusOK {
				auditUC.EXPECT().RecordLogin(mock.Anything, event).Return(nil)
			}

			require.NoError(t, h.HandlePush(c))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestNewPushHandler_VerificationByEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		env      string
		want     bool
	}{
		{name: "google in production", provider: constants.PubSubProviderGoogle, env: constants.EnvProduction, want: true},
		{name: "google in develop", provider: constants.PubSubProviderGoogle, env: constants.EnvDevelop, want: false},
		{name: "local in production", provider: constants.PubSubProviderLocal, env: constants.EnvProduction, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: tt.provider}}
			cfg.Env.Env = tt.env

			h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.New(slog.DiscardHandler)})

			assert.Equal(t, tt.want, h.verifyPushAuth)
		})
	}
}

func TestExtractRequestID(t *testing.T) {
	withAttr := &pubsub.PushMessage{}
	withAttr.Message.Attributes = map[string]string{"request_id": "from-attr"}
	ctx := deliverycontext.WithRequestID(context.Background(), "from-ctx")

	assert.Equal(t, "from-attr", extractRequestID(ctx, withAttr, &service.LoginEventMessage{RequestID: "from-event"}))
	assert.Equal(t, "from-event", extractRequestID(ctx, &pubsub.PushMessage{}, &service.LoginEventMessage{RequestID: "from-event"}))
	assert.Equal(t, "from-ctx", extractRequestID(ctx, &pubsub.PushMessage{}, &service.LoginEventMessage{}))
	assert.NotEmpty(t, extractRequestID(context.Background(), &pubsub.PushMessage{}, &service.LoginEventMessage{}))
}
