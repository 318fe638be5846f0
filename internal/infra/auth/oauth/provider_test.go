package oauth

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"algoarena/config"
	"algoarena/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newFakeProviderServer(t *testing.T, profile map[string]any) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("code") != "good-code" {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)

			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"provider-token","token_type":"bearer"}`)
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer provider-token" {
			w.WriteHeader(http.StatusUnauthorized)

			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(profile)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func newTestProvider(srv *httptest.Server, providerType entity.ProviderType) *provider {
	p := newProvider(providerType, &config.OAuthProviderConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "http://localhost:8080/login/oauth2/code/" + providerType.String(),
	}, oauth2.Endpoint{
		AuthURL:   srv.URL + "/authorize",
		TokenURL:  srv.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}, srv.URL+"/user", []string{"read:user"})
	p.httpClient = srv.Client()

	return p
}

func TestProvider_FetchProfile_KeepsNumericIDExact(t *testing.T) {
	srv := newFakeProviderServer(t, map[string]any{
		"id":         int64(9007199254740993),
		"login":      "octocat",
		"avatar_url": "https://avatars.example.com/octocat",
	})
	p := newTestProvider(srv, entity.ProviderTypeGitHub)

	profile, err := p.FetchProfile(context.Background(), "good-code")
	require.NoError(t, err)

	id, ok := profile["id"].(json.Number)
	require.True(t, ok, "numeric ids must decode as json.Number")
	assert.Equal(t, "9007199254740993", id.String())
	assert.Equal(t, "octocat", profile["login"])
}

func TestProvider_FetchProfile_ExchangeFailure(t *testing.T) {
	srv := newFakeProviderServer(t, map[string]any{"sub": "abc"})
	p := newTestProvider(srv, entity.ProviderTypeGoogle)

	_, err := p.FetchProfile(context.Background(), "bad-code")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "google token exchange failed")

	_, err = p.FetchProfile(context.Background(), "")
	assert.Error(t, err)
}

func TestProvider_AuthCodeURL(t *testing.T) {
	srv := newFakeProviderServer(t, nil)
	p := newTestProvider(srv, entity.ProviderTypeGitHub)

	raw := p.AuthCodeURL("state-123")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	q := parsed.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "read:user", q.Get("scope"))
	assert.Equal(t, "http://localhost:8080/login/oauth2/code/github", q.Get("redirect_uri"))
}

func TestNewRegistry_RegistersConfiguredProviders(t *testing.T) {
	cfg := &config.Config{
		OAuth: &config.OAuthConfig{
			Providers: map[string]*config.OAuthProviderConfig{
				"google":   {ClientID: "g"},
				"GitHub":   {ClientID: "gh"},
				"facebook": {ClientID: "fb"},
				"empty":    nil,
			},
		},
	}

	reg := NewRegistry(RegistryParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.Equal(t, []entity.ProviderType{entity.ProviderTypeGitHub, entity.ProviderTypeGoogle}, reg.Providers())

	google, ok := reg.Get(entity.ProviderTypeGoogle)
	require.True(t, ok)
	parsed, err := url.Parse(google.AuthCodeURL("s"))
	require.NoError(t, err)
	assert.Equal(t, "openid profile email", parsed.Query().Get("scope"))
}
