package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: develop
  serviceName: algoarena
jwt:
  secret: file-secret-that-is-long-enough-for-hs256
  accessTTL: 1h
oauth:
  providers:
    github:
      clientId: gh-client
      clientSecret: ""
      scopes:
        - read:user
        - user:email
frontend:
  baseUrl: http://localhost:5173/
`

func TestLoadWithEnv_FileThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("OAUTH_PROVIDERS_GITHUB_CLIENTSECRET", "from-env")
	t.Setenv("JWT_REFRESHTTL", "48h")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "algoarena", cfg.Env.ServiceName)
	require.NotNil(t, cfg.JWT)
	assert.Equal(t, time.Hour, cfg.JWT.AccessTTL)
	assert.Equal(t, 48*time.Hour, cfg.JWT.RefreshTTL)

	require.Contains(t, cfg.OAuth.Providers, "github")
	github := cfg.OAuth.Providers["github"]
	assert.Equal(t, "gh-client", github.ClientID)
	assert.Equal(t, "from-env", github.ClientSecret)
	assert.Equal(t, []string{"read:user", "user:email"}, github.Scopes)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Frontend: &FrontendConfig{BaseURL: "https://arena.example.com/"},
	}

	applyDefaults(cfg)

	assert.Equal(t, defaultAccessTTL, cfg.JWT.AccessTTL)
	assert.Equal(t, defaultRefreshTTL, cfg.JWT.RefreshTTL)
	assert.Equal(t, "https://arena.example.com", cfg.Frontend.BaseURL)
	assert.NotNil(t, cfg.OAuth)
	assert.Contains(t, cfg.Auth.PublicPaths, "/oauth2/**")
	assert.NotContains(t, cfg.Auth.PublicPaths, "/api/auth/**")
	assert.False(t, cfg.TestRoutes.Enabled)

	empty := &Config{}
	applyDefaults(empty)
	assert.Equal(t, defaultFrontendBaseURL, empty.Frontend.BaseURL)

	custom := &Config{Auth: &AuthConfig{PublicPaths: []string{"/status"}}}
	applyDefaults(custom)
	assert.Equal(t, []string{"/status"}, custom.Auth.PublicPaths)
}
