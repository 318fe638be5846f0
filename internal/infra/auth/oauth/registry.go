package oauth

import (
	"log/slog"
	"slices"

	"algoarena/config"
	"algoarena/internal/domain/entity"
	"algoarena/internal/domain/service"

	"go.uber.org/fx"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
)

const (
	googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
	githubUserInfoURL = "https://api.github.com/user"
)

// descriptor holds the fixed facts about a supported provider.
type descriptor struct {
	endpoint      oauth2.Endpoint
	userInfoURL   string
	defaultScopes []string
}

//nolint:gochecknoglobals
var descriptors = map[entity.ProviderType]descriptor{
	entity.ProviderTypeGoogle: {
		endpoint:      google.Endpoint,
		userInfoURL:   googleUserInfoURL,
		defaultScopes: []string{"openid", "profile", "email"},
	},
	entity.ProviderTypeGitHub: {
		endpoint:      github.Endpoint,
		userInfoURL:   githubUserInfoURL,
		defaultScopes: []string{"read:user", "user:email"},
	},
}

type registry struct {
	providers map[entity.ProviderType]service.OAuthProvider
}

// RegistryParams holds dependencies for the provider registry, injected by Fx.
type RegistryParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewRegistry registers every configured provider that has a client id.
// Unknown provider names are logged and skipped.
func NewRegistry(params RegistryParams) service.OAuthRegistry {
	reg := &registry{providers: make(map[entity.ProviderType]service.OAuthProvider)}
	if params.Config.OAuth == nil {
		return reg
	}

	for name, providerCfg := range params.Config.OAuth.Providers {
		providerType, ok := entity.ParseProviderType(name)
		if !ok {
			params.Logger.Warn("Ignoring unsupported OAuth provider", slog.String("provider", name))

			continue
		}
		if providerCfg == nil || providerCfg.ClientID == "" {
			params.Logger.Warn("OAuth provider has no client id, skipping", slog.String("provider", name))

			continue
		}

		desc := descriptors[providerType]
		reg.providers[providerType] = newProvider(providerType, providerCfg, desc.endpoint, desc.userInfoURL, desc.defaultScopes)
		params.Logger.Info("OAuth provider registered", slog.String("provider", providerType.String()))
	}

	return reg
}

// NewRegistryOf builds a registry from ready providers.
func NewRegistryOf(list ...service.OAuthProvider) service.OAuthRegistry {
	reg := &registry{providers: make(map[entity.ProviderType]service.OAuthProvider, len(list))}
	for _, p := range list {
		reg.providers[p.Provider()] = p
	}

	return reg
}

func (r *registry) Get(providerType entity.ProviderType) (service.OAuthProvider, bool) {
	p, ok := r.providers[providerType]

	return p, ok
}

// Providers lists registered providers in a stable order.
func (r *registry) Providers() []entity.ProviderType {
	out := make([]entity.ProviderType, 0, len(r.providers))
	for providerType := range r.providers {
		out = append(out, providerType)
	}
	slices.Sort(out)

	return out
}
