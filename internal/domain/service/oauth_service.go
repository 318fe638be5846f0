package service

import (
	"context"

	"algoarena/internal/domain/entity"
)

// ProviderProfile is the raw attribute map returned by a provider's user-info endpoint.
// Keys and value types differ per provider.
type ProviderProfile map[string]any

// OAuthProvider runs the authorization-code handshake with a single identity provider.
// It returns provider facts only and never touches the identity store.
type OAuthProvider interface {
	Provider() entity.ProviderType

	// AuthCodeURL builds the consent-screen URL bound to the given anti-forgery state.
	AuthCodeURL(state string) string

	// FetchProfile exchanges the authorization code and loads the user-info document.
	FetchProfile(ctx context.Context, code string) (ProviderProfile, error)
}

// OAuthRegistry resolves configured providers by type.
type OAuthRegistry interface {
	Get(provider entity.ProviderType) (OAuthProvider, bool)
	Providers() []entity.ProviderType
}
