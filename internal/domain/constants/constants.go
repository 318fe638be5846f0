// Package constants holds identifiers shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers selectable in config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// TokenTypeBearer is the scheme returned to clients alongside issued credentials.
const TokenTypeBearer = "Bearer"
