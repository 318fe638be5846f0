package usecase

import (
	"context"

	"algoarena/internal/domain/entity"
)

// LoginOutput is the result of a completed provider login.
type LoginOutput struct {
	Credentials *entity.CredentialPair
	Identity    *entity.Identity
	FirstLogin  bool
}

// LoginUsecase drives the provider authorization-code flow end to end.
type LoginUsecase interface {
	Providers() []entity.ProviderType
	AuthorizationURL(provider entity.ProviderType, state string) (string, error)
	CompleteLogin(ctx context.Context, provider entity.ProviderType, code string) (*LoginOutput, error)
}
