package context

import (
	"context"

	"algoarena/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetPrincipal attaches the authenticated identity to both the echo context and the request context.
func SetPrincipal(c echo.Context, identity *entity.Identity) {
	c.Set(principalKey.echoKey(), identity)
	c.SetRequest(c.Request().WithContext(WithPrincipal(c.Request().Context(), identity)))
}

// GetPrincipal returns the identity attached by the authentication gate, or nil.
func GetPrincipal(c echo.Context) *entity.Identity {
	if identity, ok := c.Get(principalKey.echoKey()).(*entity.Identity); ok {
		return identity
	}

	return PrincipalFromContext(c.Request().Context())
}

// WithPrincipal returns a new context carrying the identity.
func WithPrincipal(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, principalKey, identity)
}

// PrincipalFromContext extracts the identity from a standard context, or nil.
func PrincipalFromContext(ctx context.Context) *entity.Identity {
	identity, _ := ctx.Value(principalKey).(*entity.Identity)

	return identity
}
