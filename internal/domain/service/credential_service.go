package service

import (
	"time"

	"algoarena/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// CredentialService mints and checks self-contained bearer credentials.
// Implementations are immutable after construction and safe for concurrent use.
type CredentialService interface {
	// IssueAccess mints a short-lived credential carrying the identity's display claims.
	IssueAccess(identity *entity.Identity) (string, error)

	// IssueRefresh mints a long-lived credential carrying only the identity reference.
	IssueRefresh(identity *entity.Identity) (string, error)

	// IssuePair mints both credentials for a login response.
	IssuePair(identity *entity.Identity) (*entity.CredentialPair, error)

	// Verify reports whether the token is well-formed, correctly signed and unexpired.
	// It never panics and never returns an error.
	Verify(token string) bool

	// VerifyKind is Verify plus a check of the tokenType claim.
	VerifyKind(token string, kind entity.CredentialKind) bool

	// Inspect verifies the token and returns its claims, or the precise reason it was rejected.
	Inspect(token string) (jwt.MapClaims, error)

	// ExtractSubject decodes the "sub" claim without checking signature or expiry.
	ExtractSubject(token string) (string, error)

	// ExtractClaim decodes a single claim without checking signature or expiry.
	ExtractClaim(token, key string) (any, error)

	// ExtractClaims decodes all claims without checking signature or expiry.
	ExtractClaims(token string) (jwt.MapClaims, error)

	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}
