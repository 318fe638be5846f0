// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"algoarena/config"
	"algoarena/internal/domain/constants"
	"algoarena/internal/domain/entity"
	domainerrors "algoarena/internal/domain/errors"
	"algoarena/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// minSecretLength is the HS256 key size in bytes.
const minSecretLength = 32

// CredentialConfig is the immutable input of the credential service.
type CredentialConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// Now overrides the clock used for both issuing and verifying. Defaults to time.Now.
	Now func() time.Time
}

// jwtService is a concrete implementation of the CredentialService interface using HS256 JWTs.
type jwtService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
	parser     *jwt.Parser
}

// NewJWTService builds the credential service from application config.
// Missing lifetimes fall back to 24h for access and 7d for refresh credentials.
func NewJWTService(cfg *config.Config) (service.CredentialService, error) {
	if cfg.JWT == nil {
		return nil, errors.New("jwt config must be provided")
	}

	credCfg := CredentialConfig{
		Secret:     cfg.JWT.Secret,
		AccessTTL:  cfg.JWT.AccessTTL,
		RefreshTTL: cfg.JWT.RefreshTTL,
	}
	if credCfg.AccessTTL == 0 {
		credCfg.AccessTTL = 24 * time.Hour
	}
	if credCfg.RefreshTTL == 0 {
		credCfg.RefreshTTL = 7 * 24 * time.Hour
	}

	return NewCredentialService(credCfg)
}

// NewCredentialService validates the config and returns a ready service.
// Non-positive lifetimes are accepted and produce credentials that are already expired.
func NewCredentialService(cfg CredentialConfig) (service.CredentialService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if len(cfg.Secret) < minSecretLength {
		return nil, errors.Errorf("jwt secret must be at least %d bytes", minSecretLength)
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &jwtService{
		secret:     []byte(cfg.Secret),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithTimeFunc(now),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
	}, nil
}

// IssueAccess creates an access credential with the identity's display claims.
func (s *jwtService) IssueAccess(identity *entity.Identity) (string, error) {
	if identity == nil {
		return "", errors.New("identity is required to issue a credential")
	}

	claims := s.baseClaims(identity, s.accessTTL, entity.CredentialKindAccess)
	claims[entity.ClaimName] = identity.Name
	claims[entity.ClaimUsername] = identity.Username
	if identity.Email != "" {
		claims[entity.ClaimEmail] = identity.Email
	}

	return s.sign(claims)
}

// IssueRefresh creates a refresh credential carrying only the identity reference.
func (s *jwtService) IssueRefresh(identity *entity.Identity) (string, error) {
	if identity == nil {
		return "", errors.New("identity is required to issue a credential")
	}

	return s.sign(s.baseClaims(identity, s.refreshTTL, entity.CredentialKindRefresh))
}

// IssuePair creates the access and refresh credentials returned after a login.
func (s *jwtService) IssuePair(identity *entity.Identity) (*entity.CredentialPair, error) {
	accessToken, err := s.IssueAccess(identity)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.IssueRefresh(identity)
	if err != nil {
		return nil, err
	}

	return &entity.CredentialPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    constants.TokenTypeBearer,
		ExpiresIn:    int64(s.accessTTL / time.Second),
	}, nil
}

func (s *jwtService) Verify(token string) bool {
	_, err := s.Inspect(token)

	return err == nil
}

func (s *jwtService) VerifyKind(token string, kind entity.CredentialKind) bool {
	claims, err := s.Inspect(token)
	if err != nil {
		return false
	}

	return claimKind(claims) == kind
}

// Inspect fully validates the token and classifies any failure.
func (s *jwtService) Inspect(token string) (jwt.MapClaims, error) {
	if token == "" {
		return nil, domainerrors.ErrMissingCredential
	}

	claims := jwt.MapClaims{}
	parsed, err := s.parser.ParseWithClaims(token, claims, s.keyFunc)
	if err != nil {
		return nil, classifyParseError(err)
	}
	if !parsed.Valid {
		return nil, domainerrors.ErrInvalidSignature
	}

	return claims, nil
}

func (s *jwtService) ExtractSubject(token string) (string, error) {
	claims, err := s.ExtractClaims(token)
	if err != nil {
		return "", err
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domainerrors.ErrMalformedCredential.WrapMessage("subject claim missing")
	}

	return sub, nil
}

func (s *jwtService) ExtractClaim(token, key string) (any, error) {
	claims, err := s.ExtractClaims(token)
	if err != nil {
		return nil, err
	}

	return claims[key], nil
}

// ExtractClaims only decodes the payload. Callers must Verify before trusting the result.
func (s *jwtService) ExtractClaims(token string) (jwt.MapClaims, error) {
	if token == "" {
		return nil, domainerrors.ErrMissingCredential
	}

	claims := jwt.MapClaims{}
	if _, _, err := s.parser.ParseUnverified(token, claims); err != nil {
		return nil, domainerrors.ErrMalformedCredential.WrapMessage(err.Error())
	}

	return claims, nil
}

func (s *jwtService) AccessTTL() time.Duration {
	return s.accessTTL
}

func (s *jwtService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) baseClaims(identity *entity.Identity, ttl time.Duration, kind entity.CredentialKind) jwt.MapClaims {
	issuedAt := s.now()

	return jwt.MapClaims{
		entity.ClaimSubject:   identity.ProviderSubjectID,
		entity.ClaimIssuedAt:  issuedAt.Unix(),
		entity.ClaimExpiresAt: issuedAt.Add(ttl).Unix(),
		entity.ClaimUserID:    identity.ID.String(),
		entity.ClaimProvider:  identity.Provider.String(),
		entity.ClaimTokenType: string(kind),
	}
}

func (s *jwtService) sign(claims jwt.MapClaims) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign credential")
	}

	return signed, nil
}

func (s *jwtService) keyFunc(token *jwt.Token) (any, error) {
	// Only HS256 is accepted, even with a valid HMAC signature under another hash.
	if token.Method != jwt.SigningMethodHS256 {
		return nil, jwt.ErrSignatureInvalid
	}

	return s.secret, nil
}

func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return domainerrors.ErrMalformedCredential.WrapMessage(err.Error())
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return domainerrors.ErrInvalidSignature.WrapMessage(err.Error())
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.ErrExpiredCredential.WrapMessage(err.Error())
	default:
		return domainerrors.ErrMalformedCredential.WrapMessage(err.Error())
	}
}

func claimKind(claims jwt.MapClaims) entity.CredentialKind {
	kind, _ := claims[entity.ClaimTokenType].(string)

	return entity.CredentialKind(kind)
}
