package entity

// CredentialKind distinguishes short-lived access credentials from refresh credentials.
type CredentialKind string

const (
	CredentialKindAccess  CredentialKind = "access"
	CredentialKindRefresh CredentialKind = "refresh"
)

// Claim names carried inside issued credentials.
const (
	ClaimSubject   = "sub"
	ClaimIssuedAt  = "iat"
	ClaimExpiresAt = "exp"
	ClaimUserID    = "userId"
	ClaimEmail     = "email"
	ClaimName      = "name"
	ClaimProvider  = "provider"
	ClaimUsername  = "username"
	ClaimTokenType = "tokenType"
)

// CredentialPair is what a successful login hands to the client.
type CredentialPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    int64 // Access credential lifetime in seconds.
}
