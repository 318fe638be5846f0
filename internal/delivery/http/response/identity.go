package response

import (
	"time"

	"algoarena/internal/domain/entity"
)

// UserSummary is the public view of an identity embedded in credential responses.
type UserSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Provider  string `json:"provider"`
	AvatarURL string `json:"avatarUrl"`
}

// UserDetail adds account timestamps to UserSummary.
type UserDetail struct {
	UserSummary
	CreatedAt   time.Time `json:"createdAt"`
	LastLoginAt time.Time `json:"lastLoginAt"`
}

// CredentialResponse carries issued credentials.
// RefreshToken and User are omitted when only the access credential was renewed.
type CredentialResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	TokenType    string       `json:"tokenType"`
	ExpiresIn    int64        `json:"expiresIn"`
	User         *UserSummary `json:"user,omitempty"`
}

// NewUserSummary maps an identity to its public view.
func NewUserSummary(identity *entity.Identity) *UserSummary {
	if identity == nil {
		return nil
	}

	return &UserSummary{
		ID:        identity.ID.String(),
		Name:      identity.Name,
		Email:     identity.Email,
		Username:  identity.Username,
		Provider:  identity.Provider.String(),
		AvatarURL: identity.AvatarURL,
	}
}

// NewUserDetail maps an identity to its public view including timestamps.
func NewUserDetail(identity *entity.Identity) *UserDetail {
	if identity == nil {
		return nil
	}

	return &UserDetail{
		UserSummary: *NewUserSummary(identity),
		CreatedAt:   identity.CreatedAt,
		LastLoginAt: identity.LastLoginAt,
	}
}

// NewUserDetails maps a list of identities.
func NewUserDetails(identities []*entity.Identity) []*UserDetail {
	details := make([]*UserDetail, 0, len(identities))
	for _, identity := range identities {
		details = append(details, NewUserDetail(identity))
	}

	return details
}

// NewCredentialResponse maps a credential pair and, when known, its identity.
func NewCredentialResponse(pair *entity.CredentialPair, identity *entity.Identity) *CredentialResponse {
	return &CredentialResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresIn:    pair.ExpiresIn,
		User:         NewUserSummary(identity),
	}
}
