// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProviderType names an external identity provider.
type ProviderType string

const (
	ProviderTypeGoogle ProviderType = "google"
	ProviderTypeGitHub ProviderType = "github"
)

// ParseProviderType maps a registration id such as "google" or "GitHub" to a known provider.
func ParseProviderType(raw string) (ProviderType, bool) {
	switch ProviderType(strings.ToLower(strings.TrimSpace(raw))) {
	case ProviderTypeGoogle:
		return ProviderTypeGoogle, true
	case ProviderTypeGitHub:
		return ProviderTypeGitHub, true
	default:
		return "", false
	}
}

func (p ProviderType) String() string {
	return string(p)
}

// Identity is the local record of a person who has logged in through a provider.
// (Provider, ProviderSubjectID) is unique across all identities.
type Identity struct {
	ID                uuid.UUID
	Provider          ProviderType
	ProviderSubjectID string // Stable id issued by the provider, e.g. Google's "sub" or GitHub's numeric "id".
	Name              string
	Username          string
	Email             string // Empty when the provider does not disclose it.
	AvatarURL         string
	CreatedAt         time.Time
	LastLoginAt       time.Time
}

// Rename applies a profile edit. Blank values leave the current field untouched.
func (i *Identity) Rename(name, username string) bool {
	changed := false
	if name = strings.TrimSpace(name); name != "" && name != i.Name {
		i.Name = name
		changed = true
	}
	if username = strings.TrimSpace(username); username != "" && username != i.Username {
		i.Username = username
		changed = true
	}

	return changed
}
