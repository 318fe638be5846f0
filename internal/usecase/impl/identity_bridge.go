// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	deliverycontext "algoarena/internal/delivery/context"
	"algoarena/internal/domain/entity"
	domainerrors "algoarena/internal/domain/errors"
	"algoarena/internal/domain/repository"
	"algoarena/internal/domain/service"
	"algoarena/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileDescriptor says where a provider keeps each identity attribute.
// Attribute lists are tried in order; the first non-blank value wins.
type profileDescriptor struct {
	subject  string
	name     []string
	username []string
	email    []string
	avatar   []string
}

//nolint:gochecknoglobals
var profileDescriptors = map[entity.ProviderType]profileDescriptor{
	entity.ProviderTypeGoogle: {
		subject:  "sub",
		name:     []string{"name"},
		username: []string{"name", "email"},
		email:    []string{"email"},
		avatar:   []string{"picture"},
	},
	entity.ProviderTypeGitHub: {
		subject:  "id",
		name:     []string{"name", "login"},
		username: []string{"login"},
		email:    []string{"email"},
		avatar:   []string{"avatar_url"},
	},
}

// identityBridge implements the IdentityBridge interface.
type identityBridge struct {
	identityRepo repository.IdentityRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewIdentityBridge is the constructor for identityBridge.
func NewIdentityBridge(identityRepo repository.IdentityRepository, logger *slog.Logger) usecase.IdentityBridge {
	return &identityBridge{
		identityRepo: identityRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (b *identityBridge) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, b.logger)
}

// Reconcile finds or creates the identity for a provider profile.
//
// The create path does not run inside a transaction: a failed insert aborts a
// PostgreSQL transaction, which would prevent reading the winning row after a
// unique-index conflict.
func (b *identityBridge) Reconcile(ctx context.Context, provider entity.ProviderType, profile service.ProviderProfile) (*usecase.ReconcileOutput, error) {
	candidate, err := identityFromProfile(provider, profile)
	if err != nil {
		return nil, err
	}

	now := b.now().UTC()

	existing, err := b.identityRepo.FindByProviderSubject(ctx, provider, candidate.ProviderSubjectID)
	switch {
	case err == nil:
		return b.touch(ctx, existing, now)
	case !errors.Is(err, repository.ErrIdentityNotFound):
		return nil, errors.Wrap(err, "failed to look up identity")
	}

	candidate.ID = uuid.New()
	candidate.CreatedAt = now
	candidate.LastLoginAt = now

	err = b.identityRepo.Create(ctx, candidate)
	if err == nil {
		b.getLogger(ctx).Info("Created identity",
			slog.String("identity_id", candidate.ID.String()),
			slog.String("provider", provider.String()),
		)

		return &usecase.ReconcileOutput{Identity: candidate, FirstLogin: true}, nil
	}
	if !errors.Is(err, repository.ErrIdentityConflict) {
		return nil, errors.Wrap(err, "failed to create identity")
	}

	// Another login for the same subject won the insert race.
	b.getLogger(ctx).Debug("Identity insert lost race, re-reading",
		slog.String("provider", provider.String()),
		slog.String("provider_subject_id", candidate.ProviderSubjectID),
	)

	winner, err := b.identityRepo.FindByProviderSubject(ctx, provider, candidate.ProviderSubjectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-read identity after conflict")
	}

	return b.touch(ctx, winner, now)
}

func (b *identityBridge) touch(ctx context.Context, identity *entity.Identity, now time.Time) (*usecase.ReconcileOutput, error) {
	if err := b.identityRepo.TouchLastLogin(ctx, identity.ID, now); err != nil {
		return nil, errors.Wrap(err, "failed to update last login")
	}
	identity.LastLoginAt = now

	return &usecase.ReconcileOutput{Identity: identity}, nil
}

// identityFromProfile maps a provider profile onto an unsaved identity.
func identityFromProfile(provider entity.ProviderType, profile service.ProviderProfile) (*entity.Identity, error) {
	descriptor, ok := profileDescriptors[provider]
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrProviderDataIncomplete, "no profile mapping for provider %q", provider)
	}

	subject, ok := attributeString(profile[descriptor.subject])
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrProviderDataIncomplete, "%s profile has no %q attribute", provider, descriptor.subject)
	}

	return &entity.Identity{
		Provider:          provider,
		ProviderSubjectID: subject,
		Name:              firstAttribute(profile, descriptor.name),
		Username:          firstAttribute(profile, descriptor.username),
		Email:             firstAttribute(profile, descriptor.email),
		AvatarURL:         firstAttribute(profile, descriptor.avatar),
	}, nil
}

func firstAttribute(profile service.ProviderProfile, keys []string) string {
	for _, key := range keys {
		if value, ok := attributeString(profile[key]); ok {
			return value
		}
	}

	return ""
}

// attributeString renders scalar profile values as text. Numeric ids come back
// as json.Number or float64 depending on how the profile was decoded.
func attributeString(value any) (string, bool) {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case json.Number:
		s = v.String()
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		s = strconv.Itoa(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	default:
		return "", false
	}

	s = strings.TrimSpace(s)

	return s, s != ""
}
