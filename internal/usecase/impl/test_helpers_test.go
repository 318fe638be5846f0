package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"algoarena/internal/domain/entity"
	"algoarena/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type identityKey struct {
	provider entity.ProviderType
	subject  string
}

// memoryIdentityStore is an in-memory IdentityRepository that enforces the
// (provider, subject) uniqueness the database index provides.
type memoryIdentityStore struct {
	mu      sync.Mutex
	byKey   map[identityKey]*entity.Identity
	creates int
}

func newMemoryIdentityStore() *memoryIdentityStore {
	return &memoryIdentityStore{byKey: make(map[identityKey]*entity.Identity)}
}

func (s *memoryIdentityStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.byKey)
}

func (s *memoryIdentityStore) FindByProviderSubject(_ context.Context, provider entity.ProviderType, subject string) (*entity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity, ok := s.byKey[identityKey{provider, subject}]
	if !ok {
		return nil, repository.ErrIdentityNotFound
	}
	clone := *identity

	return &clone, nil
}

func (s *memoryIdentityStore) FindBySubject(_ context.Context, subject string) (*entity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var oldest *entity.Identity
	for key, identity := range s.byKey {
		if key.subject == subject && (oldest == nil || identity.CreatedAt.Before(oldest.CreatedAt)) {
			oldest = identity
		}
	}
	if oldest == nil {
		return nil, repository.ErrIdentityNotFound
	}
	clone := *oldest

	return &clone, nil
}

func (s *memoryIdentityStore) FindByID(_ context.Context, id uuid.UUID) (*entity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, identity := range s.byKey {
		if identity.ID == id {
			clone := *identity

			return &clone, nil
		}
	}

	return nil, repository.ErrIdentityNotFound
}

func (s *memoryIdentityStore) FindByEmail(_ context.Context, email string) (*entity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, identity := range s.byKey {
		if identity.Email == email {
			clone := *identity

			return &clone, nil
		}
	}

	return nil, repository.ErrIdentityNotFound
}

func (s *memoryIdentityStore) ListAll(_ context.Context) ([]*entity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	identities := make([]*entity.Identity, 0, len(s.byKey))
	for _, identity := range s.byKey {
		clone := *identity
		identities = append(identities, &clone)
	}
	sort.Slice(identities, func(i, j int) bool {
		return identities[i].CreatedAt.Before(identities[j].CreatedAt)
	})

	return identities, nil
}

func (s *memoryIdentityStore) Create(_ context.Context, identity *entity.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := identityKey{identity.Provider, identity.ProviderSubjectID}
	if _, exists := s.byKey[key]; exists {
		return repository.ErrIdentityConflict
	}
	clone := *identity
	s.byKey[key] = &clone
	s.creates++

	return nil
}

func (s *memoryIdentityStore) TouchLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, identity := range s.byKey {
		if identity.ID == id {
			identity.LastLoginAt = at

			return nil
		}
	}

	return repository.ErrIdentityNotFound
}

func (s *memoryIdentityStore) UpdateProfile(_ context.Context, updated *entity.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, identity := range s.byKey {
		if identity.ID == updated.ID {
			identity.Name = updated.Name
			identity.Username = updated.Username

			return nil
		}
	}

	return repository.ErrIdentityNotFound
}

func (s *memoryIdentityStore) DeleteByID(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, identity := range s.byKey {
		if identity.ID == id {
			delete(s.byKey, key)

			return nil
		}
	}

	return repository.ErrIdentityNotFound
}
