package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"prepai/internal/domain/entity"
	"prepai/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryUserStore is an in-memory UserRepository keyed by email.
type memoryUserStore struct {
	mu      sync.Mutex
	users   map[string]*entity.User
	creates int
}

func newMemoryUserStore(users ...*entity.User) *memoryUserStore {
	store := &memoryUserStore{users: make(map[string]*entity.User)}
	for _, u := range users {
		store.users[u.Email] = u
	}

	return store
}

func (s *memoryUserStore) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (s *memoryUserStore) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[email]; ok {
		return u, nil
	}

	return nil, repository.ErrUserNotFound
}

func (s *memoryUserStore) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return repository.ErrUserConflict
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.Email] = user
	s.creates++

	return nil
}

func (s *memoryUserStore) FindRoleByEmail(ctx context.Context, email string) (entity.Role, error) {
	u, err := s.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	return u.Role, nil
}
