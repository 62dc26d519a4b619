package repository

import (
	"context"
	"sync"

	"github.com/AlibekovAA/exercise-tracker/internal/user/domain"
)

// MemoryRepository holds the user directory in process memory. All
// access is serialized behind a single RWMutex so concurrent
// registrations of the same username cannot both observe it as free.
type MemoryRepository struct {
	mu     sync.RWMutex
	byID   map[domain.ID]domain.User
	byName map[string]domain.ID
	order  []domain.ID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:   make(map[domain.ID]domain.User),
		byName: make(map[string]domain.ID),
	}
}

func (r *MemoryRepository) Create(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[user.Username]; exists {
		return ErrUsernameTaken
	}

	r.byID[user.ID] = user
	r.byName[user.Username] = user.ID
	r.order = append(r.order, user.ID)
	return nil
}

func (r *MemoryRepository) FindByUsername(_ context.Context, username string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[username]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return r.byID[id], nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id domain.ID) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return user, nil
}

// List returns users in registration order.
func (r *MemoryRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.byID[id])
	}
	return users, nil
}
