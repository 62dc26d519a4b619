package repository

import (
	"context"
	"sync"

	"github.com/AlibekovAA/exercise-tracker/internal/exercise/domain"
	userdomain "github.com/AlibekovAA/exercise-tracker/internal/user/domain"
)

// MemoryRepository keeps per-user logs in process memory, serialized
// behind one RWMutex so concurrent appends to the same log cannot
// lose entries.
type MemoryRepository struct {
	mu   sync.RWMutex
	logs map[userdomain.ID][]domain.Entry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		logs: make(map[userdomain.ID][]domain.Entry),
	}
}

func (r *MemoryRepository) Append(_ context.Context, userID userdomain.ID, entry domain.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logs[userID] = append(r.logs[userID], entry)
	return nil
}

func (r *MemoryRepository) FetchAll(_ context.Context, userID userdomain.ID) ([]domain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log := r.logs[userID]
	out := make([]domain.Entry, len(log))
	copy(out, log)
	return out, nil
}
