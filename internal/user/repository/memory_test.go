package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/AlibekovAA/exercise-tracker/internal/user/domain"
)

func TestMemoryRepository_CreateAndFind(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	user := domain.User{ID: "user-1", Username: "alice"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	byName, err := repo.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("find by username failed: %v", err)
	}
	if byName.ID != user.ID {
		t.Errorf("expected id %s, got %s", user.ID, byName.ID)
	}

	byID, err := repo.FindByID(ctx, "user-1")
	if err != nil {
		t.Fatalf("find by id failed: %v", err)
	}
	if byID.Username != "alice" {
		t.Errorf("expected username alice, got %s", byID.Username)
	}
}

func TestMemoryRepository_NotFound(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if _, err := repo.FindByUsername(ctx, "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.FindByID(ctx, "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestMemoryRepository_DuplicateUsername(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, domain.User{ID: "1", Username: "alice"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	err := repo.Create(ctx, domain.User{ID: "2", Username: "alice"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestMemoryRepository_ListRegistrationOrder(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	names := []string{"carol", "alice", "bob"}
	for i, name := range names {
		if err := repo.Create(ctx, domain.User{ID: domain.ID(fmt.Sprintf("u%d", i)), Username: name}); err != nil {
			t.Fatalf("create %s failed: %v", name, err)
		}
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != len(names) {
		t.Fatalf("expected %d users, got %d", len(names), len(users))
	}
	for i, name := range names {
		if users[i].Username != name {
			t.Errorf("position %d: expected %s, got %s", i, name, users[i].Username)
		}
	}
}

func TestMemoryRepository_ConcurrentCreateSameUsername(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	const attempts = 50
	var wg sync.WaitGroup
	errCh := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errCh <- repo.Create(ctx, domain.User{
				ID:       domain.ID(fmt.Sprintf("u%d", i)),
				Username: "alice",
			})
		}(i)
	}
	wg.Wait()
	close(errCh)

	var created int
	for err := range errCh {
		if err == nil {
			created++
		} else if !errors.Is(err, ErrUsernameTaken) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if created != 1 {
		t.Errorf("expected exactly one successful create, got %d", created)
	}
}
