package service

import (
	"context"

	exercisedomain "github.com/AlibekovAA/exercise-tracker/internal/exercise/domain"
	userdomain "github.com/AlibekovAA/exercise-tracker/internal/user/domain"
	userrepo "github.com/AlibekovAA/exercise-tracker/internal/user/repository"
)

type mockUserRepo struct {
	createFunc         func(ctx context.Context, user userdomain.User) error
	findByUsernameFunc func(ctx context.Context, username string) (userdomain.User, error)
	findByIDFunc       func(ctx context.Context, id userdomain.ID) (userdomain.User, error)
	listFunc           func(ctx context.Context) ([]userdomain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user userdomain.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (userdomain.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return userdomain.User{}, userrepo.ErrUserNotFound
}

func (m *mockUserRepo) FindByID(ctx context.Context, id userdomain.ID) (userdomain.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return userdomain.User{}, userrepo.ErrUserNotFound
}

func (m *mockUserRepo) List(ctx context.Context) ([]userdomain.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockExerciseRepo struct {
	appendFunc   func(ctx context.Context, userID userdomain.ID, entry exercisedomain.Entry) error
	fetchAllFunc func(ctx context.Context, userID userdomain.ID) ([]exercisedomain.Entry, error)
}

func (m *mockExerciseRepo) Append(ctx context.Context, userID userdomain.ID, entry exercisedomain.Entry) error {
	if m.appendFunc != nil {
		return m.appendFunc(ctx, userID, entry)
	}
	return nil
}

func (m *mockExerciseRepo) FetchAll(ctx context.Context, userID userdomain.ID) ([]exercisedomain.Entry, error) {
	if m.fetchAllFunc != nil {
		return m.fetchAllFunc(ctx, userID)
	}
	return []exercisedomain.Entry{}, nil
}

type mockIDGenerator struct {
	newIDFunc func() (string, error)
}

func (m *mockIDGenerator) NewID() (string, error) {
	if m.newIDFunc != nil {
		return m.newIDFunc()
	}
	return "mock-id", nil
}
