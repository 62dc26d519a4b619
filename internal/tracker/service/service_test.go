package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AlibekovAA/exercise-tracker/internal/common/clock"
	commonerrors "github.com/AlibekovAA/exercise-tracker/internal/common/errors"
	"github.com/AlibekovAA/exercise-tracker/internal/common/logger"
	exercisedomain "github.com/AlibekovAA/exercise-tracker/internal/exercise/domain"
	userdomain "github.com/AlibekovAA/exercise-tracker/internal/user/domain"
	userrepo "github.com/AlibekovAA/exercise-tracker/internal/user/repository"
)

func setupTrackerService(t *testing.T) (*TrackerService, *mockUserRepo, *mockExerciseRepo, *mockIDGenerator, *clock.MockClock) {
	_ = t
	users := &mockUserRepo{}
	exercises := &mockExerciseRepo{}
	ids := &mockIDGenerator{}
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	log, _ := logger.New("", "test", "info")

	svc := NewTrackerService(TrackerServiceDeps{
		Users:     users,
		Exercises: exercises,
		IDs:       ids,
		Clock:     clk,
		Log:       log,
	})

	return svc, users, exercises, ids, clk
}

func TestRegisterUser_Success(t *testing.T) {
	svc, users, _, ids, _ := setupTrackerService(t)

	ids.newIDFunc = func() (string, error) {
		return "user-123", nil
	}

	var created userdomain.User
	users.createFunc = func(_ context.Context, user userdomain.User) error {
		created = user
		return nil
	}

	result, err := svc.RegisterUser(context.Background(), RegisterInput{Username: "alice"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.ID != "user-123" {
		t.Errorf("expected id user-123, got %s", result.ID)
	}
	if result.Username != "alice" {
		t.Errorf("expected username alice, got %s", result.Username)
	}
	if created.Username != "alice" {
		t.Errorf("expected stored username alice, got %s", created.Username)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected created_at to be set from the clock")
	}
}

func TestRegisterUser_IdempotentByUsername(t *testing.T) {
	svc, users, _, ids, _ := setupTrackerService(t)

	existing := userdomain.User{ID: "user-1", Username: "alice"}
	registered := false

	users.findByUsernameFunc = func(_ context.Context, username string) (userdomain.User, error) {
		if registered {
			return existing, nil
		}
		return userdomain.User{}, userrepo.ErrUserNotFound
	}
	ids.newIDFunc = func() (string, error) {
		return string(existing.ID), nil
	}
	users.createFunc = func(_ context.Context, user userdomain.User) error {
		registered = true
		return nil
	}

	first, err := svc.RegisterUser(context.Background(), RegisterInput{Username: "alice"})
	if err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	second, err := svc.RegisterUser(context.Background(), RegisterInput{Username: "alice"})
	if err != nil {
		t.Fatalf("second registration failed: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("expected identical ids, got %s and %s", first.ID, second.ID)
	}
}

func TestRegisterUser_LostCreateRaceReturnsWinner(t *testing.T) {
	svc, users, _, _, _ := setupTrackerService(t)

	winner := userdomain.User{ID: "winner-id", Username: "alice"}
	raced := false

	users.findByUsernameFunc = func(_ context.Context, username string) (userdomain.User, error) {
		if raced {
			return winner, nil
		}
		return userdomain.User{}, userrepo.ErrUserNotFound
	}
	users.createFunc = func(_ context.Context, user userdomain.User) error {
		raced = true
		return userrepo.ErrUsernameTaken
	}

	result, err := svc.RegisterUser(context.Background(), RegisterInput{Username: "alice"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.ID != "winner-id" {
		t.Errorf("expected the winner's id, got %s", result.ID)
	}
}

func TestRegisterUser_EmptyUsername(t *testing.T) {
	svc, _, _, _, _ := setupTrackerService(t)

	for _, username := range []string{"", "   "} {
		_, err := svc.RegisterUser(context.Background(), RegisterInput{Username: username})
		if !errors.Is(err, ErrUsernameRequired) {
			t.Errorf("username %q: expected ErrUsernameRequired, got %v", username, err)
		}
	}
}

func TestListUsers_RegistrationOrder(t *testing.T) {
	svc, users, _, _, _ := setupTrackerService(t)

	users.listFunc = func(_ context.Context) ([]userdomain.User, error) {
		return []userdomain.User{
			{ID: "1", Username: "alice"},
			{ID: "2", Username: "bob"},
		}, nil
	}

	results, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(results) != 2 || results[0].Username != "alice" || results[1].Username != "bob" {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestAddExercise_Success(t *testing.T) {
	svc, users, exercises, _, _ := setupTrackerService(t)

	users.findByIDFunc = func(_ context.Context, id userdomain.ID) (userdomain.User, error) {
		return userdomain.User{ID: id, Username: "alice"}, nil
	}

	var appended exercisedomain.Entry
	exercises.appendFunc = func(_ context.Context, _ userdomain.ID, entry exercisedomain.Entry) error {
		appended = entry
		return nil
	}

	result, err := svc.AddExercise(context.Background(), "user-1", AddExerciseInput{
		Description: "run",
		Duration:    "30",
		Date:        "2023-01-05",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.Description != "run" || result.Duration != 30 {
		t.Errorf("unexpected result: %+v", result)
	}
	if result.Date != "Thu Jan 05 2023" {
		t.Errorf("expected date Thu Jan 05 2023, got %s", result.Date)
	}
	if appended.Duration != 30 {
		t.Errorf("expected stored duration 30, got %d", appended.Duration)
	}
}

func TestAddExercise_AbsentDateDefaultsToToday(t *testing.T) {
	svc, users, exercises, _, clk := setupTrackerService(t)

	clk.SetTime(time.Date(2024, 3, 15, 23, 5, 0, 0, time.UTC))

	users.findByIDFunc = func(_ context.Context, id userdomain.ID) (userdomain.User, error) {
		return userdomain.User{ID: id, Username: "alice"}, nil
	}

	var appended exercisedomain.Entry
	exercises.appendFunc = func(_ context.Context, _ userdomain.ID, entry exercisedomain.Entry) error {
		appended = entry
		return nil
	}

	result, err := svc.AddExercise(context.Background(), "user-1", AddExerciseInput{
		Description: "run",
		Duration:    "30",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !appended.Date.Equal(want) {
		t.Errorf("expected date %v, got %v", want, appended.Date)
	}
	if result.Date != "Fri Mar 15 2024" {
		t.Errorf("expected Fri Mar 15 2024, got %s", result.Date)
	}
}

func TestAddExercise_UserNotFound(t *testing.T) {
	svc, _, _, _, _ := setupTrackerService(t)

	_, err := svc.AddExercise(context.Background(), "missing", AddExerciseInput{
		Description: "run",
		Duration:    "30",
	})
	if !errors.Is(err, commonerrors.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAddExercise_ValidationErrors(t *testing.T) {
	svc, users, _, _, _ := setupTrackerService(t)

	users.findByIDFunc = func(_ context.Context, id userdomain.ID) (userdomain.User, error) {
		return userdomain.User{ID: id, Username: "alice"}, nil
	}

	testCases := []struct {
		name    string
		input   AddExerciseInput
		wantErr error
	}{
		{"missing description", AddExerciseInput{Duration: "30"}, ErrMissingExerciseFields},
		{"missing duration", AddExerciseInput{Description: "run"}, ErrMissingExerciseFields},
		{"non-numeric duration", AddExerciseInput{Description: "run", Duration: "abc"}, ErrDurationNotNumber},
		{"zero duration", AddExerciseInput{Description: "run", Duration: "0"}, ErrDurationNotPositive},
		{"negative duration", AddExerciseInput{Description: "run", Duration: "-5"}, ErrDurationNotPositive},
		{"invalid date", AddExerciseInput{Description: "run", Duration: "30", Date: "not-a-date"}, ErrInvalidDateFormat},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddExercise(context.Background(), "user-1", tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestGetLog_RoundTripFormatting(t *testing.T) {
	svc, users, exercises, _, _ := setupTrackerService(t)

	users.findByIDFunc = func(_ context.Context, id userdomain.ID) (userdomain.User, error) {
		return userdomain.User{ID: id, Username: "alice"}, nil
	}
	exercises.fetchAllFunc = func(_ context.Context, _ userdomain.ID) ([]exercisedomain.Entry, error) {
		return []exercisedomain.Entry{
			{Description: "run", Duration: 30, Date: time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)},
		}, nil
	}

	result, err := svc.GetLog(context.Background(), "user-1", LogQuery{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.Count != 1 || len(result.Log) != 1 {
		t.Fatalf("expected count 1, got %+v", result)
	}
	entry := result.Log[0]
	if entry.Description != "run" || entry.Duration != 30 || entry.Date != "Thu Jan 05 2023" {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestGetLog_UserNotFound(t *testing.T) {
	svc, _, _, _, _ := setupTrackerService(t)

	_, err := svc.GetLog(context.Background(), "missing", LogQuery{})
	if !errors.Is(err, commonerrors.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetLog_InvalidQuery(t *testing.T) {
	svc, users, _, _, _ := setupTrackerService(t)

	users.findByIDFunc = func(_ context.Context, id userdomain.ID) (userdomain.User, error) {
		return userdomain.User{ID: id, Username: "alice"}, nil
	}

	if _, err := svc.GetLog(context.Background(), "user-1", LogQuery{From: "garbage"}); !errors.Is(err, ErrInvalidFromDate) {
		t.Errorf("expected ErrInvalidFromDate, got %v", err)
	}
	if _, err := svc.GetLog(context.Background(), "user-1", LogQuery{Limit: "0"}); !errors.Is(err, ErrInvalidLimit) {
		t.Errorf("expected ErrInvalidLimit, got %v", err)
	}
}
