package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AlibekovAA/exercise-tracker/internal/common/clock"
	"github.com/AlibekovAA/exercise-tracker/internal/common/crypto"
	commonerrors "github.com/AlibekovAA/exercise-tracker/internal/common/errors"
	"github.com/AlibekovAA/exercise-tracker/internal/common/logger"
	exercisedomain "github.com/AlibekovAA/exercise-tracker/internal/exercise/domain"
	exerciserepo "github.com/AlibekovAA/exercise-tracker/internal/exercise/repository"
	"github.com/AlibekovAA/exercise-tracker/internal/observability/metrics"
	"github.com/AlibekovAA/exercise-tracker/internal/tracker/service/mapper"
	userdomain "github.com/AlibekovAA/exercise-tracker/internal/user/domain"
	userrepo "github.com/AlibekovAA/exercise-tracker/internal/user/repository"
)

type TrackerService struct {
	users     userrepo.Repository
	exercises exerciserepo.Repository
	ids       crypto.IDGenerator
	clock     clock.Clock
	validate  *validator.Validate
	log       *logger.Logger
}

type TrackerServiceDeps struct {
	Users     userrepo.Repository
	Exercises exerciserepo.Repository
	IDs       crypto.IDGenerator
	Clock     clock.Clock
	Log       *logger.Logger
}

func NewTrackerService(deps TrackerServiceDeps) *TrackerService {
	return &TrackerService{
		users:     deps.Users,
		exercises: deps.Exercises,
		ids:       deps.IDs,
		clock:     deps.Clock,
		validate:  validator.New(),
		log:       deps.Log,
	}
}

// RegisterUser creates a user for the username, or returns the
// existing one unchanged: registration is idempotent by username.
func (s *TrackerService) RegisterUser(ctx context.Context, in RegisterInput) (mapper.UserResult, error) {
	cmd := registerCommand{Username: strings.TrimSpace(in.Username)}
	if err := s.validate.Struct(cmd); err != nil {
		return mapper.UserResult{}, ErrUsernameRequired
	}

	existing, err := s.users.FindByUsername(ctx, cmd.Username)
	if err == nil {
		return mapper.ToUserResult(existing), nil
	}
	if !errors.Is(err, userrepo.ErrUserNotFound) {
		return mapper.UserResult{}, fmt.Errorf("failed to look up username: %w", err)
	}

	id, err := s.ids.NewID()
	if err != nil {
		return mapper.UserResult{}, fmt.Errorf("failed to generate user id: %w", err)
	}

	user := userdomain.User{
		ID:        userdomain.ID(id),
		Username:  cmd.Username,
		CreatedAt: s.clock.Now(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, userrepo.ErrUsernameTaken) {
			// Lost a race against a concurrent registration of the
			// same username; the idempotency contract still holds.
			winner, findErr := s.users.FindByUsername(ctx, cmd.Username)
			if findErr != nil {
				return mapper.UserResult{}, fmt.Errorf("failed to resolve registration race: %w", findErr)
			}
			return mapper.ToUserResult(winner), nil
		}
		return mapper.UserResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	metrics.UsersRegisteredTotal.Inc()
	s.log.WithFields(ctx, logger.Fields{
		"user_id": string(user.ID),
		"action":  "user_registered",
	}).Info("user registered")

	return mapper.ToUserResult(user), nil
}

// ListUsers returns all users in registration order.
func (s *TrackerService) ListUsers(ctx context.Context) ([]mapper.UserResult, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return mapper.ToUserResults(users), nil
}

// AddExercise validates the raw input into a typed entry and appends
// it to the user's log. An absent date defaults to today.
func (s *TrackerService) AddExercise(ctx context.Context, userID string, in AddExerciseInput) (mapper.ExerciseResult, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return mapper.ExerciseResult{}, err
	}

	description := strings.TrimSpace(in.Description)
	if description == "" || strings.TrimSpace(in.Duration) == "" {
		return mapper.ExerciseResult{}, ErrMissingExerciseFields
	}

	duration, err := strconv.Atoi(strings.TrimSpace(in.Duration))
	if err != nil {
		return mapper.ExerciseResult{}, ErrDurationNotNumber
	}

	date, err := exercisedomain.NormalizeDate(in.Date, s.clock)
	if err != nil {
		return mapper.ExerciseResult{}, ErrInvalidDateFormat
	}

	cmd := addExerciseCommand{
		Description: description,
		Duration:    duration,
		Date:        date,
	}
	if err := s.validate.Struct(cmd); err != nil {
		return mapper.ExerciseResult{}, ErrDurationNotPositive
	}

	entry := exercisedomain.Entry{
		Description: cmd.Description,
		Duration:    cmd.Duration,
		Date:        cmd.Date,
	}

	if err := s.exercises.Append(ctx, user.ID, entry); err != nil {
		if errors.Is(err, exerciserepo.ErrOwnerNotFound) {
			return mapper.ExerciseResult{}, commonerrors.ErrUserNotFound
		}
		return mapper.ExerciseResult{}, fmt.Errorf("failed to append exercise: %w", err)
	}

	metrics.ExercisesRecordedTotal.Inc()
	s.log.WithFields(ctx, logger.Fields{
		"user_id": string(user.ID),
		"action":  "exercise_recorded",
	}).Info("exercise recorded")

	return mapper.ToExerciseResult(user, entry), nil
}

// GetLog fetches the user's log and applies the from/to/limit query.
func (s *TrackerService) GetLog(ctx context.Context, userID string, q LogQuery) (mapper.LogResult, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return mapper.LogResult{}, err
	}

	entries, err := s.exercises.FetchAll(ctx, user.ID)
	if err != nil {
		return mapper.LogResult{}, fmt.Errorf("failed to fetch log: %w", err)
	}

	filtered, err := filterLog(entries, q)
	if err != nil {
		return mapper.LogResult{}, err
	}

	metrics.LogQueriesTotal.WithLabelValues(
		strconv.FormatBool(q.From != "" || q.To != ""),
		strconv.FormatBool(q.Limit != ""),
	).Inc()

	return mapper.ToLogResult(user, filtered), nil
}

func (s *TrackerService) findUser(ctx context.Context, userID string) (userdomain.User, error) {
	user, err := s.users.FindByID(ctx, userdomain.ID(userID))
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			return userdomain.User{}, commonerrors.ErrUserNotFound
		}
		return userdomain.User{}, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
