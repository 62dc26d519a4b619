package mapper

import (
	exercisedomain "github.com/AlibekovAA/exercise-tracker/internal/exercise/domain"
	userdomain "github.com/AlibekovAA/exercise-tracker/internal/user/domain"
)

// Results are the API response shapes; dates are rendered as display
// day strings here so the HTTP layer never touches time values.

type UserResult struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

type ExerciseResult struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type EntryResult struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type LogResult struct {
	ID       string        `json:"_id"`
	Username string        `json:"username"`
	Count    int           `json:"count"`
	Log      []EntryResult `json:"log"`
}

func ToUserResult(u userdomain.User) UserResult {
	return UserResult{
		Username: u.Username,
		ID:       string(u.ID),
	}
}

func ToUserResults(users []userdomain.User) []UserResult {
	results := make([]UserResult, 0, len(users))
	for _, u := range users {
		results = append(results, ToUserResult(u))
	}
	return results
}

func ToExerciseResult(u userdomain.User, e exercisedomain.Entry) ExerciseResult {
	return ExerciseResult{
		ID:          string(u.ID),
		Username:    u.Username,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        exercisedomain.FormatDay(e.Date),
	}
}

func ToLogResult(u userdomain.User, entries []exercisedomain.Entry) LogResult {
	log := make([]EntryResult, 0, len(entries))
	for _, e := range entries {
		log = append(log, EntryResult{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        exercisedomain.FormatDay(e.Date),
		})
	}
	return LogResult{
		ID:       string(u.ID),
		Username: u.Username,
		Count:    len(log),
		Log:      log,
	}
}
