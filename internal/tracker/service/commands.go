package service

import "time"

// RegisterInput and AddExerciseInput carry raw request values;
// validated command objects are built from them before any domain
// logic runs.

type RegisterInput struct {
	Username string
}

type registerCommand struct {
	Username string `validate:"required"`
}

type AddExerciseInput struct {
	Description string
	Duration    string
	Date        string
}

type addExerciseCommand struct {
	Description string    `validate:"required"`
	Duration    int       `validate:"gt=0"`
	Date        time.Time `validate:"required"`
}

// LogQuery carries the raw from/to/limit query parameters; an empty
// string means absent.
type LogQuery struct {
	From  string
	To    string
	Limit string
}
