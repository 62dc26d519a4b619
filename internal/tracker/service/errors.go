package service

import (
	"net/http"

	commonerrors "github.com/AlibekovAA/exercise-tracker/internal/common/errors"
)

// Messages are part of the API contract; clients match on them.
var (
	ErrUsernameRequired = commonerrors.NewDomainError(
		"USERNAME_REQUIRED",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Username is required",
	)

	ErrMissingExerciseFields = commonerrors.NewDomainError(
		"MISSING_EXERCISE_FIELDS",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Description and duration are required",
	)

	ErrDurationNotNumber = commonerrors.NewDomainError(
		"DURATION_NOT_NUMBER",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Duration must be a number",
	)

	ErrDurationNotPositive = commonerrors.NewDomainError(
		"DURATION_NOT_POSITIVE",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Duration must be a positive number",
	)

	ErrInvalidDateFormat = commonerrors.NewDomainError(
		"INVALID_DATE_FORMAT",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Invalid date format",
	)

	ErrInvalidFromDate = commonerrors.NewDomainError(
		"INVALID_FROM_DATE",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Invalid from date",
	)

	ErrInvalidToDate = commonerrors.NewDomainError(
		"INVALID_TO_DATE",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Invalid to date",
	)

	ErrInvalidLimit = commonerrors.NewDomainError(
		"INVALID_LIMIT",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Limit must be a positive number",
	)
)
