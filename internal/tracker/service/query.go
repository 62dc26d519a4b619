package service

import (
	"strconv"

	exercisedomain "github.com/AlibekovAA/exercise-tracker/internal/exercise/domain"
)

// filterLog applies the from/to/limit pipeline to a log in insertion
// order. Validation of each parameter happens before any filtering by
// it; an invalid parameter aborts the whole query.
//
// from and to are inclusive calendar-day bounds and compose as AND.
// limit keeps the first limit entries of the filtered sequence, not
// the most recent ones.
func filterLog(entries []exercisedomain.Entry, q LogQuery) ([]exercisedomain.Entry, error) {
	if q.From != "" {
		from, err := exercisedomain.ParseDate(q.From)
		if err != nil {
			return nil, ErrInvalidFromDate
		}
		entries = retain(entries, func(e exercisedomain.Entry) bool {
			return !e.Date.Before(from)
		})
	}

	if q.To != "" {
		to, err := exercisedomain.ParseDate(q.To)
		if err != nil {
			return nil, ErrInvalidToDate
		}
		entries = retain(entries, func(e exercisedomain.Entry) bool {
			return !e.Date.After(to)
		})
	}

	if q.Limit != "" {
		limit, err := strconv.Atoi(q.Limit)
		if err != nil || limit < 1 {
			return nil, ErrInvalidLimit
		}
		if limit < len(entries) {
			entries = entries[:limit]
		}
	}

	return entries, nil
}

func retain(entries []exercisedomain.Entry, keep func(exercisedomain.Entry) bool) []exercisedomain.Entry {
	filtered := make([]exercisedomain.Entry, 0, len(entries))
	for _, e := range entries {
		if keep(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
