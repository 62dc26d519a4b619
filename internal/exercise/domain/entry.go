package domain

import "time"

// Entry is one recorded exercise. Date carries calendar-day semantics
// only: it is always normalized to UTC midnight.
type Entry struct {
	Description string
	Duration    int
	Date        time.Time
}
