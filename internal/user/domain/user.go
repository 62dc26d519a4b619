package domain

import "time"

type ID string

// User is created on first registration of a username and never
// mutated afterwards; ID is immutable and never reused.
type User struct {
	ID        ID
	Username  string
	CreatedAt time.Time
}
