package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/AlibekovAA/exercise-tracker/internal/exercise/domain"
	userdomain "github.com/AlibekovAA/exercise-tracker/internal/user/domain"
)

// ErrOwnerNotFound reports an append against a user id that does not
// reference an existing user.
var ErrOwnerNotFound = errors.New("owning user not found")

// Repository is a per-user append-only log of exercise entries.
type Repository interface {
	Append(ctx context.Context, userID userdomain.ID, entry domain.Entry) error
	FetchAll(ctx context.Context, userID userdomain.ID) ([]domain.Entry, error)
}

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func (r *PgRepository) Append(ctx context.Context, userID userdomain.ID, entry domain.Entry) error {
	_, err := r.pool.Exec(
		ctx,
		`INSERT INTO exercises (user_id, description, duration, date) VALUES ($1, $2, $3, $4)`,
		string(userID),
		entry.Description,
		entry.Duration,
		entry.Date,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrOwnerNotFound
		}
		return fmt.Errorf("failed to append exercise: %w", err)
	}
	return nil
}

// FetchAll returns the user's log in insertion order. A user with no
// entries yields an empty slice; existence of the user is the
// caller's concern.
func (r *PgRepository) FetchAll(ctx context.Context, userID userdomain.ID) ([]domain.Entry, error) {
	rows, err := r.pool.Query(
		ctx,
		`SELECT description, duration, date FROM exercises WHERE user_id = $1 ORDER BY id ASC`,
		string(userID),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exercises: %w", err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.Description, &e.Duration, &e.Date); err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		e.Date = domain.Day(e.Date)
		entries = append(entries, e)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows iteration error: %w", rows.Err())
	}

	return entries, nil
}
