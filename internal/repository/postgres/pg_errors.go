package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"cinetix/internal/repository"
)

func translateDBErr(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}

	var seatsErr *repository.SeatsConflictError
	if errors.As(err, &seatsErr) {
		return err
	}

	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		switch pge.Code {
		// unique_violation: a concurrent transaction committed an
		// overlapping row first.
		case "23505":
			return repository.ErrConflict
		// serialization_failure / deadlock_detected: callers resolve by
		// reselecting, never by automatic retry.
		case "40001", "40P01":
			return repository.ErrConflict
		}
	}

	return err
}
