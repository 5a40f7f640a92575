package postgres

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kspdigital/koperasi-core/internal/domain/port"
)

// scannable abstracts pgx.Row and pgx.Rows for shared scan helpers.
type scannable interface {
	Scan(dest ...any) error
}

const uniqueViolationCode = "23505"

// mapConstraintViolation converts a postgres unique violation into the
// port-level error so callers can tell a duplicate row from an outage.
func mapConstraintViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return port.ConstraintViolationError{Constraint: pgErr.ConstraintName}
	}
	return err
}

// timeOrZero maps a nullable column to the zero time used by aggregates for
// dates not yet set.
func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// nullableTime maps the zero time back to NULL on write.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
