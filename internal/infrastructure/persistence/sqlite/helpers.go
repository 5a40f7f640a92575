package sqlite

import (
	"errors"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/kspdigital/koperasi-core/internal/domain/port"
)

// scannable is satisfied by *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

// mapConstraintViolation converts unique-index failures into the port-level
// error the application layer matches on. Other errors pass through.
func mapConstraintViolation(err error) error {
	var liteErr *sqlite.Error
	if !errors.As(err, &liteErr) {
		return err
	}
	switch liteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return port.ConstraintViolationError{Constraint: uniqueDetail(liteErr.Error())}
	}
	return err
}

// uniqueDetail trims a message like
// "constraint failed: UNIQUE constraint failed: dues.member_id, dues.year, dues.month (2067)"
// down to the offending column list.
func uniqueDetail(msg string) string {
	if i := strings.LastIndex(msg, "constraint failed: "); i >= 0 {
		msg = msg[i+len("constraint failed: "):]
	}
	if i := strings.LastIndex(msg, " ("); i >= 0 {
		msg = msg[:i]
	}
	return msg
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
