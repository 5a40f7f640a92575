package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
)

var _ port.FiscalPeriodRepository = (*FiscalPeriodRepo)(nil)

// FiscalPeriodRepo implements port.FiscalPeriodRepository on SQLite.
// Only closed periods have a row; an absent row means the month is open.
type FiscalPeriodRepo struct {
	db *sql.DB
}

// NewFiscalPeriodRepo creates a new SQLite-backed fiscal period repository.
func NewFiscalPeriodRepo(db *sql.DB) *FiscalPeriodRepo {
	return &FiscalPeriodRepo{db: db}
}

// IsClosed reports whether the period has been closed.
func (r *FiscalPeriodRepo) IsClosed(ctx context.Context, period valueobject.FiscalPeriod) (bool, error) {
	query := `
		SELECT closed_at FROM fiscal_periods
		WHERE year = ? AND month = ?
	`
	var closedAt time.Time
	err := r.db.QueryRowContext(ctx, query, period.Year(), int(period.Month())).Scan(&closedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query fiscal period: %w", err)
	}
	return true, nil
}

// Close marks the period closed. Closing an already-closed period keeps
// the original closed_at timestamp.
func (r *FiscalPeriodRepo) Close(ctx context.Context, period valueobject.FiscalPeriod) error {
	query := `
		INSERT INTO fiscal_periods (year, month, closed_at)
		VALUES (?, ?, ?)
		ON CONFLICT (year, month) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, period.Year(), int(period.Month()), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("close fiscal period: %w", err)
	}
	return nil
}
