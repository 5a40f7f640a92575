package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
)

var _ port.FiscalPeriodRepository = (*FiscalPeriodRepo)(nil)

// FiscalPeriodRepo implements port.FiscalPeriodRepository on PostgreSQL.
// Only closed periods have a row; an absent row means the month is open.
type FiscalPeriodRepo struct {
	pool *pgxpool.Pool
}

// NewFiscalPeriodRepo creates a new PostgreSQL-backed fiscal period repository.
func NewFiscalPeriodRepo(pool *pgxpool.Pool) *FiscalPeriodRepo {
	return &FiscalPeriodRepo{pool: pool}
}

// IsClosed reports whether the period has been closed.
func (r *FiscalPeriodRepo) IsClosed(ctx context.Context, period valueobject.FiscalPeriod) (bool, error) {
	query := `
		SELECT closed_at FROM fiscal_periods
		WHERE year = $1 AND month = $2
	`
	var closedAt time.Time
	err := r.pool.QueryRow(ctx, query, period.Year(), int(period.Month())).Scan(&closedAt)
	if errors.Is(err, pgx.ErrNoRows) {
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
		VALUES ($1, $2, $3)
		ON CONFLICT (year, month) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query, period.Year(), int(period.Month()), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("close fiscal period: %w", err)
	}
	return nil
}
