package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

var _ port.DueRepository = (*DueRepo)(nil)

// DueRepo implements port.DueRepository on SQLite.
type DueRepo struct {
	db *sql.DB
}

// NewDueRepo creates a new SQLite-backed dues repository.
func NewDueRepo(db *sql.DB) *DueRepo {
	return &DueRepo{db: db}
}

// Insert adds a dues row. The unique index on (member_id, year, month)
// turns a second entry for the month into a ConstraintViolationError.
func (r *DueRepo) Insert(ctx context.Context, due model.Due) error {
	query := `
		INSERT INTO dues (
			id, member_id, year, month,
			mandatory_amount, voluntary_amount, recorded_at
		) VALUES (?,?,?,?,?,?,?)
	`
	period := due.Period()
	_, err := r.db.ExecContext(ctx, query,
		due.ID(), due.MemberID(), period.Year(), int(period.Month()),
		due.MandatoryAmount().Decimal(), due.VoluntaryAmount().Decimal(),
		due.RecordedAt(),
	)
	if err != nil {
		return fmt.Errorf("insert due: %w", mapConstraintViolation(err))
	}
	return nil
}

// ListForRange returns all dues whose period falls inside [from, to].
func (r *DueRepo) ListForRange(ctx context.Context, from, to valueobject.FiscalPeriod) ([]model.Due, error) {
	query := selectDueColumns + `
		WHERE (year, month) >= (?, ?) AND (year, month) <= (?, ?)
		ORDER BY year, month, member_id`
	rows, err := r.db.QueryContext(ctx, query,
		from.Year(), int(from.Month()), to.Year(), int(to.Month()))
	if err != nil {
		return nil, fmt.Errorf("query dues: %w", err)
	}
	defer rows.Close()
	return collectDues(rows)
}

// ListForMemberRange returns one member's dues inside [from, to].
func (r *DueRepo) ListForMemberRange(ctx context.Context, memberID uuid.UUID, from, to valueobject.FiscalPeriod) ([]model.Due, error) {
	query := selectDueColumns + `
		WHERE member_id = ?
		  AND (year, month) >= (?, ?) AND (year, month) <= (?, ?)
		ORDER BY year, month`
	rows, err := r.db.QueryContext(ctx, query,
		memberID, from.Year(), int(from.Month()), to.Year(), int(to.Month()))
	if err != nil {
		return nil, fmt.Errorf("query member dues: %w", err)
	}
	defer rows.Close()
	return collectDues(rows)
}

const selectDueColumns = `
	SELECT id, member_id, year, month,
	       mandatory_amount, voluntary_amount, recorded_at
	FROM dues`

func collectDues(rows *sql.Rows) ([]model.Due, error) {
	var dues []model.Due
	for rows.Next() {
		due, err := scanDueRow(rows)
		if err != nil {
			return nil, err
		}
		dues = append(dues, due)
	}
	return dues, rows.Err()
}

func scanDueRow(s scannable) (model.Due, error) {
	var (
		id, memberID                     uuid.UUID
		year, month                      int
		mandatoryAmount, voluntaryAmount decimal.Decimal
		recordedAt                       time.Time
	)

	err := s.Scan(&id, &memberID, &year, &month,
		&mandatoryAmount, &voluntaryAmount, &recordedAt)
	if err != nil {
		return model.Due{}, fmt.Errorf("scan due: %w", err)
	}

	period, err := valueobject.NewFiscalPeriod(year, time.Month(month))
	if err != nil {
		return model.Due{}, fmt.Errorf("parse due period: %w", err)
	}

	return model.ReconstructDue(
		id, memberID, period,
		money.FromDecimal(mandatoryAmount), money.FromDecimal(voluntaryAmount),
		recordedAt,
	), nil
}
