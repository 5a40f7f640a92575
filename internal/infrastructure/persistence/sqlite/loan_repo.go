package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

var _ port.LoanRepository = (*LoanRepo)(nil)

// LoanRepo implements port.LoanRepository on SQLite.
type LoanRepo struct {
	db *sql.DB
}

// NewLoanRepo creates a new SQLite-backed loan repository.
func NewLoanRepo(db *sql.DB) *LoanRepo {
	return &LoanRepo{db: db}
}

// Save persists a loan. Updates carry the optimistic version check; a stale
// aggregate affects zero rows and fails with ErrVersionConflict.
func (r *LoanRepo) Save(ctx context.Context, loan model.Loan) error {
	query := `
		INSERT INTO loans (
			id, member_id, principal, annual_rate_percent, tenor_months,
			monthly_installment, total_with_interest, origination_date,
			status, outstanding_balance, version, created_at, updated_at
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)
		ON CONFLICT (id) DO UPDATE SET
			monthly_installment = EXCLUDED.monthly_installment,
			total_with_interest = EXCLUDED.total_with_interest,
			origination_date    = EXCLUDED.origination_date,
			status              = EXCLUDED.status,
			outstanding_balance = EXCLUDED.outstanding_balance,
			version             = loans.version + 1,
			updated_at          = EXCLUDED.updated_at
		WHERE loans.version = ?
	`
	res, err := r.db.ExecContext(ctx, query,
		loan.ID(), loan.MemberID(),
		loan.Principal().Decimal(), loan.AnnualRatePercent(), loan.TenorMonths(),
		loan.MonthlyInstallment().Decimal(), loan.TotalWithInterest().Decimal(),
		nullableTime(loan.OriginationDate()),
		loan.Status().String(), loan.OutstandingBalance().Decimal(),
		loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
		loan.Version(),
	)
	if err != nil {
		return fmt.Errorf("save loan: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save loan: %w", err)
	}
	if affected == 0 {
		return port.ErrVersionConflict
	}
	return nil
}

// FindByID retrieves a loan by ID.
func (r *LoanRepo) FindByID(ctx context.Context, id uuid.UUID) (model.Loan, error) {
	row := r.db.QueryRowContext(ctx, selectLoanColumns+` WHERE id = ?`, id)
	loan, err := scanLoanRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Loan{}, port.ErrLoanNotFound
	}
	return loan, err
}

// ListActive returns all loans in active status ordered by origination.
func (r *LoanRepo) ListActive(ctx context.Context) ([]model.Loan, error) {
	rows, err := r.db.QueryContext(ctx,
		selectLoanColumns+` WHERE status = ? ORDER BY origination_date, id`,
		valueobject.LoanStatusActive.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query active loans: %w", err)
	}
	defer rows.Close()

	var loans []model.Loan
	for rows.Next() {
		loan, err := scanLoanRow(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}

const selectLoanColumns = `
	SELECT id, member_id, principal, annual_rate_percent, tenor_months,
	       monthly_installment, total_with_interest, origination_date,
	       status, outstanding_balance, version, created_at, updated_at
	FROM loans`

func scanLoanRow(s scannable) (model.Loan, error) {
	var (
		id, memberID                          uuid.UUID
		principal, annualRatePercent          decimal.Decimal
		tenorMonths                           int
		monthlyInstallment, totalWithInterest decimal.Decimal
		originationDate                       *time.Time
		statusStr                             string
		outstandingBalance                    decimal.Decimal
		version                               int
		createdAt, updatedAt                  time.Time
	)

	err := s.Scan(
		&id, &memberID, &principal, &annualRatePercent, &tenorMonths,
		&monthlyInstallment, &totalWithInterest, &originationDate,
		&statusStr, &outstandingBalance, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, err
		}
		return model.Loan{}, fmt.Errorf("scan loan: %w", err)
	}

	status, err := valueobject.NewLoanStatus(statusStr)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parse loan status: %w", err)
	}

	return model.ReconstructLoan(
		id, memberID,
		money.FromDecimal(principal), annualRatePercent, tenorMonths,
		money.FromDecimal(monthlyInstallment), money.FromDecimal(totalWithInterest),
		timeOrZero(originationDate),
		status,
		money.FromDecimal(outstandingBalance),
		version, createdAt, updatedAt,
	), nil
}
