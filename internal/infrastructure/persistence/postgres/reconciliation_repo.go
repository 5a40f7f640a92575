package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
)

var _ port.ReconciliationRepository = (*ReconciliationRepo)(nil)

// ReconciliationRepo assembles the reconciliation dataset on PostgreSQL.
// All six queries run inside one repeatable-read, read-only transaction so a
// reconciliation racing a payment never sees the payment row without the
// matching loan balance.
type ReconciliationRepo struct {
	pool *pgxpool.Pool
}

// NewReconciliationRepo creates a new PostgreSQL-backed snapshot repository.
func NewReconciliationRepo(pool *pgxpool.Pool) *ReconciliationRepo {
	return &ReconciliationRepo{pool: pool}
}

// FetchPeriodData returns every book row dated before end, with loans and
// members in their current state.
func (r *ReconciliationRepo) FetchPeriodData(ctx context.Context, end time.Time) (model.PeriodData, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return model.PeriodData{}, fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var data model.PeriodData

	data.Loans, err = fetchLoans(ctx, tx)
	if err != nil {
		return model.PeriodData{}, err
	}
	data.Payments, err = fetchPayments(ctx, tx, end)
	if err != nil {
		return model.PeriodData{}, err
	}
	data.Dues, err = fetchDues(ctx, tx, end)
	if err != nil {
		return model.PeriodData{}, err
	}
	data.Expenses, err = fetchExpenses(ctx, tx, end)
	if err != nil {
		return model.PeriodData{}, err
	}
	data.Donations, err = fetchDonations(ctx, tx, end)
	if err != nil {
		return model.PeriodData{}, err
	}
	data.Members, err = fetchMembers(ctx, tx)
	if err != nil {
		return model.PeriodData{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.PeriodData{}, fmt.Errorf("commit snapshot tx: %w", err)
	}
	return data, nil
}

func fetchLoans(ctx context.Context, tx pgx.Tx) ([]model.Loan, error) {
	rows, err := tx.Query(ctx, selectLoanColumns+` ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query snapshot loans: %w", err)
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

func fetchPayments(ctx context.Context, tx pgx.Tx, end time.Time) ([]model.LoanPayment, error) {
	rows, err := tx.Query(ctx,
		selectPaymentColumns+` WHERE payment_date < $1 ORDER BY payment_date, id`, end)
	if err != nil {
		return nil, fmt.Errorf("query snapshot payments: %w", err)
	}
	defer rows.Close()

	var payments []model.LoanPayment
	for rows.Next() {
		payment, err := scanPaymentRow(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

func fetchDues(ctx context.Context, tx pgx.Tx, end time.Time) ([]model.Due, error) {
	rows, err := tx.Query(ctx,
		selectDueColumns+` WHERE make_date(year, month, 1) < $1 ORDER BY year, month, member_id`, end)
	if err != nil {
		return nil, fmt.Errorf("query snapshot dues: %w", err)
	}
	defer rows.Close()
	return collectDues(rows)
}

func fetchExpenses(ctx context.Context, tx pgx.Tx, end time.Time) ([]model.Expense, error) {
	rows, err := tx.Query(ctx,
		selectExpenseColumns+` WHERE status = $1 AND expense_date < $2 ORDER BY expense_date, id`,
		valueobject.ExpenseStatusApproved.String(), end)
	if err != nil {
		return nil, fmt.Errorf("query snapshot expenses: %w", err)
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		expense, err := scanExpenseRow(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func fetchDonations(ctx context.Context, tx pgx.Tx, end time.Time) ([]model.Donation, error) {
	rows, err := tx.Query(ctx,
		selectDonationColumns+` WHERE donation_date < $1 ORDER BY donation_date, id`, end)
	if err != nil {
		return nil, fmt.Errorf("query snapshot donations: %w", err)
	}
	defer rows.Close()

	var donations []model.Donation
	for rows.Next() {
		donation, err := scanDonationRow(rows)
		if err != nil {
			return nil, err
		}
		donations = append(donations, donation)
	}
	return donations, rows.Err()
}

func fetchMembers(ctx context.Context, tx pgx.Tx) ([]model.Member, error) {
	rows, err := tx.Query(ctx, selectMemberColumns+` ORDER BY member_code`)
	if err != nil {
		return nil, fmt.Errorf("query snapshot members: %w", err)
	}
	defer rows.Close()

	var members []model.Member
	for rows.Next() {
		member, err := scanMemberRow(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}
