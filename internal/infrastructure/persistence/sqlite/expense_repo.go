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

var _ port.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implements port.ExpenseRepository on SQLite.
type ExpenseRepo struct {
	db *sql.DB
}

// NewExpenseRepo creates a new SQLite-backed expense repository.
func NewExpenseRepo(db *sql.DB) *ExpenseRepo {
	return &ExpenseRepo{db: db}
}

// Insert adds an expense row.
func (r *ExpenseRepo) Insert(ctx context.Context, expense model.Expense) error {
	query := `
		INSERT INTO expenses (id, category, amount, expense_date, status)
		VALUES (?,?,?,?,?)
	`
	_, err := r.db.ExecContext(ctx, query,
		expense.ID(), expense.Category(), expense.Amount().Decimal(),
		expense.ExpenseDate(), expense.Status().String(),
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// Update persists a status transition.
func (r *ExpenseRepo) Update(ctx context.Context, expense model.Expense) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET status = ? WHERE id = ?`,
		expense.Status().String(), expense.ID(),
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	if affected == 0 {
		return port.ErrExpenseNotFound
	}
	return nil
}

// FindByID retrieves an expense by ID.
func (r *ExpenseRepo) FindByID(ctx context.Context, id uuid.UUID) (model.Expense, error) {
	row := r.db.QueryRowContext(ctx, selectExpenseColumns+` WHERE id = ?`, id)
	expense, err := scanExpenseRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Expense{}, port.ErrExpenseNotFound
	}
	return expense, err
}

// ListApproved returns approved expenses dated inside [from, to).
func (r *ExpenseRepo) ListApproved(ctx context.Context, from, to time.Time) ([]model.Expense, error) {
	query := selectExpenseColumns + `
		WHERE status = ? AND expense_date >= ? AND expense_date < ?
		ORDER BY expense_date, id`
	rows, err := r.db.QueryContext(ctx, query,
		valueobject.ExpenseStatusApproved.String(), from, to)
	if err != nil {
		return nil, fmt.Errorf("query approved expenses: %w", err)
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

const selectExpenseColumns = `
	SELECT id, category, amount, expense_date, status
	FROM expenses`

func scanExpenseRow(s scannable) (model.Expense, error) {
	var (
		id          uuid.UUID
		category    string
		amount      decimal.Decimal
		expenseDate time.Time
		statusStr   string
	)

	err := s.Scan(&id, &category, &amount, &expenseDate, &statusStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Expense{}, err
		}
		return model.Expense{}, fmt.Errorf("scan expense: %w", err)
	}

	status, err := valueobject.NewExpenseStatus(statusStr)
	if err != nil {
		return model.Expense{}, fmt.Errorf("parse expense status: %w", err)
	}

	return model.ReconstructExpense(
		id, category, money.FromDecimal(amount), expenseDate, status,
	), nil
}
