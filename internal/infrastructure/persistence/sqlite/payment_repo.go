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

var _ port.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implements port.PaymentRepository on SQLite. Payment rows are
// inserted and deleted, never updated; a reversal removes the row.
type PaymentRepo struct {
	db *sql.DB
}

// NewPaymentRepo creates a new SQLite-backed payment repository.
func NewPaymentRepo(db *sql.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// Insert adds a payment row. The unique index on (loan_id,
// installment_number) turns a duplicate installment into a
// ConstraintViolationError.
func (r *PaymentRepo) Insert(ctx context.Context, payment model.LoanPayment) error {
	query := `
		INSERT INTO loan_payments (
			id, loan_id, installment_number,
			principal_portion, interest_portion, payment_date, status
		) VALUES (?,?,?,?,?,?,?)
	`
	_, err := r.db.ExecContext(ctx, query,
		payment.ID(), payment.LoanID(), payment.InstallmentNumber(),
		payment.PrincipalPortion().Decimal(), payment.InterestPortion().Decimal(),
		payment.PaymentDate(), payment.Status().String(),
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", mapConstraintViolation(err))
	}
	return nil
}

// Delete removes a payment row.
func (r *PaymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM loan_payments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if affected == 0 {
		return port.ErrPaymentNotFound
	}
	return nil
}

// FindByID retrieves a payment by ID.
func (r *PaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (model.LoanPayment, error) {
	row := r.db.QueryRowContext(ctx, selectPaymentColumns+` WHERE id = ?`, id)
	payment, err := scanPaymentRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.LoanPayment{}, port.ErrPaymentNotFound
	}
	return payment, err
}

// ListByLoan returns a loan's payment history ordered by installment number.
func (r *PaymentRepo) ListByLoan(ctx context.Context, loanID uuid.UUID) ([]model.LoanPayment, error) {
	rows, err := r.db.QueryContext(ctx,
		selectPaymentColumns+` WHERE loan_id = ? ORDER BY installment_number`,
		loanID,
	)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
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

const selectPaymentColumns = `
	SELECT id, loan_id, installment_number,
	       principal_portion, interest_portion, payment_date, status
	FROM loan_payments`

func scanPaymentRow(s scannable) (model.LoanPayment, error) {
	var (
		id, loanID                        uuid.UUID
		installmentNumber                 int
		principalPortion, interestPortion decimal.Decimal
		paymentDate                       time.Time
		statusStr                         string
	)

	err := s.Scan(
		&id, &loanID, &installmentNumber,
		&principalPortion, &interestPortion, &paymentDate, &statusStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.LoanPayment{}, err
		}
		return model.LoanPayment{}, fmt.Errorf("scan payment: %w", err)
	}

	status, err := valueobject.NewPaymentStatus(statusStr)
	if err != nil {
		return model.LoanPayment{}, fmt.Errorf("parse payment status: %w", err)
	}

	return model.ReconstructLoanPayment(
		id, loanID, installmentNumber,
		money.FromDecimal(principalPortion), money.FromDecimal(interestPortion),
		paymentDate, status,
	), nil
}
