package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

var _ port.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implements port.PaymentRepository on PostgreSQL. Payment rows
// are inserted and deleted, never updated; a reversal removes the row.
type PaymentRepo struct {
	pool *pgxpool.Pool
}

// NewPaymentRepo creates a new PostgreSQL-backed payment repository.
func NewPaymentRepo(pool *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// Insert adds a payment row. The unique index on (loan_id,
// installment_number) turns a duplicate installment into a
// ConstraintViolationError.
func (r *PaymentRepo) Insert(ctx context.Context, payment model.LoanPayment) error {
	query := `
		INSERT INTO loan_payments (
			id, loan_id, installment_number,
			principal_portion, interest_portion, payment_date, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`
	_, err := r.pool.Exec(ctx, query,
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
	tag, err := r.pool.Exec(ctx, `DELETE FROM loan_payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrPaymentNotFound
	}
	return nil
}

// FindByID retrieves a payment by ID.
func (r *PaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (model.LoanPayment, error) {
	row := r.pool.QueryRow(ctx, selectPaymentColumns+` WHERE id = $1`, id)
	payment, err := scanPaymentRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.LoanPayment{}, port.ErrPaymentNotFound
	}
	return payment, err
}

// ListByLoan returns a loan's payment history ordered by installment number.
func (r *PaymentRepo) ListByLoan(ctx context.Context, loanID uuid.UUID) ([]model.LoanPayment, error) {
	rows, err := r.pool.Query(ctx,
		selectPaymentColumns+` WHERE loan_id = $1 ORDER BY installment_number`,
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
		if errors.Is(err, pgx.ErrNoRows) {
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
