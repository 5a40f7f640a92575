package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

// CategoryLoanDisbursement is the reserved expense category that books
// principal hand-out when a loan is approved. Rows in it are created by the
// approval flow, never by manual entry, and are excluded from the operating
// surplus.
const CategoryLoanDisbursement = "loan_disbursement"

// ---------------------------------------------------------------------------
// Expense entity
// ---------------------------------------------------------------------------

// Expense is one outgoing cash entry. Only approved expenses participate in
// period reconciliation.
type Expense struct {
	id          uuid.UUID
	category    string
	amount      money.Money
	expenseDate time.Time
	status      valueobject.ExpenseStatus
}

// NewExpense creates a manually entered expense pending approval.
func NewExpense(category string, amount money.Money, expenseDate time.Time) (Expense, error) {
	if category == "" {
		return Expense{}, errors.New("expense category is required")
	}
	if category == CategoryLoanDisbursement {
		return Expense{}, fmt.Errorf("category %s is reserved for loan approval", CategoryLoanDisbursement)
	}
	if !amount.IsPositive() {
		return Expense{}, errors.New("expense amount must be positive")
	}
	if expenseDate.IsZero() {
		return Expense{}, errors.New("expense date is required")
	}

	return Expense{
		id:          uuid.New(),
		category:    category,
		amount:      amount,
		expenseDate: expenseDate,
		status:      valueobject.ExpenseStatusPending,
	}, nil
}

// NewLoanDisbursement books the principal hand-out of an approved loan. The
// row is created approved so the cash position moves together with the
// receivable.
func NewLoanDisbursement(amount money.Money, expenseDate time.Time) (Expense, error) {
	if !amount.IsPositive() {
		return Expense{}, errors.New("disbursement amount must be positive")
	}
	if expenseDate.IsZero() {
		return Expense{}, errors.New("expense date is required")
	}

	return Expense{
		id:          uuid.New(),
		category:    CategoryLoanDisbursement,
		amount:      amount,
		expenseDate: expenseDate,
		status:      valueobject.ExpenseStatusApproved,
	}, nil
}

// ReconstructExpense rebuilds an Expense from persistence.
func ReconstructExpense(
	id uuid.UUID,
	category string,
	amount money.Money,
	expenseDate time.Time,
	status valueobject.ExpenseStatus,
) Expense {
	return Expense{
		id:          id,
		category:    category,
		amount:      amount,
		expenseDate: expenseDate,
		status:      status,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// Approve authorizes a pending expense for the books.
func (e Expense) Approve() (Expense, error) {
	if !e.status.Equal(valueobject.ExpenseStatusPending) {
		return e, valueobject.ErrInvalidStatusTransition
	}
	next := e
	next.status = valueobject.ExpenseStatusApproved
	return next, nil
}

// Reject declines a pending expense.
func (e Expense) Reject() (Expense, error) {
	if !e.status.Equal(valueobject.ExpenseStatusPending) {
		return e, valueobject.ErrInvalidStatusTransition
	}
	next := e
	next.status = valueobject.ExpenseStatusRejected
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (e Expense) ID() uuid.UUID                     { return e.id }
func (e Expense) Category() string                  { return e.category }
func (e Expense) Amount() money.Money               { return e.amount }
func (e Expense) ExpenseDate() time.Time            { return e.expenseDate }
func (e Expense) Status() valueobject.ExpenseStatus { return e.status }

// IsOperating reports whether the expense reduces the operating surplus.
// Loan disbursements move cash into receivables instead.
func (e Expense) IsOperating() bool {
	return e.category != CategoryLoanDisbursement
}
