package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
	"github.com/kspdigital/koperasi-core/pkg/events"
)

// LoanRepository defines persistence operations for loans.
type LoanRepository interface {
	// Save persists a loan (insert or update). Updates carry an optimistic
	// version check and fail with ErrVersionConflict on a stale copy.
	Save(ctx context.Context, loan model.Loan) error
	// FindByID retrieves a loan by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (model.Loan, error)
	// ListActive returns all loans currently in active status.
	ListActive(ctx context.Context) ([]model.Loan, error)
}

// PaymentRepository defines persistence operations for installment payments.
// Rows are inserted and deleted, never updated.
type PaymentRepository interface {
	// Insert adds a payment row. A duplicate installment number for the loan
	// fails with ConstraintViolationError.
	Insert(ctx context.Context, payment model.LoanPayment) error
	// Delete removes a payment row.
	Delete(ctx context.Context, id uuid.UUID) error
	// FindByID retrieves a payment by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (model.LoanPayment, error)
	// ListByLoan returns the full payment history of a loan ordered by
	// installment number.
	ListByLoan(ctx context.Context, loanID uuid.UUID) ([]model.LoanPayment, error)
}

// DueRepository defines persistence operations for monthly dues.
type DueRepository interface {
	// Insert adds a dues row. A second row for the same member and period
	// fails with ConstraintViolationError.
	Insert(ctx context.Context, due model.Due) error
	// ListForRange returns dues whose fiscal period falls inside [from, to].
	ListForRange(ctx context.Context, from, to valueobject.FiscalPeriod) ([]model.Due, error)
	// ListForMemberRange returns one member's dues inside [from, to].
	ListForMemberRange(ctx context.Context, memberID uuid.UUID, from, to valueobject.FiscalPeriod) ([]model.Due, error)
}

// ExpenseRepository defines persistence operations for expenses.
type ExpenseRepository interface {
	// Insert adds an expense row.
	Insert(ctx context.Context, expense model.Expense) error
	// Update persists a status transition.
	Update(ctx context.Context, expense model.Expense) error
	// FindByID retrieves an expense by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (model.Expense, error)
	// ListApproved returns approved expenses dated inside [from, to).
	ListApproved(ctx context.Context, from, to time.Time) ([]model.Expense, error)
}

// DonationRepository defines persistence operations for donations.
type DonationRepository interface {
	// Insert adds a donation row.
	Insert(ctx context.Context, donation model.Donation) error
	// ListForRange returns donations dated inside [from, to).
	ListForRange(ctx context.Context, from, to time.Time) ([]model.Donation, error)
}

// MemberRepository defines read access to the member register, which is
// administered outside the engine.
type MemberRepository interface {
	// FindByID retrieves a member by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (model.Member, error)
	// List returns all members, active and inactive.
	List(ctx context.Context) ([]model.Member, error)
}

// FiscalPeriodRepository tracks which bookkeeping months are closed.
type FiscalPeriodRepository interface {
	// IsClosed reports whether the period has been closed for entry.
	IsClosed(ctx context.Context, period valueobject.FiscalPeriod) (bool, error)
	// Close marks the period closed. Closing an already-closed period is a
	// no-op.
	Close(ctx context.Context, period valueobject.FiscalPeriod) error
}

// ReconciliationRepository assembles the reconciliation snapshot in one
// consistent read, so a reconciliation running concurrently with payment
// writes still sees a stable book.
type ReconciliationRepository interface {
	// FetchPeriodData returns every book row dated before end, with loans
	// and members in their current state.
	FetchPeriodData(ctx context.Context, end time.Time) (model.PeriodData, error)
}

// StatementCache holds reconciled statements keyed by period. Every book
// write bumps the cache version, discarding statements computed against the
// older book. A cache failure is never fatal; callers fall back to
// recomputing.
type StatementCache interface {
	// Get returns the cached statement for the period, or nil on a miss.
	Get(ctx context.Context, start, end time.Time) (*model.PeriodStatement, error)
	// Put stores a statement at the current cache version.
	Put(ctx context.Context, statement model.PeriodStatement) error
	// Bump invalidates all cached statements.
	Bump(ctx context.Context) error
}

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, events ...events.DomainEvent) error
}
