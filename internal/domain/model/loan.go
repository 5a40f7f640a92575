package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kspdigital/koperasi-core/internal/domain/event"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

// ---------------------------------------------------------------------------
// Loan aggregate root
// ---------------------------------------------------------------------------

// Loan is an immutable aggregate. Mutations return a new copy.
//
// The outstanding balance is never adjusted incrementally: the ledger
// recomputes it from the full payment history and hands the result to
// RecordPayment / RemovePayment.
type Loan struct {
	id                 uuid.UUID
	memberID           uuid.UUID
	principal          money.Money
	annualRatePercent  decimal.Decimal
	tenorMonths        int
	monthlyInstallment money.Money
	totalWithInterest  money.Money
	originationDate    time.Time
	status             valueobject.LoanStatus
	outstandingBalance money.Money
	version            int
	createdAt          time.Time
	updatedAt          time.Time
	domainEvents       []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewLoan registers a loan application. The loan starts in pending status
// with no repayment terms; those are fixed on approval.
func NewLoan(
	memberID uuid.UUID,
	principal money.Money,
	annualRatePercent decimal.Decimal,
	tenorMonths int,
	now time.Time,
) (Loan, error) {
	if memberID == uuid.Nil {
		return Loan{}, errors.New("member ID is required")
	}
	if !principal.IsPositive() {
		return Loan{}, InvalidLoanTermsError{Field: "principal", Value: principal.String()}
	}
	if annualRatePercent.IsNegative() {
		return Loan{}, InvalidLoanTermsError{Field: "annual_rate_percent", Value: annualRatePercent.String()}
	}
	if tenorMonths < 1 {
		return Loan{}, InvalidLoanTermsError{Field: "tenor_months", Value: decimal.NewFromInt(int64(tenorMonths)).String()}
	}

	id := uuid.New()

	loan := Loan{
		id:                 id,
		memberID:           memberID,
		principal:          principal,
		annualRatePercent:  annualRatePercent,
		tenorMonths:        tenorMonths,
		monthlyInstallment: money.Zero(),
		totalWithInterest:  money.Zero(),
		status:             valueobject.LoanStatusPending,
		outstandingBalance: money.Zero(),
		version:            1,
		createdAt:          now,
		updatedAt:          now,
	}

	loan.domainEvents = append(loan.domainEvents, event.NewLoanRegistered(
		id.String(), memberID.String(),
		principal.Decimal(), annualRatePercent,
		tenorMonths,
	))

	return loan, nil
}

// ReconstructLoan rebuilds a Loan aggregate from persistence.
func ReconstructLoan(
	id, memberID uuid.UUID,
	principal money.Money,
	annualRatePercent decimal.Decimal,
	tenorMonths int,
	monthlyInstallment, totalWithInterest money.Money,
	originationDate time.Time,
	status valueobject.LoanStatus,
	outstandingBalance money.Money,
	version int,
	createdAt, updatedAt time.Time,
) Loan {
	return Loan{
		id:                 id,
		memberID:           memberID,
		principal:          principal,
		annualRatePercent:  annualRatePercent,
		tenorMonths:        tenorMonths,
		monthlyInstallment: monthlyInstallment,
		totalWithInterest:  totalWithInterest,
		originationDate:    originationDate,
		status:             status,
		outstandingBalance: outstandingBalance,
		version:            version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// Approve activates a pending loan. The repayment terms are computed once by
// the amortization calculator and never change afterwards; the outstanding
// balance opens at the full principal.
func (l Loan) Approve(
	monthlyInstallment, totalWithInterest money.Money,
	originationDate, now time.Time,
) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusPending) {
		return l, valueobject.ErrInvalidStatusTransition
	}
	if !monthlyInstallment.IsPositive() {
		return l, errors.New("monthly installment must be positive")
	}
	if totalWithInterest.LessThan(l.principal) {
		return l, errors.New("total with interest cannot be less than principal")
	}
	if originationDate.IsZero() {
		return l, errors.New("origination date is required")
	}

	next := l
	next.monthlyInstallment = monthlyInstallment
	next.totalWithInterest = totalWithInterest
	next.originationDate = originationDate
	next.status = valueobject.LoanStatusActive
	next.outstandingBalance = l.principal
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanApproved(
		l.id.String(), l.memberID.String(),
		l.principal.Decimal(), monthlyInstallment.Decimal(), totalWithInterest.Decimal(),
		originationDate,
	))

	return next, nil
}

// Reject turns down a pending loan. The transition is terminal.
func (l Loan) Reject(reason string, now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusPending) {
		return l, valueobject.ErrInvalidStatusTransition
	}
	if reason == "" {
		return l, errors.New("rejection reason is required")
	}

	next := l
	next.status = valueobject.LoanStatusRejected
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanRejected(
		l.id.String(), l.memberID.String(), reason,
	))

	return next, nil
}

// RecordPayment carries the balance recomputed by the ledger after applying
// a payment. A zero balance transitions the loan to paid_off.
func (l Loan) RecordPayment(payment LoanPayment, outstanding money.Money, now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusActive) {
		return l, valueobject.ErrInvalidStatusTransition
	}
	if outstanding.IsNegative() {
		return l, errors.New("outstanding balance cannot be negative")
	}

	next := l
	next.outstandingBalance = outstanding
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewPaymentRecorded(
		l.id.String(), payment.ID().String(),
		payment.InstallmentNumber(),
		payment.PrincipalPortion().Decimal(), payment.InterestPortion().Decimal(),
		outstanding.Decimal(),
		payment.Status().String(),
	))

	if outstanding.IsZero() {
		next.status = valueobject.LoanStatusPaidOff
		next.domainEvents = append(next.domainEvents, event.NewLoanPaidOff(
			l.id.String(), l.memberID.String(),
		))
	}

	return next, nil
}

// RemovePayment carries the balance recomputed by the ledger after a payment
// reversal. A paid_off loan whose balance becomes nonzero returns to active.
func (l Loan) RemovePayment(payment LoanPayment, outstanding money.Money, now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusActive) && !l.status.Equal(valueobject.LoanStatusPaidOff) {
		return l, valueobject.ErrInvalidStatusTransition
	}
	if outstanding.IsNegative() {
		return l, errors.New("outstanding balance cannot be negative")
	}

	next := l
	next.outstandingBalance = outstanding
	next.updatedAt = now
	if l.status.Equal(valueobject.LoanStatusPaidOff) && !outstanding.IsZero() {
		next.status = valueobject.LoanStatusActive
	}
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewPaymentReversed(
		l.id.String(), payment.ID().String(),
		payment.InstallmentNumber(),
		outstanding.Decimal(),
	))

	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Loan) ID() uuid.UUID                      { return l.id }
func (l Loan) MemberID() uuid.UUID                { return l.memberID }
func (l Loan) Principal() money.Money             { return l.principal }
func (l Loan) AnnualRatePercent() decimal.Decimal { return l.annualRatePercent }
func (l Loan) TenorMonths() int                   { return l.tenorMonths }
func (l Loan) MonthlyInstallment() money.Money    { return l.monthlyInstallment }
func (l Loan) TotalWithInterest() money.Money     { return l.totalWithInterest }
func (l Loan) OriginationDate() time.Time         { return l.originationDate }
func (l Loan) Status() valueobject.LoanStatus     { return l.status }
func (l Loan) OutstandingBalance() money.Money    { return l.outstandingBalance }
func (l Loan) Version() int                       { return l.version }
func (l Loan) CreatedAt() time.Time               { return l.createdAt }
func (l Loan) UpdatedAt() time.Time               { return l.updatedAt }
func (l Loan) DomainEvents() []event.DomainEvent  { return l.domainEvents }

// InstallmentDueDate returns the scheduled due date of the n-th installment,
// counted from the origination date.
func (l Loan) InstallmentDueDate(n int) time.Time {
	return l.originationDate.AddDate(0, n, 0)
}

// ClearEvents returns a copy with an empty event list.
func (l Loan) ClearEvents() Loan {
	next := l
	next.domainEvents = nil
	return next
}

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if src == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(src))
	copy(out, src)
	return out
}
