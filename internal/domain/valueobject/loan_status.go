package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// LoanStatus – immutable value object
// ---------------------------------------------------------------------------

// LoanStatus represents the lifecycle stage of a loan. The raw values are
// stored as-is, so they match the ledger export format used by the
// cooperative's bookkeeping.
type LoanStatus struct {
	value string
}

const (
	loanStatusPending  = "pending"
	loanStatusActive   = "active"
	loanStatusPaidOff  = "paid_off"
	loanStatusRejected = "rejected"
)

var (
	LoanStatusPending  = LoanStatus{value: loanStatusPending}
	LoanStatusActive   = LoanStatus{value: loanStatusActive}
	LoanStatusPaidOff  = LoanStatus{value: loanStatusPaidOff}
	LoanStatusRejected = LoanStatus{value: loanStatusRejected}
)

var validLoanStatuses = map[string]LoanStatus{
	loanStatusPending:  LoanStatusPending,
	loanStatusActive:   LoanStatusActive,
	loanStatusPaidOff:  LoanStatusPaidOff,
	loanStatusRejected: LoanStatusRejected,
}

// NewLoanStatus creates a LoanStatus from a raw string.
func NewLoanStatus(s string) (LoanStatus, error) {
	v, ok := validLoanStatuses[s]
	if !ok {
		return LoanStatus{}, fmt.Errorf("invalid loan status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s LoanStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s LoanStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s LoanStatus) Equal(other LoanStatus) bool { return s.value == other.value }

// IsTerminal reports whether no further transitions are allowed out of the
// status. paid_off is terminal for the ledger even though the balance can be
// reopened by reversing a payment; that path goes through ReversePayment
// only.
func (s LoanStatus) IsTerminal() bool {
	return s.value == loanStatusRejected
}

// ---------------------------------------------------------------------------
// PaymentStatus – immutable value object
// ---------------------------------------------------------------------------

// PaymentStatus records whether an installment was paid by its scheduled due
// date.
type PaymentStatus struct {
	value string
}

const (
	paymentStatusOnTime = "on_time"
	paymentStatusLate   = "late"
)

var (
	PaymentStatusOnTime = PaymentStatus{value: paymentStatusOnTime}
	PaymentStatusLate   = PaymentStatus{value: paymentStatusLate}
)

var validPaymentStatuses = map[string]PaymentStatus{
	paymentStatusOnTime: PaymentStatusOnTime,
	paymentStatusLate:   PaymentStatusLate,
}

// NewPaymentStatus creates a PaymentStatus from a raw string.
func NewPaymentStatus(s string) (PaymentStatus, error) {
	v, ok := validPaymentStatuses[s]
	if !ok {
		return PaymentStatus{}, fmt.Errorf("invalid payment status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s PaymentStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s PaymentStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s PaymentStatus) Equal(other PaymentStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
