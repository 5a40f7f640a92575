package port

import (
	"errors"
	"fmt"
)

var (
	// ErrLoanNotFound is returned when a loan does not exist.
	ErrLoanNotFound = errors.New("loan not found")
	// ErrPaymentNotFound is returned when a payment does not exist.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrMemberNotFound is returned when a member does not exist.
	ErrMemberNotFound = errors.New("member not found")
	// ErrExpenseNotFound is returned when an expense does not exist.
	ErrExpenseNotFound = errors.New("expense not found")
	// ErrPeriodClosed is returned when a write is dated inside a closed
	// fiscal period.
	ErrPeriodClosed = errors.New("fiscal period is closed")
	// ErrVersionConflict is returned when an optimistic version check fails
	// on save.
	ErrVersionConflict = errors.New("loan version conflict")
)

// ConstraintViolationError reports a store uniqueness constraint rejection,
// distinguishable from other persistence failures.
type ConstraintViolationError struct {
	Constraint string
}

func (e ConstraintViolationError) Error() string {
	return fmt.Sprintf("constraint violation: %s", e.Constraint)
}
