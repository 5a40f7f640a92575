package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kspdigital/koperasi-core/pkg/money"
)

// InvalidLoanTermsError reports a loan parameter outside the lending rules.
type InvalidLoanTermsError struct {
	Field string
	Value string
}

func (e InvalidLoanTermsError) Error() string {
	return fmt.Sprintf("invalid loan terms: %s=%s", e.Field, e.Value)
}

// DuplicateInstallmentError reports an attempt to pay an installment number
// that already has a payment on the loan.
type DuplicateInstallmentError struct {
	LoanID      uuid.UUID
	Installment int
}

func (e DuplicateInstallmentError) Error() string {
	return fmt.Sprintf("installment %d already paid on loan %s", e.Installment, e.LoanID)
}

// OverpaymentError reports a principal portion exceeding the outstanding
// balance of the loan.
type OverpaymentError struct {
	LoanID      uuid.UUID
	Attempted   money.Money
	Outstanding money.Money
}

func (e OverpaymentError) Error() string {
	return fmt.Sprintf("payment of %s exceeds outstanding balance %s on loan %s",
		e.Attempted, e.Outstanding, e.LoanID)
}

// BalanceMismatchError reports a balance sheet whose assets do not equal
// liabilities plus equity. The statement that produced it is still returned
// to the caller for inspection.
type BalanceMismatchError struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	Delta       money.Money
}

func (e BalanceMismatchError) Error() string {
	return fmt.Sprintf("balance sheet mismatch for %s..%s: assets differ from liabilities plus equity by %s",
		e.PeriodStart.Format("2006-01-02"), e.PeriodEnd.Format("2006-01-02"), e.Delta)
}
