package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

// ---------------------------------------------------------------------------
// Loan Ledger Domain Service
// ---------------------------------------------------------------------------

// PaymentInput describes one installment payment to apply.
type PaymentInput struct {
	InstallmentNumber int
	Principal         money.Money
	// Interest overrides the bookkeeping interest; when nil the ledger books
	// the per-installment figure against the current outstanding balance.
	Interest    *money.Money
	PaymentDate time.Time
	// Payoff marks a pelunasan: the principal portion is capped at the
	// outstanding balance instead of failing as an overpayment.
	Payoff bool
}

// ScheduleEntry is one expected installment of a loan's repayment plan.
type ScheduleEntry struct {
	InstallmentNumber int
	ExpectedPrincipal money.Money
	ExpectedDueDate   time.Time
}

// LedgerService applies and reverses installment payments. The outstanding
// balance is never adjusted in place: every mutation recomputes it from the
// full payment history, so a reversal in the middle of the history leaves
// the balance exactly consistent with the remaining rows.
type LedgerService struct {
	calc *AmortizationCalculator
}

// NewLedgerService creates a ledger service.
func NewLedgerService(calc *AmortizationCalculator) *LedgerService {
	return &LedgerService{calc: calc}
}

// ApplyPayment validates a payment against the loan and its full payment
// history, then returns the updated loan copy and the new payment row.
// Nothing is applied partially: any validation failure leaves both inputs
// untouched.
func (s *LedgerService) ApplyPayment(
	loan model.Loan,
	history []model.LoanPayment,
	in PaymentInput,
	now time.Time,
) (model.Loan, model.LoanPayment, error) {
	if !loan.Status().Equal(valueobject.LoanStatusActive) {
		return loan, model.LoanPayment{}, valueobject.ErrInvalidStatusTransition
	}
	if in.InstallmentNumber < 1 || in.InstallmentNumber > loan.TenorMonths() {
		return loan, model.LoanPayment{}, fmt.Errorf(
			"installment number %d outside 1..%d", in.InstallmentNumber, loan.TenorMonths())
	}
	if in.Principal.IsNegative() {
		return loan, model.LoanPayment{}, fmt.Errorf("principal portion cannot be negative")
	}

	for _, p := range history {
		if p.InstallmentNumber() == in.InstallmentNumber {
			return loan, model.LoanPayment{}, model.DuplicateInstallmentError{
				LoanID:      loan.ID(),
				Installment: in.InstallmentNumber,
			}
		}
	}

	outstanding := OutstandingFrom(loan, history)

	principal := in.Principal
	if principal.GreaterThan(outstanding) {
		if !in.Payoff {
			return loan, model.LoanPayment{}, model.OverpaymentError{
				LoanID:      loan.ID(),
				Attempted:   principal,
				Outstanding: outstanding,
			}
		}
		principal = outstanding
	}

	var interest money.Money
	if in.Interest != nil {
		interest = *in.Interest
	} else {
		var err error
		interest, err = s.calc.InstallmentInterest(outstanding, loan.AnnualRatePercent())
		if err != nil {
			return loan, model.LoanPayment{}, fmt.Errorf("compute installment interest: %w", err)
		}
	}

	status := valueobject.PaymentStatusOnTime
	if in.PaymentDate.After(loan.InstallmentDueDate(in.InstallmentNumber)) {
		status = valueobject.PaymentStatusLate
	}

	payment, err := model.NewLoanPayment(
		loan.ID(), in.InstallmentNumber,
		principal, interest,
		in.PaymentDate, status,
	)
	if err != nil {
		return loan, model.LoanPayment{}, err
	}

	recomputed := OutstandingFrom(loan, append(append([]model.LoanPayment{}, history...), payment))

	updated, err := loan.RecordPayment(payment, recomputed, now)
	if err != nil {
		return loan, model.LoanPayment{}, err
	}

	return updated, payment, nil
}

// ReversePayment removes one payment row and recomputes the balance from the
// remaining history. Reversing a payment that zeroed the balance returns the
// loan to active.
func (s *LedgerService) ReversePayment(
	loan model.Loan,
	history []model.LoanPayment,
	paymentID uuid.UUID,
	now time.Time,
) (model.Loan, model.LoanPayment, error) {
	idx := -1
	for i, p := range history {
		if p.ID() == paymentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return loan, model.LoanPayment{}, port.ErrPaymentNotFound
	}

	reversed := history[idx]
	remaining := make([]model.LoanPayment, 0, len(history)-1)
	remaining = append(remaining, history[:idx]...)
	remaining = append(remaining, history[idx+1:]...)

	recomputed := OutstandingFrom(loan, remaining)

	updated, err := loan.RemovePayment(reversed, recomputed, now)
	if err != nil {
		return loan, model.LoanPayment{}, err
	}

	return updated, reversed, nil
}

// ScheduleFor returns the expected repayment plan of an approved loan. Each
// installment carries round(principal/tenor) except the last, which absorbs
// the rounding remainder so the expected principals sum exactly to the
// principal.
func (s *LedgerService) ScheduleFor(loan model.Loan) ([]ScheduleEntry, error) {
	if !loan.Status().Equal(valueobject.LoanStatusActive) && !loan.Status().Equal(valueobject.LoanStatusPaidOff) {
		return nil, fmt.Errorf("loan %s has no repayment schedule before approval", loan.ID())
	}

	tenor := loan.TenorMonths()
	base := loan.Principal().Div(int64(tenor))

	entries := make([]ScheduleEntry, 0, tenor)
	accumulated := money.Zero()
	for n := 1; n <= tenor; n++ {
		principal := base
		if n == tenor {
			principal = loan.Principal().Sub(accumulated)
		}
		accumulated = accumulated.Add(principal)

		entries = append(entries, ScheduleEntry{
			InstallmentNumber: n,
			ExpectedPrincipal: principal,
			ExpectedDueDate:   loan.InstallmentDueDate(n),
		})
	}

	return entries, nil
}

// OutstandingFrom recomputes the outstanding balance from the full payment
// history: principal minus every principal portion, floored at zero.
func OutstandingFrom(loan model.Loan, history []model.LoanPayment) money.Money {
	paid := money.Zero()
	for _, p := range history {
		paid = paid.Add(p.PrincipalPortion())
	}
	return loan.Principal().Sub(paid).CapZero()
}
