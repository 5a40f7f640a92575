package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kspdigital/koperasi-core/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

const (
	AggregateTypeLoan         = "Loan"
	AggregateTypeDue          = "Due"
	AggregateTypeExpense      = "Expense"
	AggregateTypeDonation     = "Donation"
	AggregateTypeFiscalPeriod = "FiscalPeriod"
)

// ---------------------------------------------------------------------------
// Loan Events
// ---------------------------------------------------------------------------

// LoanRegistered is raised when a new loan application enters the book in
// pending status.
type LoanRegistered struct {
	events.BaseEvent
	MemberID          string          `json:"member_id"`
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TenorMonths       int             `json:"tenor_months"`
}

func NewLoanRegistered(
	loanID, memberID string,
	principal, annualRatePercent decimal.Decimal,
	tenorMonths int,
) LoanRegistered {
	return LoanRegistered{
		BaseEvent:         events.NewBaseEvent("koperasi.loan.registered", loanID, AggregateTypeLoan),
		MemberID:          memberID,
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		TenorMonths:       tenorMonths,
	}
}

// LoanApproved is raised when a pending loan is activated and its repayment
// terms are fixed.
type LoanApproved struct {
	events.BaseEvent
	MemberID           string          `json:"member_id"`
	Principal          decimal.Decimal `json:"principal"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
	TotalWithInterest  decimal.Decimal `json:"total_with_interest"`
	OriginationDate    time.Time       `json:"origination_date"`
}

func NewLoanApproved(
	loanID, memberID string,
	principal, monthlyInstallment, totalWithInterest decimal.Decimal,
	originationDate time.Time,
) LoanApproved {
	return LoanApproved{
		BaseEvent:          events.NewBaseEvent("koperasi.loan.approved", loanID, AggregateTypeLoan),
		MemberID:           memberID,
		Principal:          principal,
		MonthlyInstallment: monthlyInstallment,
		TotalWithInterest:  totalWithInterest,
		OriginationDate:    originationDate,
	}
}

// LoanRejected is raised when a pending loan is turned down.
type LoanRejected struct {
	events.BaseEvent
	MemberID string `json:"member_id"`
	Reason   string `json:"reason"`
}

func NewLoanRejected(loanID, memberID, reason string) LoanRejected {
	return LoanRejected{
		BaseEvent: events.NewBaseEvent("koperasi.loan.rejected", loanID, AggregateTypeLoan),
		MemberID:  memberID,
		Reason:    reason,
	}
}

// LoanPaidOff is raised when the recomputed outstanding balance reaches zero.
type LoanPaidOff struct {
	events.BaseEvent
	MemberID string `json:"member_id"`
}

func NewLoanPaidOff(loanID, memberID string) LoanPaidOff {
	return LoanPaidOff{
		BaseEvent: events.NewBaseEvent("koperasi.loan.paid_off", loanID, AggregateTypeLoan),
		MemberID:  memberID,
	}
}

// PaymentRecorded is raised when an installment payment is applied to a loan.
type PaymentRecorded struct {
	events.BaseEvent
	PaymentID          string          `json:"payment_id"`
	InstallmentNumber  int             `json:"installment_number"`
	PrincipalPortion   decimal.Decimal `json:"principal_portion"`
	InterestPortion    decimal.Decimal `json:"interest_portion"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	PaymentStatus      string          `json:"payment_status"`
}

func NewPaymentRecorded(
	loanID, paymentID string,
	installmentNumber int,
	principalPortion, interestPortion, outstandingBalance decimal.Decimal,
	paymentStatus string,
) PaymentRecorded {
	return PaymentRecorded{
		BaseEvent:          events.NewBaseEvent("koperasi.loan.payment_recorded", loanID, AggregateTypeLoan),
		PaymentID:          paymentID,
		InstallmentNumber:  installmentNumber,
		PrincipalPortion:   principalPortion,
		InterestPortion:    interestPortion,
		OutstandingBalance: outstandingBalance,
		PaymentStatus:      paymentStatus,
	}
}

// PaymentReversed is raised when a recorded payment is removed from the
// ledger and the balance is recomputed from the remaining history.
type PaymentReversed struct {
	events.BaseEvent
	PaymentID          string          `json:"payment_id"`
	InstallmentNumber  int             `json:"installment_number"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

func NewPaymentReversed(
	loanID, paymentID string,
	installmentNumber int,
	outstandingBalance decimal.Decimal,
) PaymentReversed {
	return PaymentReversed{
		BaseEvent:          events.NewBaseEvent("koperasi.loan.payment_reversed", loanID, AggregateTypeLoan),
		PaymentID:          paymentID,
		InstallmentNumber:  installmentNumber,
		OutstandingBalance: outstandingBalance,
	}
}

// ---------------------------------------------------------------------------
// Bookkeeping Events
// ---------------------------------------------------------------------------

// DueRecorded is raised when a member's monthly dues are entered.
type DueRecorded struct {
	events.BaseEvent
	MemberID        string          `json:"member_id"`
	Period          string          `json:"period"`
	MandatoryAmount decimal.Decimal `json:"mandatory_amount"`
	VoluntaryAmount decimal.Decimal `json:"voluntary_amount"`
}

func NewDueRecorded(
	dueID, memberID, period string,
	mandatoryAmount, voluntaryAmount decimal.Decimal,
) DueRecorded {
	return DueRecorded{
		BaseEvent:       events.NewBaseEvent("koperasi.due.recorded", dueID, AggregateTypeDue),
		MemberID:        memberID,
		Period:          period,
		MandatoryAmount: mandatoryAmount,
		VoluntaryAmount: voluntaryAmount,
	}
}

// ExpenseRecorded is raised when an expense is entered pending approval.
type ExpenseRecorded struct {
	events.BaseEvent
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

func NewExpenseRecorded(expenseID, category string, amount decimal.Decimal) ExpenseRecorded {
	return ExpenseRecorded{
		BaseEvent: events.NewBaseEvent("koperasi.expense.recorded", expenseID, AggregateTypeExpense),
		Category:  category,
		Amount:    amount,
	}
}

// ExpenseApproved is raised when an expense is authorized for the books.
type ExpenseApproved struct {
	events.BaseEvent
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

func NewExpenseApproved(expenseID, category string, amount decimal.Decimal) ExpenseApproved {
	return ExpenseApproved{
		BaseEvent: events.NewBaseEvent("koperasi.expense.approved", expenseID, AggregateTypeExpense),
		Category:  category,
		Amount:    amount,
	}
}

// DonationRecorded is raised when a donation line item is entered.
type DonationRecorded struct {
	events.BaseEvent
	Donor  string          `json:"donor"`
	Amount decimal.Decimal `json:"amount"`
}

func NewDonationRecorded(donationID, donor string, amount decimal.Decimal) DonationRecorded {
	return DonationRecorded{
		BaseEvent: events.NewBaseEvent("koperasi.donation.recorded", donationID, AggregateTypeDonation),
		Donor:     donor,
		Amount:    amount,
	}
}

// PeriodClosed is raised when a fiscal period is closed for entry
// ("tutup buku").
type PeriodClosed struct {
	events.BaseEvent
	Period string `json:"period"`
}

func NewPeriodClosed(period string) PeriodClosed {
	return PeriodClosed{
		BaseEvent: events.NewBaseEvent("koperasi.period.closed", period, AggregateTypeFiscalPeriod),
		Period:    period,
	}
}
