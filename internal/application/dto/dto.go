package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// ComputeAmortizationRequest carries terms to price without touching a loan.
type ComputeAmortizationRequest struct {
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TenorMonths       int             `json:"tenor_months"`
}

// RegisterLoanRequest carries the data for a new loan application.
type RegisterLoanRequest struct {
	MemberID          string          `json:"member_id"`
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TenorMonths       int             `json:"tenor_months"`
}

// ApproveLoanRequest activates a pending loan as of the origination date.
type ApproveLoanRequest struct {
	LoanID          string    `json:"loan_id"`
	OriginationDate time.Time `json:"origination_date"`
}

// RejectLoanRequest turns down a pending loan.
type RejectLoanRequest struct {
	LoanID string `json:"loan_id"`
	Reason string `json:"reason"`
}

// GetLoanRequest identifies a loan to retrieve.
type GetLoanRequest struct {
	LoanID string `json:"loan_id"`
}

// RecordPaymentRequest carries one installment payment. Principal is the
// principal portion in whole rupiah; Interest overrides the bookkeeping
// interest when set. Payoff caps the principal at the outstanding balance.
type RecordPaymentRequest struct {
	LoanID            string           `json:"loan_id"`
	InstallmentNumber int              `json:"installment_number"`
	Principal         decimal.Decimal  `json:"principal"`
	Interest          *decimal.Decimal `json:"interest,omitempty"`
	PaymentDate       time.Time        `json:"payment_date"`
	Payoff            bool             `json:"payoff"`
}

// ReversePaymentRequest removes a mistaken payment row from a loan.
type ReversePaymentRequest struct {
	LoanID    string `json:"loan_id"`
	PaymentID string `json:"payment_id"`
}

// GetLoanScheduleRequest identifies a loan whose repayment plan to compute.
type GetLoanScheduleRequest struct {
	LoanID string `json:"loan_id"`
}

// DuesTotalsRequest sums dues over [from, to] fiscal months, for one member
// or, with MemberID empty, the whole cooperative.
type DuesTotalsRequest struct {
	MemberID  string `json:"member_id,omitempty"`
	FromYear  int    `json:"from_year"`
	FromMonth int    `json:"from_month"`
	ToYear    int    `json:"to_year"`
	ToMonth   int    `json:"to_month"`
}

// ReconcilePeriodRequest bounds a reconciliation half-open on [start, end).
type ReconcilePeriodRequest struct {
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
}

// RecordDueRequest books one member's savings contribution for a fiscal month.
type RecordDueRequest struct {
	MemberID        string          `json:"member_id"`
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	MandatoryAmount decimal.Decimal `json:"mandatory_amount"`
	VoluntaryAmount decimal.Decimal `json:"voluntary_amount"`
}

// RecordExpenseRequest books an outgoing cash entry pending approval.
type RecordExpenseRequest struct {
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate time.Time       `json:"expense_date"`
}

// ApproveExpenseRequest settles a pending expense: approved when Approve is
// true, rejected otherwise.
type ApproveExpenseRequest struct {
	ExpenseID string `json:"expense_id"`
	Approve   bool   `json:"approve"`
}

// RecordDonationRequest books an incoming gift.
type RecordDonationRequest struct {
	Donor        string          `json:"donor"`
	Amount       decimal.Decimal `json:"amount"`
	DonationDate time.Time       `json:"donation_date"`
}

// ClosePeriodRequest marks a fiscal month closed for entry.
type ClosePeriodRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// AmortizationResponse is the priced repayment terms of a flat-rate loan.
type AmortizationResponse struct {
	Principal          decimal.Decimal `json:"principal"`
	AnnualRatePercent  decimal.Decimal `json:"annual_rate_percent"`
	TenorMonths        int             `json:"tenor_months"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
	InterestTotal      decimal.Decimal `json:"interest_total"`
	TotalWithInterest  decimal.Decimal `json:"total_with_interest"`
}

// LoanResponse is the external representation of a loan.
type LoanResponse struct {
	ID                 string          `json:"id"`
	MemberID           string          `json:"member_id"`
	Principal          decimal.Decimal `json:"principal"`
	AnnualRatePercent  decimal.Decimal `json:"annual_rate_percent"`
	TenorMonths        int             `json:"tenor_months"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
	TotalWithInterest  decimal.Decimal `json:"total_with_interest"`
	OriginationDate    time.Time       `json:"origination_date,omitempty"`
	Status             string          `json:"status"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// PaymentResponse is the external representation of a payment row.
type PaymentResponse struct {
	ID                string          `json:"id"`
	LoanID            string          `json:"loan_id"`
	InstallmentNumber int             `json:"installment_number"`
	Principal         decimal.Decimal `json:"principal"`
	Interest          decimal.Decimal `json:"interest"`
	Total             decimal.Decimal `json:"total"`
	PaymentDate       time.Time       `json:"payment_date"`
	Status            string          `json:"status"`
}

// RecordPaymentResponse carries the updated loan together with the new row.
type RecordPaymentResponse struct {
	Loan    LoanResponse    `json:"loan"`
	Payment PaymentResponse `json:"payment"`
}

// ScheduleEntryResponse is one expected installment of a repayment plan.
type ScheduleEntryResponse struct {
	InstallmentNumber int             `json:"installment_number"`
	ExpectedPrincipal decimal.Decimal `json:"expected_principal"`
	ExpectedDueDate   time.Time       `json:"expected_due_date"`
}

// ScheduleResponse is the full repayment plan of a loan.
type ScheduleResponse struct {
	LoanID  string                  `json:"loan_id"`
	Entries []ScheduleEntryResponse `json:"entries"`
}

// DuesTotalsResponse is the summed contribution split for a period range.
type DuesTotalsResponse struct {
	MemberID  string          `json:"member_id,omitempty"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Mandatory decimal.Decimal `json:"mandatory"`
	Voluntary decimal.Decimal `json:"voluntary"`
	Total     decimal.Decimal `json:"total"`
}

// StatementLineResponse is one category row of a statement breakdown.
type StatementLineResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// BalanceSheetResponse is the position as of the period end.
type BalanceSheetResponse struct {
	CashAndBank         decimal.Decimal `json:"cash_and_bank"`
	LoanReceivables     decimal.Decimal `json:"loan_receivables"`
	TotalAssets         decimal.Decimal `json:"total_assets"`
	MandatorySavings    decimal.Decimal `json:"mandatory_savings"`
	VoluntarySavings    decimal.Decimal `json:"voluntary_savings"`
	TotalLiabilities    decimal.Decimal `json:"total_liabilities"`
	EquityMandatoryDues decimal.Decimal `json:"equity_mandatory_dues"`
	RetainedSurplus     decimal.Decimal `json:"retained_surplus"`
	TotalEquity         decimal.Decimal `json:"total_equity"`
}

// PeriodStatementResponse is the reconciled statement of one period.
// Balanced is false when the accounting identity failed; Delta then carries
// the signed gap.
type PeriodStatementResponse struct {
	PeriodStart      time.Time               `json:"period_start"`
	PeriodEnd        time.Time               `json:"period_end"`
	IncomeBreakdown  []StatementLineResponse `json:"income_breakdown"`
	ExpenseBreakdown []StatementLineResponse `json:"expense_breakdown"`
	TotalIncome      decimal.Decimal         `json:"total_income"`
	TotalExpenses    decimal.Decimal         `json:"total_expenses"`
	OpeningBalance   decimal.Decimal         `json:"opening_balance"`
	EndingBalance    decimal.Decimal         `json:"ending_balance"`
	BalanceSheet     BalanceSheetResponse    `json:"balance_sheet"`
	Balanced         bool                    `json:"balanced"`
	Delta            decimal.Decimal         `json:"delta"`
}

// DueResponse is the external representation of a dues entry.
type DueResponse struct {
	ID              string          `json:"id"`
	MemberID        string          `json:"member_id"`
	Period          string          `json:"period"`
	MandatoryAmount decimal.Decimal `json:"mandatory_amount"`
	VoluntaryAmount decimal.Decimal `json:"voluntary_amount"`
	Total           decimal.Decimal `json:"total"`
	RecordedAt      time.Time       `json:"recorded_at"`
}

// ExpenseResponse is the external representation of an expense entry.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate time.Time       `json:"expense_date"`
	Status      string          `json:"status"`
}

// DonationResponse is the external representation of a donation entry.
type DonationResponse struct {
	ID           string          `json:"id"`
	Donor        string          `json:"donor"`
	Amount       decimal.Decimal `json:"amount"`
	DonationDate time.Time       `json:"donation_date"`
}

// ClosePeriodResponse reports the closed fiscal month.
type ClosePeriodResponse struct {
	Period string `json:"period"`
	Closed bool   `json:"closed"`
}
