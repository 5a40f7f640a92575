package grpc

// Proto-aligned request/response message types. Amounts travel as decimal
// strings in whole rupiah; dates and timestamps as RFC 3339 strings.

// ComputeAmortizationRequest represents the proto ComputeAmortizationRequest message.
type ComputeAmortizationRequest struct {
	Principal         string `json:"principal"`
	AnnualRatePercent string `json:"annual_rate_percent"`
	TenorMonths       int    `json:"tenor_months"`
}

// ComputeAmortizationResponse represents the proto ComputeAmortizationResponse message.
type ComputeAmortizationResponse struct {
	Terms *AmortizationMsg `json:"terms"`
}

// AmortizationMsg represents the proto Amortization message.
type AmortizationMsg struct {
	Principal          string `json:"principal"`
	AnnualRatePercent  string `json:"annual_rate_percent"`
	TenorMonths        int    `json:"tenor_months"`
	MonthlyInstallment string `json:"monthly_installment"`
	InterestTotal      string `json:"interest_total"`
	TotalWithInterest  string `json:"total_with_interest"`
}

// RegisterLoanRequest represents the proto RegisterLoanRequest message.
type RegisterLoanRequest struct {
	MemberID          string `json:"member_id"`
	Principal         string `json:"principal"`
	AnnualRatePercent string `json:"annual_rate_percent"`
	TenorMonths       int    `json:"tenor_months"`
}

// RegisterLoanResponse represents the proto RegisterLoanResponse message.
type RegisterLoanResponse struct {
	Loan *LoanMsg `json:"loan"`
}

// ApproveLoanRequest represents the proto ApproveLoanRequest message.
type ApproveLoanRequest struct {
	LoanID          string `json:"loan_id"`
	OriginationDate string `json:"origination_date"`
}

// ApproveLoanResponse represents the proto ApproveLoanResponse message.
type ApproveLoanResponse struct {
	Loan *LoanMsg `json:"loan"`
}

// RejectLoanRequest represents the proto RejectLoanRequest message.
type RejectLoanRequest struct {
	LoanID string `json:"loan_id"`
	Reason string `json:"reason"`
}

// RejectLoanResponse represents the proto RejectLoanResponse message.
type RejectLoanResponse struct {
	Loan *LoanMsg `json:"loan"`
}

// GetLoanRequest represents the proto GetLoanRequest message.
type GetLoanRequest struct {
	ID string `json:"id"`
}

// GetLoanResponse represents the proto GetLoanResponse message.
type GetLoanResponse struct {
	Loan *LoanMsg `json:"loan"`
}

// GetLoanScheduleRequest represents the proto GetLoanScheduleRequest message.
type GetLoanScheduleRequest struct {
	LoanID string `json:"loan_id"`
}

// GetLoanScheduleResponse represents the proto GetLoanScheduleResponse message.
type GetLoanScheduleResponse struct {
	LoanID  string              `json:"loan_id"`
	Entries []*ScheduleEntryMsg `json:"entries"`
}

// ScheduleEntryMsg represents the proto ScheduleEntry message.
type ScheduleEntryMsg struct {
	InstallmentNumber int    `json:"installment_number"`
	ExpectedPrincipal string `json:"expected_principal"`
	ExpectedDueDate   string `json:"expected_due_date"`
}

// RecordPaymentRequest represents the proto RecordPaymentRequest message.
// Interest overrides the bookkeeping interest portion when set; Payoff caps
// the principal at the outstanding balance.
type RecordPaymentRequest struct {
	LoanID            string  `json:"loan_id"`
	InstallmentNumber int     `json:"installment_number"`
	Principal         string  `json:"principal"`
	Interest          *string `json:"interest,omitempty"`
	PaymentDate       string  `json:"payment_date"`
	Payoff            bool    `json:"payoff"`
}

// RecordPaymentResponse represents the proto RecordPaymentResponse message.
type RecordPaymentResponse struct {
	Loan    *LoanMsg    `json:"loan"`
	Payment *PaymentMsg `json:"payment"`
}

// ReversePaymentRequest represents the proto ReversePaymentRequest message.
type ReversePaymentRequest struct {
	LoanID    string `json:"loan_id"`
	PaymentID string `json:"payment_id"`
}

// ReversePaymentResponse represents the proto ReversePaymentResponse message.
type ReversePaymentResponse struct {
	Loan *LoanMsg `json:"loan"`
}

// RecordDueRequest represents the proto RecordDueRequest message.
type RecordDueRequest struct {
	MemberID        string `json:"member_id"`
	Year            int    `json:"year"`
	Month           int    `json:"month"`
	MandatoryAmount string `json:"mandatory_amount"`
	VoluntaryAmount string `json:"voluntary_amount"`
}

// RecordDueResponse represents the proto RecordDueResponse message.
type RecordDueResponse struct {
	Due *DueMsg `json:"due"`
}

// DuesTotalsRequest represents the proto DuesTotalsRequest message. An empty
// member_id sums over the whole cooperative.
type DuesTotalsRequest struct {
	MemberID  string `json:"member_id"`
	FromYear  int    `json:"from_year"`
	FromMonth int    `json:"from_month"`
	ToYear    int    `json:"to_year"`
	ToMonth   int    `json:"to_month"`
}

// DuesTotalsResponse represents the proto DuesTotalsResponse message.
type DuesTotalsResponse struct {
	MemberID  string `json:"member_id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Mandatory string `json:"mandatory"`
	Voluntary string `json:"voluntary"`
	Total     string `json:"total"`
}

// RecordExpenseRequest represents the proto RecordExpenseRequest message.
type RecordExpenseRequest struct {
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	ExpenseDate string `json:"expense_date"`
}

// RecordExpenseResponse represents the proto RecordExpenseResponse message.
type RecordExpenseResponse struct {
	Expense *ExpenseMsg `json:"expense"`
}

// ApproveExpenseRequest represents the proto ApproveExpenseRequest message.
type ApproveExpenseRequest struct {
	ExpenseID string `json:"expense_id"`
	Approve   bool   `json:"approve"`
}

// ApproveExpenseResponse represents the proto ApproveExpenseResponse message.
type ApproveExpenseResponse struct {
	Expense *ExpenseMsg `json:"expense"`
}

// RecordDonationRequest represents the proto RecordDonationRequest message.
type RecordDonationRequest struct {
	Donor        string `json:"donor"`
	Amount       string `json:"amount"`
	DonationDate string `json:"donation_date"`
}

// RecordDonationResponse represents the proto RecordDonationResponse message.
type RecordDonationResponse struct {
	Donation *DonationMsg `json:"donation"`
}

// ReconcilePeriodRequest represents the proto ReconcilePeriodRequest message.
// The period is half-open on [period_start, period_end).
type ReconcilePeriodRequest struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

// ReconcilePeriodResponse represents the proto ReconcilePeriodResponse message.
type ReconcilePeriodResponse struct {
	Statement *StatementMsg `json:"statement"`
}

// ClosePeriodRequest represents the proto ClosePeriodRequest message.
type ClosePeriodRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// ClosePeriodResponse represents the proto ClosePeriodResponse message.
type ClosePeriodResponse struct {
	Period string `json:"period"`
	Closed bool   `json:"closed"`
}

// LoanMsg represents the proto Loan message.
type LoanMsg struct {
	ID                 string `json:"id"`
	MemberID           string `json:"member_id"`
	Principal          string `json:"principal"`
	AnnualRatePercent  string `json:"annual_rate_percent"`
	TenorMonths        int    `json:"tenor_months"`
	MonthlyInstallment string `json:"monthly_installment"`
	TotalWithInterest  string `json:"total_with_interest"`
	OriginationDate    string `json:"origination_date,omitempty"`
	Status             string `json:"status"`
	OutstandingBalance string `json:"outstanding_balance"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

// PaymentMsg represents the proto Payment message.
type PaymentMsg struct {
	ID                string `json:"id"`
	LoanID            string `json:"loan_id"`
	InstallmentNumber int    `json:"installment_number"`
	Principal         string `json:"principal"`
	Interest          string `json:"interest"`
	Total             string `json:"total"`
	PaymentDate       string `json:"payment_date"`
	Status            string `json:"status"`
}

// DueMsg represents the proto Due message.
type DueMsg struct {
	ID              string `json:"id"`
	MemberID        string `json:"member_id"`
	Period          string `json:"period"`
	MandatoryAmount string `json:"mandatory_amount"`
	VoluntaryAmount string `json:"voluntary_amount"`
	Total           string `json:"total"`
	RecordedAt      string `json:"recorded_at"`
}

// ExpenseMsg represents the proto Expense message.
type ExpenseMsg struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	ExpenseDate string `json:"expense_date"`
	Status      string `json:"status"`
}

// DonationMsg represents the proto Donation message.
type DonationMsg struct {
	ID           string `json:"id"`
	Donor        string `json:"donor"`
	Amount       string `json:"amount"`
	DonationDate string `json:"donation_date"`
}

// StatementLineMsg represents the proto StatementLine message.
type StatementLineMsg struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// BalanceSheetMsg represents the proto BalanceSheet message.
type BalanceSheetMsg struct {
	CashAndBank         string `json:"cash_and_bank"`
	LoanReceivables     string `json:"loan_receivables"`
	TotalAssets         string `json:"total_assets"`
	MandatorySavings    string `json:"mandatory_savings"`
	VoluntarySavings    string `json:"voluntary_savings"`
	TotalLiabilities    string `json:"total_liabilities"`
	EquityMandatoryDues string `json:"equity_mandatory_dues"`
	RetainedSurplus     string `json:"retained_surplus"`
	TotalEquity         string `json:"total_equity"`
}

// StatementMsg represents the proto Statement message. Balanced is false when
// the accounting identity failed; delta then carries the signed gap.
type StatementMsg struct {
	PeriodStart      string              `json:"period_start"`
	PeriodEnd        string              `json:"period_end"`
	IncomeBreakdown  []*StatementLineMsg `json:"income_breakdown"`
	ExpenseBreakdown []*StatementLineMsg `json:"expense_breakdown"`
	TotalIncome      string              `json:"total_income"`
	TotalExpenses    string              `json:"total_expenses"`
	OpeningBalance   string              `json:"opening_balance"`
	EndingBalance    string              `json:"ending_balance"`
	BalanceSheet     *BalanceSheetMsg    `json:"balance_sheet"`
	Balanced         bool                `json:"balanced"`
	Delta            string              `json:"delta"`
}
