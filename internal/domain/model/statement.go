package model

import (
	"time"

	"github.com/kspdigital/koperasi-core/pkg/money"
)

// ---------------------------------------------------------------------------
// Period statement (derived, never persisted)
// ---------------------------------------------------------------------------

// StatementLine is one category row in an income or expense breakdown.
type StatementLine struct {
	Category string
	Amount   money.Money
}

// BalanceSheetAssets is the asset side of the balance sheet.
type BalanceSheetAssets struct {
	CashAndBank     money.Money
	LoanReceivables money.Money
}

// Total returns the summed asset side.
func (a BalanceSheetAssets) Total() money.Money {
	return a.CashAndBank.Add(a.LoanReceivables)
}

// BalanceSheetLiabilities is the liability side: member savings held by the
// cooperative.
type BalanceSheetLiabilities struct {
	MandatorySavings money.Money
	VoluntarySavings money.Money
}

// Total returns the summed liability side.
func (l BalanceSheetLiabilities) Total() money.Money {
	return l.MandatorySavings.Add(l.VoluntarySavings)
}

// BalanceSheetEquity is the equity side: capitalized dues of departed
// members plus the retained surplus (SHU).
type BalanceSheetEquity struct {
	MandatoryDues   money.Money
	RetainedSurplus money.Money
}

// Total returns the summed equity side.
func (e BalanceSheetEquity) Total() money.Money {
	return e.MandatoryDues.Add(e.RetainedSurplus)
}

// BalanceSheet is the cooperative's position as of a period end.
type BalanceSheet struct {
	Assets      BalanceSheetAssets
	Liabilities BalanceSheetLiabilities
	Equity      BalanceSheetEquity
}

// Delta returns assets total minus liabilities plus equity, signed. A
// consistent book yields zero.
func (b BalanceSheet) Delta() money.Money {
	return b.Assets.Total().Sub(b.Liabilities.Total().Add(b.Equity.Total()))
}

// Balances reports whether the identity holds within one rupiah.
func (b BalanceSheet) Balances() bool {
	return b.Assets.Total().WithinUnit(b.Liabilities.Total().Add(b.Equity.Total()))
}

// PeriodStatement is the financial statement of one reconciliation period.
// It is derived output: the engine computes it from the books and never
// stores it, though callers may cache it.
type PeriodStatement struct {
	PeriodStart      time.Time
	PeriodEnd        time.Time
	IncomeBreakdown  []StatementLine
	ExpenseBreakdown []StatementLine
	TotalIncome      money.Money
	TotalExpenses    money.Money
	OpeningBalance   money.Money
	EndingBalance    money.Money
	BalanceSheet     BalanceSheet
}

// ---------------------------------------------------------------------------
// Reconciliation snapshot
// ---------------------------------------------------------------------------

// PeriodData is the consistent snapshot a reconciliation runs over. All
// dated rows fall before the period end; Loans and Members carry their
// current state. Expenses holds approved rows only.
type PeriodData struct {
	Loans     []Loan
	Payments  []LoanPayment
	Dues      []Due
	Expenses  []Expense
	Donations []Donation
	Members   []Member
}
