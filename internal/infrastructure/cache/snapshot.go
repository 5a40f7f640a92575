package cache

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

// statementSnapshot is the wire form of a cached statement. Amounts travel
// as decimal strings.
type statementSnapshot struct {
	PeriodStart      time.Time       `json:"period_start"`
	PeriodEnd        time.Time       `json:"period_end"`
	IncomeBreakdown  []lineSnapshot  `json:"income_breakdown"`
	ExpenseBreakdown []lineSnapshot  `json:"expense_breakdown"`
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	OpeningBalance   decimal.Decimal `json:"opening_balance"`
	EndingBalance    decimal.Decimal `json:"ending_balance"`
	CashAndBank      decimal.Decimal `json:"cash_and_bank"`
	LoanReceivables  decimal.Decimal `json:"loan_receivables"`
	MandatorySavings decimal.Decimal `json:"mandatory_savings"`
	VoluntarySavings decimal.Decimal `json:"voluntary_savings"`
	MandatoryDues    decimal.Decimal `json:"mandatory_dues"`
	RetainedSurplus  decimal.Decimal `json:"retained_surplus"`
}

type lineSnapshot struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

func snapshotOf(s model.PeriodStatement) statementSnapshot {
	sheet := s.BalanceSheet
	return statementSnapshot{
		PeriodStart:      s.PeriodStart,
		PeriodEnd:        s.PeriodEnd,
		IncomeBreakdown:  snapshotLines(s.IncomeBreakdown),
		ExpenseBreakdown: snapshotLines(s.ExpenseBreakdown),
		TotalIncome:      s.TotalIncome.Decimal(),
		TotalExpenses:    s.TotalExpenses.Decimal(),
		OpeningBalance:   s.OpeningBalance.Decimal(),
		EndingBalance:    s.EndingBalance.Decimal(),
		CashAndBank:      sheet.Assets.CashAndBank.Decimal(),
		LoanReceivables:  sheet.Assets.LoanReceivables.Decimal(),
		MandatorySavings: sheet.Liabilities.MandatorySavings.Decimal(),
		VoluntarySavings: sheet.Liabilities.VoluntarySavings.Decimal(),
		MandatoryDues:    sheet.Equity.MandatoryDues.Decimal(),
		RetainedSurplus:  sheet.Equity.RetainedSurplus.Decimal(),
	}
}

func (s statementSnapshot) statement() model.PeriodStatement {
	return model.PeriodStatement{
		PeriodStart:      s.PeriodStart,
		PeriodEnd:        s.PeriodEnd,
		IncomeBreakdown:  restoreLines(s.IncomeBreakdown),
		ExpenseBreakdown: restoreLines(s.ExpenseBreakdown),
		TotalIncome:      money.FromDecimal(s.TotalIncome),
		TotalExpenses:    money.FromDecimal(s.TotalExpenses),
		OpeningBalance:   money.FromDecimal(s.OpeningBalance),
		EndingBalance:    money.FromDecimal(s.EndingBalance),
		BalanceSheet: model.BalanceSheet{
			Assets: model.BalanceSheetAssets{
				CashAndBank:     money.FromDecimal(s.CashAndBank),
				LoanReceivables: money.FromDecimal(s.LoanReceivables),
			},
			Liabilities: model.BalanceSheetLiabilities{
				MandatorySavings: money.FromDecimal(s.MandatorySavings),
				VoluntarySavings: money.FromDecimal(s.VoluntarySavings),
			},
			Equity: model.BalanceSheetEquity{
				MandatoryDues:   money.FromDecimal(s.MandatoryDues),
				RetainedSurplus: money.FromDecimal(s.RetainedSurplus),
			},
		},
	}
}

func snapshotLines(lines []model.StatementLine) []lineSnapshot {
	out := make([]lineSnapshot, 0, len(lines))
	for _, line := range lines {
		out = append(out, lineSnapshot{Category: line.Category, Amount: line.Amount.Decimal()})
	}
	return out
}

func restoreLines(lines []lineSnapshot) []model.StatementLine {
	out := make([]model.StatementLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, model.StatementLine{Category: line.Category, Amount: money.FromDecimal(line.Amount)})
	}
	return out
}
