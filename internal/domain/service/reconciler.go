package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

// ---------------------------------------------------------------------------
// Period Reconciler Domain Service
// ---------------------------------------------------------------------------

// Income breakdown categories, in statement order.
const (
	IncomeMandatoryDues = "mandatory_dues"
	IncomeVoluntaryDues = "voluntary_dues"
	IncomeLoanPrincipal = "loan_principal"
	IncomeLoanInterest  = "loan_interest"
	IncomeDonations     = "donations"
)

// PeriodReconciler aggregates the books into a period statement and balance
// sheet. It is pure aggregation: it never mutates a record, and identical
// snapshots produce identical statements.
type PeriodReconciler struct{}

// NewPeriodReconciler creates a reconciler instance.
func NewPeriodReconciler() *PeriodReconciler {
	return &PeriodReconciler{}
}

// Reconcile produces the statement for [start, end). end is exclusive, so a
// calendar month runs from its first day to the first day of the next.
//
// The computation:
//  1. Income in period: dues booked in the period (anchored at the first day
//     of their fiscal month) + payment principal and interest collected +
//     donations.
//  2. Expenses in period: approved expense amounts, loan disbursements
//     included.
//  3. ending_balance = opening_balance + income − expenses, where the
//     opening balance is the cumulative position from inception to start.
//  4. Balance sheet as of end: cash is the ending balance; receivables sum
//     the outstanding balances of active loans; member savings split into
//     liabilities (active members) and equity (departed members, whose dues
//     are capitalized by cooperative convention); the retained surplus
//     accumulates interest, donations and departed members' voluntary dues
//     minus operating expenses.
//  5. Verify assets == liabilities + equity within one rupiah. On failure
//     the statement is still returned, together with a BalanceMismatchError
//     carrying the signed delta. The reconciler never corrects the books.
func (r *PeriodReconciler) Reconcile(data model.PeriodData, start, end time.Time) (model.PeriodStatement, error) {
	if start.IsZero() || end.IsZero() {
		return model.PeriodStatement{}, fmt.Errorf("period bounds are required")
	}
	if !start.Before(end) {
		return model.PeriodStatement{}, fmt.Errorf("period start %s must precede end %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	memberActive := make(map[uuid.UUID]bool, len(data.Members))
	memberKnown := make(map[uuid.UUID]bool, len(data.Members))
	for _, m := range data.Members {
		memberKnown[m.ID()] = true
		memberActive[m.ID()] = m.Active()
	}

	duesMandIn := money.Zero()
	duesVolIn := money.Zero()
	principalIn := money.Zero()
	interestIn := money.Zero()
	donationsIn := money.Zero()
	expensesIn := money.Zero()

	priorIncome := money.Zero()
	priorExpenses := money.Zero()

	// Cumulative figures to the period end, feeding the balance sheet.
	savingsMandatory := money.Zero()
	savingsVoluntary := money.Zero()
	equityMandatoryDues := money.Zero()
	equityVoluntaryDues := money.Zero()
	interestCum := money.Zero()
	donationsCum := money.Zero()
	operatingCum := money.Zero()

	for _, d := range data.Dues {
		anchor := d.Period().Start()
		if !anchor.Before(end) {
			continue
		}
		switch {
		case inPeriod(anchor, start, end):
			duesMandIn = duesMandIn.Add(d.MandatoryAmount())
			duesVolIn = duesVolIn.Add(d.VoluntaryAmount())
		case anchor.Before(start):
			priorIncome = priorIncome.Add(d.Total())
		}

		// Dues of a member missing from the register stay out of both
		// sides; the identity check surfaces them as a delta.
		if !memberKnown[d.MemberID()] {
			continue
		}
		if memberActive[d.MemberID()] {
			savingsMandatory = savingsMandatory.Add(d.MandatoryAmount())
			savingsVoluntary = savingsVoluntary.Add(d.VoluntaryAmount())
		} else {
			equityMandatoryDues = equityMandatoryDues.Add(d.MandatoryAmount())
			equityVoluntaryDues = equityVoluntaryDues.Add(d.VoluntaryAmount())
		}
	}

	for _, p := range data.Payments {
		if !p.PaymentDate().Before(end) {
			continue
		}
		switch {
		case inPeriod(p.PaymentDate(), start, end):
			principalIn = principalIn.Add(p.PrincipalPortion())
			interestIn = interestIn.Add(p.InterestPortion())
		case p.PaymentDate().Before(start):
			priorIncome = priorIncome.Add(p.Total())
		}
		interestCum = interestCum.Add(p.InterestPortion())
	}

	for _, don := range data.Donations {
		if !don.DonationDate().Before(end) {
			continue
		}
		switch {
		case inPeriod(don.DonationDate(), start, end):
			donationsIn = donationsIn.Add(don.Amount())
		case don.DonationDate().Before(start):
			priorIncome = priorIncome.Add(don.Amount())
		}
		donationsCum = donationsCum.Add(don.Amount())
	}

	expenseByCategory := make(map[string]money.Money)
	for _, e := range data.Expenses {
		if !e.ExpenseDate().Before(end) {
			continue
		}
		switch {
		case inPeriod(e.ExpenseDate(), start, end):
			expensesIn = expensesIn.Add(e.Amount())
			expenseByCategory[e.Category()] = expenseByCategory[e.Category()].Add(e.Amount())
		case e.ExpenseDate().Before(start):
			priorExpenses = priorExpenses.Add(e.Amount())
		}
		if e.IsOperating() {
			operatingCum = operatingCum.Add(e.Amount())
		}
	}

	receivables := money.Zero()
	for _, l := range data.Loans {
		if l.Status().Equal(valueobject.LoanStatusActive) {
			receivables = receivables.Add(l.OutstandingBalance())
		}
	}

	totalIncome := duesMandIn.Add(duesVolIn).Add(principalIn).Add(interestIn).Add(donationsIn)
	opening := priorIncome.Sub(priorExpenses)
	ending := opening.Add(totalIncome).Sub(expensesIn)

	sheet := model.BalanceSheet{
		Assets: model.BalanceSheetAssets{
			CashAndBank:     ending,
			LoanReceivables: receivables,
		},
		Liabilities: model.BalanceSheetLiabilities{
			MandatorySavings: savingsMandatory,
			VoluntarySavings: savingsVoluntary,
		},
		Equity: model.BalanceSheetEquity{
			MandatoryDues: equityMandatoryDues,
			RetainedSurplus: interestCum.Add(donationsCum).
				Add(equityVoluntaryDues).Sub(operatingCum),
		},
	}

	statement := model.PeriodStatement{
		PeriodStart: start,
		PeriodEnd:   end,
		IncomeBreakdown: []model.StatementLine{
			{Category: IncomeMandatoryDues, Amount: duesMandIn},
			{Category: IncomeVoluntaryDues, Amount: duesVolIn},
			{Category: IncomeLoanPrincipal, Amount: principalIn},
			{Category: IncomeLoanInterest, Amount: interestIn},
			{Category: IncomeDonations, Amount: donationsIn},
		},
		ExpenseBreakdown: expenseLines(expenseByCategory),
		TotalIncome:      totalIncome,
		TotalExpenses:    expensesIn,
		OpeningBalance:   opening,
		EndingBalance:    ending,
		BalanceSheet:     sheet,
	}

	if !sheet.Balances() {
		return statement, model.BalanceMismatchError{
			PeriodStart: start,
			PeriodEnd:   end,
			Delta:       sheet.Delta(),
		}
	}

	return statement, nil
}

func inPeriod(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

func expenseLines(byCategory map[string]money.Money) []model.StatementLine {
	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	lines := make([]model.StatementLine, 0, len(categories))
	for _, c := range categories {
		lines = append(lines, model.StatementLine{Category: c, Amount: byCategory[c]})
	}
	return lines
}
