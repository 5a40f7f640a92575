package service

import (
	"github.com/shopspring/decimal"

	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

// ---------------------------------------------------------------------------
// Amortization Calculator Domain Service
// ---------------------------------------------------------------------------

// LoanTerms is the repayment arithmetic fixed at loan approval.
type LoanTerms struct {
	MonthlyInstallment money.Money
	InterestTotal      money.Money
	TotalWithInterest  money.Money
}

// AmortizationCalculator computes flat-rate loan terms.
//
// The cooperative books interest two ways that are kept as distinct
// operations: Calculate produces the flat total fixed at approval
// (principal × rate × tenor/12), while InstallmentInterest produces the
// per-installment figure against the remaining balance that the ledger books
// when no explicit interest portion is supplied. The two do not agree in
// general and are never unified.
type AmortizationCalculator struct{}

// NewAmortizationCalculator creates a calculator instance.
func NewAmortizationCalculator() *AmortizationCalculator {
	return &AmortizationCalculator{}
}

var monthsPerYearTimesPercent = decimal.NewFromInt(1200)

// Calculate computes the flat-rate terms for a loan:
//
//	interest_total      = principal × (rate/100) × (tenor/12)
//	total_with_interest = principal + interest_total
//	monthly_installment = principal / tenor
//
// Each division rounds half-up to the nearest rupiah in a single step, so no
// intermediate rounding accumulates.
func (c *AmortizationCalculator) Calculate(
	principal money.Money,
	annualRatePercent decimal.Decimal,
	tenorMonths int,
) (LoanTerms, error) {
	if !principal.IsPositive() {
		return LoanTerms{}, model.InvalidLoanTermsError{Field: "principal", Value: principal.String()}
	}
	if annualRatePercent.IsNegative() {
		return LoanTerms{}, model.InvalidLoanTermsError{Field: "annual_rate_percent", Value: annualRatePercent.String()}
	}
	if tenorMonths < 1 {
		return LoanTerms{}, model.InvalidLoanTermsError{Field: "tenor_months", Value: decimal.NewFromInt(int64(tenorMonths)).String()}
	}

	tenor := decimal.NewFromInt(int64(tenorMonths))

	// principal × rate × tenor / 1200
	interestTotal := principal.MulFrac(annualRatePercent.Mul(tenor), monthsPerYearTimesPercent)

	return LoanTerms{
		MonthlyInstallment: principal.Div(int64(tenorMonths)),
		InterestTotal:      interestTotal,
		TotalWithInterest:  principal.Add(interestTotal),
	}, nil
}

// InstallmentInterest computes one installment's interest against the
// current outstanding balance:
//
//	(outstanding × rate/100) / 12
//
// rounded half-up to the nearest rupiah.
func (c *AmortizationCalculator) InstallmentInterest(
	outstanding money.Money,
	annualRatePercent decimal.Decimal,
) (money.Money, error) {
	if outstanding.IsNegative() {
		return money.Zero(), model.InvalidLoanTermsError{Field: "outstanding", Value: outstanding.String()}
	}
	if annualRatePercent.IsNegative() {
		return money.Zero(), model.InvalidLoanTermsError{Field: "annual_rate_percent", Value: annualRatePercent.String()}
	}

	return outstanding.MulFrac(annualRatePercent, monthsPerYearTimesPercent), nil
}
