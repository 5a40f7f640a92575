package usecase

import (
	"context"
	"fmt"

	"github.com/kspdigital/koperasi-core/internal/application/dto"
	"github.com/kspdigital/koperasi-core/internal/domain/service"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

// ComputeAmortizationUseCase prices flat-rate loan terms without creating a
// loan. Treasurers use it to quote an applicant before registration.
type ComputeAmortizationUseCase struct {
	calc *service.AmortizationCalculator
}

// NewComputeAmortizationUseCase wires dependencies.
func NewComputeAmortizationUseCase(calc *service.AmortizationCalculator) *ComputeAmortizationUseCase {
	return &ComputeAmortizationUseCase{calc: calc}
}

// Execute computes the repayment terms for the requested principal, rate,
// and tenor.
func (uc *ComputeAmortizationUseCase) Execute(
	ctx context.Context,
	req dto.ComputeAmortizationRequest,
) (dto.AmortizationResponse, error) {
	principal := money.FromDecimal(req.Principal)

	terms, err := uc.calc.Calculate(principal, req.AnnualRatePercent, req.TenorMonths)
	if err != nil {
		return dto.AmortizationResponse{}, fmt.Errorf("compute amortization: %w", err)
	}

	return dto.AmortizationResponse{
		Principal:          principal.Decimal(),
		AnnualRatePercent:  req.AnnualRatePercent,
		TenorMonths:        req.TenorMonths,
		MonthlyInstallment: terms.MonthlyInstallment.Decimal(),
		InterestTotal:      terms.InterestTotal.Decimal(),
		TotalWithInterest:  terms.TotalWithInterest.Decimal(),
	}, nil
}
