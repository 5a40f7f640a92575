package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kspdigital/koperasi-core/internal/application/dto"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/service"
)

// GetLoanScheduleUseCase computes the expected repayment plan of an approved
// loan. The schedule is derived on demand and never stored.
type GetLoanScheduleUseCase struct {
	loans  port.LoanRepository
	ledger *service.LedgerService
}

// NewGetLoanScheduleUseCase wires dependencies.
func NewGetLoanScheduleUseCase(loans port.LoanRepository, ledger *service.LedgerService) *GetLoanScheduleUseCase {
	return &GetLoanScheduleUseCase{loans: loans, ledger: ledger}
}

// Execute returns the loan's expected installments.
func (uc *GetLoanScheduleUseCase) Execute(
	ctx context.Context,
	req dto.GetLoanScheduleRequest,
) (dto.ScheduleResponse, error) {
	loanID, err := uuid.Parse(req.LoanID)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("parse loan ID: %w", err)
	}

	loan, err := uc.loans.FindByID(ctx, loanID)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("find loan: %w", err)
	}

	schedule, err := uc.ledger.ScheduleFor(loan)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("compute schedule: %w", err)
	}

	entries := make([]dto.ScheduleEntryResponse, 0, len(schedule))
	for _, e := range schedule {
		entries = append(entries, dto.ScheduleEntryResponse{
			InstallmentNumber: e.InstallmentNumber,
			ExpectedPrincipal: e.ExpectedPrincipal.Decimal(),
			ExpectedDueDate:   e.ExpectedDueDate,
		})
	}

	return dto.ScheduleResponse{LoanID: loan.ID().String(), Entries: entries}, nil
}
