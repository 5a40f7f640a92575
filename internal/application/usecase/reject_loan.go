package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kspdigital/koperasi-core/internal/application/dto"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
)

// RejectLoanUseCase turns down a pending loan application. The transition is
// terminal and touches no book row.
type RejectLoanUseCase struct {
	loans     port.LoanRepository
	publisher port.EventPublisher
}

// NewRejectLoanUseCase wires dependencies.
func NewRejectLoanUseCase(loans port.LoanRepository, publisher port.EventPublisher) *RejectLoanUseCase {
	return &RejectLoanUseCase{loans: loans, publisher: publisher}
}

// Execute rejects a pending loan with a recorded reason.
func (uc *RejectLoanUseCase) Execute(
	ctx context.Context,
	req dto.RejectLoanRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	loanID, err := uuid.Parse(req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("parse loan ID: %w", err)
	}

	// 1. Retrieve the pending loan.
	loan, err := uc.loans.FindByID(ctx, loanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}

	// 2. Reject.
	loan, err = loan.Reject(req.Reason, now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("reject loan: %w", err)
	}

	// 3. Persist.
	if err := uc.loans.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	// 4. Publish events.
	if err := uc.publisher.Publish(ctx, TopicLoans, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return loanResponse(loan), nil
}
