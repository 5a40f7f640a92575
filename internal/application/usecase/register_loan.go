package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kspdigital/koperasi-core/internal/application/dto"
	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/service"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

// RegisterLoanUseCase files a member's loan application. The loan starts
// pending; repayment terms are only fixed on approval.
type RegisterLoanUseCase struct {
	loans     port.LoanRepository
	members   port.MemberRepository
	calc      *service.AmortizationCalculator
	publisher port.EventPublisher
}

// NewRegisterLoanUseCase wires dependencies.
func NewRegisterLoanUseCase(
	loans port.LoanRepository,
	members port.MemberRepository,
	calc *service.AmortizationCalculator,
	publisher port.EventPublisher,
) *RegisterLoanUseCase {
	return &RegisterLoanUseCase{
		loans:     loans,
		members:   members,
		calc:      calc,
		publisher: publisher,
	}
}

// Execute validates the terms and registers a pending loan.
func (uc *RegisterLoanUseCase) Execute(
	ctx context.Context,
	req dto.RegisterLoanRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("parse member ID: %w", err)
	}

	// 1. The borrower must be a current member.
	member, err := uc.members.FindByID(ctx, memberID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find member: %w", err)
	}
	if !member.Active() {
		return dto.LoanResponse{}, fmt.Errorf("member %s is no longer active", member.MemberCode())
	}

	// 2. Price the terms up front so an unservable application never enters
	// the book.
	principal := money.FromDecimal(req.Principal)
	if _, err := uc.calc.Calculate(principal, req.AnnualRatePercent, req.TenorMonths); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("validate terms: %w", err)
	}

	// 3. Create the pending aggregate.
	loan, err := model.NewLoan(memberID, principal, req.AnnualRatePercent, req.TenorMonths, now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("create loan: %w", err)
	}

	// 4. Persist.
	if err := uc.loans.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	// 5. Publish events.
	if err := uc.publisher.Publish(ctx, TopicLoans, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return loanResponse(loan), nil
}
