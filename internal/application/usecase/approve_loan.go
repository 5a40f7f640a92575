package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kspdigital/koperasi-core/internal/application/dto"
	"github.com/kspdigital/koperasi-core/internal/domain/event"
	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/service"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
)

// ApproveLoanUseCase activates a pending loan: the repayment terms are fixed
// once, the outstanding balance opens at the principal, and the principal
// hand-out is booked as a loan_disbursement expense so cash and receivables
// move together.
type ApproveLoanUseCase struct {
	loans     port.LoanRepository
	expenses  port.ExpenseRepository
	periods   port.FiscalPeriodRepository
	calc      *service.AmortizationCalculator
	publisher port.EventPublisher
	cache     port.StatementCache
}

// NewApproveLoanUseCase wires dependencies.
func NewApproveLoanUseCase(
	loans port.LoanRepository,
	expenses port.ExpenseRepository,
	periods port.FiscalPeriodRepository,
	calc *service.AmortizationCalculator,
	publisher port.EventPublisher,
	cache port.StatementCache,
) *ApproveLoanUseCase {
	return &ApproveLoanUseCase{
		loans:     loans,
		expenses:  expenses,
		periods:   periods,
		calc:      calc,
		publisher: publisher,
		cache:     cache,
	}
}

// Execute approves a pending loan as of the origination date.
func (uc *ApproveLoanUseCase) Execute(
	ctx context.Context,
	req dto.ApproveLoanRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	loanID, err := uuid.Parse(req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("parse loan ID: %w", err)
	}

	// 1. The disbursement lands in the origination month, which must still
	// be open for entry.
	closed, err := uc.periods.IsClosed(ctx, valueobject.PeriodOf(req.OriginationDate))
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("check fiscal period: %w", err)
	}
	if closed {
		return dto.LoanResponse{}, fmt.Errorf("approve loan: %w", port.ErrPeriodClosed)
	}

	// 2. Retrieve the pending loan.
	loan, err := uc.loans.FindByID(ctx, loanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}

	// 3. Fix the repayment terms.
	terms, err := uc.calc.Calculate(loan.Principal(), loan.AnnualRatePercent(), loan.TenorMonths())
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("compute terms: %w", err)
	}

	loan, err = loan.Approve(terms.MonthlyInstallment, terms.TotalWithInterest, req.OriginationDate, now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("approve loan: %w", err)
	}

	// 4. Persist the activation, then book the disbursement.
	if err := uc.loans.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	disbursement, err := model.NewLoanDisbursement(loan.Principal(), req.OriginationDate)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("create disbursement: %w", err)
	}
	if err := uc.expenses.Insert(ctx, disbursement); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("book disbursement: %w", err)
	}

	// 5. Publish events.
	if err := uc.publisher.Publish(ctx, TopicLoans, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}
	disbursed := event.NewExpenseRecorded(
		disbursement.ID().String(), disbursement.Category(), disbursement.Amount().Decimal(),
	)
	if err := uc.publisher.Publish(ctx, TopicLedger, disbursed); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	// 6. Cached statements are stale once cash moved.
	_ = uc.cache.Bump(ctx)

	return loanResponse(loan), nil
}
