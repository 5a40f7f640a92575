package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kspdigital/koperasi-core/internal/application/dto"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/service"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
)

// ReversePaymentUseCase removes a mistaken payment row and restores the
// balance from the remaining history. An edit is modeled as a reversal
// followed by a fresh payment, never an in-place update.
type ReversePaymentUseCase struct {
	loans      port.LoanRepository
	payments   port.PaymentRepository
	periods    port.FiscalPeriodRepository
	ledger     *service.LedgerService
	serializer *LoanSerializer
	publisher  port.EventPublisher
	cache      port.StatementCache
}

// NewReversePaymentUseCase wires dependencies.
func NewReversePaymentUseCase(
	loans port.LoanRepository,
	payments port.PaymentRepository,
	periods port.FiscalPeriodRepository,
	ledger *service.LedgerService,
	serializer *LoanSerializer,
	publisher port.EventPublisher,
	cache port.StatementCache,
) *ReversePaymentUseCase {
	return &ReversePaymentUseCase{
		loans:      loans,
		payments:   payments,
		periods:    periods,
		ledger:     ledger,
		serializer: serializer,
		publisher:  publisher,
		cache:      cache,
	}
}

// Execute reverses one payment of the loan.
func (uc *ReversePaymentUseCase) Execute(
	ctx context.Context,
	req dto.ReversePaymentRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	loanID, err := uuid.Parse(req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("parse loan ID: %w", err)
	}
	paymentID, err := uuid.Parse(req.PaymentID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("parse payment ID: %w", err)
	}

	// 1. The row must exist and belong to this loan.
	payment, err := uc.payments.FindByID(ctx, paymentID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find payment: %w", err)
	}
	if payment.LoanID() != loanID {
		return dto.LoanResponse{}, fmt.Errorf("find payment: %w", port.ErrPaymentNotFound)
	}

	// 2. Its month must still be open for entry.
	closed, err := uc.periods.IsClosed(ctx, valueobject.PeriodOf(payment.PaymentDate()))
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("check fiscal period: %w", err)
	}
	if closed {
		return dto.LoanResponse{}, fmt.Errorf("reverse payment: %w", port.ErrPeriodClosed)
	}

	// 3. One writer per loan.
	unlock := uc.serializer.Lock(loanID)
	defer unlock()

	// 4. Load the loan and its full payment history.
	loan, err := uc.loans.FindByID(ctx, loanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}
	history, err := uc.payments.ListByLoan(ctx, loanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("list payments: %w", err)
	}

	// 5. Reverse through the ledger.
	loan, reversed, err := uc.ledger.ReversePayment(loan, history, paymentID, now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("reverse payment: %w", err)
	}

	// 6. Drop the row, then persist the balance. A version conflict puts
	// the row back so nothing half-applied remains.
	if err := uc.payments.Delete(ctx, paymentID); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("delete payment: %w", err)
	}
	if err := uc.loans.Save(ctx, loan); err != nil {
		_ = uc.payments.Insert(ctx, reversed)
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	// 7. Publish events.
	if err := uc.publisher.Publish(ctx, TopicLoans, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	// 8. Cached statements are stale once cash moved.
	_ = uc.cache.Bump(ctx)

	return loanResponse(loan), nil
}
