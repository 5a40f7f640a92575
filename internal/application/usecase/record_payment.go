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
	"github.com/kspdigital/koperasi-core/pkg/money"
)

// RecordPaymentUseCase applies one installment payment to a loan. Writes to
// the same loan are serialized through the shared LoanSerializer; the store's
// optimistic version check covers writers outside this process.
type RecordPaymentUseCase struct {
	loans      port.LoanRepository
	payments   port.PaymentRepository
	periods    port.FiscalPeriodRepository
	ledger     *service.LedgerService
	serializer *LoanSerializer
	publisher  port.EventPublisher
	cache      port.StatementCache
}

// NewRecordPaymentUseCase wires dependencies.
func NewRecordPaymentUseCase(
	loans port.LoanRepository,
	payments port.PaymentRepository,
	periods port.FiscalPeriodRepository,
	ledger *service.LedgerService,
	serializer *LoanSerializer,
	publisher port.EventPublisher,
	cache port.StatementCache,
) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		loans:      loans,
		payments:   payments,
		periods:    periods,
		ledger:     ledger,
		serializer: serializer,
		publisher:  publisher,
		cache:      cache,
	}
}

// Execute validates and applies the payment, returning the updated loan and
// the new payment row.
func (uc *RecordPaymentUseCase) Execute(
	ctx context.Context,
	req dto.RecordPaymentRequest,
) (dto.RecordPaymentResponse, error) {
	now := time.Now().UTC()

	loanID, err := uuid.Parse(req.LoanID)
	if err != nil {
		return dto.RecordPaymentResponse{}, fmt.Errorf("parse loan ID: %w", err)
	}

	// 1. The payment month must be open for entry.
	closed, err := uc.periods.IsClosed(ctx, valueobject.PeriodOf(req.PaymentDate))
	if err != nil {
		return dto.RecordPaymentResponse{}, fmt.Errorf("check fiscal period: %w", err)
	}
	if closed {
		return dto.RecordPaymentResponse{}, fmt.Errorf("record payment: %w", port.ErrPeriodClosed)
	}

	// 2. One writer per loan.
	unlock := uc.serializer.Lock(loanID)
	defer unlock()

	// 3. Load the loan and its full payment history.
	loan, err := uc.loans.FindByID(ctx, loanID)
	if err != nil {
		return dto.RecordPaymentResponse{}, fmt.Errorf("find loan: %w", err)
	}
	history, err := uc.payments.ListByLoan(ctx, loanID)
	if err != nil {
		return dto.RecordPaymentResponse{}, fmt.Errorf("list payments: %w", err)
	}

	// 4. Apply through the ledger.
	in := service.PaymentInput{
		InstallmentNumber: req.InstallmentNumber,
		Principal:         money.FromDecimal(req.Principal),
		PaymentDate:       req.PaymentDate,
		Payoff:            req.Payoff,
	}
	if req.Interest != nil {
		interest := money.FromDecimal(*req.Interest)
		in.Interest = &interest
	}

	loan, payment, err := uc.ledger.ApplyPayment(loan, history, in, now)
	if err != nil {
		return dto.RecordPaymentResponse{}, fmt.Errorf("apply payment: %w", err)
	}

	// 5. Persist the row, then the balance. A version conflict rolls the
	// row back out so nothing half-applied remains.
	if err := uc.payments.Insert(ctx, payment); err != nil {
		return dto.RecordPaymentResponse{}, fmt.Errorf("insert payment: %w", err)
	}
	if err := uc.loans.Save(ctx, loan); err != nil {
		_ = uc.payments.Delete(ctx, payment.ID())
		return dto.RecordPaymentResponse{}, fmt.Errorf("save loan: %w", err)
	}

	// 6. Publish events.
	if err := uc.publisher.Publish(ctx, TopicLoans, loan.DomainEvents()...); err != nil {
		return dto.RecordPaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	// 7. Cached statements are stale once cash moved.
	_ = uc.cache.Bump(ctx)

	return dto.RecordPaymentResponse{
		Loan:    loanResponse(loan),
		Payment: paymentResponse(payment),
	}, nil
}
