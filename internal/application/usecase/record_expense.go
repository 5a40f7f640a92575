package usecase

import (
	"context"
	"fmt"

	"github.com/kspdigital/koperasi-core/internal/application/dto"
	"github.com/kspdigital/koperasi-core/internal/domain/event"
	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

// RecordExpenseUseCase books an outgoing cash entry pending approval. The
// loan_disbursement category is reserved for the loan approval flow and
// rejected here.
type RecordExpenseUseCase struct {
	expenses  port.ExpenseRepository
	periods   port.FiscalPeriodRepository
	publisher port.EventPublisher
	cache     port.StatementCache
}

// NewRecordExpenseUseCase wires dependencies.
func NewRecordExpenseUseCase(
	expenses port.ExpenseRepository,
	periods port.FiscalPeriodRepository,
	publisher port.EventPublisher,
	cache port.StatementCache,
) *RecordExpenseUseCase {
	return &RecordExpenseUseCase{
		expenses:  expenses,
		periods:   periods,
		publisher: publisher,
		cache:     cache,
	}
}

// Execute records the expense.
func (uc *RecordExpenseUseCase) Execute(
	ctx context.Context,
	req dto.RecordExpenseRequest,
) (dto.ExpenseResponse, error) {
	// 1. The expense month must still be open for entry.
	closed, err := uc.periods.IsClosed(ctx, valueobject.PeriodOf(req.ExpenseDate))
	if err != nil {
		return dto.ExpenseResponse{}, fmt.Errorf("check fiscal period: %w", err)
	}
	if closed {
		return dto.ExpenseResponse{}, fmt.Errorf("record expense: %w", port.ErrPeriodClosed)
	}

	// 2. Create and persist.
	expense, err := model.NewExpense(req.Category, money.FromDecimal(req.Amount), req.ExpenseDate)
	if err != nil {
		return dto.ExpenseResponse{}, fmt.Errorf("create expense: %w", err)
	}
	if err := uc.expenses.Insert(ctx, expense); err != nil {
		return dto.ExpenseResponse{}, fmt.Errorf("insert expense: %w", err)
	}

	// 3. Publish events.
	recorded := event.NewExpenseRecorded(
		expense.ID().String(), expense.Category(), expense.Amount().Decimal(),
	)
	if err := uc.publisher.Publish(ctx, TopicLedger, recorded); err != nil {
		return dto.ExpenseResponse{}, fmt.Errorf("publish events: %w", err)
	}

	// 4. Cached statements are stale once the book changed.
	_ = uc.cache.Bump(ctx)

	return expenseResponse(expense), nil
}
