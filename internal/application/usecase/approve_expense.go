package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kspdigital/koperasi-core/internal/application/dto"
	"github.com/kspdigital/koperasi-core/internal/domain/event"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
)

// ApproveExpenseUseCase settles a pending expense. Approval puts the entry
// on the books; rejection is terminal and leaves the books untouched.
type ApproveExpenseUseCase struct {
	expenses  port.ExpenseRepository
	publisher port.EventPublisher
	cache     port.StatementCache
}

// NewApproveExpenseUseCase wires dependencies.
func NewApproveExpenseUseCase(
	expenses port.ExpenseRepository,
	publisher port.EventPublisher,
	cache port.StatementCache,
) *ApproveExpenseUseCase {
	return &ApproveExpenseUseCase{
		expenses:  expenses,
		publisher: publisher,
		cache:     cache,
	}
}

// Execute approves or rejects the pending expense.
func (uc *ApproveExpenseUseCase) Execute(
	ctx context.Context,
	req dto.ApproveExpenseRequest,
) (dto.ExpenseResponse, error) {
	expenseID, err := uuid.Parse(req.ExpenseID)
	if err != nil {
		return dto.ExpenseResponse{}, fmt.Errorf("parse expense ID: %w", err)
	}

	// 1. Retrieve the pending entry.
	expense, err := uc.expenses.FindByID(ctx, expenseID)
	if err != nil {
		return dto.ExpenseResponse{}, fmt.Errorf("find expense: %w", err)
	}

	// 2. Transition.
	if req.Approve {
		expense, err = expense.Approve()
	} else {
		expense, err = expense.Reject()
	}
	if err != nil {
		return dto.ExpenseResponse{}, fmt.Errorf("settle expense: %w", err)
	}

	// 3. Persist.
	if err := uc.expenses.Update(ctx, expense); err != nil {
		return dto.ExpenseResponse{}, fmt.Errorf("update expense: %w", err)
	}

	// 4. An approval changes the books: publish and invalidate.
	if req.Approve {
		approved := event.NewExpenseApproved(
			expense.ID().String(), expense.Category(), expense.Amount().Decimal(),
		)
		if err := uc.publisher.Publish(ctx, TopicLedger, approved); err != nil {
			return dto.ExpenseResponse{}, fmt.Errorf("publish events: %w", err)
		}
		_ = uc.cache.Bump(ctx)
	}

	return expenseResponse(expense), nil
}
