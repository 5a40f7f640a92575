package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kspdigital/koperasi-core/internal/application/dto"
	"github.com/kspdigital/koperasi-core/internal/application/usecase"
	"github.com/kspdigital/koperasi-core/internal/domain/event"
	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

func pendingExpenseFixture(t *testing.T) model.Expense {
	t.Helper()
	expense, err := model.NewExpense("office_rent", money.New(200_000),
		time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return expense
}

func TestApproveExpense_Execute(t *testing.T) {
	t.Run("approval puts the entry on the books", func(t *testing.T) {
		expense := pendingExpenseFixture(t)
		expenses := &mockExpenseRepository{
			findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.Expense, error) {
				return expense, nil
			},
		}
		publisher := &mockEventPublisher{}
		cache := &mockStatementCache{}

		uc := usecase.NewApproveExpenseUseCase(expenses, publisher, cache)

		resp, err := uc.Execute(context.Background(), dto.ApproveExpenseRequest{
			ExpenseID: expense.ID().String(),
			Approve:   true,
		})

		require.NoError(t, err)
		assert.Equal(t, "approved", resp.Status)
		assert.True(t, decimal.NewFromInt(200_000).Equal(resp.Amount))

		require.Len(t, expenses.updated, 1)
		assert.Equal(t, []string{usecase.TopicLedger}, publisher.topics)
		require.Len(t, publisher.published, 1)
		_, ok := publisher.published[0].(event.ExpenseApproved)
		require.True(t, ok)
		assert.Equal(t, 1, cache.bumps)
	})

	t.Run("rejection leaves the books untouched", func(t *testing.T) {
		expense := pendingExpenseFixture(t)
		expenses := &mockExpenseRepository{
			findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.Expense, error) {
				return expense, nil
			},
		}
		publisher := &mockEventPublisher{}
		cache := &mockStatementCache{}

		uc := usecase.NewApproveExpenseUseCase(expenses, publisher, cache)

		resp, err := uc.Execute(context.Background(), dto.ApproveExpenseRequest{
			ExpenseID: expense.ID().String(),
			Approve:   false,
		})

		require.NoError(t, err)
		assert.Equal(t, "rejected", resp.Status)

		require.Len(t, expenses.updated, 1)
		assert.Empty(t, publisher.published)
		assert.Zero(t, cache.bumps)
	})

	t.Run("fails when the expense is already settled", func(t *testing.T) {
		expense := pendingExpenseFixture(t)
		settled, err := expense.Approve()
		require.NoError(t, err)

		expenses := &mockExpenseRepository{
			findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.Expense, error) {
				return settled, nil
			},
		}

		uc := usecase.NewApproveExpenseUseCase(expenses, &mockEventPublisher{}, &mockStatementCache{})

		_, err = uc.Execute(context.Background(), dto.ApproveExpenseRequest{
			ExpenseID: settled.ID().String(),
			Approve:   true,
		})

		require.Error(t, err)
		assert.Empty(t, expenses.updated)
	})

	t.Run("fails when expense not found", func(t *testing.T) {
		uc := usecase.NewApproveExpenseUseCase(&mockExpenseRepository{}, &mockEventPublisher{}, &mockStatementCache{})

		_, err := uc.Execute(context.Background(), dto.ApproveExpenseRequest{
			ExpenseID: uuid.New().String(),
			Approve:   true,
		})

		require.ErrorIs(t, err, port.ErrExpenseNotFound)
	})
}
