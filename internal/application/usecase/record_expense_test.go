package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kspdigital/koperasi-core/internal/application/dto"
	"github.com/kspdigital/koperasi-core/internal/application/usecase"
	"github.com/kspdigital/koperasi-core/internal/domain/event"
	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
)

func TestRecordExpense_Execute(t *testing.T) {
	expenseDate := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)

	t.Run("records an expense pending approval", func(t *testing.T) {
		expenses := &mockExpenseRepository{}
		publisher := &mockEventPublisher{}
		cache := &mockStatementCache{}

		uc := usecase.NewRecordExpenseUseCase(expenses, &mockFiscalPeriodRepository{}, publisher, cache)

		resp, err := uc.Execute(context.Background(), dto.RecordExpenseRequest{
			Category:    "office_rent",
			Amount:      decimal.NewFromInt(200_000),
			ExpenseDate: expenseDate,
		})

		require.NoError(t, err)
		assert.Equal(t, "office_rent", resp.Category)
		assert.Equal(t, "pending", resp.Status)

		require.Len(t, expenses.inserted, 1)
		assert.True(t, expenses.inserted[0].Status().Equal(valueobject.ExpenseStatusPending))

		assert.Equal(t, []string{usecase.TopicLedger}, publisher.topics)
		require.Len(t, publisher.published, 1)
		_, ok := publisher.published[0].(event.ExpenseRecorded)
		require.True(t, ok)
		assert.Equal(t, 1, cache.bumps)
	})

	t.Run("rejects the reserved disbursement category", func(t *testing.T) {
		expenses := &mockExpenseRepository{}

		uc := usecase.NewRecordExpenseUseCase(expenses, &mockFiscalPeriodRepository{}, &mockEventPublisher{}, &mockStatementCache{})

		_, err := uc.Execute(context.Background(), dto.RecordExpenseRequest{
			Category:    model.CategoryLoanDisbursement,
			Amount:      decimal.NewFromInt(1_000_000),
			ExpenseDate: expenseDate,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "reserved")
		assert.Empty(t, expenses.inserted)
	})

	t.Run("fails when the expense month is closed", func(t *testing.T) {
		periods := &mockFiscalPeriodRepository{
			isClosedFunc: func(ctx context.Context, period valueobject.FiscalPeriod) (bool, error) {
				assert.Equal(t, "2025-02", period.String())
				return true, nil
			},
		}
		expenses := &mockExpenseRepository{}

		uc := usecase.NewRecordExpenseUseCase(expenses, periods, &mockEventPublisher{}, &mockStatementCache{})

		_, err := uc.Execute(context.Background(), dto.RecordExpenseRequest{
			Category:    "utilities",
			Amount:      decimal.NewFromInt(150_000),
			ExpenseDate: expenseDate,
		})

		require.ErrorIs(t, err, port.ErrPeriodClosed)
		assert.Empty(t, expenses.inserted)
	})

	t.Run("fails on a non-positive amount", func(t *testing.T) {
		uc := usecase.NewRecordExpenseUseCase(&mockExpenseRepository{}, &mockFiscalPeriodRepository{}, &mockEventPublisher{}, &mockStatementCache{})

		_, err := uc.Execute(context.Background(), dto.RecordExpenseRequest{
			Category:    "utilities",
			Amount:      decimal.Zero,
			ExpenseDate: expenseDate,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "positive")
	})
}
