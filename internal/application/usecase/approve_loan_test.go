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
	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/service"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
)

func newApproveLoanUseCase(
	loans *mockLoanRepository,
	expenses *mockExpenseRepository,
	periods *mockFiscalPeriodRepository,
	publisher *mockEventPublisher,
	cache *mockStatementCache,
) *usecase.ApproveLoanUseCase {
	return usecase.NewApproveLoanUseCase(
		loans, expenses, periods,
		service.NewAmortizationCalculator(),
		publisher, cache,
	)
}

func TestApproveLoan_Execute(t *testing.T) {
	origination := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	t.Run("successfully activates a pending loan", func(t *testing.T) {
		loan := pendingLoanFixture(uuid.New())
		loans := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.Loan, error) {
				return loan, nil
			},
		}
		expenses := &mockExpenseRepository{}
		publisher := &mockEventPublisher{}
		cache := &mockStatementCache{}

		uc := newApproveLoanUseCase(loans, expenses, &mockFiscalPeriodRepository{}, publisher, cache)

		resp, err := uc.Execute(context.Background(), dto.ApproveLoanRequest{
			LoanID:          loan.ID().String(),
			OriginationDate: origination,
		})

		require.NoError(t, err)
		assert.Equal(t, "active", resp.Status)
		assert.True(t, decimal.NewFromInt(10_000_000).Equal(resp.OutstandingBalance))
		assert.True(t, decimal.NewFromInt(1_000_000).Equal(resp.MonthlyInstallment))
		assert.True(t, decimal.NewFromInt(11_000_000).Equal(resp.TotalWithInterest))
		assert.Equal(t, origination, resp.OriginationDate)

		require.Len(t, loans.savedLoans, 1)

		// The principal hand-out lands on the books immediately.
		require.Len(t, expenses.inserted, 1)
		disbursement := expenses.inserted[0]
		assert.Equal(t, model.CategoryLoanDisbursement, disbursement.Category())
		assert.True(t, disbursement.Status().Equal(valueobject.ExpenseStatusApproved))
		assert.True(t, disbursement.Amount().Equal(loan.Principal()))

		assert.Equal(t, []string{usecase.TopicLoans, usecase.TopicLedger}, publisher.topics)
		assert.Equal(t, 1, cache.bumps)
	})

	t.Run("fails when the origination month is closed", func(t *testing.T) {
		loan := pendingLoanFixture(uuid.New())
		loans := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.Loan, error) {
				return loan, nil
			},
		}
		periods := &mockFiscalPeriodRepository{
			isClosedFunc: func(ctx context.Context, period valueobject.FiscalPeriod) (bool, error) {
				return true, nil
			},
		}
		expenses := &mockExpenseRepository{}

		uc := newApproveLoanUseCase(loans, expenses, periods, &mockEventPublisher{}, &mockStatementCache{})

		_, err := uc.Execute(context.Background(), dto.ApproveLoanRequest{
			LoanID:          loan.ID().String(),
			OriginationDate: origination,
		})

		require.ErrorIs(t, err, port.ErrPeriodClosed)
		assert.Empty(t, loans.savedLoans)
		assert.Empty(t, expenses.inserted)
	})

	t.Run("fails when the loan is already active", func(t *testing.T) {
		loan := activeLoanFixture(uuid.New())
		loans := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.Loan, error) {
				return loan, nil
			},
		}

		uc := newApproveLoanUseCase(loans, &mockExpenseRepository{}, &mockFiscalPeriodRepository{}, &mockEventPublisher{}, &mockStatementCache{})

		_, err := uc.Execute(context.Background(), dto.ApproveLoanRequest{
			LoanID:          loan.ID().String(),
			OriginationDate: origination,
		})

		require.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})

	t.Run("fails when loan not found", func(t *testing.T) {
		uc := newApproveLoanUseCase(&mockLoanRepository{}, &mockExpenseRepository{}, &mockFiscalPeriodRepository{}, &mockEventPublisher{}, &mockStatementCache{})

		_, err := uc.Execute(context.Background(), dto.ApproveLoanRequest{
			LoanID:          uuid.New().String(),
			OriginationDate: origination,
		})

		require.ErrorIs(t, err, port.ErrLoanNotFound)
	})
}
