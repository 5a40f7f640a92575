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
	"github.com/kspdigital/koperasi-core/internal/domain/service"
)

func TestGetLoanSchedule_Execute(t *testing.T) {
	t.Run("returns one entry per installment", func(t *testing.T) {
		loan := activeLoanFixture(uuid.New())
		loans := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.Loan, error) {
				return loan, nil
			},
		}

		uc := usecase.NewGetLoanScheduleUseCase(loans, service.NewLedgerService())

		resp, err := uc.Execute(context.Background(), dto.GetLoanScheduleRequest{LoanID: loan.ID().String()})

		require.NoError(t, err)
		assert.Equal(t, loan.ID().String(), resp.LoanID)
		require.Len(t, resp.Entries, 10)

		assert.Equal(t, 1, resp.Entries[0].InstallmentNumber)
		assert.True(t, decimal.NewFromInt(1_000_000).Equal(resp.Entries[0].ExpectedPrincipal))
		// Origination 2025-01-15, so the first installment falls due a month later.
		assert.Equal(t, time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC), resp.Entries[0].ExpectedDueDate)

		assert.Equal(t, 10, resp.Entries[9].InstallmentNumber)
		assert.Equal(t, time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC), resp.Entries[9].ExpectedDueDate)

		total := decimal.Zero
		for _, e := range resp.Entries {
			total = total.Add(e.ExpectedPrincipal)
		}
		assert.True(t, decimal.NewFromInt(10_000_000).Equal(total))
	})

	t.Run("fails for a pending loan", func(t *testing.T) {
		loans := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.Loan, error) {
				return pendingLoanFixture(uuid.New()), nil
			},
		}

		uc := usecase.NewGetLoanScheduleUseCase(loans, service.NewLedgerService())

		_, err := uc.Execute(context.Background(), dto.GetLoanScheduleRequest{LoanID: uuid.New().String()})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no repayment schedule")
	})
}
