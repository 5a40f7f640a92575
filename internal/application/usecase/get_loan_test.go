package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kspdigital/koperasi-core/internal/application/dto"
	"github.com/kspdigital/koperasi-core/internal/application/usecase"
	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
)

func TestGetLoan_Execute(t *testing.T) {
	t.Run("returns the loan", func(t *testing.T) {
		memberID := uuid.New()
		loan := activeLoanFixture(memberID)
		loans := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.Loan, error) {
				assert.Equal(t, loan.ID(), id)
				return loan, nil
			},
		}

		uc := usecase.NewGetLoanUseCase(loans)

		resp, err := uc.Execute(context.Background(), dto.GetLoanRequest{LoanID: loan.ID().String()})

		require.NoError(t, err)
		assert.Equal(t, loan.ID().String(), resp.ID)
		assert.Equal(t, memberID.String(), resp.MemberID)
		assert.Equal(t, "active", resp.Status)
		assert.True(t, decimal.NewFromInt(10_000_000).Equal(resp.Principal))
		assert.Equal(t, 10, resp.TenorMonths)
	})

	t.Run("fails when loan not found", func(t *testing.T) {
		uc := usecase.NewGetLoanUseCase(&mockLoanRepository{})

		_, err := uc.Execute(context.Background(), dto.GetLoanRequest{LoanID: uuid.New().String()})

		require.ErrorIs(t, err, port.ErrLoanNotFound)
	})

	t.Run("fails on a malformed loan ID", func(t *testing.T) {
		uc := usecase.NewGetLoanUseCase(&mockLoanRepository{})

		_, err := uc.Execute(context.Background(), dto.GetLoanRequest{LoanID: "not-a-uuid"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse loan ID")
	})
}
