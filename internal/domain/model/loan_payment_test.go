package model_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

func TestNewLoanPayment_Valid(t *testing.T) {
	loanID := uuid.New()
	date := time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC)

	payment, err := model.NewLoanPayment(
		loanID, 1,
		money.New(1_000_000), money.New(100_000),
		date, valueobject.PaymentStatusOnTime,
	)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, payment.ID())
	assert.Equal(t, loanID, payment.LoanID())
	assert.Equal(t, 1, payment.InstallmentNumber())
	assert.True(t, payment.PrincipalPortion().Equal(money.New(1_000_000)))
	assert.True(t, payment.InterestPortion().Equal(money.New(100_000)))
	assert.True(t, payment.Total().Equal(money.New(1_100_000)))
	assert.Equal(t, date, payment.PaymentDate())
	assert.True(t, payment.Status().Equal(valueobject.PaymentStatusOnTime))
}

func TestNewLoanPayment_NilLoan(t *testing.T) {
	_, err := model.NewLoanPayment(
		uuid.Nil, 1,
		money.New(1_000_000), money.Zero(),
		time.Now(), valueobject.PaymentStatusOnTime,
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loan ID is required")
}

func TestNewLoanPayment_ZeroInstallmentNumber(t *testing.T) {
	_, err := model.NewLoanPayment(
		uuid.New(), 0,
		money.New(1_000_000), money.Zero(),
		time.Now(), valueobject.PaymentStatusOnTime,
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "installment number must be positive")
}

func TestNewLoanPayment_NegativePrincipal(t *testing.T) {
	_, err := model.NewLoanPayment(
		uuid.New(), 1,
		money.New(-1), money.Zero(),
		time.Now(), valueobject.PaymentStatusOnTime,
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "principal portion cannot be negative")
}

func TestNewLoanPayment_ZeroTotal(t *testing.T) {
	_, err := model.NewLoanPayment(
		uuid.New(), 1,
		money.Zero(), money.Zero(),
		time.Now(), valueobject.PaymentStatusOnTime,
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment amount must be positive")
}

func TestNewLoanPayment_InterestOnly(t *testing.T) {
	payment, err := model.NewLoanPayment(
		uuid.New(), 3,
		money.Zero(), money.New(100_000),
		time.Now(), valueobject.PaymentStatusLate,
	)

	require.NoError(t, err)
	assert.True(t, payment.PrincipalPortion().IsZero())
	assert.True(t, payment.Status().Equal(valueobject.PaymentStatusLate))
}

func TestNewLoanPayment_MissingStatus(t *testing.T) {
	_, err := model.NewLoanPayment(
		uuid.New(), 1,
		money.New(1_000_000), money.Zero(),
		time.Now(), valueobject.PaymentStatus{},
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment status is required")
}
