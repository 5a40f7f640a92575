package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

var expenseDate = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func TestNewExpense_Valid(t *testing.T) {
	expense, err := model.NewExpense("office_rent", money.New(2_500_000), expenseDate)

	require.NoError(t, err)
	assert.Equal(t, "office_rent", expense.Category())
	assert.True(t, expense.Amount().Equal(money.New(2_500_000)))
	assert.True(t, expense.Status().Equal(valueobject.ExpenseStatusPending))
	assert.True(t, expense.IsOperating())
}

func TestNewExpense_ReservedCategory(t *testing.T) {
	_, err := model.NewExpense(model.CategoryLoanDisbursement, money.New(1_000_000), expenseDate)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved")
}

func TestNewExpense_NonPositiveAmount(t *testing.T) {
	_, err := model.NewExpense("office_rent", money.Zero(), expenseDate)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "expense amount must be positive")
}

func TestNewLoanDisbursement(t *testing.T) {
	expense, err := model.NewLoanDisbursement(money.New(10_000_000), expenseDate)

	require.NoError(t, err)
	assert.Equal(t, model.CategoryLoanDisbursement, expense.Category())
	assert.True(t, expense.Status().Equal(valueobject.ExpenseStatusApproved))
	assert.False(t, expense.IsOperating())
}

func TestExpense_Approve(t *testing.T) {
	pending, err := model.NewExpense("electricity", money.New(450_000), expenseDate)
	require.NoError(t, err)

	approved, err := pending.Approve()

	require.NoError(t, err)
	assert.True(t, approved.Status().Equal(valueobject.ExpenseStatusApproved))
	assert.True(t, pending.Status().Equal(valueobject.ExpenseStatusPending))
}

func TestExpense_Approve_Twice(t *testing.T) {
	pending, err := model.NewExpense("electricity", money.New(450_000), expenseDate)
	require.NoError(t, err)
	approved, err := pending.Approve()
	require.NoError(t, err)

	_, err = approved.Approve()

	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
}

func TestExpense_Reject(t *testing.T) {
	pending, err := model.NewExpense("misc", money.New(90_000), expenseDate)
	require.NoError(t, err)

	rejected, err := pending.Reject()

	require.NoError(t, err)
	assert.True(t, rejected.Status().Equal(valueobject.ExpenseStatusRejected))

	_, err = rejected.Approve()
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
}
