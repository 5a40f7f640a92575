package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kspdigital/koperasi-core/internal/domain/event"
	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

var testNow = time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

func newPendingLoan(t *testing.T) model.Loan {
	t.Helper()
	loan, err := model.NewLoan(
		uuid.New(),
		money.New(10_000_000),
		decimal.NewFromInt(12),
		10,
		testNow,
	)
	require.NoError(t, err)
	return loan
}

func newActiveLoan(t *testing.T) model.Loan {
	t.Helper()
	loan, err := newPendingLoan(t).Approve(
		money.New(1_000_000),
		money.New(11_000_000),
		testNow,
		testNow,
	)
	require.NoError(t, err)
	return loan
}

func paymentFor(t *testing.T, loan model.Loan, installment int, principal int64) model.LoanPayment {
	t.Helper()
	payment, err := model.NewLoanPayment(
		loan.ID(),
		installment,
		money.New(principal),
		money.New(100_000),
		testNow.AddDate(0, installment, 0),
		valueobject.PaymentStatusOnTime,
	)
	require.NoError(t, err)
	return payment
}

func TestNewLoan_Valid(t *testing.T) {
	memberID := uuid.New()

	loan, err := model.NewLoan(memberID, money.New(10_000_000), decimal.NewFromInt(12), 10, testNow)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, loan.ID())
	assert.Equal(t, memberID, loan.MemberID())
	assert.True(t, loan.Status().Equal(valueobject.LoanStatusPending))
	assert.True(t, loan.Principal().Equal(money.New(10_000_000)))
	assert.True(t, loan.OutstandingBalance().IsZero())
	assert.True(t, loan.MonthlyInstallment().IsZero())
	assert.Equal(t, 10, loan.TenorMonths())
	assert.Equal(t, 1, loan.Version())
	require.Len(t, loan.DomainEvents(), 1)
	assert.IsType(t, event.LoanRegistered{}, loan.DomainEvents()[0])
}

func TestNewLoan_NilMember(t *testing.T) {
	_, err := model.NewLoan(uuid.Nil, money.New(10_000_000), decimal.NewFromInt(12), 10, testNow)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "member ID is required")
}

func TestNewLoan_NonPositivePrincipal(t *testing.T) {
	_, err := model.NewLoan(uuid.New(), money.Zero(), decimal.NewFromInt(12), 10, testNow)

	require.Error(t, err)
	var termsErr model.InvalidLoanTermsError
	require.True(t, errors.As(err, &termsErr))
	assert.Equal(t, "principal", termsErr.Field)
}

func TestNewLoan_NegativeRate(t *testing.T) {
	_, err := model.NewLoan(uuid.New(), money.New(10_000_000), decimal.NewFromInt(-1), 10, testNow)

	require.Error(t, err)
	var termsErr model.InvalidLoanTermsError
	require.True(t, errors.As(err, &termsErr))
	assert.Equal(t, "annual_rate_percent", termsErr.Field)
}

func TestNewLoan_ZeroTenor(t *testing.T) {
	_, err := model.NewLoan(uuid.New(), money.New(10_000_000), decimal.NewFromInt(12), 0, testNow)

	require.Error(t, err)
	var termsErr model.InvalidLoanTermsError
	require.True(t, errors.As(err, &termsErr))
	assert.Equal(t, "tenor_months", termsErr.Field)
}

func TestLoan_Approve(t *testing.T) {
	pending := newPendingLoan(t)

	active, err := pending.Approve(money.New(1_000_000), money.New(11_000_000), testNow, testNow)

	require.NoError(t, err)
	assert.True(t, active.Status().Equal(valueobject.LoanStatusActive))
	assert.True(t, active.OutstandingBalance().Equal(money.New(10_000_000)))
	assert.True(t, active.MonthlyInstallment().Equal(money.New(1_000_000)))
	assert.True(t, active.TotalWithInterest().Equal(money.New(11_000_000)))
	assert.Equal(t, testNow, active.OriginationDate())
	require.Len(t, active.DomainEvents(), 2)
	assert.IsType(t, event.LoanApproved{}, active.DomainEvents()[1])

	// Source copy is untouched.
	assert.True(t, pending.Status().Equal(valueobject.LoanStatusPending))
	assert.True(t, pending.OutstandingBalance().IsZero())
}

func TestLoan_Approve_AlreadyActive(t *testing.T) {
	active := newActiveLoan(t)

	_, err := active.Approve(money.New(1_000_000), money.New(11_000_000), testNow, testNow)

	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
}

func TestLoan_Approve_ZeroInstallment(t *testing.T) {
	pending := newPendingLoan(t)

	_, err := pending.Approve(money.Zero(), money.New(11_000_000), testNow, testNow)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "monthly installment must be positive")
}

func TestLoan_Reject(t *testing.T) {
	pending := newPendingLoan(t)

	rejected, err := pending.Reject("insufficient savings history", testNow)

	require.NoError(t, err)
	assert.True(t, rejected.Status().Equal(valueobject.LoanStatusRejected))
	require.Len(t, rejected.DomainEvents(), 2)
	assert.IsType(t, event.LoanRejected{}, rejected.DomainEvents()[1])
}

func TestLoan_Reject_EmptyReason(t *testing.T) {
	pending := newPendingLoan(t)

	_, err := pending.Reject("", testNow)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejection reason is required")
}

func TestLoan_Reject_NotPending(t *testing.T) {
	active := newActiveLoan(t)

	_, err := active.Reject("too late", testNow)

	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
}

func TestLoan_RecordPayment(t *testing.T) {
	active := newActiveLoan(t)
	payment := paymentFor(t, active, 1, 1_000_000)

	updated, err := active.RecordPayment(payment, money.New(9_000_000), testNow)

	require.NoError(t, err)
	assert.True(t, updated.OutstandingBalance().Equal(money.New(9_000_000)))
	assert.True(t, updated.Status().Equal(valueobject.LoanStatusActive))
	events := updated.DomainEvents()
	assert.IsType(t, event.PaymentRecorded{}, events[len(events)-1])
}

func TestLoan_RecordPayment_ReachesZero(t *testing.T) {
	active := newActiveLoan(t)
	payment := paymentFor(t, active, 10, 10_000_000)

	paidOff, err := active.RecordPayment(payment, money.Zero(), testNow)

	require.NoError(t, err)
	assert.True(t, paidOff.Status().Equal(valueobject.LoanStatusPaidOff))
	events := paidOff.DomainEvents()
	require.GreaterOrEqual(t, len(events), 2)
	assert.IsType(t, event.LoanPaidOff{}, events[len(events)-1])
}

func TestLoan_RecordPayment_OnPendingLoan(t *testing.T) {
	pending := newPendingLoan(t)
	payment := paymentFor(t, pending, 1, 1_000_000)

	_, err := pending.RecordPayment(payment, money.New(9_000_000), testNow)

	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
}

func TestLoan_RemovePayment_ReopensPaidOff(t *testing.T) {
	active := newActiveLoan(t)
	payment := paymentFor(t, active, 10, 10_000_000)
	paidOff, err := active.RecordPayment(payment, money.Zero(), testNow)
	require.NoError(t, err)

	reopened, err := paidOff.RemovePayment(payment, money.New(10_000_000), testNow)

	require.NoError(t, err)
	assert.True(t, reopened.Status().Equal(valueobject.LoanStatusActive))
	assert.True(t, reopened.OutstandingBalance().Equal(money.New(10_000_000)))
	events := reopened.DomainEvents()
	assert.IsType(t, event.PaymentReversed{}, events[len(events)-1])
}

func TestLoan_RemovePayment_OnRejectedLoan(t *testing.T) {
	rejected, err := newPendingLoan(t).Reject("no", testNow)
	require.NoError(t, err)
	payment := paymentFor(t, rejected, 1, 1_000_000)

	_, err = rejected.RemovePayment(payment, money.New(1_000_000), testNow)

	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
}

func TestLoan_InstallmentDueDate(t *testing.T) {
	active := newActiveLoan(t)

	assert.Equal(t, testNow.AddDate(0, 1, 0), active.InstallmentDueDate(1))
	assert.Equal(t, testNow.AddDate(0, 10, 0), active.InstallmentDueDate(10))
}

func TestLoan_ClearEvents(t *testing.T) {
	active := newActiveLoan(t)
	require.NotEmpty(t, active.DomainEvents())

	cleared := active.ClearEvents()

	assert.Empty(t, cleared.DomainEvents())
	assert.NotEmpty(t, active.DomainEvents())
}

func TestReconstructLoan(t *testing.T) {
	id := uuid.New()
	memberID := uuid.New()

	loan := model.ReconstructLoan(
		id, memberID,
		money.New(10_000_000), decimal.NewFromInt(12), 10,
		money.New(1_000_000), money.New(11_000_000),
		testNow,
		valueobject.LoanStatusActive,
		money.New(7_000_000),
		4,
		testNow, testNow,
	)

	assert.Equal(t, id, loan.ID())
	assert.True(t, loan.OutstandingBalance().Equal(money.New(7_000_000)))
	assert.Equal(t, 4, loan.Version())
	assert.Empty(t, loan.DomainEvents())
}
