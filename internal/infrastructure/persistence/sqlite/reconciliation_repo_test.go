package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
	"github.com/kspdigital/koperasi-core/internal/infrastructure/persistence/sqlite"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

func TestReconciliationRepo_FetchPeriodData(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	loan := seedActiveLoan(t, db, "A-0040")
	departed := seedMember(t, db, "A-0041", false)

	payments := sqlite.NewPaymentRepo(db)
	janPayment, err := model.NewLoanPayment(loan.ID(), 1,
		money.New(1_000_000), money.New(100_000),
		time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
		valueobject.PaymentStatusOnTime)
	require.NoError(t, err)
	require.NoError(t, payments.Insert(ctx, janPayment))

	febPayment, err := model.NewLoanPayment(loan.ID(), 2,
		money.New(1_000_000), money.New(100_000),
		time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC),
		valueobject.PaymentStatusOnTime)
	require.NoError(t, err)
	require.NoError(t, payments.Insert(ctx, febPayment))

	dues := sqlite.NewDueRepo(db)
	require.NoError(t, dues.Insert(ctx, dueFor(t, departed, 2025, time.January)))
	require.NoError(t, dues.Insert(ctx, dueFor(t, departed, 2025, time.March)))

	expenses := sqlite.NewExpenseRepo(db)
	approvedJan, err := model.NewExpense("office_rent", money.New(200_000),
		time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	approvedJan, err = approvedJan.Approve()
	require.NoError(t, err)
	require.NoError(t, expenses.Insert(ctx, approvedJan))

	pendingJan, err := model.NewExpense("utilities", money.New(50_000),
		time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, expenses.Insert(ctx, pendingJan))

	donations := sqlite.NewDonationRepo(db)
	janDonation, err := model.NewDonation("Yayasan Amanah", money.New(500_000),
		time.Date(2025, time.January, 25, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, donations.Insert(ctx, janDonation))

	febDonation, err := model.NewDonation("Baitul Maal", money.New(250_000),
		time.Date(2025, time.February, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, donations.Insert(ctx, febDonation))

	end := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	data, err := sqlite.NewReconciliationRepo(db).FetchPeriodData(ctx, end)
	require.NoError(t, err)

	require.Len(t, data.Loans, 1)
	assert.Equal(t, loan.ID(), data.Loans[0].ID())

	require.Len(t, data.Payments, 1)
	assert.Equal(t, janPayment.ID(), data.Payments[0].ID())

	// The dues filter is inclusive on the end date; the reconciler applies
	// the exact cutoff. March stays out.
	require.Len(t, data.Dues, 1)
	assert.Equal(t, "2025-01", data.Dues[0].Period().String())

	require.Len(t, data.Expenses, 1)
	assert.Equal(t, approvedJan.ID(), data.Expenses[0].ID())

	require.Len(t, data.Donations, 1)
	assert.Equal(t, janDonation.ID(), data.Donations[0].ID())

	require.Len(t, data.Members, 2)
}

func TestReconciliationRepo_EmptyBook(t *testing.T) {
	db := openTestDB(t)

	end := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	data, err := sqlite.NewReconciliationRepo(db).FetchPeriodData(context.Background(), end)
	require.NoError(t, err)

	assert.Empty(t, data.Loans)
	assert.Empty(t, data.Payments)
	assert.Empty(t, data.Dues)
	assert.Empty(t, data.Expenses)
	assert.Empty(t, data.Donations)
	assert.Empty(t, data.Members)
}
