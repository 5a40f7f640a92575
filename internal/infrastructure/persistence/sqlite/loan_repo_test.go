package sqlite_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/infrastructure/persistence/sqlite"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

func pendingLoan(t *testing.T, memberID uuid.UUID) model.Loan {
	t.Helper()
	loan, err := model.NewLoan(memberID, money.New(10_000_000), decimal.NewFromInt(12), 10, testNow)
	require.NoError(t, err)
	return loan
}

func approvedLoan(t *testing.T, memberID uuid.UUID) model.Loan {
	t.Helper()
	loan, err := pendingLoan(t, memberID).Approve(
		money.New(1_000_000), money.New(11_000_000), testNow, testNow,
	)
	require.NoError(t, err)
	return loan
}

func TestLoanRepo_SaveRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewLoanRepo(db)
	ctx := context.Background()

	memberID := seedMember(t, db, "A-0001", true)
	loan := pendingLoan(t, memberID)
	require.NoError(t, repo.Save(ctx, loan))

	got, err := repo.FindByID(ctx, loan.ID())
	require.NoError(t, err)
	assert.Equal(t, loan.ID(), got.ID())
	assert.Equal(t, memberID, got.MemberID())
	assert.True(t, got.Principal().Equal(money.New(10_000_000)))
	assert.True(t, got.AnnualRatePercent().Equal(decimal.NewFromInt(12)))
	assert.Equal(t, 10, got.TenorMonths())
	assert.Equal(t, "pending", got.Status().String())
	assert.True(t, got.OriginationDate().IsZero(), "pending loan has no origination date")
	assert.Equal(t, 1, got.Version())
	assert.True(t, got.CreatedAt().Equal(testNow))
}

func TestLoanRepo_SaveUpdatesAndBumpsVersion(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewLoanRepo(db)
	ctx := context.Background()

	memberID := seedMember(t, db, "A-0002", true)
	loan := pendingLoan(t, memberID)
	require.NoError(t, repo.Save(ctx, loan))

	active, err := loan.Approve(money.New(1_000_000), money.New(11_000_000), testNow, testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, active))

	got, err := repo.FindByID(ctx, loan.ID())
	require.NoError(t, err)
	assert.Equal(t, "active", got.Status().String())
	assert.True(t, got.MonthlyInstallment().Equal(money.New(1_000_000)))
	assert.True(t, got.OutstandingBalance().Equal(money.New(10_000_000)))
	assert.True(t, got.OriginationDate().Equal(testNow))
	assert.Equal(t, 2, got.Version())
}

func TestLoanRepo_SaveStaleVersionConflicts(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewLoanRepo(db)
	ctx := context.Background()

	memberID := seedMember(t, db, "A-0003", true)
	loan := pendingLoan(t, memberID)
	require.NoError(t, repo.Save(ctx, loan))

	active, err := loan.Approve(money.New(1_000_000), money.New(11_000_000), testNow, testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, active))

	// The first aggregate still carries version 1; the row moved on.
	err = repo.Save(ctx, active)
	require.ErrorIs(t, err, port.ErrVersionConflict)
}

func TestLoanRepo_FindByIDNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewLoanRepo(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, port.ErrLoanNotFound)
}

func TestLoanRepo_ListActiveFiltersStatus(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewLoanRepo(db)
	ctx := context.Background()

	memberID := seedMember(t, db, "A-0004", true)
	require.NoError(t, repo.Save(ctx, pendingLoan(t, memberID)))
	active := approvedLoan(t, memberID)
	require.NoError(t, repo.Save(ctx, active))

	loans, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, active.ID(), loans[0].ID())
}
