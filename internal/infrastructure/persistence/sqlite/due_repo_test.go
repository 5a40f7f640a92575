package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
	"github.com/kspdigital/koperasi-core/internal/infrastructure/persistence/sqlite"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

func dueFor(t *testing.T, memberID uuid.UUID, year int, month time.Month) model.Due {
	t.Helper()
	period, err := valueobject.NewFiscalPeriod(year, month)
	require.NoError(t, err)
	due, err := model.NewDue(memberID, period, money.New(25_000), money.New(10_000), testNow)
	require.NoError(t, err)
	return due
}

func TestDueRepo_InsertRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewDueRepo(db)
	ctx := context.Background()

	memberID := seedMember(t, db, "A-0010", true)
	due := dueFor(t, memberID, 2025, time.January)
	require.NoError(t, repo.Insert(ctx, due))

	period := due.Period()
	dues, err := repo.ListForRange(ctx, period, period)
	require.NoError(t, err)
	require.Len(t, dues, 1)
	assert.Equal(t, due.ID(), dues[0].ID())
	assert.Equal(t, memberID, dues[0].MemberID())
	assert.Equal(t, "2025-01", dues[0].Period().String())
	assert.True(t, dues[0].MandatoryAmount().Equal(money.New(25_000)))
	assert.True(t, dues[0].VoluntaryAmount().Equal(money.New(10_000)))
}

func TestDueRepo_DuplicateMonthViolatesConstraint(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewDueRepo(db)
	ctx := context.Background()

	memberID := seedMember(t, db, "A-0011", true)
	require.NoError(t, repo.Insert(ctx, dueFor(t, memberID, 2025, time.March)))

	err := repo.Insert(ctx, dueFor(t, memberID, 2025, time.March))
	var violation port.ConstraintViolationError
	require.ErrorAs(t, err, &violation)
}

func TestDueRepo_ListForRangeSpansYearBoundary(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewDueRepo(db)
	ctx := context.Background()

	memberID := seedMember(t, db, "A-0012", true)
	require.NoError(t, repo.Insert(ctx, dueFor(t, memberID, 2024, time.December)))
	require.NoError(t, repo.Insert(ctx, dueFor(t, memberID, 2025, time.January)))
	require.NoError(t, repo.Insert(ctx, dueFor(t, memberID, 2025, time.February)))

	from, err := valueobject.NewFiscalPeriod(2024, time.December)
	require.NoError(t, err)
	to, err := valueobject.NewFiscalPeriod(2025, time.January)
	require.NoError(t, err)

	dues, err := repo.ListForRange(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, dues, 2)
	assert.Equal(t, "2024-12", dues[0].Period().String())
	assert.Equal(t, "2025-01", dues[1].Period().String())
}

func TestDueRepo_ListForMemberRangeFiltersMember(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewDueRepo(db)
	ctx := context.Background()

	first := seedMember(t, db, "A-0013", true)
	second := seedMember(t, db, "A-0014", true)
	require.NoError(t, repo.Insert(ctx, dueFor(t, first, 2025, time.January)))
	require.NoError(t, repo.Insert(ctx, dueFor(t, second, 2025, time.January)))

	period, err := valueobject.NewFiscalPeriod(2025, time.January)
	require.NoError(t, err)

	dues, err := repo.ListForMemberRange(ctx, first, period, period)
	require.NoError(t, err)
	require.Len(t, dues, 1)
	assert.Equal(t, first, dues[0].MemberID())
}
