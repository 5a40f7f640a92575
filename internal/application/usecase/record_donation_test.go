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
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
)

func TestRecordDonation_Execute(t *testing.T) {
	donationDate := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)

	t.Run("records a donation", func(t *testing.T) {
		donations := &mockDonationRepository{}
		publisher := &mockEventPublisher{}
		cache := &mockStatementCache{}

		uc := usecase.NewRecordDonationUseCase(donations, &mockFiscalPeriodRepository{}, publisher, cache)

		resp, err := uc.Execute(context.Background(), dto.RecordDonationRequest{
			Donor:        "Yayasan Sejahtera",
			Amount:       decimal.NewFromInt(500_000),
			DonationDate: donationDate,
		})

		require.NoError(t, err)
		assert.Equal(t, "Yayasan Sejahtera", resp.Donor)
		assert.True(t, decimal.NewFromInt(500_000).Equal(resp.Amount))

		require.Len(t, donations.inserted, 1)
		assert.Equal(t, []string{usecase.TopicLedger}, publisher.topics)
		require.Len(t, publisher.published, 1)
		_, ok := publisher.published[0].(event.DonationRecorded)
		require.True(t, ok)
		assert.Equal(t, 1, cache.bumps)
	})

	t.Run("fails when the donation month is closed", func(t *testing.T) {
		periods := &mockFiscalPeriodRepository{
			isClosedFunc: func(ctx context.Context, period valueobject.FiscalPeriod) (bool, error) {
				return true, nil
			},
		}
		donations := &mockDonationRepository{}

		uc := usecase.NewRecordDonationUseCase(donations, periods, &mockEventPublisher{}, &mockStatementCache{})

		_, err := uc.Execute(context.Background(), dto.RecordDonationRequest{
			Donor:        "Yayasan Sejahtera",
			Amount:       decimal.NewFromInt(500_000),
			DonationDate: donationDate,
		})

		require.ErrorIs(t, err, port.ErrPeriodClosed)
		assert.Empty(t, donations.inserted)
	})

	t.Run("fails without a donor", func(t *testing.T) {
		uc := usecase.NewRecordDonationUseCase(&mockDonationRepository{}, &mockFiscalPeriodRepository{}, &mockEventPublisher{}, &mockStatementCache{})

		_, err := uc.Execute(context.Background(), dto.RecordDonationRequest{
			Amount:       decimal.NewFromInt(500_000),
			DonationDate: donationDate,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "donor is required")
	})
}
