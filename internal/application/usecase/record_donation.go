package usecase

import (
	"context"
	"fmt"

	"github.com/kspdigital/koperasi-core/internal/application/dto"
	"github.com/kspdigital/koperasi-core/internal/domain/event"
	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

// RecordDonationUseCase books an incoming gift.
type RecordDonationUseCase struct {
	donations port.DonationRepository
	periods   port.FiscalPeriodRepository
	publisher port.EventPublisher
	cache     port.StatementCache
}

// NewRecordDonationUseCase wires dependencies.
func NewRecordDonationUseCase(
	donations port.DonationRepository,
	periods port.FiscalPeriodRepository,
	publisher port.EventPublisher,
	cache port.StatementCache,
) *RecordDonationUseCase {
	return &RecordDonationUseCase{
		donations: donations,
		periods:   periods,
		publisher: publisher,
		cache:     cache,
	}
}

// Execute records the donation.
func (uc *RecordDonationUseCase) Execute(
	ctx context.Context,
	req dto.RecordDonationRequest,
) (dto.DonationResponse, error) {
	// 1. The donation month must still be open for entry.
	closed, err := uc.periods.IsClosed(ctx, valueobject.PeriodOf(req.DonationDate))
	if err != nil {
		return dto.DonationResponse{}, fmt.Errorf("check fiscal period: %w", err)
	}
	if closed {
		return dto.DonationResponse{}, fmt.Errorf("record donation: %w", port.ErrPeriodClosed)
	}

	// 2. Create and persist.
	donation, err := model.NewDonation(req.Donor, money.FromDecimal(req.Amount), req.DonationDate)
	if err != nil {
		return dto.DonationResponse{}, fmt.Errorf("create donation: %w", err)
	}
	if err := uc.donations.Insert(ctx, donation); err != nil {
		return dto.DonationResponse{}, fmt.Errorf("insert donation: %w", err)
	}

	// 3. Publish events.
	recorded := event.NewDonationRecorded(
		donation.ID().String(), donation.Donor(), donation.Amount().Decimal(),
	)
	if err := uc.publisher.Publish(ctx, TopicLedger, recorded); err != nil {
		return dto.DonationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	// 4. Cached statements are stale once the book changed.
	_ = uc.cache.Bump(ctx)

	return donationResponse(donation), nil
}
