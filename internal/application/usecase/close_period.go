package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/kspdigital/koperasi-core/internal/application/dto"
	"github.com/kspdigital/koperasi-core/internal/domain/event"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
)

// ClosePeriodUseCase marks a fiscal month closed for entry ("tutup buku").
// Closing is idempotent: repeating the call changes nothing and emits no
// second event. The transport layer restricts the operation to admins.
type ClosePeriodUseCase struct {
	periods   port.FiscalPeriodRepository
	publisher port.EventPublisher
}

// NewClosePeriodUseCase wires dependencies.
func NewClosePeriodUseCase(periods port.FiscalPeriodRepository, publisher port.EventPublisher) *ClosePeriodUseCase {
	return &ClosePeriodUseCase{periods: periods, publisher: publisher}
}

// Execute closes the fiscal month.
func (uc *ClosePeriodUseCase) Execute(
	ctx context.Context,
	req dto.ClosePeriodRequest,
) (dto.ClosePeriodResponse, error) {
	period, err := valueobject.NewFiscalPeriod(req.Year, time.Month(req.Month))
	if err != nil {
		return dto.ClosePeriodResponse{}, fmt.Errorf("parse period: %w", err)
	}

	// 1. An already-closed month is a no-op.
	closed, err := uc.periods.IsClosed(ctx, period)
	if err != nil {
		return dto.ClosePeriodResponse{}, fmt.Errorf("check fiscal period: %w", err)
	}
	if closed {
		return dto.ClosePeriodResponse{Period: period.String(), Closed: true}, nil
	}

	// 2. Close.
	if err := uc.periods.Close(ctx, period); err != nil {
		return dto.ClosePeriodResponse{}, fmt.Errorf("close period: %w", err)
	}

	// 3. Publish events.
	if err := uc.publisher.Publish(ctx, TopicLedger, event.NewPeriodClosed(period.String())); err != nil {
		return dto.ClosePeriodResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.ClosePeriodResponse{Period: period.String(), Closed: true}, nil
}
