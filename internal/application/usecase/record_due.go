package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kspdigital/koperasi-core/internal/application/dto"
	"github.com/kspdigital/koperasi-core/internal/domain/event"
	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

// RecordDueUseCase books one member's savings contribution for a fiscal
// month. The store enforces at most one row per member and month.
type RecordDueUseCase struct {
	dues      port.DueRepository
	members   port.MemberRepository
	periods   port.FiscalPeriodRepository
	publisher port.EventPublisher
	cache     port.StatementCache
}

// NewRecordDueUseCase wires dependencies.
func NewRecordDueUseCase(
	dues port.DueRepository,
	members port.MemberRepository,
	periods port.FiscalPeriodRepository,
	publisher port.EventPublisher,
	cache port.StatementCache,
) *RecordDueUseCase {
	return &RecordDueUseCase{
		dues:      dues,
		members:   members,
		periods:   periods,
		publisher: publisher,
		cache:     cache,
	}
}

// Execute records the contribution.
func (uc *RecordDueUseCase) Execute(
	ctx context.Context,
	req dto.RecordDueRequest,
) (dto.DueResponse, error) {
	now := time.Now().UTC()

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		return dto.DueResponse{}, fmt.Errorf("parse member ID: %w", err)
	}
	period, err := valueobject.NewFiscalPeriod(req.Year, time.Month(req.Month))
	if err != nil {
		return dto.DueResponse{}, fmt.Errorf("parse period: %w", err)
	}

	// 1. The month must still be open for entry.
	closed, err := uc.periods.IsClosed(ctx, period)
	if err != nil {
		return dto.DueResponse{}, fmt.Errorf("check fiscal period: %w", err)
	}
	if closed {
		return dto.DueResponse{}, fmt.Errorf("record due: %w", port.ErrPeriodClosed)
	}

	// 2. Only current members contribute.
	member, err := uc.members.FindByID(ctx, memberID)
	if err != nil {
		return dto.DueResponse{}, fmt.Errorf("find member: %w", err)
	}
	if !member.Active() {
		return dto.DueResponse{}, fmt.Errorf("member %s is no longer active", member.MemberCode())
	}

	// 3. Create and persist; the unique constraint rejects a second row for
	// the same member and month.
	due, err := model.NewDue(memberID, period,
		money.FromDecimal(req.MandatoryAmount), money.FromDecimal(req.VoluntaryAmount), now)
	if err != nil {
		return dto.DueResponse{}, fmt.Errorf("create due: %w", err)
	}
	if err := uc.dues.Insert(ctx, due); err != nil {
		return dto.DueResponse{}, fmt.Errorf("insert due: %w", err)
	}

	// 4. Publish events.
	recorded := event.NewDueRecorded(
		due.ID().String(), memberID.String(), period.String(),
		due.MandatoryAmount().Decimal(), due.VoluntaryAmount().Decimal(),
	)
	if err := uc.publisher.Publish(ctx, TopicLedger, recorded); err != nil {
		return dto.DueResponse{}, fmt.Errorf("publish events: %w", err)
	}

	// 5. Cached statements are stale once the book changed.
	_ = uc.cache.Bump(ctx)

	return dueResponse(due), nil
}
