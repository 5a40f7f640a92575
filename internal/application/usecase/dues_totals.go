package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kspdigital/koperasi-core/internal/application/dto"
	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/service"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
)

// DuesTotalsUseCase sums savings contributions over a fiscal month range,
// for one member or the whole cooperative.
type DuesTotalsUseCase struct {
	dues       port.DueRepository
	aggregator *service.DuesAggregator
}

// NewDuesTotalsUseCase wires dependencies.
func NewDuesTotalsUseCase(dues port.DueRepository, aggregator *service.DuesAggregator) *DuesTotalsUseCase {
	return &DuesTotalsUseCase{dues: dues, aggregator: aggregator}
}

// Execute sums dues over [from, to], bounds inclusive.
func (uc *DuesTotalsUseCase) Execute(
	ctx context.Context,
	req dto.DuesTotalsRequest,
) (dto.DuesTotalsResponse, error) {
	from, err := valueobject.NewFiscalPeriod(req.FromYear, time.Month(req.FromMonth))
	if err != nil {
		return dto.DuesTotalsResponse{}, fmt.Errorf("parse from period: %w", err)
	}
	to, err := valueobject.NewFiscalPeriod(req.ToYear, time.Month(req.ToMonth))
	if err != nil {
		return dto.DuesTotalsResponse{}, fmt.Errorf("parse to period: %w", err)
	}
	if to.Before(from) {
		return dto.DuesTotalsResponse{}, fmt.Errorf("period %s precedes %s", to, from)
	}

	var rows []model.Due
	if req.MemberID == "" {
		rows, err = uc.dues.ListForRange(ctx, from, to)
		if err != nil {
			return dto.DuesTotalsResponse{}, fmt.Errorf("list dues: %w", err)
		}
	} else {
		memberID, err := uuid.Parse(req.MemberID)
		if err != nil {
			return dto.DuesTotalsResponse{}, fmt.Errorf("parse member ID: %w", err)
		}
		rows, err = uc.dues.ListForMemberRange(ctx, memberID, from, to)
		if err != nil {
			return dto.DuesTotalsResponse{}, fmt.Errorf("list member dues: %w", err)
		}
	}

	totals := uc.aggregator.TotalsFor(rows, from, to)

	return dto.DuesTotalsResponse{
		MemberID:  req.MemberID,
		From:      from.String(),
		To:        to.String(),
		Mandatory: totals.Mandatory.Decimal(),
		Voluntary: totals.Voluntary.Decimal(),
		Total:     totals.Total().Decimal(),
	}, nil
}
