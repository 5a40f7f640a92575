package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

// ---------------------------------------------------------------------------
// Due entity
// ---------------------------------------------------------------------------

// Due is one member's savings contribution for one fiscal period. The store
// enforces at most one row per member and period.
type Due struct {
	id              uuid.UUID
	memberID        uuid.UUID
	period          valueobject.FiscalPeriod
	mandatoryAmount money.Money
	voluntaryAmount money.Money
	recordedAt      time.Time
}

// NewDue creates a dues entry for a member and period.
func NewDue(
	memberID uuid.UUID,
	period valueobject.FiscalPeriod,
	mandatoryAmount, voluntaryAmount money.Money,
	now time.Time,
) (Due, error) {
	if memberID == uuid.Nil {
		return Due{}, errors.New("member ID is required")
	}
	if period.IsZero() {
		return Due{}, errors.New("fiscal period is required")
	}
	if mandatoryAmount.IsNegative() {
		return Due{}, errors.New("mandatory amount cannot be negative")
	}
	if voluntaryAmount.IsNegative() {
		return Due{}, errors.New("voluntary amount cannot be negative")
	}
	if mandatoryAmount.Add(voluntaryAmount).IsZero() {
		return Due{}, errors.New("dues amount must be positive")
	}

	return Due{
		id:              uuid.New(),
		memberID:        memberID,
		period:          period,
		mandatoryAmount: mandatoryAmount,
		voluntaryAmount: voluntaryAmount,
		recordedAt:      now,
	}, nil
}

// ReconstructDue rebuilds a Due from persistence.
func ReconstructDue(
	id, memberID uuid.UUID,
	period valueobject.FiscalPeriod,
	mandatoryAmount, voluntaryAmount money.Money,
	recordedAt time.Time,
) Due {
	return Due{
		id:              id,
		memberID:        memberID,
		period:          period,
		mandatoryAmount: mandatoryAmount,
		voluntaryAmount: voluntaryAmount,
		recordedAt:      recordedAt,
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (d Due) ID() uuid.UUID                    { return d.id }
func (d Due) MemberID() uuid.UUID              { return d.memberID }
func (d Due) Period() valueobject.FiscalPeriod { return d.period }
func (d Due) MandatoryAmount() money.Money     { return d.mandatoryAmount }
func (d Due) VoluntaryAmount() money.Money     { return d.voluntaryAmount }
func (d Due) RecordedAt() time.Time            { return d.recordedAt }

// Total returns mandatory plus voluntary contributions.
func (d Due) Total() money.Money {
	return d.mandatoryAmount.Add(d.voluntaryAmount)
}
