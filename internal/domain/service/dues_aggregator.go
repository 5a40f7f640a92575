package service

import (
	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

// ---------------------------------------------------------------------------
// Dues Aggregator Domain Service
// ---------------------------------------------------------------------------

// DuesTotals is the summed contribution split for a period range.
type DuesTotals struct {
	Mandatory money.Money
	Voluntary money.Money
}

// Total returns mandatory plus voluntary.
func (t DuesTotals) Total() money.Money {
	return t.Mandatory.Add(t.Voluntary)
}

// DuesAggregator sums dues rows over a fiscal period range. A member with no
// row for a month simply contributes zero; the aggregator never infers what
// should have been paid.
type DuesAggregator struct{}

// NewDuesAggregator creates an aggregator instance.
func NewDuesAggregator() *DuesAggregator {
	return &DuesAggregator{}
}

// TotalsFor sums the dues whose fiscal period falls inside [from, to],
// bounds inclusive.
func (a *DuesAggregator) TotalsFor(dues []model.Due, from, to valueobject.FiscalPeriod) DuesTotals {
	totals := DuesTotals{Mandatory: money.Zero(), Voluntary: money.Zero()}
	for _, d := range dues {
		if d.Period().Before(from) || to.Before(d.Period()) {
			continue
		}
		totals.Mandatory = totals.Mandatory.Add(d.MandatoryAmount())
		totals.Voluntary = totals.Voluntary.Add(d.VoluntaryAmount())
	}
	return totals
}
