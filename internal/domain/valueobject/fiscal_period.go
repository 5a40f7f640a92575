package valueobject

import (
	"fmt"
	"time"
)

// ---------------------------------------------------------------------------
// FiscalPeriod – immutable value object
// ---------------------------------------------------------------------------

// FiscalPeriod is one bookkeeping month of the cooperative. Dues are
// recorded against a period, and period close ("tutup buku") freezes all
// entries dated inside it.
type FiscalPeriod struct {
	year  int
	month time.Month
}

// NewFiscalPeriod creates a FiscalPeriod from a calendar year and month.
func NewFiscalPeriod(year int, month time.Month) (FiscalPeriod, error) {
	if year < 1900 || year > 9999 {
		return FiscalPeriod{}, fmt.Errorf("invalid fiscal year: %d", year)
	}
	if month < time.January || month > time.December {
		return FiscalPeriod{}, fmt.Errorf("invalid fiscal month: %d", month)
	}
	return FiscalPeriod{year: year, month: month}, nil
}

// PeriodOf returns the fiscal period containing the given instant.
func PeriodOf(t time.Time) FiscalPeriod {
	return FiscalPeriod{year: t.Year(), month: t.Month()}
}

// Year returns the calendar year.
func (p FiscalPeriod) Year() int { return p.year }

// Month returns the calendar month.
func (p FiscalPeriod) Month() time.Month { return p.month }

// Start returns the first instant of the period in UTC.
func (p FiscalPeriod) Start() time.Time {
	return time.Date(p.year, p.month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the exclusive end of the period, i.e. the first instant of the
// following month.
func (p FiscalPeriod) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

// Contains reports whether t falls inside the period.
func (p FiscalPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start()) && t.Before(p.End())
}

// Next returns the following fiscal period.
func (p FiscalPeriod) Next() FiscalPeriod {
	return PeriodOf(p.Start().AddDate(0, 1, 0))
}

// Prev returns the preceding fiscal period.
func (p FiscalPeriod) Prev() FiscalPeriod {
	return PeriodOf(p.Start().AddDate(0, -1, 0))
}

// Before reports whether p starts before other.
func (p FiscalPeriod) Before(other FiscalPeriod) bool {
	if p.year != other.year {
		return p.year < other.year
	}
	return p.month < other.month
}

// Equal returns true when both periods cover the same month.
func (p FiscalPeriod) Equal(other FiscalPeriod) bool {
	return p.year == other.year && p.month == other.month
}

// IsZero returns true if the period has not been initialised.
func (p FiscalPeriod) IsZero() bool { return p.year == 0 }

// String returns the period formatted as YYYY-MM.
func (p FiscalPeriod) String() string {
	return fmt.Sprintf("%04d-%02d", p.year, int(p.month))
}

// ---------------------------------------------------------------------------
// PeriodStatus – immutable value object
// ---------------------------------------------------------------------------

// PeriodStatus marks a fiscal period open or closed for entry.
type PeriodStatus struct {
	value string
}

const (
	periodStatusOpen   = "open"
	periodStatusClosed = "closed"
)

var (
	PeriodStatusOpen   = PeriodStatus{value: periodStatusOpen}
	PeriodStatusClosed = PeriodStatus{value: periodStatusClosed}
)

var validPeriodStatuses = map[string]PeriodStatus{
	periodStatusOpen:   PeriodStatusOpen,
	periodStatusClosed: PeriodStatusClosed,
}

// NewPeriodStatus creates a PeriodStatus from a raw string.
func NewPeriodStatus(s string) (PeriodStatus, error) {
	v, ok := validPeriodStatuses[s]
	if !ok {
		return PeriodStatus{}, fmt.Errorf("invalid period status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s PeriodStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s PeriodStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s PeriodStatus) Equal(other PeriodStatus) bool { return s.value == other.value }
