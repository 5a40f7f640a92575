// Package money provides fixed-precision arithmetic for rupiah amounts held
// in the smallest currency unit. Every sum, rate multiplication, and
// comparison in the bookkeeping engine goes through this type; raw floats are
// never used for amounts.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents an immutable rupiah amount in whole units.
// The zero value is zero rupiah and ready to use.
type Money struct {
	amount decimal.Decimal
}

// New creates a Money value from a whole-unit amount.
func New(units int64) Money {
	return Money{amount: decimal.NewFromInt(units)}
}

// Zero returns the zero amount.
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// FromDecimal creates a Money value from a decimal amount, rounding half-up
// to the nearest unit.
func FromDecimal(d decimal.Decimal) Money {
	return Money{amount: d.Round(0)}
}

// FromString parses a whole-unit amount string into a Money value.
func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{amount: d.Round(0)}, nil
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Int64 returns the amount as a whole-unit integer.
func (m Money) Int64() int64 {
	return m.amount.IntPart()
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive returns true if the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative returns true if the amount is strictly less than zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Add returns the sum of m and other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of m minus other.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulRate returns m multiplied by the given rate, rounded half-up to the
// nearest unit. Used for interest computations where the rate is a decimal
// fraction such as 0.12.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate).Round(0)}
}

// MulFrac multiplies m by num and divides by den in a single step, rounding
// half-up once at the end. Amounts stay exact until the final division, so
// chained percentage-of-tenor computations do not accumulate drift.
// den must be nonzero.
func (m Money) MulFrac(num, den decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(num).DivRound(den, 0)}
}

// Div returns m divided by n, rounded half-up to the nearest unit.
// n must be nonzero.
func (m Money) Div(n int64) Money {
	return Money{amount: m.amount.DivRound(decimal.NewFromInt(n), 0)}
}

// Neg returns m with the sign of the amount flipped.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg()}
}

// Abs returns m with the absolute value of the amount.
func (m Money) Abs() Money {
	return Money{amount: m.amount.Abs()}
}

// CapZero returns m if it is non-negative, otherwise zero. Balances that
// could over-reduce through overpayment are clamped with this.
func (m Money) CapZero() Money {
	if m.amount.IsNegative() {
		return Zero()
	}
	return m
}

// Cmp compares m against other: -1 if less, 0 if equal, +1 if greater.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// Equal returns true if m and other hold the same amount.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// LessThan returns true if m is strictly less than other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// GreaterThan returns true if m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// WithinUnit returns true if m and other differ by at most one unit.
// Rounding tolerance checks go through this.
func (m Money) WithinUnit(other Money) bool {
	return m.amount.Sub(other.amount).Abs().LessThanOrEqual(decimal.NewFromInt(1))
}

// String formats the amount as a whole-unit figure, for example "1000000".
func (m Money) String() string {
	return m.amount.StringFixed(0)
}
