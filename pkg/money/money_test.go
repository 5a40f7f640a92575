package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

func TestNew(t *testing.T) {
	tests := []struct {
		units int64
		want  string
	}{
		{0, "0"},
		{1, "1"},
		{1000000, "1000000"},
		{-500, "-500"},
	}
	for _, tt := range tests {
		m := New(tt.units)
		if m.String() != tt.want {
			t.Errorf("New(%d).String() = %q, want %q", tt.units, m.String(), tt.want)
		}
		if m.Int64() != tt.units {
			t.Errorf("New(%d).Int64() = %d, want %d", tt.units, m.Int64(), tt.units)
		}
	}
}

func TestZero(t *testing.T) {
	z := Zero()
	if !z.IsZero() {
		t.Errorf("Zero().IsZero() = false, want true")
	}
	var def Money
	if !def.Equal(z) {
		t.Errorf("zero value Money != Zero()")
	}
}

func TestFromDecimal_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"100.4", "100"},
		{"100.5", "101"},
		{"100.6", "101"},
		{"0.49", "0"},
		{"0.5", "1"},
	}
	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.in)
		if err != nil {
			t.Fatalf("decimal.NewFromString(%q): %v", tt.in, err)
		}
		m := FromDecimal(d)
		if m.String() != tt.want {
			t.Errorf("FromDecimal(%s).String() = %q, want %q", tt.in, m.String(), tt.want)
		}
	}
}

func TestFromString(t *testing.T) {
	m, err := FromString("2500000")
	if err != nil {
		t.Fatalf("FromString unexpected error: %v", err)
	}
	if m.Int64() != 2500000 {
		t.Errorf("FromString(\"2500000\").Int64() = %d, want 2500000", m.Int64())
	}

	if _, err := FromString("not-a-number"); err == nil {
		t.Error("FromString(\"not-a-number\") expected error, got nil")
	}
}

// ---------------------------------------------------------------------------
// Arithmetic
// ---------------------------------------------------------------------------

func TestAddSub(t *testing.T) {
	a := New(1000)
	b := New(250)

	if got := a.Add(b); got.Int64() != 1250 {
		t.Errorf("Add = %s, want 1250", got)
	}
	if got := a.Sub(b); got.Int64() != 750 {
		t.Errorf("Sub = %s, want 750", got)
	}
	if got := b.Sub(a); got.Int64() != -750 {
		t.Errorf("Sub (negative result) = %s, want -750", got)
	}
	// Originals untouched.
	if a.Int64() != 1000 || b.Int64() != 250 {
		t.Errorf("operands mutated: a=%s b=%s", a, b)
	}
}

func TestMulRate_HalfUp(t *testing.T) {
	tests := []struct {
		units int64
		rate  string
		want  int64
	}{
		{10000000, "0.12", 1200000},
		{1000, "0.0005", 1},  // 0.5 rounds up
		{1000, "0.00049", 0}, // 0.49 rounds down
		{333, "0.1", 33},     // 33.3 rounds down
		{335, "0.1", 34},     // 33.5 rounds up
	}
	for _, tt := range tests {
		rate, err := decimal.NewFromString(tt.rate)
		if err != nil {
			t.Fatalf("bad rate %q: %v", tt.rate, err)
		}
		got := New(tt.units).MulRate(rate)
		if got.Int64() != tt.want {
			t.Errorf("New(%d).MulRate(%s) = %s, want %d", tt.units, tt.rate, got, tt.want)
		}
	}
}

func TestMulFrac_SingleRounding(t *testing.T) {
	// 10,000,000 x 12 x 10 / 1200 = 1,000,000 exactly.
	num := decimal.NewFromInt(12).Mul(decimal.NewFromInt(10))
	den := decimal.NewFromInt(1200)
	got := New(10000000).MulFrac(num, den)
	if got.Int64() != 1000000 {
		t.Errorf("MulFrac = %s, want 1000000", got)
	}

	// 1000 x 1 / 3 = 333.33... rounds to 333.
	got = New(1000).MulFrac(decimal.NewFromInt(1), decimal.NewFromInt(3))
	if got.Int64() != 333 {
		t.Errorf("MulFrac thirds = %s, want 333", got)
	}

	// 1000 x 1 / 16 = 62.5 rounds up to 63.
	got = New(1000).MulFrac(decimal.NewFromInt(1), decimal.NewFromInt(16))
	if got.Int64() != 63 {
		t.Errorf("MulFrac sixteenths = %s, want 63", got)
	}
}

func TestDiv_HalfUp(t *testing.T) {
	tests := []struct {
		units int64
		n     int64
		want  int64
	}{
		{10000000, 10, 1000000},
		{1000, 3, 333},
		{500, 3, 167}, // 166.66 rounds up
		{1, 2, 1},     // 0.5 rounds up
	}
	for _, tt := range tests {
		got := New(tt.units).Div(tt.n)
		if got.Int64() != tt.want {
			t.Errorf("New(%d).Div(%d) = %s, want %d", tt.units, tt.n, got, tt.want)
		}
	}
}

func TestNegAbs(t *testing.T) {
	m := New(42)
	if got := m.Neg(); got.Int64() != -42 {
		t.Errorf("Neg = %s, want -42", got)
	}
	if got := m.Neg().Abs(); got.Int64() != 42 {
		t.Errorf("Neg().Abs() = %s, want 42", got)
	}
}

func TestCapZero(t *testing.T) {
	if got := New(-100).CapZero(); !got.IsZero() {
		t.Errorf("New(-100).CapZero() = %s, want 0", got)
	}
	if got := New(100).CapZero(); got.Int64() != 100 {
		t.Errorf("New(100).CapZero() = %s, want 100", got)
	}
	if got := Zero().CapZero(); !got.IsZero() {
		t.Errorf("Zero().CapZero() = %s, want 0", got)
	}
}

// ---------------------------------------------------------------------------
// Comparisons
// ---------------------------------------------------------------------------

func TestComparisons(t *testing.T) {
	small := New(100)
	big := New(200)

	if small.Cmp(big) != -1 || big.Cmp(small) != 1 || small.Cmp(small) != 0 {
		t.Error("Cmp ordering wrong")
	}
	if !small.LessThan(big) {
		t.Error("LessThan(100, 200) = false")
	}
	if !big.GreaterThan(small) {
		t.Error("GreaterThan(200, 100) = false")
	}
	if !small.Equal(New(100)) {
		t.Error("Equal(100, 100) = false")
	}
	if small.Equal(big) {
		t.Error("Equal(100, 200) = true")
	}
}

func TestWithinUnit(t *testing.T) {
	base := New(1000000)
	tests := []struct {
		other int64
		want  bool
	}{
		{1000000, true},
		{1000001, true},
		{999999, true},
		{1000002, false},
		{999998, false},
	}
	for _, tt := range tests {
		if got := base.WithinUnit(New(tt.other)); got != tt.want {
			t.Errorf("WithinUnit(1000000, %d) = %v, want %v", tt.other, got, tt.want)
		}
	}
}

func TestSignPredicates(t *testing.T) {
	if !New(1).IsPositive() || New(1).IsNegative() {
		t.Error("New(1) sign predicates wrong")
	}
	if !New(-1).IsNegative() || New(-1).IsPositive() {
		t.Error("New(-1) sign predicates wrong")
	}
	if Zero().IsPositive() || Zero().IsNegative() {
		t.Error("Zero() sign predicates wrong")
	}
}
