package money

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

// TestMoney_ConcurrentArithmetic performs Add, Sub, and MulRate operations on
// shared Money values across goroutines. Because Money is an immutable value
// type, operations return new values without modifying the original. The test
// verifies that the original value is never changed and that every goroutine
// observes the same results.
func TestMoney_ConcurrentArithmetic(t *testing.T) {
	base := New(1000)
	addend := New(50)
	subtrahend := New(25)
	rate := decimal.NewFromFloat(0.5)

	original := base.Decimal()

	const goroutines = 100

	type result struct {
		add     Money
		sub     Money
		mulRate Money
		capped  Money
	}

	results := make([]result, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(idx int) {
			defer wg.Done()

			r := &results[idx]
			r.add = base.Add(addend)
			r.sub = base.Sub(subtrahend)
			r.mulRate = base.MulRate(rate)
			r.capped = base.Sub(New(2000)).CapZero()
		}(i)
	}

	wg.Wait()

	if !base.Decimal().Equal(original) {
		t.Fatalf("base mutated: got %s, want %s", base, original)
	}

	for i, r := range results {
		if r.add.Int64() != 1050 {
			t.Errorf("goroutine %d: Add = %s, want 1050", i, r.add)
		}
		if r.sub.Int64() != 975 {
			t.Errorf("goroutine %d: Sub = %s, want 975", i, r.sub)
		}
		if r.mulRate.Int64() != 500 {
			t.Errorf("goroutine %d: MulRate = %s, want 500", i, r.mulRate)
		}
		if !r.capped.IsZero() {
			t.Errorf("goroutine %d: CapZero = %s, want 0", i, r.capped)
		}
	}
}
