package usecase

import (
	"sync"

	"github.com/google/uuid"
)

// LoanSerializer hands out one mutex per loan so payment writes against the
// same loan run strictly one at a time while different loans proceed in
// parallel. Entries are never evicted; the lock table grows with the loan
// book, which is small.
type LoanSerializer struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewLoanSerializer creates an empty lock table.
func NewLoanSerializer() *LoanSerializer {
	return &LoanSerializer{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// Lock acquires the loan's mutex and returns the release function.
func (s *LoanSerializer) Lock(loanID uuid.UUID) func() {
	s.mu.Lock()
	m, ok := s.locks[loanID]
	if !ok {
		m = &sync.Mutex{}
		s.locks[loanID] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}
