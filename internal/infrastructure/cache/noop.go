package cache

import (
	"context"
	"time"

	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
)

var _ port.StatementCache = NoopStatementCache{}

// NoopStatementCache is the cache used when no Redis address is configured.
// Every lookup misses, so each reconciliation recomputes from the books.
type NoopStatementCache struct{}

// Get always misses.
func (NoopStatementCache) Get(context.Context, time.Time, time.Time) (*model.PeriodStatement, error) {
	return nil, nil
}

// Put discards the statement.
func (NoopStatementCache) Put(context.Context, model.PeriodStatement) error { return nil }

// Bump does nothing; there is nothing to invalidate.
func (NoopStatementCache) Bump(context.Context) error { return nil }
