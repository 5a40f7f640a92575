package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/kspdigital/koperasi-core/internal/application/dto"
	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/service"
)

// ReconcilePeriodUseCase produces the financial statement for a period. It
// is read-only over the books and safe to run concurrently with writes: the
// snapshot comes from one consistent read. Concurrent requests for the same
// period collapse into a single snapshot fetch.
//
// A failed accounting identity still returns the statement body together
// with the BalanceMismatchError, so callers can inspect the gap.
type ReconcilePeriodUseCase struct {
	snapshots  port.ReconciliationRepository
	reconciler *service.PeriodReconciler
	cache      port.StatementCache
	flights    singleflight.Group
}

// NewReconcilePeriodUseCase wires dependencies.
func NewReconcilePeriodUseCase(
	snapshots port.ReconciliationRepository,
	reconciler *service.PeriodReconciler,
	cache port.StatementCache,
) *ReconcilePeriodUseCase {
	return &ReconcilePeriodUseCase{
		snapshots:  snapshots,
		reconciler: reconciler,
		cache:      cache,
	}
}

// Execute reconciles [start, end). Cache failures are treated as misses.
func (uc *ReconcilePeriodUseCase) Execute(
	ctx context.Context,
	req dto.ReconcilePeriodRequest,
) (dto.PeriodStatementResponse, error) {
	// 1. Serve a statement already computed against the current book.
	if cached, err := uc.cache.Get(ctx, req.PeriodStart, req.PeriodEnd); err == nil && cached != nil {
		return statementResponse(*cached), nil
	}

	// 2. Collapse concurrent misses for the same period into one flight.
	key := req.PeriodStart.Format(time.RFC3339) + "|" + req.PeriodEnd.Format(time.RFC3339)
	v, err, _ := uc.flights.Do(key, func() (interface{}, error) {
		return uc.reconcile(ctx, req)
	})
	statement, _ := v.(model.PeriodStatement)
	if err != nil {
		var mismatch model.BalanceMismatchError
		if errors.As(err, &mismatch) {
			return statementResponse(statement), mismatch
		}
		return dto.PeriodStatementResponse{}, err
	}
	return statementResponse(statement), nil
}

func (uc *ReconcilePeriodUseCase) reconcile(
	ctx context.Context,
	req dto.ReconcilePeriodRequest,
) (model.PeriodStatement, error) {
	// 1. One consistent snapshot of every row dated before the period end.
	data, err := uc.snapshots.FetchPeriodData(ctx, req.PeriodEnd)
	if err != nil {
		return model.PeriodStatement{}, fmt.Errorf("fetch period data: %w", err)
	}

	// 2. Reconcile.
	statement, err := uc.reconciler.Reconcile(data, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		var mismatch model.BalanceMismatchError
		if errors.As(err, &mismatch) {
			// Mismatched statements are never cached; a later hit would
			// hide the broken identity.
			return statement, mismatch
		}
		return model.PeriodStatement{}, fmt.Errorf("reconcile period: %w", err)
	}

	// 3. Keep the balanced statement for the next caller.
	_ = uc.cache.Put(ctx, statement)

	return statement, nil
}
