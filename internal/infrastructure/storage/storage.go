// Package storage selects the persistence backend from configuration and
// bundles the repository set behind it. The application layer only ever
// sees the port interfaces.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/infrastructure/config"
	"github.com/kspdigital/koperasi-core/internal/infrastructure/persistence/postgres"
	"github.com/kspdigital/koperasi-core/internal/infrastructure/persistence/sqlite"
	pkgpostgres "github.com/kspdigital/koperasi-core/pkg/postgres"
)

// Backend bundles the repositories of the configured storage engine.
type Backend struct {
	Loans           port.LoanRepository
	Payments        port.PaymentRepository
	Dues            port.DueRepository
	Expenses        port.ExpenseRepository
	Donations       port.DonationRepository
	Members         port.MemberRepository
	FiscalPeriods   port.FiscalPeriodRepository
	Reconciliations port.ReconciliationRepository

	ping  func(ctx context.Context) error
	close func()
}

// Open connects the configured backend and brings its schema up to date.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		return openPostgres(ctx, cfg, logger)
	case config.BackendSQLite:
		return openSQLite(cfg.Storage)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// Ping verifies the underlying store is reachable.
func (b *Backend) Ping(ctx context.Context) error {
	return b.ping(ctx)
}

// Close releases the underlying connections.
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	pg := cfg.Storage.Postgres
	pgCfg := pkgpostgres.Config{
		Host:     pg.Host,
		Port:     pg.Port,
		User:     pg.User,
		Password: pg.Password,
		Database: pg.Database,
		SSLMode:  pg.SSLMode,
		AppName:  cfg.ServiceName,
		MaxConns: pg.MaxConns,
	}

	pool, err := pkgpostgres.NewPool(ctx, pgCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := pkgpostgres.RunMigrations(pgCfg.DSN(), cfg.Storage.MigrationsDir); err != nil {
		logger.Warn("migration warning", "error", err)
	}

	return &Backend{
		Loans:           postgres.NewLoanRepo(pool),
		Payments:        postgres.NewPaymentRepo(pool),
		Dues:            postgres.NewDueRepo(pool),
		Expenses:        postgres.NewExpenseRepo(pool),
		Donations:       postgres.NewDonationRepo(pool),
		Members:         postgres.NewMemberRepo(pool),
		FiscalPeriods:   postgres.NewFiscalPeriodRepo(pool),
		Reconciliations: postgres.NewReconciliationRepo(pool),
		ping: func(ctx context.Context) error {
			return pkgpostgres.HealthCheck(ctx, pool)
		},
		close: pool.Close,
	}, nil
}

func openSQLite(cfg config.StorageConfig) (*Backend, error) {
	if err := sqlite.RunMigrations(cfg.SQLitePath); err != nil {
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	db, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}

	return &Backend{
		Loans:           sqlite.NewLoanRepo(db),
		Payments:        sqlite.NewPaymentRepo(db),
		Dues:            sqlite.NewDueRepo(db),
		Expenses:        sqlite.NewExpenseRepo(db),
		Donations:       sqlite.NewDonationRepo(db),
		Members:         sqlite.NewMemberRepo(db),
		FiscalPeriods:   sqlite.NewFiscalPeriodRepo(db),
		Reconciliations: sqlite.NewReconciliationRepo(db),
		ping:            db.PingContext,
		close:           func() { _ = db.Close() },
	}, nil
}
