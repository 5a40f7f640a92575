package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/kspdigital/koperasi-core/internal/application/usecase"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/service"
	"github.com/kspdigital/koperasi-core/internal/infrastructure/cache"
	"github.com/kspdigital/koperasi-core/internal/infrastructure/config"
	"github.com/kspdigital/koperasi-core/internal/infrastructure/kafka"
	"github.com/kspdigital/koperasi-core/internal/infrastructure/storage"
	grpcpresentation "github.com/kspdigital/koperasi-core/internal/presentation/grpc"
	"github.com/kspdigital/koperasi-core/internal/presentation/rest"
	"github.com/kspdigital/koperasi-core/pkg/auth"
	pkgkafka "github.com/kspdigital/koperasi-core/pkg/kafka"
	"github.com/kspdigital/koperasi-core/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.ServiceName,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting koperasi-core",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
		"storage_backend", cfg.Storage.Backend,
	)

	// Metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		Namespace: "koperasi",
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	otel.SetMeterProvider(meterProvider)
	meter := meterProvider.Meter(cfg.ServiceName)

	// Book store.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	backend, err := storage.Open(dbCtx, &cfg, logger)
	dbCancel()
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer backend.Close()
	logger.Info("storage ready", "backend", cfg.Storage.Backend)

	// Statement cache: Redis when configured, otherwise every reconciliation
	// recomputes from the book.
	var statements port.StatementCache = cache.NoopStatementCache{}
	if cfg.Redis.Addr != "" {
		redisClient, redisErr := cache.Connect(ctx, cfg.Redis)
		if redisErr != nil {
			logger.Error("failed to connect to redis", "error", redisErr)
			os.Exit(1)
		}
		defer func() { _ = redisClient.Close() }()
		statements = cache.NewRedisStatementCache(redisClient, 0)
		logger.Info("statement cache ready", "addr", cfg.Redis.Addr)
	}

	// Event stream.
	producer := pkgkafka.NewProducer(pkgkafka.Config{Brokers: cfg.Kafka.Brokers})
	defer func() { _ = producer.Close() }()
	publisher := kafka.NewEventPublisher(producer, logger)

	// JWT validation: public key preferred, HMAC secret for single-office
	// installs.
	jwtCfg := auth.JWTConfig{Issuer: cfg.Auth.Issuer}
	if cfg.Auth.PublicKeyFile != "" {
		keyData, keyErr := auth.LoadKeyFromFile(cfg.Auth.PublicKeyFile)
		if keyErr != nil {
			logger.Error("failed to load JWT public key file", "error", keyErr)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	} else {
		jwtCfg.Secret = cfg.Auth.Secret
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// Domain services.
	calc := service.NewAmortizationCalculator()
	ledger := service.NewLedgerService(calc)
	aggregator := service.NewDuesAggregator()
	reconciler := service.NewPeriodReconciler()
	serializer := usecase.NewLoanSerializer()

	// Wire use cases.
	handler := grpcpresentation.NewLedgerHandler(grpcpresentation.UseCases{
		ComputeAmortization: usecase.NewComputeAmortizationUseCase(calc),
		RegisterLoan:        usecase.NewRegisterLoanUseCase(backend.Loans, backend.Members, calc, publisher),
		ApproveLoan:         usecase.NewApproveLoanUseCase(backend.Loans, backend.Expenses, backend.FiscalPeriods, calc, publisher, statements),
		RejectLoan:          usecase.NewRejectLoanUseCase(backend.Loans, publisher),
		GetLoan:             usecase.NewGetLoanUseCase(backend.Loans),
		GetLoanSchedule:     usecase.NewGetLoanScheduleUseCase(backend.Loans, ledger),
		RecordPayment:       usecase.NewRecordPaymentUseCase(backend.Loans, backend.Payments, backend.FiscalPeriods, ledger, serializer, publisher, statements),
		ReversePayment:      usecase.NewReversePaymentUseCase(backend.Loans, backend.Payments, backend.FiscalPeriods, ledger, serializer, publisher, statements),
		RecordDue:           usecase.NewRecordDueUseCase(backend.Dues, backend.Members, backend.FiscalPeriods, publisher, statements),
		DuesTotals:          usecase.NewDuesTotalsUseCase(backend.Dues, aggregator),
		RecordExpense:       usecase.NewRecordExpenseUseCase(backend.Expenses, backend.FiscalPeriods, publisher, statements),
		ApproveExpense:      usecase.NewApproveExpenseUseCase(backend.Expenses, publisher, statements),
		RecordDonation:      usecase.NewRecordDonationUseCase(backend.Donations, backend.FiscalPeriods, publisher, statements),
		ReconcilePeriod:     usecase.NewReconcilePeriodUseCase(backend.Reconciliations, reconciler, statements),
		ClosePeriod:         usecase.NewClosePeriodUseCase(backend.FiscalPeriods, publisher),
	})

	grpcServer := grpcpresentation.NewServer(handler, logger, jwtSvc, meter, cfg.TLS)

	// HTTP server: health probes and metrics.
	mux := http.NewServeMux()
	rest.NewHealthHandler(cfg.ServiceName, backend.Ping, logger).RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(fmt.Sprintf(":%d", cfg.GRPCPort)); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("koperasi-core stopped")
}
