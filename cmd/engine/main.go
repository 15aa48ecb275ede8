package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"clevercash/internal/config"
	"clevercash/internal/database"
	"clevercash/internal/logger"
	"clevercash/internal/models"
	"clevercash/internal/repositories"
	"clevercash/internal/scheduler"
	"clevercash/internal/server"
	"clevercash/internal/services"
	"clevercash/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	runOnce := flag.String("run-once", "", "Run a job once and exit: installments, savings or all")
	flag.Parse()

	if err := run(config.Load(), *runOnce); err != nil {
		slog.Error("engine exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

// run wires the engine and blocks until it is stopped. Deferred cleanup runs
// before main exits with an error.
func run(cfg *config.Config, runOnce string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	jobs, err := onceJobs(runOnce)
	if err != nil {
		return err
	}

	loc, err := cfg.Scheduler.Location()
	if err != nil {
		return fmt.Errorf("failed to load scheduler timezone: %w", err)
	}

	appLogger := logger.New(&cfg.Logging)
	slog.SetDefault(appLogger)
	appLogger.Info("starting clevercash engine", slog.String("env", cfg.Server.Environment))

	db, err := database.Initialize(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			appLogger.Warn("failed to close database", slog.Any("error", closeErr))
		}
	}()

	clock := services.NewSystemClock(loc)
	validator := validation.NewValidatorWithClock(clock.Now)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := services.NewPrometheusMetrics(registry)
	auditLogger := services.NewAuditLogger(appLogger)

	accountRepo := repositories.NewAccountRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	installmentRepo := repositories.NewInstallmentRepository(db.DB)
	savingRepo := repositories.NewSavingRepository(db.DB)
	ledgerRepo := repositories.NewLedgerRepository(db.DB)
	runRepo := repositories.NewDispatchRunRepository(db.DB)

	locker := services.NewAccountLocker()
	admission := services.NewAdmissionService(transactionRepo, auditLogger, metrics, clock)
	installmentService := services.NewInstallmentService(accountRepo, installmentRepo, ledgerRepo, admission, locker, validator, auditLogger, metrics)
	savingService := services.NewSavingService(accountRepo, savingRepo, ledgerRepo, admission, locker, validator, auditLogger, metrics, clock)
	transactionService := services.NewTransactionService(accountRepo, transactionRepo, ledgerRepo, admission, locker, validator, auditLogger, metrics, clock)
	dispatcher := services.NewDueDateDispatcher(
		installmentRepo, savingRepo, runRepo,
		installmentService, savingService,
		auditLogger, metrics, clock, cfg.Scheduler.DispatchWorkers,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(jobs) > 0 {
		return runJobs(ctx, dispatcher, jobs, appLogger)
	}

	var cron *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		cron, err = scheduler.New(&cfg.Scheduler, dispatcher, appLogger)
		if err != nil {
			return fmt.Errorf("failed to create scheduler: %w", err)
		}
		cron.Start()
		appLogger.Info("scheduler started", slog.Int("jobs", len(cron.Entries())))
	}

	var e *echo.Echo
	serverErr := make(chan error, 1)
	if cfg.Server.OpsServerEnabled {
		deps := server.Dependencies{
			DB:           db.DB,
			Installments: installmentService,
			Savings:      savingService,
			Transactions: transactionService,
			Dispatcher:   dispatcher,
			Validator:    validator,
			Registry:     registry,
			Logger:       appLogger,
		}
		if cron != nil {
			deps.Scheduler = cron
		}

		e = server.NewRouter(&cfg.Server, deps)
		e.Server.ReadTimeout = cfg.Server.ReadTimeout
		e.Server.WriteTimeout = cfg.Server.WriteTimeout

		go func() {
			appLogger.Info("ops server listening", slog.String("addr", cfg.Server.Address()))
			if err := e.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- fmt.Errorf("ops server failed: %w", err)
				stop()
			}
		}()
	}

	<-ctx.Done()
	appLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if e != nil {
		if err := e.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("ops server shutdown failed", slog.Any("error", err))
		}
	}
	if cron != nil {
		if err := cron.Stop(shutdownCtx); err != nil {
			appLogger.Warn("scheduler stopped before running jobs finished", slog.Any("error", err))
		}
	}

	select {
	case err := <-serverErr:
		return err
	default:
	}

	appLogger.Info("engine stopped")
	return nil
}

// onceJobs expands the -run-once flag. An empty flag means no one-off run.
func onceJobs(flagValue string) ([]string, error) {
	switch {
	case flagValue == "":
		return nil, nil
	case flagValue == "all":
		return []string{models.DispatchJobInstallments, models.DispatchJobSavings}, nil
	case models.IsValidDispatchJob(flagValue):
		return []string{flagValue}, nil
	default:
		return nil, fmt.Errorf("%w: -run-once %q", services.ErrUnknownJob, flagValue)
	}
}

func runJobs(ctx context.Context, dispatcher services.DueDateDispatcherInterface, jobs []string, jobLogger *slog.Logger) error {
	for _, name := range jobs {
		summary, err := dispatcher.Run(ctx, name, models.DispatchTriggerCLI)
		if err != nil {
			return fmt.Errorf("run-once %s: %w", name, err)
		}
		jobLogger.Info("job completed",
			slog.String("job", name),
			slog.Int("due", summary.Due),
			slog.Int("processed", summary.Processed()),
			slog.Int("skipped", summary.Skipped),
			slog.Int("failed", summary.Failed),
		)
	}
	return nil
}
