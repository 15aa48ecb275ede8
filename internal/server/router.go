package server

import (
	"log/slog"

	"clevercash/internal/config"
	"clevercash/internal/handlers"
	"clevercash/internal/middleware"
	"clevercash/internal/services"
	"clevercash/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Dependencies are the services served over HTTP. Scheduler may be nil when
// the cron trigger is disabled.
type Dependencies struct {
	DB           *gorm.DB
	Installments services.InstallmentServiceInterface
	Savings      services.SavingServiceInterface
	Transactions services.TransactionServiceInterface
	Dispatcher   services.DueDateDispatcherInterface
	Scheduler    handlers.SchedulerStatus
	Validator    *validation.Validator
	Registry     *prometheus.Registry
	Logger       *slog.Logger
}

// NewRouter builds the echo server with every route registered.
func NewRouter(cfg *config.ServerConfig, deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator(deps.Validator)

	var registerer prometheus.Registerer
	if deps.Registry != nil {
		registerer = deps.Registry
	}
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(registerer)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(deps.Logger))
	e.Use(middleware.SecurityHeaders())

	health := handlers.NewHealthCheckHandler(deps.DB, deps.Scheduler)
	e.GET("/health", health.HealthCheck)

	if deps.Registry != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	jobs := handlers.NewJobHandler(deps.Dispatcher)
	limiter := middleware.NewRateLimiter(cfg.JobTriggerRatePerSec, cfg.JobTriggerBurst)
	jobGroup := e.Group("/jobs")
	jobGroup.GET("/runs", jobs.ListRuns)
	jobGroup.GET("/runs/:runId", jobs.GetRun)
	jobGroup.POST("/:job/run", jobs.RunJob, limiter.Middleware())

	obligations := handlers.NewObligationHandler(deps.Installments, deps.Savings)
	payments := handlers.NewPaymentHandler(deps.Transactions)

	accounts := e.Group("/accounts/:accountId")
	accounts.GET("/installments", obligations.ListInstallments)
	accounts.POST("/installments", obligations.AddInstallment)
	accounts.GET("/installments/:installmentId", obligations.GetInstallment)
	accounts.DELETE("/installments/:installmentId", obligations.RemoveInstallment)

	accounts.GET("/saving", obligations.GetActiveSaving)
	accounts.DELETE("/saving", obligations.RemoveActiveSaving)
	accounts.POST("/savings", obligations.AddSaving)
	accounts.DELETE("/savings/:savingId", obligations.RemoveSaving)
	accounts.POST("/savings/withdrawals", obligations.WithdrawSavings)

	accounts.POST("/payments", payments.CreatePayment)
	accounts.GET("/transactions", payments.ListTransactions)
	accounts.GET("/transactions/:transactionId", payments.GetTransaction)

	return e
}
