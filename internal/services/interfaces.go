package services

import (
	"context"
	"time"

	"clevercash/internal/dto"
	"clevercash/internal/models"

	"github.com/google/uuid"
)

// Clock supplies the current instant. Business dates are derived from it.
type Clock interface {
	Now() time.Time
}

// AdmissionServiceInterface gates every debit against balance and daily limit
type AdmissionServiceInterface interface {
	// CanMakeTransaction reports whether the magnitude of entry.Amount may be
	// debited from account today. The error only reports a failed read.
	CanMakeTransaction(ctx context.Context, account *models.Account, entry *models.Transaction) (bool, error)
}

// InstallmentServiceInterface defines installment plan operations
type InstallmentServiceInterface interface {
	ProcessInstallment(ctx context.Context, installment *models.Installment) (ProcessingOutcome, error)
	AddInstallment(ctx context.Context, accountID uuid.UUID, req *dto.NewInstallmentRequest) (*models.Installment, error)
	RemoveInstallment(ctx context.Context, accountID, installmentID uuid.UUID) error
	GetInstallment(ctx context.Context, accountID, installmentID uuid.UUID) (*models.Installment, error)
	ListInstallments(ctx context.Context, accountID uuid.UUID) ([]models.Installment, error)
}

// SavingServiceInterface defines saving plan operations
type SavingServiceInterface interface {
	ProcessSaving(ctx context.Context, saving *models.Saving) (ProcessingOutcome, error)
	AddSaving(ctx context.Context, accountID uuid.UUID, req *dto.NewSavingRequest) (*models.Saving, error)
	RemoveSaving(ctx context.Context, accountID, savingID uuid.UUID) error
	RemoveActiveSaving(ctx context.Context, accountID uuid.UUID) (bool, error)
	GetActiveSaving(ctx context.Context, accountID uuid.UUID) (*models.Saving, error)
	TransferSavingsToBalance(ctx context.Context, accountID uuid.UUID, req *dto.SavingsWithdrawalRequest) (*models.Transaction, error)
}

// TransactionServiceInterface defines ad-hoc payment and ledger read operations
type TransactionServiceInterface interface {
	CreatePayment(ctx context.Context, accountID uuid.UUID, req *dto.NewPaymentRequest) (*models.Transaction, error)
	GetTransaction(ctx context.Context, accountID, transactionID uuid.UUID) (*models.Transaction, error)
	ListTransactions(ctx context.Context, accountID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
}

// DueDateDispatcherInterface runs the daily obligation jobs
type DueDateDispatcherInterface interface {
	RunInstallments(ctx context.Context) (*dto.RunSummary, error)
	RunSavings(ctx context.Context) (*dto.RunSummary, error)
	Run(ctx context.Context, job, trigger string) (*dto.RunSummary, error)
	RecentRuns(ctx context.Context, job string, limit int) ([]models.DispatchRun, error)
	GetRun(ctx context.Context, id uuid.UUID) (*models.DispatchRun, error)
	PruneRuns(ctx context.Context, olderThan time.Duration) (int64, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuditLoggerInterface interface {
	LogObligationProcessed(ctx context.Context, obligationType string, obligationID, accountID uuid.UUID, amount string, outcome ProcessingOutcome)
	LogObligationClosed(ctx context.Context, obligationType string, obligationID, accountID uuid.UUID)
	LogObligationRemoved(ctx context.Context, obligationType string, obligationID, accountID uuid.UUID, deleted bool)
	LogAdmissionRejected(ctx context.Context, accountID uuid.UUID, source, amount, reason string)
	LogBalanceUpdate(ctx context.Context, accountID uuid.UUID, oldBalance, newBalance string, transactionID uuid.UUID)
	LogPaymentCreated(ctx context.Context, transactionID, accountID uuid.UUID, amount string)
	LogDispatchStarted(ctx context.Context, runID uuid.UUID, job, trigger string, due int)
	LogDispatchCompleted(ctx context.Context, summary *dto.RunSummary)
	LogStepFailed(ctx context.Context, obligationType string, obligationID, accountID uuid.UUID, errorMsg string)
}
