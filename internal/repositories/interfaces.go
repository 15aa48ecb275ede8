package repositories

import (
	"context"
	"time"

	"clevercash/internal/models"

	"github.com/google/uuid"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
}

// TransactionRepositoryInterface defines the contract for ledger entry reads and appends
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	GetByAccountID(ctx context.Context, accountID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
	// GetByDateRange returns entries dated in [start, end).
	GetByDateRange(ctx context.Context, accountID uuid.UUID, start, end time.Time) ([]models.Transaction, error)
}

// InstallmentRepositoryInterface defines the contract for installment repository operations
type InstallmentRepositoryInterface interface {
	Create(ctx context.Context, installment *models.Installment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Installment, error)
	GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]models.Installment, error)
	// FindDue returns active installments whose pay day is on or before today.
	FindDue(ctx context.Context, today time.Time) ([]models.Installment, error)
	ExistsActiveByName(ctx context.Context, accountID uuid.UUID, name string) (bool, error)
	Update(ctx context.Context, installment *models.Installment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SavingRepositoryInterface defines the contract for saving repository operations
type SavingRepositoryInterface interface {
	Create(ctx context.Context, saving *models.Saving) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Saving, error)
	GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]models.Saving, error)
	GetActiveByAccountID(ctx context.Context, accountID uuid.UUID) (*models.Saving, error)
	// FindDue returns active savings whose pay day is on or before today.
	FindDue(ctx context.Context, today time.Time) ([]models.Saving, error)
	Update(ctx context.Context, saving *models.Saving) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// LedgerRepositoryInterface persists every balance mutation together with
// its ledger entry and obligation change in a single database transaction.
type LedgerRepositoryInterface interface {
	ApplyInstallmentPayment(ctx context.Context, account *models.Account, installment *models.Installment, entry *models.Transaction) error
	ApplySavingContribution(ctx context.Context, account *models.Account, saving *models.Saving, entry *models.Transaction) error
	ApplyPayment(ctx context.Context, account *models.Account, entry *models.Transaction) error
	ApplySavingsWithdrawal(ctx context.Context, account *models.Account, entry *models.Transaction) error
	RemoveSavingWithRefund(ctx context.Context, account *models.Account, savingID uuid.UUID) error
}

// DispatchRunRepositoryInterface defines the contract for dispatch run history
type DispatchRunRepositoryInterface interface {
	Create(ctx context.Context, run *models.DispatchRun) error
	Finish(ctx context.Context, run *models.DispatchRun) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.DispatchRun, error)
	ListRecent(ctx context.Context, job string, limit int) ([]models.DispatchRun, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
