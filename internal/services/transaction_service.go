package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clevercash/internal/dto"
	"clevercash/internal/models"
	"clevercash/internal/repositories"
	"clevercash/internal/validation"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type TransactionService struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	ledgerRepo      repositories.LedgerRepositoryInterface
	admission       AdmissionServiceInterface
	locker          *AccountLocker
	validator       *validation.Validator
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	clock           Clock
}

func NewTransactionService(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	ledgerRepo repositories.LedgerRepositoryInterface,
	admission AdmissionServiceInterface,
	locker *AccountLocker,
	validator *validation.Validator,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	clock Clock,
) TransactionServiceInterface {
	return &TransactionService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		ledgerRepo:      ledgerRepo,
		admission:       admission,
		locker:          locker,
		validator:       validator,
		auditLogger:     auditLogger,
		metrics:         metrics,
		clock:           clock,
	}
}

// CreatePayment books an ad-hoc debit of req.Amount under the same admission
// rules as scheduled obligations.
func (s *TransactionService) CreatePayment(ctx context.Context, accountID uuid.UUID, req *dto.NewPaymentRequest) (*models.Transaction, error) {
	if err := s.validator.Struct(req); err != nil {
		s.metrics.IncrementCounter(MetricPayments, map[string]string{"status": "invalid"})
		return nil, invalidInput(ErrInvalidPayment, err)
	}

	unlock := s.locker.Lock(accountID)
	defer unlock()

	account, err := loadAccount(ctx, s.accountRepo, accountID)
	if err != nil {
		return nil, err
	}

	entry := models.NewDebitEntry(
		accountID,
		models.TransactionTypePayment,
		req.Amount,
		strings.TrimSpace(req.Description),
		models.WallTime(s.clock.Now()),
	)

	admitted, err := s.admission.CanMakeTransaction(ctx, account, entry)
	if err != nil {
		return nil, err
	}
	if !admitted {
		s.metrics.IncrementCounter(MetricPayments, map[string]string{"status": "rejected"})
		return nil, fmt.Errorf("%w: %s", ErrTransactionNotAdmitted, req.Amount)
	}

	updatedAccount := *account
	updatedAccount.Debit(req.Amount)

	if err := s.ledgerRepo.ApplyPayment(ctx, &updatedAccount, entry); err != nil {
		s.metrics.IncrementCounter(MetricPayments, map[string]string{"status": "failed"})
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	s.metrics.IncrementCounter(MetricPayments, map[string]string{"status": "created"})
	s.auditLogger.LogBalanceUpdate(ctx, accountID, account.Balance.String(), updatedAccount.Balance.String(), entry.ID)
	s.auditLogger.LogPaymentCreated(ctx, entry.ID, accountID, entry.Amount.String())

	return entry, nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, accountID, transactionID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, transactionID)
		}
		return nil, err
	}

	if transaction.AccountID != accountID {
		return nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, transactionID)
	}

	return transaction, nil
}

// ListTransactions returns one page of the account's entries, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, accountID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error) {
	if _, err := loadAccount(ctx, s.accountRepo, accountID); err != nil {
		return nil, 0, err
	}

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return s.transactionRepo.GetByAccountID(ctx, accountID, offset, limit)
}
