package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"clevercash/internal/dto"
	"clevercash/internal/models"
	"clevercash/internal/repositories"
	"clevercash/internal/validation"

	"github.com/google/uuid"
)

type InstallmentService struct {
	accountRepo     repositories.AccountRepositoryInterface
	installmentRepo repositories.InstallmentRepositoryInterface
	ledgerRepo      repositories.LedgerRepositoryInterface
	admission       AdmissionServiceInterface
	locker          *AccountLocker
	validator       *validation.Validator
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

func NewInstallmentService(
	accountRepo repositories.AccountRepositoryInterface,
	installmentRepo repositories.InstallmentRepositoryInterface,
	ledgerRepo repositories.LedgerRepositoryInterface,
	admission AdmissionServiceInterface,
	locker *AccountLocker,
	validator *validation.Validator,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
) InstallmentServiceInterface {
	return &InstallmentService{
		accountRepo:     accountRepo,
		installmentRepo: installmentRepo,
		ledgerRepo:      ledgerRepo,
		admission:       admission,
		locker:          locker,
		validator:       validator,
		auditLogger:     auditLogger,
		metrics:         metrics,
		logger:          slog.Default(),
	}
}

// ProcessInstallment pays one rate of a due installment. The installment is
// read again under the account lock, so a removal or an earlier payment that
// committed after the caller loaded it turns the step into an error. A
// rejected admission returns OutcomeSkipped and leaves every record
// untouched. The passed installment is only updated after the payment is
// committed.
func (s *InstallmentService) ProcessInstallment(ctx context.Context, installment *models.Installment) (ProcessingOutcome, error) {
	if !installment.Active {
		return "", fmt.Errorf("%w: %s", ErrInstallmentInactive, installment.ID)
	}

	unlock := s.locker.Lock(installment.AccountID)
	defer unlock()

	started := time.Now()

	current, err := s.reloadDue(ctx, installment)
	if err != nil {
		return "", err
	}

	account, err := loadAccount(ctx, s.accountRepo, current.AccountID)
	if err != nil {
		return "", err
	}

	entry := models.NewDebitEntry(
		account.ID,
		models.TransactionTypeInstallment,
		current.AmountPerRate,
		current.Name,
		models.DateOf(current.PayDay),
	)

	admitted, err := s.admission.CanMakeTransaction(ctx, account, entry)
	if err != nil {
		return "", err
	}
	if !admitted {
		recordStep(s.metrics, ObligationInstallment, OutcomeSkipped, started)
		s.auditLogger.LogObligationProcessed(ctx, ObligationInstallment, current.ID, account.ID, current.AmountPerRate.String(), OutcomeSkipped)
		return OutcomeSkipped, nil
	}

	updatedAccount := *account
	updated := *current

	updatedAccount.Debit(updated.AmountPerRate)
	outcome := OutcomeApplied
	if updated.ApplyRate() {
		outcome = OutcomeCompleted
	}

	if err := s.ledgerRepo.ApplyInstallmentPayment(ctx, &updatedAccount, &updated, entry); err != nil {
		return "", fmt.Errorf("failed to apply installment payment: %w", err)
	}

	*installment = updated

	recordStep(s.metrics, ObligationInstallment, outcome, started)
	s.auditLogger.LogBalanceUpdate(ctx, account.ID, account.Balance.String(), updatedAccount.Balance.String(), entry.ID)
	s.auditLogger.LogObligationProcessed(ctx, ObligationInstallment, installment.ID, account.ID, installment.AmountPerRate.String(), outcome)
	if outcome == OutcomeCompleted {
		s.auditLogger.LogObligationClosed(ctx, ObligationInstallment, installment.ID, account.ID)
	}

	return outcome, nil
}

// reloadDue fetches the stored installment and checks that it is still due on
// the pay day the caller saw.
func (s *InstallmentService) reloadDue(ctx context.Context, snapshot *models.Installment) (*models.Installment, error) {
	current, err := s.installmentRepo.GetByID(ctx, snapshot.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrInstallmentNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrInstallmentNotFound, snapshot.ID)
		}
		return nil, err
	}
	if !current.IsDue(snapshot.PayDay) {
		return nil, fmt.Errorf("%w: %s is no longer due on %s", ErrInstallmentInactive, current.ID, snapshot.PayDay.Format(time.DateOnly))
	}
	return current, nil
}

// AddInstallment creates an active installment whose first pay day is its
// start date. Names are unique among the account's active installments.
func (s *InstallmentService) AddInstallment(ctx context.Context, accountID uuid.UUID, req *dto.NewInstallmentRequest) (*models.Installment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput(ErrInvalidInstallment, err)
	}

	if _, err := loadAccount(ctx, s.accountRepo, accountID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	taken, err := s.installmentRepo.ExistsActiveByName(ctx, accountID, name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: %s", ErrInstallmentNameTaken, name)
	}

	startDate := models.DateOf(req.StartDate)
	installment := &models.Installment{
		AccountID:        accountID,
		Name:             name,
		Description:      req.Description,
		Amount:           req.Amount,
		AmountPerRate:    req.AmountPerRate,
		StartDate:        startDate,
		DurationInMonths: req.DurationInMonths,
		PayDay:           startDate,
		Active:           true,
	}

	if err := s.installmentRepo.Create(ctx, installment); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "installment added",
		slog.String("installment_id", installment.ID.String()),
		slog.String("account_id", accountID.String()),
		slog.String("amount", installment.Amount.String()),
		slog.String("pay_day", installment.PayDay.Format(time.DateOnly)),
	)

	return installment, nil
}

// RemoveInstallment deletes an installment that has no payments yet and
// deactivates one that has, so paid history is kept.
func (s *InstallmentService) RemoveInstallment(ctx context.Context, accountID, installmentID uuid.UUID) error {
	unlock := s.locker.Lock(accountID)
	defer unlock()

	installment, err := s.GetInstallment(ctx, accountID, installmentID)
	if err != nil {
		return err
	}

	deleted := !installment.HasPayments()
	if deleted {
		err = s.installmentRepo.Delete(ctx, installment.ID)
	} else {
		installment.Active = false
		err = s.installmentRepo.Update(ctx, installment)
	}
	if err != nil {
		return fmt.Errorf("failed to remove installment: %w", err)
	}

	s.auditLogger.LogObligationRemoved(ctx, ObligationInstallment, installment.ID, accountID, deleted)
	return nil
}

func (s *InstallmentService) GetInstallment(ctx context.Context, accountID, installmentID uuid.UUID) (*models.Installment, error) {
	installment, err := s.installmentRepo.GetByID(ctx, installmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrInstallmentNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrInstallmentNotFound, installmentID)
		}
		return nil, err
	}

	if installment.AccountID != accountID {
		return nil, fmt.Errorf("%w: %s", ErrInstallmentNotFound, installmentID)
	}

	return installment, nil
}

func (s *InstallmentService) ListInstallments(ctx context.Context, accountID uuid.UUID) ([]models.Installment, error) {
	if _, err := loadAccount(ctx, s.accountRepo, accountID); err != nil {
		return nil, err
	}
	return s.installmentRepo.GetByAccountID(ctx, accountID)
}
