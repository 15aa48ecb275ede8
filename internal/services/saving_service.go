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

const savingsWithdrawalDescription = "Transfer from savings"

type SavingService struct {
	accountRepo repositories.AccountRepositoryInterface
	savingRepo  repositories.SavingRepositoryInterface
	ledgerRepo  repositories.LedgerRepositoryInterface
	admission   AdmissionServiceInterface
	locker      *AccountLocker
	validator   *validation.Validator
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
	clock       Clock
	logger      *slog.Logger
}

func NewSavingService(
	accountRepo repositories.AccountRepositoryInterface,
	savingRepo repositories.SavingRepositoryInterface,
	ledgerRepo repositories.LedgerRepositoryInterface,
	admission AdmissionServiceInterface,
	locker *AccountLocker,
	validator *validation.Validator,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	clock Clock,
) SavingServiceInterface {
	return &SavingService{
		accountRepo: accountRepo,
		savingRepo:  savingRepo,
		ledgerRepo:  ledgerRepo,
		admission:   admission,
		locker:      locker,
		validator:   validator,
		auditLogger: auditLogger,
		metrics:     metrics,
		clock:       clock,
		logger:      slog.Default(),
	}
}

// ProcessSaving moves one contribution from the balance into the account's
// savings. The plan advances a month while another contribution fits before
// its end date and is closed otherwise; the closing contribution is still
// booked. A rejected admission returns OutcomeSkipped with nothing changed.
// Like installments, the plan is read again under the account lock.
func (s *SavingService) ProcessSaving(ctx context.Context, saving *models.Saving) (ProcessingOutcome, error) {
	if !saving.Active {
		return "", fmt.Errorf("%w: %s", ErrSavingInactive, saving.ID)
	}

	unlock := s.locker.Lock(saving.AccountID)
	defer unlock()

	started := time.Now()

	current, err := s.reloadDue(ctx, saving)
	if err != nil {
		return "", err
	}

	account, err := loadAccount(ctx, s.accountRepo, current.AccountID)
	if err != nil {
		return "", err
	}

	entry := models.NewDebitEntry(
		account.ID,
		models.TransactionTypeSaving,
		current.Amount,
		current.Name,
		models.DateOf(current.PayDay),
	)

	admitted, err := s.admission.CanMakeTransaction(ctx, account, entry)
	if err != nil {
		return "", err
	}
	if !admitted {
		recordStep(s.metrics, ObligationSaving, OutcomeSkipped, started)
		s.auditLogger.LogObligationProcessed(ctx, ObligationSaving, current.ID, account.ID, current.Amount.String(), OutcomeSkipped)
		return OutcomeSkipped, nil
	}

	updatedAccount := *account
	updated := *current

	updatedAccount.MoveToSavings(updated.Amount)
	outcome := OutcomeApplied
	if updated.ApplyContribution() {
		outcome = OutcomeCompleted
	}

	if err := s.ledgerRepo.ApplySavingContribution(ctx, &updatedAccount, &updated, entry); err != nil {
		return "", fmt.Errorf("failed to apply saving contribution: %w", err)
	}

	*saving = updated

	recordStep(s.metrics, ObligationSaving, outcome, started)
	s.auditLogger.LogBalanceUpdate(ctx, account.ID, account.Balance.String(), updatedAccount.Balance.String(), entry.ID)
	s.auditLogger.LogObligationProcessed(ctx, ObligationSaving, saving.ID, account.ID, saving.Amount.String(), outcome)
	if outcome == OutcomeCompleted {
		s.auditLogger.LogObligationClosed(ctx, ObligationSaving, saving.ID, account.ID)
	}

	return outcome, nil
}

func (s *SavingService) reloadDue(ctx context.Context, snapshot *models.Saving) (*models.Saving, error) {
	current, err := s.savingRepo.GetByID(ctx, snapshot.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrSavingNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSavingNotFound, snapshot.ID)
		}
		return nil, err
	}
	if !current.IsDue(snapshot.PayDay) {
		return nil, fmt.Errorf("%w: %s is no longer due on %s", ErrSavingInactive, current.ID, snapshot.PayDay.Format(time.DateOnly))
	}
	return current, nil
}

// AddSaving starts a saving plan. An account holds at most one active plan.
// The first pay day defaults to the start date.
func (s *SavingService) AddSaving(ctx context.Context, accountID uuid.UUID, req *dto.NewSavingRequest) (*models.Saving, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput(ErrInvalidSaving, err)
	}

	startDate := models.DateOf(req.StartDate)
	payDay := startDate
	if req.FirstPayDay != nil {
		payDay = models.DateOf(*req.FirstPayDay)
		if payDay.Before(startDate) {
			return nil, fmt.Errorf("%w: first_pay_day must not precede start_date", ErrInvalidSaving)
		}
	}

	unlock := s.locker.Lock(accountID)
	defer unlock()

	if _, err := loadAccount(ctx, s.accountRepo, accountID); err != nil {
		return nil, err
	}

	active, err := s.savingRepo.GetActiveByAccountID(ctx, accountID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s", ErrActiveSavingExists, active.ID)
	case !errors.Is(err, repositories.ErrSavingNotFound):
		return nil, err
	}

	saving := &models.Saving{
		AccountID:        accountID,
		Name:             strings.TrimSpace(req.Name),
		Description:      req.Description,
		Amount:           req.Amount,
		StartDate:        startDate,
		DurationInMonths: req.DurationInMonths,
		PayDay:           payDay,
		Active:           true,
	}

	if err := s.savingRepo.Create(ctx, saving); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "saving added",
		slog.String("saving_id", saving.ID.String()),
		slog.String("account_id", accountID.String()),
		slog.String("amount", saving.Amount.String()),
		slog.String("pay_day", saving.PayDay.Format(time.DateOnly)),
		slog.String("end_date", saving.EndDate().Format(time.DateOnly)),
	)

	return saving, nil
}

// RemoveSaving deactivates a plan whose pay day has moved past its start
// date. Otherwise the plan is deleted and what it contributed is taken back
// out of the account's savings, never below zero.
func (s *SavingService) RemoveSaving(ctx context.Context, accountID, savingID uuid.UUID) error {
	unlock := s.locker.Lock(accountID)
	defer unlock()

	saving, err := s.getOwned(ctx, accountID, savingID)
	if err != nil {
		return err
	}

	if saving.HasStarted() {
		saving.Active = false
		if err := s.savingRepo.Update(ctx, saving); err != nil {
			return fmt.Errorf("failed to deactivate saving: %w", err)
		}
		s.auditLogger.LogObligationRemoved(ctx, ObligationSaving, saving.ID, accountID, false)
		return nil
	}

	account, err := loadAccount(ctx, s.accountRepo, accountID)
	if err != nil {
		return err
	}

	updatedAccount := *account
	refunded := updatedAccount.RefundSavings(saving.ContributedAmount)

	if err := s.ledgerRepo.RemoveSavingWithRefund(ctx, &updatedAccount, saving.ID); err != nil {
		if errors.Is(err, repositories.ErrSavingNotFound) {
			return fmt.Errorf("%w: %s", ErrSavingNotFound, savingID)
		}
		return fmt.Errorf("failed to delete saving: %w", err)
	}

	s.logger.InfoContext(ctx, "saving deleted",
		slog.String("saving_id", saving.ID.String()),
		slog.String("account_id", accountID.String()),
		slog.String("refunded", refunded.String()),
	)
	s.auditLogger.LogObligationRemoved(ctx, ObligationSaving, saving.ID, accountID, true)

	return nil
}

// RemoveActiveSaving deactivates the account's active plan and reports
// whether there was one.
func (s *SavingService) RemoveActiveSaving(ctx context.Context, accountID uuid.UUID) (bool, error) {
	unlock := s.locker.Lock(accountID)
	defer unlock()

	saving, err := s.savingRepo.GetActiveByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrSavingNotFound) {
			return false, nil
		}
		return false, err
	}

	saving.Active = false
	if err := s.savingRepo.Update(ctx, saving); err != nil {
		return false, fmt.Errorf("failed to deactivate saving: %w", err)
	}

	s.auditLogger.LogObligationRemoved(ctx, ObligationSaving, saving.ID, accountID, false)
	return true, nil
}

func (s *SavingService) GetActiveSaving(ctx context.Context, accountID uuid.UUID) (*models.Saving, error) {
	saving, err := s.savingRepo.GetActiveByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrSavingNotFound) {
			return nil, fmt.Errorf("%w: no active saving for account %s", ErrSavingNotFound, accountID)
		}
		return nil, err
	}
	return saving, nil
}

// TransferSavingsToBalance moves amount from the savings sub-balance back to
// the balance and books it as a positive SAVING entry. No admission check
// applies since nothing is debited.
func (s *SavingService) TransferSavingsToBalance(ctx context.Context, accountID uuid.UUID, req *dto.SavingsWithdrawalRequest) (*models.Transaction, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput(ErrInvalidPayment, err)
	}

	unlock := s.locker.Lock(accountID)
	defer unlock()

	account, err := loadAccount(ctx, s.accountRepo, accountID)
	if err != nil {
		return nil, err
	}

	updatedAccount := *account
	if err := updatedAccount.WithdrawSavings(req.Amount); err != nil {
		return nil, fmt.Errorf("%w: requested %s, available %s", ErrInsufficientSavings, req.Amount, account.SavingsAmount)
	}

	entry := models.NewCreditEntry(
		accountID,
		models.TransactionTypeSaving,
		req.Amount,
		savingsWithdrawalDescription,
		models.WallTime(s.clock.Now()),
	)

	if err := s.ledgerRepo.ApplySavingsWithdrawal(ctx, &updatedAccount, entry); err != nil {
		return nil, fmt.Errorf("failed to transfer savings: %w", err)
	}

	s.auditLogger.LogBalanceUpdate(ctx, accountID, account.Balance.String(), updatedAccount.Balance.String(), entry.ID)

	return entry, nil
}

func (s *SavingService) getOwned(ctx context.Context, accountID, savingID uuid.UUID) (*models.Saving, error) {
	saving, err := s.savingRepo.GetByID(ctx, savingID)
	if err != nil {
		if errors.Is(err, repositories.ErrSavingNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSavingNotFound, savingID)
		}
		return nil, err
	}

	if saving.AccountID != accountID {
		return nil, fmt.Errorf("%w: %s", ErrSavingNotFound, savingID)
	}

	return saving, nil
}
