package repositories

import (
	"context"
	"errors"
	"fmt"

	"clevercash/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrObligationClosed is returned when the installment or saving being
// updated no longer exists as an active row.
var ErrObligationClosed = errors.New("obligation is no longer active")

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates the repository that commits balance changes,
// ledger entries and obligation updates together.
func NewLedgerRepository(db *gorm.DB) LedgerRepositoryInterface {
	return &ledgerRepository{
		db: db,
	}
}

func (r *ledgerRepository) ApplyInstallmentPayment(ctx context.Context, account *models.Account, installment *models.Installment, entry *models.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveAccount(tx, account); err != nil {
			return err
		}

		result := tx.Model(installment).
			Where("active = ?", true).
			Updates(map[string]interface{}{
				"already_paid_amount": installment.AlreadyPaidAmount,
				"pay_day":             installment.PayDay,
				"active":              installment.Active,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to save installment: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: installment %s", ErrObligationClosed, installment.ID)
		}

		return appendEntry(tx, entry)
	})
}

func (r *ledgerRepository) ApplySavingContribution(ctx context.Context, account *models.Account, saving *models.Saving, entry *models.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveAccount(tx, account); err != nil {
			return err
		}

		result := tx.Model(saving).
			Where("active = ?", true).
			Updates(map[string]interface{}{
				"contributed_amount": saving.ContributedAmount,
				"pay_day":            saving.PayDay,
				"active":             saving.Active,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to save saving: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: saving %s", ErrObligationClosed, saving.ID)
		}

		return appendEntry(tx, entry)
	})
}

func (r *ledgerRepository) ApplyPayment(ctx context.Context, account *models.Account, entry *models.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveAccount(tx, account); err != nil {
			return err
		}
		return appendEntry(tx, entry)
	})
}

func (r *ledgerRepository) ApplySavingsWithdrawal(ctx context.Context, account *models.Account, entry *models.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveAccount(tx, account); err != nil {
			return err
		}
		return appendEntry(tx, entry)
	})
}

// RemoveSavingWithRefund deletes the saving and stores the account with its
// already reduced savings amount.
func (r *ledgerRepository) RemoveSavingWithRefund(ctx context.Context, account *models.Account, savingID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Saving{}, "id = ? AND account_id = ?", savingID, account.ID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete saving: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrSavingNotFound
		}

		return saveAccount(tx, account)
	})
}

func saveAccount(tx *gorm.DB, account *models.Account) error {
	result := tx.Model(account).Updates(map[string]interface{}{
		"balance":        account.Balance,
		"savings_amount": account.SavingsAmount,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to save account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func appendEntry(tx *gorm.DB, entry *models.Transaction) error {
	if entry.ID != uuid.Nil {
		return errors.New("ledger entry already persisted")
	}
	if err := tx.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}
	return nil
}
