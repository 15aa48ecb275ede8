package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clevercash/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSavingNotFound = errors.New("saving not found")
)

type savingRepository struct {
	db *gorm.DB
}

func NewSavingRepository(db *gorm.DB) SavingRepositoryInterface {
	return &savingRepository{
		db: db,
	}
}

func (r *savingRepository) Create(ctx context.Context, saving *models.Saving) error {
	if err := r.db.WithContext(ctx).Create(saving).Error; err != nil {
		return fmt.Errorf("failed to create saving: %w", err)
	}
	return nil
}

func (r *savingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Saving, error) {
	var saving models.Saving
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&saving).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSavingNotFound
		}
		return nil, fmt.Errorf("failed to get saving: %w", err)
	}
	return &saving, nil
}

func (r *savingRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]models.Saving, error) {
	var savings []models.Saving
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("active DESC, start_date DESC").
		Find(&savings).Error; err != nil {
		return nil, fmt.Errorf("failed to get savings for account: %w", err)
	}
	return savings, nil
}

// GetActiveByAccountID returns ErrSavingNotFound when the account has no
// active saving.
func (r *savingRepository) GetActiveByAccountID(ctx context.Context, accountID uuid.UUID) (*models.Saving, error) {
	var saving models.Saving
	if err := r.db.WithContext(ctx).
		Where("account_id = ? AND active = ?", accountID, true).
		First(&saving).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSavingNotFound
		}
		return nil, fmt.Errorf("failed to get active saving: %w", err)
	}
	return &saving, nil
}

func (r *savingRepository) FindDue(ctx context.Context, today time.Time) ([]models.Saving, error) {
	var savings []models.Saving
	if err := r.db.WithContext(ctx).
		Where("active = ? AND pay_day <= ?", true, models.DateOf(today)).
		Order("account_id ASC, pay_day ASC, id ASC").
		Find(&savings).Error; err != nil {
		return nil, fmt.Errorf("failed to find due savings: %w", err)
	}
	return savings, nil
}

func (r *savingRepository) Update(ctx context.Context, saving *models.Saving) error {
	if err := r.db.WithContext(ctx).Save(saving).Error; err != nil {
		return fmt.Errorf("failed to update saving: %w", err)
	}
	return nil
}

func (r *savingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Saving{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete saving: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrSavingNotFound
	}

	return nil
}
