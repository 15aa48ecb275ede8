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
	ErrInstallmentNotFound = errors.New("installment not found")
)

type installmentRepository struct {
	db *gorm.DB
}

func NewInstallmentRepository(db *gorm.DB) InstallmentRepositoryInterface {
	return &installmentRepository{
		db: db,
	}
}

func (r *installmentRepository) Create(ctx context.Context, installment *models.Installment) error {
	if err := r.db.WithContext(ctx).Create(installment).Error; err != nil {
		return fmt.Errorf("failed to create installment: %w", err)
	}
	return nil
}

func (r *installmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Installment, error) {
	var installment models.Installment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&installment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstallmentNotFound
		}
		return nil, fmt.Errorf("failed to get installment: %w", err)
	}
	return &installment, nil
}

func (r *installmentRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]models.Installment, error) {
	var installments []models.Installment
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("active DESC, pay_day ASC").
		Find(&installments).Error; err != nil {
		return nil, fmt.Errorf("failed to get installments for account: %w", err)
	}
	return installments, nil
}

func (r *installmentRepository) FindDue(ctx context.Context, today time.Time) ([]models.Installment, error) {
	var installments []models.Installment
	if err := r.db.WithContext(ctx).
		Where("active = ? AND pay_day <= ?", true, models.DateOf(today)).
		Order("account_id ASC, pay_day ASC, id ASC").
		Find(&installments).Error; err != nil {
		return nil, fmt.Errorf("failed to find due installments: %w", err)
	}
	return installments, nil
}

func (r *installmentRepository) ExistsActiveByName(ctx context.Context, accountID uuid.UUID, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Installment{}).
		Where("account_id = ? AND name = ? AND active = ?", accountID, name, true).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check installment name: %w", err)
	}
	return count > 0, nil
}

func (r *installmentRepository) Update(ctx context.Context, installment *models.Installment) error {
	result := r.db.WithContext(ctx).Save(installment)
	if result.Error != nil {
		return fmt.Errorf("failed to update installment: %w", result.Error)
	}
	return nil
}

func (r *installmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Installment{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete installment: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrInstallmentNotFound
	}

	return nil
}
