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
	ErrDispatchRunNotFound = errors.New("dispatch run not found")
)

type dispatchRunRepository struct {
	db *gorm.DB
}

func NewDispatchRunRepository(db *gorm.DB) DispatchRunRepositoryInterface {
	return &dispatchRunRepository{
		db: db,
	}
}

func (r *dispatchRunRepository) Create(ctx context.Context, run *models.DispatchRun) error {
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to create dispatch run: %w", err)
	}
	return nil
}

// Finish stores the final counters and status of a run.
func (r *dispatchRunRepository) Finish(ctx context.Context, run *models.DispatchRun) error {
	result := r.db.WithContext(ctx).Model(&models.DispatchRun{}).
		Where("id = ?", run.ID).
		Updates(map[string]interface{}{
			"status":          run.Status,
			"due_count":       run.DueCount,
			"applied_count":   run.AppliedCount,
			"completed_count": run.CompletedCount,
			"skipped_count":   run.SkippedCount,
			"failed_count":    run.FailedCount,
			"error_message":   run.ErrorMessage,
			"finished_at":     run.FinishedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to finish dispatch run: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrDispatchRunNotFound
	}

	return nil
}

func (r *dispatchRunRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.DispatchRun, error) {
	var run models.DispatchRun
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&run).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDispatchRunNotFound
		}
		return nil, fmt.Errorf("failed to get dispatch run: %w", err)
	}
	return &run, nil
}

// ListRecent returns the newest runs first. An empty job lists all jobs.
func (r *dispatchRunRepository) ListRecent(ctx context.Context, job string, limit int) ([]models.DispatchRun, error) {
	var runs []models.DispatchRun

	query := r.db.WithContext(ctx).Order("started_at DESC").Limit(limit)
	if job != "" {
		query = query.Where("job = ?", job)
	}

	if err := query.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list dispatch runs: %w", err)
	}
	return runs, nil
}

func (r *dispatchRunRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("started_at < ? AND status <> ?", cutoff, models.DispatchStatusRunning).
		Delete(&models.DispatchRun{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to cleanup dispatch runs: %w", result.Error)
	}

	return result.RowsAffected, nil
}
