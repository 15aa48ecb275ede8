package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DispatchJobInstallments = "installments"
	DispatchJobSavings      = "savings"

	DispatchTriggerSchedule = "schedule"
	DispatchTriggerManual   = "manual"
	DispatchTriggerCLI      = "cli"

	DispatchStatusRunning   = "running"
	DispatchStatusCompleted = "completed"
	DispatchStatusFailed    = "failed"
)

// DispatchRun records one execution of a due-date job.
type DispatchRun struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Job            string     `gorm:"type:varchar(20);not null;index:idx_dispatch_runs_job,priority:1" json:"job"`
	Trigger        string     `gorm:"type:varchar(20);not null" json:"trigger"`
	Status         string     `gorm:"type:varchar(20);not null;default:'running'" json:"status"`
	BusinessDate   time.Time  `gorm:"type:date;not null" json:"business_date"`
	DueCount       int        `gorm:"not null;default:0" json:"due_count"`
	AppliedCount   int        `gorm:"not null;default:0" json:"applied_count"`
	CompletedCount int        `gorm:"not null;default:0" json:"completed_count"`
	SkippedCount   int        `gorm:"not null;default:0" json:"skipped_count"`
	FailedCount    int        `gorm:"not null;default:0" json:"failed_count"`
	ErrorMessage   string     `gorm:"type:text" json:"error_message,omitempty"`
	StartedAt      time.Time  `gorm:"not null;index:idx_dispatch_runs_job,priority:2" json:"started_at"`
	FinishedAt     *time.Time `json:"finished_at,omitempty"`
	CreatedAt      time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"not null" json:"updated_at"`
}

func (*DispatchRun) TableName() string {
	return "dispatch_runs"
}

func (r *DispatchRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = DispatchStatusRunning
	}
	if r.StartedAt.IsZero() {
		r.StartedAt = time.Now()
	}
	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}
	return nil
}

// Duration is the wall time of a finished run, or zero while it is running.
func (r *DispatchRun) Duration() time.Duration {
	if r.FinishedAt == nil {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

func IsValidDispatchJob(job string) bool {
	switch job {
	case DispatchJobInstallments, DispatchJobSavings:
		return true
	default:
		return false
	}
}
