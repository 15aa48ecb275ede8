package dto

import (
	"time"

	"clevercash/internal/models"

	"github.com/google/uuid"
)

// RunSummary reports the outcome counts of one dispatcher run
type RunSummary struct {
	RunID        uuid.UUID `json:"run_id"`
	Job          string    `json:"job"`
	Trigger      string    `json:"trigger"`
	BusinessDate string    `json:"business_date"`
	Due          int       `json:"due"`
	Applied      int       `json:"applied"`
	Completed    int       `json:"completed"`
	Skipped      int       `json:"skipped"`
	Failed       int       `json:"failed"`
	DurationMs   int64     `json:"duration_ms"`
	StartedAt    time.Time `json:"started_at"`
}

// Processed is the number of steps that moved money.
func (s *RunSummary) Processed() int {
	return s.Applied + s.Completed
}

// DispatchRunListResponse lists recent dispatcher runs
type DispatchRunListResponse struct {
	Runs  []DispatchRunResponse `json:"runs"`
	Total int                   `json:"total"`
}

type DispatchRunResponse struct {
	ID           uuid.UUID  `json:"id"`
	Job          string     `json:"job"`
	Trigger      string     `json:"trigger"`
	Status       string     `json:"status"`
	BusinessDate string     `json:"business_date"`
	Due          int        `json:"due"`
	Applied      int        `json:"applied"`
	Completed    int        `json:"completed"`
	Skipped      int        `json:"skipped"`
	Failed       int        `json:"failed"`
	ErrorMessage string     `json:"error_message,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	DurationMs   int64      `json:"duration_ms"`
}

func NewDispatchRunResponse(run *models.DispatchRun) DispatchRunResponse {
	return DispatchRunResponse{
		ID:           run.ID,
		Job:          run.Job,
		Trigger:      run.Trigger,
		Status:       run.Status,
		BusinessDate: run.BusinessDate.Format(time.DateOnly),
		Due:          run.DueCount,
		Applied:      run.AppliedCount,
		Completed:    run.CompletedCount,
		Skipped:      run.SkippedCount,
		Failed:       run.FailedCount,
		ErrorMessage: run.ErrorMessage,
		StartedAt:    run.StartedAt,
		FinishedAt:   run.FinishedAt,
		DurationMs:   run.Duration().Milliseconds(),
	}
}
