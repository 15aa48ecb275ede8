package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"clevercash/internal/models"
	"clevercash/internal/repositories"
	"clevercash/internal/validation"

	"github.com/google/uuid"
)

// ProcessingOutcome is the result of one obligation step.
type ProcessingOutcome string

const (
	// OutcomeApplied means money moved and the obligation stays active.
	OutcomeApplied ProcessingOutcome = "applied"
	// OutcomeCompleted means money moved and the obligation was closed.
	OutcomeCompleted ProcessingOutcome = "completed"
	// OutcomeSkipped means admission refused the debit; nothing changed.
	OutcomeSkipped ProcessingOutcome = "skipped"
)

const (
	ObligationInstallment = "installment"
	ObligationSaving      = "saving"
)

func loadAccount(ctx context.Context, repo repositories.AccountRepositoryInterface, accountID uuid.UUID) (*models.Account, error) {
	account, err := repo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	return account, nil
}

// invalidInput wraps sentinel with the field errors found in err.
func invalidInput(sentinel error, err error) error {
	fields := validation.FieldErrors(err)
	if len(fields) == 0 {
		return fmt.Errorf("%w: %v", sentinel, err)
	}

	parts := make([]string, 0, len(fields))
	for field, msg := range fields {
		parts = append(parts, field+" "+msg)
	}
	sort.Strings(parts)

	return fmt.Errorf("%w: %s", sentinel, strings.Join(parts, "; "))
}

func recordStep(metrics MetricsRecorderInterface, obligationType string, outcome ProcessingOutcome, started time.Time) {
	metrics.IncrementCounter(MetricObligationStep, map[string]string{
		"type":    obligationType,
		"outcome": string(outcome),
	})
	metrics.RecordProcessingTime(MetricObligationDuration, time.Since(started))
}
