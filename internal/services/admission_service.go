package services

import (
	"context"
	"fmt"

	"clevercash/internal/models"
	"clevercash/internal/repositories"

	"github.com/shopspring/decimal"
)

// Admission rejection reasons, in the order they are checked.
const (
	ReasonExceedsDailyLimit    = "daily_limit_exceeded_by_amount"
	ReasonInsufficientBalance  = "insufficient_balance"
	ReasonDailyLimitReached    = "daily_limit_reached"
	ReasonDailyBudgetExhausted = "daily_budget_exhausted"
)

// AdmissionDecision is the result of the admission predicate. Reason is empty
// when Admitted is true.
type AdmissionDecision struct {
	Admitted  bool
	Reason    string
	Available decimal.Decimal
}

// EvaluateAdmission decides whether a debit of |amount| fits the balance and
// what is left of today's limit after todaySpent.
func EvaluateAdmission(balance, dailyLimit, todaySpent, amount decimal.Decimal) AdmissionDecision {
	amount = amount.Abs()
	available := dailyLimit.Sub(todaySpent)
	decision := AdmissionDecision{Available: available}

	switch {
	case amount.GreaterThan(dailyLimit):
		decision.Reason = ReasonExceedsDailyLimit
	case balance.LessThan(amount):
		decision.Reason = ReasonInsufficientBalance
	case !todaySpent.LessThan(dailyLimit):
		decision.Reason = ReasonDailyLimitReached
	case available.Sub(amount).IsNegative():
		decision.Reason = ReasonDailyBudgetExhausted
	default:
		decision.Admitted = true
	}

	return decision
}

type AdmissionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	clock           Clock
}

func NewAdmissionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	clock Clock,
) AdmissionServiceInterface {
	return &AdmissionService{
		transactionRepo: transactionRepo,
		auditLogger:     auditLogger,
		metrics:         metrics,
		clock:           clock,
	}
}

func (s *AdmissionService) CanMakeTransaction(ctx context.Context, account *models.Account, entry *models.Transaction) (bool, error) {
	start, end := models.DayRange(s.clock.Now())

	entries, err := s.transactionRepo.GetByDateRange(ctx, account.ID, start, end)
	if err != nil {
		return false, fmt.Errorf("failed to load today's entries: %w", err)
	}

	decision := EvaluateAdmission(account.Balance, account.DailyLimit, models.SumSpent(entries), entry.Amount)

	result := "admitted"
	if !decision.Admitted {
		result = "rejected"
		s.auditLogger.LogAdmissionRejected(ctx, account.ID, entry.TransactionType, entry.Magnitude().String(), decision.Reason)
	}

	s.metrics.IncrementCounter(MetricAdmissionDecision, map[string]string{
		"source": entry.TransactionType,
		"result": result,
	})

	return decision.Admitted, nil
}
