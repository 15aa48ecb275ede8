package services_test

import (
	"strings"
	"testing"
	"time"

	"clevercash/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := services.NewPrometheusMetrics(registry)

	metrics.IncrementCounter(services.MetricObligationStep, map[string]string{"type": "saving", "outcome": "applied"})
	metrics.IncrementCounter(services.MetricObligationStep, map[string]string{"type": "saving", "outcome": "applied"})
	metrics.IncrementCounter(services.MetricAdmissionDecision, map[string]string{"source": "PAYMENT", "result": "rejected"})
	metrics.IncrementCounter(services.MetricPayments, map[string]string{"status": "created"})
	metrics.IncrementCounter(services.MetricPayments, map[string]string{})
	metrics.IncrementCounter(services.MetricDispatchRun, map[string]string{"type": "installments", "status": "completed"})
	metrics.IncrementCounter("unknown.metric", nil)

	expected := `
# HELP obligation_steps_total Total number of obligation processing steps by outcome
# TYPE obligation_steps_total counter
obligation_steps_total{outcome="applied",type="saving"} 2
# HELP admission_decisions_total Total number of admission checks by source and result
# TYPE admission_decisions_total counter
admission_decisions_total{result="rejected",source="PAYMENT"} 1
# HELP payments_total Total number of ad-hoc payments by status
# TYPE payments_total counter
payments_total{status="created"} 1
# HELP dispatch_runs_total Total number of dispatcher runs by job and status
# TYPE dispatch_runs_total counter
dispatch_runs_total{status="completed",type="installments"} 1
`
	err := testutil.GatherAndCompare(registry, strings.NewReader(expected),
		"obligation_steps_total", "admission_decisions_total", "payments_total", "dispatch_runs_total")
	assert.NoError(t, err)
}

func TestPrometheusMetrics_DurationsAndGauge(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := services.NewPrometheusMetrics(registry)

	metrics.RecordProcessingTime(services.MetricObligationDuration, 12*time.Millisecond)
	metrics.RecordProcessingTime(services.MetricDispatchDurationPrefix+"savings", time.Second)
	metrics.RecordProcessingTime(services.MetricDispatchDurationPrefix+"installments", time.Second)
	metrics.RecordGauge(services.MetricDispatchDue, 7, map[string]string{"type": "savings"})

	count, err := testutil.GatherAndCount(registry, "dispatch_duration_milliseconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(registry, "obligation_step_duration_milliseconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	expected := `
# HELP dispatch_due_obligations Number of due obligations found by the last run
# TYPE dispatch_due_obligations gauge
dispatch_due_obligations{type="savings"} 7
`
	assert.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "dispatch_due_obligations"))
}
