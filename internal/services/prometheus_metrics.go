package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics.
const (
	MetricObligationStep     = "obligation.step"
	MetricObligationDuration = "obligation.processing"
	MetricAdmissionDecision  = "admission.decision"
	MetricPayments           = "payments_total"
	MetricDispatchRun        = "dispatch.run"
	MetricDispatchDue        = "dispatch.due"

	// MetricDispatchDurationPrefix is followed by the job name.
	MetricDispatchDurationPrefix = "dispatch.duration."
)

type PrometheusMetrics struct {
	obligationSteps    *prometheus.CounterVec
	obligationDuration prometheus.Histogram
	admissionDecisions *prometheus.CounterVec
	paymentsTotal      *prometheus.CounterVec
	dispatchRuns       *prometheus.CounterVec
	dispatchDuration   *prometheus.HistogramVec
	dispatchDue        *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the engine collectors on registerer. Passing
// nil uses the default registry.
func NewPrometheusMetrics(registerer prometheus.Registerer) MetricsRecorderInterface {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		obligationSteps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "obligation_steps_total",
				Help: "Total number of obligation processing steps by outcome",
			},
			[]string{"type", "outcome"},
		),
		obligationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "obligation_step_duration_milliseconds",
				Help:    "Duration of one obligation processing step in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		admissionDecisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "admission_decisions_total",
				Help: "Total number of admission checks by source and result",
			},
			[]string{"source", "result"},
		),
		paymentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_total",
				Help: "Total number of ad-hoc payments by status",
			},
			[]string{"status"},
		),
		dispatchRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dispatch_runs_total",
				Help: "Total number of dispatcher runs by job and status",
			},
			[]string{"type", "status"},
		),
		dispatchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dispatch_duration_milliseconds",
				Help:    "Dispatcher run duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"type"},
		),
		dispatchDue: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dispatch_due_obligations",
				Help: "Number of due obligations found by the last run",
			},
			[]string{"type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricObligationStep:
		m.obligationSteps.WithLabelValues(tags["type"], tags["outcome"]).Inc()
	case MetricAdmissionDecision:
		m.admissionDecisions.WithLabelValues(tags["source"], tags["result"]).Inc()
	case MetricPayments:
		if status := tags["status"]; status != "" {
			m.paymentsTotal.WithLabelValues(status).Inc()
		}
	case MetricDispatchRun:
		m.dispatchRuns.WithLabelValues(tags["type"], tags["status"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch {
	case name == MetricObligationDuration:
		m.obligationDuration.Observe(float64(duration.Milliseconds()))
	case strings.HasPrefix(name, MetricDispatchDurationPrefix):
		job := strings.TrimPrefix(name, MetricDispatchDurationPrefix)
		m.dispatchDuration.WithLabelValues(job).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricDispatchDue:
		m.dispatchDue.WithLabelValues(tags["type"]).Set(value)
	}
}
