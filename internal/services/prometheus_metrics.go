package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsRecorded *prometheus.CounterVec
	reportsGenerated     *prometheus.CounterVec
	reportDuration       prometheus.Histogram
	budgetsSet           *prometheus.CounterVec
	budgetsOverLimit     prometheus.Gauge
	categoriesCreated    *prometheus.CounterVec
	goalsCreatedTotal    prometheus.Counter
	goalsFundedTotal     prometheus.Counter
	goalsCompletedTotal  prometheus.Counter
	authEventsTotal      *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_recorded_total",
				Help: "Total number of ledger transactions recorded",
			},
			[]string{"type"},
		),
		reportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_generated_total",
				Help: "Total number of derived reports generated",
			},
			[]string{"view"},
		),
		reportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_milliseconds",
				Help:    "Report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		budgetsSet: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgets_set_total",
				Help: "Total number of budget limits set or replaced",
			},
			[]string{"scope"},
		),
		budgetsOverLimit: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "budgets_over_limit",
				Help: "Number of budget lines over their limit in the last evaluated report",
			},
		),
		categoriesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "categories_created_total",
				Help: "Total number of user categories created",
			},
			[]string{"type"},
		),
		goalsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "goals_created_total",
				Help: "Total number of savings goals created",
			},
		),
		goalsFundedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "goals_funded_total",
				Help: "Total number of deposits into savings goals",
			},
		),
		goalsCompletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "goals_completed_total",
				Help: "Total number of savings goals reaching their target",
			},
		),
		authEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transaction.recorded":
		m.transactionsRecorded.WithLabelValues(tags["type"]).Inc()
	case "report.generated":
		m.reportsGenerated.WithLabelValues(tags["view"]).Inc()
	case "budget.set":
		m.budgetsSet.WithLabelValues(tags["scope"]).Inc()
	case "category.created":
		m.categoriesCreated.WithLabelValues(tags["type"]).Inc()
	case "goal.created":
		m.goalsCreatedTotal.Inc()
	case "goal.funded":
		m.goalsFundedTotal.Inc()
	case "goal.completed":
		m.goalsCompletedTotal.Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "report.generation":
		m.reportDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "budgets.over_limit":
		m.budgetsOverLimit.Set(value)
	}
}
