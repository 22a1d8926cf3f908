package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SchedulerMetrics exposes counters/histograms for booking flows.
type SchedulerMetrics struct {
	commitsTotal  *prometheus.CounterVec
	cancelsTotal  *prometheus.CounterVec
	queriesTotal  *prometheus.CounterVec
	commitLatency prometheus.Histogram
	storeSize     prometheus.Gauge
	auditDropped  prometheus.Counter
	rateLimited   prometheus.Counter
}

func NewSchedulerMetrics(reg prometheus.Registerer) *SchedulerMetrics {
	m := &SchedulerMetrics{
		commitsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scheduler",
			Subsystem: "booking",
			Name:      "commits_total",
			Help:      "Booking attempts by outcome",
		}, []string{"outcome"}),
		cancelsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scheduler",
			Subsystem: "booking",
			Name:      "cancels_total",
			Help:      "Cancellation attempts by outcome",
		}, []string{"outcome"}),
		queriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scheduler",
			Subsystem: "query",
			Name:      "requests_total",
			Help:      "Read queries by view",
		}, []string{"view"}),
		commitLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "scheduler",
			Subsystem: "booking",
			Name:      "commit_latency_seconds",
			Help:      "Latency of booking commits including persistence",
			Buckets:   prometheus.DefBuckets,
		}),
		storeSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "scheduler",
			Subsystem: "store",
			Name:      "appointments",
			Help:      "Appointments currently held",
		}),
		auditDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "scheduler",
			Subsystem: "audit",
			Name:      "dropped_total",
			Help:      "Audit events dropped because the queue was full",
		}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "scheduler",
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.commitsTotal,
		m.cancelsTotal,
		m.queriesTotal,
		m.commitLatency,
		m.storeSize,
		m.auditDropped,
		m.rateLimited,
	)
	return m
}

func (m *SchedulerMetrics) ObserveCommit(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.commitsTotal.WithLabelValues(outcome).Inc()
	m.commitLatency.Observe(seconds)
}

func (m *SchedulerMetrics) ObserveCancel(outcome string) {
	if m == nil {
		return
	}
	m.cancelsTotal.WithLabelValues(outcome).Inc()
}

func (m *SchedulerMetrics) ObserveQuery(view string) {
	if m == nil {
		return
	}
	m.queriesTotal.WithLabelValues(view).Inc()
}

func (m *SchedulerMetrics) SetStoreSize(n int) {
	if m == nil {
		return
	}
	m.storeSize.Set(float64(n))
}

func (m *SchedulerMetrics) AuditDropped() {
	if m == nil {
		return
	}
	m.auditDropped.Inc()
}

func (m *SchedulerMetrics) RateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}
