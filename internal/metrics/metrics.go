// Package metrics exposes Prometheus collectors for lint activity.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/leapstack-labs/contentlint/pkg/lint"
)

const namespace = "contentlint"

// Metrics records lint activity. It implements lint.Observer.
type Metrics struct {
	registry *prometheus.Registry

	documents  prometheus.Counter
	findings   *prometheus.CounterVec
	ruleErrors *prometheus.CounterVec
	duration   prometheus.Histogram
	requests   *prometheus.CounterVec
}

var _ lint.Observer = (*Metrics)(nil)

// New registers the collectors on a fresh registry, together with the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		// documents counts every document passed through the checkers
		documents: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_linted_total",
			Help:      "Total documents linted",
		}),

		findings: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "findings_total",
			Help:      "Total findings by rule and severity",
		}, []string{"rule", "severity"}),

		ruleErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rule_errors_total",
			Help:      "Total checker failures by rule",
		}, []string{"rule"}),

		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "document_duration_seconds",
			Help:      "Time spent linting one document",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
		}),

		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total API requests by route and status code",
		}, []string{"route", "code"}),
	}
}

// DocumentLinted implements lint.Observer.
func (m *Metrics) DocumentLinted(_ string, findings []lint.Finding, elapsed time.Duration) {
	m.documents.Inc()
	m.duration.Observe(elapsed.Seconds())
	for _, f := range findings {
		m.findings.WithLabelValues(f.RuleID, f.Severity.String()).Inc()
	}
}

// CheckerFailed implements lint.Observer.
func (m *Metrics) CheckerFailed(ruleID string, _ error) {
	m.ruleErrors.WithLabelValues(ruleID).Inc()
}

// RequestServed counts one API response.
func (m *Metrics) RequestServed(route string, code int) {
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
