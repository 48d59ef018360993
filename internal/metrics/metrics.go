// Package metrics holds the Prometheus collectors of the offspring VM.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const Namespace = "offspring"

// Entry point label values.
const (
	EntryValidate    = "validate"
	EntryInstantiate = "instantiate"
	EntryExecute     = "execute"
	EntryQuery       = "query"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

// Metrics records the calls made through the VM.
type Metrics struct {
	callsTotal         *prometheus.CounterVec
	callDuration       *prometheus.HistogramVec
	validationFailures *prometheus.CounterVec
}

// New registers the collectors on reg. Passing a fresh prometheus.Registry
// keeps tests and parallel VMs apart.
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		callsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "calls_total",
				Help:      "Total number of contract calls by entry point and result",
			},
			[]string{"entry_point", "result"},
		),
		callDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "call_duration_seconds",
				Help:      "Time taken by a contract call",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"entry_point"},
		),
		validationFailures: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "validation_failures_total",
				Help:      "Rejected instantiate messages by error kind",
			},
			[]string{"kind"},
		),
	}
}

// ObserveCall records one finished call. A nil receiver is a no-op.
func (m *Metrics) ObserveCall(entryPoint string, took time.Duration, err error) {
	if m == nil {
		return
	}
	result := resultOK
	if err != nil {
		result = resultError
	}
	m.callsTotal.WithLabelValues(entryPoint, result).Inc()
	m.callDuration.WithLabelValues(entryPoint).Observe(took.Seconds())
}

// AddValidationFailure counts a rejected instantiate message.
func (m *Metrics) AddValidationFailure(kind string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(kind).Inc()
}
