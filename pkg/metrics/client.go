package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ClientMetrics records API round-trips and cart reconciliation outcomes.
type ClientMetrics struct {
	requestDuration  *prometheus.HistogramVec
	requestFailure   *prometheus.CounterVec
	reconcileOutcome *prometheus.CounterVec
}

// NewClientMetrics registers the client metrics on the provided registerer.
func NewClientMetrics(reg prometheus.Registerer) *ClientMetrics {
	if reg == nil {
		return &ClientMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shopfront_request_duration_seconds",
		Help:    "Duration of backend API requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shopfront_request_failure",
		Help: "Failed backend API requests.",
	}, []string{"operation"})
	reconcile := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shopfront_cart_reconcile_outcome",
		Help: "Terminal states reached by cart reconciliation runs.",
	}, []string{"state"})
	reg.MustRegister(duration, failure, reconcile)
	return &ClientMetrics{
		requestDuration:  duration,
		requestFailure:   failure,
		reconcileOutcome: reconcile,
	}
}

// ObserveRequest records the duration for the named API operation.
func (c *ClientMetrics) ObserveRequest(operation string, duration time.Duration) {
	if c == nil || c.requestDuration == nil {
		return
	}
	c.requestDuration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncRequestFailure increments the failure counter for the named operation.
func (c *ClientMetrics) IncRequestFailure(operation string) {
	if c == nil || c.requestFailure == nil {
		return
	}
	c.requestFailure.WithLabelValues(normalizeLabel(operation)).Inc()
}

// IncReconcileOutcome counts a reconciliation run ending in the given state.
func (c *ClientMetrics) IncReconcileOutcome(state string) {
	if c == nil || c.reconcileOutcome == nil {
		return
	}
	c.reconcileOutcome.WithLabelValues(normalizeLabel(state)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
