// Package metrics collects and exposes Prometheus metrics for booking
// decisions.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records booking decision outcomes. It satisfies
// ports.DecisionMetrics.
type Collector struct {
	accepted      *prometheus.CounterVec
	rejected      *prometheus.CounterVec
	commitLatency prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		accepted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "courtbooker_decisions_accepted_total",
			Help: "Accepted booking operations by operation.",
		}, []string{"op"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "courtbooker_decisions_rejected_total",
			Help: "Rejected booking operations by operation and reason.",
		}, []string{"op", "reason"}),
		commitLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "courtbooker_commit_latency_seconds",
			Help:    "Latency of reservation commit transactions.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(c.accepted, c.rejected, c.commitLatency)

	return c
}

func (c *Collector) RecordAccepted(op string) {
	c.accepted.WithLabelValues(op).Inc()
}

func (c *Collector) RecordRejected(op, reason string) {
	c.rejected.WithLabelValues(op, reason).Inc()
}

func (c *Collector) RecordCommitLatency(d time.Duration) {
	c.commitLatency.Observe(d.Seconds())
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
