package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Call outcomes used as the status label.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics holds the Prometheus collectors for contract reads.
// A nil *Metrics records nothing.
type Metrics struct {
	RPCCalls     *prometheus.CounterVec
	RPCLatency   *prometheus.HistogramVec
	RPCSwallowed *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them with reg. When reg is also a
// prometheus.Gatherer it backs Handler.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RPCCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "twindex_rpc_calls_total",
				Help: "Total number of contract reads by method and outcome",
			},
			[]string{"method", "status"},
		),
		RPCLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "twindex_rpc_call_duration_seconds",
				Help:    "Latency of contract reads",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
			},
			[]string{"method"},
		),
		RPCSwallowed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "twindex_rpc_swallowed_total",
				Help: "Failed contract reads replaced by an empty result",
			},
			[]string{"method"},
		),
	}

	reg.MustRegister(m.RPCCalls, m.RPCLatency, m.RPCSwallowed)
	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	}

	return m
}

// RecordCall records one contract read.
func (m *Metrics) RecordCall(method string, d time.Duration, err error) {
	if m == nil {
		return
	}
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.RPCCalls.WithLabelValues(method, status).Inc()
	m.RPCLatency.WithLabelValues(method).Observe(d.Seconds())
}

// RecordSwallowed counts a failure hidden from the caller.
func (m *Metrics) RecordSwallowed(method string) {
	if m == nil {
		return
	}
	m.RPCSwallowed.WithLabelValues(method).Inc()
}

// Handler serves the registered collectors.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
