// Copyright 2025 Certen Protocol
//
// Package metrics exposes Prometheus counters and gauges over validation
// outcomes and store size, for an embedder that wants a /metrics
// endpoint in front of the validator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/certen/threshold-ballot/ids"
)

// Registry wraps the metric collectors an electionnode process tracks.
// It does not register itself with the default Prometheus registerer --
// callers pass their own *prometheus.Registry so tests can each use a
// fresh one.
type Registry struct {
	ValidationsTotal *prometheus.CounterVec
	ValidationErrors *prometheus.CounterVec
	StoreSize        *prometheus.GaugeVec
}

// New builds a Registry and registers its collectors with reg.
func New(reg *prometheus.Registry) *Registry {
	m := &Registry{
		ValidationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "certen_ballot",
			Name:      "validations_total",
			Help:      "Transactions validated, by transaction kind and outcome.",
		}, []string{"kind", "outcome"}),
		ValidationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "certen_ballot",
			Name:      "validation_errors_total",
			Help:      "Validation failures, by transaction kind and error tag.",
		}, []string{"kind", "error"}),
		StoreSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "certen_ballot",
			Name:      "store_transactions",
			Help:      "Transactions currently held by the store, by kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.ValidationsTotal, m.ValidationErrors, m.StoreSize)
	return m
}

// ObserveSuccess records a successful validation of kind.
func (m *Registry) ObserveSuccess(kind ids.Type) {
	m.ValidationsTotal.WithLabelValues(kind.String(), "ok").Inc()
}

// ObserveFailure records a failed validation of kind, tagged with the
// stable error label (e.g. "BadSignature", "NotEnoughShares").
func (m *Registry) ObserveFailure(kind ids.Type, errorTag string) {
	m.ValidationsTotal.WithLabelValues(kind.String(), "error").Inc()
	m.ValidationErrors.WithLabelValues(kind.String(), errorTag).Inc()
}

// SetStoreSize reports the current count of stored transactions of kind.
func (m *Registry) SetStoreSize(kind ids.Type, count int) {
	m.StoreSize.WithLabelValues(kind.String()).Set(float64(count))
}
