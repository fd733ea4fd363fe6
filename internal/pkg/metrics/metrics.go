// Package metrics exposes prometheus instrumentation for the order service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OrderDecisions counts coordination decisions by outcome.
type OrderDecisions struct {
	decisions *prometheus.CounterVec
}

func NewOrderDecisions(reg prometheus.Registerer) *OrderDecisions {
	decisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "order",
		Name:      "decisions_total",
		Help:      "Total CreateOrder decisions by outcome.",
	}, []string{"outcome"})

	reg.MustRegister(decisions)
	return &OrderDecisions{decisions: decisions}
}

// Observe records one decision. Nil receivers are a no-op so the coordinator
// can run without metrics in tests.
func (m *OrderDecisions) Observe(outcome string) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(outcome).Inc()
}

// Handler serves the default registry in the standard exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
