package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PageMetrics counts rendered pages.
type PageMetrics struct {
	renders  *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewPageMetrics registers the page counters with reg. A nil reg means the
// default Prometheus registry, which /-/metrics exposes.
func NewPageMetrics(reg prometheus.Registerer) *PageMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	return &PageMetrics{
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "truepath",
			Name:      "page_renders_total",
			Help:      "Pages rendered, by page.",
		}, []string{"page"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "truepath",
			Name:      "page_render_failures_total",
			Help:      "Pages that failed to render, by page.",
		}, []string{"page"}),
	}
}

func (m *PageMetrics) rendered(page string) {
	if m != nil {
		m.renders.WithLabelValues(page).Inc()
	}
}

func (m *PageMetrics) failed(page string) {
	if m != nil {
		m.failures.WithLabelValues(page).Inc()
	}
}
