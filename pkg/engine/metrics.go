package engine

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes the engine's runtime counters through a caller-supplied
// prometheus.Registry. Left nil (metrics.go's zero value, see WithMetrics)
// unless a caller opts in; the engine never starts its own HTTP listener,
// since serving /metrics is out of scope for the engine core (§1).
type Metrics struct {
	nodes    prometheus.Counter
	searches prometheus.Counter
	ttUsed   prometheus.Gauge
	depth    prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		nodes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "monarch_search_nodes_total",
			Help: "Total number of nodes visited across all searches.",
		}),
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "monarch_searches_total",
			Help: "Total number of Analyze calls launched.",
		}),
		ttUsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "monarch_tt_used_ratio",
			Help: "Fraction of transposition table slots occupied, as of the last completed iteration.",
		}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "monarch_search_depth",
			Help: "Depth of the last completed search iteration.",
		}),
	}
	reg.MustRegister(m.nodes, m.searches, m.ttUsed, m.depth)
	return m
}

func (m *Metrics) observeSearchLaunched() {
	if m == nil {
		return
	}
	m.searches.Inc()
}

func (m *Metrics) observeIteration(nodes uint64, depth int, ttUsed float64) {
	if m == nil {
		return
	}
	m.nodes.Add(float64(nodes))
	m.depth.Set(float64(depth))
	m.ttUsed.Set(ttUsed)
}

// WithMetrics registers the engine's counters against reg. Unset, the engine
// runs with metrics disabled (nil *Metrics; every observe call is then a
// no-op), so adopting the dependency costs nothing for callers who don't
// open a /metrics endpoint.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		e.metrics = newMetrics(reg)
	}
}
