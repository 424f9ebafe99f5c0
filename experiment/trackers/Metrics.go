package trackers

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samuelfneumann/goalvshole/experiment/tracker"
	ts "github.com/samuelfneumann/goalvshole/timestep"
)

// Metrics exposes the progress of an experiment as Prometheus metrics.
// Nothing is written to disk; the metrics are collected by whatever
// scrapes the registry they were registered with.
type Metrics struct {
	steps    prometheus.Counter
	episodes *prometheus.CounterVec
	epsilon  prometheus.Gauge
	wins     prometheus.Gauge
	returns  prometheus.Histogram
}

// NewMetrics creates the experiment metrics and registers them with
// reg, labelling every metric with the given run id
func NewMetrics(reg prometheus.Registerer, run string) (*Metrics, error) {
	labels := prometheus.Labels{"run": run}
	m := &Metrics{
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "goalvshole",
			Name:        "steps_total",
			Help:        "Environment steps taken.",
			ConstLabels: labels,
		}),
		episodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "goalvshole",
			Name:        "episodes_total",
			Help:        "Finished episodes by outcome.",
			ConstLabels: labels,
		}, []string{"outcome"}),
		epsilon: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "goalvshole",
			Name:        "epsilon",
			Help:        "Exploration rate of the behaviour policy.",
			ConstLabels: labels,
		}),
		wins: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "goalvshole",
			Name:        "wins",
			Help:        "Goals reached so far.",
			ConstLabels: labels,
		}),
		returns: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "goalvshole",
			Name:        "episode_return",
			Help:        "Return of finished episodes.",
			ConstLabels: labels,
			Buckets:     prometheus.LinearBuckets(-100, 10, 21),
		}),
	}

	for _, c := range []prometheus.Collector{m.steps, m.episodes, m.epsilon,
		m.wins, m.returns} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "newMetrics: could not register")
		}
	}
	return m, nil
}

// Track updates the metrics with a single timestep
func (m *Metrics) Track(s tracker.Snapshot) {
	m.epsilon.Set(s.Epsilon)
	m.wins.Set(float64(s.Wins))
	if s.Step.First() {
		return
	}

	m.steps.Inc()
	if s.Step.Last() {
		m.episodes.WithLabelValues(outcomeLabel(s.Step.End())).Inc()
		m.returns.Observe(s.Return)
	}
}

// Save is a no-op, metrics are scraped rather than saved
func (m *Metrics) Save() error {
	return nil
}

func outcomeLabel(e ts.EndType) string {
	switch e {
	case ts.Goal:
		return "win"
	case ts.Hole:
		return "loss"
	default:
		return "truncated"
	}
}
