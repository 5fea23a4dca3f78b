package randgen

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts generator activity. A nil *Metrics records nothing.
type Metrics struct {
	TreesTrained           prometheus.Counter
	Samples                prometheus.Counter
	Successors             prometheus.Counter
	SuccessorsPerExpansion prometheus.Histogram
}

// NewMetrics creates the generator metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		TreesTrained: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tgen_trees_trained_total",
			Help: "Training trees whose counts were collected",
		}),
		Samples: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tgen_samples_total",
			Help: "Keys drawn from child-count and child-entry distributions",
		}),
		Successors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tgen_successors_total",
			Help: "Candidate trees produced by successor expansion",
		}),
		SuccessorsPerExpansion: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tgen_successors_per_expansion",
			Help:    "Number of successors produced by one expansion",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10), // 1 to 512
		}),
	}
	for _, c := range []prometheus.Collector{m.TreesTrained, m.Samples, m.Successors, m.SuccessorsPerExpansion} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) trained(n int) {
	if m == nil {
		return
	}
	m.TreesTrained.Add(float64(n))
}

func (m *Metrics) sampled() {
	if m == nil {
		return
	}
	m.Samples.Inc()
}

func (m *Metrics) expanded(n int) {
	if m == nil {
		return
	}
	m.Successors.Add(float64(n))
	m.SuccessorsPerExpansion.Observe(float64(n))
}
