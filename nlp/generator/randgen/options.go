package randgen

import (
	"go.uber.org/zap"

	"github.com/johndpope/tgen/alg/dist"
)

const DEFAULT_MAX_NODES = 50

type options struct {
	workers  int
	logger   *zap.Logger
	metrics  *Metrics
	sampler  *dist.Sampler
	maxNodes int
}

// Option configures training and generation.
type Option func(*options)

func defaultOptions() options {
	return options{
		workers:  1,
		logger:   zap.NewNop(),
		maxNodes: DEFAULT_MAX_NODES,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.sampler == nil {
		o.sampler = dist.NewSampler(0)
	}
	return o
}

// WithWorkers counts the corpus in n concurrent shards; values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithSampler sets the random source used for every draw.
func WithSampler(s *dist.Sampler) Option {
	return func(o *options) {
		o.sampler = s
	}
}

// WithSeed is shorthand for WithSampler(dist.NewSampler(seed)).
func WithSeed(seed int64) Option {
	return WithSampler(dist.NewSampler(seed))
}

// WithMaxNodes bounds the size of trees built by Generate.
func WithMaxNodes(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxNodes = n
		}
	}
}
