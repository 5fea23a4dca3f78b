package app

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/johndpope/tgen/nlp/generator/randgen"
	"github.com/johndpope/tgen/nlp/tree"
	"github.com/johndpope/tgen/nlp/types"
	"github.com/johndpope/tgen/util"
	"github.com/johndpope/tgen/util/conf"
)

var (
	configFile string
	modelFile  string
	treesFile  string
	dasFile    string
	goldFile   string
	outFile    string

	workers  int
	seed     int64
	maxNodes int
	limit    int
	verbose  bool

	cfg      *conf.Config
	logger   = zap.NewNop()
	registry *prometheus.Registry
)

// VerifyFlags checks that every required flag was given a value.
func VerifyFlags(cmd *commander.Command, required []string) error {
	for _, name := range required {
		f := cmd.Flag.Lookup(name)
		if f == nil || f.Value.String() == "" {
			cmd.Usage()
			return fmt.Errorf("required flag -%s not set", name)
		}
	}
	return nil
}

// VerifyExists fails for the first file that cannot be accessed.
func VerifyExists(filenames ...string) error {
	for _, filename := range filenames {
		if filename == "" {
			continue
		}
		if !util.VerifyExists(filename) {
			_, err := os.Stat(filename)
			return fmt.Errorf("accessing %s: %w", filename, err)
		}
	}
	return nil
}

var buildLogger = NewLogger

// NewLogger builds the command logger from the logging section of the
// config; verbose forces debug level.
func NewLogger(c conf.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("logging level %q: %w", c.Level, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

// setup loads the config file, applies flag overrides and builds the
// logger and metrics registry shared by the commands.
func setup(cmd *commander.Command) error {
	c := conf.DefaultConfig()
	if configFile != "" {
		var err error
		if c, err = conf.LoadConfig(configFile); err != nil {
			return err
		}
	}
	cmd.Flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "workers":
			c.Workers = workers
		case "seed":
			c.Seed = seed
		case "maxnodes":
			c.MaxNodes = maxNodes
		}
	})
	if err := c.Validate(); err != nil {
		return err
	}
	l, err := buildLogger(c.Logging, verbose)
	if err != nil {
		return err
	}
	cfg, logger = c, l
	if cpusCapped > 0 {
		logger.Warn("number of CPUs capped to all available", zap.Int("cpus", cpusCapped))
	}
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
	} else {
		registry = nil
	}
	return nil
}

func rootNode() tree.Node {
	return tree.Node{
		Formeme: types.Formeme(cfg.RootFormeme),
		Lemma:   cfg.RootLemma,
		Parent:  -1,
	}
}

// newGenerator builds a generator from the loaded config.
func newGenerator() (*randgen.Generator, error) {
	opts := []randgen.Option{
		randgen.WithWorkers(cfg.Workers),
		randgen.WithLogger(logger),
		randgen.WithSeed(cfg.Seed),
		randgen.WithMaxNodes(cfg.MaxNodes),
	}
	if registry != nil {
		metrics, err := randgen.NewMetrics(registry)
		if err != nil {
			return nil, err
		}
		opts = append(opts, randgen.WithMetrics(metrics))
	}
	return randgen.NewGenerator(opts...), nil
}

// logMetrics writes the gathered metric values to the log.
func logMetrics() {
	if registry == nil {
		return
	}
	families, err := registry.Gather()
	if err != nil {
		logger.Warn("gathering metrics", zap.Error(err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				logger.Info("metric", zap.String("name", mf.GetName()), zap.Float64("value", m.GetCounter().GetValue()))
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				logger.Info("metric", zap.String("name", mf.GetName()),
					zap.Uint64("count", h.GetSampleCount()),
					zap.Float64("sum", h.GetSampleSum()))
			}
		}
	}
}

func addCommonFlags(cmd *commander.Command) {
	cmd.Flag.StringVar(&configFile, "config", "", "YAML configuration file")
	cmd.Flag.BoolVar(&verbose, "v", false, "Debug logging")
}

func limitTo[T any](s []T) []T {
	if limit > 0 && limit < len(s) {
		return s[:limit]
	}
	return s
}
