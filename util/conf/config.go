package conf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the training and generation commands.
type Config struct {
	// Workers is the number of corpus shards counted concurrently during training.
	Workers int `yaml:"workers"`

	// Seed seeds the sampler; 0 means seed from the clock.
	Seed int64 `yaml:"seed"`

	// MaxNodes bounds the size of a randomly generated tree.
	MaxNodes int `yaml:"max_nodes"`

	// RootFormeme and RootLemma label the technical root of every tree.
	RootFormeme string `yaml:"root_formeme"`
	RootLemma   string `yaml:"root_lemma"`

	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

func DefaultConfig() *Config {
	return &Config{
		Workers:     1,
		Seed:        0,
		MaxNodes:    50,
		RootFormeme: "<root>",
		RootLemma:   "<root>",
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be positive, got %d", c.Workers)
	}
	if c.MaxNodes < 1 {
		return fmt.Errorf("config: max_nodes must be positive, got %d", c.MaxNodes)
	}
	if c.RootFormeme == "" {
		return fmt.Errorf("config: root_formeme must not be empty")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown logging level %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
