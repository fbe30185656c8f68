// Package config loads the CLI harness's on-disk configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration for the CLI harness: where the
// checkpoint store lives, how verbose logging should be, whether metrics
// are exposed, and how often the harness takes an unprompted checkpoint.
type Config struct {
	DataDir            string        `yaml:"data_dir"`
	LogLevel           string        `yaml:"log_level"`
	MetricsEnabled     bool          `yaml:"metrics_enabled"`
	MetricsAddr        string        `yaml:"metrics_addr"`
	CheckpointInterval time.Duration `yaml:"checkpoint_interval"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		LogLevel:           "info",
		MetricsEnabled:     false,
		MetricsAddr:        ":9090",
		CheckpointInterval: 30 * time.Second,
	}
}

// Load reads and parses a YAML config file at path, filling in any field
// the file omits with Default()'s value.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
