package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config drives a batch evaluation run. Flags override file values.
type Config struct {
	GraphPath       string `yaml:"graph" validate:"required"`
	CoverPath       string `yaml:"cover" validate:"required"`
	ComparePath     string `yaml:"compare"`
	WeightAttribute string `yaml:"weight_attribute"`
	AllowNaN        bool   `yaml:"allow_nan"`
	LogLevel        string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	DumpMetrics     bool   `yaml:"dump_metrics"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the config's struct tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
