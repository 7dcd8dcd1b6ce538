package models

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds runtime configuration for metasift commands.
// Values come from the environment first, then an optional YAML file,
// then CLI flags.
type Config struct {
	Workers     int      `env:"METASIFT_WORKERS" envDefault:"4" yaml:"workers"`
	Format      string   `env:"METASIFT_FORMAT" envDefault:"json" yaml:"format"`
	LogLevel    string   `env:"METASIFT_LOG_LEVEL" envDefault:"info" yaml:"log_level"`
	TopKeywords int      `env:"METASIFT_TOP_KEYWORDS" envDefault:"25" yaml:"top_keywords"`
	Extensions  []string `env:"METASIFT_EXTENSIONS" envSeparator:"," envDefault:".html,.htm" yaml:"extensions"`
}

// LoadConfig builds a Config from the environment and, if path is set, a YAML file.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env is optional

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.Format = strings.ToLower(cfg.Format)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	var errs []error
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if c.Format != FormatJSON && c.Format != FormatYAML {
		errs = append(errs, fmt.Errorf("unknown format %q (want json or yaml)", c.Format))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	if c.TopKeywords < 0 {
		errs = append(errs, fmt.Errorf("top_keywords must not be negative, got %d", c.TopKeywords))
	}
	if len(c.Extensions) == 0 {
		errs = append(errs, errors.New("at least one file extension is required"))
	}
	return errors.Join(errs...)
}
