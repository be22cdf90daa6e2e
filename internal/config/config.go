// Package config provides configuration management for assetnorm.
//
// Only file locations, report format, logging and watch behavior are
// configurable. The validation and normalization rule tables are fixed.
//
// Config file locations (priority order):
//  1. $ASSETNORM_CONFIG
//  2. ./assetnorm.yaml or ./assetnorm.toml
//  3. ~/.config/assetnorm/config.yaml
//  4. /etc/assetnorm/config.yaml
//
// Files ending in .toml are decoded as TOML, everything else as YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultInput        = "inventory_raw.csv"
	DefaultCleanCSV     = "inventory_clean.csv"
	DefaultAnomalies    = "anomalies.json"
	DefaultReportFormat = "json"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "auto"
	DefaultDebounce     = 500 * time.Millisecond
)

// ErrInvalidConfig is wrapped by all validation failures
var ErrInvalidConfig = errors.New("invalid config")

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if isTOML(path) {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes config to the specified path in the format its extension names
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(c)
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns the defaults, matching the conventional file names
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Input.Path == "" {
		c.Input.Path = DefaultInput
	}
	if c.Output.CleanCSV == "" {
		c.Output.CleanCSV = DefaultCleanCSV
	}
	if c.Output.Anomalies == "" {
		c.Output.Anomalies = DefaultAnomalies
	}
	if c.Output.ReportFormat == "" {
		c.Output.ReportFormat = DefaultReportFormat
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	if c.Watch.Debounce <= 0 {
		c.Watch.Debounce = Duration(DefaultDebounce)
	}
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output.ReportFormat) {
	case "json", "yaml", "yml":
	default:
		return fmt.Errorf("%w: report_format %q", ErrInvalidConfig, c.Output.ReportFormat)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: logging level %q", ErrInvalidConfig, c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "auto", "text", "json":
	default:
		return fmt.Errorf("%w: logging format %q", ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}

// ResolvePaths returns the files for a run over input. An empty input uses
// the configured input path. Outputs land next to the input unless an
// output directory is configured; absolute output names are kept as is.
func (c *Config) ResolvePaths(input string) Paths {
	if input == "" {
		input = c.Input.Path
	}

	dir := c.Output.Dir
	if dir == "" {
		dir = filepath.Dir(input)
	}

	resolve := func(name string) string {
		if name == "" || filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(dir, name)
	}

	return Paths{
		Input:            input,
		CleanCSV:         resolve(c.Output.CleanCSV),
		Anomalies:        resolve(c.Output.Anomalies),
		Summary:          resolve(c.Output.Summary),
		AnsibleInventory: resolve(c.Output.AnsibleInventory),
	}
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	summary := fmt.Sprintf("Input: %s, Report: %s (%s)\n", c.Input.Path, c.Output.Anomalies, c.Output.ReportFormat)
	summary += fmt.Sprintf("Log level: %s, Log format: %s, Watch debounce: %s",
		c.Logging.Level, c.Logging.Format, c.Watch.Debounce.Duration())
	return summary
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
