package config

import (
	"time"
)

// Config is the root configuration structure
type Config struct {
	Version int           `yaml:"version" toml:"version"`
	Input   InputConfig   `yaml:"input" toml:"input"`
	Output  OutputConfig  `yaml:"output" toml:"output"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	Watch   WatchConfig   `yaml:"watch" toml:"watch"`
}

// InputConfig locates the inventory export
type InputConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// OutputConfig names the files a run writes.
// Relative file names resolve against Dir, or the input's directory if Dir is empty.
type OutputConfig struct {
	Dir              string `yaml:"dir,omitempty" toml:"dir,omitempty"`
	CleanCSV         string `yaml:"clean_csv" toml:"clean_csv"`
	Anomalies        string `yaml:"anomalies" toml:"anomalies"`
	ReportFormat     string `yaml:"report_format" toml:"report_format"` // json, yaml
	Summary          string `yaml:"summary,omitempty" toml:"summary,omitempty"`
	AnsibleInventory string `yaml:"ansible_inventory,omitempty" toml:"ansible_inventory,omitempty"`
}

// LoggingConfig holds log settings
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format" toml:"format"` // auto, text, json
}

// WatchConfig holds settings for re-running on input changes
type WatchConfig struct {
	Debounce Duration `yaml:"debounce" toml:"debounce"`
}

// Paths are the resolved file locations for one run
type Paths struct {
	Input            string
	CleanCSV         string
	Anomalies        string
	Summary          string
	AnsibleInventory string
}

// Duration wraps time.Duration for YAML and TOML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
