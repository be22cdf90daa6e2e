package codec

import (
	"fmt"
	"io"

	"assetnorm/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML anomaly reports and summaries
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// yamlReport represents the YAML structure of the anomaly report
type yamlReport struct {
	Anomalies []domain.AnomalyEntry `yaml:"anomalies"`
}

// Export writes the anomaly entries under an anomalies key
func (c *YAMLCodec) Export(anomalies []domain.AnomalyEntry, w io.Writer) error {
	if anomalies == nil {
		anomalies = []domain.AnomalyEntry{}
	}
	return c.encode(&yamlReport{Anomalies: anomalies}, w)
}

// ExportSummary writes the run summary as YAML
func (c *YAMLCodec) ExportSummary(summary *domain.Summary, w io.Writer) error {
	return c.encode(summary, w)
}

// ParseReport reads an anomaly report written by Export
func (c *YAMLCodec) ParseReport(r io.Reader) ([]domain.AnomalyEntry, error) {
	var yr yamlReport
	if err := yaml.NewDecoder(r).Decode(&yr); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return yr.Anomalies, nil
}

func (c *YAMLCodec) encode(v any, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
