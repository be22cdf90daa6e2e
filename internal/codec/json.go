package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"assetnorm/internal/domain"
)

// JSONCodec handles JSON anomaly reports and summaries
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Export writes the anomaly entries as a JSON array indented by two spaces
func (c *JSONCodec) Export(anomalies []domain.AnomalyEntry, w io.Writer) error {
	if anomalies == nil {
		anomalies = []domain.AnomalyEntry{}
	}
	return c.encode(anomalies, w)
}

// ExportSummary writes the run summary as JSON
func (c *JSONCodec) ExportSummary(summary *domain.Summary, w io.Writer) error {
	return c.encode(summary, w)
}

// ParseReport reads an anomaly report written by Export
func (c *JSONCodec) ParseReport(r io.Reader) ([]domain.AnomalyEntry, error) {
	var anomalies []domain.AnomalyEntry
	if err := json.NewDecoder(r).Decode(&anomalies); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return anomalies, nil
}

func (c *JSONCodec) encode(v any, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
