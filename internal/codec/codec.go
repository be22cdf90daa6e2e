// Package codec reads inventory exports and writes normalized tables,
// anomaly reports, run summaries and derived inventories.
package codec

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"assetnorm/internal/domain"
)

// ErrUnknownFormat is returned for an unsupported report format
var ErrUnknownFormat = errors.New("unknown format")

// ReportExporter writes the anomaly report in a specific format
type ReportExporter interface {
	Export(anomalies []domain.AnomalyEntry, w io.Writer) error
	Format() string
}

// InventoryExporter writes normalized records in a specific format
type InventoryExporter interface {
	Export(records []domain.OutputRecord, w io.Writer) error
	Format() string
}

// SummaryExporter writes a run summary
type SummaryExporter interface {
	ExportSummary(summary *domain.Summary, w io.Writer) error
	Format() string
}

// ReportExporterFor returns the exporter for a report format name
func ReportExporterFor(format string) (ReportExporter, error) {
	switch strings.ToLower(format) {
	case "", "json":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	}
	return nil, fmt.Errorf("report format %q: %w", format, ErrUnknownFormat)
}

// SummaryExporterForPath picks JSON for a .json file and YAML otherwise
func SummaryExporterForPath(path string) SummaryExporter {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return NewJSONCodec()
	}
	return NewYAMLCodec()
}
