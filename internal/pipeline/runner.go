package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"assetnorm/internal/domain"
	"assetnorm/internal/ipv4"
)

// Source yields raw records in input order and returns io.EOF when done
type Source interface {
	Next() (domain.RawRecord, error)
}

// Sink receives normalized records in input order
type Sink interface {
	Write(out *domain.OutputRecord) error
	Flush() error
}

// Runner processes every record of a Source
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a runner; a nil logger uses slog.Default()
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger}
}

// Run processes all records sequentially. Anomaly entries are appended in
// input row order. Any Source or Sink error aborts the run, as does
// cancelling ctx between rows.
func (r *Runner) Run(ctx context.Context, src Source, sink Sink) (*domain.Report, error) {
	runID := uuid.NewString()
	logger := r.logger.With("run_id", runID)
	logger.Info("normalization started")

	report := &domain.Report{
		Anomalies: make([]domain.AnomalyEntry, 0),
		Summary:   domain.NewSummary(runID),
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record %d: %w", report.Summary.Rows+1, err)
		}

		out, entry := ProcessRow(rec)
		if err := sink.Write(out); err != nil {
			return nil, fmt.Errorf("write record %d: %w", report.Summary.Rows+1, err)
		}

		var addressType string
		if out.IPValid {
			addressType = string(ipv4.Classify(out.IP))
		}
		report.Summary.Observe(out, entry, addressType)

		if entry != nil {
			logger.Debug("anomaly recorded",
				"source_row_id", entry.SourceRowID,
				"issues", len(entry.Issues))
			report.Anomalies = append(report.Anomalies, *entry)
		}
	}

	if err := sink.Flush(); err != nil {
		return nil, fmt.Errorf("flush output: %w", err)
	}

	report.Summary.Finish()
	logger.Info("normalization finished",
		"rows", report.Summary.Rows,
		"anomalous_rows", report.Summary.AnomalousRows,
		"duration", report.Summary.FinishedAt.Sub(report.Summary.StartedAt))

	return report, nil
}

// SliceSource serves records from memory
type SliceSource struct {
	records []domain.RawRecord
	pos     int
}

// NewSliceSource creates a source over records
func NewSliceSource(records []domain.RawRecord) *SliceSource {
	return &SliceSource{records: records}
}

// Next returns the next record or io.EOF
func (s *SliceSource) Next() (domain.RawRecord, error) {
	if s.pos >= len(s.records) {
		return nil, io.EOF
	}
	rec := s.records[s.pos]
	s.pos++
	return rec, nil
}

// MemorySink collects output records in memory
type MemorySink struct {
	Records []domain.OutputRecord
}

// Write appends a copy of out
func (m *MemorySink) Write(out *domain.OutputRecord) error {
	m.Records = append(m.Records, *out)
	return nil
}

// Flush is a no-op
func (m *MemorySink) Flush() error {
	return nil
}
