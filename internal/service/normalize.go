package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"assetnorm/internal/codec"
	"assetnorm/internal/config"
	"assetnorm/internal/domain"
	"assetnorm/internal/pipeline"
)

// Job describes one normalization run
type Job struct {
	Paths        config.Paths
	ReportFormat string
}

// NormalizeService runs jobs against the filesystem
type NormalizeService struct {
	runner   *pipeline.Runner
	eventBus *EventBus
	logger   *slog.Logger
}

// NewNormalizeService creates a new service. eventBus may be nil.
func NewNormalizeService(logger *slog.Logger, eventBus *EventBus) *NormalizeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NormalizeService{
		runner:   pipeline.NewRunner(logger),
		eventBus: eventBus,
		logger:   logger,
	}
}

// Normalize processes the job's input file and writes every configured output.
// Field failures end up in the anomaly report; only I/O failures are returned.
func (s *NormalizeService) Normalize(ctx context.Context, job Job) (*domain.Report, error) {
	s.publish(Event{Type: EventRunStarted, Input: job.Paths.Input})

	report, err := s.normalize(ctx, job)
	if err != nil {
		s.publish(Event{Type: EventRunFailed, Input: job.Paths.Input, Err: err})
		return nil, err
	}

	s.publish(Event{Type: EventRunFinished, Input: job.Paths.Input, Summary: report.Summary})
	return report, nil
}

func (s *NormalizeService) normalize(ctx context.Context, job Job) (*domain.Report, error) {
	exporter, err := codec.ReportExporterFor(job.ReportFormat)
	if err != nil {
		return nil, err
	}

	in, err := os.Open(job.Paths.Input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	reader, err := codec.NewCSVReader(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", job.Paths.Input, err)
	}
	if unknown := reader.UnknownColumns(); len(unknown) > 0 {
		s.logger.Debug("ignoring unrecognized input columns", "input", job.Paths.Input, "columns", unknown)
	}

	var report *domain.Report
	var inventory *pipeline.MemorySink
	err = writeFile(job.Paths.CleanCSV, func(w io.Writer) error {
		writer, err := codec.NewCSVWriter(w)
		if err != nil {
			return err
		}

		var sink pipeline.Sink = writer
		if job.Paths.AnsibleInventory != "" {
			inventory = &pipeline.MemorySink{}
			sink = pipeline.NewMultiSink(writer, inventory)
		}

		report, err = s.runner.Run(ctx, reader, sink)
		return err
	})
	if err != nil {
		return nil, err
	}
	report.Summary.Input = job.Paths.Input

	if err := writeFile(job.Paths.Anomalies, func(w io.Writer) error {
		return exporter.Export(report.Anomalies, w)
	}); err != nil {
		return nil, err
	}

	if job.Paths.Summary != "" {
		if err := writeFile(job.Paths.Summary, func(w io.Writer) error {
			return codec.SummaryExporterForPath(job.Paths.Summary).ExportSummary(report.Summary, w)
		}); err != nil {
			return nil, err
		}
	}

	if inventory != nil {
		if err := writeFile(job.Paths.AnsibleInventory, func(w io.Writer) error {
			return codec.NewAnsibleCodec().Export(inventory.Records, w)
		}); err != nil {
			return nil, err
		}
	}

	s.logger.Info("outputs written",
		"clean_csv", job.Paths.CleanCSV,
		"anomalies", job.Paths.Anomalies,
		"anomalous_rows", report.Summary.AnomalousRows)

	return report, nil
}

func (s *NormalizeService) publish(event Event) {
	if s.eventBus != nil {
		s.eventBus.Publish(event)
	}
}

// writeFile creates path and hands it to write, reporting close errors too
func writeFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close %s: %w", path, cerr))
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
