package pipeline

import (
	"errors"

	"assetnorm/internal/domain"
)

// MultiSink fans out records to several sinks in order.
// If one sink fails, the remaining sinks still receive the record.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a sink writing to every given sink
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Write delivers the record to every sink, collecting errors
func (m *MultiSink) Write(out *domain.OutputRecord) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Write(out); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Flush flushes every sink, collecting errors
func (m *MultiSink) Flush() error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
