package codec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"assetnorm/internal/domain"
)

const utf8BOM = "\uFEFF"

// CSVReader reads raw records from a CSV export with a header row
type CSVReader struct {
	r      *csv.Reader
	header []string
	line   int
}

// NewCSVReader reads the header row. An empty input yields a reader that
// returns io.EOF immediately.
func NewCSVReader(r io.Reader) (*CSVReader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &CSVReader{r: cr}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	return &CSVReader{r: cr, header: header, line: 1}, nil
}

// UnknownColumns returns the header columns that no normalization stage
// reads, in header order
func (c *CSVReader) UnknownColumns() []string {
	var unknown []string
	for _, name := range c.header {
		if !slices.Contains(domain.InputColumns, name) {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// Next returns the next record. Columns missing from a short row are left
// out of the record and read as empty strings; extra fields are ignored.
func (c *CSVReader) Next() (domain.RawRecord, error) {
	if c.header == nil {
		return nil, io.EOF
	}

	fields, err := c.r.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	c.line++
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV row %d: %w", c.line, err)
	}

	rec := make(domain.RawRecord, len(c.header))
	for i, name := range c.header {
		if i < len(fields) {
			rec[name] = fields[i]
		}
	}
	return rec, nil
}

// CSVWriter writes normalized records in the fixed output column order
type CSVWriter struct {
	w *csv.Writer
}

// NewCSVWriter writes the header row
func NewCSVWriter(w io.Writer) (*CSVWriter, error) {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(domain.OutputColumns); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	return &CSVWriter{w: cw}, nil
}

// Write appends one record
func (c *CSVWriter) Write(out *domain.OutputRecord) error {
	if err := c.w.Write(out.Row()); err != nil {
		return fmt.Errorf("failed to write CSV row: %w", err)
	}
	return nil
}

// Flush writes buffered rows to the underlying writer
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
