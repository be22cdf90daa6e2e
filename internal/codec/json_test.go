package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetnorm/internal/domain"
)

func sampleAnomalies() []domain.AnomalyEntry {
	return []domain.AnomalyEntry{
		*domain.NewAnomalyEntry("2", []domain.Issue{
			{Field: "ip", Type: domain.ReasonOctetOutOfRange, Value: "999.1.1.1"},
			{Field: "mac", Type: domain.ReasonWrongLength, Value: "1234"},
		}),
	}
}

func TestJSONExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONCodec().Export(sampleAnomalies(), &buf))

	expected := `[
  {
    "source_row_id": "2",
    "issues": [
      {
        "field": "ip",
        "type": "octet_out_of_range",
        "value": "999.1.1.1"
      },
      {
        "field": "mac",
        "type": "wrong_length",
        "value": "1234"
      }
    ],
    "recommended_actions": [
      "Review and correct invalid fields"
    ]
  }
]
`
	assert.Equal(t, expected, buf.String())
}

func TestJSONExportEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONCodec().Export(nil, &buf))
	assert.Equal(t, "[]\n", buf.String())
}

func TestJSONExportDoesNotEscapeHTML(t *testing.T) {
	var buf bytes.Buffer
	anomalies := []domain.AnomalyEntry{*domain.NewAnomalyEntry("1", []domain.Issue{
		{Field: "hostname", Type: domain.ReasonInvalidChars, Value: "a<b>&c"},
	})}
	require.NoError(t, NewJSONCodec().Export(anomalies, &buf))
	assert.Contains(t, buf.String(), `"a<b>&c"`)
}

func TestJSONRoundTrip(t *testing.T) {
	c := NewJSONCodec()
	var buf bytes.Buffer
	require.NoError(t, c.Export(sampleAnomalies(), &buf))

	parsed, err := c.ParseReport(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleAnomalies(), parsed)
}

func TestJSONExportSummary(t *testing.T) {
	s := domain.NewSummary("run-42")
	s.Rows = 3

	var buf bytes.Buffer
	require.NoError(t, NewJSONCodec().ExportSummary(s, &buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-42", decoded["run_id"])
	assert.Equal(t, float64(3), decoded["rows"])
}

func TestReportExporterFor(t *testing.T) {
	tests := []struct {
		format   string
		expected string
	}{
		{"", "json"},
		{"json", "json"},
		{"yaml", "yaml"},
		{"yml", "yaml"},
		{"YAML", "yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			exp, err := ReportExporterFor(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, exp.Format())
		})
	}

	_, err := ReportExporterFor("xml")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestSummaryExporterForPath(t *testing.T) {
	assert.Equal(t, "json", SummaryExporterForPath("out/summary.json").Format())
	assert.Equal(t, "json", SummaryExporterForPath("SUMMARY.JSON").Format())
	assert.Equal(t, "yaml", SummaryExporterForPath("summary.yaml").Format())
	assert.Equal(t, "yaml", SummaryExporterForPath("summary").Format())
}
