package codec

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetnorm/internal/domain"
)

func TestCSVReader(t *testing.T) {
	input := "\uFEFFip,hostname,source_row_id\r\n" +
		"192.168.1.1,web01,1\r\n" +
		"\r\n" +
		"10.0.0.1\r\n" +
		"\"10.0.0.2\",\"db, primary\",3,extra\r\n"

	reader, err := NewCSVReader(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, reader.UnknownColumns())

	records := readAll(t, reader)
	require.Len(t, records, 3)

	assert.Equal(t, domain.RawRecord{"ip": "192.168.1.1", "hostname": "web01", "source_row_id": "1"}, records[0])

	t.Run("short row reads missing columns as empty", func(t *testing.T) {
		assert.Equal(t, "10.0.0.1", records[1].Get("ip"))
		assert.Equal(t, "", records[1].Get("hostname"))
		assert.Equal(t, "", records[1].Get("source_row_id"))
	})

	t.Run("quoted fields and extras", func(t *testing.T) {
		assert.Equal(t, "db, primary", records[2].Get("hostname"))
		assert.Len(t, records[2], 3)
	})

	t.Run("unknown columns read as empty", func(t *testing.T) {
		assert.Equal(t, "", records[0].Get("mac"))
	})
}

func readAll(t *testing.T, reader *CSVReader) []domain.RawRecord {
	t.Helper()
	var records []domain.RawRecord
	for {
		rec, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return records
		}
		require.NoError(t, err)
		records = append(records, rec)
	}
}

func TestCSVReaderUnknownColumns(t *testing.T) {
	reader, err := NewCSVReader(strings.NewReader("asset_tag,ip,IP,rack\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"asset_tag", "IP", "rack"}, reader.UnknownColumns())

	empty, err := NewCSVReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty.UnknownColumns())
}

func TestCSVReaderEmptyInput(t *testing.T) {
	reader, err := NewCSVReader(strings.NewReader(""))
	require.NoError(t, err)

	_, err = reader.Next()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestCSVReaderMalformedRow(t *testing.T) {
	reader, err := NewCSVReader(strings.NewReader("ip,hostname\n\"unterminated,web\n"))
	require.NoError(t, err)

	_, err = reader.Next()
	require.Error(t, err)
	assert.False(t, errors.Is(err, io.EOF))
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	writer, err := NewCSVWriter(&buf)
	require.NoError(t, err)

	require.NoError(t, writer.Write(&domain.OutputRecord{
		IP:                   "192.168.1.1",
		IPValid:              true,
		IPVersion:            "4",
		Owner:                domain.Owner{Name: "Doe, Jane"},
		DeviceType:           domain.DeviceTypeUnknown,
		DeviceTypeConfidence: domain.ConfidenceLow,
		SourceRowID:          "1",
		Steps:                []string{"ip_trim", "ip_parse", "ip_normalize"},
	}))
	require.NoError(t, writer.Flush())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(domain.OutputColumns, ","), lines[0])
	assert.Equal(t,
		`192.168.1.1,true,4,,,false,,false,,,false,"Doe, Jane",,,unknown,low,,,1,ip_trim|ip_parse|ip_normalize`,
		lines[1])
}
