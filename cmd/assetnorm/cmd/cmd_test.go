package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetnorm/internal/config"
	"assetnorm/internal/domain"
	"assetnorm/internal/service"
)

// execute runs the root command in an isolated environment with no config file
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("ASSETNORM_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cfgFile, logLevel, logFormat = "", "", "text"
	outputDir, reportFormat, summaryPath, ansiblePath = "", "", "", ""
	initFormat = "yaml"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--log-format", "text", "--log-level", "error"))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "inventory_raw.csv")
	require.NoError(t, os.WriteFile(input, []byte(
		"ip,hostname,mac,source_row_id\n10.0.0.1,host1,aa:bb:cc:dd:ee:ff,1\nbad,host2,,2\n"), 0644))
	outDir := t.TempDir()

	out, err := execute(t, "run", input, "--output-dir", outDir, "--summary", "summary.json")
	require.NoError(t, err)
	assert.Contains(t, out, "Processed 2 rows")

	assert.FileExists(t, filepath.Join(outDir, "inventory_clean.csv"))
	assert.FileExists(t, filepath.Join(outDir, "anomalies.json"))

	data, err := os.ReadFile(filepath.Join(outDir, "summary.json"))
	require.NoError(t, err)
	var summary map[string]any
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, float64(2), summary["rows"])
	assert.Equal(t, float64(1), summary["anomalous_rows"])
}

func TestRunCommandMissingInput(t *testing.T) {
	_, err := execute(t, "run", filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestRunCommandBadReportFormat(t *testing.T) {
	_, err := execute(t, "run", "--report-format", "xml")
	assert.Error(t, err)
}

func TestSchemaCommand(t *testing.T) {
	out, err := execute(t, "schema")
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Equal(t, "array", schema["type"])
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "assetnorm v"+Version)
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assetnorm.yaml")

	out, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	out, err = execute(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "# "+path)
	assert.Contains(t, out, "anomalies: anomalies.json")
	assert.Contains(t, out, "# Input: inventory_raw.csv")
}

func TestConfigInitTOMLDefaultLocation(t *testing.T) {
	out, err := execute(t, "config", "init", "--format", "toml")
	require.NoError(t, err)

	path := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "assetnorm", "config.toml")
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	out, err = execute(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "report_format: json")
}

func TestConfigInitRejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "config", "init", "--format", "ini")
	assert.Error(t, err)
}

func TestConfigPathListsSearchOrder(t *testing.T) {
	out, err := execute(t, "config", "path")
	require.NoError(t, err)

	assert.Contains(t, out, "Using: defaults")
	for _, want := range []string{"assetnorm.yaml", "assetnorm.yml", "assetnorm.toml", "/etc/assetnorm/config.toml"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "assetnorm.toml"), strings.Index(out, "/etc/assetnorm/config.yaml"))
}

func TestReportEvents(t *testing.T) {
	events := make(chan service.Event, 2)
	events <- service.Event{Type: service.EventRunFinished, Input: "raw.csv", Summary: &domain.Summary{Rows: 4, AnomalousRows: 1, Issues: 2}}
	events <- service.Event{Type: service.EventRunFailed, Input: "raw.csv", Err: errors.New("disk full")}
	close(events)

	var out bytes.Buffer
	reportEvents(&out, config.Paths{Input: "raw.csv", CleanCSV: "clean.csv", Anomalies: "anomalies.json"}, events)

	assert.Contains(t, out.String(), "Processed 4 rows from raw.csv")
	assert.Contains(t, out.String(), "anomalies.json (1 rows, 2 issues)")
	assert.Contains(t, out.String(), "Run failed for raw.csv: disk full")
}
