package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"assetnorm/internal/config"
	"assetnorm/internal/domain"
	"assetnorm/internal/service"
)

var (
	outputDir    string
	reportFormat string
	summaryPath  string
	ansiblePath  string
)

var runCmd = &cobra.Command{
	Use:   "run [input.csv]",
	Short: "Normalize an inventory export once",
	Long: `Normalize an inventory export and write the clean table and anomaly report.

Without an argument the configured input (default inventory_raw.csv) is used.
Outputs are written next to the input unless --output-dir is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalize,
}

func init() {
	addOutputFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for output files")
	cmd.Flags().StringVar(&reportFormat, "report-format", "", "anomaly report format: json, yaml")
	cmd.Flags().StringVar(&summaryPath, "summary", "", "also write a run summary to this file (.json or .yaml)")
	cmd.Flags().StringVar(&ansiblePath, "ansible", "", "also write an Ansible inventory to this file")
}

// buildJob merges command flags over the loaded config
func buildJob(args []string) (service.Job, error) {
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if reportFormat != "" {
		cfg.Output.ReportFormat = reportFormat
	}
	if summaryPath != "" {
		cfg.Output.Summary = summaryPath
	}
	if ansiblePath != "" {
		cfg.Output.AnsibleInventory = ansiblePath
	}
	if err := cfg.Validate(); err != nil {
		return service.Job{}, err
	}

	var input string
	if len(args) > 0 {
		input = args[0]
	}

	return service.Job{
		Paths:        cfg.ResolvePaths(input),
		ReportFormat: cfg.Output.ReportFormat,
	}, nil
}

func runNormalize(cmd *cobra.Command, args []string) error {
	job, err := buildJob(args)
	if err != nil {
		printError("config", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := service.NewNormalizeService(logger, nil).Normalize(ctx, job)
	if err != nil {
		printError("normalize", err)
		return err
	}

	printReport(cmd.OutOrStdout(), job.Paths, report.Summary)
	return nil
}

func printReport(w io.Writer, paths config.Paths, summary *domain.Summary) {
	fmt.Fprintf(w, "Processed %d rows from %s\n", summary.Rows, paths.Input)
	fmt.Fprintf(w, "  Clean table:  %s\n", paths.CleanCSV)
	fmt.Fprintf(w, "  Anomalies:    %s (%d rows, %d issues)\n", paths.Anomalies, summary.AnomalousRows, summary.Issues)
	if paths.Summary != "" {
		fmt.Fprintf(w, "  Summary:      %s\n", paths.Summary)
	}
	if paths.AnsibleInventory != "" {
		fmt.Fprintf(w, "  Ansible:      %s\n", paths.AnsibleInventory)
	}
}
