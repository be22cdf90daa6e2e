package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"assetnorm/internal/config"
	"assetnorm/internal/logging"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string

	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "assetnorm",
	Short: "Normalize network asset inventory exports",
	Long: `assetnorm validates and normalizes a CSV inventory export.

Each row is checked field by field (IPv4, host name, FQDN, MAC), cross-checked
(FQDN consistency, reverse PTR), and enriched (owner, device type, site).
The result is a clean CSV with a fixed column set plus an anomaly report
listing every field that failed validation.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: searched, see 'assetnorm config path')")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: auto, text, json")
}

// setup loads the config file and initializes logging before any subcommand
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, cfgPath, err = config.LoadFromPath(cfgFile)
	} else {
		cfg, cfgPath, err = config.Load()
	}
	if err != nil {
		printError("load config", err)
		return err
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		printError("config", err)
		return err
	}

	logger = logging.Init(cfg.Logging.Format, logging.ParseLevel(cfg.Logging.Level))
	if cfgPath != "" {
		logger.Debug("config loaded", "path", cfgPath)
	}
	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
