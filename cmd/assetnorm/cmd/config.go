package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"assetnorm/internal/config"
)

var initFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfgPath != "" {
			fmt.Fprintf(out, "# %s\n", cfgPath)
		} else {
			fmt.Fprintln(out, "# no config file found, using defaults")
		}
		for _, line := range strings.Split(cfg.Summary(), "\n") {
			fmt.Fprintf(out, "# %s\n", line)
		}

		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use and the search order",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if cfgPath != "" {
			fmt.Fprintf(out, "Using: %s\n", cfgPath)
		} else {
			fmt.Fprintln(out, "Using: defaults (no config file found)")
		}
		fmt.Fprintln(out, "Search order:")
		for i, path := range config.SearchPaths() {
			fmt.Fprintf(out, "  %2d. %s\n", i+1, path)
		}
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default configuration file",
	Long: `Write a default configuration file.

Without a path the file goes to the per-user config directory, as
config.yaml or config.toml depending on --format. With a path, the
file extension decides the format.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && initFormat != "yaml" && initFormat != "toml" {
			err := fmt.Errorf("%w: format %q", config.ErrInvalidConfig, initFormat)
			printError("config init", err)
			return err
		}

		path := config.DefaultConfigPath(initFormat)
		if len(args) > 0 {
			path = args[0]
		}
		if err := config.DefaultConfig().Save(path); err != nil {
			printError("write config", err)
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().StringVar(&initFormat, "format", "yaml", "file format when no path is given: yaml, toml")
	configCmd.AddCommand(configShowCmd, configPathCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}
