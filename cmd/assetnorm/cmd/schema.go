package cmd

import (
	"github.com/spf13/cobra"

	"assetnorm/internal/codec"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the anomaly report",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := codec.ReportSchema()
		if err != nil {
			printError("schema", err)
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
