package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/cpdgen/cmd/cpdgen/commands"
	"github.com/teranos/cpdgen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "cpdgen",
	Short: "cpdgen - Change-point detection benchmark dataset generator",
	Long: `cpdgen - Generate labeled time series for benchmarking change-point detection.

A YAML config describes each dataset as a list of segments, one distribution
per segment. cpdgen validates the config, draws every segment independently,
concatenates them in order, and records the exact change-point indices as
ground truth alongside the sample.

Available commands:
  generate - Generate samples from a config and persist them
  validate - Validate a config without generating anything
  describe - Render the dataset descriptions of a config
  version  - Show version information

Examples:
  cpdgen validate --config datasets.yaml
  cpdgen generate --config datasets.yaml --out-dir ./datasets --seed 42
  cpdgen generate --config datasets.yaml --db datasets.db --replace
  cpdgen describe --config datasets.yaml --adoc`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON instead of console output")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.ValidateCmd)
	rootCmd.AddCommand(commands.DescribeCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
