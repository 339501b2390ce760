package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/cpdgen/config"
	"github.com/teranos/cpdgen/errors"
)

// ValidateCmd represents the validate command
var ValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config without generating anything",
	Long: `Run the fail-fast diagnostic pass over a generation config.

Reports the first invalid entry with its index, the offending field, and the
underlying cause. Exits zero when every entry is valid.

Examples:
  cpdgen validate --config datasets.yaml`,
	RunE: runValidate,
}

var validateConfigFlag string

func init() {
	ValidateCmd.Flags().StringVar(&validateConfigFlag, "config", "", "Path to generation config YAML file (required)")
	_ = ValidateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	entries, err := config.Load(validateConfigFlag)
	if err != nil {
		printConfigError(err)
		return err
	}

	if err := config.Validate(entries); err != nil {
		printConfigError(err)
		return err
	}

	pterm.Printf("%s %s\n",
		pterm.LightGreen("✓ Config valid:"),
		pterm.White(fmt.Sprintf("%d dataset description(s)", len(entries))))
	return nil
}

// printConfigError renders a validation failure with its hints, so the
// offending entry can be fixed without reading a stack trace.
func printConfigError(err error) {
	pterm.Printf("%s %s\n", pterm.Red("✗"), err.Error())
	for _, hint := range errors.GetAllHints(err) {
		pterm.Printf("  %s %s\n", pterm.Gray("→"), pterm.LightCyan(hint))
	}
}
