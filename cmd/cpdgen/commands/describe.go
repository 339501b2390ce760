package commands

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/cpdgen/config"
	"github.com/teranos/cpdgen/dataset"
)

// DescribeCmd represents the describe command
var DescribeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Render the dataset descriptions of a config",
	Long: `Render every dataset description in the config: name, total length,
segment layout, ground-truth change points, and per-segment distributions.

By default prints a colored terminal rendering; --adoc emits the AsciiDoc
form written alongside generated samples.

Examples:
  cpdgen describe --config datasets.yaml
  cpdgen describe --config datasets.yaml --adoc`,
	RunE: runDescribe,
}

var (
	describeConfigFlag string
	describeAdocFlag   bool
)

func init() {
	DescribeCmd.Flags().StringVar(&describeConfigFlag, "config", "", "Path to generation config YAML file (required)")
	DescribeCmd.Flags().BoolVar(&describeAdocFlag, "adoc", false, "Emit AsciiDoc instead of terminal rendering")
	_ = DescribeCmd.MarkFlagRequired("config")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	descriptions, err := config.ParseFile(describeConfigFlag)
	if err != nil {
		printConfigError(err)
		return err
	}

	for i, description := range descriptions {
		if describeAdocFlag {
			if i > 0 {
				fmt.Println()
			}
			fmt.Print(description.AsciiDoc())
			continue
		}
		printDescription(description)
	}
	return nil
}

func printDescription(d *dataset.SampleDescription) {
	pterm.Printf("%s %s\n", pterm.LightMagenta("▪"), pterm.White(d.Name()))
	pterm.Printf("  %s %d  %s %v  %s %v\n",
		pterm.Gray("length:"), d.TotalLength(),
		pterm.Gray("segments:"), d.Lengths(),
		pterm.Gray("changepoints:"), d.Changepoints())
	for _, distribution := range d.Distributions() {
		params := distribution.Params()
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		line := ""
		for _, k := range keys {
			if line != "" {
				line += ", "
			}
			line += fmt.Sprintf("%s=%s", k, params[k])
		}
		pterm.Printf("  %s %s(%s)\n", pterm.Gray("·"), pterm.Yellow(distribution.Name()), line)
	}
}
