package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/goseismic/internal/report"
	"github.com/spf13/cobra"
)

var (
	reportInput inputFlags
	reportOut   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the calculation memo",
	Long: `Generate a calculation memo with every intermediate value: site
coefficients, spectral parameters, period, all Cs bounds, the story force
table, drift limits, load combination factors and spectrum breakpoints.

Without --out the Markdown memo is written to standard output.

Examples:
  goseismic report --file building.json --out memo.md
  goseismic report --file building.json --out memo.pdf`,
	Run: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportInput.register(reportCmd)
	reportCmd.Flags().StringVar(&reportOut, "out", "", "Output file (.md or .pdf)")
}

func runReport(cmd *cobra.Command, args []string) {
	res := calculate(cmd, &reportInput)
	if res == nil {
		return
	}

	if reportOut == "" {
		if err := report.WriteMarkdown(os.Stdout, res); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
		return
	}

	path := outputPath(reportOut)
	logger.Printf("writing memo to %s", path)
	if err := report.SaveMemo(res, path); err != nil {
		fmt.Printf("Error writing report: %v\n", err)
		return
	}
	fmt.Printf("Report written to: %s\n", path)
}
