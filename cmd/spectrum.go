package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/goseismic/internal/report"
	"github.com/spf13/cobra"
)

var (
	spectrumInput inputFlags
	spectrumOut   string
)

var spectrumCmd = &cobra.Command{
	Use:   "spectrum",
	Short: "Export the design response spectrum",
	Long: `Generate the design response spectrum of Section 11.4.5 and export it
as a two-column table (Period (s), Acceleration (g)) with 100 samples
between T = 0 and TL + 2 s.

Without --out the table is written to standard output as CSV.

Examples:
  # Export to CSV
  goseismic spectrum --file building.json --out spectrum.csv

  # Export to an Excel workbook
  goseismic spectrum --ss 1.0 --s1 0.4 --site C --story 3:1000 --out spectrum.xlsx`,
	Run: runSpectrum,
}

func init() {
	rootCmd.AddCommand(spectrumCmd)

	spectrumInput.register(spectrumCmd)
	spectrumCmd.Flags().StringVar(&spectrumOut, "out", "", "Output file (.csv or .xlsx)")
}

func runSpectrum(cmd *cobra.Command, args []string) {
	res := calculate(cmd, &spectrumInput)
	if res == nil {
		return
	}

	if spectrumOut == "" {
		if err := report.WriteSpectrumCSV(os.Stdout, res.Spectrum); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
		return
	}

	path := outputPath(spectrumOut)
	logger.Printf("writing %d spectrum samples to %s", len(res.Spectrum.Points), path)
	if err := report.ExportSpectrum(res.Spectrum, path); err != nil {
		fmt.Printf("Error exporting spectrum: %v\n", err)
		return
	}
	fmt.Printf("Spectrum exported to: %s\n", path)
}
