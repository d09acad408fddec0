package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/goseismic/internal/diagram"
	"github.com/alexiusacademia/goseismic/internal/seismic"
	"github.com/spf13/cobra"
)

var (
	calcInput inputFlags

	// Diagram options
	calcShowDiagram bool
	calcExportFile  string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate seismic base shear and story forces",
	Long: `Calculate the seismic design loads of a building using the
Equivalent Lateral Force procedure of ASCE 7-05.

The calculation follows:
  - Tables 11.4-1/11.4-2: Site coefficients Fa and Fv
  - Section 11.6: Seismic Design Category
  - Section 12.8.2: Approximate fundamental period
  - Section 12.8.1: Seismic response coefficient Cs and base shear
  - Section 12.8.3: Vertical distribution of seismic forces
  - Section 12.12.1: Allowable story drift

Stories are listed bottom to top, either as repeated --story flags,
from an .xlsx sheet or inside a JSON input file.

Examples:
  # Three-story steel moment frame on site class D
  goseismic calc --ss 1.5 --s1 0.6 --site D --r 8 \
    --story 4:2500 --story 3.5:2500 --story 3.5:1000:Roof

  # From an input file, results in tonnes
  goseismic calc --file building.json --unit Ton

  # Show ASCII plots and export the spectrum image
  goseismic calc --file building.json --diagram --output spectrum.png`,
	Run: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcInput.register(calcCmd)

	// Diagram options
	calcCmd.Flags().BoolVar(&calcShowDiagram, "diagram", false, "Show ASCII spectrum and story force diagrams")
	calcCmd.Flags().StringVarP(&calcExportFile, "output", "o", "", "Export spectrum and story force plots (png, svg, pdf)")
}

func runCalc(cmd *cobra.Command, args []string) {
	res := calculate(cmd, &calcInput)
	if res == nil {
		return
	}

	printCalculation(res)

	if calcShowDiagram {
		fmt.Println(diagram.DrawASCIISpectrum(diagram.NewSpectrumData(res)))
		fmt.Println(diagram.DrawStoryForces(diagram.NewStoryForceData(res)))
	}

	if calcExportFile != "" {
		spectrumFile := outputPath(calcExportFile)
		ext := filepath.Ext(spectrumFile)
		forcesFile := strings.TrimSuffix(spectrumFile, ext) + "-forces" + ext

		logger.Printf("exporting plots to %s and %s", spectrumFile, forcesFile)
		if err := diagram.ExportSpectrum(diagram.NewSpectrumData(res), spectrumFile); err != nil {
			fmt.Printf("Error exporting spectrum: %v\n", err)
		} else {
			fmt.Printf("Spectrum exported to: %s\n", spectrumFile)
		}
		if err := diagram.ExportStoryForces(diagram.NewStoryForceData(res), forcesFile); err != nil {
			fmt.Printf("Error exporting story forces: %v\n", err)
		} else {
			fmt.Printf("Story forces exported to: %s\n", forcesFile)
		}
	}
}

func printCalculation(res *seismic.CalculationResult) {
	in := res.Input
	c := res.Coefficients
	p := res.Period
	cs := res.Cs
	u := res.Unit

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SEISMIC LOAD CALCULATION - ASCE 7-05 ELF PROCEDURE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Calculation ID: %s\n", res.ID)
	fmt.Println()

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ss / S1:\t%.3f g / %.3f g\n", in.Ss, in.S1)
	fmt.Fprintf(w, "  Site Class:\t%s\n", in.SiteClass)
	fmt.Fprintf(w, "  Structural System:\t%s\n", in.StructureType.Label())
	fmt.Fprintf(w, "  R / Ω0 / ρ:\t%.2f / %.2f / %.2f\n", in.R, in.Omega0, in.Rho)
	fmt.Fprintf(w, "  Importance Factor (Ie):\t%.2f\n", in.Ie)
	fmt.Fprintf(w, "  TL:\t%.2f s\n", in.TL)
	fmt.Fprintf(w, "  Stories:\t%d\n", len(in.Stories))
	w.Flush()
	fmt.Println()

	// Site coefficients
	fmt.Println("SITE COEFFICIENTS AND SPECTRAL PARAMETERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Fa / Fv:\t%.3f / %.3f\n", c.Fa, c.Fv)
	fmt.Fprintf(w, "  SMS = Fa·Ss:\t%.3f g\n", c.SMS)
	fmt.Fprintf(w, "  SM1 = Fv·S1:\t%.3f g\n", c.SM1)
	fmt.Fprintf(w, "  SDS = ⅔·SMS:\t%.3f g\n", c.SDS)
	fmt.Fprintf(w, "  SD1 = ⅔·SM1:\t%.3f g\n", c.SD1)
	fmt.Fprintf(w, "  Occupancy Category:\t%s\n", c.Occupancy)
	fmt.Fprintf(w, "  Seismic Design Category:\t%s\n", c.Category)
	w.Flush()
	fmt.Println()

	// Period
	fmt.Println("FUNDAMENTAL PERIOD:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ct / x:\t%.4f / %.2f\n", p.Params.Ct, p.Params.X)
	fmt.Fprintf(w, "  Ta = Ct·hn^x:\t%.3f s\n", p.Ta)
	fmt.Fprintf(w, "  Cu·Ta:\t%.2f × %.3f = %.3f s\n", p.Cu, p.Ta, p.UpperLimit())
	fmt.Fprintf(w, "  Design period (T):\t%.3f s\n", p.TUsed)
	w.Flush()
	fmt.Println()

	// Seismic response coefficient
	fmt.Println("SEISMIC RESPONSE COEFFICIENT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cs = SDS/(R/Ie):\t%.4f\n", cs.Base)
	fmt.Fprintf(w, "  Cs,max:\t%.4f\n", cs.Ceiling)
	fmt.Fprintf(w, "  Cs,min (Eq. 12.8-5):\t%.4f\n", cs.Floor1)
	if cs.Floor2 > 0 {
		fmt.Fprintf(w, "  Cs,min (Eq. 12.8-6):\t%.4f\n", cs.Floor2)
	}
	fmt.Fprintf(w, "  Cs:\t%.4f ✓ (%s)\n", cs.Cs, cs.Governing)
	fmt.Fprintf(w, "  Total weight (W):\t%.2f %s\n", res.TotalWeight, u)
	w.Flush()
	fmt.Println()

	fmt.Println(baseShearBox(res))

	// Vertical distribution
	fmt.Printf("VERTICAL DISTRIBUTION (k = %.2f):\n", res.K)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  Level\thx (m)\tw (%s)\tCvx\tFx (%s)\tVx (%s)\tΔa (mm)\t\n", u, u, u)
	fmt.Fprintf(w, "  ─────\t──────\t─────\t───\t──────\t──────\t───────\t\n")
	for i := len(res.Stories) - 1; i >= 0; i-- {
		s := res.Stories[i]
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%.4f\t%.2f\t%.2f\t%.1f\t\n",
			s.Name, s.Elevation, s.Weight, s.Cvx, s.Fx, s.Vx, s.DriftLimit)
	}
	w.Flush()
	fmt.Println()

	// Drift and combinations
	fmt.Println("DRIFT LIMIT AND LOAD COMBINATIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  %s\n", res.Drift.Explanation)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ev = 0.2·SDS:\t%.3f\n", res.LoadFactors.Ev)
	for _, lc := range res.Combinations {
		fmt.Fprintf(w, "  Combination %s:\t%s\n", lc.ID, lc.Description)
	}
	w.Flush()
	fmt.Println()

	// Spectrum
	fmt.Println("DESIGN RESPONSE SPECTRUM:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  T0 = %.3f s, Ts = %.3f s, TL = %.2f s\n", res.Spectrum.T0, res.Spectrum.Ts, res.Spectrum.TL)
	fmt.Printf("  Structure point: T = %.3f s, Sa = %.3f g\n", p.TUsed, res.StructureSa)
	fmt.Println()
}

func baseShearBox(res *seismic.CalculationResult) string {
	return diagram.DrawSummaryBox("BASE SHEAR", []string{
		fmt.Sprintf("V = Cs·W = %.4f × %.2f", res.Cs.Cs, res.TotalWeight),
		fmt.Sprintf("V = %.2f %s", res.BaseShear, res.Unit),
	})
}
