package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/goseismic/internal/asce"
	"github.com/alexiusacademia/goseismic/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	// Unfactored effects
	comboDead       float64
	comboLive       float64
	comboEarthquake float64

	// Seismic parameters
	comboSDS   float64
	comboRho   float64
	comboOmega float64

	// Options
	comboShowAll bool
)

var combosCmd = &cobra.Command{
	Use:   "combos",
	Short: "Evaluate seismic load combinations",
	Long: `Evaluate the strength design load combinations that include seismic
effects (ASCE 7-05 Section 12.4.2.3).

The vertical seismic effect Ev = 0.2·SDS·D modifies the dead load factor:
  5   (1.2 + 0.2SDS)D + ρQE + L
  7   (0.9 - 0.2SDS)D + ρQE
  5Ω  (1.2 + 0.2SDS)D + Ω0QE + L
  7Ω  (0.9 - 0.2SDS)D + Ω0QE

Effects may be moments, shears or axial forces in any consistent unit.

Examples:
  goseismic combos --dead 120 --live 45 --earthquake 80 --sds 1.0
  goseismic combos -d 120 -l 45 -e 80 --sds 1.0 --rho 1.3 --all`,
	Run: runCombos,
}

func init() {
	rootCmd.AddCommand(combosCmd)

	combosCmd.Flags().Float64VarP(&comboDead, "dead", "d", 0, "Effect due to dead load D")
	combosCmd.Flags().Float64VarP(&comboLive, "live", "l", 0, "Effect due to live load L")
	combosCmd.Flags().Float64VarP(&comboEarthquake, "earthquake", "e", 0, "Horizontal seismic effect QE")

	combosCmd.Flags().Float64Var(&comboSDS, "sds", 0, "Design short-period spectral acceleration SDS (g) [required]")
	combosCmd.Flags().Float64Var(&comboRho, "rho", 1.0, "Redundancy factor ρ")
	combosCmd.Flags().Float64Var(&comboOmega, "omega", 3.0, "Overstrength factor Ω0")

	combosCmd.Flags().BoolVarP(&comboShowAll, "all", "a", false, "Show all load combination results")

	combosCmd.MarkFlagRequired("sds")
}

func runCombos(cmd *cobra.Command, args []string) {
	effects := asce.LoadEffects{
		Dead:       comboDead,
		Live:       comboLive,
		Earthquake: comboEarthquake,
	}

	if effects.Dead == 0 && effects.Live == 0 && effects.Earthquake == 0 {
		fmt.Println("Error: Please provide at least one unfactored effect.")
		fmt.Println("Use 'goseismic combos --help' for usage information.")
		return
	}
	if comboSDS < 0 {
		fmt.Println("Error: SDS must not be negative")
		return
	}

	factors := asce.SeismicLoadFactors(comboSDS)
	combinations := asce.SeismicCombinations(comboSDS, comboRho, comboOmega)

	// Print header
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("        ASCE 7-05 SEISMIC LOAD COMBINATIONS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Print input effects
	fmt.Println("UNFACTORED EFFECTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Dead Load (D):\t%.2f\n", effects.Dead)
	fmt.Fprintf(w, "  Live Load (L):\t%.2f\n", effects.Live)
	fmt.Fprintf(w, "  Seismic (QE):\t%.2f\n", effects.Earthquake)
	w.Flush()
	fmt.Println()

	fmt.Println("LOAD FACTORS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ev = 0.2·SDS:\t%.3f\n", factors.Ev)
	fmt.Fprintf(w, "  1.2 + 0.2SDS:\t%.3f\n", factors.Additive)
	fmt.Fprintf(w, "  0.9 - 0.2SDS:\t%.3f\n", factors.Counter)
	fmt.Fprintf(w, "  ρ / Ω0:\t%.2f / %.2f\n", comboRho, comboOmega)
	w.Flush()
	fmt.Println()

	maxU, governing := asce.CalculateGoverning(effects, combinations)

	if comboShowAll {
		fmt.Println("LOAD COMBINATIONS (ASCE 7-05 Section 12.4.2.3):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tU\n")
		fmt.Fprintf(w, "  ─\t───────────\t─\n")

		for _, combo := range combinations {
			u := combo.CalculateFactoredEffect(effects)
			marker := ""
			if combo.ID == governing.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, u, marker)
		}
		w.Flush()
		fmt.Println()
	}

	// Print result
	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", governing.ID, governing.Description)
	fmt.Println()
	fmt.Println(governingBox(maxU, governing))
}

func governingBox(maxU float64, governing asce.LoadCombination) string {
	return diagram.DrawSummaryBox("FACTORED EFFECT", []string{
		fmt.Sprintf("U = %.2f", maxU),
		fmt.Sprintf("Combination %s: %s", governing.ID, governing.Description),
	})
}
