// Package report renders calculation memos and exports the design spectrum.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexiusacademia/goseismic/internal/seismic"
)

// Markdown renders the full calculation memo of a result.
func Markdown(res *seismic.CalculationResult) string {
	var sb strings.Builder

	in := res.Input
	c := res.Coefficients
	p := res.Period
	cs := res.Cs
	u := res.Unit.String()

	sb.WriteString("# Seismic Load Calculation (ASCE 7-05)\n\n")
	sb.WriteString(fmt.Sprintf("Calculation ID: `%s`\n\n", res.ID))

	sb.WriteString("## 1. Input Parameters\n")
	sb.WriteString(fmt.Sprintf("- **Ss**: %.3f g\n", in.Ss))
	sb.WriteString(fmt.Sprintf("- **S1**: %.3f g\n", in.S1))
	sb.WriteString(fmt.Sprintf("- **Site Class**: %s\n", in.SiteClass))
	sb.WriteString(fmt.Sprintf("- **Importance Factor (Ie)**: %.2f\n", in.Ie))
	sb.WriteString(fmt.Sprintf("- **Response Modification (R)**: %.2f\n", in.R))
	sb.WriteString(fmt.Sprintf("- **Overstrength (Ω0)**: %.2f\n", in.Omega0))
	sb.WriteString(fmt.Sprintf("- **Redundancy (ρ)**: %.2f\n", in.Rho))
	sb.WriteString(fmt.Sprintf("- **Long-Period Transition (TL)**: %.2f s\n", in.TL))
	sb.WriteString(fmt.Sprintf("- **Structural System**: %s\n", in.StructureType.Label()))
	sb.WriteString(fmt.Sprintf("- **Result Unit**: %s\n\n", u))

	sb.WriteString("## 2. Site Coefficients (Tables 11.4-1 and 11.4-2)\n")
	sb.WriteString(fmt.Sprintf("- **Fa** = %.3f\n", c.Fa))
	sb.WriteString(fmt.Sprintf("- **Fv** = %.3f\n\n", c.Fv))

	sb.WriteString("## 3. Spectral Response Parameters\n")
	sb.WriteString(fmt.Sprintf("**SMS** = Fa × Ss = **%.3f g**  \n", c.SMS))
	sb.WriteString(fmt.Sprintf("**SM1** = Fv × S1 = **%.3f g**\n\n", c.SM1))
	sb.WriteString("Design values (2/3 of the maximum considered earthquake):\n\n")
	sb.WriteString(fmt.Sprintf("**SDS** = (2/3) × SMS = **%.3f g**  \n", c.SDS))
	sb.WriteString(fmt.Sprintf("**SD1** = (2/3) × SM1 = **%.3f g**\n\n", c.SD1))
	sb.WriteString(fmt.Sprintf("Occupancy category **%s**, Seismic Design Category **%s**.\n\n", c.Occupancy, c.Category))

	sb.WriteString("## 4. Fundamental Period (Sec. 12.8.2)\n")
	sb.WriteString(fmt.Sprintf("Ct = %.4f, x = %.2f, hn = %.2f m\n\n", p.Params.Ct, p.Params.X, totalHeight(res)))
	sb.WriteString(fmt.Sprintf("**Ta** = Ct × hn^x = **%.3f s**  \n", p.Ta))
	sb.WriteString(fmt.Sprintf("**Cu × Ta** = %.2f × %.3f = **%.3f s**  \n", p.Cu, p.Ta, p.UpperLimit()))
	sb.WriteString(fmt.Sprintf("**Design period (T)**: %.3f s\n\n", p.TUsed))

	sb.WriteString("## 5. Base Shear (Sec. 12.8.1)\n")
	sb.WriteString("The seismic response coefficient is selected from:\n\n")
	sb.WriteString(fmt.Sprintf("1. **Eq. 12.8-2**: Cs = SDS / (R/Ie) = %.3f / %.3f = %.4f\n", c.SDS, cs.RIe, cs.Base))
	if cs.LongPeriod {
		sb.WriteString(fmt.Sprintf("2. **Eq. 12.8-4** (T > TL): Cs,max = SD1·TL / (T²·R/Ie) = %.4f\n", cs.Ceiling))
	} else {
		sb.WriteString(fmt.Sprintf("2. **Eq. 12.8-3** (T ≤ TL): Cs,max = SD1 / (T·R/Ie) = %.4f\n", cs.Ceiling))
	}
	sb.WriteString(fmt.Sprintf("3. **Eq. 12.8-5**: Cs,min = 0.044 × SDS × Ie ≥ 0.01 = %.4f\n", cs.Floor1))
	if cs.Floor2 > 0 {
		sb.WriteString(fmt.Sprintf("4. **Eq. 12.8-6** (S1 ≥ 0.6g): Cs,min = 0.5 × S1 / (R/Ie) = %.4f\n", cs.Floor2))
	} else {
		sb.WriteString("4. **Eq. 12.8-6**: not applicable (S1 < 0.6g)\n")
	}
	sb.WriteString(fmt.Sprintf("5. Absolute minimum: %.4f\n\n", cs.Floor3))
	sb.WriteString(fmt.Sprintf("**Cs** = **%.4f** (governed by %s)\n\n", cs.Cs, cs.Governing))
	sb.WriteString("The seismic base shear (Eq. 12.8-1) is:\n\n")
	sb.WriteString(fmt.Sprintf("**V** = Cs × W = %.4f × %.2f = **%.2f %s**\n\n", cs.Cs, res.TotalWeight, res.BaseShear, u))

	sb.WriteString("## 6. Vertical Distribution of Forces (Sec. 12.8.3)\n")
	sb.WriteString(fmt.Sprintf("Distribution exponent **k** = %.2f.\n\n", res.K))
	sb.WriteString(fmt.Sprintf("| Level | hx (m) | w (%s) | Cvx | Fx (%s) | Vx (%s) | Δa (mm) |\n", u, u, u))
	sb.WriteString("| :--- | ---: | ---: | ---: | ---: | ---: | ---: |\n")
	for i := len(res.Stories) - 1; i >= 0; i-- {
		s := res.Stories[i]
		sb.WriteString(fmt.Sprintf("| %s | %.2f | %.2f | %.4f | %.2f | %.2f | %.1f |\n",
			s.Name, s.Elevation, s.Weight, s.Cvx, s.Fx, s.Vx, s.DriftLimit))
	}
	sb.WriteString("\n*Vx is the cumulative story shear.*\n\n")

	sb.WriteString("## 7. Allowable Story Drift (Sec. 12.12.1)\n")
	sb.WriteString(fmt.Sprintf("%s.  \n", res.Drift.Explanation))
	sb.WriteString(fmt.Sprintf("Δa/hsx = **%.4f**\n\n", res.Drift.Ratio))

	lf := res.LoadFactors
	sb.WriteString("## 8. Seismic Load Combinations (Sec. 12.4.2.3)\n")
	sb.WriteString(fmt.Sprintf("Ev = 0.2 × SDS × D = %.3f D\n\n", lf.Ev))
	sb.WriteString(fmt.Sprintf("Dead load factors: 1.2 + 0.2SDS = **%.3f**, 0.9 − 0.2SDS = **%.3f**\n\n", lf.Additive, lf.Counter))
	for _, lc := range res.Combinations {
		sb.WriteString(fmt.Sprintf("- **%s**: %s\n", lc.ID, lc.Description))
	}
	sb.WriteString("\n")

	sp := res.Spectrum
	sb.WriteString("## 9. Design Response Spectrum (Sec. 11.4.5)\n")
	sb.WriteString(fmt.Sprintf("- **T0** = 0.2 × SD1/SDS = %.3f s\n", sp.T0))
	sb.WriteString(fmt.Sprintf("- **Ts** = SD1/SDS = %.3f s\n", sp.Ts))
	sb.WriteString(fmt.Sprintf("- **TL** = %.2f s\n", sp.TL))
	sb.WriteString(fmt.Sprintf("- Structure: T = %.3f s, Sa = Cs × R/Ie = %.3f g\n", p.TUsed, res.StructureSa))

	return sb.String()
}

// WriteMarkdown writes the memo to w.
func WriteMarkdown(w io.Writer, res *seismic.CalculationResult) error {
	_, err := io.WriteString(w, Markdown(res))
	return err
}

func totalHeight(res *seismic.CalculationResult) float64 {
	if len(res.Stories) == 0 {
		return 0
	}
	return res.Stories[len(res.Stories)-1].Elevation
}
