package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/goseismic/internal/seismic"
	"github.com/guptarohit/asciigraph"
)

// SpectrumData holds the curve and markers of a design spectrum plot
type SpectrumData struct {
	Periods       []float64 // s
	Accelerations []float64 // g

	T0 float64
	Ts float64
	TL float64

	// Structure point
	Period float64 // T_used (s)
	Sa     float64 // Cs·R/Ie (g)
}

// StoryForceData holds the per-story forces of a distribution plot,
// bottom-to-top
type StoryForceData struct {
	Names      []string
	Elevations []float64 // hx (m)
	Fx         []float64
	Vx         []float64
	Unit       string
}

// NewSpectrumData extracts the plot data of a calculation result.
func NewSpectrumData(res *seismic.CalculationResult) SpectrumData {
	d := SpectrumData{
		Periods:       make([]float64, len(res.Spectrum.Points)),
		Accelerations: make([]float64, len(res.Spectrum.Points)),
		T0:            res.Spectrum.T0,
		Ts:            res.Spectrum.Ts,
		TL:            res.Spectrum.TL,
		Period:        res.Period.TUsed,
		Sa:            res.StructureSa,
	}
	for i, pt := range res.Spectrum.Points {
		d.Periods[i] = pt.Period
		d.Accelerations[i] = pt.Acceleration
	}
	return d
}

// NewStoryForceData extracts the story forces of a calculation result.
func NewStoryForceData(res *seismic.CalculationResult) StoryForceData {
	d := StoryForceData{Unit: res.Unit.String()}
	for _, s := range res.Stories {
		d.Names = append(d.Names, s.Name)
		d.Elevations = append(d.Elevations, s.Elevation)
		d.Fx = append(d.Fx, s.Fx)
		d.Vx = append(d.Vx, s.Vx)
	}
	return d
}

// DrawASCIISpectrum plots Sa against T for the terminal.
func DrawASCIISpectrum(data SpectrumData) string {
	if len(data.Accelerations) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  DESIGN RESPONSE SPECTRUM\n")
	sb.WriteString("  ────────────────────────\n\n")

	graph := asciigraph.Plot(data.Accelerations,
		asciigraph.Height(15),
		asciigraph.Width(60),
		asciigraph.Precision(3),
		asciigraph.Offset(4),
		asciigraph.LowerBound(0),
		asciigraph.Caption(fmt.Sprintf("Sa (g) vs T = 0 … %.1f s", data.Periods[len(data.Periods)-1])),
	)
	sb.WriteString(graph)
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  T0 = %.3f s   Ts = %.3f s   TL = %.2f s\n", data.T0, data.Ts, data.TL))
	sb.WriteString(fmt.Sprintf("  Structure: T = %.3f s, Sa = %.3f g\n", data.Period, data.Sa))

	return sb.String()
}

// DrawStoryForces draws horizontal Fx and Vx bars per story, roof first.
func DrawStoryForces(data StoryForceData) string {
	var sb strings.Builder

	width := 40
	nameWidth := 8
	for _, n := range data.Names {
		if len(n) > nameWidth {
			nameWidth = len(n)
		}
	}

	maxV := 0.0
	for _, v := range data.Vx {
		maxV = math.Max(maxV, v)
	}
	scale := 0.0
	if maxV > 0 {
		scale = float64(width) / maxV
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  STORY FORCES (%s)\n", data.Unit))
	sb.WriteString("  ──────────────────\n\n")

	for i := len(data.Names) - 1; i >= 0; i-- {
		fxBar := int(data.Fx[i] * scale)
		vxBar := int(data.Vx[i] * scale)

		sb.WriteString(fmt.Sprintf("  %-*s Fx │%s %.2f\n", nameWidth, data.Names[i], strings.Repeat("█", fxBar), data.Fx[i]))
		sb.WriteString(fmt.Sprintf("  %-*s Vx │%s %.2f\n", nameWidth, fmt.Sprintf("%.2fm", data.Elevations[i]), strings.Repeat("░", vxBar), data.Vx[i]))
	}
	sb.WriteString(fmt.Sprintf("  %s    └%s\n", strings.Repeat(" ", nameWidth), strings.Repeat("─", width)))

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ███ = Lateral force Fx\n")
	sb.WriteString("  ░░░ = Story shear Vx\n")

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes; %-*s counts bytes.
func pad(s string, n int) string {
	if gap := n - len([]rune(s)); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
