package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	curveColor  = color.Black
	markerColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	pointColor  = color.RGBA{R: 220, G: 20, B: 60, A: 255}
	fxColor     = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	vxColor     = color.RGBA{R: 100, G: 149, B: 237, A: 255}
)

// ExportSpectrum exports the design response spectrum with the T0, Ts and TL
// markers and the structure point to an image file
func ExportSpectrum(data SpectrumData, filename string) error {
	if len(data.Periods) == 0 {
		return fmt.Errorf("spectrum has no samples")
	}

	p := plot.New()
	p.Title.Text = "Design Response Spectrum"
	p.X.Label.Text = "Period T (s)"
	p.Y.Label.Text = "Sa (g)"
	p.Add(plotter.NewGrid())

	curve := make(plotter.XYs, len(data.Periods))
	maxSa := data.Sa
	for i := range data.Periods {
		curve[i] = plotter.XY{X: data.Periods[i], Y: data.Accelerations[i]}
		maxSa = math.Max(maxSa, data.Accelerations[i])
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = curveColor
	p.Add(line)
	p.Legend.Add("ASCE 7-05 spectrum", line)

	yTop := maxSa * 1.25
	if yTop == 0 {
		yTop = 1
	}
	p.Y.Min = 0
	p.Y.Max = yTop
	p.X.Min = 0
	p.X.Max = data.Periods[len(data.Periods)-1]

	// Reference lines
	markers := []struct {
		t     float64
		label string
	}{
		{data.T0, fmt.Sprintf("T0=%.2fs", data.T0)},
		{data.Ts, fmt.Sprintf("Ts=%.2fs", data.Ts)},
		{data.TL, fmt.Sprintf("TL=%.0fs", data.TL)},
	}
	for _, m := range markers {
		ref, err := plotter.NewLine(plotter.XYs{{X: m.t, Y: 0}, {X: m.t, Y: yTop}})
		if err != nil {
			return err
		}
		ref.LineStyle.Width = vg.Points(1)
		ref.LineStyle.Color = markerColor
		ref.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(ref)

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: m.t, Y: yTop * 0.95}},
			Labels: []string{m.label},
		})
		if err != nil {
			return err
		}
		p.Add(lbl)
	}

	// Structure point
	pt, err := plotter.NewScatter(plotter.XYs{{X: data.Period, Y: data.Sa}})
	if err != nil {
		return err
	}
	pt.GlyphStyle.Color = pointColor
	pt.GlyphStyle.Radius = vg.Points(5)
	pt.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(pt)
	p.Legend.Add(fmt.Sprintf("Structure T=%.3fs", data.Period), pt)
	p.Legend.Top = true

	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

// ExportStoryForces exports horizontal Fx and Vx bars per story to an image file
func ExportStoryForces(data StoryForceData, filename string) error {
	if len(data.Names) == 0 {
		return fmt.Errorf("no stories to plot")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Story Forces (%s)", data.Unit)
	p.X.Label.Text = fmt.Sprintf("Force (%s)", data.Unit)

	barWidth := vg.Points(12)

	fx, err := plotter.NewBarChart(plotter.Values(data.Fx), barWidth)
	if err != nil {
		return err
	}
	fx.Horizontal = true
	fx.Color = fxColor
	fx.LineStyle.Width = vg.Length(0.5)
	fx.Offset = -barWidth / 2

	vx, err := plotter.NewBarChart(plotter.Values(data.Vx), barWidth)
	if err != nil {
		return err
	}
	vx.Horizontal = true
	vx.Color = vxColor
	vx.LineStyle.Width = vg.Length(0.5)
	vx.Offset = barWidth / 2

	p.Add(fx, vx)
	p.Legend.Add("Fx", fx)
	p.Legend.Add("Vx", vx)
	p.Legend.Top = true
	p.NominalY(data.Names...)
	p.X.Min = 0

	height := vg.Length(len(data.Names))*0.6*vg.Inch + 2*vg.Inch
	return save(p, 7*vg.Inch, height, filename)
}

// save writes the plot in the format implied by the file extension,
// defaulting to PNG.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
