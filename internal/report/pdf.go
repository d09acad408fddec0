package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/goseismic/internal/seismic"
	"github.com/phpdave11/gofpdf"
)

// PDF layout (mm)
const (
	pdfLineHeight = 6.0
	pdfLabelWidth = 70.0
)

// Core fonts are cp1252; symbols outside it are spelled out.
var greek = strings.NewReplacer(
	"Ω", "Omega", "ρ", "rho", "Δ", "D", "≥", ">=", "≤", "<=",
)

var storyColumns = []struct {
	title string
	width float64
}{
	{"Level", 34},
	{"hx (m)", 22},
	{"w", 26},
	{"Cvx", 22},
	{"Fx", 26},
	{"Vx", 26},
	{"Δa (mm)", 24},
}

// WritePDF renders the calculation memo as an A4 PDF document.
func WritePDF(w io.Writer, res *seismic.CalculationResult) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	cp1252 := pdf.UnicodeTranslatorFromDescriptor("")
	tr := func(s string) string { return cp1252(greek.Replace(s)) }

	pdf.SetTitle("Seismic Load Calculation", true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Seismic Load Calculation (ASCE 7-05)")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, pdfLineHeight, "Calculation ID: "+res.ID.String())
	pdf.Ln(10)

	in := res.Input
	c := res.Coefficients
	p := res.Period
	cs := res.Cs
	u := res.Unit.String()

	heading(pdf, "1. Input Parameters")
	rows(pdf, tr, [][2]string{
		{"Ss", fmt.Sprintf("%.3f g", in.Ss)},
		{"S1", fmt.Sprintf("%.3f g", in.S1)},
		{"Site Class", in.SiteClass.String()},
		{"Importance Factor (Ie)", fmt.Sprintf("%.2f", in.Ie)},
		{"Response Modification (R)", fmt.Sprintf("%.2f", in.R)},
		{"Overstrength (Ω0)", fmt.Sprintf("%.2f", in.Omega0)},
		{"Redundancy (ρ)", fmt.Sprintf("%.2f", in.Rho)},
		{"TL", fmt.Sprintf("%.2f s", in.TL)},
		{"Structural System", in.StructureType.Label()},
		{"Result Unit", u},
	})

	heading(pdf, "2. Site Coefficients and Spectral Parameters")
	rows(pdf, tr, [][2]string{
		{"Fa / Fv", fmt.Sprintf("%.3f / %.3f", c.Fa, c.Fv)},
		{"SMS / SM1", fmt.Sprintf("%.3f g / %.3f g", c.SMS, c.SM1)},
		{"SDS / SD1", fmt.Sprintf("%.3f g / %.3f g", c.SDS, c.SD1)},
		{"Occupancy Category", c.Occupancy.String()},
		{"Seismic Design Category", c.Category.String()},
	})

	heading(pdf, "3. Fundamental Period")
	rows(pdf, tr, [][2]string{
		{"Ct / x", fmt.Sprintf("%.4f / %.2f", p.Params.Ct, p.Params.X)},
		{"Ta = Ct·hn^x", fmt.Sprintf("%.3f s", p.Ta)},
		{"Cu·Ta", fmt.Sprintf("%.2f × %.3f = %.3f s", p.Cu, p.Ta, p.UpperLimit())},
		{"Design period T", fmt.Sprintf("%.3f s", p.TUsed)},
	})

	floor2 := "n/a (S1 < 0.6g)"
	if cs.Floor2 > 0 {
		floor2 = fmt.Sprintf("%.4f", cs.Floor2)
	}
	heading(pdf, "4. Base Shear")
	rows(pdf, tr, [][2]string{
		{"Cs = SDS/(R/Ie)", fmt.Sprintf("%.4f", cs.Base)},
		{"Cs,max", fmt.Sprintf("%.4f", cs.Ceiling)},
		{"Cs,min (Eq. 12.8-5)", fmt.Sprintf("%.4f", cs.Floor1)},
		{"Cs,min (Eq. 12.8-6)", floor2},
		{"Cs", fmt.Sprintf("%.4f (%s)", cs.Cs, cs.Governing)},
		{"W", fmt.Sprintf("%.2f %s", res.TotalWeight, u)},
		{"V = Cs·W", fmt.Sprintf("%.2f %s", res.BaseShear, u)},
		{"k", fmt.Sprintf("%.2f", res.K)},
	})

	heading(pdf, "5. Vertical Distribution of Forces")
	storyTable(pdf, tr, res)
	pdf.Ln(4)

	lf := res.LoadFactors
	heading(pdf, "6. Drift and Load Combinations")
	rows(pdf, tr, [][2]string{
		{"Allowable drift ratio", fmt.Sprintf("%.4f", res.Drift.Ratio)},
		{"Ev", fmt.Sprintf("%.3f D", lf.Ev)},
		{"1.2 + 0.2SDS", fmt.Sprintf("%.3f", lf.Additive)},
		{"0.9 - 0.2SDS", fmt.Sprintf("%.3f", lf.Counter)},
	})
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, pdfLineHeight, tr(res.Drift.Explanation), "", "L", false)
	pdf.Ln(2)
	for _, lc := range res.Combinations {
		pdf.Cell(pdfLabelWidth, pdfLineHeight, tr("Combination "+lc.ID))
		pdf.Cell(0, pdfLineHeight, tr(lc.Description))
		pdf.Ln(pdfLineHeight)
	}

	sp := res.Spectrum
	heading(pdf, "7. Design Response Spectrum")
	rows(pdf, tr, [][2]string{
		{"T0 / Ts / TL", fmt.Sprintf("%.3f s / %.3f s / %.2f s", sp.T0, sp.Ts, sp.TL)},
		{"Structure", fmt.Sprintf("T = %.3f s, Sa = %.3f g", p.TUsed, res.StructureSa)},
	})

	return pdf.Output(w)
}

// SavePDF writes the memo to filename, creating its directory if needed.
func SavePDF(res *seismic.CalculationResult, filename string) error {
	if err := ensureDir(filename); err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WritePDF(f, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, text)
	pdf.Ln(9)
}

func rows(pdf *gofpdf.Fpdf, tr func(string) string, kv [][2]string) {
	pdf.SetFont("Helvetica", "", 10)
	for _, r := range kv {
		pdf.Cell(pdfLabelWidth, pdfLineHeight, tr(r[0]))
		pdf.Cell(0, pdfLineHeight, tr(r[1]))
		pdf.Ln(pdfLineHeight)
	}
	pdf.Ln(3)
}

// storyTable lists stories from the roof down.
func storyTable(pdf *gofpdf.Fpdf, tr func(string) string, res *seismic.CalculationResult) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range storyColumns {
		pdf.CellFormat(col.width, 7, tr(col.title), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for i := len(res.Stories) - 1; i >= 0; i-- {
		s := res.Stories[i]
		cells := []string{
			s.Name,
			fmt.Sprintf("%.2f", s.Elevation),
			fmt.Sprintf("%.2f", s.Weight),
			fmt.Sprintf("%.4f", s.Cvx),
			fmt.Sprintf("%.2f", s.Fx),
			fmt.Sprintf("%.2f", s.Vx),
			fmt.Sprintf("%.1f", s.DriftLimit),
		}
		for j, text := range cells {
			align := "R"
			if j == 0 {
				align = "L"
			}
			pdf.CellFormat(storyColumns[j].width, 6, tr(text), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 5, fmt.Sprintf("Weights and forces in %s; Vx is the cumulative story shear.", res.Unit))
	pdf.Ln(5)
}

func ensureDir(filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}
