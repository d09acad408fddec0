package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/goseismic/internal/seismic"
	"github.com/xuri/excelize/v2"
)

// Spectrum export column headers
var spectrumHeader = []string{"Period (s)", "Acceleration (g)"}

const spectrumSheet = "Spectrum"

// WriteSpectrumCSV writes one row per spectrum sample, header first,
// values with 4 decimals.
func WriteSpectrumCSV(w io.Writer, sp seismic.Spectrum) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(spectrumHeader); err != nil {
		return err
	}
	for _, pt := range sp.Points {
		record := []string{
			fmt.Sprintf("%.4f", pt.Period),
			fmt.Sprintf("%.4f", pt.Acceleration),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSpectrumXLSX writes the spectrum to a workbook with the same layout
// as the CSV export plus a sheet of the breakpoints.
func WriteSpectrumXLSX(w io.Writer, sp seismic.Spectrum) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), spectrumSheet); err != nil {
		return err
	}

	header := []interface{}{spectrumHeader[0], spectrumHeader[1]}
	if err := f.SetSheetRow(spectrumSheet, "A1", &header); err != nil {
		return err
	}

	numFmt := "0.0000"
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return err
	}

	for i, pt := range sp.Points {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{round4(pt.Period), round4(pt.Acceleration)}
		if err := f.SetSheetRow(spectrumSheet, cell, &row); err != nil {
			return err
		}
	}
	if len(sp.Points) > 0 {
		last := fmt.Sprintf("B%d", len(sp.Points)+1)
		if err := f.SetCellStyle(spectrumSheet, "A2", last, style); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet("Parameters"); err != nil {
		return err
	}
	params := [][]interface{}{
		{"SDS (g)", round4(sp.SDS)},
		{"SD1 (g)", round4(sp.SD1)},
		{"T0 (s)", round4(sp.T0)},
		{"Ts (s)", round4(sp.Ts)},
		{"TL (s)", round4(sp.TL)},
	}
	for i, row := range params {
		if err := f.SetSheetRow("Parameters", fmt.Sprintf("A%d", i+1), &row); err != nil {
			return err
		}
	}

	_, err = f.WriteTo(w)
	return err
}

// ExportSpectrum writes the spectrum to filename, choosing the format from
// its extension (.csv or .xlsx).
func ExportSpectrum(sp seismic.Spectrum, filename string) error {
	var write func(io.Writer, seismic.Spectrum) error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		write = WriteSpectrumCSV
	case ".xlsx":
		write = WriteSpectrumXLSX
	default:
		return fmt.Errorf("unsupported spectrum export format %q (use .csv or .xlsx)", filepath.Ext(filename))
	}

	if err := ensureDir(filename); err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := write(f, sp); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SaveMemo writes the memo to filename as Markdown (.md) or PDF (.pdf).
func SaveMemo(res *seismic.CalculationResult, filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md":
		if err := ensureDir(filename); err != nil {
			return err
		}
		return os.WriteFile(filename, []byte(Markdown(res)), 0644)
	case ".pdf":
		return SavePDF(res, filename)
	default:
		return fmt.Errorf("unsupported report format %q (use .md or .pdf)", filepath.Ext(filename))
	}
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
