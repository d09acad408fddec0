package asce

import (
	"errors"
	"fmt"
	"strings"
)

// SiteClass is the soil profile classification of ASCE 7-05 Chapter 20.
type SiteClass int

const (
	SiteClassA SiteClass = iota // Hard rock
	SiteClassB                  // Rock
	SiteClassC                  // Very dense soil and soft rock
	SiteClassD                  // Stiff soil
	SiteClassE                  // Soft clay soil
	SiteClassF                  // Requires site response analysis
)

var siteClassNames = [...]string{"A", "B", "C", "D", "E", "F"}

// ErrUnsupportedSiteClass is returned for site classes without tabulated coefficients.
var ErrUnsupportedSiteClass = errors.New("site class F requires a site-specific response analysis (Section 11.4.7)")

// ParseSiteClass converts a letter A-F into a SiteClass.
func ParseSiteClass(s string) (SiteClass, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range siteClassNames {
		if name == key {
			return SiteClass(i), nil
		}
	}
	return 0, fmt.Errorf("unknown site class %q (expected A-F)", s)
}

func (c SiteClass) String() string {
	if c < SiteClassA || c > SiteClassF {
		return fmt.Sprintf("SiteClass(%d)", int(c))
	}
	return siteClassNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c SiteClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *SiteClass) UnmarshalText(text []byte) error {
	parsed, err := ParseSiteClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Table 11.4-1 control values of Ss (g)
var faControlValues = [5]float64{0.25, 0.50, 0.75, 1.00, 1.25}

// Table 11.4-2 control values of S1 (g)
var fvControlValues = [5]float64{0.10, 0.20, 0.30, 0.40, 0.50}

// Site coefficient rows indexed by SiteClassA..SiteClassE.
var faTable = [5][5]float64{
	{0.8, 0.8, 0.8, 0.8, 0.8},
	{1.0, 1.0, 1.0, 1.0, 1.0},
	{1.2, 1.2, 1.1, 1.0, 1.0},
	{1.6, 1.4, 1.2, 1.1, 1.0},
	{2.5, 1.7, 1.2, 0.9, 0.9},
}

var fvTable = [5][5]float64{
	{0.8, 0.8, 0.8, 0.8, 0.8},
	{1.0, 1.0, 1.0, 1.0, 1.0},
	{1.7, 1.6, 1.5, 1.4, 1.3},
	{2.4, 2.0, 1.8, 1.6, 1.5},
	{3.5, 3.2, 2.8, 2.4, 2.4},
}

// Fa returns the short-period site coefficient for the mapped Ss.
// Table 11.4-1, linear interpolation, clamped at the end columns.
func Fa(class SiteClass, ss float64) (float64, error) {
	row, err := coefficientRow(&faTable, class)
	if err != nil {
		return 0, err
	}
	return Interpolate(ss, faControlValues[:], row), nil
}

// Fv returns the long-period site coefficient for the mapped S1.
// Table 11.4-2, linear interpolation, clamped at the end columns.
func Fv(class SiteClass, s1 float64) (float64, error) {
	row, err := coefficientRow(&fvTable, class)
	if err != nil {
		return 0, err
	}
	return Interpolate(s1, fvControlValues[:], row), nil
}

func coefficientRow(table *[5][5]float64, class SiteClass) ([]float64, error) {
	if class == SiteClassF {
		return nil, ErrUnsupportedSiteClass
	}
	if class < SiteClassA || class > SiteClassF {
		return nil, fmt.Errorf("invalid site class %d", int(class))
	}
	return table[class][:], nil
}

// Interpolate evaluates the piecewise-linear function through (xs, ys) at x.
// Outside [xs[0], xs[n-1]] the boundary ordinate is returned.
// xs must be strictly increasing and the same length as ys.
func Interpolate(x float64, xs, ys []float64) float64 {
	n := len(xs)
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	for i := 1; i < n; i++ {
		if x <= xs[i] {
			t := (x - xs[i-1]) / (xs[i] - xs[i-1])
			return ys[i-1] + t*(ys[i]-ys[i-1])
		}
	}
	return ys[n-1]
}
