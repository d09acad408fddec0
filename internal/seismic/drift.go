package seismic

import (
	"fmt"

	"github.com/alexiusacademia/goseismic/internal/asce"
)

// driftRatio returns the allowable story drift ratio Δa/hsx by occupancy category.
func driftRatio(occ asce.OccupancyCategory) float64 {
	switch occ {
	case asce.OccupancyIV:
		return 0.015
	case asce.OccupancyIII:
		return 0.020
	default:
		return 0.025
	}
}

// DriftLimit is the allowable drift-to-height ratio of Section 12.12.1.
type DriftLimit struct {
	BaseRatio         float64
	Ratio             float64
	RedundancyApplied bool
	Explanation       string
}

// EvaluateDriftLimit selects Δa/hsx for the occupancy inferred from Ie and
// divides it by ρ for moment frames in SDC D through F (Section 12.12.1.1).
func EvaluateDriftLimit(ie float64, sdc asce.DesignCategory, st asce.StructureType, rho float64) DriftLimit {
	occ := asce.OccupancyFromImportance(ie)
	base := driftRatio(occ)

	dl := DriftLimit{
		BaseRatio:   base,
		Ratio:       base,
		Explanation: fmt.Sprintf("Δa = %.3f·hsx for occupancy category %s", base, occ),
	}

	if st.IsMomentFrame() && sdc.HighSeismic() && rho > 0 {
		dl.Ratio = base / rho
		dl.RedundancyApplied = true
		dl.Explanation += fmt.Sprintf("; divided by ρ = %.2f for a moment frame in SDC %s", rho, sdc)
	}

	return dl
}

// AllowableDrift returns Δa in mm for a story height in m.
func (d DriftLimit) AllowableDrift(storyHeight float64) float64 {
	return d.Ratio * storyHeight * 1000
}
