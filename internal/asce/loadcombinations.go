package asce

import "fmt"

// VerticalSeismicCoefficient is the Ev multiplier on SDS·D (Eq. 12.4-4).
const VerticalSeismicCoefficient = 0.2

// LoadCombination represents a strength design combination including seismic effects
// Based on ASCE 7-05 Section 12.4.2.3
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each effect
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Earthquake float64 // QE - Horizontal seismic effect (ρ or Ω0)
}

// LoadEffects holds unfactored effects (moment, shear or axial) of each load type
type LoadEffects struct {
	Dead       float64
	Live       float64
	Earthquake float64 // QE, horizontal seismic effect
}

// LoadFactors are the SDS-dependent dead load factors of the seismic combinations.
type LoadFactors struct {
	Ev       float64 // 0.2·SDS
	Additive float64 // 1.2 + 0.2·SDS
	Counter  float64 // 0.9 - 0.2·SDS
}

// SeismicLoadFactors returns the dead load factors including vertical seismic effect.
func SeismicLoadFactors(sds float64) LoadFactors {
	ev := VerticalSeismicCoefficient * sds
	return LoadFactors{
		Ev:       ev,
		Additive: 1.2 + ev,
		Counter:  0.9 - ev,
	}
}

// SeismicCombinations builds combinations 5 and 7 with the redundancy factor
// and their overstrength counterparts (Section 12.4.3.2).
func SeismicCombinations(sds, rho, omega0 float64) []LoadCombination {
	f := SeismicLoadFactors(sds)
	return []LoadCombination{
		{
			ID:          "5",
			Description: fmt.Sprintf("%.3fD + %.2fQE + 1.0L", f.Additive, rho),
			Dead:        f.Additive,
			Live:        1.0,
			Earthquake:  rho,
		},
		{
			ID:          "7",
			Description: fmt.Sprintf("%.3fD + %.2fQE", f.Counter, rho),
			Dead:        f.Counter,
			Earthquake:  rho,
		},
		{
			ID:          "5Ω",
			Description: fmt.Sprintf("%.3fD + %.2fQE + 1.0L", f.Additive, omega0),
			Dead:        f.Additive,
			Live:        1.0,
			Earthquake:  omega0,
		},
		{
			ID:          "7Ω",
			Description: fmt.Sprintf("%.3fD + %.2fQE", f.Counter, omega0),
			Dead:        f.Counter,
			Earthquake:  omega0,
		},
	}
}

// CalculateFactoredEffect calculates the factored effect for a given load combination
func (lc LoadCombination) CalculateFactoredEffect(effects LoadEffects) float64 {
	return lc.Dead*effects.Dead +
		lc.Live*effects.Live +
		lc.Earthquake*effects.Earthquake
}

// CalculateGoverning finds the combination with the largest factored effect
func CalculateGoverning(effects LoadEffects, combinations []LoadCombination) (float64, LoadCombination) {
	var maxEffect float64
	var governing LoadCombination

	for i, combo := range combinations {
		u := combo.CalculateFactoredEffect(effects)
		if i == 0 || u > maxEffect {
			maxEffect = u
			governing = combo
		}
	}

	return maxEffect, governing
}
