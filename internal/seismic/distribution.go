package seismic

import "math"

// DistributionExponent returns k of Section 12.8.3.
// k = 1 for T <= 0.5 s, 2 for T >= 2.5 s, linear in between.
func DistributionExponent(t float64) float64 {
	switch {
	case t <= 0.5:
		return 1.0
	case t >= 2.5:
		return 2.0
	default:
		return 1.0 + (t-0.5)/2.0
	}
}

// Distribution is the vertical distribution of the base shear, in kN.
type Distribution struct {
	K         float64
	BaseShear float64 // V = Cs·W
	SumWHk    float64 // Σ wi·hi^k
	Elevation []float64
	Cvx       []float64
	Fx        []float64
	Vx        []float64
}

// Distribute allocates V = Cs·W to the stories (Eq. 12.8-11, 12.8-12) and
// accumulates the story shear from the top down (Eq. 12.8-13).
func Distribute(stories []Story, t, cs, totalWeight float64) Distribution {
	n := len(stories)
	d := Distribution{
		K:         DistributionExponent(t),
		BaseShear: cs * totalWeight,
		Elevation: make([]float64, n),
		Cvx:       make([]float64, n),
		Fx:        make([]float64, n),
		Vx:        make([]float64, n),
	}

	whk := make([]float64, n)
	var hx float64
	for i, s := range stories {
		hx += s.Height
		d.Elevation[i] = hx
		whk[i] = s.Weight * math.Pow(hx, d.K)
		d.SumWHk += whk[i]
	}

	if d.SumWHk == 0 {
		return d
	}

	for i := range stories {
		d.Cvx[i] = whk[i] / d.SumWHk
		d.Fx[i] = d.Cvx[i] * d.BaseShear
	}

	var shear float64
	for i := n - 1; i >= 0; i-- {
		shear += d.Fx[i]
		d.Vx[i] = shear
	}
	// Base story shear is V exactly; the fold above may differ by rounding.
	d.Vx[0] = d.BaseShear

	return d
}
