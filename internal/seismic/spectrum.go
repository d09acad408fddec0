package seismic

// SpectrumSamples is the number of periods sampled between 0 and TL + 2 s.
const SpectrumSamples = 100

// SpectrumPoint is one (T, Sa) sample of the design response spectrum.
type SpectrumPoint struct {
	Period       float64 // s
	Acceleration float64 // g
}

// Spectrum is the design response spectrum of Section 11.4.5.
type Spectrum struct {
	SDS    float64
	SD1    float64
	T0     float64 // 0.2·SD1/SDS
	Ts     float64 // SD1/SDS
	TL     float64
	Points []SpectrumPoint
}

// NewSpectrum computes the breakpoints and samples the curve.
// With SDS = 0 both T0 and Ts are zero.
func NewSpectrum(sds, sd1, tl float64) Spectrum {
	s := Spectrum{SDS: sds, SD1: sd1, TL: tl}
	if sds != 0 {
		s.T0 = 0.2 * sd1 / sds
		s.Ts = sd1 / sds
	}

	s.Points = make([]SpectrumPoint, SpectrumSamples)
	tMax := tl + 2
	for i := range s.Points {
		t := tMax * float64(i) / float64(SpectrumSamples-1)
		s.Points[i] = SpectrumPoint{Period: t, Acceleration: s.At(t)}
	}
	return s
}

// At returns the design spectral acceleration Sa at period t.
func (s Spectrum) At(t float64) float64 {
	switch {
	case t < s.T0:
		return s.rising(t)
	case t < s.Ts:
		return s.SDS
	case t <= 0:
		// Degenerate breakpoints (SDS or SD1 zero): keep Sa finite at T = 0.
		return s.SDS
	case t < s.TL:
		return s.descending(t)
	default:
		return s.longPeriod(t)
	}
}

// Sa = SDS(0.4 + 0.6T/T0), Eq. 11.4-5
func (s Spectrum) rising(t float64) float64 {
	return s.SDS * (0.4 + 0.6*t/s.T0)
}

// Sa = SD1/T, Eq. 11.4-6
func (s Spectrum) descending(t float64) float64 {
	return s.SD1 / t
}

// Sa = SD1·TL/T², Eq. 11.4-7
func (s Spectrum) longPeriod(t float64) float64 {
	return s.SD1 * s.TL / (t * t)
}
