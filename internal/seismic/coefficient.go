package seismic

import "math"

// Lower bounds on Cs, Section 12.8.1.1
const (
	CsAbsoluteMinimum = 0.01  // Eq. 12.8-5 floor
	CsSDSFactor       = 0.044 // Eq. 12.8-5
	NearFaultS1       = 0.6   // S1 at which Eq. 12.8-6 applies
)

// CsInput holds the parameters of the seismic response coefficient.
type CsInput struct {
	SDS float64
	SD1 float64
	T   float64 // Design period T_used (s)
	R   float64
	Ie  float64
	TL  float64
	S1  float64
}

// CsResult holds Cs and every bound it was selected from.
type CsResult struct {
	Cs      float64
	RIe     float64 // R/Ie
	Base    float64 // Eq. 12.8-2, SDS/(R/Ie)
	Ceiling float64 // Eq. 12.8-3 or 12.8-4
	Floor1  float64 // Eq. 12.8-5, 0.044·SDS·Ie (not below 0.01)
	Floor2  float64 // Eq. 12.8-6, 0.5·S1/(R/Ie) where S1 >= 0.6
	Floor3  float64 // Absolute minimum 0.01

	LongPeriod bool   // Ceiling taken from Eq. 12.8-4 (T > TL)
	Governing  string // Equation that sets Cs
}

// SolveCs computes the seismic response coefficient of Section 12.8.1.1.
func SolveCs(in CsInput) CsResult {
	r := in.R
	if r == 0 {
		r = 1
	}
	rIe := r / in.Ie

	res := CsResult{
		RIe:    rIe,
		Base:   in.SDS / rIe,
		Floor3: CsAbsoluteMinimum,
	}

	if in.T <= in.TL {
		res.Ceiling = in.SD1 / (in.T * rIe)
	} else {
		res.Ceiling = (in.SD1 * in.TL) / (in.T * in.T * rIe)
		res.LongPeriod = true
	}

	res.Floor1 = math.Max(CsSDSFactor*in.SDS*in.Ie, CsAbsoluteMinimum)
	if in.S1 >= NearFaultS1 {
		res.Floor2 = 0.5 * in.S1 / rIe
	}

	res.Cs = math.Min(res.Base, res.Ceiling)
	res.Governing = "Eq. 12.8-2"
	if res.Ceiling < res.Base {
		res.Governing = "Eq. 12.8-3"
		if res.LongPeriod {
			res.Governing = "Eq. 12.8-4"
		}
	}

	if res.Floor1 > res.Cs {
		res.Cs = res.Floor1
		res.Governing = "Eq. 12.8-5"
	}
	if res.Floor2 > res.Cs {
		res.Cs = res.Floor2
		res.Governing = "Eq. 12.8-6"
	}
	if res.Floor3 > res.Cs {
		res.Cs = res.Floor3
		res.Governing = "Cs,min = 0.01"
	}

	return res
}

// Floor is the largest of the three lower bounds.
func (r CsResult) Floor() float64 {
	return math.Max(r.Floor1, math.Max(r.Floor2, r.Floor3))
}
