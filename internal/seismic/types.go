package seismic

import (
	"github.com/alexiusacademia/goseismic/internal/asce"
	"github.com/alexiusacademia/goseismic/internal/units"
	"github.com/google/uuid"
)

// Story is one level of the building, listed bottom-to-top.
type Story struct {
	Name   string  `json:"name,omitempty"`
	Height float64 `json:"height" validate:"gt=0"`  // Story height (m)
	Weight float64 `json:"weight" validate:"gte=0"` // Seismic weight (kN)
}

// Input holds the site, system and building data of one calculation.
type Input struct {
	Unit units.Unit `json:"unit" validate:"gte=0,lte=2"` // Unit for reported weights and forces

	// Site hazard (g)
	Ss        float64        `json:"Ss" validate:"gte=0"`
	S1        float64        `json:"S1" validate:"gte=0"`
	TL        float64        `json:"TL" validate:"gte=0"` // Long-period transition (s)
	SiteClass asce.SiteClass `json:"SiteClass" validate:"gte=0,lte=5"`

	// Structural system
	R             float64            `json:"R" validate:"gt=0"`
	Omega0        float64            `json:"Omega0" validate:"gt=0"`
	Rho           float64            `json:"Rho" validate:"gt=0"`
	Ie            float64            `json:"Ie" validate:"gt=0"`
	StructureType asce.StructureType `json:"StructureType" validate:"gte=0,lte=3"`

	Stories []Story `json:"stories" validate:"required,min=1,dive"`
}

// DefaultInput returns an input populated with the usual defaults
// (Ω0 = 3.0, ρ = 1.0, Ie = 1.0, R = 8, TL = 8 s, site class D).
func DefaultInput() Input {
	return Input{
		Unit:          units.KiloNewton,
		TL:            8.0,
		SiteClass:     asce.SiteClassD,
		R:             8.0,
		Omega0:        3.0,
		Rho:           1.0,
		Ie:            1.0,
		StructureType: asce.SteelMomentFrame,
	}
}

// SeismicCoefficients holds the site coefficients and design spectral values.
type SeismicCoefficients struct {
	Fa        float64
	Fv        float64
	SMS       float64 // Fa·Ss
	SM1       float64 // Fv·S1
	SDS       float64 // 2/3·SMS
	SD1       float64 // 2/3·SM1
	Occupancy asce.OccupancyCategory
	Category  asce.DesignCategory
}

// StoryForce is the per-story output of the vertical distribution.
// Weight, Fx and Vx are in the result unit; DriftLimit is in mm.
type StoryForce struct {
	Name       string
	Height     float64 // Story height (m)
	Elevation  float64 // Cumulative height hx (m)
	Weight     float64
	Cvx        float64
	Fx         float64
	Vx         float64
	DriftLimit float64 // Allowable story drift Δa (mm)
}

// CalculationResult aggregates every derived quantity of one calculation.
type CalculationResult struct {
	ID    uuid.UUID
	Input Input
	Unit  units.Unit

	Coefficients SeismicCoefficients
	Period       asce.PeriodResult
	Cs           CsResult

	TotalWeight float64 // Result unit
	BaseShear   float64 // Result unit
	K           float64
	Stories     []StoryForce

	Drift    DriftLimit
	Spectrum Spectrum

	// Spectral acceleration of the structure, Cs·R/Ie at T_used (g)
	StructureSa float64

	LoadFactors  asce.LoadFactors
	Combinations []asce.LoadCombination
}

// ErrorResult carries the message of a failed calculation.
type ErrorResult struct {
	Message string
}

func (e *ErrorResult) Error() string {
	return e.Message
}

// Outcome is either a *CalculationResult or an *ErrorResult.
type Outcome interface {
	outcome()
}

func (*CalculationResult) outcome() {}
func (*ErrorResult) outcome()       {}
