// Package seismic implements the equivalent lateral force procedure of
// ASCE 7-05 Chapters 11 and 12.
package seismic

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexiusacademia/goseismic/internal/asce"
	"github.com/alexiusacademia/goseismic/internal/units"
	"github.com/google/uuid"
)

// Engine runs the equivalent lateral force procedure and keeps the most
// recent outcome for report and export consumers.
type Engine struct {
	last Outcome
}

// NewEngine creates an engine with no prior result.
func NewEngine() *Engine {
	return &Engine{}
}

// Last returns the outcome of the most recent Run, or nil.
func (e *Engine) Last() Outcome {
	return e.last
}

// Run executes the full calculation. Any failure, including a runtime
// panic inside a stage, is returned as an *ErrorResult.
func (e *Engine) Run(in Input) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = &ErrorResult{Message: fmt.Sprintf("calculation fault: %v", r)}
		}
		e.last = out
	}()

	res, err := Calculate(in)
	if err != nil {
		return &ErrorResult{Message: err.Error()}
	}
	return res
}

// Calculate executes every stage in order and fails on the first error.
// Most callers should use Engine.Run.
func Calculate(in Input) (*CalculationResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	coeffs, err := siteCoefficients(in)
	if err != nil {
		return nil, err
	}

	var hn, totalWeight float64
	for _, s := range in.Stories {
		hn += s.Height
		totalWeight += s.Weight
	}

	period, err := asce.EstimatePeriod(in.StructureType, hn, coeffs.SD1)
	if err != nil {
		return nil, err
	}

	cs := SolveCs(CsInput{
		SDS: coeffs.SDS,
		SD1: coeffs.SD1,
		T:   period.TUsed,
		R:   in.R,
		Ie:  in.Ie,
		TL:  in.TL,
		S1:  in.S1,
	})

	dist := Distribute(in.Stories, period.TUsed, cs.Cs, totalWeight)
	drift := EvaluateDriftLimit(in.Ie, coeffs.Category, in.StructureType, in.Rho)

	id, err := calculationID(in)
	if err != nil {
		return nil, err
	}

	res := &CalculationResult{
		ID:           id,
		Input:        in,
		Unit:         in.Unit,
		Coefficients: coeffs,
		Period:       period,
		Cs:           cs,
		TotalWeight:  units.Convert(totalWeight, in.Unit),
		BaseShear:    units.Convert(dist.BaseShear, in.Unit),
		K:            dist.K,
		Stories:      make([]StoryForce, len(in.Stories)),
		Drift:        drift,
		Spectrum:     NewSpectrum(coeffs.SDS, coeffs.SD1, in.TL),
		StructureSa:  cs.Cs * cs.RIe,
		LoadFactors:  asce.SeismicLoadFactors(coeffs.SDS),
		Combinations: asce.SeismicCombinations(coeffs.SDS, in.Rho, in.Omega0),
	}

	for i, s := range in.Stories {
		res.Stories[i] = StoryForce{
			Name:       StoryName(s, i),
			Height:     s.Height,
			Elevation:  dist.Elevation[i],
			Weight:     units.Convert(s.Weight, in.Unit),
			Cvx:        dist.Cvx[i],
			Fx:         units.Convert(dist.Fx[i], in.Unit),
			Vx:         units.Convert(dist.Vx[i], in.Unit),
			DriftLimit: drift.AllowableDrift(s.Height),
		}
	}

	return res, nil
}

// siteCoefficients derives Fa, Fv, the MCE and design spectral values and the SDC.
func siteCoefficients(in Input) (SeismicCoefficients, error) {
	fa, err := asce.Fa(in.SiteClass, in.Ss)
	if err != nil {
		return SeismicCoefficients{}, unsupported(in.SiteClass, err)
	}
	fv, err := asce.Fv(in.SiteClass, in.S1)
	if err != nil {
		return SeismicCoefficients{}, unsupported(in.SiteClass, err)
	}

	c := SeismicCoefficients{
		Fa:        fa,
		Fv:        fv,
		SMS:       fa * in.Ss,
		SM1:       fv * in.S1,
		Occupancy: asce.OccupancyFromImportance(in.Ie),
	}
	c.SDS = 2.0 / 3.0 * c.SMS
	c.SD1 = 2.0 / 3.0 * c.SM1

	c.Category = asce.ClassifyDesignCategory(c.SDS, c.SD1, in.Ie)
	c.Category = asce.ApplyLongPeriodRule(c.Category, in.S1, in.Ie)
	return c, nil
}

func unsupported(class asce.SiteClass, err error) error {
	if errors.Is(err, asce.ErrUnsupportedSiteClass) {
		return &UnsupportedInputError{
			Message: fmt.Sprintf("no site coefficients are tabulated for site class %s", class),
			Cause:   err,
		}
	}
	return err
}

// StoryName returns the story's name, or "Level N" counting from the bottom.
func StoryName(s Story, index int) string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("Level %d", index+1)
}

// calculationID is a name-based UUID of the input, stable across runs.
func calculationID(in Input) (uuid.UUID, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to encode input: %w", err)
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, data), nil
}
