package seismic

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/goseismic/internal/asce"
	"github.com/alexiusacademia/goseismic/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeStoryInput() Input {
	in := DefaultInput()
	in.Ss = 1.5
	in.S1 = 0.6
	in.SiteClass = asce.SiteClassD
	in.R = 8
	in.Ie = 1.0
	in.TL = 8.0
	in.StructureType = asce.SteelMomentFrame
	in.Stories = []Story{
		{Height: 3.5, Weight: 2000},
		{Height: 3.5, Weight: 2000},
		{Height: 3.5, Weight: 2000},
	}
	return in
}

func runOK(t *testing.T, in Input) *CalculationResult {
	t.Helper()
	out := NewEngine().Run(in)
	res, ok := out.(*CalculationResult)
	if !ok {
		t.Fatalf("expected a CalculationResult, got %#v", out)
	}
	return res
}

func TestEngine_ThreeStorySteelFrame(t *testing.T) {
	res := runOK(t, threeStoryInput())

	c := res.Coefficients
	assert.InDelta(t, 1.0, c.Fa, 1e-12)
	assert.InDelta(t, 1.5, c.Fv, 1e-12)
	assert.InDelta(t, 1.0, c.SDS, 1e-12)
	assert.InDelta(t, 0.6, c.SD1, 1e-12)
	assert.Equal(t, asce.SDCD, c.Category)

	assert.InDelta(t, 0.475, res.Period.Ta, 5e-4)
	assert.Equal(t, res.Period.Ta, res.Period.TUsed)
	assert.Greater(t, res.Period.UpperLimit(), res.Period.Ta)

	assert.InDelta(t, 0.125, res.Cs.Cs, 1e-12)
	assert.Equal(t, "Eq. 12.8-2", res.Cs.Governing)
	assert.InDelta(t, 6000.0, res.TotalWeight, 1e-9)
	assert.InDelta(t, 750.0, res.BaseShear, 1e-9)
	assert.Equal(t, 1.0, res.K)

	require.Len(t, res.Stories, 3)
	wantCvx := []float64{1.0 / 6, 2.0 / 6, 3.0 / 6}
	wantFx := []float64{125, 250, 375}
	wantVx := []float64{750, 625, 375}
	wantHx := []float64{3.5, 7.0, 10.5}
	for i, s := range res.Stories {
		assert.InDelta(t, wantCvx[i], s.Cvx, 1e-9, "Cvx[%d]", i)
		assert.InDelta(t, wantFx[i], s.Fx, 1e-9, "Fx[%d]", i)
		assert.InDelta(t, wantVx[i], s.Vx, 1e-9, "Vx[%d]", i)
		assert.InDelta(t, wantHx[i], s.Elevation, 1e-12, "hx[%d]", i)
		assert.InDelta(t, 87.5, s.DriftLimit, 1e-9, "Δa[%d]", i)
	}
	assert.Equal(t, "Level 1", res.Stories[0].Name)

	sp := res.Spectrum
	assert.InDelta(t, 0.12, sp.T0, 1e-12)
	assert.InDelta(t, 0.6, sp.Ts, 1e-12)
	assert.InDelta(t, 0.4, sp.At(0), 1e-12)
	assert.InDelta(t, 1.0, sp.At(sp.T0), 1e-12)
	assert.InDelta(t, 1.0, sp.At(sp.T0+1e-9), 1e-12)
	assert.InDelta(t, 1.0, sp.descending(sp.Ts), 1e-12)
	assert.InDelta(t, 0.075, sp.descending(sp.TL), 1e-12)
	assert.InDelta(t, 0.075, sp.At(sp.TL), 1e-12)

	assert.InDelta(t, 1.0, res.StructureSa, 1e-12)
	assert.InDelta(t, 1.4, res.LoadFactors.Additive, 1e-12)
	assert.InDelta(t, 0.7, res.LoadFactors.Counter, 1e-12)
	assert.Len(t, res.Combinations, 4)
}

func TestEngine_ZeroWeights(t *testing.T) {
	in := threeStoryInput()
	for i := range in.Stories {
		in.Stories[i].Weight = 0
	}

	res := runOK(t, in)
	assert.Equal(t, 0.0, res.BaseShear)
	for _, s := range res.Stories {
		assert.Equal(t, 0.0, s.Cvx)
		assert.Equal(t, 0.0, s.Fx)
		assert.Equal(t, 0.0, s.Vx)
	}
}

func TestEngine_NearFaultFloorReported(t *testing.T) {
	in := threeStoryInput()
	in.S1 = 0.65

	res := runOK(t, in)
	assert.InDelta(t, 0.5*0.65/8, res.Cs.Floor2, 1e-12)
	assert.GreaterOrEqual(t, res.Cs.Cs, res.Cs.Floor2)

	in.S1 = 0.55
	res = runOK(t, in)
	assert.Equal(t, 0.0, res.Cs.Floor2)
}

func TestEngine_SiteClassF(t *testing.T) {
	in := threeStoryInput()
	in.SiteClass = asce.SiteClassF

	e := NewEngine()
	out := e.Run(in)
	errRes, ok := out.(*ErrorResult)
	require.True(t, ok, "site class F must produce an ErrorResult")
	assert.Contains(t, errRes.Message, "site class F")
	assert.Same(t, out, e.Last())

	_, err := Calculate(in)
	var unsupported *UnsupportedInputError
	require.True(t, errors.As(err, &unsupported))
	assert.True(t, errors.Is(err, asce.ErrUnsupportedSiteClass))
}

func TestEngine_InvalidInput(t *testing.T) {
	in := threeStoryInput()
	in.Stories = nil

	out := NewEngine().Run(in)
	errRes, ok := out.(*ErrorResult)
	require.True(t, ok)
	assert.Contains(t, errRes.Message, "at least one story")
}

func TestEngine_UnitConversion(t *testing.T) {
	in := threeStoryInput()
	base := runOK(t, in)

	in.Unit = units.Tonne
	ton := runOK(t, in)

	f := units.Tonne.Factor()
	assert.InDelta(t, base.BaseShear*f, ton.BaseShear, 1e-9)
	assert.InDelta(t, base.TotalWeight*f, ton.TotalWeight, 1e-9)
	for i := range base.Stories {
		assert.InDelta(t, base.Stories[i].Weight*f, ton.Stories[i].Weight, 1e-9)
		assert.InDelta(t, base.Stories[i].Fx*f, ton.Stories[i].Fx, 1e-9)
		assert.InDelta(t, base.Stories[i].Vx*f, ton.Stories[i].Vx, 1e-9)
		assert.Equal(t, base.Stories[i].Cvx, ton.Stories[i].Cvx)
		assert.Equal(t, base.Stories[i].DriftLimit, ton.Stories[i].DriftLimit)
	}
	assert.Equal(t, base.Cs, ton.Cs)
	assert.Equal(t, base.Period, ton.Period)
}

func TestEngine_LastResultReplaced(t *testing.T) {
	e := NewEngine()
	assert.Nil(t, e.Last())

	first := e.Run(threeStoryInput())
	assert.Same(t, first, e.Last())

	in := threeStoryInput()
	in.SiteClass = asce.SiteClassF
	second := e.Run(in)
	assert.Same(t, second, e.Last())
	assert.IsType(t, &ErrorResult{}, e.Last())
}

func TestEngine_CalculationIDIsStable(t *testing.T) {
	a := runOK(t, threeStoryInput())
	b := runOK(t, threeStoryInput())
	assert.Equal(t, a.ID, b.ID)

	in := threeStoryInput()
	in.Ss = 1.2
	c := runOK(t, in)
	assert.NotEqual(t, a.ID, c.ID)
}

func TestEngine_ForcesSumToBaseShear(t *testing.T) {
	in := threeStoryInput()
	in.StructureType = asce.ConcreteMomentFrame
	in.Stories = []Story{
		{Height: 4.5, Weight: 3500},
		{Height: 3.2, Weight: 3100},
		{Height: 3.2, Weight: 3100},
		{Height: 3.2, Weight: 3000},
		{Height: 3.2, Weight: 2800},
		{Height: 3.2, Weight: 2800},
		{Height: 3.2, Weight: 2600},
		{Height: 3.2, Weight: 2600},
		{Height: 3.2, Weight: 2400},
		{Height: 3.0, Weight: 1500},
	}

	res := runOK(t, in)
	assert.Greater(t, res.K, 1.0)
	assert.LessOrEqual(t, res.K, 2.0)

	var sum float64
	for _, s := range res.Stories {
		sum += s.Fx
	}
	assert.InEpsilon(t, res.BaseShear, sum, 1e-6)
	assert.Equal(t, res.BaseShear, res.Stories[0].Vx)

	for i := 1; i < len(res.Stories); i++ {
		assert.Greater(t, res.Stories[i].Elevation, res.Stories[i-1].Elevation)
	}
}

func TestEngine_BaseStoryShearEqualsBaseShear(t *testing.T) {
	for n := 1; n <= 40; n++ {
		in := threeStoryInput()
		in.Stories = make([]Story, n)
		for i := range in.Stories {
			in.Stories[i] = Story{
				Height: 3.0 + 0.37*float64(i%5),
				Weight: 1000 + 137.3*float64(i) - 41.7*float64(i%3),
			}
		}

		for _, u := range units.All() {
			in.Unit = u
			res := runOK(t, in)
			require.Equal(t, res.BaseShear, res.Stories[0].Vx, "%d stories, %s", n, u)
		}
	}
}
