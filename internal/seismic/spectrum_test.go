package seismic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpectrum_Sampling(t *testing.T) {
	sp := NewSpectrum(1.0, 0.6, 8.0)

	require.Len(t, sp.Points, SpectrumSamples)
	assert.Equal(t, 0.0, sp.Points[0].Period)
	assert.InDelta(t, 10.0, sp.Points[SpectrumSamples-1].Period, 1e-12)
	assert.InDelta(t, 0.4, sp.Points[0].Acceleration, 1e-12)

	for i := 1; i < len(sp.Points); i++ {
		assert.Greater(t, sp.Points[i].Period, sp.Points[i-1].Period)
		assert.False(t, math.IsNaN(sp.Points[i].Acceleration))
		assert.False(t, math.IsInf(sp.Points[i].Acceleration, 0))
	}
}

func TestSpectrum_ContinuousAtBreakpoints(t *testing.T) {
	cases := []struct{ sds, sd1, tl float64 }{
		{1.0, 0.6, 8.0},
		{0.45, 0.22, 4.0},
		{1.6, 1.2, 12.0},
	}

	for _, c := range cases {
		sp := NewSpectrum(c.sds, c.sd1, c.tl)

		assert.Less(t, math.Abs(sp.rising(sp.T0)-sp.SDS), 1e-9, "T0")
		assert.Less(t, math.Abs(sp.SDS-sp.descending(sp.Ts)), 1e-9, "Ts")
		assert.Less(t, math.Abs(sp.descending(sp.TL)-sp.longPeriod(sp.TL)), 1e-9, "TL")

		assert.InDelta(t, sp.SDS, sp.At(sp.T0), 1e-12)
		assert.InDelta(t, sp.longPeriod(sp.TL), sp.At(sp.TL), 1e-12)
	}
}

func TestSpectrum_ZeroSDS(t *testing.T) {
	sp := NewSpectrum(0, 0, 4)

	assert.Equal(t, 0.0, sp.T0)
	assert.Equal(t, 0.0, sp.Ts)
	for _, p := range sp.Points {
		assert.Equal(t, 0.0, p.Acceleration)
	}
}

func TestSpectrum_ZeroSD1StaysFinite(t *testing.T) {
	sp := NewSpectrum(0.8, 0, 6)

	assert.Equal(t, 0.8, sp.At(0))
	for _, p := range sp.Points {
		assert.False(t, math.IsNaN(p.Acceleration))
	}
}
