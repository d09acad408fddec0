package asce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimatePeriod_SteelMomentFrame(t *testing.T) {
	res, err := EstimatePeriod(SteelMomentFrame, 10.5, 0.6)
	require.NoError(t, err)

	assert.Equal(t, 0.0724, res.Params.Ct)
	assert.Equal(t, 0.8, res.Params.X)
	assert.InDelta(t, 0.4750, res.Ta, 5e-4)
	assert.Equal(t, 1.4, res.Cu)
	assert.Equal(t, res.Ta, res.TUsed)
	assert.Greater(t, res.UpperLimit(), res.Ta)
}

func TestEstimatePeriod_InvalidHeight(t *testing.T) {
	_, err := EstimatePeriod(OtherSystem, 0, 0.3)
	assert.Error(t, err)
}

func TestPeriodUpperLimitCoefficient(t *testing.T) {
	assert.Equal(t, 1.7, PeriodUpperLimitCoefficient(0.05))
	assert.InDelta(t, 1.65, PeriodUpperLimitCoefficient(0.125), 1e-12)
	assert.InDelta(t, 1.45, PeriodUpperLimitCoefficient(0.25), 1e-12)
	assert.Equal(t, 1.4, PeriodUpperLimitCoefficient(0.9))
}

func TestStructureTypes(t *testing.T) {
	for _, st := range StructureTypes() {
		parsed, err := ParseStructureType(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, parsed)
		assert.NotEmpty(t, st.Label())
	}

	assert.True(t, SteelMomentFrame.IsMomentFrame())
	assert.True(t, ConcreteMomentFrame.IsMomentFrame())
	assert.False(t, EccentricallyBracedFrame.IsMomentFrame())
	assert.False(t, OtherSystem.IsMomentFrame())

	_, err := ParseStructureType("timber-shear-wall")
	assert.Error(t, err)
}
