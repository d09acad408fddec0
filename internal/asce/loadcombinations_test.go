package asce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeismicLoadFactors(t *testing.T) {
	f := SeismicLoadFactors(1.0)
	assert.InDelta(t, 0.2, f.Ev, 1e-12)
	assert.InDelta(t, 1.4, f.Additive, 1e-12)
	assert.InDelta(t, 0.7, f.Counter, 1e-12)
}

func TestSeismicCombinations_Governing(t *testing.T) {
	combos := SeismicCombinations(1.0, 1.3, 3.0)
	require.Len(t, combos, 4)

	effects := LoadEffects{Dead: 100, Live: 50, Earthquake: 40}
	mu, gov := CalculateGoverning(effects, combos)

	// 1.4*100 + 3.0*40 + 50
	assert.InDelta(t, 310.0, mu, 1e-9)
	assert.Equal(t, "5Ω", gov.ID)
}

func TestCalculateGoverning_NegativeEffects(t *testing.T) {
	combos := SeismicCombinations(0.5, 1.0, 2.0)
	effects := LoadEffects{Dead: -10}

	u, gov := CalculateGoverning(effects, combos)
	// 0.8*-10 is the least negative
	assert.InDelta(t, -8.0, u, 1e-9)
	assert.Equal(t, "7", gov.ID)
}
