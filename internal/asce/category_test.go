package asce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOccupancyFromImportance(t *testing.T) {
	assert.Equal(t, OccupancyI, OccupancyFromImportance(1.0))
	assert.Equal(t, OccupancyIII, OccupancyFromImportance(1.25))
	assert.Equal(t, OccupancyIV, OccupancyFromImportance(1.5))
}

func TestClassifyDesignCategory(t *testing.T) {
	tests := []struct {
		name string
		sds  float64
		sd1  float64
		ie   float64
		want DesignCategory
	}{
		{"low hazard", 0.10, 0.05, 1.0, SDCA},
		{"SDS band B", 0.20, 0.05, 1.0, SDCB},
		{"SDS band B promoted for IV", 0.20, 0.05, 1.5, SDCC},
		{"SDS band C", 0.40, 0.05, 1.0, SDCC},
		{"SDS band C promoted for IV", 0.40, 0.05, 1.5, SDCD},
		{"SD1 governs", 0.10, 0.15, 1.0, SDCC},
		{"SD1 band B promoted for IV", 0.10, 0.10, 1.5, SDCC},
		{"high hazard", 1.0, 0.6, 1.0, SDCD},
		{"occupancy III not promoted", 0.20, 0.05, 1.25, SDCB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDesignCategory(tt.sds, tt.sd1, tt.ie))
		})
	}
}

func TestApplyLongPeriodRule(t *testing.T) {
	assert.Equal(t, SDCD, ApplyLongPeriodRule(SDCD, 0.6, 1.0))
	assert.Equal(t, SDCE, ApplyLongPeriodRule(SDCD, 0.75, 1.0))
	assert.Equal(t, SDCF, ApplyLongPeriodRule(SDCD, 0.80, 1.5))
}

func TestDesignCategory_Ordering(t *testing.T) {
	assert.Equal(t, "A", SDCA.String())
	assert.Equal(t, "F", SDCF.String())
	assert.True(t, SDCA < SDCB && SDCE < SDCF)
	assert.False(t, SDCC.HighSeismic())
	assert.True(t, SDCD.HighSeismic())
}
