package seismic

import (
	"testing"

	"github.com/alexiusacademia/goseismic/internal/asce"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateDriftLimit(t *testing.T) {
	tests := []struct {
		name       string
		ie         float64
		sdc        asce.DesignCategory
		st         asce.StructureType
		rho        float64
		wantRatio  float64
		redundancy bool
	}{
		{"occupancy I", 1.0, asce.SDCC, asce.OtherSystem, 1.3, 0.025, false},
		{"occupancy III", 1.25, asce.SDCC, asce.OtherSystem, 1.0, 0.020, false},
		{"occupancy IV", 1.5, asce.SDCB, asce.SteelMomentFrame, 1.3, 0.015, false},
		{"moment frame in SDC D", 1.0, asce.SDCD, asce.SteelMomentFrame, 1.3, 0.025 / 1.3, true},
		{"concrete moment frame in SDC F", 1.5, asce.SDCF, asce.ConcreteMomentFrame, 1.3, 0.015 / 1.3, true},
		{"braced frame in SDC D", 1.0, asce.SDCD, asce.EccentricallyBracedFrame, 1.3, 0.025, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dl := EvaluateDriftLimit(tt.ie, tt.sdc, tt.st, tt.rho)
			assert.InDelta(t, tt.wantRatio, dl.Ratio, 1e-12)
			assert.Equal(t, tt.redundancy, dl.RedundancyApplied)
			assert.NotEmpty(t, dl.Explanation)
		})
	}
}

func TestDriftLimit_AllowableDrift(t *testing.T) {
	dl := EvaluateDriftLimit(1.0, asce.SDCB, asce.OtherSystem, 1.0)
	assert.InDelta(t, 75.0, dl.AllowableDrift(3.0), 1e-9)
}
