package units

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	assert.Equal(t, 750.0, Convert(750, KiloNewton))
	assert.InDelta(t, 76.4775, Convert(750, Tonne), 1e-9)
	assert.InDelta(t, 76477.5, Convert(750, Kilogram), 1e-9)
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Unit
		wantErr bool
	}{
		{"kN", KiloNewton, false},
		{"kn", KiloNewton, false},
		{"", KiloNewton, false},
		{"TON", Tonne, false},
		{"kg", Kilogram, false},
		{"lbf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnit_JSON(t *testing.T) {
	var payload struct {
		Unit Unit `json:"unit"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"unit":"Ton"}`), &payload))
	assert.Equal(t, Tonne, payload.Unit)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"unit":"Ton"}`, string(out))
}
