package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/goseismic/internal/asce"
	"github.com/alexiusacademia/goseismic/internal/seismic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertClosedBox(t *testing.T, box string) []string {
	t.Helper()
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.NotEmpty(t, lines)

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), "line %q", l)
		last := string([]rune(l)[len([]rune(l))-1])
		assert.Contains(t, "╗║╣╝", last, "line %q is not closed", l)
	}
	return lines
}

func TestBaseShearBox(t *testing.T) {
	in, err := seismic.LoadFromFile(filepath.Join("..", "testdata", "three-story.json"))
	require.NoError(t, err)
	res, ok := seismic.NewEngine().Run(*in).(*seismic.CalculationResult)
	require.True(t, ok)

	box := baseShearBox(res)
	lines := assertClosedBox(t, box)
	assert.Contains(t, lines[1], "BASE SHEAR")
	assert.Contains(t, box, "Cs·W")
	assert.Contains(t, box, res.Unit.String())
}

func TestGoverningBox(t *testing.T) {
	effects := asce.LoadEffects{Dead: 120, Live: 45, Earthquake: 80}
	maxU, governing := asce.CalculateGoverning(effects, asce.SeismicCombinations(1.0, 1.0, 3.0))

	box := governingBox(maxU, governing)
	lines := assertClosedBox(t, box)
	assert.Contains(t, lines[1], "FACTORED EFFECT")
	assert.Contains(t, box, governing.Description)
}
