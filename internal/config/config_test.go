package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/goseismic/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvUnit, "")
	t.Setenv(EnvOutputDir, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "kN", cfg.Unit)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, units.KiloNewton, cfg.DefaultUnit())
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv(EnvUnit, "")
	t.Setenv(EnvOutputDir, "")
	os.Unsetenv(EnvUnit)
	os.Unsetenv(EnvOutputDir)

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("GOSEISMIC_UNIT=Ton\nGOSEISMIC_OUTPUT_DIR=out\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, units.Tonne, cfg.DefaultUnit())
	assert.Equal(t, "out", cfg.OutputDir)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Unit: "lbf", OutputDir: "."}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Unit: "kg", OutputDir: ""}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Unit: "kg", OutputDir: "reports"}
	assert.NoError(t, cfg.Validate())
}
