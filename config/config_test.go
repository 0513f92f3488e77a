package config

import (
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/uyouii/engagement-charts/chart"
	"github.com/uyouii/engagement-charts/common"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"gotest.tools/v3/fs"
)

func clearEnv(t *testing.T) {
	for _, name := range []string{EnvDataDir, EnvOutputDir, EnvFormat, EnvWidth, EnvHeight, EnvPalette, EnvLogLevel} {
		t.Setenv(name, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	assert.NilError(t, err)
	assert.Check(t, is.DeepEqual(cfg, Default()))
	assert.Check(t, is.Equal(cfg.Layout(), chart.DefaultLayout))
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDataDir, "/srv/data")
	t.Setenv(EnvFormat, "PNG")
	t.Setenv(EnvWidth, "1024")
	t.Setenv(EnvPalette, "#111111, #222")

	cfg, err := FromEnv()
	assert.NilError(t, err)
	assert.Check(t, is.Equal(cfg.DataDir, "/srv/data"))
	assert.Check(t, is.Equal(cfg.Format, "png"))
	assert.Check(t, is.Equal(cfg.Width, 1024.0))
	assert.Check(t, is.Equal(cfg.Height, 400.0))
	assert.Check(t, is.DeepEqual(cfg.Palette, []string{"#111111", "#222"}))
}

func TestFromEnvInvalid(t *testing.T) {
	testCases := []struct {
		name, value string
	}{
		{EnvWidth, "wide"},
		{EnvHeight, "-5"},
		{EnvFormat, "gif"},
		{EnvPalette, "red"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.name, tc.value)
			_, err := FromEnv()
			assert.Check(t, errors.Is(err, common.ErrorInvalidValue), "got %v", err)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even empty
	// ones, so the file variables must be absent
	for _, name := range []string{EnvOutputDir, EnvHeight} {
		unsetEnv(t, name)
	}

	file := fs.NewFile(t, "charts.env", fs.WithContent("CHARTS_OUTPUT_DIR=build/charts\nCHARTS_HEIGHT=300\n"))
	defer file.Remove()

	cfg, err := Load(file.Path(), "does-not-exist.env")
	assert.NilError(t, err)
	assert.Check(t, is.Equal(cfg.OutputDir, "build/charts"))
	assert.Check(t, is.Equal(cfg.Height, 300.0))
}

func unsetEnv(t *testing.T, name string) {
	t.Setenv(name, "")
	assert.NilError(t, os.Unsetenv(name))
}
