package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/uyouii/engagement-charts/chart"
	"github.com/uyouii/engagement-charts/common"
	"gonum.org/v1/plot/vg"
)

const (
	EnvDataDir   = "CHARTS_DATA_DIR"
	EnvOutputDir = "CHARTS_OUTPUT_DIR"
	EnvFormat    = "CHARTS_FORMAT"
	EnvWidth     = "CHARTS_WIDTH"
	EnvHeight    = "CHARTS_HEIGHT"
	EnvPalette   = "CHARTS_PALETTE"
	EnvLogLevel  = "CHARTS_LOG_LEVEL"
)

type Config struct {
	DataDir   string
	OutputDir string
	Format    string
	// Width and Height are in points.
	Width    float64
	Height   float64
	Palette  []string
	LogLevel string
}

func Default() *Config {
	return &Config{
		DataDir:   "data",
		OutputDir: "out",
		Format:    "svg",
		Width:     float64(chart.DefaultLayout.Width),
		Height:    float64(chart.DefaultLayout.Height),
		Palette:   append([]string{}, chart.DefaultPalette...),
		LogLevel:  "info",
	}
}

// Load reads envFiles into the environment, files that do not exist are
// ignored, then builds a Config from the environment over the defaults.
// Variables already set in the environment win over the files.
func Load(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return nil, errors.Wrapf(err, "load env file %s", file)
		}
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := Default()

	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvPalette); v != "" {
		cfg.Palette = splitList(v)
	}

	var err error
	if cfg.Width, err = positiveFloat(EnvWidth, cfg.Width); err != nil {
		return nil, err
	}
	if cfg.Height, err = positiveFloat(EnvHeight, cfg.Height); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(common.ErrorInvalidValue, "chart size %vx%v", c.Width, c.Height)
	}
	if _, err := chart.FormatOf("chart." + c.Format); err != nil {
		return err
	}
	for _, hex := range c.Palette {
		if _, err := chart.ParseHexColor(hex); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) Layout() chart.Layout {
	return chart.Layout{Width: vg.Length(c.Width), Height: vg.Length(c.Height)}
}

func positiveFloat(name string, def float64) (float64, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return 0, errors.Wrapf(common.ErrorInvalidValue, "%s=%q", name, v)
	}
	return f, nil
}

func splitList(v string) []string {
	res := []string{}
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			res = append(res, item)
		}
	}
	return res
}
