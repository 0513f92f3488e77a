package chart

import (
	"fmt"
	"image/color"

	"github.com/pkg/errors"
	"github.com/uyouii/engagement-charts/common"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg"
)

const (
	// bandPadding is the share of a band left empty around its box or bar group.
	bandPadding = 0.1
	// innerPadding is the share of an inner band left empty between bars.
	innerPadding = 0.05

	niceTickCount  = 10
	curveSegments  = 16
	plotAreaFactor = 0.85
)

var (
	black     = colornames.Black
	lightGray = colornames.Lightgray
	steelBlue = colornames.Steelblue

	// DefaultPalette is the ordinal palette for sub groups, cycled when there
	// are more sub groups than colors.
	DefaultPalette = []string{"#1f77b4", "#ff7f0e", "#2ca02c"}
)

// Layout is the size of the rendered chart.
type Layout struct {
	Width  vg.Length
	Height vg.Length
}

var DefaultLayout = Layout{Width: 800, Height: 400}

// ParseHexColor parses #rgb and #rrggbb colors, the form d3 palettes are
// written in.
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		return c, errors.Wrapf(common.ErrorInvalidValue, "color %q", s)
	}
	if err != nil {
		return c, errors.Wrapf(common.ErrorInvalidValue, "color %q", s)
	}
	return c, nil
}

func paletteColors(palette []string) ([]color.Color, error) {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	res := make([]color.Color, len(palette))
	for i, hex := range palette {
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, err
		}
		res[i] = c
	}
	return res, nil
}
