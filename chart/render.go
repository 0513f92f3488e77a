package chart

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/uyouii/engagement-charts/common"
	"gonum.org/v1/plot"
)

var formats = map[string]bool{
	"svg": true, "png": true, "pdf": true, "eps": true, "jpg": true, "jpeg": true, "tif": true, "tiff": true,
}

// FormatOf returns the image format implied by path's extension.
func FormatOf(path string) (string, error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !formats[format] {
		return "", errors.Wrapf(common.ErrorInvalidValue, "unsupported chart format %q", format)
	}
	return format, nil
}

// Write encodes p in format to w.
func Write(p *plot.Plot, w io.Writer, format string, layout Layout) error {
	wt, err := p.WriterTo(layout.Width, layout.Height, format)
	if err != nil {
		return errors.Wrapf(err, "create %s writer", format)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "write chart")
	}
	return nil
}

// Save writes p to path, the extension selects the format.
func Save(p *plot.Plot, path string, layout Layout) error {
	if _, err := FormatOf(path); err != nil {
		return err
	}
	return errors.Wrapf(p.Save(layout.Width, layout.Height, path), "save chart %s", path)
}
