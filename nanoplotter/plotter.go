// Package nanoplotter renders the figures shown in NanoPlot and NanoComp
// reports from data extracted out of sequencing summary files.
package nanoplotter

import (
	"encoding/base64"
	"fmt"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "nanoplotter",
})

// SetLogger replaces the package logger, e.g. to inherit the verbosity of
// the calling tool.
func SetLogger(l *log.Logger) { logger = l }

// Plot couples a figure written to disk with the title it carries in
// reports.
type Plot struct {
	Path  string
	Title string
}

// Encode returns an HTML fragment embedding the figure. SVG files are
// inlined as markup, raster formats become a base64 data URI.
func (p *Plot) Encode() (string, error) {
	raw, err := os.ReadFile(p.Path)
	if err != nil {
		return "", err
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(p.Path)), ".")
	if ext == "svg" {
		return string(raw), nil
	}
	return fmt.Sprintf("<img src=\"data:image/%s;base64,%s\">",
		mimeSubtype(ext), base64.StdEncoding.EncodeToString(raw)), nil
}

func mimeSubtype(ext string) string {
	switch ext {
	case "jpg", "jpeg":
		return "jpeg"
	case "tif", "tiff":
		return "tiff"
	default:
		return "png"
	}
}

// DefaultFormat is used when an unknown figure format is requested.
const DefaultFormat = "png"

// Formats the plot backend can write.
var validFormats = []string{"eps", "jpg", "jpeg", "pdf", "png", "svg", "tex", "tif", "tiff"}

// CheckFormat validates the requested figure format, falling back to the
// default when it is not supported.
func CheckFormat(format string) string {
	format = strings.ToLower(format)
	for _, f := range validFormats {
		if format == f {
			logger.Debugf("valid output format %s", format)
			return format
		}
	}
	logger.Warnf("invalid format %s, using default", format)
	return DefaultFormat
}

// Options bundles the styling shared by all plot functions.
type Options struct {
	Color   color.Color
	Palette palette.Palette
	Format  string
	Width   vg.Length
	Height  vg.Length
}

// NewOptions resolves user supplied color, colormap and format names,
// substituting defaults for values that cannot be used.
func NewOptions(colorName, colormapName, format string) *Options {
	return &Options{
		Color:   CheckColor(colorName),
		Palette: CheckColormap(colormapName),
		Format:  CheckFormat(format),
		Width:   8 * vg.Inch,
		Height:  6 * vg.Inch,
	}
}

// sampleIndices picks n distinct indices below total, sorted ascending.
// When n is not smaller than total every index is returned.
func sampleIndices(n, total int) []int {
	if n >= total {
		idx := make([]int, total)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	idx := rand.Perm(total)[:n]
	sort.Ints(idx)
	return idx
}
