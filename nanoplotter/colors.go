package nanoplotter

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
)

// Default styling, a seagreen tone and the matching sequential colormap.
const (
	DefaultColor    = "#4CB391"
	DefaultColormap = "Greens"
)

// brewerClasses is the number of classes requested from the colorbrewer
// palettes; nine is the maximum the sequential sets provide.
const brewerClasses = 9

// CheckColor resolves a CSS color name or #RRGGBB string, falling back to
// the default color when it cannot be parsed.
func CheckColor(name string) color.Color {
	if c, ok := parseColor(name); ok {
		logger.Debugf("valid color %s", name)
		return c
	}
	logger.Warnf("invalid color %s, using default", name)
	c, _ := parseColor(DefaultColor)
	return c
}

func parseColor(name string) (color.Color, bool) {
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return c, true
	}
	return parseHexColor(name)
}

func parseHexColor(s string) (color.Color, bool) {
	if !strings.HasPrefix(s, "#") {
		return nil, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}

// CheckColormap resolves a colorbrewer palette name, falling back to the
// default colormap when the name is unknown.
func CheckColormap(name string) palette.Palette {
	if p, err := brewer.GetPalette(brewer.TypeAny, name, brewerClasses); err == nil {
		logger.Debugf("valid colormap %s", name)
		return p
	}
	logger.Warnf("invalid colormap %s, using default", name)
	return defaultPalette()
}

func defaultPalette() palette.Palette {
	p, err := brewer.GetPalette(brewer.TypeSequential, DefaultColormap, brewerClasses)
	if err != nil {
		panic("brewer: builtin palette " + DefaultColormap + " missing")
	}
	return p
}

// colorRamp fades from white towards a single color, the kind of gradient
// used for density shading.
type colorRamp struct {
	to    color.Color
	steps int
}

func (r colorRamp) Colors() []color.Color {
	tr, tg, tb, _ := r.to.RGBA()
	out := make([]color.Color, r.steps)
	for i := range out {
		f := float64(i+1) / float64(r.steps)
		out[i] = color.RGBA{
			R: fadeChannel(tr, f),
			G: fadeChannel(tg, f),
			B: fadeChannel(tb, f),
			A: 255,
		}
	}
	return out
}

// fadeChannel moves one 16 bit channel from white towards the target value
// and scales it down to 8 bits.
func fadeChannel(target uint32, f float64) uint8 {
	v := 65535 - (65535-float64(target))*f
	return uint8(v / 257)
}
