// Package config holds the settings shared by the plotting tools and the
// central version bookkeeping.
package config

import "github.com/BurntSushi/toml"

// Settings are the styling and output options every plotting tool
// understands. Values from a settings file override these defaults and
// explicit flags override both.
type Settings struct {
	Color      string  `toml:"color"`
	Colormap   string  `toml:"colormap"`
	Format     string  `toml:"format"`
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Downsample int     `toml:"downsample"`
	Verbose    bool    `toml:"verbose"`
}

// Defaults returns the settings used when nothing overrides them. Width
// and height are figure dimensions in inches.
func Defaults() Settings {
	return Settings{
		Color:    "#4CB391",
		Colormap: "Greens",
		Format:   "png",
		Width:    8,
		Height:   6,
	}
}

// Load reads a TOML settings file on top of the defaults.
func Load(path string) (Settings, error) {
	s := Defaults()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Defaults(), err
	}
	return s, nil
}
