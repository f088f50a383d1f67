package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

const DefaultFile = "config.toml"

// Config holds the window and ink settings. Zero values are never used
// directly; start from Default.
type Config struct {
	Title           string    `toml:"title"`
	DesignWidth     float64   `toml:"design_width"`
	DesignHeight    float64   `toml:"design_height"`
	StrokeWidth     float64   `toml:"stroke_width"`
	DashPattern     []float64 `toml:"dash_pattern"`
	InkColor        string    `toml:"ink_color"`
	BackgroundColor string    `toml:"background_color"`
	LogLevel        string    `toml:"log_level"`
}

// Default returns the layout the static shapes were authored against.
func Default() Config {
	return Config{
		Title:           "Painting",
		DesignWidth:     1024,
		DesignHeight:    768,
		StrokeWidth:     1,
		DashPattern:     []float64{4, 2},
		InkColor:        "#000000",
		BackgroundColor: "#FFFFFF",
		LogLevel:        "info",
	}
}

// Load decodes the TOML file at path over the defaults. When the file does
// not exist the defaults are returned together with an error wrapping
// os.ErrNotExist.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be rendered.
func (c Config) Validate() error {
	if c.DesignWidth <= 0 || c.DesignHeight <= 0 {
		return fmt.Errorf("design size %vx%v must be positive", c.DesignWidth, c.DesignHeight)
	}
	if c.StrokeWidth <= 0 {
		return fmt.Errorf("stroke_width %v must be positive", c.StrokeWidth)
	}
	if len(c.DashPattern) == 0 {
		return errors.New("dash_pattern is empty")
	}
	on := false
	for _, l := range c.DashPattern {
		if l < 0 {
			return fmt.Errorf("dash_pattern has negative length %v", l)
		}
		if l > 0 {
			on = true
		}
	}
	if !on {
		return errors.New("dash_pattern has no visible segment")
	}
	if _, err := parseColor(c.InkColor); err != nil {
		return fmt.Errorf("ink_color: %w", err)
	}
	if _, err := parseColor(c.BackgroundColor); err != nil {
		return fmt.Errorf("background_color: %w", err)
	}
	return nil
}

// Ink is the parsed ink color. An invalid setting yields opaque black.
func (c Config) Ink() gg.RGBA {
	ink, err := parseColor(c.InkColor)
	if err != nil {
		return gg.Black
	}
	return ink
}

// Background is the parsed background color. An invalid setting yields
// opaque white.
func (c Config) Background() gg.RGBA {
	bg, err := parseColor(c.BackgroundColor)
	if err != nil {
		return gg.White
	}
	return bg
}

// parseColor accepts "#RGB" and "#RRGGBB".
func parseColor(s string) (gg.RGBA, error) {
	col, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return gg.RGBA{R: col.R, G: col.G, B: col.B, A: 1}, nil
}
