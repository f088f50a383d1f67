package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1024.0, cfg.DesignWidth)
	assert.Equal(t, []float64{4, 2}, cfg.DashPattern)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
title = "Sketch"
stroke_width = 2.5
dash_pattern = [6.0, 3.0]
ink_color = "#1d4ed8"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Sketch", cfg.Title)
	assert.Equal(t, 2.5, cfg.StrokeWidth)
	assert.Equal(t, []float64{6, 3}, cfg.DashPattern)
	assert.Equal(t, "#1d4ed8", cfg.InkColor)
	assert.Equal(t, 1024.0, cfg.DesignWidth)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("design_width = 0.0\n"), 0o600))

	cfg, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero stroke", func(c *Config) { c.StrokeWidth = 0 }},
		{"empty dash", func(c *Config) { c.DashPattern = nil }},
		{"all-zero dash", func(c *Config) { c.DashPattern = []float64{0, 0} }},
		{"negative dash", func(c *Config) { c.DashPattern = []float64{4, -2} }},
		{"bad ink", func(c *Config) { c.InkColor = "black" }},
		{"bad background", func(c *Config) { c.BackgroundColor = "#GGGGGG" }},
		{"truncated background", func(c *Config) { c.BackgroundColor = "#FFFF" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestColors(t *testing.T) {
	cfg := Default()
	cfg.InkColor = "#FACC15"
	cfg.BackgroundColor = "#fff"
	require.NoError(t, cfg.Validate())

	ink := cfg.Ink()
	assert.InDelta(t, 0xFA/255.0, ink.R, 1e-9)
	assert.InDelta(t, 0xCC/255.0, ink.G, 1e-9)
	assert.InDelta(t, 0x15/255.0, ink.B, 1e-9)
	assert.Equal(t, 1.0, ink.A)
	bg := cfg.Background()
	assert.InDelta(t, 1, bg.R, 1e-9, "short form is accepted")
	assert.InDelta(t, 1, bg.G, 1e-9)
	assert.InDelta(t, 1, bg.B, 1e-9)

	cfg.InkColor = "black"
	assert.Error(t, cfg.Validate())
	assert.Equal(t, gg.Black, cfg.Ink())
}
