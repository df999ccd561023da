// Package config loads chartgeom settings from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/geom"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/layout"
)

// Config holds all chartgeom settings.
type Config struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Domain    DomainConfig    `yaml:"domain"`
	Bars      BarsConfig      `yaml:"bars"`
	Overlay   OverlayConfig   `yaml:"overlay"`
	Radar     RadarConfig     `yaml:"radar"`
	Selection SelectionConfig `yaml:"selection"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// CanvasConfig sets the default canvas.
type CanvasConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Margin float64 `yaml:"margin"`
	Ticks  int     `yaml:"ticks"`
}

// DomainConfig pads line chart domains.
type DomainConfig struct {
	PadLow  float64 `yaml:"pad_low"`
	PadHigh float64 `yaml:"pad_high"`
}

// BarsConfig tunes bar layouts.
type BarsConfig struct {
	PadHigh    float64 `yaml:"pad_high"`
	WidthRatio float64 `yaml:"width_ratio"`
}

// OverlayConfig tunes cross-series overlays on bar charts.
type OverlayConfig struct {
	BandLow  float64 `yaml:"band_low"`
	BandHigh float64 `yaml:"band_high"`
	PadLow   float64 `yaml:"pad_low"`
	PadHigh  float64 `yaml:"pad_high"`
}

// RadarConfig tunes radar layouts.
type RadarConfig struct {
	Rings       int     `yaml:"rings"`
	RadiusRatio float64 `yaml:"radius_ratio"`
	LabelOffset float64 `yaml:"label_offset"`
}

// SelectionConfig controls pointer selection.
type SelectionConfig struct {
	ClearDelay string `yaml:"clear_delay"`
}

// LoggingConfig controls the CLI logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	p := layout.DefaultParams()
	return &Config{
		Canvas: CanvasConfig{
			Width:  int(p.Width),
			Height: int(p.Height),
			Margin: p.Margin,
			Ticks:  p.TickCount,
		},
		Domain: DomainConfig{PadLow: p.PadLow, PadHigh: p.PadHigh},
		Bars:   BarsConfig{PadHigh: p.BarPadHigh, WidthRatio: p.BarWidthRatio},
		Overlay: OverlayConfig{
			BandLow:  p.Band.Low,
			BandHigh: p.Band.High,
			PadLow:   p.OverlayPadLow,
			PadHigh:  p.OverlayPadHigh,
		},
		Radar: RadarConfig{
			Rings:       p.RadarRings,
			RadiusRatio: p.RadarRadiusRatio,
			LabelOffset: p.RadarLabelOffset,
		},
		Selection: SelectionConfig{ClearDelay: geom.DefaultSelectionClearDelay.String()},
		Logging:   LoggingConfig{Level: "info"},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("CHARTGEOM_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CHARTGEOM_WIDTH: %w", err)
		}
		c.Canvas.Width = n
	}
	if v := os.Getenv("CHARTGEOM_HEIGHT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CHARTGEOM_HEIGHT: %w", err)
		}
		c.Canvas.Height = n
	}
	if v := os.Getenv("CHARTGEOM_MARGIN"); v != "" {
		m, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("CHARTGEOM_MARGIN: %w", err)
		}
		c.Canvas.Margin = m
	}
	// CHARTGEOM_BAND is "low,high", e.g. "0.15,0.85".
	if v := os.Getenv("CHARTGEOM_BAND"); v != "" {
		lo, hi, ok := strings.Cut(v, ",")
		if !ok {
			return fmt.Errorf("CHARTGEOM_BAND: expected low,high")
		}
		l, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
		if err != nil {
			return fmt.Errorf("CHARTGEOM_BAND: %w", err)
		}
		h, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
		if err != nil {
			return fmt.Errorf("CHARTGEOM_BAND: %w", err)
		}
		c.Overlay.BandLow, c.Overlay.BandHigh = l, h
	}
	if v := os.Getenv("CHARTGEOM_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate checks the settings that would otherwise produce unusable layouts.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Margin < 0 || c.Canvas.Margin >= 0.5 {
		return fmt.Errorf("canvas margin must be in [0, 0.5), got %v", c.Canvas.Margin)
	}
	if c.Overlay.BandLow < 0 || c.Overlay.BandHigh > 1 || c.Overlay.BandLow >= c.Overlay.BandHigh {
		return fmt.Errorf("overlay band must satisfy 0 <= low < high <= 1, got %v-%v", c.Overlay.BandLow, c.Overlay.BandHigh)
	}
	if _, err := c.ClearDelay(); err != nil {
		return err
	}
	return nil
}

// ClearDelay returns the selection clear delay.
func (c *Config) ClearDelay() (time.Duration, error) {
	if c.Selection.ClearDelay == "" {
		return geom.DefaultSelectionClearDelay, nil
	}
	d, err := time.ParseDuration(c.Selection.ClearDelay)
	if err != nil {
		return 0, fmt.Errorf("invalid selection clear_delay: %w", err)
	}
	return d, nil
}

// Params converts the configuration to layout parameters.
func (c *Config) Params() layout.Params {
	return layout.Params{
		Width:            float64(c.Canvas.Width),
		Height:           float64(c.Canvas.Height),
		Margin:           c.Canvas.Margin,
		PadLow:           c.Domain.PadLow,
		PadHigh:          c.Domain.PadHigh,
		BarPadHigh:       c.Bars.PadHigh,
		BarWidthRatio:    c.Bars.WidthRatio,
		Band:             geom.Band{Low: c.Overlay.BandLow, High: c.Overlay.BandHigh},
		OverlayPadLow:    c.Overlay.PadLow,
		OverlayPadHigh:   c.Overlay.PadHigh,
		TickCount:        c.Canvas.Ticks,
		RadarRings:       c.Radar.Rings,
		RadarRadiusRatio: c.Radar.RadiusRatio,
		RadarLabelOffset: c.Radar.LabelOffset,
	}
}
