// Package config provides the demo's tunable settings. Settings are loaded
// from a JSON file so a playfield can be reshaped without recompiling.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Config holds every knob the demo exposes
type Config struct {
	// Window and playfield dimensions
	Window WindowConfig `json:"window"`

	// Ray fan density
	Fan FanConfig `json:"fan"`

	// Random wall scattering
	Walls WallsConfig `json:"walls"`

	// Observer drift
	Drift DriftConfig `json:"drift"`

	// Initial draw toggles
	View ViewConfig `json:"view"`
}

// WindowConfig defines the window and the playfield it shows
type WindowConfig struct {
	Width  int    `json:"width"`  // playfield width in pixels
	Height int    `json:"height"` // playfield height in pixels
	Title  string `json:"title"`
}

// FanConfig defines the density of the ray fan
type FanConfig struct {
	StepDegrees float64 `json:"step_degrees"` // angular spacing between rays, in (0, 360]
}

// WallsConfig defines the random wall arrangement
type WallsConfig struct {
	Count int   `json:"count"` // walls scattered per arrangement
	Seed  int64 `json:"seed"`  // 0 seeds from the clock
}

// DriftConfig defines the observer's noise-driven path
type DriftConfig struct {
	Speed float64 `json:"speed"` // noise time advanced per step
	Seed  int64   `json:"seed"`  // 0 seeds from the clock
}

// ViewConfig defines what is drawn until the user toggles it
type ViewConfig struct {
	FillVisible bool `json:"fill_visible"` // shade the area the observer can see
	ShowHUD     bool `json:"show_hud"`
}

// DefaultConfig returns the stock demo settings
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 720,
			Title:  "Sightline",
		},
		Fan: FanConfig{
			StepDegrees: 1,
		},
		Walls: WallsConfig{
			Count: 5,
		},
		Drift: DriftConfig{
			Speed: 0.01,
		},
		View: ViewConfig{
			ShowHUD: true,
		},
	}
}

// LoadConfig loads settings from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// validate rejects settings the demo cannot run with.
func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window %dx%d is not positive", c.Window.Width, c.Window.Height)
	}
	if math.IsNaN(c.Fan.StepDegrees) || c.Fan.StepDegrees <= 0 || c.Fan.StepDegrees > 360 {
		return fmt.Errorf("fan step %v degrees outside (0, 360]", c.Fan.StepDegrees)
	}
	if c.Walls.Count < 0 {
		return fmt.Errorf("wall count %d is negative", c.Walls.Count)
	}
	if c.Drift.Speed <= 0 {
		return fmt.Errorf("drift speed %v is not positive", c.Drift.Speed)
	}
	return nil
}
