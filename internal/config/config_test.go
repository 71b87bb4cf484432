package config

import (
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lge88/snake/internal/core"
)

func TestDefaultMatchesEmbedded(t *testing.T) {
	var fromYAML Config
	if err := yaml.Unmarshal(defaultSnakeYAML, &fromYAML); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(fromYAML, Default()) {
		t.Errorf("embedded default = %+v, hardcoded default = %+v", fromYAML, Default())
	}
}

func TestConfigToOptions(t *testing.T) {
	opts, err := Default().ToOptions(7)
	if err != nil {
		t.Fatalf("ToOptions returned error: %v", err)
	}

	if opts.Width != 20 || opts.Height != 20 {
		t.Errorf("grid = %dx%d, expected 20x20", opts.Width, opts.Height)
	}
	if opts.SpacingRatio != 0.15 {
		t.Errorf("spacing ratio = %v, expected 0.15", opts.SpacingRatio)
	}
	if opts.Direction != core.DirRight {
		t.Errorf("direction = %v, expected right", opts.Direction)
	}
	if opts.SnakeColor != core.ColorGreen || opts.FoodColor != core.ColorRed {
		t.Errorf("colors = %v/%v, expected green/red", opts.SnakeColor, opts.FoodColor)
	}
	if opts.FrameInterval != 150*time.Millisecond {
		t.Errorf("frame interval = %v, expected 150ms", opts.FrameInterval)
	}
	if opts.Seed != 7 {
		t.Errorf("seed = %d, expected 7", opts.Seed)
	}
	want := []core.Cell{core.C(5, 3), core.C(4, 3), core.C(3, 3), core.C(2, 3)}
	if !reflect.DeepEqual(opts.Snake, want) {
		t.Errorf("snake = %v, expected %v", opts.Snake, want)
	}

	// The shipped defaults must be playable as-is.
	if err := opts.Validate(); err != nil {
		t.Errorf("default options fail validation: %v", err)
	}
}

func TestConfigToOptionsParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad direction", func(c *Config) { c.Snake.Direction = "sideways" }},
		{"bad snake color", func(c *Config) { c.Snake.Color = "plaid" }},
		{"bad food color", func(c *Config) { c.Food.Color = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if _, err := cfg.ToOptions(0); err == nil {
				t.Errorf("ToOptions accepted %s", tt.name)
			}
		})
	}
}
