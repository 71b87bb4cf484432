package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the default snake configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:        20,
			Height:       20,
			SpacingRatio: 0.15,
		},
		Snake: SnakeConfig{
			Color:     "green",
			Direction: "right",
			Start: []CellConfig{
				{X: 5, Y: 3},
				{X: 4, Y: 3},
				{X: 3, Y: 3},
				{X: 2, Y: 3},
			},
		},
		Food: FoodConfig{
			Color: "red",
		},
		Timing: TimingConfig{
			FrameIntervalMS: 150,
		},
	}
}

// DefaultYAML returns the embedded default YAML, ready to be copied
// into a user config file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
