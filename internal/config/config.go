// Package config provides YAML-based configuration loading and hot
// reloading for the snake game.
package config

import (
	"fmt"
	"time"

	"github.com/lge88/snake/internal/core"
	"github.com/lge88/snake/internal/game"
)

// Config contains all configuration for a snake session.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Snake  SnakeConfig  `yaml:"snake"`
	Food   FoodConfig   `yaml:"food"`
	Timing TimingConfig `yaml:"timing"`
}

// GridConfig defines the board dimensions and cell spacing.
type GridConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	SpacingRatio float64 `yaml:"spacing_ratio"` // gap between cells as a fraction of cell size
}

// SnakeConfig defines the starting snake.
type SnakeConfig struct {
	Color     string       `yaml:"color"`
	Direction string       `yaml:"direction"`
	Start     []CellConfig `yaml:"start"` // head first
}

// CellConfig is a grid coordinate in YAML form.
type CellConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// FoodConfig defines the food appearance.
type FoodConfig struct {
	Color string `yaml:"color"`
}

// TimingConfig defines the game pace.
type TimingConfig struct {
	FrameIntervalMS int `yaml:"frame_interval_ms"`
}

// ToOptions converts the configuration into game options. The seed
// drives food placement; pass 0 to randomize.
func (c Config) ToOptions(seed int64) (game.Options, error) {
	dir, err := core.ParseDirection(c.Snake.Direction)
	if err != nil {
		return game.Options{}, fmt.Errorf("config: snake direction: %w", err)
	}
	snakeColor, err := core.ParseColor(c.Snake.Color)
	if err != nil {
		return game.Options{}, fmt.Errorf("config: snake color: %w", err)
	}
	foodColor, err := core.ParseColor(c.Food.Color)
	if err != nil {
		return game.Options{}, fmt.Errorf("config: food color: %w", err)
	}

	cells := make([]core.Cell, len(c.Snake.Start))
	for i, cc := range c.Snake.Start {
		cells[i] = core.C(cc.X, cc.Y)
	}

	return game.Options{
		Width:         c.Grid.Width,
		Height:        c.Grid.Height,
		SpacingRatio:  c.Grid.SpacingRatio,
		Snake:         cells,
		Direction:     dir,
		SnakeColor:    snakeColor,
		FoodColor:     foodColor,
		FrameInterval: time.Duration(c.Timing.FrameIntervalMS) * time.Millisecond,
		Seed:          seed,
	}, nil
}
