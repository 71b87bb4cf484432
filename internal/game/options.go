package game

import (
	"fmt"
	"time"

	"github.com/lge88/snake/internal/core"
)

// Options is the full configuration surface for one game session.
type Options struct {
	// Grid dimensions, in cells. Fixed for the session.
	Width  int
	Height int

	// SpacingRatio is the gutter-to-fill ratio renderers use when sizing
	// cell fills (0 means cells touch).
	SpacingRatio float64

	// Snake is the initial body, head first. Direction is where it faces.
	Snake     []core.Cell
	Direction core.Direction

	SnakeColor core.Color
	FoodColor  core.Color

	// FrameInterval is the simulation period: one update per interval.
	FrameInterval time.Duration

	// Seed feeds food placement. Zero picks a time-based seed.
	Seed int64
}

// Validate rejects option sets no session could run with. It runs before
// the first frame is scheduled, so bad config never reaches the game loop.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", o.Width, o.Height)
	}
	if o.SpacingRatio < 0 {
		return fmt.Errorf("spacing ratio must not be negative, got %v", o.SpacingRatio)
	}
	if len(o.Snake) == 0 {
		return fmt.Errorf("initial snake must have at least one cell")
	}
	seen := make(map[core.Cell]bool, len(o.Snake))
	for _, c := range o.Snake {
		if !c.InBounds(o.Width, o.Height) {
			return fmt.Errorf("snake cell %v is outside the %dx%d grid", c, o.Width, o.Height)
		}
		if seen[c] {
			return fmt.Errorf("initial snake overlaps itself at %v", c)
		}
		seen[c] = true
	}
	if o.FrameInterval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %v", o.FrameInterval)
	}
	return nil
}
