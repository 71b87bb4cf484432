// Package core provides the grid primitives and screen buffer shared by the
// game and its renderers. It contains no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

import (
	"fmt"
	"strings"
)

// Cell identifies one grid square by column (X) and row (Y), 0-indexed
// from the top-left corner. Immutable value type.
type Cell struct {
	X, Y int
}

// C is a shorthand constructor for a Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// Step returns the cell adjacent to c in the given direction.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// InBounds reports whether c lies inside a width x height grid.
func (c Cell) InBounds(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// String returns the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four cardinal movement directions.
// There is no neutral value: the snake is always heading somewhere.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// opposites pairs each direction with its reverse, so the reversal rule
// is a single table lookup.
var opposites = map[Direction]Direction{
	DirLeft:  DirRight,
	DirRight: DirLeft,
	DirUp:    DirDown,
	DirDown:  DirUp,
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Delta returns the column and row offsets of one step in d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection converts a config string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	default:
		return DirRight, fmt.Errorf("unknown direction %q", s)
	}
}
