package game

import (
	"errors"

	"github.com/lge88/snake/internal/core"
)

// ErrGridFull is returned when no free cell is left to place food on.
// Callers treat it as a terminal condition: the snake has filled the board.
var ErrGridFull = errors.New("no free cell left for food")

// Food is a single edible cell on the grid.
type Food struct {
	Cell  core.Cell
	Color core.Color
}

// Draw paints the food cell onto the renderer.
func (f *Food) Draw(r Renderer) {
	r.DrawPixel(f.Cell, f.Color)
}

// IntSource is the randomness food placement needs: a uniform integer
// in [0, n). *math/rand.Rand satisfies it; tests substitute their own.
type IntSource interface {
	Intn(n int) int
}

// Placer picks food cells uniformly among the free cells of the grid.
type Placer struct {
	rng IntSource
}

// NewPlacer creates a placer drawing from the given source.
func NewPlacer(rng IntSource) *Placer {
	return &Placer{rng: rng}
}

// Generate returns a uniformly random cell of the width x height grid that
// is not present in occupied. Returns ErrGridFull when every cell is taken.
func (p *Placer) Generate(width, height int, occupied []core.Cell) (core.Cell, error) {
	taken := make(map[core.Cell]bool, len(occupied))
	for _, c := range occupied {
		taken[c] = true
	}

	// Collect all free cells, row by row
	free := make([]core.Cell, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := core.Cell{X: x, Y: y}
			if !taken[c] {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return core.Cell{}, ErrGridFull
	}
	return free[p.rng.Intn(len(free))], nil
}
