package game

import (
	"github.com/lge88/snake/internal/core"
)

// Snake is the player-controlled body: an ordered list of occupied cells,
// head first, plus the direction it is currently facing and a display color.
// The body is never empty and never contains duplicate cells.
type Snake struct {
	cells []core.Cell
	dir   core.Direction
	color core.Color
}

// NewSnake builds a snake from an initial body (head first) and direction.
// The body slice is copied; callers keep ownership of theirs.
func NewSnake(cells []core.Cell, dir core.Direction, color core.Color) *Snake {
	body := make([]core.Cell, len(cells))
	copy(body, cells)
	return &Snake{cells: body, dir: dir, color: color}
}

// Head returns the leading cell.
func (s *Snake) Head() core.Cell {
	return s.cells[0]
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.cells)
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []core.Cell {
	out := make([]core.Cell, len(s.cells))
	copy(out, s.cells)
	return out
}

// Direction returns the direction the snake is facing.
func (s *Snake) Direction() core.Direction {
	return s.dir
}

// SetDirection points the snake in a new direction. Turning into the exact
// opposite of the current direction reverses the body in place first, so
// the former tail leads the march back the way it came: an immediate
// reversal is a legal move equivalent to walking backward, not a
// self-collision. Same-direction and 90-degree turns leave the body as-is.
func (s *Snake) SetDirection(d core.Direction) {
	if d == s.dir.Opposite() {
		s.reverse()
	}
	s.dir = d
}

// reverse flips the body ordering so the tail becomes the head.
func (s *Snake) reverse() {
	for i, j := 0, len(s.cells)-1; i < j; i, j = i+1, j-1 {
		s.cells[i], s.cells[j] = s.cells[j], s.cells[i]
	}
}

// NextHead returns the cell the head would enter on the next move.
// Pure, no mutation.
func (s *Snake) NextHead() core.Cell {
	return s.Head().Step(s.dir)
}

// WouldHitSelf reports whether entering c would collide with the body.
// The current head cell is excluded: the head vacates it on the same move.
func (s *Snake) WouldHitSelf(c core.Cell) bool {
	for _, seg := range s.cells[1:] {
		if seg == c {
			return true
		}
	}
	return false
}

// Move advances the snake one cell: newHead is prepended and the tail
// dropped, so the whole body shifts and length is preserved.
func (s *Snake) Move(newHead core.Cell) {
	s.cells = append([]core.Cell{newHead}, s.cells[:len(s.cells)-1]...)
}

// Eat advances the snake onto a food cell: newHead is prepended and the
// tail kept, growing the body by one.
func (s *Snake) Eat(newHead core.Cell) {
	s.cells = append([]core.Cell{newHead}, s.cells...)
}

// Draw paints the body onto the renderer in the snake's color.
func (s *Snake) Draw(r Renderer) {
	r.DrawPixels(s.cells, s.color)
}
