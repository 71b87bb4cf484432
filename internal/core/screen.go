package core

import (
	"strings"
)

// pixelRune is the glyph used for filled board cells; the color carries
// the meaning (snake vs food).
const pixelRune = '█'

// ScreenCell is a single character cell with a foreground color.
type ScreenCell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D colored character buffer sized to the game board.
// It decouples drawing from the terminal: the game paints cells and text,
// the platform converts the buffer into styled output.
type Screen struct {
	width  int
	height int
	cells  [][]ScreenCell
}

// NewScreen creates a screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.cells = make([][]ScreenCell, height)
	for y := range s.cells {
		s.cells[y] = make([]ScreenCell, width)
	}
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = ScreenCell{Rune: ' ', Color: ColorDefault}
		}
	}
}

// Set places a rune at the given position in the default color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, r, ColorDefault)
}

// SetCell places a colored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, r rune, color Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = ScreenCell{Rune: r, Color: color}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns an uncolored space for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) ScreenCell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ScreenCell{Rune: ' ', Color: ColorDefault}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	for i, r := range text {
		s.Set(x+i, y, r)
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len(text)) / 2
	s.DrawText(x, y, text)
}

// DrawPixel fills one grid cell with the given color.
func (s *Screen) DrawPixel(c Cell, color Color) {
	s.SetCell(c.X, c.Y, pixelRune, color)
}

// DrawPixels fills every listed cell with the given color.
func (s *Screen) DrawPixels(cells []Cell, color Color) {
	for _, c := range cells {
		s.DrawPixel(c, color)
	}
}

// DrawBanner writes text centered on the middle row, leaving the rest of
// the buffer untouched.
func (s *Screen) DrawBanner(text string) {
	s.DrawTextCentered(s.height/2, text)
}

// String converts the screen buffer to a plain (unstyled) string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row.
// Out-of-bounds rows come back as uncolored spaces.
func (s *Screen) Row(y int) []ScreenCell {
	row := make([]ScreenCell, s.width)
	if y < 0 || y >= s.height {
		for x := range row {
			row[x] = ScreenCell{Rune: ' ', Color: ColorDefault}
		}
		return row
	}
	copy(row, s.cells[y])
	return row
}
