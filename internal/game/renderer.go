// Package game implements the snake rules: the body and its movement,
// food placement, and the paced session state machine. It draws through
// the Renderer interface and never touches a terminal or an image directly.
package game

import "github.com/lge88/snake/internal/core"

// Renderer is the drawing surface the game needs. Implementations decide
// what a pixel is: a styled terminal cell, or a filled rectangle on an image.
type Renderer interface {
	// Clear blanks the whole surface.
	Clear()

	// DrawBanner renders a short centered status message.
	DrawBanner(text string)

	// DrawPixel fills one grid cell with a color.
	DrawPixel(c core.Cell, color core.Color)

	// DrawPixels fills every listed cell with a color.
	DrawPixels(cells []core.Cell, color core.Color)
}
