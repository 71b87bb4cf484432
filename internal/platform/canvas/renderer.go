// Package canvas renders game frames onto an off-screen image for PNG
// export. It implements the same renderer contract as the terminal
// screen, so a session draws to either without knowing which.
package canvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/lge88/snake/internal/core"
)

var (
	backgroundColor = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	bannerTextColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// palette maps the terminal palette onto xterm RGB values so a PNG
// frame matches what the TUI shows.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff},
	core.ColorRed:           {R: 0xcd, G: 0x00, B: 0x00, A: 0xff},
	core.ColorGreen:         {R: 0x00, G: 0xcd, B: 0x00, A: 0xff},
	core.ColorYellow:        {R: 0xcd, G: 0xcd, B: 0x00, A: 0xff},
	core.ColorBlue:          {R: 0x00, G: 0x00, B: 0xee, A: 0xff},
	core.ColorMagenta:       {R: 0xcd, G: 0x00, B: 0xcd, A: 0xff},
	core.ColorCyan:          {R: 0x00, G: 0xcd, B: 0xcd, A: 0xff},
	core.ColorWhite:         {R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff},
	core.ColorBrightRed:     {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	core.ColorBrightGreen:   {R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	core.ColorBrightYellow:  {R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	core.ColorBrightBlue:    {R: 0x5c, G: 0x5c, B: 0xff, A: 0xff},
	core.ColorBrightMagenta: {R: 0xff, G: 0x00, B: 0xff, A: 0xff},
	core.ColorBrightCyan:    {R: 0x00, G: 0xff, B: 0xff, A: 0xff},
	core.ColorBrightWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorOrange:        {R: 0xff, G: 0x87, B: 0x00, A: 0xff},
	core.ColorGray:          {R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
}

// Renderer draws game cells onto a pixel canvas.
type Renderer struct {
	dc    *gg.Context
	cols  int
	rows  int
	cellW float64
	cellH float64
	fill  float64 // fraction of the cell a drawn square occupies
}

// New creates a width x height pixel canvas for a cols x rows grid.
// spacingRatio is the gap between neighboring squares as a fraction of
// the square size; 0 tiles the grid edge to edge.
func New(cols, rows, width, height int, spacingRatio float64) *Renderer {
	if spacingRatio < 0 {
		spacingRatio = 0
	}
	return &Renderer{
		dc:    gg.NewContext(width, height),
		cols:  cols,
		rows:  rows,
		cellW: float64(width) / float64(cols),
		cellH: float64(height) / float64(rows),
		fill:  1 / (1 + spacingRatio),
	}
}

// Clear paints the board background over the whole canvas.
func (r *Renderer) Clear() {
	r.dc.SetColor(backgroundColor)
	r.dc.Clear()
}

// DrawPixel fills one cell, shrunk by the spacing ratio and centered,
// with the palette color. Cells outside the grid are ignored.
func (r *Renderer) DrawPixel(c core.Cell, col core.Color) {
	if !c.InBounds(r.cols, r.rows) {
		return
	}
	w := r.cellW * r.fill
	h := r.cellH * r.fill
	x := float64(c.X)*r.cellW + (r.cellW-w)/2
	y := float64(c.Y)*r.cellH + (r.cellH-h)/2
	r.dc.SetColor(cellColor(col))
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.Fill()
}

// DrawPixels fills every listed cell with the same color.
func (r *Renderer) DrawPixels(cells []core.Cell, col core.Color) {
	for _, c := range cells {
		r.DrawPixel(c, col)
	}
}

// DrawBanner dims whatever is on the canvas and centers the message
// over it.
func (r *Renderer) DrawBanner(text string) {
	w := float64(r.dc.Width())
	h := float64(r.dc.Height())
	r.dc.SetRGBA(0, 0, 0, 0.6)
	r.dc.DrawRectangle(0, 0, w, h)
	r.dc.Fill()
	r.dc.SetColor(bannerTextColor)
	r.dc.DrawStringAnchored(text, w/2, h/2, 0.5, 0.5)
}

// Image returns the rendered frame.
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the rendered frame to path.
func (r *Renderer) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("canvas: save %s: %w", path, err)
	}
	return nil
}

func cellColor(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}
