package tui

import (
	"strings"
	"testing"

	"github.com/lge88/snake/internal/core"
)

func TestRenderScreenShape(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawPixel(core.C(0, 0), core.ColorGreen)
	s.DrawPixel(core.C(1, 0), core.ColorGreen)
	s.DrawPixel(core.C(4, 2), core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}
	if !strings.Contains(lines[0], "██") {
		t.Errorf("first line %q is missing the snake run", lines[0])
	}
	if !strings.Contains(lines[2], "█") {
		t.Errorf("last line %q is missing the food cell", lines[2])
	}
	if strings.Contains(lines[1], "█") {
		t.Errorf("middle line %q should be empty board", lines[1])
	}
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawBanner("Game Over!")

	out := RenderScreen(s)
	if !strings.Contains(out, "Game Over!") {
		t.Errorf("rendered output is missing the banner: %q", out)
	}
}
