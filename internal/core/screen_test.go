package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(20, 10)

	if s.Width() != 20 {
		t.Errorf("Width() = %d, expected 20", s.Width())
	}
	if s.Height() != 10 {
		t.Errorf("Height() = %d, expected 10", s.Height())
	}

	// Check that it's initialized with uncolored spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("New screen should be uncolored spaces, got %q/%v at (%d, %d)", cell.Rune, cell.Color, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorGreen)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' {
		t.Errorf("GetCell(5, 5).Rune = %q, expected 'X'", cell.Rune)
	}
	if cell.Color != ColorGreen {
		t.Errorf("GetCell(5, 5).Color = %v, expected ColorGreen", cell.Color)
	}

	// Plain Set uses the default color
	s.Set(2, 2, 'Y')
	if got := s.GetCell(2, 2); got.Rune != 'Y' || got.Color != ColorDefault {
		t.Errorf("Set should place an uncolored rune, got %q/%v", got.Rune, got.Color)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetCell(0, -1, 'A', ColorRed)
	s.SetCell(0, 100, 'A', ColorRed)

	// Out of bounds get should return an uncolored space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if got := s.GetCell(100, 0); got.Rune != ' ' || got.Color != ColorDefault {
		t.Error("Out of bounds GetCell should return an uncolored space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected uncolored space at (%d, %d), got %q/%v", x, y, cell.Rune, cell.Color)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawPixel(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawPixel(C(3, 4), ColorGreen)

	cell := s.GetCell(3, 4)
	if cell.Rune != pixelRune {
		t.Errorf("DrawPixel should place %q, got %q", pixelRune, cell.Rune)
	}
	if cell.Color != ColorGreen {
		t.Errorf("DrawPixel color = %v, expected ColorGreen", cell.Color)
	}

	// Off-grid pixels are ignored, matching the rest of the screen API
	s.DrawPixel(C(-1, 0), ColorRed)
	s.DrawPixel(C(0, 100), ColorRed)
}

func TestScreenDrawPixels(t *testing.T) {
	s := NewScreen(10, 10)
	cells := []Cell{C(1, 1), C(2, 1), C(3, 1)}
	s.DrawPixels(cells, ColorRed)

	for _, c := range cells {
		got := s.GetCell(c.X, c.Y)
		if got.Rune != pixelRune || got.Color != ColorRed {
			t.Errorf("DrawPixels: expected red pixel at %v, got %q/%v", c, got.Rune, got.Color)
		}
	}
	if s.GetCell(4, 1).Rune != ' ' {
		t.Error("DrawPixels should not paint unlisted cells")
	}
}

func TestScreenDrawBanner(t *testing.T) {
	s := NewScreen(20, 9)
	s.DrawPixel(C(0, 0), ColorGreen)
	s.DrawBanner("Game Over!")

	// Banner is centered on the middle row
	row := strings.Split(s.String(), "\n")[9/2]
	if !strings.Contains(row, "Game Over!") {
		t.Errorf("Banner row = %q, expected it to contain %q", row, "Game Over!")
	}

	// The rest of the buffer is left untouched
	if got := s.GetCell(0, 0); got.Rune != pixelRune || got.Color != ColorGreen {
		t.Error("DrawBanner should not clear existing content")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")
	s.DrawPixel(C(6, 2), ColorRed)

	row := s.Row(2)
	if len(row) != 10 {
		t.Fatalf("Row length should be 10, got %d", len(row))
	}
	for i, want := range "Test" {
		if row[i].Rune != want {
			t.Errorf("Row(2)[%d].Rune = %q, expected %q", i, row[i].Rune, want)
		}
	}
	if row[6].Rune != pixelRune || row[6].Color != ColorRed {
		t.Errorf("Row(2)[6] = %q/%v, expected red pixel", row[6].Rune, row[6].Color)
	}

	// Mutating the copy must not touch the buffer
	row[0] = ScreenCell{Rune: 'X', Color: ColorBlue}
	if s.Get(0, 2) != 'T' {
		t.Error("Row should return a copy, not the backing slice")
	}

	// Out of bounds row comes back as spaces
	for x, cell := range s.Row(-1) {
		if cell.Rune != ' ' || cell.Color != ColorDefault {
			t.Errorf("Out of bounds row cell %d = %q/%v, expected uncolored space", x, cell.Rune, cell.Color)
		}
	}
}
