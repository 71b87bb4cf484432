package core

import (
	"testing"
)

func TestCellStep(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want Cell
	}{
		{"left", DirLeft, C(4, 3)},
		{"right", DirRight, C(6, 3)},
		{"up", DirUp, C(5, 2)},
		{"down", DirDown, C(5, 4)},
	}

	start := C(5, 3)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := start.Step(tt.dir)
			if got != tt.want {
				t.Errorf("Step(%v) = %v, expected %v", tt.dir, got, tt.want)
			}
		})
	}
}

func TestCellInBounds(t *testing.T) {
	tests := []struct {
		cell Cell
		want bool
	}{
		{C(0, 0), true},
		{C(9, 19), true},
		{C(-1, 0), false},
		{C(0, -1), false},
		{C(10, 0), false},
		{C(0, 20), false},
	}

	for _, tt := range tests {
		if got := tt.cell.InBounds(10, 20); got != tt.want {
			t.Errorf("%v.InBounds(10, 20) = %v, expected %v", tt.cell, got, tt.want)
		}
	}
}

func TestCellString(t *testing.T) {
	if got := C(3, 7).String(); got != "(3,7)" {
		t.Errorf("String() = %q, expected %q", got, "(3,7)")
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirLeft:  DirRight,
		DirRight: DirLeft,
		DirUp:    DirDown,
		DirDown:  DirUp,
	}

	for dir, want := range pairs {
		if got := dir.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, expected %v", dir, got, want)
		}
		// Reversing twice lands back on the original direction.
		if got := dir.Opposite().Opposite(); got != dir {
			t.Errorf("%v.Opposite().Opposite() = %v, expected %v", dir, got, dir)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
		{DirUp, 0, -1},
		{DirDown, 0, 1},
	}

	for _, tt := range tests {
		dx, dy := tt.dir.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Delta() = (%d, %d), expected (%d, %d)", tt.dir, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input   string
		want    Direction
		wantErr bool
	}{
		{"left", DirLeft, false},
		{"right", DirRight, false},
		{"up", DirUp, false},
		{"down", DirDown, false},
		{"UP", DirUp, false},
		{"  down  ", DirDown, false},
		{"north", DirRight, true},
		{"", DirRight, true},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDirection(%q) expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDirection(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, expected %v", tt.input, got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{"green", ColorGreen, false},
		{"red", ColorRed, false},
		{"Bright-Yellow", ColorBrightYellow, false},
		{"  gray ", ColorGray, false},
		{"chartreuse", ColorDefault, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseColor(%q) expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, expected %v", tt.input, got, tt.want)
		}
	}
}
