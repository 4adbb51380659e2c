package geometry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClampPosition(t *testing.T) {
	surface := Size{Width: 1024, Height: 768}
	l := DefaultLimits()

	tests := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{"inside", 100, 100, 100, 100},
		{"left of margin", -50, 100, 2, 100},
		{"under menu bar", 100, 0, 100, 24},
		{"past right edge", 2000, 100, 1024 - 400 - 2, 100},
		{"past bottom edge", 100, 2000, 100, 768 - 300 - 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := ClampPosition(tt.x, tt.y, 400, 300, surface, l)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("ClampPosition(%d, %d) = (%d, %d), want (%d, %d)", tt.x, tt.y, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestClampPositionOversizedWindow(t *testing.T) {
	x, y := ClampPosition(500, 500, 2000, 2000, Size{Width: 640, Height: 480}, DefaultLimits())
	if x != 2 || y != 24 {
		t.Errorf("oversized window should pin to the top-left bounds, got (%d, %d)", x, y)
	}
}

func TestClampSize(t *testing.T) {
	w, h := ClampSize(100, 50, DefaultLimits())
	if w != 300 || h != 180 {
		t.Errorf("ClampSize(100, 50) = (%d, %d), want (300, 180)", w, h)
	}
	w, h = ClampSize(640, 480, DefaultLimits())
	if w != 640 || h != 480 {
		t.Errorf("ClampSize should keep sizes above the floor, got (%d, %d)", w, h)
	}
}

func TestFitSize(t *testing.T) {
	surface := Size{Width: 1024, Height: 768}
	l := DefaultLimits()

	tests := []struct {
		name         string
		x, y, w, h   int
		wantW, wantH int
	}{
		{"fits", 100, 100, 400, 300, 400, 300},
		{"past right edge", 600, 100, 700, 300, 422, 300},
		{"past bottom edge", 100, 500, 400, 400, 400, 266},
		{"floor wins", 900, 700, 700, 700, 300, 180},
		{"below floor", 100, 100, 10, 10, 300, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitSize(tt.x, tt.y, tt.w, tt.h, surface, l)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("FitSize(%d, %d, %d, %d) = (%d, %d), want (%d, %d)", tt.x, tt.y, tt.w, tt.h, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestGridFor(t *testing.T) {
	tests := []struct {
		n, cols, rows int
	}{
		{0, 0, 0},
		{1, 1, 1},
		{2, 2, 1},
		{3, 2, 2},
		{4, 2, 2},
		{5, 3, 2},
		{9, 3, 3},
		{10, 4, 3},
	}
	for _, tt := range tests {
		cols, rows := GridFor(tt.n)
		if cols != tt.cols || rows != tt.rows {
			t.Errorf("GridFor(%d) = (%d, %d), want (%d, %d)", tt.n, cols, rows, tt.cols, tt.rows)
		}
	}
}

func TestTileCells(t *testing.T) {
	area := Rect{X: 0, Y: 30, Width: 1000, Height: 700}
	got := TileCells(4, area, 8)

	cellW := (1000 - 8*3) / 2
	cellH := (700 - 8*3) / 2
	want := []Rect{
		{X: 8, Y: 38, Width: cellW, Height: cellH},
		{X: 8 + cellW + 8, Y: 38, Width: cellW, Height: cellH},
		{X: 8, Y: 38 + cellH + 8, Width: cellW, Height: cellH},
		{X: 8 + cellW + 8, Y: 38 + cellH + 8, Width: cellW, Height: cellH},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TileCells mismatch (-want +got):\n%s", diff)
	}

	if cells := TileCells(0, area, 8); cells != nil {
		t.Errorf("TileCells(0) = %v, want nil", cells)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 5, Height: 5}
	if !r.Contains(10, 10) || !r.Contains(14, 14) {
		t.Error("expected corners inside the rectangle")
	}
	if r.Contains(15, 10) || r.Contains(10, 15) {
		t.Error("right and bottom edges are exclusive")
	}
}

func TestLerp(t *testing.T) {
	from := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	to := Rect{X: 100, Y: 200, Width: 0, Height: 0}

	if got := Lerp(from, to, 0); got != from {
		t.Errorf("Lerp(0) = %+v, want %+v", got, from)
	}
	if got := Lerp(from, to, 1); got != to {
		t.Errorf("Lerp(1) = %+v, want %+v", got, to)
	}
	if got := Lerp(from, to, 0.5); got != (Rect{X: 50, Y: 100, Width: 50, Height: 50}) {
		t.Errorf("Lerp(0.5) = %+v", got)
	}
	if got := Lerp(from, to, 7); got != to {
		t.Errorf("Lerp should clamp t, got %+v", got)
	}
}
