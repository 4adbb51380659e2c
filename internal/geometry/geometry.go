// Package geometry provides the pixel-space rectangle math shared by the
// window manager, the pointer controller and the renderer.
package geometry

import "math"

// Rect is an axis-aligned rectangle in abstract pixels.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Size is a width/height pair in abstract pixels.
type Size struct {
	Width  int
	Height int
}

// Limits bounds where a window may sit and how small it may get.
type Limits struct {
	// EdgeMargin is kept free on the left, right and bottom edges.
	EdgeMargin int
	// TopInset keeps windows below the menu bar.
	TopInset int
	// MinWidth and MinHeight are the resize floors.
	MinWidth  int
	MinHeight int
}

// DefaultLimits returns the Platinum desktop limits.
func DefaultLimits() Limits {
	return Limits{
		EdgeMargin: 2,
		TopInset:   24,
		MinWidth:   300,
		MinHeight:  180,
	}
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// ClampPosition keeps a window of the given size inside the surface.
// x ends up in [EdgeMargin, surface.Width-width-EdgeMargin] and y in
// [TopInset, surface.Height-height-EdgeMargin]. When the window is larger
// than the available space the lower bound wins.
func ClampPosition(x, y, width, height int, surface Size, l Limits) (int, int) {
	minX := l.EdgeMargin
	maxX := surface.Width - width - l.EdgeMargin
	if maxX < minX {
		maxX = minX
	}
	minY := l.TopInset
	maxY := surface.Height - height - l.EdgeMargin
	if maxY < minY {
		maxY = minY
	}
	return clamp(x, minX, maxX), clamp(y, minY, maxY)
}

// ClampSize applies the resize floors.
func ClampSize(width, height int, l Limits) (int, int) {
	return max(width, l.MinWidth), max(height, l.MinHeight)
}

// FitSize caps a size so a window whose top-left corner is at (x, y) ends
// EdgeMargin short of the surface's right and bottom edges, then applies the
// floors. The floors win when the two conflict.
func FitSize(x, y, width, height int, surface Size, l Limits) (int, int) {
	width = min(width, surface.Width-x-l.EdgeMargin)
	height = min(height, surface.Height-y-l.EdgeMargin)
	return ClampSize(width, height, l)
}

// GridFor returns the near-square grid used to tile n windows:
// cols = ceil(sqrt(n)), rows = ceil(n/cols).
func GridFor(n int) (cols, rows int) {
	if n <= 0 {
		return 0, 0
	}
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = (n + cols - 1) / cols
	return cols, rows
}

// TileCells splits area into a padded grid and returns the first n cells
// in row-major order.
func TileCells(n int, area Rect, padding int) []Rect {
	cols, rows := GridFor(n)
	if cols == 0 {
		return nil
	}

	cellW := (area.Width - padding*(cols+1)) / cols
	cellH := (area.Height - padding*(rows+1)) / rows

	cells := make([]Rect, 0, n)
	for i := range n {
		r, c := i/cols, i%cols
		cells = append(cells, Rect{
			X:      area.X + padding + c*(cellW+padding),
			Y:      area.Y + padding + r*(cellH+padding),
			Width:  cellW,
			Height: cellH,
		})
	}
	return cells
}

// Lerp interpolates between two rectangles. t is clamped to [0, 1].
func Lerp(from, to Rect, t float64) Rect {
	t = math.Max(0, math.Min(1, t))
	mix := func(a, b int) int {
		return a + int(math.Round(float64(b-a)*t))
	}
	return Rect{
		X:      mix(from.X, to.X),
		Y:      mix(from.Y, to.Y),
		Width:  mix(from.Width, to.Width),
		Height: mix(from.Height, to.Height),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
