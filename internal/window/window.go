// Package window holds the window records and the fixed registry that owns them.
package window

import "github.com/dodorz/platinum/internal/geometry"

// Visibility is the lifecycle state of a window.
type Visibility int

const (
	// Closed windows are hidden.
	Closed Visibility = iota
	// Open windows are shown on the desktop and lit in the dock.
	Open
	// Minimized windows are hidden until restored from the dock.
	Minimized
)

func (v Visibility) String() string {
	switch v {
	case Open:
		return "open"
	case Minimized:
		return "minimized"
	default:
		return "closed"
	}
}

// SizeMode tells whether a window is at its own size or filling the desktop.
type SizeMode int

const (
	// Normal windows use their own bounds.
	Normal SizeMode = iota
	// Zoomed windows fill the desktop surface.
	Zoomed
)

// Definition declares a window at startup.
type Definition struct {
	ID     string
	Title  string
	Width  int
	Height int
}

// Window is one top-level window. Zoom and shade keep separate saved geometry
// so either can be undone independently.
type Window struct {
	ID    string
	Title string

	Bounds geometry.Rect
	Z      int64

	Visibility Visibility
	SizeMode   SizeMode
	Shaded     bool

	// ZoomSaved is the geometry to restore when leaving Zoomed.
	ZoomSaved geometry.Rect
	// ShadeSavedHeight is the height to restore when unshading.
	ShadeSavedHeight int

	// Placed is set once the window received its first-open position.
	Placed bool
}

// IsOpen reports whether the window is visible on the desktop.
func (w *Window) IsOpen() bool {
	return w.Visibility == Open
}

// IsMinimized reports whether the window is parked in the dock.
func (w *Window) IsMinimized() bool {
	return w.Visibility == Minimized
}

// IsZoomed reports whether the window fills the desktop.
func (w *Window) IsZoomed() bool {
	return w.SizeMode == Zoomed
}
