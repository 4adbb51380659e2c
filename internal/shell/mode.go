// Package shell decides between the desktop and the paged presentation and
// owns the paged springboard state.
package shell

import "github.com/dodorz/platinum/internal/geometry"

// Mode is the active presentation.
type Mode int

const (
	// ModeDesktop shows floating windows, the menu bar and the dock.
	ModeDesktop Mode = iota
	// ModePaged shows a springboard of app icons and full-screen app views.
	ModePaged
)

func (m Mode) String() string {
	if m == ModePaged {
		return "paged"
	}
	return "desktop"
}

// DefaultBreakpoint is the widest viewport, in pixels, still shown paged.
const DefaultBreakpoint = 640

// ModeFor returns the mode for a viewport width.
func ModeFor(width, breakpoint int) Mode {
	if width <= breakpoint {
		return ModePaged
	}
	return ModeDesktop
}

// Controller tracks the viewport and switches modes when it crosses the
// breakpoint. Exactly one mode is active at a time.
type Controller struct {
	breakpoint int
	mode       Mode
	evaluated  bool
	viewport   geometry.Size

	pagedEntered bool
	onFirstPaged func()
	listeners    []func(Mode, geometry.Size)
}

// NewController creates a controller. onFirstPaged runs the first time
// the paged mode is entered and never again.
func NewController(breakpoint int, onFirstPaged func()) *Controller {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	return &Controller{breakpoint: breakpoint, onFirstPaged: onFirstPaged}
}

// OnChange registers a callback run after every viewport change with the
// resulting mode.
func (c *Controller) OnChange(fn func(Mode, geometry.Size)) {
	c.listeners = append(c.listeners, fn)
}

// Resize re-evaluates the mode for a new viewport. It returns true when
// the mode changed. Resizing within the same mode keeps the mode as is.
func (c *Controller) Resize(width, height int) bool {
	next := ModeFor(width, c.breakpoint)
	changed := !c.evaluated || next != c.mode
	c.mode = next
	c.evaluated = true
	c.viewport = geometry.Size{Width: width, Height: height}

	if next == ModePaged && !c.pagedEntered {
		c.pagedEntered = true
		if c.onFirstPaged != nil {
			c.onFirstPaged()
		}
	}
	for _, fn := range c.listeners {
		fn(next, c.viewport)
	}
	return changed
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Viewport returns the last viewport size.
func (c *Controller) Viewport() geometry.Size {
	return c.viewport
}

// Breakpoint returns the configured breakpoint.
func (c *Controller) Breakpoint() int {
	return c.breakpoint
}

// DesktopVisible reports whether the desktop presentation is shown.
func (c *Controller) DesktopVisible() bool {
	return c.mode == ModeDesktop
}

// PagedVisible reports whether the paged presentation is shown.
func (c *Controller) PagedVisible() bool {
	return c.mode == ModePaged
}
