// Package pointer turns raw pointer events into window moves, resizes and
// title-bar shading.
//
// Each window keeps its own drag and resize state. Move and up events are
// delivered at the root so a gesture continues when the pointer leaves the
// window it started on.
package pointer

import (
	"time"

	"github.com/dodorz/platinum/internal/window"
)

// DefaultDoubleClick is the longest gap between two title-bar presses that
// still counts as a double activation.
const DefaultDoubleClick = 500 * time.Millisecond

// Region is the part of a window a press landed on.
type Region int

const (
	RegionNone Region = iota
	RegionTitle
	RegionResize
	RegionContent
)

// Button identifies the pressed pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Manager is the part of the window manager the controller drives.
type Manager interface {
	Window(id string) (*window.Window, bool)
	Focus(id string)
	SetPosition(id string, x, y int)
	Resize(id string, width, height int)
	ToggleShade(id string)
}

type dragState struct {
	active         bool
	startX, startY int
	winX, winY     int
}

type resizeState struct {
	active         bool
	startX, startY int
	startW, startH int
}

type interaction struct {
	drag        dragState
	resize      resizeState
	lastTitleAt time.Time
}

// Controller tracks drag and resize gestures for every window.
type Controller struct {
	wm     Manager
	states map[string]*interaction

	selectionSuppressed bool
	doubleClick         time.Duration
	now                 func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the time source used for double activation.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithDoubleClick sets the double activation interval.
func WithDoubleClick(d time.Duration) Option {
	return func(c *Controller) { c.doubleClick = d }
}

// NewController creates a controller driving wm.
func NewController(wm Manager, opts ...Option) *Controller {
	c := &Controller{
		wm:          wm,
		states:      make(map[string]*interaction),
		doubleClick: DefaultDoubleClick,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) state(id string) *interaction {
	s, ok := c.states[id]
	if !ok {
		s = &interaction{}
		c.states[id] = s
	}
	return s
}

// PointerDown handles a press on a window. It returns true when the press
// started a gesture or toggled shade.
func (c *Controller) PointerDown(id string, region Region, x, y int, button Button) bool {
	w, ok := c.wm.Window(id)
	if !ok || !w.IsOpen() {
		return false
	}

	c.wm.Focus(id)
	if button != ButtonPrimary {
		return false
	}

	s := c.state(id)
	switch region {
	case RegionTitle:
		now := c.now()
		if !s.lastTitleAt.IsZero() && now.Sub(s.lastTitleAt) <= c.doubleClick {
			s.lastTitleAt = time.Time{}
			c.wm.ToggleShade(id)
			return true
		}
		s.lastTitleAt = now
		s.drag = dragState{
			active: true,
			startX: x,
			startY: y,
			winX:   w.Bounds.X,
			winY:   w.Bounds.Y,
		}
		c.selectionSuppressed = true
		return true

	case RegionResize:
		s.resize = resizeState{
			active: true,
			startX: x,
			startY: y,
			startW: w.Bounds.Width,
			startH: w.Bounds.Height,
		}
		c.selectionSuppressed = true
		return true
	}
	return false
}

// PointerMove advances every active gesture to the new pointer position.
// Each frame is clamped by the window manager.
func (c *Controller) PointerMove(x, y int) bool {
	moved := false
	for id, s := range c.states {
		if s.drag.active {
			dx, dy := x-s.drag.startX, y-s.drag.startY
			c.wm.SetPosition(id, s.drag.winX+dx, s.drag.winY+dy)
			moved = true
		}
		if s.resize.active {
			dx, dy := x-s.resize.startX, y-s.resize.startY
			c.wm.Resize(id, s.resize.startW+dx, s.resize.startH+dy)
			moved = true
		}
	}
	return moved
}

// PointerUp ends every active gesture and restores text selection.
// It is safe to call when nothing is in progress.
func (c *Controller) PointerUp() {
	for _, s := range c.states {
		s.drag.active = false
		s.resize.active = false
	}
	c.selectionSuppressed = false
}

// Cancel drops any gesture on id, for windows that were hidden mid-drag.
func (c *Controller) Cancel(id string) {
	if s, ok := c.states[id]; ok {
		s.drag.active = false
		s.resize.active = false
	}
	if !c.Active() {
		c.selectionSuppressed = false
	}
}

// Active reports whether any drag or resize is in progress.
func (c *Controller) Active() bool {
	for _, s := range c.states {
		if s.drag.active || s.resize.active {
			return true
		}
	}
	return false
}

// Dragging reports whether id is being dragged.
func (c *Controller) Dragging(id string) bool {
	s, ok := c.states[id]
	return ok && s.drag.active
}

// Resizing reports whether id is being resized.
func (c *Controller) Resizing(id string) bool {
	s, ok := c.states[id]
	return ok && s.resize.active
}

// SelectionSuppressed reports whether text selection is disabled for an
// ongoing gesture.
func (c *Controller) SelectionSuppressed() bool {
	return c.selectionSuppressed
}
