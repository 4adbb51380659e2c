// Package wm implements the window manager: the single owner of window
// visibility, size mode, shade, stacking and focus.
//
// Every operation is a no-op for unknown ids or when the window is already
// in the requested state. Transitions commit synchronously; listeners are
// told afterwards so visual effects never gate state.
package wm

import (
	"cmp"
	"slices"

	"github.com/dodorz/platinum/internal/geometry"
	"github.com/dodorz/platinum/internal/window"
)

// Stagger controls first-open placement. The n-th first-time open lands at
// (BaseX + n*Step mod RangeX, BaseY + n*Step mod RangeY).
type Stagger struct {
	BaseX  int
	BaseY  int
	Step   int
	RangeX int
	RangeY int
}

// ZoomFrame describes the geometry of a zoomed window relative to the surface.
type ZoomFrame struct {
	Left            int
	Top             int
	HorizontalInset int
	VerticalInset   int
	MinHeight       int
}

// Options configures a Manager.
type Options struct {
	Limits      geometry.Limits
	Stagger     Stagger
	Zoom        ZoomFrame
	ShadeHeight int
	TilePadding int
	TileTop     int
}

// DefaultOptions returns the Platinum desktop geometry.
func DefaultOptions() Options {
	return Options{
		Limits: geometry.DefaultLimits(),
		Stagger: Stagger{
			BaseX:  80,
			BaseY:  80,
			Step:   16,
			RangeX: 160,
			RangeY: 120,
		},
		Zoom: ZoomFrame{
			Left:            10,
			Top:             30,
			HorizontalInset: 20,
			VerticalInset:   40,
			MinHeight:       200,
		},
		ShadeHeight: 22,
		TilePadding: 8,
		TileTop:     30,
	}
}

// Manager owns the window state machine.
type Manager struct {
	reg     *window.Registry
	opts    Options
	surface geometry.Size

	zCounter   int64
	placements int
	focused    string

	listeners []Listener
}

// New creates a manager over reg. Windows get distinct initial z values in
// declaration order.
func New(reg *window.Registry, surface geometry.Size, opts Options) *Manager {
	m := &Manager{
		reg:     reg,
		opts:    opts,
		surface: surface,
	}
	for _, w := range reg.All() {
		m.zCounter++
		w.Z = m.zCounter
	}
	return m
}

// Registry returns the window registry the manager operates on.
func (m *Manager) Registry() *window.Registry {
	return m.reg
}

// Window looks a window up by id.
func (m *Manager) Window(id string) (*window.Window, bool) {
	return m.reg.Get(id)
}

// Options returns the geometry options in use.
func (m *Manager) Options() Options {
	return m.opts
}

// Surface returns the current desktop surface size.
func (m *Manager) Surface() geometry.Size {
	return m.surface
}

// SetSurface changes the desktop surface and re-clamps every window.
// Zoomed windows are refitted to the new surface.
func (m *Manager) SetSurface(s geometry.Size) {
	if s == m.surface {
		return
	}
	m.surface = s
	for _, w := range m.reg.All() {
		if w.IsZoomed() && !w.Shaded {
			w.Bounds = m.zoomFrame()
			continue
		}
		w.Bounds.X, w.Bounds.Y = m.clamp(w.Bounds.X, w.Bounds.Y, w.Bounds)
	}
}

// Open makes a window visible, raises and focuses it. The first open of a
// window places it on the stagger. Opening an Open window only raises it,
// but listeners still see EventOpened.
func (m *Manager) Open(id string) {
	w, ok := m.reg.Get(id)
	if !ok {
		return
	}
	if !w.Placed {
		m.place(w)
	}
	w.Visibility = window.Open
	m.raise(w)
	m.emit(EventOpened, id)
}

// Close hides a window and drops its dock indicator. Geometry is kept.
func (m *Manager) Close(id string) {
	w, ok := m.reg.Get(id)
	if !ok || w.Visibility == window.Closed {
		return
	}
	w.Visibility = window.Closed
	m.dropFocus(id)
	m.emit(EventClosed, id)
}

// Minimize hides an Open window while keeping its dock indicator.
func (m *Manager) Minimize(id string) {
	w, ok := m.reg.Get(id)
	if !ok || w.Visibility != window.Open {
		return
	}
	w.Visibility = window.Minimized
	m.dropFocus(id)
	m.emit(EventMinimized, id)
}

// Restore brings a Minimized window back, raised and focused.
func (m *Manager) Restore(id string) {
	w, ok := m.reg.Get(id)
	if !ok || w.Visibility != window.Minimized {
		return
	}
	w.Visibility = window.Open
	m.raise(w)
	m.emit(EventRestored, id)
}

// MinimizeAll minimizes every Open window.
func (m *Manager) MinimizeAll() {
	for _, w := range m.reg.Open() {
		m.Minimize(w.ID)
	}
}

// Focus raises an Open window above every other and makes it the only
// focused window.
func (m *Manager) Focus(id string) {
	w, ok := m.reg.Get(id)
	if !ok || !w.IsOpen() {
		return
	}
	if m.focused == id && w.Z == m.zCounter {
		return
	}
	m.raise(w)
	m.emit(EventFocused, id)
}

// Focused returns the id of the focused window, or "" when none is.
func (m *Manager) Focused() string {
	return m.focused
}

// FocusedWindow returns the focused window, or nil.
func (m *Manager) FocusedWindow() *window.Window {
	if m.focused == "" {
		return nil
	}
	w, _ := m.reg.Get(m.focused)
	return w
}

// ActiveTitle is the application name shown in the menu bar. It is empty
// when nothing is focused.
func (m *Manager) ActiveTitle() string {
	if w := m.FocusedWindow(); w != nil {
		return w.Title
	}
	return ""
}

// ToggleZoom switches a window between Normal and Zoomed. Leaving Zoomed
// restores the saved geometry; either direction clears any shade.
func (m *Manager) ToggleZoom(id string) {
	w, ok := m.reg.Get(id)
	if !ok {
		return
	}

	if w.IsZoomed() {
		w.Shaded = false
		w.ShadeSavedHeight = 0
		saved := w.ZoomSaved
		// Identity unless the surface shrank while zoomed.
		saved.X, saved.Y = m.clamp(saved.X, saved.Y, saved)
		w.Bounds = saved
		w.SizeMode = window.Normal
		m.emit(EventUnzoomed, id)
		return
	}

	if w.Shaded {
		w.Bounds.Height = w.ShadeSavedHeight
		w.Shaded = false
		w.ShadeSavedHeight = 0
	}
	w.ZoomSaved = w.Bounds
	w.Bounds = m.zoomFrame()
	w.SizeMode = window.Zoomed
	m.emit(EventZoomed, id)
}

// ToggleShade collapses a window to its title bar or expands it again.
func (m *Manager) ToggleShade(id string) {
	w, ok := m.reg.Get(id)
	if !ok {
		return
	}

	if w.Shaded {
		w.Bounds.Height = w.ShadeSavedHeight
		w.Shaded = false
		w.ShadeSavedHeight = 0
		w.Bounds.X, w.Bounds.Y = m.clamp(w.Bounds.X, w.Bounds.Y, w.Bounds)
		m.emit(EventUnshaded, id)
		return
	}

	w.ShadeSavedHeight = w.Bounds.Height
	w.Bounds.Height = m.opts.ShadeHeight
	w.Shaded = true
	m.emit(EventShaded, id)
}

// SetPosition moves a window, clamped to the surface.
func (m *Manager) SetPosition(id string, x, y int) {
	w, ok := m.reg.Get(id)
	if !ok {
		return
	}
	x, y = m.clamp(x, y, w.Bounds)
	if x == w.Bounds.X && y == w.Bounds.Y {
		return
	}
	w.Bounds.X, w.Bounds.Y = x, y
	m.emit(EventMoved, id)
}

// Resize sets a window's size, floored at the minimum size and capped at
// the surface edge. The top-left corner stays put unless the floor alone no
// longer fits. A shaded window only changes width.
func (m *Manager) Resize(id string, width, height int) {
	w, ok := m.reg.Get(id)
	if !ok {
		return
	}
	width, height = geometry.FitSize(w.Bounds.X, w.Bounds.Y, width, height, m.surface, m.opts.Limits)
	if !w.Shaded {
		w.Bounds.Height = height
	}
	w.Bounds.Width = width
	w.Bounds.X, w.Bounds.Y = m.clamp(w.Bounds.X, w.Bounds.Y, w.Bounds)
	m.emit(EventResized, id)
}

// Tile arranges every Open window in a near-square grid in declaration
// order, then focuses each in turn. Tiled windows become Normal and unshaded.
func (m *Manager) Tile() {
	open := m.reg.Open()
	if len(open) == 0 {
		return
	}

	area := geometry.Rect{
		X:      0,
		Y:      m.opts.TileTop,
		Width:  m.surface.Width,
		Height: m.surface.Height - m.opts.TileTop,
	}
	cells := geometry.TileCells(len(open), area, m.opts.TilePadding)

	for i, w := range open {
		cell := cells[i]
		w.SizeMode = window.Normal
		w.ZoomSaved = geometry.Rect{}
		w.Shaded = false
		w.ShadeSavedHeight = 0
		w.Bounds.Width, w.Bounds.Height = geometry.ClampSize(cell.Width, cell.Height, m.opts.Limits)
		w.Bounds.X, w.Bounds.Y = m.clamp(cell.X, cell.Y, w.Bounds)
	}
	for _, w := range open {
		m.raise(w)
	}
	m.emit(EventTiled, "")
}

// CycleFocus moves focus to the next (or previous) Open window in
// declaration order.
func (m *Manager) CycleFocus(forward bool) {
	open := m.reg.Open()
	if len(open) == 0 {
		return
	}

	pos := slices.IndexFunc(open, func(w *window.Window) bool { return w.ID == m.focused })
	var next int
	switch {
	case pos < 0 && forward:
		next = 0
	case pos < 0:
		next = len(open) - 1
	case forward:
		next = (pos + 1) % len(open)
	default:
		next = (pos - 1 + len(open)) % len(open)
	}
	m.Focus(open[next].ID)
}

// StackOrder returns the Open windows from bottom to top.
func (m *Manager) StackOrder() []*window.Window {
	open := m.reg.Open()
	slices.SortFunc(open, func(a, b *window.Window) int {
		return cmp.Compare(a.Z, b.Z)
	})
	return open
}

// TopmostAt returns the id of the highest Open window containing the point.
func (m *Manager) TopmostAt(x, y int) string {
	stack := m.StackOrder()
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Bounds.Contains(x, y) {
			return stack[i].ID
		}
	}
	return ""
}

func (m *Manager) raise(w *window.Window) {
	m.zCounter++
	w.Z = m.zCounter
	m.focused = w.ID
}

func (m *Manager) dropFocus(id string) {
	if m.focused == id {
		m.focused = ""
	}
}

func (m *Manager) place(w *window.Window) {
	s := m.opts.Stagger
	offset := m.placements * s.Step
	x, y := s.BaseX, s.BaseY
	if s.RangeX > 0 {
		x += offset % s.RangeX
	}
	if s.RangeY > 0 {
		y += offset % s.RangeY
	}
	m.placements++
	// A window zoomed before its first open keeps the zoom frame; the
	// stagger position goes to the geometry restored on unzoom.
	target := &w.Bounds
	if w.IsZoomed() {
		target = &w.ZoomSaved
	}
	target.X, target.Y = m.clamp(x, y, *target)
	w.Placed = true
}

func (m *Manager) zoomFrame() geometry.Rect {
	z := m.opts.Zoom
	r := geometry.Rect{
		Width:  max(m.opts.Limits.MinWidth, m.surface.Width-z.HorizontalInset),
		Height: max(z.MinHeight, m.surface.Height-z.VerticalInset),
	}
	r.X, r.Y = m.clamp(z.Left, z.Top, r)
	return r
}

func (m *Manager) clamp(x, y int, bounds geometry.Rect) (int, int) {
	return geometry.ClampPosition(x, y, bounds.Width, bounds.Height, m.surface, m.opts.Limits)
}
