// Package dock models the application dock: one entry per registered window
// with an indicator derived from the window manager.
package dock

import (
	"math"

	"github.com/dodorz/platinum/internal/window"
)

// Manager is the part of the window manager the dock drives.
type Manager interface {
	Window(id string) (*window.Window, bool)
	Open(id string)
	Minimize(id string)
	Restore(id string)
}

// Entry is a rendered dock slot. Active is lit only while the window is
// Open; Minimized marks a window waiting to be restored.
type Entry struct {
	ID        string
	Label     string
	Icon      string
	Active    bool
	Minimized bool
}

// Item declares a dock slot.
type Item struct {
	ID    string
	Label string
	Icon  string
}

// Dock lists the registered applications. It holds no window state of its
// own; indicators are read from the manager on every call.
type Dock struct {
	wm    Manager
	items []Item
}

// New creates a dock for items, in the order given.
func New(wm Manager, items []Item) *Dock {
	return &Dock{wm: wm, items: items}
}

// Items returns the declared slots.
func (d *Dock) Items() []Item {
	return d.items
}

// Entries returns the dock slots with their current indicators.
func (d *Dock) Entries() []Entry {
	entries := make([]Entry, 0, len(d.items))
	for _, it := range d.items {
		e := Entry{ID: it.ID, Label: it.Label, Icon: it.Icon}
		if w, ok := d.wm.Window(it.ID); ok {
			e.Active = w.IsOpen()
			e.Minimized = w.IsMinimized()
		}
		entries = append(entries, e)
	}
	return entries
}

// Active reports whether the entry for id is lit.
func (d *Dock) Active(id string) bool {
	w, ok := d.wm.Window(id)
	return ok && w.IsOpen()
}

// Click toggles a window from the dock: an Open window is minimized, a
// Minimized one restored and a Closed one opened.
func (d *Dock) Click(id string) {
	w, ok := d.wm.Window(id)
	if !ok {
		return
	}
	switch w.Visibility {
	case window.Open:
		d.wm.Minimize(id)
	case window.Minimized:
		d.wm.Restore(id)
	default:
		d.wm.Open(id)
	}
}

// Magnification returns the scale factor for a dock icon centred at center
// when the pointer is at pointer. Icons within radius grow up to maxScale
// following a cosine falloff; others stay at 1.
func Magnification(pointer, center, radius, maxScale float64) float64 {
	if radius <= 0 || maxScale <= 1 {
		return 1
	}
	d := math.Abs(pointer - center)
	if d >= radius {
		return 1
	}
	falloff := (1 + math.Cos(math.Pi*d/radius)) / 2
	return 1 + (maxScale-1)*falloff
}
