// Package desktop manages the icons laid out on the desktop surface.
package desktop

import (
	"slices"
	"time"

	"github.com/dodorz/platinum/internal/geometry"
)

// DefaultDoubleActivation is the gap within which a second click on the
// same icon opens it.
const DefaultDoubleActivation = 500 * time.Millisecond

// Icon is one desktop icon.
type Icon struct {
	AppID string
	Label string
	Glyph string

	// Slot is the icon's place in the column layout.
	Slot   int
	Bounds geometry.Rect
}

// Layout is the icon grid geometry.
type Layout struct {
	Width      int
	Height     int
	Gap        int
	RightInset int
	TopInset   int
}

// DefaultLayout returns the icon grid used on the desktop.
func DefaultLayout() Layout {
	return Layout{Width: 96, Height: 64, Gap: 8, RightInset: 16, TopInset: 40}
}

// Icons holds the desktop icons and the current selection.
type Icons struct {
	icons    []*Icon
	layout   Layout
	surface  geometry.Size
	selected string

	lastClickID string
	lastClickAt time.Time
	interval    time.Duration
	now         func() time.Time
}

// New creates icons in declaration order and lays them out for surface.
func New(icons []Icon, layout Layout, surface geometry.Size) *Icons {
	d := &Icons{
		layout:   layout,
		interval: DefaultDoubleActivation,
		now:      time.Now,
	}
	for i := range icons {
		ic := icons[i]
		ic.Slot = i
		d.icons = append(d.icons, &ic)
	}
	d.place(surface)
	return d
}

// SetClock replaces the time source used for double activation.
func (d *Icons) SetClock(now func() time.Time) {
	d.now = now
}

// All returns the icons in slot order.
func (d *Icons) All() []*Icon {
	out := slices.Clone(d.icons)
	slices.SortFunc(out, func(a, b *Icon) int { return a.Slot - b.Slot })
	return out
}

// Selected returns the id of the selected icon, or "".
func (d *Icons) Selected() string {
	return d.selected
}

// Select makes id the only selected icon. Unknown ids clear the selection.
func (d *Icons) Select(id string) {
	if d.find(id) == nil {
		d.selected = ""
		return
	}
	d.selected = id
}

// ClearSelection deselects every icon.
func (d *Icons) ClearSelection() {
	d.selected = ""
}

// Click selects id and returns true when it is the second click on the same
// icon within the double activation interval.
func (d *Icons) Click(id string) bool {
	if d.find(id) == nil {
		d.ClearSelection()
		return false
	}
	now := d.now()
	double := d.lastClickID == id && now.Sub(d.lastClickAt) <= d.interval
	d.Select(id)
	if double {
		d.lastClickID = ""
		d.lastClickAt = time.Time{}
		return true
	}
	d.lastClickID = id
	d.lastClickAt = now
	return false
}

// SelectNext moves the selection by delta slots, wrapping around.
func (d *Icons) SelectNext(delta int) {
	all := d.All()
	if len(all) == 0 {
		return
	}
	pos := slices.IndexFunc(all, func(ic *Icon) bool { return ic.AppID == d.selected })
	if pos < 0 {
		if delta >= 0 {
			d.selected = all[0].AppID
		} else {
			d.selected = all[len(all)-1].AppID
		}
		return
	}
	n := len(all)
	d.selected = all[((pos+delta)%n+n)%n].AppID
}

// Move puts id into slot and shifts the icons in between.
func (d *Icons) Move(id string, slot int) {
	all := d.All()
	from := slices.IndexFunc(all, func(ic *Icon) bool { return ic.AppID == id })
	if from < 0 {
		return
	}
	slot = max(0, min(slot, len(all)-1))
	ic := all[from]
	all = slices.Delete(all, from, from+1)
	all = slices.Insert(all, slot, ic)
	for i, it := range all {
		it.Slot = i
	}
	d.place(d.surface)
}

// Slot returns the slot of id, or -1.
func (d *Icons) Slot(id string) int {
	if ic := d.find(id); ic != nil {
		return ic.Slot
	}
	return -1
}

// Tidy restores declaration order and re-lays the icons for surface.
func (d *Icons) Tidy(surface geometry.Size) {
	for i, ic := range d.icons {
		ic.Slot = i
	}
	d.place(surface)
}

// Layout returns the icon grid geometry.
func (d *Icons) Layout() Layout {
	return d.layout
}

// SetSurface re-lays the icons for a new surface, keeping their slots.
func (d *Icons) SetSurface(surface geometry.Size) {
	d.place(surface)
}

// Surface returns the surface the icons were last laid out for.
func (d *Icons) Surface() geometry.Size {
	return d.surface
}

// At returns the icon under the point, or "".
func (d *Icons) At(x, y int) string {
	for _, ic := range d.icons {
		if ic.Bounds.Contains(x, y) {
			return ic.AppID
		}
	}
	return ""
}

// place lays the icons out in columns from the top-right corner.
func (d *Icons) place(surface geometry.Size) {
	d.surface = surface
	l := d.layout
	rows := max(1, (surface.Height-l.TopInset)/(l.Height+l.Gap))
	for _, ic := range d.icons {
		col, row := ic.Slot/rows, ic.Slot%rows
		ic.Bounds = geometry.Rect{
			X:      surface.Width - l.RightInset - (col+1)*l.Width - col*l.Gap,
			Y:      l.TopInset + row*(l.Height+l.Gap),
			Width:  l.Width,
			Height: l.Height,
		}
	}
}

func (d *Icons) find(id string) *Icon {
	for _, ic := range d.icons {
		if ic.AppID == id {
			return ic
		}
	}
	return nil
}
