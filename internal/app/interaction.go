package app

import (
	"github.com/dodorz/platinum/internal/config"
	"github.com/dodorz/platinum/internal/ui"
)

// BeginSwipe starts tracking a press on the springboard.
func (m *OS) BeginSwipe(col, row int) {
	x, _ := m.PointerPx(col, row)
	m.swipeStartCol = col
	m.swipeStartRow = row
	m.swiping = true
	m.Effects.Cancel(pageSnapTarget)
	m.Springboard.BeginDrag(x)
}

// Swiping reports whether a springboard press is being tracked.
func (m *OS) Swiping() bool {
	return m.swiping
}

// MoveSwipe follows the pointer during a springboard press.
func (m *OS) MoveSwipe(col, row int) {
	if !m.swiping {
		return
	}
	x, _ := m.PointerPx(col, row)
	m.Springboard.Drag(x)
}

// EndSwipe finishes a springboard press. A press released on the cell it
// started on is a tap and launches the icon under it; anything else is a
// swipe that may change page.
func (m *OS) EndSwipe(col, row int) {
	if !m.swiping {
		return
	}
	m.swiping = false

	x, _ := m.PointerPx(col, row)
	if col == m.swipeStartCol && row == m.swipeStartRow {
		m.Springboard.EndDrag(x)
		if id := m.SpringboardIconAt(col, row); id != "" {
			m.LaunchApp(id)
		}
		return
	}

	offset := m.Springboard.Offset()
	prev := m.Springboard.Current()
	m.Springboard.EndDrag(x)
	switch cur := m.Springboard.Current(); {
	case cur > prev:
		m.startPageSnap(1 + offset)
	case cur < prev:
		m.startPageSnap(offset - 1)
	default:
		m.startPageSnap(offset)
	}
}

// NextPage and PrevPage move the springboard by one page with a snap.
func (m *OS) NextPage() {
	prev := m.Springboard.Current()
	m.Springboard.Next()
	if m.Springboard.Current() != prev {
		m.startPageSnap(1)
	}
}

func (m *OS) PrevPage() {
	prev := m.Springboard.Current()
	m.Springboard.Prev()
	if m.Springboard.Current() != prev {
		m.startPageSnap(-1)
	}
}

// GoToPage jumps to page p, as a tap on its dot does.
func (m *OS) GoToPage(p int) {
	prev := m.Springboard.Current()
	m.Springboard.GoTo(p)
	if cur := m.Springboard.Current(); cur != prev {
		m.startPageSnap(float64(cur - prev))
	}
}

// startPageSnap animates the pages from a shift of from widths back to
// rest.
func (m *OS) startPageSnap(from float64) {
	if from == 0 {
		return
	}
	m.snapFrom = from
	m.Effects.Start(ui.EffectPageSnap, pageSnapTarget)
}

// LaunchApp opens an app and brings its view to the front of the paged
// shell.
func (m *OS) LaunchApp(id string) {
	m.Open(id)
	m.Springboard.Launch(id)
}

// GoHome returns the paged shell to the springboard.
func (m *OS) GoHome() {
	m.Springboard.Home()
}

// WantsMotion reports whether a pointer motion to row changes anything:
// a gesture is in progress, a menu is open, or the pointer is over the
// magnifying dock or just left it.
func (m *OS) WantsMotion(row int) bool {
	if m.Pointer.Active() || m.swiping || m.IconDrag != "" || m.Menus.IsOpen() {
		return true
	}
	if m.Shell.DesktopVisible() && config.DockMagnification {
		top := m.dockTop()
		return row >= top || m.HoverY >= top
	}
	return false
}
