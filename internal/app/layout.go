package app

import (
	"math"

	"github.com/charmbracelet/x/ansi"
	"github.com/dodorz/platinum/internal/config"
	"github.com/dodorz/platinum/internal/dock"
	"github.com/dodorz/platinum/internal/geometry"
	"github.com/dodorz/platinum/internal/window"
)

// Desktop rows, in cells. The menu bar is the first row and the dock the
// last DockRows rows; windows live in between.

func (m *OS) cellW() int {
	return max(1, m.Config.Desktop.CellWidth)
}

func (m *OS) cellH() int {
	return max(1, m.Config.Desktop.CellHeight)
}

// DesktopSurface returns the pixel area windows and icons are laid out in.
func (m *OS) DesktopSurface() geometry.Size {
	return geometry.Size{
		Width:  m.Width * m.cellW(),
		Height: max(0, m.Height-config.DockRows) * m.cellH(),
	}
}

// PointerPx converts a cell to the pixel at its center.
func (m *OS) PointerPx(col, row int) (int, int) {
	cw, ch := m.cellW(), m.cellH()
	return col*cw + cw/2, row*ch + ch/2
}

// cellRect converts a pixel rectangle to cells, never smaller than one cell.
func (m *OS) cellRect(r geometry.Rect) geometry.Rect {
	cw, ch := m.cellW(), m.cellH()
	return geometry.Rect{
		X:      r.X / cw,
		Y:      r.Y / ch,
		Width:  max(1, r.Width/cw),
		Height: max(1, r.Height/ch),
	}
}

// windowRect returns the cell rectangle a window is drawn in.
func (m *OS) windowRect(w *window.Window) geometry.Rect {
	return m.cellRect(w.Bounds)
}

// dockTop returns the first dock row.
func (m *OS) dockTop() int {
	return max(config.MenuBarRows, m.Height-config.DockRows)
}

// WindowPart identifies what a desktop cell hits inside a window.
type WindowPart int

const (
	PartNone WindowPart = iota
	PartTitle
	PartClose
	PartMinimize
	PartZoom
	PartResize
	PartContent
)

// Title bar layout: "[x]" one cell in from the left, "[_][+]" ending one
// cell in from the right.
const (
	buttonWidth     = 3
	minButtonsWidth = 13
)

// windowPartAt classifies a cell inside the window's cell rectangle.
func (m *OS) windowPartAt(w *window.Window, col, row int) WindowPart {
	r := m.windowRect(w)
	if w.Shaded {
		r.Height = 1
	}
	if !r.Contains(col, row) {
		return PartNone
	}

	dx := col - r.X
	if row == r.Y {
		if r.Width >= minButtonsWidth {
			switch {
			case dx >= 1 && dx < 1+buttonWidth:
				return PartClose
			case dx >= r.Width-1-2*buttonWidth && dx < r.Width-1-buttonWidth:
				return PartMinimize
			case dx >= r.Width-1-buttonWidth && dx < r.Width-1:
				return PartZoom
			}
		}
		return PartTitle
	}
	if row == r.Bottom()-1 && dx >= r.Width-2 {
		return PartResize
	}
	return PartContent
}

// WindowAt returns the topmost visible window under a cell, with the part
// that was hit.
func (m *OS) WindowAt(col, row int) (*window.Window, WindowPart) {
	order := m.WM.StackOrder()
	for i := len(order) - 1; i >= 0; i-- {
		w := order[i]
		if !w.IsOpen() {
			continue
		}
		if part := m.windowPartAt(w, col, row); part != PartNone {
			return w, part
		}
	}
	return nil, PartNone
}

// menuSpan is a menu title's column range on the menu bar.
type menuSpan struct {
	start, end int
}

func appleGlyph() string {
	if config.UseASCIIOnly {
		return "@"
	}
	return "◆"
}

func (m *OS) menuLabel(i int) string {
	label := m.Menus.Menus()[i].Label
	if label == "" && i == 0 {
		return appleGlyph()
	}
	return label
}

// menuSpans lays the menu titles out from the left, each padded by a space.
func (m *OS) menuSpans() []menuSpan {
	menus := m.Menus.Menus()
	spans := make([]menuSpan, len(menus))
	x := 1
	for i := range menus {
		w := ansi.StringWidth(m.menuLabel(i)) + 2
		spans[i] = menuSpan{start: x, end: x + w}
		x += w
	}
	return spans
}

// MenuTitleAt returns the menu whose title covers col on the menu bar.
func (m *OS) MenuTitleAt(col int) int {
	for i, s := range m.menuSpans() {
		if col >= s.start && col < s.end {
			return i
		}
	}
	return -1
}

// dropdownRect returns the cell rectangle of the open pull-down menu.
func (m *OS) dropdownRect() (geometry.Rect, bool) {
	open := m.Menus.Open()
	if open < 0 {
		return geometry.Rect{}, false
	}
	items := m.Menus.Menus()[open].Items
	labels, shortcuts := 0, 0
	for _, it := range items {
		labels = max(labels, ansi.StringWidth(it.Label))
		shortcuts = max(shortcuts, ansi.StringWidth(it.Shortcut))
	}
	width := max(config.DropdownMinWidth, labels+shortcuts+4)

	x := m.menuSpans()[open].start
	if x+width > m.Width {
		x = max(0, m.Width-width)
	}
	return geometry.Rect{X: x, Y: config.MenuBarRows, Width: width, Height: len(items)}, true
}

// DropdownItemAt returns the item index under a cell in the open menu.
func (m *OS) DropdownItemAt(col, row int) (int, bool) {
	r, ok := m.dropdownRect()
	if !ok || !r.Contains(col, row) {
		return -1, false
	}
	return row - r.Y, true
}

// dockSlot is one dock entry's position in cells.
type dockSlot struct {
	entry dock.Entry
	rect  geometry.Rect
	pad   int
}

const (
	dockGap         = 1
	dockRadiusCells = 14
	dockMaxScale    = 1.8
	dockMaxExtraPad = 2
	dockPadX        = 1
)

func dockLabel(e dock.Entry) string {
	if e.Icon == "" {
		return e.Label
	}
	return e.Icon + " " + e.Label
}

// dockSlots lays the dock out centered on the bottom rows. Entries near the
// pointer are widened when magnification is on; the scale is taken from
// the unmagnified centers so the layout does not chase the pointer.
func (m *OS) dockSlots() []dockSlot {
	entries := m.Dock.Entries()
	if len(entries) == 0 {
		return nil
	}

	widths := make([]int, len(entries))
	total := 0
	for i, e := range entries {
		widths[i] = ansi.StringWidth(dockLabel(e)) + 2*dockPadX
		total += widths[i]
	}
	total += dockGap * (len(entries) - 1)

	pads := make([]int, len(entries))
	if config.DockMagnification && m.HoverY >= m.dockTop() && m.HoverX >= 0 {
		x := (m.Width - total) / 2
		for i := range entries {
			center := float64(x) + float64(widths[i])/2
			scale := dock.Magnification(float64(m.HoverX), center, dockRadiusCells, dockMaxScale)
			pads[i] = int(math.Round((scale - 1) / (dockMaxScale - 1) * dockMaxExtraPad))
			x += widths[i] + dockGap
		}
	}
	for _, p := range pads {
		total += 2 * p
	}

	top := m.dockTop()
	x := max(0, (m.Width-total)/2)
	slots := make([]dockSlot, len(entries))
	for i, e := range entries {
		w := widths[i] + 2*pads[i]
		slots[i] = dockSlot{
			entry: e,
			rect:  geometry.Rect{X: x, Y: top, Width: w, Height: config.DockRows},
			pad:   pads[i],
		}
		x += w + dockGap
	}
	return slots
}

// DockEntryAt returns the dock entry under a cell, or "".
func (m *OS) DockEntryAt(col, row int) string {
	for _, s := range m.dockSlots() {
		if s.rect.Contains(col, row) {
			return s.entry.ID
		}
	}
	return ""
}

func (m *OS) dockEntryRect(id string) (geometry.Rect, bool) {
	for _, s := range m.dockSlots() {
		if s.entry.ID == id {
			return s.rect, true
		}
	}
	return geometry.Rect{}, false
}

// IconAt returns the desktop icon under a cell, or "".
func (m *OS) IconAt(col, row int) string {
	x, y := m.PointerPx(col, row)
	return m.Icons.At(x, y)
}

// IconSlotAt returns the layout slot whose cell area covers a cell, or -1.
// Icons dropped on a slot take it.
func (m *OS) IconSlotAt(col, row int) int {
	l := m.Icons.Layout()
	x, y := m.PointerPx(col, row)
	surface := m.DesktopSurface()
	rows := max(1, (surface.Height-l.TopInset)/(l.Height+l.Gap))
	right := surface.Width - l.RightInset
	if x >= right || y < l.TopInset {
		return -1
	}
	c := (right - x) / (l.Width + l.Gap)
	r := (y - l.TopInset) / (l.Height + l.Gap)
	if r >= rows {
		return -1
	}
	slot := c*rows + r
	if slot >= len(m.Icons.All()) {
		return len(m.Icons.All()) - 1
	}
	return slot
}

// Paged shell geometry.

const (
	springboardColumns = 4
	springboardTop     = 2
	springboardCellH   = 4
)

func (m *OS) springboardCellW() int {
	return max(1, m.Width/springboardColumns)
}

// springboardIconRect returns the cell rectangle of the n-th icon on page p
// including the live page offset.
func (m *OS) springboardIconRect(p, n int) geometry.Rect {
	cw := m.springboardCellW()
	shift := int(math.Round(m.pageShift() * float64(m.Width)))
	base := int(math.Round(m.Springboard.Transform(p) / 100 * float64(m.Width)))
	return geometry.Rect{
		X:      base + shift + (n%springboardColumns)*cw,
		Y:      springboardTop + (n/springboardColumns)*springboardCellH,
		Width:  cw,
		Height: springboardCellH,
	}
}

// pageShift is the extra offset of the page snap animation, as a fraction
// of the width.
func (m *OS) pageShift() float64 {
	a := m.Effects.For(pageSnapTarget)
	if a == nil {
		return 0
	}
	return m.snapFrom * (1 - a.Eased())
}

const pageSnapTarget = "springboard"

// SpringboardIconAt returns the app whose springboard icon covers a cell.
func (m *OS) SpringboardIconAt(col, row int) string {
	p := m.Springboard.Current()
	for n, id := range m.Springboard.Page(p) {
		if m.springboardIconRect(p, n).Contains(col, row) {
			return id
		}
	}
	return ""
}

// pageDotsStart returns the column of the first page dot.
func (m *OS) pageDotsStart() int {
	n := m.Springboard.PageCount()
	return max(0, (m.Width-(2*n-1))/2)
}

// PageDotAt returns the page whose dot is under a cell, or -1.
func (m *OS) PageDotAt(col, row int) int {
	if row != m.Height-config.PageDotsRows {
		return -1
	}
	d := col - m.pageDotsStart()
	if d < 0 || d%2 != 0 {
		return -1
	}
	if p := d / 2; p < m.Springboard.PageCount() {
		return p
	}
	return -1
}

// OnHomeBar reports whether a cell lies on the home bar of an app view.
func (m *OS) OnHomeBar(row int) bool {
	return m.Springboard.Foreground() != "" && row == m.Height-1
}
