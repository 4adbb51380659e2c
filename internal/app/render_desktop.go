package app

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/dodorz/platinum/internal/config"
	"github.com/dodorz/platinum/internal/geometry"
	"github.com/dodorz/platinum/internal/theme"
	"github.com/dodorz/platinum/internal/ui"
	"github.com/dodorz/platinum/internal/window"
)

const (
	gridStepX = 4
	gridStepY = 2
)

func (m *OS) desktopLayers() []*lipgloss.Layer {
	layers := []*lipgloss.Layer{m.renderDesktopBackground()}
	layers = append(layers, m.renderIcons()...)
	layers = append(layers, m.renderWindows()...)
	layers = append(layers, m.renderGhosts()...)
	layers = append(layers, m.renderDock(), m.renderMenuBar())
	if dd := m.renderDropdown(); dd != nil {
		layers = append(layers, dd)
	}
	return layers
}

func (m *OS) renderDesktopBackground() *lipgloss.Layer {
	style := lipgloss.NewStyle().Background(theme.DesktopBg()).Foreground(theme.DesktopGrid())
	blank := style.Render(strings.Repeat(" ", m.Width))

	var gridLine string
	if m.ShowGrid {
		var b strings.Builder
		dot := glyphs().GridDot
		for x := range m.Width {
			if x%gridStepX == 0 {
				b.WriteString(dot)
			} else {
				b.WriteByte(' ')
			}
		}
		gridLine = style.Render(b.String())
	}

	lines := make([]string, m.Height)
	for y := range lines {
		if m.ShowGrid && y > 0 && y%gridStepY == 0 {
			lines[y] = gridLine
		} else {
			lines[y] = blank
		}
	}
	return lipgloss.NewLayer(strings.Join(lines, "\n")).
		X(0).Y(0).Z(config.ZIndexBackground).ID("desktop")
}

// renderMenuBar draws the menu titles on the left and the active window
// title, weather, system monitor and clock on the right.
func (m *OS) renderMenuBar() *lipgloss.Layer {
	base := lipgloss.NewStyle().Background(theme.MenuBarBg()).Foreground(theme.MenuBarFg())
	hiBg, hiFg := theme.MenuHighlight()
	highlight := lipgloss.NewStyle().Background(hiBg).Foreground(hiFg)

	var left strings.Builder
	left.WriteString(base.Render(" "))
	leftWidth := 1
	for i := range m.Menus.Menus() {
		label := " " + m.menuLabel(i) + " "
		if i == m.Menus.Open() {
			left.WriteString(highlight.Render(label))
		} else {
			left.WriteString(base.Bold(i == 0).Render(label))
		}
		leftWidth += ansi.StringWidth(label)
	}

	right := m.statusItems(ui.MenuClock(m.now()))
	rightText := strings.Join(right, "  ") + " "
	for len(right) > 1 && leftWidth+ansi.StringWidth(rightText)+1 > m.Width {
		right = right[1:]
		rightText = strings.Join(right, "  ") + " "
	}

	gap := max(0, m.Width-leftWidth-ansi.StringWidth(rightText))
	line := left.String() + base.Render(strings.Repeat(" ", gap)+rightText)
	line = ansi.Truncate(line, m.Width, "")
	return lipgloss.NewLayer(line).X(0).Y(0).Z(config.ZIndexMenuBar).ID("menubar")
}

// statusItems lists the right-hand menu bar items, least important first.
func (m *OS) statusItems(clock string) []string {
	var items []string
	if title := m.WM.ActiveTitle(); title != "" {
		items = append(items, title)
	}
	if m.WeatherText != "" {
		items = append(items, m.WeatherText)
	}
	if m.SysInfo != nil {
		items = append(items, m.SysInfo.String())
	}
	return append(items, clock)
}

func (m *OS) renderDropdown() *lipgloss.Layer {
	r, ok := m.dropdownRect()
	if !ok {
		return nil
	}
	items := m.Menus.Menus()[m.Menus.Open()].Items

	base := lipgloss.NewStyle().Background(theme.MenuBarBg()).Foreground(theme.MenuBarFg())
	disabled := base.Foreground(theme.MenuDisabled())
	hiBg, hiFg := theme.MenuHighlight()
	highlight := lipgloss.NewStyle().Background(hiBg).Foreground(hiFg)

	hovered := -1
	if j, ok := m.DropdownItemAt(m.HoverX, m.HoverY); ok {
		hovered = j
	}

	lines := make([]string, len(items))
	for j, it := range items {
		if it.Separator {
			lines[j] = disabled.Render(strings.Repeat(glyphs().Horizontal, r.Width))
			continue
		}
		text := " " + it.Label
		if it.Shortcut != "" {
			gap := max(1, r.Width-2-ansi.StringWidth(it.Label)-ansi.StringWidth(it.Shortcut)-1)
			text += strings.Repeat(" ", gap) + it.Shortcut
		}
		text = fit(text, r.Width)
		switch {
		case it.Disabled:
			lines[j] = disabled.Render(text)
		case j == hovered:
			lines[j] = highlight.Render(text)
		default:
			lines[j] = base.Render(text)
		}
	}
	return lipgloss.NewLayer(strings.Join(lines, "\n")).
		X(r.X).Y(r.Y).Z(config.ZIndexDropdown).ID("dropdown")
}

// renderIcons draws the desktop icons. A dragged icon follows the pointer.
func (m *OS) renderIcons() []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	top, bottom := config.MenuBarRows, m.dockTop()
	for _, ic := range m.Icons.All() {
		r := m.cellRect(ic.Bounds)
		z := config.ZIndexIcons
		if ic.AppID == m.IconDrag && m.HoverX >= 0 {
			r.X = m.HoverX - r.Width/2
			r.Y = m.HoverY - r.Height/2
			z = config.ZIndexWindowBase - 1
		}

		block := iconBlock(ic.Glyph, ic.Label, r.Width, m.iconHighlighted(ic.AppID),
			theme.IconFg(), theme.DesktopBg())
		content, x, y := clipBlock(block, r.X, r.Y, m.Width, top, bottom)
		if content == "" {
			continue
		}
		layers = append(layers, lipgloss.NewLayer(content).X(x).Y(y).Z(z).ID("icon-"+ic.AppID))
	}
	return layers
}

// iconBlock draws a boxed glyph over a label, centered in width cells.
// iconHighlighted reports whether the icon for appID is drawn selected.
// Selection is hidden while a window gesture is under way.
func (m *OS) iconHighlighted(appID string) bool {
	return appID == m.Icons.Selected() && !m.Pointer.SelectionSuppressed()
}

func iconBlock(glyph, label string, width int, selected bool, fg, bg color.Color) string {
	g := glyphs()
	if glyph == "" {
		glyph = "?"
	}
	glyph = center(ansi.Truncate(glyph, 3, ""), 3)
	box := []string{
		g.TopLeft + strings.Repeat(g.Horizontal, 3) + g.TopRight,
		g.Vertical + glyph + g.Vertical,
		g.BottomLeft + strings.Repeat(g.Horizontal, 3) + g.BottomRight,
	}

	style := lipgloss.NewStyle().Foreground(fg).Background(bg)
	labelStyle := style
	if selected {
		selBg, selFg := theme.IconSelected()
		labelStyle = lipgloss.NewStyle().Background(selBg).Foreground(selFg)
	}

	lines := make([]string, 0, len(box)+1)
	for _, b := range box {
		lines = append(lines, style.Render(center(b, width)))
	}
	text := ansi.Truncate(label, width, "")
	pad := width - ansi.StringWidth(text)
	lines = append(lines, style.Render(strings.Repeat(" ", pad/2))+
		labelStyle.Render(text)+
		style.Render(strings.Repeat(" ", pad-pad/2)))
	return strings.Join(lines, "\n")
}

// renderWindows draws the open windows bottom to top.
func (m *OS) renderWindows() []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	focused := m.WM.Focused()
	top, bottom := config.MenuBarRows, m.dockTop()
	for rank, w := range m.WM.StackOrder() {
		if !w.IsOpen() {
			continue
		}
		r := m.windowRect(w)
		block := m.renderWindow(w, r, w.ID == focused)
		content, x, y := clipBlock(block, r.X, r.Y, m.Width, top, bottom)
		if content == "" {
			continue
		}
		layers = append(layers, lipgloss.NewLayer(content).
			X(x).Y(y).Z(config.ZIndexWindowBase+rank).ID(w.ID))
	}
	return layers
}

func (m *OS) renderWindow(w *window.Window, r geometry.Rect, focused bool) string {
	g := glyphs()
	width := r.Width
	height := r.Height
	if w.Shaded {
		height = 1
	}

	var titleBg, titleFg, border color.Color
	if focused {
		titleBg, titleFg = theme.TitleBarFocused()
		border = theme.BorderFocused()
	} else {
		titleBg, titleFg = theme.TitleBarUnfocused()
		border = theme.BorderUnfocused()
	}
	titleStyle := lipgloss.NewStyle().Background(titleBg).Foreground(titleFg)
	buttonStyle := titleStyle.Foreground(theme.ButtonFg())
	borderStyle := lipgloss.NewStyle().Background(theme.WindowBg()).Foreground(border)
	bodyStyle := lipgloss.NewStyle().Background(theme.WindowBg()).Foreground(theme.WindowFg())

	fill := " "
	if focused {
		fill = g.Pinstripe
	}

	var title string
	if width >= minButtonsWidth {
		mid := width - 2 - 3*buttonWidth
		title = titleStyle.Render(g.TopLeft) +
			buttonStyle.Render(g.Close) +
			titleStyle.Render(titleBar(w.Title, mid, fill)) +
			buttonStyle.Render(g.Minimize+g.Zoom) +
			titleStyle.Render(g.TopRight)
	} else {
		title = titleStyle.Render(g.TopLeft + titleBar(w.Title, max(0, width-2), fill) + g.TopRight)
	}
	title = ansi.Truncate(title, width, "")

	lines := []string{title}
	if height == 1 {
		return title
	}

	inner := max(0, width-2)
	var body []string
	if m.Content.Has(w.ID) && inner > 0 {
		body = strings.Split(m.Content.Render(w.ID, inner), "\n")
	}
	for i := range max(0, height-2) {
		text := ""
		if i < len(body) {
			text = body[i]
		}
		lines = append(lines, borderStyle.Render(g.Vertical)+bodyStyle.Render(fit(text, inner))+borderStyle.Render(g.Vertical))
	}
	corner := g.ResizeCorner
	if m.Pointer.Resizing(w.ID) {
		corner = g.ResizeGrab
	}
	lines = append(lines, borderStyle.Render(g.BottomLeft+strings.Repeat(g.Horizontal, max(0, width-2))+corner))
	return strings.Join(lines, "\n")
}

// titleBar centers " title " in width cells padded with fill.
func titleBar(title string, width int, fill string) string {
	if width <= 0 {
		return ""
	}
	text := " " + ansi.Truncate(title, max(0, width-2), "") + " "
	if ansi.StringWidth(text) > width {
		text = ansi.Truncate(text, width, "")
	}
	pad := width - ansi.StringWidth(text)
	return strings.Repeat(fill, pad/2) + text + strings.Repeat(fill, pad-pad/2)
}

// renderGhosts draws the outlines of running genie and restore effects.
func (m *OS) renderGhosts() []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	g := glyphs()
	style := lipgloss.NewStyle().Foreground(theme.GhostOutline())
	for id, gh := range m.ghosts {
		a := m.Effects.For(id)
		if a == nil {
			continue
		}
		r := geometry.Lerp(gh.from, gh.to, a.Eased())
		if r.Width < 2 || r.Height < 1 {
			continue
		}

		edge := style.Render(g.TopLeft + strings.Repeat(g.Horizontal, r.Width-2) + g.TopRight)
		layers = append(layers, lipgloss.NewLayer(edge).X(r.X).Y(r.Y).Z(config.ZIndexGhost).ID("ghost-top-"+id))
		if r.Height == 1 {
			continue
		}
		edge = style.Render(g.BottomLeft + strings.Repeat(g.Horizontal, r.Width-2) + g.BottomRight)
		layers = append(layers, lipgloss.NewLayer(edge).X(r.X).Y(r.Bottom()-1).Z(config.ZIndexGhost).ID("ghost-bottom-"+id))
		if r.Height > 2 {
			side := style.Render(strings.TrimSuffix(strings.Repeat(g.Vertical+"\n", r.Height-2), "\n"))
			layers = append(layers,
				lipgloss.NewLayer(side).X(r.X).Y(r.Y+1).Z(config.ZIndexGhost).ID("ghost-left-"+id),
				lipgloss.NewLayer(side).X(r.Right()-1).Y(r.Y+1).Z(config.ZIndexGhost).ID("ghost-right-"+id),
			)
		}
	}
	return layers
}

// renderDock draws the dock strip: labels on the first row, indicators on
// the second. An entry with a running bounce flashes.
func (m *OS) renderDock() *lipgloss.Layer {
	slots := m.dockSlots()
	g := glyphs()
	base := lipgloss.NewStyle().Background(theme.DockBg()).Foreground(theme.DockFg())
	if len(slots) == 0 {
		return lipgloss.NewLayer("").X(0).Y(m.dockTop()).Z(config.ZIndexDock).ID("dock")
	}
	hiBg, hiFg := theme.MenuHighlight()
	flash := lipgloss.NewStyle().Background(hiBg).Foreground(hiFg)
	active := base.Foreground(theme.DockIndicator())
	minimized := base.Foreground(theme.DockMinimized())

	hovered := m.DockEntryAt(m.HoverX, m.HoverY)

	var labels, marks strings.Builder
	labels.WriteString(base.Render(" "))
	marks.WriteString(base.Render(" "))
	for i, s := range slots {
		if i > 0 {
			labels.WriteString(base.Render(strings.Repeat(" ", dockGap)))
			marks.WriteString(base.Render(strings.Repeat(" ", dockGap)))
		}
		text := center(dockLabel(s.entry), s.rect.Width)
		style := base.Bold(s.entry.ID == hovered)
		if a := m.Effects.For(dockTarget(s.entry.ID)); a != nil && int(a.Progress*6)%2 == 0 {
			style = flash
		}
		labels.WriteString(style.Render(text))

		switch {
		case s.entry.Active:
			marks.WriteString(active.Render(center(g.DockActive, s.rect.Width)))
		case s.entry.Minimized:
			marks.WriteString(minimized.Render(center(g.DockMinimized, s.rect.Width)))
		default:
			marks.WriteString(base.Render(strings.Repeat(" ", s.rect.Width)))
		}
	}
	labels.WriteString(base.Render(" "))
	marks.WriteString(base.Render(" "))

	x := slots[0].rect.X - 1
	content, cx, cy := clipBlock(labels.String()+"\n"+marks.String(), x, m.dockTop(), m.Width, 0, m.Height)
	return lipgloss.NewLayer(content).X(cx).Y(cy).Z(config.ZIndexDock).ID("dock")
}
