package app

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/dodorz/platinum/internal/config"
	"github.com/dodorz/platinum/internal/theme"
	"github.com/dodorz/platinum/internal/ui"
)

// pagedLayers draws the phone-style shell: a status bar over either the
// springboard or the foreground app.
func (m *OS) pagedLayers() []*lipgloss.Layer {
	style := lipgloss.NewStyle().Background(theme.SpringboardBg()).Foreground(theme.SpringboardFg())
	blank := style.Render(strings.Repeat(" ", m.Width))
	bg := strings.TrimSuffix(strings.Repeat(blank+"\n", m.Height), "\n")

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(bg).X(0).Y(0).Z(config.ZIndexBackground).ID("springboard-bg"),
		m.renderStatusBar(),
	}
	if id := m.Springboard.Foreground(); id != "" {
		return append(layers, m.renderAppView(id)...)
	}
	layers = append(layers, m.renderSpringboard()...)
	return append(layers, m.renderPageDots())
}

func (m *OS) renderStatusBar() *lipgloss.Layer {
	style := lipgloss.NewStyle().Background(theme.SpringboardBg()).Foreground(theme.SpringboardFg()).Bold(true)
	left := " " + ui.StatusClock(m.now())
	right := m.WeatherText + " "
	gap := max(1, m.Width-ansi.StringWidth(left)-ansi.StringWidth(right))
	line := fit(left+strings.Repeat(" ", gap)+right, m.Width)
	return lipgloss.NewLayer(style.Render(line)).X(0).Y(0).Z(config.ZIndexMenuBar).ID("statusbar")
}

// renderAppView shows a launched app full screen with a home bar at the
// bottom.
func (m *OS) renderAppView(id string) []*lipgloss.Layer {
	title := id
	if w, ok := m.WM.Window(id); ok {
		title = w.Title
	}
	titleBg, titleFg := theme.TitleBarFocused()
	titleStyle := lipgloss.NewStyle().Background(titleBg).Foreground(titleFg).Bold(true)
	bodyStyle := lipgloss.NewStyle().Background(theme.WindowBg()).Foreground(theme.WindowFg())
	barStyle := lipgloss.NewStyle().Background(theme.SpringboardBg()).Foreground(theme.SpringboardFg())

	top := config.StatusBarRows
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(titleStyle.Render(center(title, m.Width))).
			X(0).Y(top).Z(config.ZIndexWindowBase).ID("app-title"),
	}

	rows := max(0, m.Height-top-2)
	inner := max(1, m.Width-2)
	var body []string
	if m.Content.Has(id) {
		body = strings.Split(m.Content.Render(id, inner), "\n")
	}
	lines := make([]string, rows)
	for i := range lines {
		text := ""
		if i < len(body) {
			text = body[i]
		}
		lines[i] = bodyStyle.Render(" " + fit(text, inner) + " ")
	}
	if rows > 0 {
		layers = append(layers, lipgloss.NewLayer(strings.Join(lines, "\n")).
			X(0).Y(top+1).Z(config.ZIndexWindowBase).ID("app-body"))
	}

	bar := strings.Repeat(glyphs().HomeBar, max(3, min(12, m.Width/3)))
	layers = append(layers, lipgloss.NewLayer(barStyle.Render(center(bar, m.Width))).
		X(0).Y(m.Height-1).Z(config.ZIndexWindowBase).ID("homebar"))
	return layers
}

// renderSpringboard draws the current page and, while a swipe or snap is
// under way, the neighbouring pages sliding in.
func (m *OS) renderSpringboard() []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	bottom := m.Height - config.PageDotsRows
	cur := m.Springboard.Current()
	for p := cur - 1; p <= cur+1; p++ {
		for n, id := range m.Springboard.Page(p) {
			r := m.springboardIconRect(p, n)
			label := id
			glyph := ""
			if w, ok := m.WM.Window(id); ok {
				label = w.Title
			}
			for _, it := range m.Dock.Items() {
				if it.ID == id {
					glyph = it.Icon
				}
			}
			block := iconBlock(glyph, label, r.Width, false, theme.SpringboardFg(), theme.SpringboardBg())
			content, x, y := clipBlock(block, r.X, r.Y, m.Width, springboardTop, bottom)
			if content == "" {
				continue
			}
			layers = append(layers, lipgloss.NewLayer(content).
				X(x).Y(y).Z(config.ZIndexIcons).ID("sb-"+id))
		}
	}
	return layers
}

func (m *OS) renderPageDots() *lipgloss.Layer {
	g := glyphs()
	on, off := theme.PageDot()
	bg := theme.SpringboardBg()
	active := lipgloss.NewStyle().Background(bg).Foreground(on)
	inactive := lipgloss.NewStyle().Background(bg).Foreground(off)
	space := lipgloss.NewStyle().Background(bg).Render(" ")

	var b strings.Builder
	for p := range m.Springboard.PageCount() {
		if p > 0 {
			b.WriteString(space)
		}
		if p == m.Springboard.Current() {
			b.WriteString(active.Render(g.PageActive))
		} else {
			b.WriteString(inactive.Render(g.PageOther))
		}
	}
	return lipgloss.NewLayer(b.String()).
		X(m.pageDotsStart()).Y(m.Height - config.PageDotsRows).Z(config.ZIndexIcons).ID("page-dots")
}
