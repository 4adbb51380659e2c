package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// GetCanvas composes the visible shell and the overlays into one canvas.
// Both shells start with a full-size background layer, which fixes the
// canvas bounds at the terminal size.
func (m *OS) GetCanvas() *lipgloss.Canvas {
	var layers []*lipgloss.Layer
	if m.Shell.PagedVisible() {
		layers = m.pagedLayers()
	} else {
		layers = m.desktopLayers()
	}
	layers = append(layers, m.renderOverlays()...)
	return lipgloss.NewCanvas(layers...)
}

func (m *OS) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion

	if m.Width <= 0 || m.Height <= 0 || m.quitting {
		return view
	}
	view.SetContent(lipgloss.Sprint(m.GetCanvas().Render()))
	return view
}
