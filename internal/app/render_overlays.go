package app

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/dodorz/platinum/internal/config"
	"github.com/dodorz/platinum/internal/theme"
)

func (m *OS) renderOverlays() []*lipgloss.Layer {
	layers := m.renderNotifications()
	if m.ShowLogs {
		layers = append(layers, m.renderLogViewer())
	}
	return layers
}

// renderNotifications stacks notifications in the top right corner. New
// ones slide in from the right edge.
func (m *OS) renderNotifications() []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	style := lipgloss.NewStyle().
		Background(theme.NotificationBg()).
		Foreground(theme.NotificationFg()).
		Padding(0, 1)

	y := config.MenuBarRows + 1
	maxWidth := max(10, m.Width/2)
	for _, notif := range m.Notifications {
		text := ansi.Truncate(notif.Message, maxWidth-2, "…")
		switch notif.Type {
		case "error":
			text = lipgloss.NewStyle().Foreground(theme.LogViewerError()).Render("! ") + text
		case "warning":
			text = lipgloss.NewStyle().Foreground(theme.LogViewerWarn()).Render("! ") + text
		}
		rendered := style.Render(text)
		width := lipgloss.Width(rendered)

		x := m.Width - width - 1
		if a := notif.Animation; a != nil && !a.Complete {
			x += int(float64(width+1) * (1 - a.Eased()))
		}
		content, cx, cy := clipBlock(rendered, x, y, m.Width, 0, m.Height)
		if content != "" {
			layers = append(layers, lipgloss.NewLayer(content).
				X(cx).Y(cy).Z(config.ZIndexNotifications).ID("notif-"+notif.ID))
		}
		y += lipgloss.Height(rendered) + 1
	}
	return layers
}

// logScrollBounds returns how many log lines fit on screen and the largest
// scroll offset.
func (m *OS) logScrollBounds() (perPage, maxScroll int) {
	maxDisplayHeight := max(m.Height-8, 8)
	fixedLines := 4
	if len(m.LogMessages) > maxDisplayHeight-fixedLines {
		fixedLines = 6
	}
	perPage = max(maxDisplayHeight-fixedLines, 1)
	return perPage, max(len(m.LogMessages)-perPage, 0)
}

// ScrollLogs moves the log viewer by delta lines.
func (m *OS) ScrollLogs(delta int) {
	_, maxScroll := m.logScrollBounds()
	m.LogScrollOffset = max(0, min(m.LogScrollOffset+delta, maxScroll))
}

func (m *OS) renderLogViewer() *lipgloss.Layer {
	logTitle := lipgloss.NewStyle().
		Foreground(theme.LogViewerTitle()).
		Bold(true).
		Render("System Logs")

	logsPerPage, maxScroll := m.logScrollBounds()
	m.LogScrollOffset = max(0, min(m.LogScrollOffset, maxScroll))

	boxWidth := max(20, min(80, m.Width-4))
	lineWidth := boxWidth - 6

	logLines := []string{logTitle, ""}
	startIdx := m.LogScrollOffset
	displayCount := 0
	for i := startIdx; i < len(m.LogMessages) && displayCount < logsPerPage; i++ {
		msg := m.LogMessages[i]

		levelColor := theme.LogViewerInfo()
		switch msg.Level {
		case "ERROR":
			levelColor = theme.LogViewerError()
		case "WARN":
			levelColor = theme.LogViewerWarn()
		}
		levelStr := lipgloss.NewStyle().
			Foreground(levelColor).
			Render(fmt.Sprintf("[%s]", msg.Level))

		logLine := fmt.Sprintf("%s %s %s", msg.Time.Format("15:04:05"), levelStr, msg.Message)
		logLines = append(logLines, ansi.Truncate(logLine, lineWidth, "…"))
		displayCount++
	}

	dim := lipgloss.NewStyle().Foreground(theme.CLITableDim())
	if maxScroll > 0 {
		logLines = append(logLines, "", dim.Render(fmt.Sprintf("Showing %d-%d of %d logs (↑/↓ to scroll)",
			startIdx+1, startIdx+displayCount, len(m.LogMessages))))
	}
	logLines = append(logLines, "", dim.Render("Press esc or ctrl+l to close"))

	logBox := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.LogViewerTitle()).
		Padding(1, 2).
		Width(boxWidth).
		Render(strings.Join(logLines, "\n"))

	centered := lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, logBox)
	return lipgloss.NewLayer(centered).X(0).Y(0).Z(config.ZIndexLogs).ID("logs")
}
