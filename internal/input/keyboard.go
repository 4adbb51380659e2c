package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/dodorz/platinum/internal/app"
	"github.com/dodorz/platinum/internal/config"
)

// HandleKeyPress resolves a key to its bound action and runs it. The log
// viewer and an open menu take the keyboard first.
func HandleKeyPress(msg tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	if o.ShowLogs {
		return handleLogViewerKey(msg, o)
	}

	key := msg.String()
	if o.Menus.IsOpen() && key == "esc" {
		o.Menus.CloseAll()
		return o, nil
	}

	action, ok := o.Keys.ActionFor(key)
	if !ok {
		return o, nil
	}
	return GetDispatcher().Dispatch(action, msg, o)
}

// handleLogViewerKey handles keyboard input when the log viewer overlay is active.
func handleLogViewerKey(msg tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	key := msg.String()

	if action, ok := o.Keys.ActionFor(key); ok && action == config.ActionToggleLogs {
		o.ShowLogs = false
		return o, nil
	}

	switch key {
	case "q", "esc":
		o.ShowLogs = false
		o.LogScrollOffset = 0
	case "up", "k":
		o.ScrollLogs(-1)
	case "down", "j":
		o.ScrollLogs(1)
	case "pgup", "ctrl+u":
		o.ScrollLogs(-logPageStep)
	case "pgdown", "ctrl+d":
		o.ScrollLogs(logPageStep)
	case "g", "home":
		o.LogScrollOffset = 0
	case "G", "end":
		o.ScrollLogs(len(o.LogMessages))
	}
	return o, nil
}

const logPageStep = 8
