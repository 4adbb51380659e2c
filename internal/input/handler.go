// Package input implements Platinum input handling.
//
// Key presses are resolved to actions through the keybinding registry and
// mouse events are hit tested against the desktop or the paged shell.
package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/dodorz/platinum/internal/app"
)

// HandleInput is the main input coordinator that routes messages to appropriate handlers
func HandleInput(msg tea.Msg, o *app.OS) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, o)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, o)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, o)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, o)
	case tea.MouseWheelMsg:
		return handleMouseWheel(msg, o)
	}
	return o, nil
}
