package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/dodorz/platinum/internal/app"
	"github.com/dodorz/platinum/internal/command"
	"github.com/dodorz/platinum/internal/config"
)

// ActionHandler is a function that handles a specific action
type ActionHandler func(_ tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd)

// ActionDispatcher maps action names to handler functions
type ActionDispatcher struct {
	handlers map[string]ActionHandler
}

// NewActionDispatcher creates a new action dispatcher with all handlers registered
func NewActionDispatcher() *ActionDispatcher {
	d := &ActionDispatcher{
		handlers: make(map[string]ActionHandler),
	}
	d.registerHandlers()
	return d
}

// registerHandlers registers all action handlers
func (d *ActionDispatcher) registerHandlers() {
	// Window actions
	d.Register(config.ActionCloseWindow, handleCloseWindow)
	d.Register(config.ActionNextWindow, handleNextWindow)
	d.Register(config.ActionPrevWindow, handlePrevWindow)
	d.Register(config.ActionMinimizeWindow, focusedCommand(func(id string) command.Command { return command.MinimizeWindow{ID: id} }))
	d.Register(config.ActionToggleZoom, focusedCommand(func(id string) command.Command { return command.ToggleZoom{ID: id} }))
	d.Register(config.ActionToggleShade, focusedCommand(func(id string) command.Command { return command.ToggleShade{ID: id} }))
	d.Register(config.ActionMinimizeAll, runCommand(command.MinimizeAll{}))
	d.Register(config.ActionTile, runCommand(command.Tile{}))

	// Desktop and springboard navigation
	d.Register(config.ActionNavNext, handleNavNext)
	d.Register(config.ActionNavPrev, handleNavPrev)
	d.Register(config.ActionActivate, handleActivate)
	d.Register(config.ActionTidyIcons, runCommand(command.TidyIcons{}))
	d.Register(config.ActionToggleGrid, runCommand(command.ShowGrid{}))

	// System actions
	d.Register(config.ActionToggleLogs, handleToggleLogs)
	d.Register(config.ActionQuit, runCommand(command.Quit{}))
}

// Register adds an action handler
func (d *ActionDispatcher) Register(action string, handler ActionHandler) {
	d.handlers[action] = handler
}

// Dispatch executes the handler for a given action
func (d *ActionDispatcher) Dispatch(action string, msg tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	if handler, ok := d.handlers[action]; ok {
		return handler(msg, o)
	}
	return o, nil
}

// HasAction checks if an action is registered
func (d *ActionDispatcher) HasAction(action string) bool {
	_, ok := d.handlers[action]
	return ok
}

// Global action dispatcher instance
var globalDispatcher = NewActionDispatcher()

// GetDispatcher returns the global action dispatcher
func GetDispatcher() *ActionDispatcher {
	return globalDispatcher
}

func runCommand(cmd command.Command) ActionHandler {
	return func(_ tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
		o.Run(cmd)
		return o, nil
	}
}

// focusedCommand runs the command built for the focused window. Nothing
// happens when no window has focus or the paged shell is showing.
func focusedCommand(build func(id string) command.Command) ActionHandler {
	return func(_ tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
		if o.Shell.PagedVisible() {
			return o, nil
		}
		if id := o.WM.Focused(); id != "" {
			o.Run(build(id))
		}
		return o, nil
	}
}

// ============================================================================
// Window Action Handlers
// ============================================================================

func handleCloseWindow(_ tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	if o.Shell.PagedVisible() {
		o.GoHome()
		return o, nil
	}
	if id := o.WM.Focused(); id != "" {
		o.Run(command.CloseWindow{ID: id})
	}
	return o, nil
}

func handleNextWindow(_ tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	if o.Shell.DesktopVisible() {
		o.WM.CycleFocus(true)
	}
	return o, nil
}

func handlePrevWindow(_ tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	if o.Shell.DesktopVisible() {
		o.WM.CycleFocus(false)
	}
	return o, nil
}

// ============================================================================
// Navigation Action Handlers
// ============================================================================

func handleNavNext(_ tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	if o.Shell.PagedVisible() {
		if o.Springboard.Foreground() == "" {
			o.NextPage()
		}
		return o, nil
	}
	o.Icons.SelectNext(1)
	return o, nil
}

func handleNavPrev(_ tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	if o.Shell.PagedVisible() {
		if o.Springboard.Foreground() == "" {
			o.PrevPage()
		}
		return o, nil
	}
	o.Icons.SelectNext(-1)
	return o, nil
}

// handleActivate opens the selected desktop icon, or the first app on the
// current springboard page.
func handleActivate(_ tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	if o.Shell.PagedVisible() {
		if o.Springboard.Foreground() != "" {
			return o, nil
		}
		if page := o.Springboard.Page(o.Springboard.Current()); len(page) > 0 {
			o.LaunchApp(page[0])
		}
		return o, nil
	}
	if id := o.Icons.Selected(); id != "" {
		o.Run(command.OpenWindow{ID: id})
	}
	return o, nil
}

// ============================================================================
// System Action Handlers
// ============================================================================

func handleToggleLogs(_ tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	o.ShowLogs = !o.ShowLogs
	if o.ShowLogs {
		// Open at the newest entries
		o.ScrollLogs(len(o.LogMessages))
	}
	return o, nil
}
