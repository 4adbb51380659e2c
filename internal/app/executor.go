package app

import (
	"github.com/dodorz/platinum/internal/command"
	"github.com/dodorz/platinum/internal/config"
)

var _ command.Executor = (*OS)(nil)

var noticeText = map[command.NoticeKind]string{
	command.NoticeAboutSite: "Built with Go and Bubble Tea, styled after Mac OS 9.",
	command.NoticeSleep:     "Zzz… (demo)",
	command.NoticeRestart:   "Restarting… (demo)",
	command.NoticeShutdown:  "Shutting down… (demo)",
}

// Run executes a menu, keyboard or script command.
func (m *OS) Run(cmd command.Command) {
	if cmd == nil {
		return
	}
	m.LogInfo("[CMD] %s", command.Name(cmd))
	command.Dispatch(cmd, m)
}

// Open opens the window. In the paged shell the app also comes to the front.
func (m *OS) Open(id string) {
	if _, ok := m.WM.Window(id); !ok {
		m.LogWarn("Unknown window %q", id)
		return
	}
	m.WM.Open(id)
	if m.Shell.PagedVisible() {
		m.Springboard.Launch(id)
	}
}

// Close closes the window.
func (m *OS) Close(id string) {
	m.WM.Close(id)
}

// Minimize minimizes the window into the dock.
func (m *OS) Minimize(id string) {
	m.WM.Minimize(id)
}

// Restore brings a minimized window back.
func (m *OS) Restore(id string) {
	m.WM.Restore(id)
}

// ToggleZoom zooms or unzooms the window.
func (m *OS) ToggleZoom(id string) {
	m.WM.ToggleZoom(id)
}

// ToggleShade rolls the window up to its title bar or back down.
func (m *OS) ToggleShade(id string) {
	m.WM.ToggleShade(id)
}

// MinimizeAll minimizes every open window.
func (m *OS) MinimizeAll() {
	m.WM.MinimizeAll()
}

// Tile arranges the open windows in a grid.
func (m *OS) Tile() {
	m.WM.Tile()
}

// TidyIcons puts the desktop icons back in their original order.
func (m *OS) TidyIcons() {
	m.Icons.Tidy(m.DesktopSurface())
}

// ToggleGrid shows or hides the alignment grid.
func (m *OS) ToggleGrid() {
	m.ShowGrid = !m.ShowGrid
	if m.ShowGrid {
		m.ShowNotification("Grid shown", "info", config.NotificationDuration)
	} else {
		m.ShowNotification("Grid hidden", "info", config.NotificationDuration)
	}
}

// Notify shows one of the canned notices.
func (m *OS) Notify(kind command.NoticeKind) {
	text, ok := noticeText[kind]
	if !ok {
		return
	}
	m.ShowNotification(text, "info", config.NotificationDuration)
}

// Quit asks the program to exit after the current update.
func (m *OS) Quit() {
	m.quitting = true
}

// Quitting reports whether Quit has been called.
func (m *OS) Quitting() bool {
	return m.quitting
}
