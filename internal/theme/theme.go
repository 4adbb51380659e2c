// Package theme provides the color roles of the desktop. With no theme
// selected the classic Platinum grays are used; otherwise roles are mapped
// onto the active bubbletint palette.
package theme

import (
	"fmt"
	"image/color"
	"log"
	"slices"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming is disabled and the Platinum palette is used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	// Load custom themes from user's themes directory
	if themesDir, err := ThemesDir(); err == nil {
		if _, err := RegisterThemeDir(themesDir); err != nil {
			log.Printf("Warning: error loading custom themes: %v", err)
		}
	}

	if !tint.SetTintID(themeName) {
		tint.SetTintID("default")
		return fmt.Errorf("unknown theme %q", themeName)
	}
	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Names returns the IDs of every registered theme, sorted.
func Names() []string {
	tint.NewDefaultRegistry()
	if themesDir, err := ThemesDir(); err == nil {
		_, _ = RegisterThemeDir(themesDir)
	}
	ids := tint.TintIDs()
	slices.Sort(ids)
	return ids
}

// themed returns the palette color chosen by pick, or fallback when
// theming is disabled.
func themed(fallback string, pick func(*tint.Tint) *tint.Color) color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color(fallback)
	}
	if c := pick(t); c != nil {
		return c
	}
	return lipgloss.Color(fallback)
}

// DesktopBg returns the desktop background color.
func DesktopBg() color.Color {
	return themed("#6b6b9e", func(t *tint.Tint) *tint.Color { return t.Bg })
}

// DesktopGrid returns the color of the alignment grid.
func DesktopGrid() color.Color {
	return themed("#8484b4", func(t *tint.Tint) *tint.Color { return t.BrightBlack })
}

// MenuBarBg returns the menu bar background.
func MenuBarBg() color.Color {
	return themed("#dddddd", func(t *tint.Tint) *tint.Color { return t.White })
}

// MenuBarFg returns the menu bar text color.
func MenuBarFg() color.Color {
	return themed("#000000", func(t *tint.Tint) *tint.Color { return t.Black })
}

// MenuHighlight returns background and foreground colors for an open menu
// or hovered item.
func MenuHighlight() (bg color.Color, fg color.Color) {
	return themed("#3a3a99", func(t *tint.Tint) *tint.Color { return t.Blue }),
		themed("#ffffff", func(t *tint.Tint) *tint.Color { return t.BrightWhite })
}

// MenuDisabled returns the color of disabled menu items.
func MenuDisabled() color.Color {
	return themed("#8c8c8c", func(t *tint.Tint) *tint.Color { return t.BrightBlack })
}

// WindowBg returns the window content background.
func WindowBg() color.Color {
	return themed("#eeeeee", func(t *tint.Tint) *tint.Color { return t.BrightWhite })
}

// WindowFg returns the window content text color.
func WindowFg() color.Color {
	return themed("#111111", func(t *tint.Tint) *tint.Color { return t.Black })
}

// TitleBarFocused returns background and foreground colors of the focused
// window's title bar.
func TitleBarFocused() (bg color.Color, fg color.Color) {
	return themed("#c8c8c8", func(t *tint.Tint) *tint.Color { return t.White }),
		themed("#000000", func(t *tint.Tint) *tint.Color { return t.Black })
}

// TitleBarUnfocused returns background and foreground colors of unfocused
// title bars.
func TitleBarUnfocused() (bg color.Color, fg color.Color) {
	return themed("#e8e8e8", func(t *tint.Tint) *tint.Color { return t.BrightWhite }),
		themed("#8c8c8c", func(t *tint.Tint) *tint.Color { return t.BrightBlack })
}

// BorderFocused returns the border color of the focused window.
func BorderFocused() color.Color {
	return themed("#444444", func(t *tint.Tint) *tint.Color { return t.BrightCyan })
}

// BorderUnfocused returns the border color of other windows.
func BorderUnfocused() color.Color {
	return themed("#9a9a9a", func(t *tint.Tint) *tint.Color { return t.BrightBlack })
}

// ButtonFg returns the color of title bar buttons.
func ButtonFg() color.Color {
	return themed("#333333", func(t *tint.Tint) *tint.Color { return t.Black })
}

// IconFg returns the desktop icon label color.
func IconFg() color.Color {
	return themed("#ffffff", func(t *tint.Tint) *tint.Color { return t.Fg })
}

// IconSelected returns background and foreground colors of the selected icon.
func IconSelected() (bg color.Color, fg color.Color) {
	return themed("#000066", func(t *tint.Tint) *tint.Color { return t.Blue }),
		themed("#ffffff", func(t *tint.Tint) *tint.Color { return t.BrightWhite })
}

// GhostOutline returns the color of the genie and restore outlines.
func GhostOutline() color.Color {
	return themed("#e0e0e0", func(t *tint.Tint) *tint.Color { return t.BrightWhite })
}

// DockBg returns the background color for the dock.
func DockBg() color.Color {
	return themed("#c0c0c0", func(t *tint.Tint) *tint.Color { return t.White })
}

// DockFg returns the foreground color for the dock.
func DockFg() color.Color {
	return themed("#222222", func(t *tint.Tint) *tint.Color { return t.Black })
}

// DockIndicator returns the color of the running indicator under open apps.
func DockIndicator() color.Color {
	return themed("#1f1f1f", func(t *tint.Tint) *tint.Color { return t.BrightGreen })
}

// DockMinimized returns the color of entries whose window is minimized.
func DockMinimized() color.Color {
	return themed("#6e6e6e", func(t *tint.Tint) *tint.Color { return t.Yellow })
}

// SpringboardBg returns the paged shell background.
func SpringboardBg() color.Color {
	return themed("#20203a", func(t *tint.Tint) *tint.Color { return t.Bg })
}

// SpringboardFg returns the paged shell text color.
func SpringboardFg() color.Color {
	return themed("#f0f0f0", func(t *tint.Tint) *tint.Color { return t.Fg })
}

// PageDot returns the colors of the current and other page dots.
func PageDot() (active color.Color, inactive color.Color) {
	return themed("#ffffff", func(t *tint.Tint) *tint.Color { return t.BrightWhite }),
		themed("#6c6c80", func(t *tint.Tint) *tint.Color { return t.BrightBlack })
}

// LogViewerTitle returns the color for the log viewer title.
func LogViewerTitle() color.Color {
	return themed("#3a3a99", func(t *tint.Tint) *tint.Color { return t.BrightBlue })
}

// LogViewerError returns the color for error messages in log viewer.
func LogViewerError() color.Color {
	return themed("#cd0000", func(t *tint.Tint) *tint.Color { return t.Red })
}

// LogViewerWarn returns the color for warning messages in log viewer.
func LogViewerWarn() color.Color {
	return themed("#b58900", func(t *tint.Tint) *tint.Color { return t.Yellow })
}

// LogViewerInfo returns the color for info messages in log viewer.
func LogViewerInfo() color.Color {
	return themed("#268bd2", func(t *tint.Tint) *tint.Color { return t.Cyan })
}

// NotificationBg returns the background color for notifications.
func NotificationBg() color.Color {
	return themed("#ffffcc", func(t *tint.Tint) *tint.Color { return t.Bg })
}

// NotificationFg returns the foreground color for notifications.
func NotificationFg() color.Color {
	return themed("#000000", func(t *tint.Tint) *tint.Color { return t.Fg })
}

// CLITableHeader returns the color for CLI table headers.
func CLITableHeader() color.Color {
	return lipgloss.Color("12")
}

// CLITableKey returns the color for CLI table keys.
func CLITableKey() color.Color {
	return lipgloss.Color("11")
}

// CLITableDim returns the dimmed color for CLI table elements.
func CLITableDim() color.Color {
	return lipgloss.Color("8")
}

// ColorToString converts a color.Color to a hex string
func ColorToString(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns values in range 0-65535, convert to 0-255
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
