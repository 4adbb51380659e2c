// Package config provides configuration constants, keybinding management, and user settings.
package config

import (
	"time"
)

// =============================================================================
// Pixel Grid
// =============================================================================

const (
	// CellWidthPx is the number of abstract pixels per terminal column
	CellWidthPx = 8

	// CellHeightPx is the number of abstract pixels per terminal row
	CellHeightPx = 16
)

// =============================================================================
// Desktop Geometry (pixels)
// =============================================================================

const (
	// MenuBarHeightPx is the height reserved for the menu bar; windows never go above it
	MenuBarHeightPx = 24

	// EdgeMarginPx is kept free on the left, right and bottom of the desktop
	EdgeMarginPx = 2

	// MinWindowWidthPx is the smallest width a window can be resized to
	MinWindowWidthPx = 300

	// MinWindowHeightPx is the smallest height a window can be resized to
	MinWindowHeightPx = 180

	// ShadeHeightPx is the height of a shaded (title bar only) window
	ShadeHeightPx = 22

	// DefaultWindowWidthPx is used for apps that declare no width
	DefaultWindowWidthPx = 420

	// DefaultWindowHeightPx is used for apps that declare no height
	DefaultWindowHeightPx = 300
)

// =============================================================================
// Layout (terminal cells)
// =============================================================================

const (
	// MenuBarRows is the number of rows taken by the menu bar
	MenuBarRows = 1

	// DockRows is the number of rows taken by the dock
	DockRows = 2

	// StatusBarRows is the number of rows taken by the paged status bar
	StatusBarRows = 1

	// PageDotsRows is the number of rows taken by the springboard page dots
	PageDotsRows = 1

	// DropdownMinWidth is the minimum width of an open pull-down menu
	DropdownMinWidth = 18
)

// =============================================================================
// Animation Durations
// =============================================================================

const (
	// DefaultAnimationDuration is the standard duration for genie and restore effects
	DefaultAnimationDuration = 300 * time.Millisecond

	// FastAnimationDuration is the duration for dock bounces and page snaps
	FastAnimationDuration = 200 * time.Millisecond

	// NotificationDuration is the default duration notifications remain visible
	NotificationDuration = 2500 * time.Millisecond
)

// =============================================================================
// Timeouts and Intervals
// =============================================================================

const (
	// ClockUpdateInterval is how often the menu bar clock is refreshed
	ClockUpdateInterval = 30 * time.Second

	// SysInfoUpdateInterval is the interval between CPU and memory samples
	SysInfoUpdateInterval = 2 * time.Second

	// DefaultWeatherRefresh is how often the weather is re-fetched
	DefaultWeatherRefresh = 15 * time.Minute

	// DefaultWeatherTimeout bounds a single weather request
	DefaultWeatherTimeout = 5 * time.Second

	// DoubleClickInterval is the longest gap between two presses of a double activation
	DoubleClickInterval = 500 * time.Millisecond
)

// =============================================================================
// FPS and Refresh Rates
// =============================================================================

const (
	// NormalFPS is the refresh rate while effects run or the pointer is busy
	NormalFPS = 60
)

// =============================================================================
// Buffers
// =============================================================================

const (
	// MaxLogMessages is the number of log lines kept for the log overlay
	MaxLogMessages = 500

	// MaxNotifications is the number of notifications shown at once
	MaxNotifications = 4
)

// =============================================================================
// Layer Order
// =============================================================================

const (
	// ZIndexBackground is the desktop or springboard background
	ZIndexBackground = 0

	// ZIndexIcons is the z-index for desktop icons
	ZIndexIcons = 1

	// ZIndexWindowBase is added to a window's stacking order
	ZIndexWindowBase = 10

	// ZIndexGhost is the z-index for genie and restore outlines
	ZIndexGhost = 1000

	// ZIndexDock is the z-index for the dock
	ZIndexDock = 1100

	// ZIndexMenuBar is the z-index for the menu bar and status bar
	ZIndexMenuBar = 1200

	// ZIndexDropdown is the z-index for an open pull-down menu
	ZIndexDropdown = 1300

	// ZIndexNotifications is the z-index for notifications
	ZIndexNotifications = 1400

	// ZIndexLogs is the z-index for the log viewer
	ZIndexLogs = 1500
)

// =============================================================================
// Runtime Settings
// =============================================================================

var (
	// UseASCIIOnly replaces glyphs with plain ASCII
	UseASCIIOnly = false

	// AnimationsEnabled turns effects on or off
	AnimationsEnabled = true

	// DockMagnification enables pointer-driven dock magnification
	DockMagnification = true
)

// GetAnimationDuration returns the effect duration, or zero when animations are off.
func GetAnimationDuration() time.Duration {
	if !AnimationsEnabled {
		return 0
	}
	return DefaultAnimationDuration
}

// GetFastAnimationDuration returns the short effect duration, or zero when animations are off.
func GetFastAnimationDuration() time.Duration {
	if !AnimationsEnabled {
		return 0
	}
	return FastAnimationDuration
}
