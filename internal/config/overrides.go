package config

import (
	"log"

	"github.com/dodorz/platinum/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// ASCIIOnly uses ASCII characters instead of glyphs
	ASCIIOnly bool

	// NoAnimations disables effects
	NoAnimations bool

	// NoMagnification disables dock magnification
	NoMagnification bool

	// ThemeName is the theme to load
	ThemeName string

	// Language selects localized window titles
	Language string

	// Breakpoint overrides the paged shell breakpoint in pixels (0 means use config)
	Breakpoint int
}

// ApplyOverrides applies CLI flag overrides to global config, falling back to user config defaults.
// Language and Breakpoint are written into userConfig when it is not nil.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) {
	// ASCII Only - OR of CLI flag and user config
	UseASCIIOnly = overrides.ASCIIOnly || (userConfig != nil && userConfig.Appearance.ASCIIOnly)

	// Animations - disabled by flag, otherwise user config
	AnimationsEnabled = !overrides.NoAnimations && (userConfig == nil || userConfig.AnimationsOn())

	// Dock magnification - same rule as animations
	DockMagnification = !overrides.NoMagnification && (userConfig == nil || userConfig.MagnificationOn())

	if userConfig != nil {
		if overrides.Language != "" {
			userConfig.Appearance.Language = overrides.Language
		}
		if overrides.Breakpoint > 0 {
			userConfig.Shell.Breakpoint = overrides.Breakpoint
		}
	}

	// Theme - CLI flag takes precedence, otherwise use user config
	themeName := overrides.ThemeName
	if themeName == "" && userConfig != nil && userConfig.Appearance.Theme != "" {
		themeName = userConfig.Appearance.Theme
	}
	if themeName != "" {
		if err := theme.Initialize(themeName); err != nil {
			log.Printf("Warning: Failed to load theme '%s': %v", themeName, err)
		}
	}
}
