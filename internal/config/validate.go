package config

import (
	"fmt"
	"net/url"
	"slices"
)

// ValidationError describes one problem found in the user configuration.
type ValidationError struct {
	Field   string // Section name, e.g. "shell"
	Key     string
	Message string
}

// ValidationResult collects errors, which stop startup, and warnings, which
// are printed and ignored.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors reports whether any error was found.
func (v *ValidationResult) HasErrors() bool { return len(v.Errors) > 0 }

// HasWarnings reports whether any warning was found.
func (v *ValidationResult) HasWarnings() bool { return len(v.Warnings) > 0 }

func (v *ValidationResult) addError(field, key, format string, args ...any) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

func (v *ValidationResult) addWarning(field, key, format string, args ...any) {
	v.Warnings = append(v.Warnings, ValidationError{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

var contentStyles = []string{"dark", "light", "notty", "ascii", "dracula", "tokyo-night", "pink"}

// ValidateConfig checks a configuration after defaults have been filled.
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	result := &ValidationResult{}

	if cfg.Appearance.ContentStyle != "" && !slices.Contains(contentStyles, cfg.Appearance.ContentStyle) {
		result.addWarning("appearance", "content_style", "unknown style %q, using dark", cfg.Appearance.ContentStyle)
		cfg.Appearance.ContentStyle = "dark"
	}

	d := cfg.Desktop
	if d.TileTop < d.MenuBarHeight {
		result.addWarning("desktop", "tile_top", "%d is under the menu bar (%d)", d.TileTop, d.MenuBarHeight)
	}
	if d.ShadeHeight >= d.MinHeight {
		result.addError("desktop", "shade_height", "must be smaller than min_height (%d)", d.MinHeight)
	}

	if cfg.Shell.PageThreshold >= 1 {
		result.addError("shell", "page_threshold", "must be a fraction below 1, got %v", cfg.Shell.PageThreshold)
	}

	w := cfg.Weather
	if w.Latitude < -90 || w.Latitude > 90 {
		result.addError("weather", "latitude", "must be within [-90, 90], got %v", w.Latitude)
	}
	if w.Longitude < -180 || w.Longitude > 180 {
		result.addError("weather", "longitude", "must be within [-180, 180], got %v", w.Longitude)
	}
	if u, err := url.Parse(w.Endpoint); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		result.addError("weather", "endpoint", "must be an http or https URL, got %q", w.Endpoint)
	}

	seen := make(map[string]bool, len(cfg.Apps))
	for i, app := range cfg.Apps {
		if app.ID == "" {
			result.addError("apps", fmt.Sprintf("apps[%d].id", i), "must not be empty")
			continue
		}
		if seen[app.ID] {
			result.addError("apps", fmt.Sprintf("apps[%d].id", i), "duplicate id %q", app.ID)
		}
		seen[app.ID] = true
	}
	if !seen[cfg.Shell.DefaultApp] {
		result.addWarning("shell", "default_app", "%q is not a declared app, nothing opens on first paged view", cfg.Shell.DefaultApp)
	}

	owners := make(map[string]string)
	for action, keys := range cfg.Keybindings {
		if !IsKnownAction(action) {
			result.addWarning("keybindings", action, "unknown action")
			continue
		}
		for _, key := range keys {
			key = normalizeKey(key)
			if other, ok := owners[key]; ok && other != action {
				result.addWarning("keybindings", action, "key %q is also bound to %s", key, other)
				continue
			}
			owners[key] = action
		}
	}

	return result
}
