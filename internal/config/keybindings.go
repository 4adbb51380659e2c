package config

import "strings"

// Actions that can be bound to keys.
const (
	ActionCloseWindow    = "close_window"
	ActionNextWindow     = "next_window"
	ActionPrevWindow     = "prev_window"
	ActionMinimizeWindow = "minimize_window"
	ActionMinimizeAll    = "minimize_all"
	ActionToggleZoom     = "toggle_zoom"
	ActionToggleShade    = "toggle_shade"
	ActionTile           = "tile"
	ActionNavNext        = "nav_next"
	ActionNavPrev        = "nav_prev"
	ActionActivate       = "activate"
	ActionTidyIcons      = "tidy_icons"
	ActionToggleGrid     = "toggle_grid"
	ActionToggleLogs     = "toggle_logs"
	ActionQuit           = "quit"
)

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents a section of related keybindings
type KeybindingSection struct {
	Title     string
	Condition string // Empty for always shown, "desktop" or "paged" for one shell only
	Bindings  []Keybinding
}

type actionInfo struct {
	name        string
	description string
	section     string
	defaults    []string
}

// actionTable is the canonical action order. Earlier actions win when a key
// is bound twice.
var actionTable = []actionInfo{
	{ActionCloseWindow, "Close window / back to springboard", "WINDOWS", []string{"esc"}},
	{ActionNextWindow, "Next window", "WINDOWS", []string{"tab"}},
	{ActionPrevWindow, "Previous window", "WINDOWS", []string{"shift+tab"}},
	{ActionMinimizeWindow, "Minimize window", "WINDOWS", []string{"ctrl+m", "m"}},
	{ActionMinimizeAll, "Minimize all windows", "WINDOWS", []string{"M"}},
	{ActionToggleZoom, "Zoom window", "WINDOWS", []string{"ctrl+z", "z"}},
	{ActionToggleShade, "Shade window", "WINDOWS", []string{"ctrl+s", "s"}},
	{ActionTile, "Arrange windows", "WINDOWS", []string{"ctrl+t", "t"}},
	{ActionNavNext, "Next icon / next page", "DESKTOP", []string{"right", "down"}},
	{ActionNavPrev, "Previous icon / previous page", "DESKTOP", []string{"left", "up"}},
	{ActionActivate, "Open selected icon", "DESKTOP", []string{"enter", "space"}},
	{ActionTidyIcons, "Clean up icons", "DESKTOP", []string{"c"}},
	{ActionToggleGrid, "Show grid", "DESKTOP", []string{"g"}},
	{ActionToggleLogs, "Toggle log viewer", "SYSTEM", []string{"ctrl+l"}},
	{ActionQuit, "Quit", "SYSTEM", []string{"q", "ctrl+c"}},
}

// DefaultKeybindings returns the default action to keys map.
func DefaultKeybindings() map[string][]string {
	bindings := make(map[string][]string, len(actionTable))
	for _, a := range actionTable {
		bindings[a.name] = append([]string(nil), a.defaults...)
	}
	return bindings
}

// IsKnownAction reports whether name is a bindable action.
func IsKnownAction(name string) bool {
	for _, a := range actionTable {
		if a.name == name {
			return true
		}
	}
	return false
}

// KeybindRegistry resolves key presses to actions.
type KeybindRegistry struct {
	byKey    map[string]string
	byAction map[string][]string
}

// NewKeybindRegistry builds a registry from an action to keys map. Unknown
// actions are ignored.
func NewKeybindRegistry(bindings map[string][]string) *KeybindRegistry {
	r := &KeybindRegistry{
		byKey:    make(map[string]string),
		byAction: make(map[string][]string),
	}
	for _, a := range actionTable {
		keys, ok := bindings[a.name]
		if !ok {
			continue
		}
		for _, key := range keys {
			key = normalizeKey(key)
			if key == "" {
				continue
			}
			if _, taken := r.byKey[key]; taken {
				continue
			}
			r.byKey[key] = a.name
			r.byAction[a.name] = append(r.byAction[a.name], key)
		}
	}
	return r
}

// ActionFor returns the action bound to key.
func (r *KeybindRegistry) ActionFor(key string) (string, bool) {
	action, ok := r.byKey[normalizeKey(key)]
	return action, ok
}

// KeysFor returns the keys bound to action.
func (r *KeybindRegistry) KeysFor(action string) []string {
	return r.byAction[action]
}

// GetKeysForDisplay returns the keys for action formatted for help output.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	keys := r.byAction[action]
	display := make([]string, len(keys))
	for i, k := range keys {
		display[i] = formatKey(k)
	}
	return strings.Join(display, ", ")
}

// GetKeybindings returns all keybinding sections for help output.
// If registry is nil the default bindings are listed.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(DefaultKeybindings())
	}

	var sections []KeybindingSection
	index := make(map[string]int)
	for _, a := range actionTable {
		keys := registry.GetKeysForDisplay(a.name)
		if keys == "" {
			continue
		}
		i, ok := index[a.section]
		if !ok {
			i = len(sections)
			index[a.section] = i
			sections = append(sections, KeybindingSection{Title: a.section})
		}
		sections[i].Bindings = append(sections[i].Bindings, Keybinding{Key: keys, Description: a.description})
	}

	return append(sections, getStaticHelpSections()...)
}

// getStaticHelpSections returns mouse gestures, which are not rebindable.
func getStaticHelpSections() []KeybindingSection {
	return []KeybindingSection{
		{
			Title:     "MOUSE:",
			Condition: "desktop",
			Bindings: []Keybinding{
				{"Drag title bar", "Move window"},
				{"Double-click title bar", "Shade window"},
				{"Drag corner", "Resize window"},
				{"Click [x] [_] [+]", "Close / minimize / zoom"},
				{"Click dock entry", "Open, minimize or restore"},
				{"Double-click icon", "Open application"},
			},
		},
		{
			Title:     "SPRINGBOARD:",
			Condition: "paged",
			Bindings: []Keybinding{
				{"Swipe", "Change page"},
				{"Tap icon", "Open application"},
				{"Tap home bar", "Back to springboard"},
			},
		},
	}
}

func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if len(key) == 1 {
		return key
	}
	return strings.ToLower(key)
}

func formatKey(key string) string {
	switch key {
	case "esc":
		return "Esc"
	case "tab":
		return "Tab"
	case "enter":
		return "Enter"
	case "space":
		return "Space"
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	parts := strings.Split(key, "+")
	if len(parts) == 1 {
		return key
	}
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, "+")
}
