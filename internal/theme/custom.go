package theme

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	tint "github.com/lrstanley/bubbletint/v2"
)

// ErrNoThemeID is returned for a theme that has neither an id field nor a
// usable file name.
var ErrNoThemeID = errors.New("theme has no ID")

// ThemesDir returns the directory holding user themes, creating it on first
// use.
func ThemesDir() (string, error) {
	keep, err := xdg.ConfigFile("platinum/themes/.keep")
	if err != nil {
		return "", fmt.Errorf("themes directory: %w", err)
	}
	return filepath.Dir(keep), nil
}

// RegisterThemeDir adds the themes found in dir to the bubbletint registry.
// Only visible *.json files are read. A file that fails to load, or whose
// ID an earlier file already took, is logged and left out. The IDs
// registered are returned in file name order.
func RegisterThemeDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("themes directory: %w", err)
	}

	seen := make(map[string]string)
	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.EqualFold(filepath.Ext(name), ".json") {
			continue
		}

		th, err := ReadThemeFile(filepath.Join(dir, name))
		if err != nil {
			log.Printf("Warning: theme %s not loaded: %v", name, err)
			continue
		}
		if first, dup := seen[th.ID]; dup {
			log.Printf("Warning: theme %s not loaded: id %q already used by %s", name, th.ID, first)
			continue
		}
		seen[th.ID] = name

		tint.Register(th)
		ids = append(ids, th.ID)
	}
	return ids, nil
}

// ReadThemeFile loads one bubbletint JSON theme from path.
func ReadThemeFile(path string) (*tint.Tint, error) {
	// #nosec G304 - user theme files are read from the themes directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeTheme(data, themeIDFromFile(path))
}

// decodeTheme parses a theme, naming it fallbackID when the JSON carries no
// id. The display name defaults to the ID and unset colors come from the
// Platinum palette.
func decodeTheme(data []byte, fallbackID string) (*tint.Tint, error) {
	th := new(tint.Tint)
	if err := json.Unmarshal(data, th); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	th.ID = cmp.Or(th.ID, fallbackID)
	if th.ID == "" {
		return nil, ErrNoThemeID
	}
	th.DisplayName = cmp.Or(th.DisplayName, th.ID)

	fillDefaults(th)
	return th, nil
}

// themeIDFromFile turns "Bondi-Blue.json" into "bondi-blue".
func themeIDFromFile(path string) string {
	base := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

// platinumPalette is used for colors a custom theme leaves out.
var platinumPalette = []struct {
	field func(*tint.Tint) **tint.Color
	hex   string
}{
	{func(t *tint.Tint) **tint.Color { return &t.Fg }, "#f0f0f0"},
	{func(t *tint.Tint) **tint.Color { return &t.Bg }, "#6b6b9e"},
	{func(t *tint.Tint) **tint.Color { return &t.Black }, "#000000"},
	{func(t *tint.Tint) **tint.Color { return &t.Red }, "#cc3333"},
	{func(t *tint.Tint) **tint.Color { return &t.Green }, "#339933"},
	{func(t *tint.Tint) **tint.Color { return &t.Yellow }, "#b58900"},
	{func(t *tint.Tint) **tint.Color { return &t.Blue }, "#3a3a99"},
	{func(t *tint.Tint) **tint.Color { return &t.Purple }, "#7a4a9e"},
	{func(t *tint.Tint) **tint.Color { return &t.Cyan }, "#268bd2"},
	{func(t *tint.Tint) **tint.Color { return &t.White }, "#dddddd"},
}

// brightPairs maps each bright color to the normal color it falls back to.
var brightPairs = []struct {
	bright func(*tint.Tint) **tint.Color
	normal func(*tint.Tint) *tint.Color
}{
	{func(t *tint.Tint) **tint.Color { return &t.BrightBlack }, func(t *tint.Tint) *tint.Color { return t.Black }},
	{func(t *tint.Tint) **tint.Color { return &t.BrightRed }, func(t *tint.Tint) *tint.Color { return t.Red }},
	{func(t *tint.Tint) **tint.Color { return &t.BrightGreen }, func(t *tint.Tint) *tint.Color { return t.Green }},
	{func(t *tint.Tint) **tint.Color { return &t.BrightYellow }, func(t *tint.Tint) *tint.Color { return t.Yellow }},
	{func(t *tint.Tint) **tint.Color { return &t.BrightBlue }, func(t *tint.Tint) *tint.Color { return t.Blue }},
	{func(t *tint.Tint) **tint.Color { return &t.BrightPurple }, func(t *tint.Tint) *tint.Color { return t.Purple }},
	{func(t *tint.Tint) **tint.Color { return &t.BrightCyan }, func(t *tint.Tint) *tint.Color { return t.Cyan }},
	{func(t *tint.Tint) **tint.Color { return &t.BrightWhite }, func(t *tint.Tint) *tint.Color { return t.White }},
}

// fillDefaults fills nil colors: normal colors from the Platinum palette,
// bright colors from their normal counterpart, the cursor from Fg.
func fillDefaults(t *tint.Tint) {
	for _, p := range platinumPalette {
		if c := p.field(t); *c == nil {
			*c = tint.FromHex(p.hex)
		}
	}
	for _, p := range brightPairs {
		if c := p.bright(t); *c == nil {
			*c = copyColor(p.normal(t))
		}
	}
	if t.Cursor == nil {
		t.Cursor = copyColor(t.Fg)
	}
}

func copyColor(c *tint.Color) *tint.Color {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}
