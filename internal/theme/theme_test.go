package theme

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	tint "github.com/lrstanley/bubbletint/v2"
)

func writeTheme(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadThemeFile(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		body        string
		wantID      string
		wantDisplay string
		wantErr     bool
	}{
		{
			name:        "explicit id",
			file:        "x.json",
			body:        `{"id": "graphite", "display_name": "Graphite", "fg": "#d4d4d4", "bg": "#1e1e2e"}`,
			wantID:      "graphite",
			wantDisplay: "Graphite",
		},
		{
			name:        "id from file name",
			file:        "Bondi-Blue.json",
			body:        `{"bg": "#0095b6"}`,
			wantID:      "bondi-blue",
			wantDisplay: "bondi-blue",
		},
		{
			name:    "invalid json",
			file:    "bad.json",
			body:    "not valid json{{{",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTheme(t, t.TempDir(), tt.file, tt.body)
			got, err := ReadThemeFile(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadThemeFile: %v", err)
			}
			if got.ID != tt.wantID || got.DisplayName != tt.wantDisplay {
				t.Errorf("got id %q display %q, want %q %q", got.ID, got.DisplayName, tt.wantID, tt.wantDisplay)
			}
		})
	}
}

func TestFillDefaults(t *testing.T) {
	th := &tint.Tint{Fg: tint.FromHex("#123456"), Red: tint.FromHex("#ff0000")}
	fillDefaults(th)

	all := []*tint.Color{
		th.Fg, th.Bg, th.Cursor,
		th.Black, th.Red, th.Green, th.Yellow, th.Blue, th.Purple, th.Cyan, th.White,
		th.BrightBlack, th.BrightRed, th.BrightGreen, th.BrightYellow,
		th.BrightBlue, th.BrightPurple, th.BrightCyan, th.BrightWhite,
	}
	for i, c := range all {
		if c == nil {
			t.Errorf("color %d left nil", i)
		}
	}

	if ColorToString(th.Cursor) != ColorToString(th.Fg) {
		t.Error("cursor should default to fg")
	}
	if th.Cursor == th.Fg {
		t.Error("cursor should be a copy, not an alias")
	}
	if ColorToString(th.BrightRed) != ColorToString(th.Red) {
		t.Error("bright red should default to red")
	}
	if got := ColorToString(th.Bg); got != "#6b6b9e" {
		t.Errorf("bg = %s, want the Platinum desktop color", got)
	}
}

func TestDecodeThemeWithoutID(t *testing.T) {
	if _, err := decodeTheme([]byte(`{"fg": "#ffffff"}`), ""); !errors.Is(err, ErrNoThemeID) {
		t.Errorf("err = %v, want ErrNoThemeID", err)
	}
	th, err := decodeTheme([]byte(`{"id": "kept"}`), "ignored")
	if err != nil {
		t.Fatal(err)
	}
	if th.ID != "kept" {
		t.Errorf("id = %q, the JSON id should win over the file name", th.ID)
	}
}

func TestRegisterThemeDir(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "readme.txt", "not a theme")
	writeTheme(t, dir, "broken.json", "{")
	writeTheme(t, dir, ".hidden.json", `{"id": "platinum-test-hidden"}`)
	writeTheme(t, dir, "platinum-test-unique.JSON", `{"fg": "#ffffff"}`)
	writeTheme(t, dir, "x-first.json", `{"id": "platinum-test-dup", "fg": "#111111"}`)
	writeTheme(t, dir, "y-second.json", `{"id": "platinum-test-dup", "fg": "#222222"}`)

	tint.NewDefaultRegistry()
	loaded, err := RegisterThemeDir(dir)
	if err != nil {
		t.Fatalf("RegisterThemeDir: %v", err)
	}
	if want := []string{"platinum-test-unique", "platinum-test-dup"}; !slices.Equal(loaded, want) {
		t.Fatalf("loaded = %v, want %v", loaded, want)
	}
	ids := tint.TintIDs()
	if !slices.Contains(ids, "platinum-test-unique") {
		t.Error("custom theme not registered")
	}
	if slices.Contains(ids, "platinum-test-hidden") {
		t.Error("hidden files should be skipped")
	}

	if _, err := RegisterThemeDir(filepath.Join(dir, "missing")); err == nil {
		t.Error("missing directory should be an error")
	}
}

func TestRolesWithoutTheme(t *testing.T) {
	if err := Initialize(""); err != nil {
		t.Fatal(err)
	}
	if IsEnabled() || Current() != nil {
		t.Fatal("empty theme name should disable theming")
	}

	if got := ColorToString(MenuBarBg()); got != "#dddddd" {
		t.Errorf("MenuBarBg = %s", got)
	}
	bg, fg := TitleBarFocused()
	if ColorToString(bg) != "#c8c8c8" || ColorToString(fg) != "#000000" {
		t.Errorf("TitleBarFocused = %s on %s", ColorToString(fg), ColorToString(bg))
	}
	if ColorToString(nil) != "#000000" {
		t.Error("nil color should format as black")
	}
}
