package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseUserConfigFillsDefaults(t *testing.T) {
	cfg, err := ParseUserConfig([]byte(`
[appearance]
ascii_only = true

[shell]
breakpoint = 800
`))
	if err != nil {
		t.Fatalf("ParseUserConfig: %v", err)
	}

	def := DefaultConfig()
	if cfg.Shell.Breakpoint != 800 {
		t.Errorf("Breakpoint = %d, want 800", cfg.Shell.Breakpoint)
	}
	if cfg.Shell.PageThreshold != def.Shell.PageThreshold {
		t.Errorf("PageThreshold = %v, want default %v", cfg.Shell.PageThreshold, def.Shell.PageThreshold)
	}
	if diff := cmp.Diff(def.Desktop, cfg.Desktop); diff != "" {
		t.Errorf("desktop defaults mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(def.Apps, cfg.Apps); diff != "" {
		t.Errorf("apps mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Appearance.ASCIIOnly || cfg.Appearance.Language != "en" {
		t.Errorf("appearance = %+v", cfg.Appearance)
	}
	if !cfg.AnimationsOn() || !cfg.MagnificationOn() || !cfg.WeatherOn() {
		t.Error("unset toggles should default to on")
	}
}

func TestParseUserConfigExplicitToggles(t *testing.T) {
	cfg, err := ParseUserConfig([]byte(`
[appearance]
animations_enabled = false

[weather]
enabled = false
`))
	if err != nil {
		t.Fatalf("ParseUserConfig: %v", err)
	}
	if cfg.AnimationsOn() {
		t.Error("animations_enabled = false was ignored")
	}
	if cfg.WeatherOn() {
		t.Error("weather enabled = false was ignored")
	}
}

func TestParseUserConfigApps(t *testing.T) {
	cfg, err := ParseUserConfig([]byte(`
[[apps]]
id = "notes"
content = "# Notes"

[[apps]]
id = "mail"
title = "Mail"
width = 500
titles = { fr = "Courrier" }
`))
	if err != nil {
		t.Fatalf("ParseUserConfig: %v", err)
	}

	want := []AppConfig{
		{ID: "notes", Title: "notes", Width: DefaultWindowWidthPx, Height: DefaultWindowHeightPx, Content: "# Notes"},
		{ID: "mail", Title: "Mail", Width: 500, Height: DefaultWindowHeightPx, Titles: map[string]string{"fr": "Courrier"}},
	}
	if diff := cmp.Diff(want, cfg.Apps); diff != "" {
		t.Errorf("apps mismatch (-want +got):\n%s", diff)
	}
}

func TestParseUserConfigInvalidTOML(t *testing.T) {
	if _, err := ParseUserConfig([]byte("[shell\nbreakpoint = ")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestMarshalWithHeaderRoundTrip(t *testing.T) {
	data, err := MarshalWithHeader(DefaultConfig(), "/tmp/platinum/config.toml")
	if err != nil {
		t.Fatalf("MarshalWithHeader: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Platinum Configuration File") {
		t.Error("missing header")
	}

	cfg, err := ParseUserConfig(data)
	if err != nil {
		t.Fatalf("ParseUserConfig: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("default config did not survive a round trip (-want +got):\n%s", diff)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*UserConfig)
		wantError string
		wantWarn  string
	}{
		{name: "defaults are clean", mutate: func(*UserConfig) {}},
		{
			name:      "threshold too large",
			mutate:    func(c *UserConfig) { c.Shell.PageThreshold = 1.5 },
			wantError: "page_threshold",
		},
		{
			name:      "latitude out of range",
			mutate:    func(c *UserConfig) { c.Weather.Latitude = 91 },
			wantError: "latitude",
		},
		{
			name:      "endpoint not http",
			mutate:    func(c *UserConfig) { c.Weather.Endpoint = "ftp://example.com" },
			wantError: "endpoint",
		},
		{
			name: "duplicate app",
			mutate: func(c *UserConfig) {
				c.Apps = append(c.Apps, AppConfig{ID: "about"})
			},
			wantError: "apps[3].id",
		},
		{
			name:      "shade taller than floor",
			mutate:    func(c *UserConfig) { c.Desktop.ShadeHeight = 400 },
			wantError: "shade_height",
		},
		{
			name:     "unknown default app",
			mutate:   func(c *UserConfig) { c.Shell.DefaultApp = "missing" },
			wantWarn: "default_app",
		},
		{
			name:     "unknown action",
			mutate:   func(c *UserConfig) { c.Keybindings["explode"] = []string{"x"} },
			wantWarn: "explode",
		},
		{
			name:     "unknown content style",
			mutate:   func(c *UserConfig) { c.Appearance.ContentStyle = "neon" },
			wantWarn: "content_style",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			result := ValidateConfig(cfg)

			if tt.wantError == "" && result.HasErrors() {
				t.Errorf("unexpected errors: %+v", result.Errors)
			}
			if tt.wantError != "" && !hasKey(result.Errors, tt.wantError) {
				t.Errorf("errors %+v do not mention %s", result.Errors, tt.wantError)
			}
			if tt.wantWarn == "" && result.HasWarnings() {
				t.Errorf("unexpected warnings: %+v", result.Warnings)
			}
			if tt.wantWarn != "" && !hasKey(result.Warnings, tt.wantWarn) {
				t.Errorf("warnings %+v do not mention %s", result.Warnings, tt.wantWarn)
			}
		})
	}
}

func TestValidateConfigDuplicateKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings[ActionTidyIcons] = []string{"q"}
	result := ValidateConfig(cfg)
	if !result.HasWarnings() {
		t.Error("binding q twice should warn")
	}
}

func hasKey(list []ValidationError, key string) bool {
	for _, e := range list {
		if e.Key == key {
			return true
		}
	}
	return false
}

func TestKeybindRegistry(t *testing.T) {
	r := NewKeybindRegistry(DefaultKeybindings())

	tests := []struct {
		key  string
		want string
	}{
		{"esc", ActionCloseWindow},
		{"tab", ActionNextWindow},
		{"shift+tab", ActionPrevWindow},
		{"ctrl+t", ActionTile},
		{"CTRL+T", ActionTile},
		{"M", ActionMinimizeAll},
		{"m", ActionMinimizeWindow},
		{"right", ActionNavNext},
		{"q", ActionQuit},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := r.ActionFor(tt.key)
			if !ok || got != tt.want {
				t.Errorf("ActionFor(%q) = %q, %v; want %q", tt.key, got, ok, tt.want)
			}
		})
	}

	if _, ok := r.ActionFor("f12"); ok {
		t.Error("unbound key resolved to an action")
	}
}

func TestKeybindRegistryFirstActionWins(t *testing.T) {
	r := NewKeybindRegistry(map[string][]string{
		ActionQuit:        {"x"},
		ActionCloseWindow: {"x", "esc"},
	})
	if got, _ := r.ActionFor("x"); got != ActionCloseWindow {
		t.Errorf("ActionFor(x) = %q, want %q", got, ActionCloseWindow)
	}
	if diff := cmp.Diff([]string(nil), r.KeysFor(ActionQuit)); diff != "" {
		t.Errorf("quit keys mismatch (-want +got):\n%s", diff)
	}
}

func TestGetKeybindings(t *testing.T) {
	sections := GetKeybindings(nil)
	if len(sections) < 3 || sections[0].Title != "WINDOWS" {
		t.Fatalf("unexpected sections: %+v", sections)
	}

	var found bool
	for _, b := range sections[0].Bindings {
		if b.Description == "Previous window" {
			found = true
			if b.Key != "Shift+Tab" {
				t.Errorf("display = %q, want Shift+Tab", b.Key)
			}
		}
	}
	if !found {
		t.Error("previous window binding missing")
	}
}

func TestApplyOverrides(t *testing.T) {
	defer func() {
		UseASCIIOnly, AnimationsEnabled, DockMagnification = false, true, true
	}()

	cfg := DefaultConfig()
	ApplyOverrides(Overrides{NoAnimations: true, Language: "fr", Breakpoint: 900}, cfg)

	if AnimationsEnabled {
		t.Error("NoAnimations flag ignored")
	}
	if GetAnimationDuration() != 0 {
		t.Error("durations should be zero with animations off")
	}
	if UseASCIIOnly {
		t.Error("ASCII mode enabled without a flag or setting")
	}
	if cfg.Appearance.Language != "fr" || cfg.Shell.Breakpoint != 900 {
		t.Errorf("overrides not written to config: %+v %+v", cfg.Appearance, cfg.Shell)
	}

	off := false
	cfg.Appearance.DockMagnification = &off
	cfg.Appearance.ASCIIOnly = true
	ApplyOverrides(Overrides{}, cfg)
	if DockMagnification || !UseASCIIOnly || !AnimationsEnabled {
		t.Errorf("config values not applied: magnify=%v ascii=%v anim=%v", DockMagnification, UseASCIIOnly, AnimationsEnabled)
	}
}
