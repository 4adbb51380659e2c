package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

const configRelPath = "platinum/config.toml"

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Appearance  AppearanceConfig    `toml:"appearance"`
	Desktop     DesktopConfig       `toml:"desktop"`
	Shell       ShellConfig         `toml:"shell"`
	Weather     WeatherConfig       `toml:"weather"`
	Keybindings map[string][]string `toml:"keybindings"`
	Apps        []AppConfig         `toml:"apps"`
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	Theme             string `toml:"theme"`              // Color theme name (e.g., dracula, nord, my-custom-theme)
	ASCIIOnly         bool   `toml:"ascii_only"`         // Use ASCII characters instead of glyphs
	AnimationsEnabled *bool  `toml:"animations_enabled"` // Enable genie, restore, bounce and page effects (default: true)
	DockMagnification *bool  `toml:"dock_magnification"` // Magnify dock entries under the pointer (default: true)
	Language          string `toml:"language"`           // Language code for window titles (default: en)
	ContentStyle      string `toml:"content_style"`      // Markdown style: dark, light, notty, ascii (default: dark)
}

// DesktopConfig holds the desktop geometry, in abstract pixels.
type DesktopConfig struct {
	CellWidth     int `toml:"cell_width"`      // Pixels per terminal column (default: 8)
	CellHeight    int `toml:"cell_height"`     // Pixels per terminal row (default: 16)
	MenuBarHeight int `toml:"menu_bar_height"` // Top strip windows cannot enter (default: 24)
	EdgeMargin    int `toml:"edge_margin"`     // Free margin on the other edges (default: 2)
	MinWidth      int `toml:"min_width"`       // Resize floor (default: 300)
	MinHeight     int `toml:"min_height"`      // Resize floor (default: 180)
	ShadeHeight   int `toml:"shade_height"`    // Height of a shaded window (default: 22)
	ZoomLeft      int `toml:"zoom_left"`       // Zoomed window x (default: 10)
	ZoomTop       int `toml:"zoom_top"`        // Zoomed window y (default: 30)
	ZoomInsetX    int `toml:"zoom_inset_x"`    // Surface width minus zoomed width (default: 20)
	ZoomInsetY    int `toml:"zoom_inset_y"`    // Surface height minus zoomed height (default: 40)
	StaggerBaseX  int `toml:"stagger_base_x"`  // First window x (default: 80)
	StaggerBaseY  int `toml:"stagger_base_y"`  // First window y (default: 80)
	StaggerStep   int `toml:"stagger_step"`    // Offset between first opens (default: 16)
	StaggerRangeX int `toml:"stagger_range_x"` // Horizontal wrap of the stagger (default: 160)
	StaggerRangeY int `toml:"stagger_range_y"` // Vertical wrap of the stagger (default: 120)
	TilePadding   int `toml:"tile_padding"`    // Gap between tiled windows (default: 8)
	TileTop       int `toml:"tile_top"`        // Top of the tiling area (default: 30)
}

// ShellConfig holds the responsive shell settings
type ShellConfig struct {
	Breakpoint    int     `toml:"breakpoint"`     // Widest viewport in pixels shown paged (default: 640)
	PageThreshold float64 `toml:"page_threshold"` // Swipe fraction that commits a page (default: 0.15)
	IconsPerPage  int     `toml:"icons_per_page"` // Springboard page capacity (default: 12)
	DefaultApp    string  `toml:"default_app"`    // App opened the first time the paged shell shows (default: about)
}

// WeatherConfig holds the menu bar weather settings
type WeatherConfig struct {
	Enabled        *bool   `toml:"enabled"`         // Show the weather reading (default: true)
	Latitude       float64 `toml:"latitude"`        // Location latitude
	Longitude      float64 `toml:"longitude"`       // Location longitude
	Endpoint       string  `toml:"endpoint"`        // Open-Meteo compatible forecast endpoint
	RefreshMinutes int     `toml:"refresh_minutes"` // Minutes between fetches (default: 15)
	TimeoutSeconds int     `toml:"timeout_seconds"` // Request timeout (default: 5)
}

// AppConfig declares one application: a window, a dock entry, a desktop
// icon and a springboard icon.
type AppConfig struct {
	ID      string            `toml:"id"`
	Title   string            `toml:"title"`
	Icon    string            `toml:"icon"`
	Width   int               `toml:"width"`
	Height  int               `toml:"height"`
	Content string            `toml:"content"` // Markdown body
	Titles  map[string]string `toml:"titles"`  // Localized titles by language code
}

// DefaultWeatherEndpoint is the public Open-Meteo forecast API.
const DefaultWeatherEndpoint = "https://api.open-meteo.com/v1/forecast"

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Appearance: AppearanceConfig{
			Language:     "en",
			ContentStyle: "dark",
		},
		Desktop: DesktopConfig{
			CellWidth:     CellWidthPx,
			CellHeight:    CellHeightPx,
			MenuBarHeight: MenuBarHeightPx,
			EdgeMargin:    EdgeMarginPx,
			MinWidth:      MinWindowWidthPx,
			MinHeight:     MinWindowHeightPx,
			ShadeHeight:   ShadeHeightPx,
			ZoomLeft:      10,
			ZoomTop:       30,
			ZoomInsetX:    20,
			ZoomInsetY:    40,
			StaggerBaseX:  80,
			StaggerBaseY:  80,
			StaggerStep:   16,
			StaggerRangeX: 160,
			StaggerRangeY: 120,
			TilePadding:   8,
			TileTop:       30,
		},
		Shell: ShellConfig{
			Breakpoint:    640,
			PageThreshold: 0.15,
			IconsPerPage:  12,
			DefaultApp:    "about",
		},
		Weather: WeatherConfig{
			Latitude:       37.33,
			Longitude:      -122.03,
			Endpoint:       DefaultWeatherEndpoint,
			RefreshMinutes: int(DefaultWeatherRefresh.Minutes()),
			TimeoutSeconds: int(DefaultWeatherTimeout.Seconds()),
		},
		Keybindings: DefaultKeybindings(),
		Apps:        DefaultApps(),
	}
}

// DefaultApps returns the applications shipped with the desktop.
func DefaultApps() []AppConfig {
	return []AppConfig{
		{
			ID:     "about",
			Title:  "About",
			Icon:   "i",
			Width:  460,
			Height: 320,
			Titles: map[string]string{"fr": "À propos", "de": "Über", "es": "Acerca de"},
			Content: `# About

A small desktop in the style of **Mac OS 9 Platinum**, drawn in your terminal.

- Drag windows by their title bar, resize from the corner.
- Double-click a title bar to shade the window.
- Click a dock entry to minimize or restore its window.`,
		},
		{
			ID:     "projects",
			Title:  "Projects",
			Icon:   "P",
			Width:  520,
			Height: 360,
			Titles: map[string]string{"fr": "Projets", "de": "Projekte", "es": "Proyectos"},
			Content: `# Projects

| Name | Description |
|------|-------------|
| platinum | This desktop |
| tiles | Grid window arrangement |
| dock | Minimize and restore, the classic way |`,
		},
		{
			ID:     "contact",
			Title:  "Contact",
			Icon:   "@",
			Width:  380,
			Height: 260,
			Titles: map[string]string{"fr": "Contact", "de": "Kontakt", "es": "Contacto"},
			Content: `# Contact

Open an issue on the project page, or say hello over SSH:

    ssh -p 2222 localhost`,
		},
	}
}

// LoadUserConfig loads the user configuration from XDG config directory
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		return createDefaultConfig()
	}

	// #nosec G304 - configPath is from XDG search, reading user config is intentional
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := ParseUserConfig(data)
	if err != nil {
		return nil, err
	}

	validation := ValidateConfig(cfg)
	if validation.HasErrors() {
		for _, err := range validation.Errors {
			fmt.Fprintf(os.Stderr, "Config error in [%s]: %s - %s\n", err.Field, err.Key, err.Message)
		}
		return nil, fmt.Errorf("configuration has %d error(s), please fix and restart", len(validation.Errors))
	}

	if validation.HasWarnings() {
		for _, warn := range validation.Warnings {
			tea.Println(fmt.Sprintf("Config warning in [%s]: %s - %s", warn.Field, warn.Key, warn.Message))
		}
	}

	return cfg, nil
}

// ParseUserConfig decodes TOML and fills every missing setting with defaults.
func ParseUserConfig(data []byte) (*UserConfig, error) {
	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaultCfg := DefaultConfig()
	fillMissingAppearance(&cfg, defaultCfg)
	fillMissingDesktop(&cfg, defaultCfg)
	fillMissingShell(&cfg, defaultCfg)
	fillMissingWeather(&cfg, defaultCfg)
	fillMissingKeybinds(&cfg, defaultCfg)
	fillMissingApps(&cfg, defaultCfg)

	return &cfg, nil
}

// createDefaultConfig creates a default config file in the user's config directory
func createDefaultConfig() (*UserConfig, error) {
	cfg := DefaultConfig()
	if _, err := WriteDefaultConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteDefaultConfig writes the default configuration, replacing any
// existing file, and returns its path.
func WriteDefaultConfig() (string, error) {
	configPath, err := xdg.ConfigFile(configRelPath)
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := MarshalWithHeader(DefaultConfig(), configPath)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}

// MarshalWithHeader renders cfg as TOML preceded by the documentation header.
func MarshalWithHeader(cfg *UserConfig, configPath string) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# Platinum Configuration File\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n")
	sb.WriteString("# For keybindings documentation, run: platinum keybinds list\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# APPEARANCE\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# theme: Color theme name (e.g., dracula, nord, my-custom-theme)\n")
	sb.WriteString("#   Leave empty for the built-in Platinum grays.\n")
	sb.WriteString("#   Custom themes: ~/.config/platinum/themes/*.json\n")
	sb.WriteString("#\n")
	sb.WriteString("# language: Language code used for window titles (en, fr, de, es)\n")
	sb.WriteString("#\n")
	sb.WriteString("# content_style: Markdown style for window content\n")
	sb.WriteString("#   Options: dark, light, notty, ascii\n")
	sb.WriteString("#\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# DESKTOP\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# All desktop sizes are abstract pixels. One terminal cell is\n")
	sb.WriteString("# cell_width x cell_height pixels.\n")
	sb.WriteString("#\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# SHELL\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# breakpoint: Viewports this wide (in pixels) or narrower use the paged shell\n")
	sb.WriteString("#   Default: 640 (an 80 column terminal)\n")
	sb.WriteString("#\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# WEATHER\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# enabled: Fetch the current temperature for the menu bar\n")
	sb.WriteString("# endpoint: Any Open-Meteo compatible forecast URL\n")
	sb.WriteString("# ============================================================================\n\n")

	sb.Write(data)
	return []byte(sb.String()), nil
}

// fillMissingAppearance fills in any missing appearance settings with defaults
func fillMissingAppearance(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.Language == "" {
		cfg.Appearance.Language = defaultCfg.Appearance.Language
	}
	if cfg.Appearance.ContentStyle == "" {
		cfg.Appearance.ContentStyle = defaultCfg.Appearance.ContentStyle
	}
}

// fillMissingDesktop fills zero geometry fields with defaults
func fillMissingDesktop(cfg, defaultCfg *UserConfig) {
	d, def := &cfg.Desktop, defaultCfg.Desktop
	fillInt(&d.CellWidth, def.CellWidth)
	fillInt(&d.CellHeight, def.CellHeight)
	fillInt(&d.MenuBarHeight, def.MenuBarHeight)
	fillInt(&d.EdgeMargin, def.EdgeMargin)
	fillInt(&d.MinWidth, def.MinWidth)
	fillInt(&d.MinHeight, def.MinHeight)
	fillInt(&d.ShadeHeight, def.ShadeHeight)
	fillInt(&d.ZoomLeft, def.ZoomLeft)
	fillInt(&d.ZoomTop, def.ZoomTop)
	fillInt(&d.ZoomInsetX, def.ZoomInsetX)
	fillInt(&d.ZoomInsetY, def.ZoomInsetY)
	fillInt(&d.StaggerBaseX, def.StaggerBaseX)
	fillInt(&d.StaggerBaseY, def.StaggerBaseY)
	fillInt(&d.StaggerStep, def.StaggerStep)
	fillInt(&d.StaggerRangeX, def.StaggerRangeX)
	fillInt(&d.StaggerRangeY, def.StaggerRangeY)
	fillInt(&d.TilePadding, def.TilePadding)
	fillInt(&d.TileTop, def.TileTop)
}

// fillMissingShell fills in any missing shell settings with defaults
func fillMissingShell(cfg, defaultCfg *UserConfig) {
	fillInt(&cfg.Shell.Breakpoint, defaultCfg.Shell.Breakpoint)
	fillInt(&cfg.Shell.IconsPerPage, defaultCfg.Shell.IconsPerPage)
	if cfg.Shell.PageThreshold <= 0 {
		cfg.Shell.PageThreshold = defaultCfg.Shell.PageThreshold
	}
	if cfg.Shell.DefaultApp == "" {
		cfg.Shell.DefaultApp = defaultCfg.Shell.DefaultApp
	}
}

// fillMissingWeather fills in any missing weather settings with defaults.
// A zero latitude and longitude pair is treated as unset.
func fillMissingWeather(cfg, defaultCfg *UserConfig) {
	w, def := &cfg.Weather, defaultCfg.Weather
	if w.Endpoint == "" {
		w.Endpoint = def.Endpoint
	}
	if w.Latitude == 0 && w.Longitude == 0 {
		w.Latitude, w.Longitude = def.Latitude, def.Longitude
	}
	fillInt(&w.RefreshMinutes, def.RefreshMinutes)
	fillInt(&w.TimeoutSeconds, def.TimeoutSeconds)
}

// fillMissingKeybinds adds default bindings for actions the user did not bind
func fillMissingKeybinds(cfg, defaultCfg *UserConfig) {
	if cfg.Keybindings == nil {
		cfg.Keybindings = make(map[string][]string)
	}
	fillMapDefaults(cfg.Keybindings, defaultCfg.Keybindings)
}

// fillMissingApps uses the default apps when none are declared, and fills
// per-app sizes otherwise
func fillMissingApps(cfg, defaultCfg *UserConfig) {
	if len(cfg.Apps) == 0 {
		cfg.Apps = defaultCfg.Apps
		return
	}
	for i := range cfg.Apps {
		app := &cfg.Apps[i]
		if app.Title == "" {
			app.Title = app.ID
		}
		fillInt(&app.Width, DefaultWindowWidthPx)
		fillInt(&app.Height, DefaultWindowHeightPx)
	}
}

// AnimationsOn reports the effective animations setting.
func (c *UserConfig) AnimationsOn() bool {
	return c.Appearance.AnimationsEnabled == nil || *c.Appearance.AnimationsEnabled
}

// MagnificationOn reports the effective dock magnification setting.
func (c *UserConfig) MagnificationOn() bool {
	return c.Appearance.DockMagnification == nil || *c.Appearance.DockMagnification
}

// WeatherOn reports the effective weather setting.
func (c *UserConfig) WeatherOn() bool {
	return c.Weather.Enabled == nil || *c.Weather.Enabled
}

func fillInt(target *int, def int) {
	if *target <= 0 {
		*target = def
	}
}

func fillMapDefaults(target, defaults map[string][]string) {
	for k, v := range defaults {
		if _, exists := target[k]; !exists {
			target[k] = v
		}
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile(configRelPath)
	}
	return path, nil
}
