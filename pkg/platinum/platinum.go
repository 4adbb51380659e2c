// Package platinum provides the Platinum desktop as a Bubble Tea model that
// can be embedded in other applications or run on its own.
//
// Platinum draws a classic desktop in the terminal: a menu bar, draggable
// windows, a dock and desktop icons. Narrow terminals get a paged
// springboard with full screen app views instead.
//
// # Basic Usage
//
//	model := platinum.New()
//	p := tea.NewProgram(model, platinum.ProgramOptions()...)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Configuration
//
//	model := platinum.New(
//		platinum.WithTheme("dracula"),
//		platinum.WithAnimations(false),
//		platinum.WithSize(120, 40),
//	)
package platinum

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/dodorz/platinum/internal/app"
	"github.com/dodorz/platinum/internal/config"
	"github.com/dodorz/platinum/internal/input"
	"github.com/dodorz/platinum/internal/theme"
	"github.com/dodorz/platinum/internal/weather"
)

// Model is the desktop model that implements tea.Model.
type Model = app.OS

// Options configures a desktop.
type Options struct {
	// Theme is the color theme name (e.g., "dracula", "nord").
	// Leave empty for the built-in Platinum grays.
	Theme string

	// Animations enables genie, restore, dock bounce and page snap effects.
	Animations bool

	// ASCIIOnly replaces box drawing and symbols with ASCII.
	ASCIIOnly bool

	// Width and Height are the initial size in cells (set by the program if 0).
	Width  int
	Height int

	// UserConfig is a custom configuration. If nil, the user's config file
	// is loaded, falling back to defaults.
	UserConfig *config.UserConfig

	// Weather is shared by every model it is passed to. If nil and the
	// configuration enables weather, a provider is created.
	Weather *weather.Provider
}

// Option is a functional option for configuring the desktop.
type Option func(*Options)

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) {
		o.Theme = name
	}
}

// WithAnimations enables or disables effects.
func WithAnimations(enabled bool) Option {
	return func(o *Options) {
		o.Animations = enabled
	}
}

// WithASCIIOnly enables ASCII-only rendering.
func WithASCIIOnly(enabled bool) Option {
	return func(o *Options) {
		o.ASCIIOnly = enabled
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithUserConfig sets a custom configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		o.UserConfig = cfg
	}
}

// WithWeather sets the weather provider.
func WithWeather(p *weather.Provider) Option {
	return func(o *Options) {
		o.Weather = p
	}
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{Animations: true}
}

// New creates a desktop with the given options.
func New(opts ...Option) *Model {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return newModel(options)
}

func newModel(options Options) *Model {
	app.SetInputHandler(input.HandleInput)

	if options.ASCIIOnly {
		config.UseASCIIOnly = true
	}
	if !options.Animations {
		config.AnimationsEnabled = false
	}
	if options.Theme != "" {
		_ = theme.Initialize(options.Theme)
	}

	userConfig := options.UserConfig
	if userConfig == nil {
		var err error
		userConfig, err = config.LoadUserConfig()
		if err != nil {
			userConfig = config.DefaultConfig()
		}
	}

	provider := options.Weather
	if provider == nil && userConfig.WeatherOn() {
		provider = NewWeather(userConfig)
	}

	return app.New(app.Options{
		Config:  userConfig,
		Weather: provider,
		Width:   options.Width,
		Height:  options.Height,
	})
}

// NewWeather creates a weather provider from the [weather] settings.
func NewWeather(cfg *config.UserConfig) *weather.Provider {
	w := cfg.Weather
	return weather.New(weather.Config{
		Endpoint:  w.Endpoint,
		Latitude:  w.Latitude,
		Longitude: w.Longitude,
		Refresh:   time.Duration(w.RefreshMinutes) * time.Minute,
		Timeout:   time.Duration(w.TimeoutSeconds) * time.Second,
	})
}

// ProgramOptions returns recommended tea.ProgramOption values:
//
//	model := platinum.New()
//	p := tea.NewProgram(model, platinum.ProgramOptions()...)
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
		tea.WithFilter(FilterMouseMotion),
	}
}

// FilterMouseMotion is a tea.WithFilter function that drops mouse motion
// unless a drag, swipe, open menu or the dock magnification needs it.
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	return app.FilterMouseMotion(model, msg)
}
