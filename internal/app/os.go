// Package app implements the Platinum desktop as a Bubble Tea model. It
// wires the window manager, dock, pointer, shell and launcher state
// together and presents them in a terminal.
package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dodorz/platinum/internal/config"
	"github.com/dodorz/platinum/internal/content"
	"github.com/dodorz/platinum/internal/desktop"
	"github.com/dodorz/platinum/internal/dock"
	"github.com/dodorz/platinum/internal/geometry"
	"github.com/dodorz/platinum/internal/menu"
	"github.com/dodorz/platinum/internal/pointer"
	"github.com/dodorz/platinum/internal/shell"
	"github.com/dodorz/platinum/internal/sysinfo"
	"github.com/dodorz/platinum/internal/ui"
	"github.com/dodorz/platinum/internal/weather"
	"github.com/dodorz/platinum/internal/window"
	"github.com/dodorz/platinum/internal/wm"
	"github.com/google/uuid"
)

// Notification represents a temporary notification message.
type Notification struct {
	ID        string
	Message   string
	Type      string // "info", "success", "warning", "error"
	StartTime time.Time
	Duration  time.Duration
	Animation *ui.Animation
}

// LogMessage represents a log entry with timestamp and level.
type LogMessage struct {
	Time    time.Time
	Level   string // INFO, WARN, ERROR
	Message string
}

// ghost is the outline drawn by the genie and restore effects, in cells.
type ghost struct {
	from geometry.Rect
	to   geometry.Rect
}

// OS is the desktop model.
type OS struct {
	Config *config.UserConfig
	Keys   *config.KeybindRegistry

	// Terminal size in cells. Zero until the first WindowSizeMsg.
	Width  int
	Height int

	Registry    *window.Registry
	WM          *wm.Manager
	Dock        *dock.Dock
	Pointer     *pointer.Controller
	Shell       *shell.Controller
	Springboard *shell.Springboard
	Menus       *menu.Bar
	Icons       *desktop.Icons
	Effects     *ui.Tracker
	Content     *content.Provider
	Localizer   *content.Localizer

	Weather     *weather.Provider
	WeatherText string
	SysInfo     *sysinfo.Sample

	ShowGrid        bool
	ShowLogs        bool
	LogMessages     []LogMessage
	LogScrollOffset int
	Notifications   []Notification

	// HoverX and HoverY are the last pointer cell, -1 when unknown.
	HoverX int
	HoverY int

	// IconDrag is the desktop icon being dragged, or "".
	IconDrag string

	// Springboard tap tracking in the paged shell.
	swipeStartCol int
	swipeStartRow int
	swiping       bool
	snapFrom      float64

	ghosts            map[string]ghost
	firstPagedPending bool
	ticking           bool
	quitting          bool

	debug *log.Logger
	now   func() time.Time
}

// Options configures a new OS.
type Options struct {
	Config  *config.UserConfig
	Weather *weather.Provider
	Debug   *log.Logger
	Now     func() time.Time
	Width   int
	Height  int
}

func createID() string {
	return uuid.New().String()
}

// New builds the desktop from the configured applications.
func New(opts Options) *OS {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := &OS{
		Config:  cfg,
		Keys:    config.NewKeybindRegistry(cfg.Keybindings),
		Weather: opts.Weather,
		HoverX:  -1,
		HoverY:  -1,
		ghosts:  make(map[string]ghost),
		debug:   opts.Debug,
		now:     now,
	}

	defaults := make(map[string]string, len(cfg.Apps))
	titles := make(map[string]map[string]string, len(cfg.Apps))
	docs := make(map[string]string, len(cfg.Apps))
	for _, a := range cfg.Apps {
		defaults[a.ID] = a.Title
		titles[a.ID] = a.Titles
		docs[a.ID] = a.Content
	}
	m.Localizer = content.NewLocalizer(defaults, titles)
	m.Content = content.NewProvider(cfg.Appearance.ContentStyle, docs)

	lang := cfg.Appearance.Language
	defs := make([]window.Definition, 0, len(cfg.Apps))
	dockItems := make([]dock.Item, 0, len(cfg.Apps))
	icons := make([]desktop.Icon, 0, len(cfg.Apps))
	menuApps := make([]menu.App, 0, len(cfg.Apps))
	ids := make([]string, 0, len(cfg.Apps))
	for _, a := range cfg.Apps {
		title := m.Localizer.Title(a.ID, lang)
		defs = append(defs, window.Definition{ID: a.ID, Title: title, Width: a.Width, Height: a.Height})
		dockItems = append(dockItems, dock.Item{ID: a.ID, Label: title, Icon: a.Icon})
		icons = append(icons, desktop.Icon{AppID: a.ID, Label: title, Glyph: a.Icon})
		menuApps = append(menuApps, menu.App{ID: a.ID, Title: title})
		ids = append(ids, a.ID)
	}

	m.Registry = window.NewRegistry(defs)
	m.WM = wm.New(m.Registry, geometry.Size{}, managerOptions(cfg.Desktop))
	m.Dock = dock.New(m.WM, dockItems)
	m.Pointer = pointer.NewController(m.WM,
		pointer.WithClock(now),
		pointer.WithDoubleClick(config.DoubleClickInterval),
	)
	m.Menus = menu.NewBar(menu.DefaultMenus(menuApps))
	m.Icons = desktop.New(icons, desktop.DefaultLayout(), geometry.Size{})
	m.Icons.SetClock(now)
	m.Springboard = shell.NewSpringboard(ids, cfg.Shell.IconsPerPage, cfg.Shell.PageThreshold)
	m.Effects = ui.NewTracker(effectDuration)
	m.Effects.SetClock(now)

	m.Shell = shell.NewController(cfg.Shell.Breakpoint, func() {
		m.firstPagedPending = true
	})
	m.Shell.OnChange(m.onViewportChange)
	m.WM.Subscribe(m.onWindowEvent)

	if opts.Width > 0 && opts.Height > 0 {
		m.Resize(opts.Width, opts.Height)
	}

	m.LogInfo("Desktop ready with %d applications", m.Registry.Len())
	return m
}

// managerOptions maps the [desktop] settings onto window manager options.
func managerOptions(d config.DesktopConfig) wm.Options {
	return wm.Options{
		Limits: geometry.Limits{
			EdgeMargin: d.EdgeMargin,
			TopInset:   d.MenuBarHeight,
			MinWidth:   d.MinWidth,
			MinHeight:  d.MinHeight,
		},
		Stagger: wm.Stagger{
			BaseX:  d.StaggerBaseX,
			BaseY:  d.StaggerBaseY,
			Step:   d.StaggerStep,
			RangeX: d.StaggerRangeX,
			RangeY: d.StaggerRangeY,
		},
		Zoom: wm.ZoomFrame{
			Left:            d.ZoomLeft,
			Top:             d.ZoomTop,
			HorizontalInset: d.ZoomInsetX,
			VerticalInset:   d.ZoomInsetY,
			MinHeight:       wm.DefaultOptions().Zoom.MinHeight,
		},
		ShadeHeight: d.ShadeHeight,
		TilePadding: d.TilePadding,
		TileTop:     d.TileTop,
	}
}

func effectDuration(kind ui.EffectKind) time.Duration {
	switch kind {
	case ui.EffectDockBounce, ui.EffectPageSnap:
		return config.GetFastAnimationDuration()
	default:
		return config.GetAnimationDuration()
	}
}

// Now returns the model's current time.
func (m *OS) Now() time.Time {
	return m.now()
}

// Resize applies a new terminal size in cells.
func (m *OS) Resize(width, height int) {
	m.Width = max(width, 1)
	m.Height = max(height, 1)
	if m.Shell.Resize(m.Width*m.cellW(), m.Height*m.cellH()) {
		m.LogInfo("[RESIZE] %dx%d, %s shell", m.Width, m.Height, m.Shell.Mode())
		m.Menus.CloseAll()
		m.Pointer.PointerUp()
		m.IconDrag = ""
		m.swiping = false
		m.Springboard.CancelDrag()
		m.Effects.Cancel(pageSnapTarget)
	}

	if m.firstPagedPending {
		m.firstPagedPending = false
		m.openDefaultApp()
	}
}

// onViewportChange keeps every surface in step with the viewport.
func (m *OS) onViewportChange(_ shell.Mode, viewport geometry.Size) {
	surface := m.DesktopSurface()
	m.WM.SetSurface(surface)
	m.Icons.SetSurface(surface)
	m.Springboard.SetWidth(viewport.Width)
}

// openDefaultApp opens the configured app zoomed and brings its paged view
// to the front. It runs once, the first time the paged shell shows.
func (m *OS) openDefaultApp() {
	id := m.Config.Shell.DefaultApp
	w, ok := m.WM.Window(id)
	if !ok {
		return
	}
	m.WM.Open(id)
	if !w.IsZoomed() {
		m.WM.ToggleZoom(id)
	}
	m.Springboard.Launch(id)
	m.LogInfo("Opened %s for the paged shell", id)
}

// onWindowEvent turns window manager transitions into effects. Effects
// only decorate: the transition has already been committed.
func (m *OS) onWindowEvent(e wm.Event) {
	m.debugf("window event", "kind", e.Kind, "id", e.WindowID)

	switch e.Kind {
	case wm.EventMinimized:
		m.Pointer.Cancel(e.WindowID)
		m.startGhost(ui.EffectGenie, e.WindowID)
		if m.Springboard.Foreground() == e.WindowID {
			m.Springboard.Home()
		}
	case wm.EventRestored:
		m.startGhost(ui.EffectRestore, e.WindowID)
	case wm.EventOpened:
		// Opening straight from the dock cuts a running genie short.
		m.Effects.Cancel(e.WindowID)
		delete(m.ghosts, e.WindowID)
		m.Effects.Start(ui.EffectDockBounce, dockTarget(e.WindowID))
	case wm.EventClosed:
		m.Pointer.Cancel(e.WindowID)
		m.Effects.Cancel(e.WindowID)
		delete(m.ghosts, e.WindowID)
		if m.Springboard.Foreground() == e.WindowID {
			m.Springboard.Home()
		}
	}
}

func dockTarget(id string) string {
	return "dock/" + id
}

// startGhost records the outline path for a genie or restore effect and
// starts it. A zero length effect leaves nothing to draw.
func (m *OS) startGhost(kind ui.EffectKind, id string) {
	w, ok := m.WM.Window(id)
	if !ok || m.Width == 0 {
		return
	}
	win := m.cellRect(w.Bounds)
	slot, ok := m.dockEntryRect(id)
	if !ok {
		return
	}

	g := ghost{from: win, to: slot}
	if kind == ui.EffectRestore {
		g = ghost{from: slot, to: win}
	}

	a := m.Effects.Start(kind, id)
	if a.Complete {
		delete(m.ghosts, id)
		return
	}
	m.ghosts[id] = g
}

// Log adds a new log message to the log buffer.
func (m *OS) Log(level, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	m.LogMessages = append(m.LogMessages, LogMessage{
		Time:    m.now(),
		Level:   level,
		Message: message,
	})
	if len(m.LogMessages) > config.MaxLogMessages {
		m.LogMessages = m.LogMessages[len(m.LogMessages)-config.MaxLogMessages:]
	}

	// Stick to the newest entries while the viewer is scrolled to the end
	if m.ShowLogs {
		_, maxScroll := m.logScrollBounds()
		if m.LogScrollOffset >= maxScroll-1 {
			m.LogScrollOffset = maxScroll
		}
	}

	if m.debug != nil {
		switch level {
		case "ERROR":
			m.debug.Error(message)
		case "WARN":
			m.debug.Warn(message)
		default:
			m.debug.Info(message)
		}
	}
}

// LogInfo logs an informational message.
func (m *OS) LogInfo(format string, args ...any) {
	m.Log("INFO", format, args...)
}

// LogWarn logs a warning message.
func (m *OS) LogWarn(format string, args ...any) {
	m.Log("WARN", format, args...)
}

// LogError logs an error message.
func (m *OS) LogError(format string, args ...any) {
	m.Log("ERROR", format, args...)
}

func (m *OS) debugf(msg string, keyvals ...any) {
	if m.debug != nil {
		m.debug.Debug(msg, keyvals...)
	}
}

// ShowNotification displays a temporary notification with a fade in.
func (m *OS) ShowNotification(message, notifType string, duration time.Duration) {
	now := m.now()
	notif := Notification{
		ID:        createID(),
		Message:   message,
		Type:      notifType,
		StartTime: now,
		Duration:  duration,
		Animation: &ui.Animation{
			StartTime: now,
			Duration:  config.GetAnimationDuration(),
		},
	}
	if notif.Animation.Duration <= 0 {
		notif.Animation.Progress = 1
		notif.Animation.Complete = true
	}

	m.Notifications = append(m.Notifications, notif)
	if len(m.Notifications) > config.MaxNotifications {
		m.Notifications = m.Notifications[len(m.Notifications)-config.MaxNotifications:]
	}

	switch notifType {
	case "error":
		m.LogError("%s", message)
	case "warning":
		m.LogWarn("%s", message)
	default:
		m.LogInfo("%s", message)
	}
}

// CleanupNotifications removes expired notifications and advances the fade
// of the others.
func (m *OS) CleanupNotifications() {
	now := m.now()
	active := m.Notifications[:0]
	for _, notif := range m.Notifications {
		if now.Sub(notif.StartTime) >= notif.Duration {
			continue
		}
		if a := notif.Animation; a != nil && !a.Complete {
			a.Progress = min(1, float64(now.Sub(a.StartTime))/float64(a.Duration))
			a.Complete = a.Progress >= 1
		}
		active = append(active, notif)
	}
	clear(m.Notifications[len(active):])
	m.Notifications = active
}
