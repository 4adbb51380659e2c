package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/dodorz/platinum/internal/config"
	"github.com/dodorz/platinum/internal/sysinfo"
	"github.com/dodorz/platinum/internal/weather"
)

// TickerMsg drives effects and notification fades. It only runs while
// something is animating.
type TickerMsg time.Time

// ClockMsg refreshes the menu bar clock.
type ClockMsg time.Time

// WeatherMsg carries the result of a weather fetch.
type WeatherMsg struct {
	Reading weather.Reading
	OK      bool
}

type weatherDueMsg struct{}

// SysInfoMsg carries a CPU and memory sample.
type SysInfoMsg struct {
	Sample sysinfo.Sample
	Err    error
}

type sysInfoDueMsg struct{}

// InputHandler is a function type that handles input messages.
// This allows the Update method to delegate to the input package without creating a circular dependency.
type InputHandler func(msg tea.Msg, o *OS) (tea.Model, tea.Cmd)

// inputHandler is the registered input handler function.
// This will be set by the main package to break the circular dependency.
var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init starts the clock, the system monitor and the weather poller.
// Mouse tracking and the alternate screen are requested in View.
func (m *OS) Init() tea.Cmd {
	cmds := []tea.Cmd{
		ClockCmd(),
		ReadSysInfoCmd(),
	}
	if m.Weather != nil {
		cmds = append(cmds, FetchWeatherCmd(m.Weather))
	}
	return tea.Batch(cmds...)
}

// TickCmd creates a command that generates tick messages at 60 FPS.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.NormalFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// ClockCmd schedules the next clock refresh.
func ClockCmd() tea.Cmd {
	return tea.Tick(config.ClockUpdateInterval, func(t time.Time) tea.Msg {
		return ClockMsg(t)
	})
}

// FetchWeatherCmd reads the current weather. Concurrent callers share one
// request inside the provider.
func FetchWeatherCmd(p *weather.Provider) tea.Cmd {
	return func() tea.Msg {
		r, ok := p.Current(context.Background())
		return WeatherMsg{Reading: r, OK: ok}
	}
}

// ReadSysInfoCmd samples CPU and memory usage.
func ReadSysInfoCmd() tea.Cmd {
	return func() tea.Msg {
		s, err := sysinfo.Read(context.Background())
		return SysInfoMsg{Sample: s, Err: err}
	}
}

func (m *OS) weatherRefresh() time.Duration {
	if mins := m.Config.Weather.RefreshMinutes; mins > 0 {
		return time.Duration(mins) * time.Minute
	}
	return config.DefaultWeatherRefresh
}

// Update handles all incoming messages and updates the application state.
func (m *OS) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickerMsg:
		m.ticking = false
		m.advanceEffects()
		return m, m.ensureTicking()

	case ClockMsg:
		return m, ClockCmd()

	case weatherDueMsg:
		if m.Weather == nil {
			return m, nil
		}
		return m, FetchWeatherCmd(m.Weather)

	case WeatherMsg:
		if m.Weather == nil {
			return m, nil
		}
		if msg.OK {
			m.WeatherText = msg.Reading.String()
		} else if err := m.Weather.LastError(); err != nil {
			m.LogWarn("Weather unavailable: %v", err)
		}
		return m, tea.Tick(m.weatherRefresh(), func(time.Time) tea.Msg {
			return weatherDueMsg{}
		})

	case sysInfoDueMsg:
		return m, ReadSysInfoCmd()

	case SysInfoMsg:
		if msg.Err == nil {
			s := msg.Sample
			m.SysInfo = &s
		}
		return m, tea.Tick(config.SysInfoUpdateInterval, func(time.Time) tea.Msg {
			return sysInfoDueMsg{}
		})

	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
		return m, m.ensureTicking()
	}

	var model tea.Model = m
	var cmd tea.Cmd
	if inputHandler != nil {
		model, cmd = inputHandler(msg, m)
	}
	if m.quitting {
		return model, tea.Quit
	}
	return model, tea.Batch(cmd, m.ensureTicking())
}

// needsTick reports whether anything is animating.
func (m *OS) needsTick() bool {
	return m.Effects.HasActive() || len(m.Notifications) > 0
}

// ensureTicking starts the frame ticker if something animates and no tick
// is already pending.
func (m *OS) ensureTicking() tea.Cmd {
	if m.ticking || !m.needsTick() {
		return nil
	}
	m.ticking = true
	return TickCmd()
}

// advanceEffects steps effects and notifications to the current time and
// forgets finished ghost outlines.
func (m *OS) advanceEffects() {
	m.Effects.Advance()
	for id := range m.ghosts {
		if m.Effects.For(id) == nil {
			delete(m.ghosts, id)
		}
	}
	m.CleanupNotifications()
}

// FilterMouseMotion is a tea.WithFilter function that drops pointer motion
// nothing is waiting for.
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	motion, ok := msg.(tea.MouseMotionMsg)
	if !ok {
		return msg
	}
	m, ok := model.(*OS)
	if !ok {
		return msg
	}
	if m.WantsMotion(motion.Mouse().Y) {
		return msg
	}
	return nil
}
