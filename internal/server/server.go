// Package server serves the desktop over SSH. Every session gets its own
// desktop; the weather provider is shared so sessions reuse one fetch.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/activeterm"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/dodorz/platinum/internal/app"
	"github.com/dodorz/platinum/internal/config"
	"github.com/dodorz/platinum/internal/input"
	"github.com/dodorz/platinum/internal/weather"
	"golang.org/x/sync/errgroup"
)

const (
	hostKeyRelPath  = "platinum/ssh_host_ed25519"
	shutdownTimeout = 10 * time.Second
)

// SSHServerConfig holds the SSH server settings.
type SSHServerConfig struct {
	Host    string
	Port    string
	KeyPath string
	Version string

	// UserConfig is shared read-only by every session.
	UserConfig *config.UserConfig
	Weather    *weather.Provider
	Logger     *log.Logger
}

// DefaultKeyPath returns where the host key is kept when no path is given.
// wish generates the key on first start.
func DefaultKeyPath() (string, error) {
	return xdg.DataFile(hostKeyRelPath)
}

// StartSSHServer listens until ctx is cancelled, then shuts down gracefully.
func StartSSHServer(ctx context.Context, cfg *SSHServerConfig) error {
	if cfg.UserConfig == nil {
		cfg.UserConfig = config.DefaultConfig()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	keyPath := cfg.KeyPath
	if keyPath == "" {
		p, err := DefaultKeyPath()
		if err != nil {
			return fmt.Errorf("failed to resolve host key path: %w", err)
		}
		keyPath = p
	}

	app.SetInputHandler(input.HandleInput)

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	s, err := wish.NewServer(
		wish.WithAddress(addr),
		wish.WithHostKeyPath(keyPath),
		wish.WithVersion("platinum-"+cfg.Version),
		wish.WithMiddleware(
			bubbletea.Middleware(cfg.teaHandler),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	cfg.Logger.Info("Starting SSH server", "addr", addr, "key", keyPath)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		cfg.Logger.Info("Stopping SSH server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// teaHandler creates the desktop for one SSH session.
func (cfg *SSHServerConfig) teaHandler(s ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := s.Pty()
	cfg.Logger.Info("New session", "user", s.User(), "remote", s.RemoteAddr(), "size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	m := newSessionModel(cfg, pty.Window.Width, pty.Window.Height)
	return m, []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
		tea.WithFilter(app.FilterMouseMotion),
	}
}

func newSessionModel(cfg *SSHServerConfig, width, height int) *app.OS {
	return app.New(app.Options{
		Config:  cfg.UserConfig,
		Weather: cfg.Weather,
		Width:   width,
		Height:  height,
	})
}
