package server

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/dodorz/platinum/internal/config"
	"github.com/dodorz/platinum/internal/weather"
)

func TestSessionsAreIndependent(t *testing.T) {
	cfg := &SSHServerConfig{
		UserConfig: config.DefaultConfig(),
		Weather:    weather.New(weather.Config{Endpoint: "http://127.0.0.1:0"}),
	}

	a := newSessionModel(cfg, 120, 40)
	b := newSessionModel(cfg, 120, 40)

	a.WM.Open("about")
	if w, _ := b.WM.Window("about"); w.IsOpen() {
		t.Error("opening a window in one session leaked into another")
	}
	if a.Registry == b.Registry {
		t.Error("sessions should not share a window registry")
	}
	if a.Weather != b.Weather {
		t.Error("sessions should share the weather provider")
	}
}

func TestSessionFollowsTerminalSize(t *testing.T) {
	cfg := &SSHServerConfig{UserConfig: config.DefaultConfig()}

	narrow := newSessionModel(cfg, 60, 30)
	if !narrow.Shell.PagedVisible() {
		t.Error("a narrow session should start in the paged shell")
	}
	wide := newSessionModel(cfg, 160, 48)
	if !wide.Shell.DesktopVisible() {
		t.Error("a wide session should start on the desktop")
	}
}

func TestDefaultKeyPath(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_DATA_HOME", dir)
	xdg.Reload()

	p, err := DefaultKeyPath()
	if err != nil {
		t.Fatalf("DefaultKeyPath: %v", err)
	}
	if want := filepath.Join(dir, "platinum", "ssh_host_ed25519"); p != want {
		t.Errorf("path = %q, want %q", p, want)
	}
}
