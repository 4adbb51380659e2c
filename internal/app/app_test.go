package app

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/dodorz/platinum/internal/command"
	"github.com/dodorz/platinum/internal/config"
	"github.com/dodorz/platinum/internal/geometry"
	"github.com/dodorz/platinum/internal/pointer"
	"github.com/google/go-cmp/cmp"
)

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// newTestOS builds a desktop of width by height cells with the default
// applications and a fixed clock.
func newTestOS(t *testing.T, width, height int) (*OS, *testClock) {
	t.Helper()
	clock := &testClock{t: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)}
	o := New(Options{
		Config: config.DefaultConfig(),
		Now:    clock.now,
		Width:  width,
		Height: height,
	})
	return o, clock
}

func render(o *OS) string {
	out := ansi.Strip(lipgloss.Sprint(o.GetCanvas().Render()))
	return strings.ReplaceAll(out, "\r\n", "\n")
}

func TestWideTerminalShowsDesktop(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)

	if !o.Shell.DesktopVisible() || o.Shell.PagedVisible() {
		t.Fatalf("mode = %s, want desktop", o.Shell.Mode())
	}
	if diff := cmp.Diff(geometry.Size{Width: 960, Height: 608}, o.DesktopSurface()); diff != "" {
		t.Errorf("surface mismatch (-want +got):\n%s", diff)
	}
	if o.Springboard.Foreground() != "" {
		t.Error("no app should be in front on the desktop")
	}
	if o.WM.Focused() != "" {
		t.Error("no window should be open at start")
	}
}

func TestFirstPagedEntryOpensDefaultApp(t *testing.T) {
	o, _ := newTestOS(t, 60, 40)

	if !o.Shell.PagedVisible() {
		t.Fatalf("mode = %s, want paged", o.Shell.Mode())
	}
	w, ok := o.WM.Window("about")
	if !ok {
		t.Fatal("about window missing")
	}
	if !w.IsOpen() || !w.IsZoomed() {
		t.Errorf("about open=%v zoomed=%v, want both", w.IsOpen(), w.IsZoomed())
	}
	if got := o.Springboard.Foreground(); got != "about" {
		t.Errorf("foreground = %q, want about", got)
	}

	o.GoHome()
	o.Resize(120, 40)
	o.Resize(60, 40)
	if got := o.Springboard.Foreground(); got != "" {
		t.Errorf("second paged entry brought %q to the front", got)
	}
}

func TestModeChangeClosesMenus(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)
	o.Menus.Toggle(1)
	o.IconDrag = "about"

	o.Resize(60, 40)
	if o.Menus.IsOpen() {
		t.Error("menus should close when the shell changes mode")
	}
	if o.IconDrag != "" {
		t.Error("icon drag should be dropped on a mode change")
	}

	o.Menus.Toggle(1)
	o.Resize(70, 40)
	if !o.Menus.IsOpen() {
		t.Error("resizing within a mode should leave menus alone")
	}
}

func TestWindowAtParts(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)
	o.Run(command.OpenWindow{ID: "about"})

	// about is 460x320 at (80, 80): cells (10, 5) to (67, 25)
	tests := []struct {
		name     string
		col, row int
		want     WindowPart
	}{
		{"close box", 12, 5, PartClose},
		{"title", 30, 5, PartTitle},
		{"minimize box", 61, 5, PartMinimize},
		{"zoom box", 64, 5, PartZoom},
		{"resize corner", 66, 24, PartResize},
		{"content", 20, 10, PartContent},
		{"outside", 5, 10, PartNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, part := o.WindowAt(tt.col, tt.row)
			if part != tt.want {
				t.Errorf("part = %d, want %d", part, tt.want)
			}
			if (w != nil) != (tt.want != PartNone) {
				t.Errorf("window = %v for part %d", w, tt.want)
			}
		})
	}
}

func TestShadedWindowOnlyHitsTitle(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)
	o.Run(command.OpenWindow{ID: "about"})
	o.Run(command.ToggleShade{ID: "about"})

	if _, part := o.WindowAt(30, 5); part != PartTitle {
		t.Errorf("title part = %d, want %d", part, PartTitle)
	}
	if w, _ := o.WindowAt(20, 10); w != nil {
		t.Error("a shaded window should not cover its body")
	}
}

func TestTopmostWindowWins(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)
	o.Run(command.OpenWindow{ID: "about"})
	o.Run(command.OpenWindow{ID: "projects"})

	w, _ := o.WindowAt(20, 10)
	if w == nil || w.ID != "projects" {
		t.Fatalf("window = %v, want projects", w)
	}

	o.WM.Focus("about")
	if w, _ := o.WindowAt(20, 10); w == nil || w.ID != "about" {
		t.Errorf("window = %v, want about after focusing it", w)
	}
}

func TestMinimizeLeavesGhostUntilEffectEnds(t *testing.T) {
	o, clock := newTestOS(t, 120, 40)
	o.Run(command.OpenWindow{ID: "about"})
	o.Run(command.MinimizeWindow{ID: "about"})

	w, _ := o.WM.Window("about")
	if !w.IsMinimized() {
		t.Fatal("minimize should commit before the effect runs")
	}
	if _, ok := o.ghosts["about"]; !ok {
		t.Fatal("minimize should draw a genie outline")
	}

	clock.advance(config.DefaultAnimationDuration / 2)
	o.Update(TickerMsg(clock.t))
	if _, ok := o.ghosts["about"]; !ok {
		t.Error("outline should remain while the effect runs")
	}

	clock.advance(config.DefaultAnimationDuration)
	_, cmd := o.Update(TickerMsg(clock.t))
	if _, ok := o.ghosts["about"]; ok {
		t.Error("outline should be dropped once the effect ends")
	}
	if cmd != nil {
		t.Error("ticker should stop when nothing animates")
	}
}

func TestCloseCancelsGhost(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)
	o.Run(command.OpenWindow{ID: "about"})
	o.Run(command.MinimizeWindow{ID: "about"})
	o.Run(command.CloseWindow{ID: "about"})

	if _, ok := o.ghosts["about"]; ok {
		t.Error("closing should drop the outline")
	}
	if o.Effects.For("about") != nil {
		t.Error("closing should cancel the effect")
	}
}

func TestOpenFromDockCancelsGenie(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)
	o.Run(command.OpenWindow{ID: "about"})
	o.Run(command.MinimizeWindow{ID: "about"})
	if _, ok := o.ghosts["about"]; !ok {
		t.Fatal("minimize should draw a genie outline")
	}

	o.Run(command.OpenWindow{ID: "about"})
	if _, ok := o.ghosts["about"]; ok {
		t.Error("opening should drop the genie outline")
	}
	if o.Effects.For("about") != nil {
		t.Error("opening should cancel the genie effect")
	}
	if o.Effects.For(dockTarget("about")) == nil {
		t.Error("opening should still bounce the dock entry")
	}
}

func TestMinimizeAllReturnsPagedShellHome(t *testing.T) {
	o, _ := newTestOS(t, 60, 30)
	if got := o.Springboard.Foreground(); got != "about" {
		t.Fatalf("foreground = %q, want about", got)
	}

	o.Run(command.MinimizeAll{})
	if got := o.Springboard.Foreground(); got != "" {
		t.Errorf("foreground = %q after minimizing everything, want springboard", got)
	}
}

func TestModeChangeDropsSwipe(t *testing.T) {
	o, _ := newTestOS(t, 60, 30)
	o.GoHome()

	o.BeginSwipe(50, 10)
	o.MoveSwipe(30, 10)
	if o.Springboard.Offset() == 0 {
		t.Fatal("dragging should move the springboard")
	}

	o.Resize(120, 40)
	o.Resize(60, 30)
	if o.Swiping() || o.Springboard.Dragging() {
		t.Error("a mode change should end the swipe")
	}
	if got := o.Springboard.Offset(); got != 0 {
		t.Errorf("offset = %v after a mode change, want 0", got)
	}
}

func TestGestureChrome(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)
	o.Run(command.OpenWindow{ID: "about"})
	o.Icons.Select("about")
	if !o.iconHighlighted("about") {
		t.Fatal("selected icon should be highlighted")
	}
	if out := render(o); !strings.Contains(out, "◢") || strings.Contains(out, "█") {
		t.Fatal("idle window should show the plain resize corner")
	}

	w, _ := o.WM.Window("about")
	b := w.Bounds
	o.Pointer.PointerDown("about", pointer.RegionResize, b.X+b.Width-1, b.Y+b.Height-1, pointer.ButtonPrimary)
	if o.iconHighlighted("about") {
		t.Error("icon selection should be hidden during a resize")
	}
	if out := render(o); !strings.Contains(out, "█") {
		t.Error("resizing window should show the grabbed corner")
	}

	o.Pointer.PointerUp()
	if !o.iconHighlighted("about") {
		t.Error("selection should come back when the gesture ends")
	}
}

func TestDockEntryAt(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)

	// "i About", "P Projects" and "@ Contact" padded by one cell, one apart
	tests := []struct {
		col, row int
		want     string
	}{
		{43, 38, "about"},
		{51, 39, "about"},
		{52, 38, ""},
		{53, 38, "projects"},
		{66, 39, "contact"},
		{43, 37, ""},
	}
	for _, tt := range tests {
		if got := o.DockEntryAt(tt.col, tt.row); got != tt.want {
			t.Errorf("DockEntryAt(%d, %d) = %q, want %q", tt.col, tt.row, got, tt.want)
		}
	}
}

func TestMenuHitTesting(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)

	if got := o.MenuTitleAt(5); got != 1 {
		t.Errorf("MenuTitleAt(5) = %d, want File", got)
	}
	if got := o.MenuTitleAt(0); got != -1 {
		t.Errorf("MenuTitleAt(0) = %d, want none", got)
	}
	if _, ok := o.DropdownItemAt(5, 2); ok {
		t.Error("no item should be hit while menus are closed")
	}

	o.Menus.Toggle(1)
	j, ok := o.DropdownItemAt(5, 2)
	if !ok || j != 1 {
		t.Fatalf("DropdownItemAt(5, 2) = %d, %v, want 1", j, ok)
	}
	cmd, ok := o.Menus.Select(j)
	if !ok {
		t.Fatal("Open Projects should be selectable")
	}
	if diff := cmp.Diff(command.Command(command.OpenWindow{ID: "projects"}), cmd); diff != "" {
		t.Errorf("command mismatch (-want +got):\n%s", diff)
	}
}

func TestNotificationsExpire(t *testing.T) {
	o, clock := newTestOS(t, 120, 40)
	o.Run(command.ShowGrid{})

	if !o.ShowGrid {
		t.Fatal("grid should be shown")
	}
	if len(o.Notifications) != 1 || o.Notifications[0].Message != "Grid shown" {
		t.Fatalf("notifications = %+v", o.Notifications)
	}

	clock.advance(config.NotificationDuration + time.Millisecond)
	o.Update(TickerMsg(clock.t))
	if len(o.Notifications) != 0 {
		t.Errorf("%d notifications left after expiry", len(o.Notifications))
	}
}

func TestNotificationsAreCapped(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)
	for range config.MaxNotifications + 2 {
		o.Run(command.Notify{Kind: command.NoticeSleep})
	}
	if len(o.Notifications) != config.MaxNotifications {
		t.Errorf("got %d notifications, want %d", len(o.Notifications), config.MaxNotifications)
	}
}

func TestLogRingKeepsNewest(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)
	for i := range config.MaxLogMessages + 10 {
		o.LogInfo("line %d", i)
	}
	if len(o.LogMessages) != config.MaxLogMessages {
		t.Fatalf("kept %d lines, want %d", len(o.LogMessages), config.MaxLogMessages)
	}
	want := "line 509"
	if got := o.LogMessages[len(o.LogMessages)-1].Message; got != want {
		t.Errorf("newest = %q, want %q", got, want)
	}
}

func TestQuitEndsProgram(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)
	o.Run(command.Quit{})
	if !o.Quitting() {
		t.Fatal("Quit should mark the model as quitting")
	}

	_, cmd := o.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestUnknownWindowIsLogged(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)
	o.Run(command.OpenWindow{ID: "nope"})

	last := o.LogMessages[len(o.LogMessages)-1]
	if last.Level != "WARN" || !strings.Contains(last.Message, "nope") {
		t.Errorf("last log = %+v", last)
	}
}

func TestDesktopRender(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)
	o.Run(command.OpenWindow{ID: "projects"})

	out := render(o)
	for _, want := range []string{"File", "Special", "Projects", "About"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestPagedRender(t *testing.T) {
	o, _ := newTestOS(t, 60, 30)
	o.GoHome()

	out := render(o)
	for _, want := range []string{"About", "Projects", "Contact"} {
		if !strings.Contains(out, want) {
			t.Errorf("springboard missing %q", want)
		}
	}
	if strings.Contains(out, "File") {
		t.Error("the menu bar should not show in the paged shell")
	}
}

func manyApps(n int) *config.UserConfig {
	cfg := config.DefaultConfig()
	cfg.Apps = nil
	for i := range n {
		id := string(rune('a'+i)) + "app"
		cfg.Apps = append(cfg.Apps, config.AppConfig{ID: id, Title: id, Width: 400, Height: 300})
	}
	cfg.Shell.DefaultApp = "aapp"
	return cfg
}

func TestSwipeChangesPage(t *testing.T) {
	clock := &testClock{t: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)}
	o := New(Options{Config: manyApps(14), Now: clock.now, Width: 60, Height: 30})
	o.GoHome()

	if got := o.Springboard.PageCount(); got != 2 {
		t.Fatalf("pages = %d, want 2", got)
	}

	o.BeginSwipe(50, 10)
	o.MoveSwipe(30, 10)
	o.EndSwipe(20, 10)
	if got := o.Springboard.Current(); got != 1 {
		t.Errorf("page = %d after a left swipe, want 1", got)
	}
	if o.Effects.For(pageSnapTarget) == nil {
		t.Error("page change should snap")
	}
	if o.Springboard.Foreground() != "" {
		t.Error("a swipe should not launch anything")
	}

	o.BeginSwipe(20, 10)
	o.EndSwipe(25, 10)
	if got := o.Springboard.Current(); got != 1 {
		t.Errorf("page = %d after a short swipe, want 1", got)
	}
}

func TestTapLaunchesApp(t *testing.T) {
	o, _ := newTestOS(t, 60, 30)
	o.GoHome()

	// Second column of the first row
	col, row := o.springboardCellW()+2, springboardTop+1
	id := o.SpringboardIconAt(col, row)
	if id != "projects" {
		t.Fatalf("icon at (%d, %d) = %q, want projects", col, row, id)
	}

	o.BeginSwipe(col, row)
	o.EndSwipe(col, row)
	if got := o.Springboard.Foreground(); got != "projects" {
		t.Errorf("foreground = %q, want projects", got)
	}
	if w, _ := o.WM.Window("projects"); !w.IsOpen() {
		t.Error("tapping should open the window")
	}
}

func TestPageDots(t *testing.T) {
	clock := &testClock{t: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)}
	o := New(Options{Config: manyApps(14), Now: clock.now, Width: 60, Height: 30})
	o.GoHome()

	// Two dots centered on the last row: columns 28 and 30
	if got := o.PageDotAt(30, 29); got != 1 {
		t.Errorf("PageDotAt(30, 29) = %d, want 1", got)
	}
	if got := o.PageDotAt(29, 29); got != -1 {
		t.Errorf("PageDotAt(29, 29) = %d, want -1", got)
	}
	o.GoToPage(1)
	if o.Springboard.Current() != 1 {
		t.Error("GoToPage should switch pages")
	}
}

func TestLaunchOutsidePagedOnlyOpens(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)
	o.Run(command.OpenWindow{ID: "contact"})

	if o.Springboard.Foreground() != "" {
		t.Error("opening on the desktop should not touch the springboard")
	}
	if got := o.WM.Focused(); got != "contact" {
		t.Errorf("focused = %q, want contact", got)
	}
}

func TestTidyRestoresIconOrder(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)
	o.Icons.Move("contact", 0)
	o.Run(command.TidyIcons{})

	if got := o.Icons.Slot("about"); got != 0 {
		t.Errorf("about slot = %d, want 0", got)
	}
}

func TestFilterMouseMotion(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)
	idle := tea.MouseMotionMsg{X: 20, Y: 20}
	overDock := tea.MouseMotionMsg{X: 45, Y: 38}

	if FilterMouseMotion(o, idle) != nil {
		t.Error("idle motion over the desktop should be dropped")
	}
	if FilterMouseMotion(o, overDock) == nil {
		t.Error("motion over the dock should pass for magnification")
	}

	o.HoverY = 38
	if FilterMouseMotion(o, idle) == nil {
		t.Error("motion leaving the dock should pass")
	}
	o.HoverY = 20

	o.Menus.Toggle(1)
	if FilterMouseMotion(o, idle) == nil {
		t.Error("motion should pass while a menu is open")
	}
	o.Menus.CloseAll()

	key := tea.KeyPressMsg{Code: 'a', Text: "a"}
	if FilterMouseMotion(o, key) == nil {
		t.Error("non-motion messages always pass")
	}
}
