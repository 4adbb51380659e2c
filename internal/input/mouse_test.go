package input

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/dodorz/platinum/internal/app"
	"github.com/dodorz/platinum/internal/geometry"
	"github.com/google/go-cmp/cmp"
)

func click(o *app.OS, x, y int) *app.OS {
	model, _ := HandleInput(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}, o)
	return model.(*app.OS)
}

func motion(o *app.OS, x, y int) *app.OS {
	model, _ := HandleInput(tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft}, o)
	return model.(*app.OS)
}

func release(o *app.OS, x, y int) *app.OS {
	model, _ := HandleInput(tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}, o)
	return model.(*app.OS)
}

func TestMenuClickRunsItem(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)

	o = click(o, 5, 0)
	if got := o.Menus.Open(); got != 1 {
		t.Fatalf("open menu = %d, want File", got)
	}

	// Second item of File is "Open Projects"
	o = click(o, 5, 2)
	if o.Menus.IsOpen() {
		t.Error("choosing an item should close the menu")
	}
	if got := o.WM.Focused(); got != "projects" {
		t.Errorf("focus = %q, want projects", got)
	}
}

func TestMenuClickOutsideCloses(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)
	o = click(o, 5, 0)
	o = click(o, 60, 20)

	if o.Menus.IsOpen() {
		t.Error("a click outside should close the menu")
	}
	if o.Icons.Selected() != "" {
		t.Error("the closing click should not reach the desktop")
	}
}

func TestDockClickTogglesWindow(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)

	o = click(o, 45, 38)
	w, _ := o.WM.Window("about")
	if !w.IsOpen() {
		t.Fatal("dock click should open a closed window")
	}

	o = click(o, 45, 38)
	if !w.IsMinimized() {
		t.Fatal("dock click should minimize an open window")
	}

	o = click(o, 45, 38)
	if !w.IsOpen() {
		t.Error("dock click should restore a minimized window")
	}
}

func TestWindowButtons(t *testing.T) {
	// about opens at cells (10, 5), 57 wide and 20 tall
	tests := []struct {
		name  string
		x     int
		y     int
		check func(t *testing.T, o *app.OS)
	}{
		{
			name: "close box",
			x:    12,
			y:    5,
			check: func(t *testing.T, o *app.OS) {
				if w, _ := o.WM.Window("about"); w.IsOpen() {
					t.Error("about should be closed")
				}
			},
		},
		{
			name: "minimize box",
			x:    61,
			y:    5,
			check: func(t *testing.T, o *app.OS) {
				if w, _ := o.WM.Window("about"); !w.IsMinimized() {
					t.Error("about should be minimized")
				}
			},
		},
		{
			name: "zoom box",
			x:    64,
			y:    5,
			check: func(t *testing.T, o *app.OS) {
				if w, _ := o.WM.Window("about"); !w.IsZoomed() {
					t.Error("about should be zoomed")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, _ := newTestOS(t, 120, 40)
			o.WM.Open("about")
			o = click(o, tt.x, tt.y)
			tt.check(t, o)
		})
	}
}

func TestTitleDragMovesWindow(t *testing.T) {
	o, clock := newTestOS(t, 120, 40)
	o.WM.Open("about")

	o = click(o, 30, 5)
	if !o.Pointer.Active() {
		t.Fatal("title press should start a drag")
	}
	o = motion(o, 40, 8)
	o = release(o, 40, 8)

	w, _ := o.WM.Window("about")
	want := geometry.Rect{X: 160, Y: 128, Width: 460, Height: 320}
	if diff := cmp.Diff(want, w.Bounds); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
	if o.Pointer.Active() {
		t.Error("release should end the drag")
	}

	clock.advance(2 * time.Second)
	o = motion(o, 80, 20)
	if w.Bounds.X != 160 {
		t.Error("motion after release must not move the window")
	}
}

func TestResizeCornerDrag(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)
	o.WM.Open("about")

	o = click(o, 66, 24)
	o = motion(o, 71, 26)
	o = release(o, 71, 26)

	w, _ := o.WM.Window("about")
	if w.Bounds.Width != 500 || w.Bounds.Height != 352 {
		t.Errorf("size = %dx%d, want 500x352", w.Bounds.Width, w.Bounds.Height)
	}
}

func TestTitleDoubleClickShades(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)
	o.WM.Open("about")

	o = click(o, 30, 5)
	o = release(o, 30, 5)
	o = click(o, 30, 5)
	o = release(o, 30, 5)

	if w, _ := o.WM.Window("about"); !w.Shaded {
		t.Error("double click on the title should shade the window")
	}
}

func TestIconDoubleClickOpens(t *testing.T) {
	o, clock := newTestOS(t, 120, 40)

	// about is the first icon in the top right corner
	o = click(o, 108, 3)
	o = release(o, 108, 3)
	if got := o.Icons.Selected(); got != "about" {
		t.Fatalf("selected = %q, want about", got)
	}
	if w, _ := o.WM.Window("about"); w.IsOpen() {
		t.Fatal("a single click should only select")
	}

	clock.advance(100 * time.Millisecond)
	o = click(o, 108, 3)
	if w, _ := o.WM.Window("about"); !w.IsOpen() {
		t.Error("a double click should open the window")
	}
}

func TestIconDragMovesSlot(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)

	o = click(o, 108, 12)
	if o.IconDrag != "contact" {
		t.Fatalf("dragging %q, want contact", o.IconDrag)
	}
	o = release(o, 108, 3)

	if got := o.Icons.Slot("contact"); got != 0 {
		t.Errorf("contact slot = %d, want 0", got)
	}
	if got := o.Icons.Slot("about"); got != 1 {
		t.Errorf("about slot = %d, want 1", got)
	}
}

func TestBackgroundClickClearsSelection(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)
	o.Icons.Select("about")

	o = click(o, 20, 20)
	if o.Icons.Selected() != "" {
		t.Error("background click should clear the selection")
	}
}

func TestClicksIgnoredUnderLogViewer(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)
	o.ShowLogs = true

	o = click(o, 45, 38)
	if w, _ := o.WM.Window("about"); w.IsOpen() {
		t.Error("clicks should not reach the dock while logs show")
	}
}

func TestPagedSwipeAndHomeBar(t *testing.T) {
	o, _ := newTestOS(t, 60, 30)

	o = click(o, 30, 29)
	if got := o.Springboard.Foreground(); got != "" {
		t.Fatalf("home bar should go home, foreground = %q", got)
	}

	// Tap the second icon on the first row
	o = click(o, 17, 3)
	o = release(o, 17, 3)
	if got := o.Springboard.Foreground(); got != "projects" {
		t.Errorf("foreground = %q, want projects", got)
	}
}

func TestWheelScrollsLogs(t *testing.T) {
	o, _ := newTestOS(t, 120, 40)
	for i := range 100 {
		o.LogInfo("entry %d", i)
	}
	o.ShowLogs = true
	o.ScrollLogs(len(o.LogMessages))
	end := o.LogScrollOffset

	model, _ := HandleInput(tea.MouseWheelMsg{X: 10, Y: 10, Button: tea.MouseWheelUp}, o)
	o = model.(*app.OS)
	if got := o.LogScrollOffset; got != end-logWheelStep {
		t.Errorf("offset = %d, want %d", got, end-logWheelStep)
	}
}
