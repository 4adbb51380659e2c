package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/dodorz/platinum/internal/app"
	"github.com/dodorz/platinum/internal/command"
	"github.com/dodorz/platinum/internal/config"
	"github.com/dodorz/platinum/internal/pointer"
)

const logWheelStep = 3

func pointerButton(b tea.MouseButton) pointer.Button {
	switch b {
	case tea.MouseRight:
		return pointer.ButtonSecondary
	case tea.MouseMiddle:
		return pointer.ButtonMiddle
	default:
		return pointer.ButtonPrimary
	}
}

// handleMouseClick routes a press. On the desktop the first hit wins, in
// this order: the open menu, the menu bar, the dock, the topmost window,
// the icons and finally the background.
func handleMouseClick(msg tea.MouseClickMsg, o *app.OS) (*app.OS, tea.Cmd) {
	mouse := msg.Mouse()
	col, row := mouse.X, mouse.Y
	o.HoverX, o.HoverY = col, row

	if o.ShowLogs {
		return o, nil
	}
	if o.Shell.PagedVisible() {
		return handlePagedClick(col, row, o)
	}

	if o.Menus.IsOpen() {
		handleOpenMenuClick(col, row, o)
		return o, nil
	}

	if row < config.MenuBarRows {
		if i := o.MenuTitleAt(col); i >= 0 {
			o.Menus.Toggle(i)
		}
		return o, nil
	}

	if id := o.DockEntryAt(col, row); id != "" {
		o.Dock.Click(id)
		return o, nil
	}

	if w, part := o.WindowAt(col, row); w != nil {
		handleWindowClick(w.ID, part, col, row, pointerButton(mouse.Button), o)
		return o, nil
	}

	if id := o.IconAt(col, row); id != "" {
		if mouse.Button != tea.MouseLeft {
			o.Icons.Select(id)
			return o, nil
		}
		if o.Icons.Click(id) {
			o.Run(command.OpenWindow{ID: id})
			return o, nil
		}
		o.IconDrag = id
		return o, nil
	}

	o.Icons.ClearSelection()
	return o, nil
}

// handleOpenMenuClick handles a press while a pull-down menu is open: a
// title switches or closes menus, an item runs and anything else closes.
func handleOpenMenuClick(col, row int, o *app.OS) {
	if row < config.MenuBarRows {
		i := o.MenuTitleAt(col)
		switch {
		case i < 0:
			o.Menus.CloseAll()
		case i == o.Menus.Open():
			o.Menus.Toggle(i)
		default:
			o.Menus.Hover(i)
		}
		return
	}
	if j, ok := o.DropdownItemAt(col, row); ok {
		if cmd, ok := o.Menus.Select(j); ok {
			o.Run(cmd)
		}
		return
	}
	o.Menus.CloseAll()
}

func handleWindowClick(id string, part app.WindowPart, col, row int, button pointer.Button, o *app.OS) {
	x, y := o.PointerPx(col, row)
	switch part {
	case app.PartClose:
		o.Run(command.CloseWindow{ID: id})
	case app.PartMinimize:
		o.Run(command.MinimizeWindow{ID: id})
	case app.PartZoom:
		o.Run(command.ToggleZoom{ID: id})
	case app.PartTitle:
		o.Pointer.PointerDown(id, pointer.RegionTitle, x, y, button)
	case app.PartResize:
		o.Pointer.PointerDown(id, pointer.RegionResize, x, y, button)
	default:
		o.Pointer.PointerDown(id, pointer.RegionContent, x, y, button)
	}
}

// handlePagedClick handles a press in the paged shell: the home bar, a
// page dot or the start of a springboard tap or swipe.
func handlePagedClick(col, row int, o *app.OS) (*app.OS, tea.Cmd) {
	if o.Springboard.Foreground() != "" {
		if o.OnHomeBar(row) {
			o.GoHome()
		}
		return o, nil
	}
	if p := o.PageDotAt(col, row); p >= 0 {
		o.GoToPage(p)
		return o, nil
	}
	if row >= config.StatusBarRows {
		o.BeginSwipe(col, row)
	}
	return o, nil
}

func handleMouseMotion(msg tea.MouseMotionMsg, o *app.OS) (*app.OS, tea.Cmd) {
	mouse := msg.Mouse()
	col, row := mouse.X, mouse.Y
	o.HoverX, o.HoverY = col, row

	if o.Shell.PagedVisible() {
		if o.Swiping() {
			o.MoveSwipe(col, row)
		}
		return o, nil
	}

	if o.Pointer.Active() {
		o.Pointer.PointerMove(o.PointerPx(col, row))
		return o, nil
	}

	if o.Menus.IsOpen() && row < config.MenuBarRows {
		if i := o.MenuTitleAt(col); i >= 0 {
			o.Menus.Hover(i)
		}
	}
	return o, nil
}

func handleMouseRelease(msg tea.MouseReleaseMsg, o *app.OS) (*app.OS, tea.Cmd) {
	mouse := msg.Mouse()
	col, row := mouse.X, mouse.Y
	o.HoverX, o.HoverY = col, row

	if o.Shell.PagedVisible() {
		if o.Swiping() {
			o.EndSwipe(col, row)
		}
		return o, nil
	}

	if o.Pointer.Active() {
		o.Pointer.PointerUp()
	}

	if id := o.IconDrag; id != "" {
		o.IconDrag = ""
		if slot := o.IconSlotAt(col, row); slot >= 0 && slot != o.Icons.Slot(id) {
			o.Icons.Move(id, slot)
		}
	}
	return o, nil
}

func handleMouseWheel(msg tea.MouseWheelMsg, o *app.OS) (*app.OS, tea.Cmd) {
	mouse := msg.Mouse()
	if o.ShowLogs {
		switch mouse.Button {
		case tea.MouseWheelUp:
			o.ScrollLogs(-logWheelStep)
		case tea.MouseWheelDown:
			o.ScrollLogs(logWheelStep)
		}
		return o, nil
	}

	if o.Shell.PagedVisible() && o.Springboard.Foreground() == "" {
		switch mouse.Button {
		case tea.MouseWheelDown, tea.MouseWheelRight:
			o.NextPage()
		case tea.MouseWheelUp, tea.MouseWheelLeft:
			o.PrevPage()
		}
	}
	return o, nil
}
