// Package menu models the menu bar: a row of pull-down menus of which at
// most one is open.
package menu

import "github.com/dodorz/platinum/internal/command"

// Item is one entry in a pull-down menu. A separator has no label.
type Item struct {
	Label     string
	Shortcut  string
	Command   command.Command
	Separator bool
	Disabled  bool
}

// Menu is a titled list of items.
type Menu struct {
	Label string
	Items []Item
}

// App is the information the default menus need about an application.
type App struct {
	ID    string
	Title string
}

// DefaultMenus returns the Apple, File, Edit, View and Special menus.
func DefaultMenus(apps []App) []Menu {
	var file []Item
	for _, a := range apps {
		file = append(file, Item{Label: "Open " + a.Title, Command: command.OpenWindow{ID: a.ID}})
	}
	file = append(file,
		Item{Separator: true},
		Item{Label: "Quit", Shortcut: "q", Command: command.Quit{}},
	)

	return []Menu{
		{
			Label: "",
			Items: []Item{
				{Label: "About This Site", Command: command.Notify{Kind: command.NoticeAboutSite}},
			},
		},
		{Label: "File", Items: file},
		{
			Label: "Edit",
			Items: []Item{
				{Label: "Undo", Disabled: true},
				{Separator: true},
				{Label: "Cut", Disabled: true},
				{Label: "Copy", Disabled: true},
				{Label: "Paste", Disabled: true},
			},
		},
		{
			Label: "View",
			Items: []Item{
				{Label: "Arrange Windows", Shortcut: "^T", Command: command.Tile{}},
				{Label: "Minimize All", Command: command.MinimizeAll{}},
				{Separator: true},
				{Label: "Clean Up Icons", Command: command.TidyIcons{}},
				{Label: "Show Grid", Command: command.ShowGrid{}},
			},
		},
		{
			Label: "Special",
			Items: []Item{
				{Label: "Sleep", Command: command.Notify{Kind: command.NoticeSleep}},
				{Label: "Restart", Command: command.Notify{Kind: command.NoticeRestart}},
				{Label: "Shut Down", Command: command.Notify{Kind: command.NoticeShutdown}},
			},
		},
	}
}

// Bar holds the menus and which one, if any, is open.
type Bar struct {
	menus []Menu
	open  int
}

// NewBar creates a bar with every menu closed.
func NewBar(menus []Menu) *Bar {
	return &Bar{menus: menus, open: -1}
}

// Menus returns the menus in bar order.
func (b *Bar) Menus() []Menu {
	return b.menus
}

// Toggle opens menu i, closing any other, or closes it if it was open.
func (b *Bar) Toggle(i int) {
	if i < 0 || i >= len(b.menus) {
		return
	}
	wasOpen := b.open == i
	b.CloseAll()
	if !wasOpen {
		b.open = i
	}
}

// CloseAll closes every menu.
func (b *Bar) CloseAll() {
	b.open = -1
}

// Open returns the index of the open menu, or -1.
func (b *Bar) Open() int {
	return b.open
}

// IsOpen reports whether any menu is open.
func (b *Bar) IsOpen() bool {
	return b.open >= 0
}

// Hover switches the open menu to i while one is already open, the way
// dragging across a menu bar does.
func (b *Bar) Hover(i int) {
	if b.open < 0 || i < 0 || i >= len(b.menus) {
		return
	}
	b.open = i
}

// Select picks item j of the open menu, closes the bar and returns the
// item's command. Separators and disabled items return false and keep the
// menu open.
func (b *Bar) Select(j int) (command.Command, bool) {
	if b.open < 0 {
		return nil, false
	}
	items := b.menus[b.open].Items
	if j < 0 || j >= len(items) {
		return nil, false
	}
	it := items[j]
	if it.Separator || it.Disabled || it.Command == nil {
		return nil, false
	}
	b.CloseAll()
	return it.Command, true
}
