// Package command defines the closed set of user-triggerable actions shared
// by menus, keys, the dock and startup scripts.
package command

import (
	"fmt"
	"strings"
)

// Command is one user action. The set of implementations is closed; see
// Dispatch.
type Command interface {
	command()
}

// NoticeKind selects the dialog shown by Notify.
type NoticeKind int

const (
	NoticeAboutSite NoticeKind = iota
	NoticeSleep
	NoticeRestart
	NoticeShutdown
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeSleep:
		return "sleep"
	case NoticeRestart:
		return "restart"
	case NoticeShutdown:
		return "shutdown"
	default:
		return "about"
	}
}

type (
	OpenWindow     struct{ ID string }
	CloseWindow    struct{ ID string }
	MinimizeWindow struct{ ID string }
	RestoreWindow  struct{ ID string }
	ToggleZoom     struct{ ID string }
	ToggleShade    struct{ ID string }
	MinimizeAll    struct{}
	Tile           struct{}
	TidyIcons      struct{}
	ShowGrid       struct{}
	Notify         struct{ Kind NoticeKind }
	Quit           struct{}
)

func (OpenWindow) command()     {}
func (CloseWindow) command()    {}
func (MinimizeWindow) command() {}
func (RestoreWindow) command()  {}
func (ToggleZoom) command()     {}
func (ToggleShade) command()    {}
func (MinimizeAll) command()    {}
func (Tile) command()           {}
func (TidyIcons) command()      {}
func (ShowGrid) command()       {}
func (Notify) command()         {}
func (Quit) command()           {}

// Executor carries out commands against the running desktop.
type Executor interface {
	Open(id string)
	Close(id string)
	Minimize(id string)
	Restore(id string)
	ToggleZoom(id string)
	ToggleShade(id string)
	MinimizeAll()
	Tile()
	TidyIcons()
	ToggleGrid()
	Notify(kind NoticeKind)
	Quit()
}

// Dispatch runs cmd on ex. A nil command does nothing.
func Dispatch(cmd Command, ex Executor) {
	switch c := cmd.(type) {
	case OpenWindow:
		ex.Open(c.ID)
	case CloseWindow:
		ex.Close(c.ID)
	case MinimizeWindow:
		ex.Minimize(c.ID)
	case RestoreWindow:
		ex.Restore(c.ID)
	case ToggleZoom:
		ex.ToggleZoom(c.ID)
	case ToggleShade:
		ex.ToggleShade(c.ID)
	case MinimizeAll:
		ex.MinimizeAll()
	case Tile:
		ex.Tile()
	case TidyIcons:
		ex.TidyIcons()
	case ShowGrid:
		ex.ToggleGrid()
	case Notify:
		ex.Notify(c.Kind)
	case Quit:
		ex.Quit()
	}
}

// Name returns a short, human readable form of cmd, as accepted by Parse.
func Name(cmd Command) string {
	switch c := cmd.(type) {
	case OpenWindow:
		return "open " + c.ID
	case CloseWindow:
		return "close " + c.ID
	case MinimizeWindow:
		return "minimize " + c.ID
	case RestoreWindow:
		return "restore " + c.ID
	case ToggleZoom:
		return "zoom " + c.ID
	case ToggleShade:
		return "shade " + c.ID
	case MinimizeAll:
		return "minimize-all"
	case Tile:
		return "tile"
	case TidyIcons:
		return "tidy"
	case ShowGrid:
		return "grid"
	case Notify:
		return "notify " + c.Kind.String()
	case Quit:
		return "quit"
	}
	return ""
}

// Parse reads a command written as "verb [argument]", e.g. "open about" or
// "tile".
func Parse(s string) (Command, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	verb := strings.ToLower(fields[0])
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	needsArg := func(c Command) (Command, error) {
		if arg == "" {
			return nil, fmt.Errorf("%s requires a window id", verb)
		}
		return c, nil
	}

	switch verb {
	case "open":
		return needsArg(OpenWindow{ID: arg})
	case "close":
		return needsArg(CloseWindow{ID: arg})
	case "minimize":
		return needsArg(MinimizeWindow{ID: arg})
	case "restore":
		return needsArg(RestoreWindow{ID: arg})
	case "zoom":
		return needsArg(ToggleZoom{ID: arg})
	case "shade":
		return needsArg(ToggleShade{ID: arg})
	case "minimize-all":
		return MinimizeAll{}, nil
	case "tile", "arrange":
		return Tile{}, nil
	case "tidy":
		return TidyIcons{}, nil
	case "grid":
		return ShowGrid{}, nil
	case "quit":
		return Quit{}, nil
	case "notify":
		switch strings.ToLower(arg) {
		case "", "about":
			return Notify{Kind: NoticeAboutSite}, nil
		case "sleep":
			return Notify{Kind: NoticeSleep}, nil
		case "restart":
			return Notify{Kind: NoticeRestart}, nil
		case "shutdown":
			return Notify{Kind: NoticeShutdown}, nil
		}
		return nil, fmt.Errorf("unknown notice %q", arg)
	}
	return nil, fmt.Errorf("unknown command %q", verb)
}
