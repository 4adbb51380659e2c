package wm

// EventKind identifies a window manager transition.
type EventKind int

const (
	// EventOpened fires on every Open call, including re-opening an Open window.
	EventOpened EventKind = iota
	EventClosed
	EventMinimized
	EventRestored
	EventFocused
	EventZoomed
	EventUnzoomed
	EventShaded
	EventUnshaded
	EventMoved
	EventResized
	EventTiled
)

var eventNames = [...]string{
	EventOpened:    "opened",
	EventClosed:    "closed",
	EventMinimized: "minimized",
	EventRestored:  "restored",
	EventFocused:   "focused",
	EventZoomed:    "zoomed",
	EventUnzoomed:  "unzoomed",
	EventShaded:    "shaded",
	EventUnshaded:  "unshaded",
	EventMoved:     "moved",
	EventResized:   "resized",
	EventTiled:     "tiled",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event describes a committed state change. Listeners run synchronously
// after the registry has been updated.
type Event struct {
	Kind     EventKind
	WindowID string
}

// Listener receives window manager events.
type Listener func(Event)

// Subscribe registers a listener for every subsequent transition.
func (m *Manager) Subscribe(l Listener) {
	m.listeners = append(m.listeners, l)
}

func (m *Manager) emit(kind EventKind, id string) {
	ev := Event{Kind: kind, WindowID: id}
	for _, l := range m.listeners {
		l(ev)
	}
}
