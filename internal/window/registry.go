package window

import "github.com/dodorz/platinum/internal/geometry"

// Registry owns every window, keyed by id, in declaration order.
// Windows are never destroyed; closing only changes visibility.
type Registry struct {
	windows []*Window
	byID    map[string]*Window
}

// NewRegistry creates a registry with one Closed window per definition.
// Duplicate ids after the first are ignored.
func NewRegistry(defs []Definition) *Registry {
	r := &Registry{byID: make(map[string]*Window, len(defs))}
	for _, def := range defs {
		r.Add(def)
	}
	return r
}

// Add registers a new Closed window. It returns the existing window when
// the id is already taken.
func (r *Registry) Add(def Definition) *Window {
	if w, ok := r.byID[def.ID]; ok {
		return w
	}
	w := &Window{
		ID:     def.ID,
		Title:  def.Title,
		Bounds: geometry.Rect{Width: def.Width, Height: def.Height},
	}
	r.windows = append(r.windows, w)
	r.byID[def.ID] = w
	return w
}

// Get looks a window up by id.
func (r *Registry) Get(id string) (*Window, bool) {
	w, ok := r.byID[id]
	return w, ok
}

// All returns every window in declaration order.
func (r *Registry) All() []*Window {
	return r.windows
}

// IDs returns every window id in declaration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.windows))
	for i, w := range r.windows {
		ids[i] = w.ID
	}
	return ids
}

// Open returns the Open windows in declaration order.
func (r *Registry) Open() []*Window {
	var open []*Window
	for _, w := range r.windows {
		if w.IsOpen() {
			open = append(open, w)
		}
	}
	return open
}

// Len returns the number of registered windows.
func (r *Registry) Len() int {
	return len(r.windows)
}
