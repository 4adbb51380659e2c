package shell

// DefaultPageThreshold is the fraction of the viewport width a swipe must
// travel to commit a page change.
const DefaultPageThreshold = 0.15

// DefaultIconsPerPage is the springboard grid capacity.
const DefaultIconsPerPage = 12

// Springboard is the paged icon grid plus the foreground app view.
type Springboard struct {
	pages     [][]string
	current   int
	threshold float64
	width     int

	dragging   bool
	dragStartX int
	offset     float64

	foreground string
}

// NewSpringboard lays ids out on pages of perPage icons.
func NewSpringboard(ids []string, perPage int, threshold float64) *Springboard {
	if perPage <= 0 {
		perPage = DefaultIconsPerPage
	}
	if threshold <= 0 {
		threshold = DefaultPageThreshold
	}
	s := &Springboard{threshold: threshold}
	for start := 0; start < len(ids); start += perPage {
		end := min(start+perPage, len(ids))
		s.pages = append(s.pages, ids[start:end])
	}
	if len(s.pages) == 0 {
		s.pages = [][]string{nil}
	}
	return s
}

// PageCount returns the number of pages, at least one.
func (s *Springboard) PageCount() int {
	return len(s.pages)
}

// Page returns the icon ids on page i.
func (s *Springboard) Page(i int) []string {
	if i < 0 || i >= len(s.pages) {
		return nil
	}
	return s.pages[i]
}

// Current returns the index of the page in view.
func (s *Springboard) Current() int {
	return s.current
}

// SetWidth records the viewport width used to normalize swipes.
func (s *Springboard) SetWidth(width int) {
	s.width = width
}

// GoTo jumps to page i, clamped to the valid range.
func (s *Springboard) GoTo(i int) {
	s.current = max(0, min(i, len(s.pages)-1))
	s.offset = 0
}

// Next moves one page forward.
func (s *Springboard) Next() { s.GoTo(s.current + 1) }

// Prev moves one page back.
func (s *Springboard) Prev() { s.GoTo(s.current - 1) }

// BeginDrag starts a horizontal swipe at x.
func (s *Springboard) BeginDrag(x int) {
	s.dragging = true
	s.dragStartX = x
	s.offset = 0
}

// Drag updates the live offset, as a fraction of the width, while swiping.
func (s *Springboard) Drag(x int) {
	if !s.dragging || s.width <= 0 {
		return
	}
	s.offset = float64(x-s.dragStartX) / float64(s.width)
}

// EndDrag finishes a swipe at x and returns true when the page changed.
// A leftward travel past the threshold advances, a rightward one goes back.
func (s *Springboard) EndDrag(x int) bool {
	if !s.dragging {
		return false
	}
	s.dragging = false
	s.offset = 0
	if s.width <= 0 {
		return false
	}

	dx := float64(x-s.dragStartX) / float64(s.width)
	prev := s.current
	switch {
	case dx < -s.threshold:
		s.GoTo(s.current + 1)
	case dx > s.threshold:
		s.GoTo(s.current - 1)
	}
	return s.current != prev
}

// CancelDrag drops a swipe in progress without changing page.
func (s *Springboard) CancelDrag() {
	s.dragging = false
	s.offset = 0
}

// Dragging reports whether a swipe is in progress.
func (s *Springboard) Dragging() bool {
	return s.dragging
}

// Offset returns the live swipe offset as a fraction of the width.
func (s *Springboard) Offset() float64 {
	return s.offset
}

// Transform returns the horizontal position of page i in percent of the
// viewport width: 0 is in view, -100 one page to the left.
func (s *Springboard) Transform(i int) float64 {
	return float64(i-s.current)*100 + s.offset*100
}

// Launch puts an app view in the foreground.
func (s *Springboard) Launch(id string) {
	s.foreground = id
}

// Home returns to the springboard. The app itself is left running.
func (s *Springboard) Home() {
	s.foreground = ""
}

// Foreground returns the id of the app view in front, or "".
func (s *Springboard) Foreground() string {
	return s.foreground
}
