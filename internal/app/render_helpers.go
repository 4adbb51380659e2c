package app

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/dodorz/platinum/internal/config"
)

// glyphSet holds the characters used to draw chrome.
type glyphSet struct {
	Close         string
	Minimize      string
	Zoom          string
	Pinstripe     string
	TopLeft       string
	TopRight      string
	BottomLeft    string
	BottomRight   string
	Horizontal    string
	Vertical      string
	ResizeCorner  string
	ResizeGrab    string
	DockActive    string
	DockMinimized string
	PageActive    string
	PageOther     string
	HomeBar       string
	GridDot       string
}

var unicodeGlyphs = glyphSet{
	Close:         "[×]",
	Minimize:      "[–]",
	Zoom:          "[□]",
	Pinstripe:     "≡",
	TopLeft:       "┌",
	TopRight:      "┐",
	BottomLeft:    "└",
	BottomRight:   "┘",
	Horizontal:    "─",
	Vertical:      "│",
	ResizeCorner:  "◢",
	ResizeGrab:    "█",
	DockActive:    "•",
	DockMinimized: "◦",
	PageActive:    "●",
	PageOther:     "○",
	HomeBar:       "━",
	GridDot:       "·",
}

var asciiGlyphs = glyphSet{
	Close:         "[x]",
	Minimize:      "[_]",
	Zoom:          "[+]",
	Pinstripe:     "=",
	TopLeft:       "+",
	TopRight:      "+",
	BottomLeft:    "+",
	BottomRight:   "+",
	Horizontal:    "-",
	Vertical:      "|",
	ResizeCorner:  "/",
	ResizeGrab:    "#",
	DockActive:    "*",
	DockMinimized: "o",
	PageActive:    "o",
	PageOther:     ".",
	HomeBar:       "=",
	GridDot:       ".",
}

func glyphs() glyphSet {
	if config.UseASCIIOnly {
		return asciiGlyphs
	}
	return unicodeGlyphs
}

// fit truncates s to width cells and pads it with spaces to exactly width.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// center places s in the middle of width cells.
func center(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	pad := width - ansi.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// clipBlock cuts a rendered block at (x, y) to the rows [top, bottom) and
// the columns [0, width). It returns the visible part with its new origin,
// or "" when nothing is visible.
func clipBlock(content string, x, y, width, top, bottom int) (string, int, int) {
	lines := strings.Split(content, "\n")
	blockWidth := 0
	for _, l := range lines {
		blockWidth = max(blockWidth, ansi.StringWidth(l))
	}
	if x+blockWidth <= 0 || x >= width || y+len(lines) <= top || y >= bottom {
		return "", max(x, 0), max(y, top)
	}

	if y < top {
		lines = lines[top-y:]
		y = top
	}
	if y+len(lines) > bottom {
		lines = lines[:bottom-y]
	}

	left := max(0, -x)
	right := min(blockWidth, width-x)
	if left > 0 || right < blockWidth {
		for i, l := range lines {
			lines[i] = ansi.Cut(l, left, right)
		}
	}
	return strings.Join(lines, "\n"), max(x, 0), y
}
