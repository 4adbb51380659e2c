package ui

import "time"

// MenuClock formats the menu bar clock, e.g. "3:07 PM".
func MenuClock(t time.Time) string {
	return t.Format("3:04 PM")
}

// StatusClock formats the paged status bar clock, e.g. "3:07".
func StatusClock(t time.Time) string {
	return t.Format("3:04")
}
