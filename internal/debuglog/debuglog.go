// Package debuglog writes structured debug records to a file in the XDG
// state directory when --debug is set.
package debuglog

import (
	"fmt"
	"io"
	"os"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

const relPath = "platinum/debug.log"

// New returns a debug level logger writing to w.
func New(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           log.DebugLevel,
		Prefix:          "platinum",
		ReportTimestamp: true,
	})
}

// Open appends to the debug log file and returns a logger for it together
// with the function that closes the file.
func Open() (*log.Logger, func() error, error) {
	path, err := xdg.StateFile(relPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get debug log path: %w", err)
	}
	// #nosec G304 - path comes from the XDG state directory
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return New(f), f.Close, nil
}

// Path returns where Open writes.
func Path() (string, error) {
	return xdg.StateFile(relPath)
}
