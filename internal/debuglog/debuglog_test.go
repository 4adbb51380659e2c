package debuglog

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWritesDebugRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)
	logger.Debug("window opened", "id", "about")

	out := buf.String()
	for _, want := range []string{"platinum", "window opened", "id=about"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}
