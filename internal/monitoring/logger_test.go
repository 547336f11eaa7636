package monitoring

import (
	"fmt"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	var captured []string
	prev := Logf
	SetLogger(func(format string, v ...interface{}) {
		captured = append(captured, fmt.Sprintf(format, v...))
	})
	defer SetLogger(prev)

	Infof("processed %d files", 3)
	Warnf("mirror skipped")
	Errorf("bad file %s", "a.csv")

	if len(captured) != 3 {
		t.Fatalf("captured %d entries, want 3", len(captured))
	}
	for i, prefix := range []string{"INFO:", "WARNING:", "ERROR:"} {
		if !strings.HasPrefix(captured[i], prefix) {
			t.Errorf("entry %d = %q, want prefix %q", i, captured[i], prefix)
		}
	}
	if captured[0] != "INFO: processed 3 files" {
		t.Errorf("formatting lost: %q", captured[0])
	}
}

func TestSetLoggerNilMutes(t *testing.T) {
	prev := Logf
	SetLogger(nil)
	defer SetLogger(prev)

	// Must not panic.
	Logf("dropped %d", 1)
	Infof("dropped")
}
