package logx

import (
	"bytes"
	"strings"
	"testing"
)

func TestInitWriterLevels(t *testing.T) {
	tests := []struct {
		verbose   bool
		wantDebug bool
	}{
		{false, false},
		{true, true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		InitWriter(&buf, "test", tt.verbose)

		Debugf("debug %d", 1)
		Info("info line")

		out := buf.String()
		if got := strings.Contains(out, "debug 1"); got != tt.wantDebug {
			t.Errorf("verbose=%v: debug present = %v, want %v\n%s", tt.verbose, got, tt.wantDebug, out)
		}
		if !strings.Contains(out, "info line") {
			t.Errorf("verbose=%v: info line missing:\n%s", tt.verbose, out)
		}
		if !strings.Contains(out, "cmd=test") {
			t.Errorf("verbose=%v: cmd field missing:\n%s", tt.verbose, out)
		}
	}
}

func TestWarnAndError(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, "test", false)
	t.Cleanup(func() { InitWriter(&bytes.Buffer{}, "test", false) })

	Warnf("careful %s", "now")
	Errorf("broke: %v", "x")

	out := buf.String()
	for _, want := range []string{"WRN", "careful now", "ERR", "broke: x"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
