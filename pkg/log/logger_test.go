package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	logger := New("test")

	SetLevel(Notice)
	logger.Info("hidden")
	logger.Notice("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Info message should be filtered at Notice level, got %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("Notice message missing from output %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("value=%d", 42)
	if !strings.Contains(buf.String(), "value=42") {
		t.Errorf("Debug message missing at Debug level, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[test]") {
		t.Errorf("Expected module name in output, got %q", buf.String())
	}
}
