package debug

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogMemStats_WritesSnapshot(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if err := LogMemStats(logger, "after-load"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"msg":"after-load"`) || !strings.Contains(out, `"heap_alloc"`) {
		t.Fatalf("unexpected log output %s", out)
	}
}

func TestLogMemStats_NilLogger(t *testing.T) {
	if err := LogMemStats(nil, "x"); err != nil {
		t.Fatalf("nil logger should be a no-op, got %v", err)
	}
}
