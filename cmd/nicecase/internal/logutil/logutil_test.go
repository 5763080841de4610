package logutil

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLevel_Set(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"trace", LevelTrace},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"Fatal", LevelFatal},
		{"info+2", slog.LevelInfo + 2},
	}
	for _, tt := range tests {
		var l Level
		if err := l.Set(tt.in); err != nil {
			t.Errorf("Set(%q): %v", tt.in, err)
		} else if slog.Level(l) != tt.want {
			t.Errorf("Set(%q) = %v, want %v", tt.in, slog.Level(l), tt.want)
		}
	}
	var l Level
	if err := l.Set("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLevel_String(t *testing.T) {
	l := Level(LevelTrace)
	if s := l.String(); s != "TRACE" {
		t.Errorf("expected TRACE, got %q", s)
	}
	l = Level(slog.LevelWarn)
	if s := l.String(); s != "WARN" {
		t.Errorf("expected WARN, got %q", s)
	}
}

func TestFormat_Set(t *testing.T) {
	var f Format
	if err := f.Set("json"); err != nil || f != FormatJSON {
		t.Errorf("Set(json) = %q, %v", f, err)
	}
	if err := f.Set("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestConfig_NewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := DefaultConfig()
	cfg.Format = FormatJSON
	cfg.Level = Level(LevelTrace)
	log, err := cfg.NewLogger(buf)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	log.Log(context.Background(), LevelTrace, "hello")
	if out := buf.String(); !strings.Contains(out, `"level":"TRACE"`) || !strings.Contains(out, `"msg":"hello"`) {
		t.Errorf("unexpected log output: %s", out)
	}

	cfg.Format = "YAML"
	if _, err := cfg.NewLogger(buf); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestFromContext(t *testing.T) {
	if log := FromContext(context.Background()); log == nil {
		t.Fatal("expected fallback logger")
	}
	log := slog.New(slog.DiscardHandler)
	if got := FromContext(WithLogContext(context.Background(), log)); got != log {
		t.Error("expected stored logger to be returned")
	}
}

func TestFatal(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := DefaultConfig().NewLogger(buf)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	Fatal(context.Background(), log, "command failed", errors.New("boom"))
	out := buf.String()
	for _, want := range []string{"level=FATAL", `msg="command failed"`, "error=boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup(context.Background()); ok {
		t.Error("expected no logger in empty context")
	}
	log := slog.New(slog.DiscardHandler)
	if got, ok := Lookup(WithLogContext(context.Background(), log)); !ok || got != log {
		t.Error("expected stored logger")
	}
}
