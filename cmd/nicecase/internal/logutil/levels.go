package logutil

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
)

const (
	LevelTrace = slog.LevelDebug - 4
	LevelFatal = slog.LevelError + 4
)

// extraLevels are the levels slog has no name for.
var extraLevels = []struct {
	level slog.Level
	name  string
}{
	{LevelTrace, "TRACE"},
	{LevelFatal, "FATAL"},
}

func levelName(l slog.Level) (string, bool) {
	for _, e := range extraLevels {
		if e.level == l {
			return e.name, true
		}
	}
	return "", false
}

var _ pflag.Value = func() *Level { return nil }()

// Level is a slog.Level that also accepts TRACE and FATAL on the command line and in the
// environment.
type Level slog.Level

func (l *Level) Set(s string) error {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for _, e := range extraLevels {
		if e.name == upper {
			*l = Level(e.level)
			return nil
		}
	}
	return (*slog.Level)(l).UnmarshalText([]byte(upper))
}

func (l *Level) String() string {
	if name, ok := levelName(slog.Level(*l)); ok {
		return name
	}
	return slog.Level(*l).String()
}

func (l *Level) Type() string {
	return "level"
}

// replaceLevel renders TRACE and FATAL records by name instead of "DEBUG-4" and "ERROR+4".
func replaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok {
		if name, ok := levelName(level); ok {
			a.Value = slog.StringValue(name)
		}
	}
	return a
}

// Fatal records err at FATAL level. Exiting is left to the caller.
func Fatal(ctx context.Context, log *slog.Logger, msg string, err error) {
	log.LogAttrs(ctx, LevelFatal, msg, slog.Any("error", err))
}
