package logutil

import (
	"fmt"
	"io"
	"log/slog"
)

type Config struct {
	Level  Level  `usage:"TRACE, DEBUG, INFO, WARN, ERROR, or FATAL"`
	Format Format `usage:"TEXT or JSON"`
	Source bool   `usage:"include source file and line in log records"`
}

// DefaultConfig logs INFO and above as text.
func DefaultConfig() Config {
	return Config{
		Level:  Level(slog.LevelInfo),
		Format: FormatText,
	}
}

func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{
		AddSource:   c.Source,
		Level:       slog.Level(c.Level),
		ReplaceAttr: replaceLevel,
	}
	switch c.Format {
	case FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unsupported log format %q", c.Format)
}
