package logutil

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

var _ pflag.Value = func() *Format { return nil }()

// Format selects the slog handler: TEXT for slog.TextHandler, JSON for slog.JSONHandler.
type Format string

const (
	FormatText Format = "TEXT"
	FormatJSON Format = "JSON"
)

func (f *Format) Set(s string) error {
	switch format := Format(strings.ToUpper(s)); format {
	case FormatText, FormatJSON:
		*f = format
		return nil
	}
	return fmt.Errorf("invalid log format %q, want TEXT or JSON", s)
}

func (f *Format) String() string {
	return string(*f)
}

func (f *Format) Type() string {
	return "format"
}
