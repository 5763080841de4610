package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

var _ pflag.Value = func() *Format { return nil }()

// Format selects how command results are written to stdout.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatTOML    Format = "toml"
	FormatMsgPack Format = "msgpack"
)

var formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTOML, FormatMsgPack}

func (f *Format) Set(s string) error {
	format := Format(strings.ToLower(s))
	for _, known := range formats {
		if format == known {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid output format %q, expected one of %s", s, strings.Join(FormatNames(), ", "))
}

func (f *Format) String() string {
	return string(*f)
}

func (f *Format) Type() string {
	return "format"
}

func FormatNames() []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// Encode writes doc in one of the structured formats. FormatText has no generic encoding, callers
// render it themselves.
func Encode(w io.Writer, format Format, doc any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	case FormatMsgPack:
		enc := msgpack.NewEncoder(w)
		enc.UseCompactInts(true)
		return enc.Encode(doc)
	}
	return fmt.Errorf("no encoder for output format %q", format)
}
