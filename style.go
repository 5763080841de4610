package nicecase

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

var _ pflag.Value = func() *Style { return nil }()

// Style selects a naming convention for Render.
type Style int

const (
	Camel Style = iota
	Kebab
	Dot
	Pascal
	Snake
	ScreamingSnake
)

var styleNames = [...]string{
	Camel:          "camel",
	Kebab:          "kebab",
	Dot:            "dot",
	Pascal:         "pascal",
	Snake:          "snake",
	ScreamingSnake: "screaming-snake",
}

var styleAliases = map[string]Style{
	"camelcase":            Camel,
	"lower-camel":          Camel,
	"kebab-case":           Kebab,
	"dash":                 Kebab,
	"dot.case":             Dot,
	"dotted":               Dot,
	"pascalcase":           Pascal,
	"upper-camel":          Pascal,
	"snake-case":           Snake,
	"snake_case":           Snake,
	"screaming_snake":      ScreamingSnake,
	"screaming-snake-case": ScreamingSnake,
	"constant":             ScreamingSnake,
}

// Styles returns all supported styles in declaration order.
func Styles() []Style {
	styles := make([]Style, len(styleNames))
	for i := range styleNames {
		styles[i] = Style(i)
	}
	return styles
}

// ParseStyle looks up a style by name or alias, ignoring case.
func ParseStyle(name string) (Style, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range styleNames {
		if n == key {
			return Style(i), nil
		}
	}
	if style, ok := styleAliases[key]; ok {
		return style, nil
	}
	return 0, fmt.Errorf("unknown case style %q", name)
}

func (s Style) String() string {
	if s >= 0 && int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Set implements pflag.Value.
func (s *Style) Set(name string) error {
	style, err := ParseStyle(name)
	if err != nil {
		return err
	}
	*s = style
	return nil
}

// Type implements pflag.Value.
func (s *Style) Type() string {
	return "style"
}

func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Style) UnmarshalText(text []byte) error {
	return s.Set(string(text))
}
