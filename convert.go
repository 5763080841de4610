// Package nicecase converts identifier-like text between naming conventions such as camelCase,
// kebab-case and dot.case.
package nicecase

import (
	"fmt"
	"reflect"
)

// Policy decides how a Converter treats values that are not text.
type Policy int

const (
	// Strict rejects nil and non-text values with ErrInvalidInput.
	Strict Policy = iota
	// Lenient turns nil into empty text and formats any other value with fmt.Sprint.
	Lenient
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ErrInvalidInput is returned by a Strict Converter for nil or non-text values.
type ErrInvalidInput struct {
	// Type of the rejected value, nil for a nil interface.
	Type reflect.Type
}

func (e ErrInvalidInput) Error() string {
	if e.Type == nil {
		return "invalid input: expected text, got nil"
	}
	return fmt.Sprintf("invalid input: expected text, got %s", e.Type)
}

type config struct {
	policy      Policy
	lettersOnly bool
}

// Option configures a Converter created by New.
type Option func(*config)

// WithPolicy selects how non-text input is handled. The default is Strict.
func WithPolicy(policy Policy) Option {
	return func(cfg *config) {
		cfg.policy = policy
	}
}

// WithLettersOnly treats digits as separators, so digit-only input converts to "".
func WithLettersOnly() Option {
	return func(cfg *config) {
		cfg.lettersOnly = true
	}
}

// Converter tokenizes arbitrary values according to its options. It holds no mutable state and
// may be shared between goroutines.
type Converter struct {
	cfg config
}

// New returns a Converter with the Strict policy unless opts say otherwise.
func New(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(&c.cfg)
	}
	return c
}

// Policy reports the input policy of c.
func (c *Converter) Policy() Policy {
	return c.cfg.policy
}

// Tokenize splits v like the package-level Tokenize after applying the input policy.
func (c *Converter) Tokenize(v any) ([]Token, error) {
	s, err := c.text(v)
	if err != nil {
		return nil, err
	}
	return tokenize(s, c.cfg.lettersOnly), nil
}

// Convert renders v in the given style.
func (c *Converter) Convert(v any, style Style) (string, error) {
	tokens, err := c.Tokenize(v)
	if err != nil {
		return "", err
	}
	return Render(tokens, style), nil
}

func (c *Converter) CamelCase(v any) (string, error) {
	return c.Convert(v, Camel)
}

func (c *Converter) KebabCase(v any) (string, error) {
	return c.Convert(v, Kebab)
}

func (c *Converter) DotCase(v any) (string, error) {
	return c.Convert(v, Dot)
}

func (c *Converter) text(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	}
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String(), nil
	}
	if c.cfg.policy != Lenient {
		if !rv.IsValid() {
			return "", ErrInvalidInput{}
		}
		return "", ErrInvalidInput{Type: rv.Type()}
	}
	if isNil(rv) {
		return "", nil
	}
	return fmt.Sprint(v), nil
}

func isNil(rv reflect.Value) bool {
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// ToCamelCase converts s to camelCase. Acronyms after the first word keep their capitals, so
// "get_API_response" becomes "getAPIResponse".
func ToCamelCase(s string) string {
	return Render(Tokenize(s), Camel)
}

// ToPascalCase converts s to PascalCase.
func ToPascalCase(s string) string {
	return Render(Tokenize(s), Pascal)
}

// ToKebabCase converts s to kebab-case. Every pair of words is hyphenated, including a word and
// trailing digits ("label24" becomes "label-24").
func ToKebabCase(s string) string {
	return Render(Tokenize(s), Kebab)
}

// ToDotCase converts s to dot.case.
func ToDotCase(s string) string {
	return Render(Tokenize(s), Dot)
}

func ToSnakeCase(s string) string {
	return Render(Tokenize(s), Snake)
}

func ToScreamingSnakeCase(s string) string {
	return Render(Tokenize(s), ScreamingSnake)
}
