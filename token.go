package nicecase

import "fmt"

// Kind classifies a Token by its casing.
type Kind uint8

const (
	// Word is an optionally capitalized lowercase run ("foo", "Foo") or a lone uppercase letter.
	Word Kind = iota
	// Acronym is a run of two or more uppercase letters ("ID", "XML").
	Acronym
	// Numeric is a run of digits.
	Numeric
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Acronym:
		return "acronym"
	case Numeric:
		return "numeric"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Token is a single word extracted from free-form text. Text never contains separators.
type Token struct {
	Text string `json:"text" yaml:"text" toml:"text" msgpack:"text"`
	Kind Kind   `json:"kind" yaml:"kind" toml:"kind" msgpack:"kind"`
}

func (t Token) String() string {
	return t.Text
}
