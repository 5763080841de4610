package output

import "github.com/mologie/nicecase"

type Conversion struct {
	Input  string         `json:"input" yaml:"input" toml:"input" msgpack:"input"`
	Output string         `json:"output" yaml:"output" toml:"output" msgpack:"output"`
	Style  nicecase.Style `json:"style" yaml:"style" toml:"style" msgpack:"style"`
}

type ConversionDocument struct {
	Results []Conversion `json:"results" yaml:"results" toml:"results" msgpack:"results"`
}

type Tokenization struct {
	Input  string           `json:"input" yaml:"input" toml:"input" msgpack:"input"`
	Tokens []nicecase.Token `json:"tokens" yaml:"tokens" toml:"tokens" msgpack:"tokens"`
}

type TokenDocument struct {
	Inputs []Tokenization `json:"inputs" yaml:"inputs" toml:"inputs" msgpack:"inputs"`
}
