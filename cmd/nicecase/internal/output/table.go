package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/mologie/nicecase"
)

var kindColors = map[nicecase.Kind]*color.Color{
	nicecase.Word:    color.New(color.FgGreen),
	nicecase.Acronym: color.New(color.FgYellow, color.Bold),
	nicecase.Numeric: color.New(color.FgCyan),
}

var inputColor = color.New(color.Bold)

// WriteConversions prints one converted value per line.
func WriteConversions(w io.Writer, doc ConversionDocument) error {
	for _, c := range doc.Results {
		if _, err := fmt.Fprintln(w, c.Output); err != nil {
			return err
		}
	}
	return nil
}

// TokenTable prints each input followed by its tokens, one per line with aligned kinds. Colors
// follow fatih/color's global NoColor switch when Colorize is set.
type TokenTable struct {
	Colorize bool
}

func (tt TokenTable) Write(w io.Writer, doc TokenDocument) error {
	for _, in := range doc.Inputs {
		if _, err := fmt.Fprintln(w, tt.paint(inputColor, in.Input)); err != nil {
			return err
		}
		width := 0
		for _, tok := range in.Tokens {
			width = max(width, runewidth.StringWidth(tok.Text))
		}
		for _, tok := range in.Tokens {
			text := runewidth.FillRight(tok.Text, width)
			if _, err := fmt.Fprintf(w, "  %s  %s\n", text, tt.paint(kindColors[tok.Kind], tok.Kind.String())); err != nil {
				return err
			}
		}
	}
	return nil
}

func (tt TokenTable) paint(c *color.Color, s string) string {
	if !tt.Colorize || c == nil {
		return s
	}
	return c.Sprint(s)
}
