package stylescmd

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/mologie/nicecase"
	"github.com/mologie/nicecase/internal/cmdkit"
	"github.com/spf13/cobra"
)

type Config struct {
	Example string `usage:"text rendered in every style"`
}

func Create(parent *cobra.Command) *cobra.Command {
	return cmdkit.SubCommand(parent, cmdkit.Run(run), cobra.Command{
		Use:   "styles [--example <text>]",
		Short: "List supported naming conventions",
	}, Config{
		Example: "get XMLHttp response 2",
	})
}

func run(cfg Config, cmd *cobra.Command, args []string) error {
	tokens := nicecase.Tokenize(cfg.Example)
	width := 0
	for _, style := range nicecase.Styles() {
		width = max(width, runewidth.StringWidth(style.String()))
	}
	w := cmd.OutOrStdout()
	for _, style := range nicecase.Styles() {
		if _, err := fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(style.String(), width), nicecase.Render(tokens, style)); err != nil {
			return err
		}
	}
	return nil
}
