package tokenscmd

import (
	"log/slog"

	"github.com/mologie/nicecase"
	"github.com/mologie/nicecase/cmd/nicecase/internal/inputs"
	"github.com/mologie/nicecase/cmd/nicecase/internal/logutil"
	"github.com/mologie/nicecase/cmd/nicecase/internal/output"
	"github.com/mologie/nicecase/internal/cmdkit"
	"github.com/spf13/cobra"
)

type Config struct {
	LettersOnly bool          `usage:"treat digits as separators"`
	File        []string      `param:"file,f" usage:"read inputs line by line from these files"`
	Jobs        int           `usage:"number of files to read concurrently, 0 for one per CPU"`
	Output      output.Format `param:"output,o" usage:"text, json, yaml, toml, or msgpack"`
}

func Create(parent *cobra.Command) *cobra.Command {
	return cmdkit.SubCommand(parent, cmdkit.Run(run), cobra.Command{
		Use:   "tokens [--letters-only] [--file <path>]... [--output <format>] [text...]",
		Short: "Show how text is split into words",
		Args:  cobra.ArbitraryArgs,
	}, Config{
		Output: output.FormatText,
	})
}

func run(cfg Config, cmd *cobra.Command, args []string) error {
	log := logutil.FromContext(cmd.Context())
	texts, err := inputs.Source{
		Args:  args,
		Files: cfg.File,
		Jobs:  cfg.Jobs,
		Stdin: cmd.InOrStdin(),
	}.Read(cmd.Context())
	if err != nil {
		return err
	}

	var opts []nicecase.Option
	if cfg.LettersOnly {
		opts = append(opts, nicecase.WithLettersOnly())
	}
	conv := nicecase.New(opts...)

	doc := output.TokenDocument{Inputs: make([]output.Tokenization, 0, len(texts))}
	total := 0
	for _, text := range texts {
		tokens, err := conv.Tokenize(text)
		if err != nil {
			return err
		}
		total += len(tokens)
		doc.Inputs = append(doc.Inputs, output.Tokenization{Input: text, Tokens: tokens})
	}
	log.Debug("tokenized inputs", slog.Int("inputs", len(texts)), slog.Int("tokens", total))

	if cfg.Output == output.FormatText {
		return output.TokenTable{Colorize: true}.Write(cmd.OutOrStdout(), doc)
	}
	return output.Encode(cmd.OutOrStdout(), cfg.Output, doc)
}
