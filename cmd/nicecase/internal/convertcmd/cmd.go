package convertcmd

import (
	"log/slog"
	"time"

	"github.com/mologie/nicecase"
	"github.com/mologie/nicecase/cmd/nicecase/internal/inputs"
	"github.com/mologie/nicecase/cmd/nicecase/internal/logutil"
	"github.com/mologie/nicecase/cmd/nicecase/internal/output"
	"github.com/mologie/nicecase/internal/cmdkit"
	"github.com/spf13/cobra"
)

type Config struct {
	Style       nicecase.Style `param:"style,s" usage:"camel, kebab, dot, pascal, snake, or screaming-snake"`
	LettersOnly bool           `usage:"treat digits as separators"`
	File        []string       `param:"file,f" usage:"read inputs line by line from these files"`
	Jobs        int            `usage:"number of files to read concurrently, 0 for one per CPU"`
	Output      output.Format  `param:"output,o" usage:"text, json, yaml, toml, or msgpack"`
}

func Create(parent *cobra.Command) *cobra.Command {
	return cmdkit.SubCommand(parent, cmdkit.Run(run), cobra.Command{
		Use:   "convert [--style <style>] [--letters-only] [--file <path>]... [--output <format>] [text...]",
		Short: "Convert text to a naming convention",
		Long: "Convert every argument, or every line of the given files or stdin, to the selected " +
			"naming convention. Words are split at separators, case changes, acronyms and digits.",
		Args: cobra.ArbitraryArgs,
	}, Config{
		Style:  nicecase.Camel,
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

	startTime := time.Now()
	doc := output.ConversionDocument{Results: make([]output.Conversion, 0, len(texts))}
	for _, text := range texts {
		converted, err := conv.Convert(text, cfg.Style)
		if err != nil {
			return err
		}
		doc.Results = append(doc.Results, output.Conversion{Input: text, Output: converted, Style: cfg.Style})
	}
	log.Debug("converted inputs",
		slog.Int("count", len(texts)),
		slog.String("style", cfg.Style.String()),
		slog.Duration("duration", time.Since(startTime)))

	if cfg.Output == output.FormatText {
		return output.WriteConversions(cmd.OutOrStdout(), doc)
	}
	return output.Encode(cmd.OutOrStdout(), cfg.Output, doc)
}
