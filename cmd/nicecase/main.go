// nicecase converts identifiers and free-form text between naming conventions
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mologie/nicecase/cmd/nicecase/internal/convertcmd"
	"github.com/mologie/nicecase/cmd/nicecase/internal/logutil"
	"github.com/mologie/nicecase/cmd/nicecase/internal/stylescmd"
	"github.com/mologie/nicecase/cmd/nicecase/internal/tokenscmd"
	"github.com/mologie/nicecase/internal/cmdkit"
	"github.com/spf13/cobra"
)

type MainConfig struct {
	Log     logutil.Config `flag:"persistent"`
	NoColor bool           `flag:"persistent" usage:"disable colored output"`
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the root command and returns the process exit code. Errors are logged at FATAL,
// through the configured logger once setup ran and through a default text logger before that.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}
	if cmd == nil {
		cmd = root
	}
	log, ok := logutil.Lookup(cmd.Context())
	if !ok {
		log, _ = logutil.DefaultConfig().NewLogger(stderr)
	}
	logutil.Fatal(ctx, log, "command failed", err)
	return 1
}

func newRootCommand() *cobra.Command {
	cmd := cmdkit.RootCommand(cmdkit.Setup(setup), cobra.Command{
		Use:          "nicecase [--log-level <level>] [--log-format <TEXT|JSON>] [--no-color]",
		Short:        "Convert identifiers between camelCase, kebab-case, dot.case and friends",
		SilenceUsage:  true,
		SilenceErrors: true,
	}, MainConfig{
		Log: logutil.DefaultConfig(),
	})

	convertcmd.Create(cmd)
	tokenscmd.Create(cmd)
	stylescmd.Create(cmd)
	return cmd
}

func setup(cfg MainConfig, cmd *cobra.Command, args []string) error {
	// Subcommands get their logger from the context instead of slog.Default, so that tests can
	// run them without global state.
	log, err := cfg.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	log.Log(cmd.Context(), logutil.LevelTrace, "command starting",
		slog.String("command", cmd.CommandPath()),
		slog.Int("args", len(args)))
	cmd.SetContext(logutil.WithLogContext(cmd.Context(), log))
	return nil
}
