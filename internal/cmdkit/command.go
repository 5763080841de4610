// Package cmdkit binds configuration structs to Cobra commands. Flags are derived from struct
// fields, may be set from prefixed environment variables, and dotenv files can be loaded with
// --env-file on the root command.
package cmdkit

import (
	"github.com/mologie/nicecase"
	"github.com/spf13/cobra"
)

// Hook matches cobra.Command's various RunE functions, plus a config to be bound via Command.
type Hook[T any] func(cfg T, cmd *cobra.Command, args []string) error

// Hooks provides various RunE functions of cobra.Command. Cobra's naming scheme is reused here.
// Only the "persistent" hooks run when a subcommand is called.
type Hooks[T any] struct {
	PersistentPreRun  Hook[T]
	PreRun            Hook[T]
	Run               Hook[T]
	PostRun           Hook[T]
	PersistentPostRun Hook[T]
}

func init() {
	// All parent hooks should run, they carry env and dotenv processing.
	cobra.EnableTraverseRunHooks = true
}

// Setup creates Hooks with only PersistentPreRun set. It runs for subcommands too.
func Setup[T any](f Hook[T]) Hooks[T] {
	return Hooks[T]{PersistentPreRun: f}
}

// Run creates Hooks with only Run set.
func Run[T any](f Hook[T]) Hooks[T] {
	return Hooks[T]{Run: f}
}

func SetupAndRun[T any](setup Hook[T], run Hook[T]) Hooks[T] {
	return Hooks[T]{
		PersistentPreRun: setup,
		Run:              run,
	}
}

// RootCommand creates a command without parent. In addition to the flags of cfg, it registers
// --env-file, --env-overwrite and --env-lax as persistent flags.
func RootCommand[T any](hooks Hooks[T], cmd cobra.Command, cfg T, opts ...Option) *cobra.Command {
	return newCommand(nil, hooks, cmd, cfg, opts...)
}

// SubCommand creates a command and adds it to parent. Its env prefix defaults to the screaming
// snake case of the full command path, e.g. NICECASE_CONVERT.
func SubCommand[T any](parent *cobra.Command, hooks Hooks[T], cmd cobra.Command, cfg T, opts ...Option) *cobra.Command {
	if parent == nil {
		panic("subcommand requires a parent")
	}
	return newCommand(parent, hooks, cmd, cfg, opts...)
}

func newCommand[T any](parent *cobra.Command, hooks Hooks[T], tmpl cobra.Command, cfg T, opts ...Option) *cobra.Command {
	if tmpl.Use == "" {
		panic("use line must be set, and should include all non-global flags")
	}
	cmd := &tmpl
	cfgPtr := &cfg

	cmd.TraverseChildren = true
	cmd.DisableAutoGenTag = true
	cmd.DisableFlagsInUseLine = true
	if cmd.Args == nil {
		cmd.Args = cobra.NoArgs
	}
	if parent != nil {
		parent.AddCommand(cmd)
	}

	opts = append([]Option{WithEnvPrefix(nicecase.ToScreamingSnakeCase(cmd.CommandPath()))}, opts...)
	BindConfig(cmd, cfgPtr, opts...)

	setup := applyEnv(cmd, passCfg(cfgPtr, hooks.PersistentPreRun))
	if parent == nil {
		setup = applyDotEnv(cmd, checkEnv(cmd, setup))
	}
	cmd.PersistentPreRunE = setup
	cmd.PreRunE = passCfg(cfgPtr, hooks.PreRun)
	cmd.RunE = passCfg(cfgPtr, hooks.Run)
	cmd.PostRunE = passCfg(cfgPtr, hooks.PostRun)
	cmd.PersistentPostRunE = passCfg(cfgPtr, hooks.PersistentPostRun)

	cmd.AddCommand(newPrintEnvCmd(cmd))
	return cmd
}

type runE = func(cmd *cobra.Command, args []string) error

// passCfg dereferences cfg when the hook runs, after env variables have been applied.
func passCfg[T any](cfg *T, f Hook[T]) runE {
	if f == nil {
		return nil
	}
	return func(cmd *cobra.Command, args []string) error {
		return f(*cfg, cmd, args)
	}
}

func chain(next runE, cmd *cobra.Command, args []string) error {
	if next == nil {
		return nil
	}
	return next(cmd, args)
}
