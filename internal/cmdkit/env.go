package cmdkit

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// these may be replaced temporarily by tests
var (
	pkgDotEnvLoad     = godotenv.Load
	pkgDotEnvOverload = godotenv.Overload
	pkgLookupEnv      = os.LookupEnv
	pkgEnviron        = os.Environ
)

type FlagError struct {
	Flag  *pflag.Flag
	Error error
}

type ErrInvalidEnvironment struct {
	FlagErrors []FlagError
}

func (e ErrInvalidEnvironment) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid environment variables:\n")
	for _, flag := range e.FlagErrors {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", flag.Flag.Annotations[annotationEnv][0], flag.Error))
	}
	return sb.String()
}

type ErrUnboundEnvironment struct {
	Names []string
}

func (e ErrUnboundEnvironment) Error() string {
	var sb strings.Builder
	sb.WriteString("unbound environment variables:\n")
	for _, name := range e.Names {
		sb.WriteString(fmt.Sprintf("  %s\n", name))
	}
	return sb.String()
}

// applyEnv sets every local flag of cmd that was not given explicitly from its env variable.
func applyEnv(cmd *cobra.Command, next runE) runE {
	return func(leafCmd *cobra.Command, args []string) error {
		var err ErrInvalidEnvironment
		cmd.LocalFlags().VisitAll(func(flag *pflag.Flag) {
			annotations, ok := flag.Annotations[annotationEnv]
			if !ok || flag.Changed {
				return
			}
			value, ok := pkgLookupEnv(annotations[0])
			if !ok {
				return
			}
			if setErr := flag.Value.Set(value); setErr != nil {
				err.FlagErrors = append(err.FlagErrors, FlagError{Flag: flag, Error: setErr})
				return
			}
			flag.Changed = true
		})
		if len(err.FlagErrors) > 0 {
			return err
		}
		return chain(next, leafCmd, args)
	}
}

// checkEnv rejects env variables that carry the root command's prefix but are bound to no flag of
// the command being run, unless --env-lax is given.
func checkEnv(rootCmd *cobra.Command, next runE) runE {
	lax := rootCmd.PersistentFlags().Bool("env-lax", false, "ignore unknown environment variables with this command's prefix")
	return func(leafCmd *cobra.Command, args []string) error {
		if !*lax {
			prefix := rootCmd.Annotations[annotationEnv]
			unbound := make(map[string]struct{})
			for _, env := range pkgEnviron() {
				key, _, ok := strings.Cut(env, "=")
				if ok && strings.HasPrefix(key, prefix) {
					unbound[key] = struct{}{}
				}
			}
			prune := func(flag *pflag.Flag) {
				if annotations, ok := flag.Annotations[annotationEnv]; ok {
					delete(unbound, annotations[0])
				}
			}
			leafCmd.LocalFlags().VisitAll(prune)
			leafCmd.VisitParents(func(cmd *cobra.Command) {
				cmd.LocalFlags().VisitAll(prune)
			})
			if len(unbound) > 0 {
				return ErrUnboundEnvironment{Names: slices.Sorted(maps.Keys(unbound))}
			}
		}
		return chain(next, leafCmd, args)
	}
}

// applyDotEnv loads --env-file files before any env variable is applied.
func applyDotEnv(rootCmd *cobra.Command, next runE) runE {
	fs := rootCmd.PersistentFlags()
	files := fs.StringArray("env-file", nil, "load dotenv file (repeat for multiple files)")
	overwrite := fs.Bool("env-overwrite", false, "give precedence to dotenv environment variables")
	return func(leafCmd *cobra.Command, args []string) error {
		if len(*files) != 0 {
			loadFunc := pkgDotEnvLoad
			if *overwrite {
				loadFunc = pkgDotEnvOverload
			}
			if err := loadFunc(*files...); err != nil {
				return fmt.Errorf("load dotenv: %w", err)
			}
		}
		return chain(next, leafCmd, args)
	}
}
