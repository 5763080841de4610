package cmdkit

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var omitQuotes = regexp.MustCompile(`^[a-zA-Z0-9_./-]*$`)

func newPrintEnvCmd(outerCmd *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "printenv",
		Short: "Print all environment variable values or defaults for this command",
		Args:  cobra.NoArgs,
	}
	cmd.DisableAutoGenTag = true
	cmd.DisableFlagsInUseLine = true

	//goland:noinspection GoUnhandledErrorResult for fmt.Fprintf
	printEnv := func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "# %s\n", outerCmd.CommandPath())

		outerCmd.Flags().VisitAll(func(flag *pflag.Flag) {
			annEnv := flag.Annotations[annotationEnv]
			if flag.Hidden || len(annEnv) == 0 {
				return
			}

			fmt.Fprintf(w, "\n# %s", flag.Name)
			if annUsage := flag.Annotations[annotationUsage]; len(annUsage) > 0 {
				fmt.Fprintf(w, ": %s", annUsage[0])
			}
			if typeName := flag.Value.Type(); typeName != "" {
				fmt.Fprintf(w, " (type: %s)", typeName)
			}
			if flag.Deprecated != "" {
				fmt.Fprintf(w, " (deprecated: %s)", flag.Deprecated)
			}
			fmt.Fprintln(w)

			env := annEnv[0]
			if flag.Changed {
				fmt.Fprintf(w, "%s=%s\n", env, bashQuote(flag.Value.String()))
			} else {
				fmt.Fprintf(w, "# %s=%s\n", env, bashQuote(flag.DefValue))
			}
		})
	}

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		// Cobra runs the help func when PreRunE returns ErrHelp. This prints the env dump and exits
		// successfully before the outer command's Run gets involved.
		cmd.SetHelpFunc(printEnv)
		return pflag.ErrHelp
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		// Marks this command as runnable so that Cobra calls PreRunE.
		return nil
	}

	return cmd
}

// bashQuote is cosmetic for the generated env file, not an escaping mechanism.
func bashQuote(s string) string {
	if omitQuotes.MatchString(s) {
		return s
	}
	return strconv.Quote(s)
}
