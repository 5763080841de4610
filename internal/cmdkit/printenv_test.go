package cmdkit

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
)

func TestPrintEnv_Nested(t *testing.T) {
	type RootConfig struct {
		Foo   int     `usage:"an integer"` // will not appear in printenv, relevant for root cmd's run only
		Bar   float64 `flag:"persistent" usage:"a float, persistent"`
		Delta time.Duration
	}
	runRoot := func(cfg RootConfig, cmd *cobra.Command, args []string) error {
		return nil
	}
	rootCmd := RootCommand(Run(runRoot), cobra.Command{Use: "cmdkit-test"}, RootConfig{
		Delta: 5 * time.Minute,
	})

	type SubConfig struct {
		Baz   string `usage:"a string"`
		Gamma time.Duration
	}
	runSub := func(cfg SubConfig, cmd *cobra.Command, args []string) error {
		return nil
	}
	SubCommand(rootCmd, Run(runSub), cobra.Command{Use: "sub"}, SubConfig{
		Gamma: 10 * time.Minute,
	})

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--foo=1", "sub", "printenv", "--bar=42"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "# cmdkit-test sub\n") {
		t.Errorf("expected header with command path, got: %v", out)
	}
	for _, want := range []string{
		"# baz: a string (type: string)\n# CMDKIT_TEST_SUB_BAZ=\n",
		"# gamma (type: duration)\n# CMDKIT_TEST_SUB_GAMMA=10m0s\n",
		"# bar: a float, persistent (type: float64)\nCMDKIT_TEST_BAR=42\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got: %v", want, out)
		}
	}
	if strings.Contains(out, "CMDKIT_TEST_FOO") {
		t.Errorf("root-local flag leaked into sub printenv: %v", out)
	}
}

func TestBashQuote(t *testing.T) {
	tests := map[string]string{
		"":           "",
		"plain_42":   "plain_42",
		"a.env":      "a.env",
		"two words":  `"two words"`,
		`quote"mark`: `"quote\"mark"`,
	}
	for in, want := range tests {
		if got := bashQuote(in); got != want {
			t.Errorf("bashQuote(%q) = %q, want %q", in, got, want)
		}
	}
}
