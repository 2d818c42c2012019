// Package cmd wires the calculator's pipeline stages (lexer,
// translator, evaluator, REPL, help) to a spf13/cobra command tree,
// following the teacher's cmd/dwscript/cmd layout: one file per
// subcommand, package-level flag variables, a shared rootCmd.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "pcalc",
	Short: "An interactive S-expression rational calculator",
	Long: `pcalc reads S-expression ("Polish notation") source text, parses it
into an abstract syntax tree, and evaluates it against a lexically
scoped environment of user-definable variables and procedures.

It supports exact rational arithmetic, booleans, symbols, lists,
matrices, first-class procedures (lambda/define), conditionals,
short-circuit logic, numeric predicates, list transforms, a range
constructor, and a help facility.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
