package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-pcalc/internal/repl"
)

var (
	replPrelude     string
	replPreludeJSON string
	replPrompt      string
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	Long: `Start the calculator's interactive loop: read one line, evaluate it
against a persistent root environment, and print the result, until
"exit" or end-of-input.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replPrelude, "prelude", "", "YAML file of name: literal bindings to preload")
	replCmd.Flags().StringVar(&replPreludeJSON, "prelude-json", "", "JSON file of name: literal bindings to preload")
	replCmd.Flags().StringVar(&replPrompt, "prompt", "pcalc> ", "prompt string; pass an empty string to suppress it")
}

func runRepl(cmd *cobra.Command, args []string) error {
	r := repl.New(os.Stdin, os.Stdout)
	if replPrelude != "" {
		if err := loadPrelude(replPrelude, r.Env()); err != nil {
			return err
		}
	}
	if replPreludeJSON != "" {
		if err := loadPreludeJSON(replPreludeJSON, r.Env()); err != nil {
			return err
		}
	}
	r.Run(replPrompt)
	return nil
}
