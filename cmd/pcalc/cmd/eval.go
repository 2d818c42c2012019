package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-pcalc/internal/environment"
	"github.com/cwbudde/go-pcalc/internal/evaluator"
	"github.com/cwbudde/go-pcalc/internal/prettyprint"
	"github.com/cwbudde/go-pcalc/internal/translator"
)

var (
	evalExpr        string
	evalFormat      string
	evalPrelude     string
	evalPreludeJSON string
)

var evalCmd = &cobra.Command{
	Use:   "eval [file]",
	Short: "Evaluate an expression and print its result",
	Long: `Evaluate calculator source against a fresh root environment and print
the resulting value.

Examples:
  pcalc eval -e "(+ 1/2 1/3)"
  pcalc eval --prelude constants.yaml -e "(* 2 pi)"
  pcalc eval --prelude-json constants.json -e "(* 2 pi)"
  pcalc eval --format json -e "(list 1 2 3)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	evalCmd.Flags().StringVar(&evalFormat, "format", "text", "output format: text or json")
	evalCmd.Flags().StringVar(&evalPrelude, "prelude", "", "YAML file of name: literal bindings to preload")
	evalCmd.Flags().StringVar(&evalPreludeJSON, "prelude-json", "", "JSON file of name: literal bindings to preload")
}

func runEval(cmd *cobra.Command, args []string) error {
	input, _, err := readInput(evalExpr, args)
	if err != nil {
		return err
	}

	env := environment.New()
	if evalPrelude != "" {
		if err := loadPrelude(evalPrelude, env); err != nil {
			return err
		}
	}
	if evalPreludeJSON != "" {
		if err := loadPreludeJSON(evalPreludeJSON, env); err != nil {
			return err
		}
	}

	node, perr := translator.Translate(input)
	if perr != nil {
		return fmt.Errorf("%s", perr.Format(false))
	}

	result, eerr := evaluator.New().Eval(node, env)
	if eerr != nil {
		return fmt.Errorf("%s", eerr.Format(false))
	}

	switch evalFormat {
	case "json":
		doc, jerr := prettyprint.FormatJSON(result)
		if jerr != nil {
			return jerr
		}
		fmt.Println(doc)
	default:
		fmt.Println(prettyprint.Format(result))
	}
	return nil
}
