package cmd

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/cwbudde/go-pcalc/internal/translator"
)

var (
	parseExpr    string
	parseDumpAST bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse calculator source and display the AST",
	Long: `Parse calculator source into its abstract syntax tree and print it.

Use -e to parse a single expression from the command line. Use
--dump-ast for a structural dump (via kr/pretty) instead of the
surface-syntax rendering.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, _, err := readInput(parseExpr, args)
	if err != nil {
		return err
	}

	node, perr := translator.Translate(input)
	if perr != nil {
		return fmt.Errorf("parsing failed: %s", perr.Format(false))
	}

	if parseDumpAST {
		fmt.Printf("%# v\n", pretty.Formatter(node))
		return nil
	}
	fmt.Println(node.String())
	return nil
}
