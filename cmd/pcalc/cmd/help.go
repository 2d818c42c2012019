package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-pcalc/internal/helptext"
)

var helpTopicsCmd = &cobra.Command{
	Use:   "help [topic...]",
	Short: "Print help for one or more calculator operators",
	Long: `Print the calculator's built-in help text for the given operator
names, or a full topic index when none are given.`,
	RunE: runHelpTopics,
}

func init() {
	rootCmd.AddCommand(helpTopicsCmd)
}

func runHelpTopics(cmd *cobra.Command, args []string) error {
	fmt.Println(helptext.Help(args))
	return nil
}
