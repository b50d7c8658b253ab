package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run \"COMMAND TEXT\"",
	Short: "Run one line of command text against the book",
	Long: `Runs command text exactly as it would be typed into the shell.

Examples:
  nb run "edit 2 n/Alice Tan e/alice@x.com"
  nb run "sort by/grad o/desc"
  nb run "help edit"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLine(cmd, strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
