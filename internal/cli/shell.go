package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/networkbook/networkbook/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open the interactive shell",
	Long: `Opens the interactive shell on the current book.

On a terminal this is a full-screen view with a command box and the person
list. When input is piped, commands are read one per line instead, e.g.

  printf 'create n/Alice\nlist\n' | nb shell`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd)
	},
}

func runShell(cmd *cobra.Command) error {
	s, err := openSession()
	if err != nil {
		return handleError(cmd, codeFor(err), err, suggestionFor(err))
	}

	display := displayContext()
	if display.IsTTY && stdinIsTerminal() && !isJSONOutput() {
		return shell.RunTUI(s, display)
	}
	return shell.RunLines(s, os.Stdin, cmd.OutOrStdout(), shell.LineOptions{Display: display})
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
