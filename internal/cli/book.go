package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/networkbook/networkbook/internal/audit"
	"github.com/networkbook/networkbook/internal/commands"
	"github.com/networkbook/networkbook/internal/shell"
	"github.com/networkbook/networkbook/internal/storage"
	"github.com/networkbook/networkbook/internal/ui"
)

// openSession loads the resolved book.
func openSession() (*shell.Session, error) {
	store, err := storage.Open(currentBook.Backend, currentBook.Path)
	if err != nil {
		return nil, err
	}
	s, err := shell.Open(store)
	if err != nil {
		return nil, err
	}
	s.SetAudit(audit.New(currentBook.Path, getConfig().Audit.Enabled))
	return s, nil
}

// commandOutput is the JSON data of a book command.
type commandOutput struct {
	Command  string       `json:"command"`
	Feedback string       `json:"feedback"`
	Action   string       `json:"action,omitempty"`
	Persons  []PersonJSON `json:"persons,omitempty"`
	Help     string       `json:"help,omitempty"`
}

// runLine runs one line of command text against the current book and reports
// the outcome in the selected output mode.
func runLine(cmd *cobra.Command, line string) error {
	s, err := openSession()
	if err != nil {
		return handleError(cmd, codeFor(err), err, suggestionFor(err))
	}

	res, err := s.Run(line)
	if err != nil {
		return handleError(cmd, codeFor(err), err, suggestionFor(err))
	}

	shown := s.Model().FilteredPersonList()
	if isJSONOutput() {
		out := commandOutput{Command: res.Word, Feedback: res.Feedback}
		if res.Action != commands.ActionNone {
			out.Action = res.Action.String()
		}
		if res.Action == commands.ActionHelp {
			out.Help = shell.HelpMarkdown(res.Topic)
		} else if shell.ShowsList(res.Word) {
			out.Persons = personsJSON(shown)
		}
		meta := &Meta{Count: len(out.Persons), Book: currentBook.Name}
		if res.SaveErr != nil {
			outputSuccessWithWarnings(cmd, out, []Warning{{Code: WarnNotSaved, Message: res.SaveErr.Error()}}, meta)
			return nil
		}
		outputSuccess(cmd, out, meta)
		return nil
	}

	w := cmd.OutOrStdout()
	display := displayContext()
	switch res.Action {
	case commands.ActionHelp:
		fmt.Fprint(w, shell.RenderHelp(res.Topic, display.AvailableWidth(ui.MarkdownRenderMargin)))
		return nil
	case commands.ActionExit:
		fmt.Fprintln(w, res.Feedback)
		return nil
	}

	fmt.Fprintln(w, ui.Success(res.Feedback))
	if res.SaveErr != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Warningf("Could not save %s: %v", currentBook.Path, res.SaveErr))
	}
	if shell.ShowsList(res.Word) {
		fmt.Fprint(w, ui.RenderList(shown, ui.CardOptions{Hyperlinks: display.Hyperlinks}))
	}
	return nil
}

// registerBookCommands adds one subcommand per registry entry. help is left
// to cobra and exit only makes sense inside the shell.
func registerBookCommands(root *cobra.Command) {
	for _, name := range commands.AllCommandNames() {
		if name == "help" || name == "exit" {
			continue
		}
		c := commands.GenerateCobraCommand(name, runLine)
		if name == "clear" {
			c.Flags().BoolP("yes", "y", false, "Clear without asking for confirmation")
			c.RunE = func(cmd *cobra.Command, args []string) error {
				return runClear(cmd, args)
			}
		}
		root.AddCommand(c)
	}
}

func runClear(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		if !canConfirm() {
			return handleErrorMsg(cmd, ErrConfirmationNeeded,
				"clear removes every person in "+currentBook.Path,
				"Re-run with --yes to confirm")
		}
		if !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Remove every person in %s?", currentBook.Name)) {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Info("Cancelled"))
			return nil
		}
	}
	return runLine(cmd, commands.CommandLine("clear", args))
}

func init() {
	registerBookCommands(rootCmd)
}
