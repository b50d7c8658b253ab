package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/networkbook/networkbook/internal/audit"
	"github.com/networkbook/networkbook/internal/ui"
)

var historySince time.Duration

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the commands that changed the book",
	Long: `Lists the commands that changed the current book, oldest first.

Recording is off by default; enable it with

  [audit]
  enabled = true

in config.toml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l := audit.New(currentBook.Path, true)

		var entries []audit.Entry
		var err error
		if historySince > 0 {
			entries, err = l.Since(time.Now().Add(-historySince))
		} else {
			entries, err = l.Entries()
		}
		if err != nil {
			return handleError(cmd, ErrStorage, err, "")
		}

		if isJSONOutput() {
			outputSuccess(cmd, map[string]interface{}{"entries": entries}, &Meta{Count: len(entries), Book: currentBook.Name})
			return nil
		}

		w := cmd.OutOrStdout()
		if len(entries) == 0 {
			if !getConfig().Audit.Enabled {
				fmt.Fprintln(w, ui.Hint("No history. Set [audit] enabled = true in config.toml to record changes."))
			} else {
				fmt.Fprintln(w, ui.Hint("No history."))
			}
			return nil
		}

		tbl := ui.NewTable(3)
		for _, e := range entries {
			input := e.Input
			if !e.Saved {
				input += " " + ui.Hint("(not saved)")
			}
			tbl.AddRow(ui.Muted.Render(e.Timestamp.Local().Format("2006-01-02 15:04")), input, ui.Count(e.Persons, "person", "persons"))
		}
		fmt.Fprint(w, tbl.String())
		return nil
	},
}

func init() {
	historyCmd.Flags().DurationVar(&historySince, "since", 0, "Only show changes newer than this (e.g. 24h)")
	rootCmd.AddCommand(historyCmd)
}
