package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/networkbook/networkbook/internal/config"
	"github.com/networkbook/networkbook/internal/ui"
)

type bookRow struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Backend string `json:"backend"`
	Default bool   `json:"default"`
	Current bool   `json:"current"`
}

// bookRows lists the configured books, adding the current one when it only
// lives in the data directory.
func bookRows(c *config.Config, current config.Book) []bookRow {
	defaultName := c.DefaultBook
	if defaultName == "" {
		defaultName = config.DefaultBookName
	}

	var rows []bookRow
	seenCurrent := false
	for _, b := range c.ListBooks() {
		isCurrent := b.Path == current.Path
		seenCurrent = seenCurrent || isCurrent
		rows = append(rows, bookRow{
			Name:    b.Name,
			Path:    b.Path,
			Backend: string(b.Backend),
			Default: b.Name == defaultName,
			Current: isCurrent,
		})
	}
	if !seenCurrent && current.Path != "" {
		rows = append(rows, bookRow{
			Name:    current.Name,
			Path:    current.Path,
			Backend: string(current.Backend),
			Default: current.Name == defaultName,
			Current: true,
		})
	}
	return rows
}

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "List configured books",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := bookRows(getConfig(), currentBook)

		if isJSONOutput() {
			outputSuccess(cmd, map[string]interface{}{"books": rows}, &Meta{Count: len(rows)})
			return nil
		}

		tbl := ui.NewTable(3)
		for _, r := range rows {
			marker := " "
			name := r.Name
			if r.Current {
				marker = "*"
				name = ui.AccentBold.Render(r.Name)
			}
			backend := r.Backend
			if r.Default {
				backend += " " + ui.Hint("(default)")
			}
			tbl.AddRow(marker+" "+name, r.Path, backend)
		}
		fmt.Fprint(cmd.OutOrStdout(), tbl.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(booksCmd)
}
