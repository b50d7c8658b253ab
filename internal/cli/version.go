package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/networkbook/networkbook/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show Network Book version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := buildinfo.Current()

		if isJSONOutput() {
			outputSuccess(cmd, info, nil)
			return nil
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "nb %s\n", info.Version)
		fmt.Fprintf(w, "module: %s\n", info.ModulePath)
		if info.Commit != "" {
			fmt.Fprintf(w, "commit: %s\n", info.Commit)
		}
		if info.CommitTime != "" {
			fmt.Fprintf(w, "commit_time: %s\n", info.CommitTime)
		}
		fmt.Fprintf(w, "go: %s\n", info.GoVersion)
		fmt.Fprintf(w, "platform: %s\n", info.Platform())
		if info.Modified {
			fmt.Fprintln(w, "modified: true")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
