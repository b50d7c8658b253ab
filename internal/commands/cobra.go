package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

// Handler runs a command line assembled from a generated subcommand.
// The line is exactly what a user would type into the shell, e.g.
// "edit 2 n/Alice Tan".
type Handler func(cmd *cobra.Command, line string) error

// GenerateCobraCommand creates a Cobra command from registry metadata.
// Positional words after the subcommand are joined back into command text, so
// `nb edit 2 n/Alice Tan` and the shell input "edit 2 n/Alice Tan" behave the same.
func GenerateCobraCommand(name string, handler Handler) *cobra.Command {
	meta, ok := Registry[name]
	if !ok {
		return nil
	}

	cmd := &cobra.Command{
		Use:   meta.Usage,
		Short: meta.Description,
		Long:  longDescription(meta),
	}

	if len(meta.Args) == 0 && len(meta.Prefixes) == 0 {
		cmd.Args = cobra.NoArgs
	} else if requiresInput(meta) {
		cmd.Args = cobra.MinimumNArgs(1)
	} else {
		cmd.Args = cobra.ArbitraryArgs
	}

	if len(meta.Args) > 0 {
		cmd.ValidArgsFunction = generateCompletionFunc(meta)
	}

	if handler != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			return handler(cmd, CommandLine(name, args))
		}
	}

	return cmd
}

// CommandLine joins a command word and its arguments into shell input.
func CommandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

func longDescription(meta Meta) string {
	var b strings.Builder
	if meta.LongDesc != "" {
		b.WriteString(meta.LongDesc)
	} else {
		b.WriteString(meta.Description)
	}

	if len(meta.Args) > 0 || len(meta.Prefixes) > 0 {
		b.WriteString("\n\nArguments:\n")
		for _, arg := range meta.Args {
			b.WriteString("  " + padRight(arg.Name, 12) + arg.Description + "\n")
		}
		for _, p := range meta.Prefixes {
			label := p.Token + p.Placeholder
			desc := p.Description
			if p.Repeatable {
				desc += " (repeatable)"
			}
			b.WriteString("  " + padRight(label, 12) + desc + "\n")
		}
	}

	if len(meta.Examples) > 0 {
		b.WriteString("\nExamples:\n")
		for _, ex := range meta.Examples {
			b.WriteString("  nb " + ex + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func requiresInput(meta Meta) bool {
	for _, a := range meta.Args {
		if a.Required {
			return true
		}
	}
	for _, p := range meta.Prefixes {
		if p.Required {
			return true
		}
	}
	return false
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}

// generateCompletionFunc completes the first positional argument from static completions.
func generateCompletionFunc(meta Meta) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, completedArgs []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(completedArgs) >= len(meta.Args) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var matches []string
		for _, c := range meta.Args[len(completedArgs)].Completions {
			if strings.HasPrefix(c, toComplete) {
				matches = append(matches, c)
			}
		}
		return matches, cobra.ShellCompDirectiveNoFileComp
	}
}
