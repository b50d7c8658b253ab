// Package commands provides a central registry of network book commands and
// the command objects they execute. The registry is the single source of
// truth for command metadata, used by the parser's usage errors, the help
// view and the generated CLI subcommands.
package commands

import "sort"

// Meta defines metadata for a command word.
type Meta struct {
	Name        string      // Command word (e.g., "edit", "sort")
	Description string      // Short description
	LongDesc    string      // Long description (for --help)
	Usage       string      // Grammar, e.g. "edit INDEX [n/NAME] ..."
	Args        []ArgMeta   // Positional arguments (the preamble)
	Prefixes    []PrefixArg // Prefixed arguments
	Examples    []string    // Usage examples
	Mutates     bool        // Whether the command changes the book
}

// ArgMeta defines a positional argument.
type ArgMeta struct {
	Name        string   // Argument name
	Description string   // Description
	Required    bool     // Is this argument required?
	Completions []string // Static completions (if any)
}

// PrefixArg describes one prefixed argument.
type PrefixArg struct {
	Token       string // e.g. "p/"
	Placeholder string // e.g. "PHONE"
	Description string
	Repeatable  bool
	Required    bool
}

var personPrefixArgs = []PrefixArg{
	{Token: "p/", Placeholder: "PHONE", Description: "Phone number, at least 3 digits", Repeatable: true},
	{Token: "e/", Placeholder: "EMAIL", Description: "Email address", Repeatable: true},
	{Token: "l/", Placeholder: "LINK", Description: "Web link; https:// is assumed when missing", Repeatable: true},
	{Token: "g/", Placeholder: "GRAD", Description: "Graduation year (2024) or term (AY2324-S1)"},
	{Token: "c/", Placeholder: "COURSE", Description: "Course taken", Repeatable: true},
	{Token: "s/", Placeholder: "SPEC", Description: "Specialisation", Repeatable: true},
	{Token: "t/", Placeholder: "TAG", Description: "Tag (letters, digits, - and _)", Repeatable: true},
	{Token: "pr/", Placeholder: "PRIORITY", Description: "high, medium or low"},
}

var nameArg = PrefixArg{Token: "n/", Placeholder: "NAME", Description: "Full name"}

var indexArg = ArgMeta{Name: "INDEX", Description: "Number shown next to the person in the displayed list", Required: true}

// Registry holds all registered commands.
var Registry = map[string]Meta{
	"create": {
		Name:        "create",
		Description: "Add a new person to the network book",
		LongDesc: `Creates a new person. A name is required; every other field is optional.
Fields marked as repeatable may be given several times.`,
		Usage:    "create n/NAME [p/PHONE]... [e/EMAIL]... [l/LINK]... [g/GRAD] [c/COURSE]... [s/SPEC]... [t/TAG]... [pr/PRIORITY]",
		Prefixes: append([]PrefixArg{withRequired(nameArg)}, personPrefixArgs...),
		Examples: []string{
			"create n/Alice Tan p/91234567 e/alice@example.com t/friend",
			"create n/Bob g/AY2324-S2 c/CS2103T pr/high",
		},
		Mutates: true,
	},
	"add": {
		Name:        "add",
		Description: "Add details to an existing person",
		LongDesc: `Appends phones, emails, links, courses, specialisations and tags to the
person at INDEX, keeping the values already there. Graduation and priority
are replaced. Adding a value the person already has is an error.`,
		Usage:    "add INDEX [p/PHONE]... [e/EMAIL]... [l/LINK]... [g/GRAD] [c/COURSE]... [s/SPEC]... [t/TAG]... [pr/PRIORITY]",
		Args:     []ArgMeta{indexArg},
		Prefixes: personPrefixArgs,
		Examples: []string{
			"add 1 p/98765432 e/work@example.com",
			"add 3 t/mentor",
		},
		Mutates: true,
	},
	"edit": {
		Name:        "edit",
		Description: "Edit the details of a person",
		LongDesc: `Replaces the given fields of the person at INDEX. Fields not mentioned are
left unchanged. A prefix with no value clears that field (t/ removes every
tag); g/ and pr/ with no value unset graduation and priority. Every prefix
except t/ may appear at most once; use add to give more values.`,
		Usage:    "edit INDEX [n/NAME] [p/PHONE] [e/EMAIL] [l/LINK] [g/GRAD] [c/COURSE] [s/SPEC] [t/TAG]... [pr/PRIORITY]",
		Args:     []ArgMeta{indexArg},
		Prefixes: append([]PrefixArg{nameArg}, onlyRepeatable(personPrefixArgs, "t/")...),
		Examples: []string{
			"edit 2 n/Alice Tan e/alice@x.com",
			"edit 1 t/",
		},
		Mutates: true,
	},
	"delete": {
		Name:        "delete",
		Description: "Delete a person",
		Usage:       "delete INDEX",
		Args:        []ArgMeta{indexArg},
		Examples:    []string{"delete 3"},
		Mutates:     true,
	},
	"list": {
		Name:        "list",
		Description: "List every person",
		LongDesc:    "Removes any active find filter and shows the whole network book.",
		Usage:       "list",
		Examples:    []string{"list"},
	},
	"find": {
		Name:        "find",
		Description: "Find persons whose name contains any of the keywords",
		LongDesc:    "Matching is case-insensitive and any keyword may match part of a name.",
		Usage:       "find KEYWORD [MORE_KEYWORDS]...",
		Args:        []ArgMeta{{Name: "KEYWORD", Description: "Part of a name to look for", Required: true}},
		Examples:    []string{"find alice", "find tan lee"},
	},
	"sort": {
		Name:        "sort",
		Description: "Sort the displayed list",
		LongDesc:    "Persons without the sorted field are always shown last. by/none restores insertion order.",
		Usage:       "sort by/FIELD [o/ORDER]",
		Prefixes: []PrefixArg{
			{Token: "by/", Placeholder: "FIELD", Description: "name, grad, priority or none", Required: true},
			{Token: "o/", Placeholder: "ORDER", Description: "asc (default) or desc"},
		},
		Examples: []string{"sort by/name", "sort by/grad o/desc"},
	},
	"filter": {
		Name:        "filter",
		Description: "Filter the displayed list by a field (not yet available)",
		Usage:       "filter f/FIELD [fin/true|false]",
		Prefixes: []PrefixArg{
			{Token: "f/", Placeholder: "FIELD", Description: "Field to filter on", Required: true},
			{Token: "fin/", Placeholder: "FINISHED", Description: "Only include finished (true) or current (false) entries"},
		},
		Examples: []string{"filter f/course fin/false"},
	},
	"clear": {
		Name:        "clear",
		Description: "Remove every person from the network book",
		Usage:       "clear",
		Examples:    []string{"clear"},
		Mutates:     true,
	},
	"help": {
		Name:        "help",
		Description: "Show help",
		Usage:       "help [COMMAND]",
		Args:        []ArgMeta{{Name: "COMMAND", Description: "Command to show help for"}},
		Examples:    []string{"help", "help edit"},
	},
	"exit": {
		Name:        "exit",
		Description: "Exit the network book",
		Usage:       "exit",
		Examples:    []string{"exit"},
	},
}

// onlyRepeatable copies args, keeping Repeatable only on the given tokens.
func onlyRepeatable(args []PrefixArg, tokens ...string) []PrefixArg {
	out := make([]PrefixArg, len(args))
	for i, a := range args {
		a.Repeatable = false
		for _, t := range tokens {
			if a.Token == t {
				a.Repeatable = true
			}
		}
		out[i] = a
	}
	return out
}

func withRequired(p PrefixArg) PrefixArg {
	p.Required = true
	return p
}

// GetCommandMeta returns the metadata for a command.
func GetCommandMeta(name string) (Meta, bool) {
	meta, ok := Registry[name]
	return meta, ok
}

// AllCommandNames returns all registered command names, sorted.
func AllCommandNames() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsMutating reports whether the named command can change the book.
func IsMutating(name string) bool {
	return Registry[name].Mutates
}

// UsageMessage is the text shown when a command's arguments do not match its grammar.
func UsageMessage(name string) string {
	meta, ok := Registry[name]
	if !ok {
		return ""
	}
	msg := meta.Name + ": " + meta.Description + ".\nUsage: " + meta.Usage
	if len(meta.Examples) > 0 {
		msg += "\nExample: " + meta.Examples[0]
	}
	return msg
}

func init() {
	help := Registry["help"]
	help.Args[0].Completions = AllCommandNames()
	Registry["help"] = help
}
