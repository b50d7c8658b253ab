package parser

import (
	"strings"

	"github.com/networkbook/networkbook/internal/commands"
	"github.com/networkbook/networkbook/internal/errs"
	"github.com/networkbook/networkbook/internal/logger"
	"github.com/networkbook/networkbook/internal/model"
)

const (
	MessageUnknownCommand       = "Unknown command"
	MessageInvalidCommandFormat = "Invalid command format!"
)

type commandParser func(args string) (commands.Command, error)

var parsers = map[string]commandParser{
	"create": parseCreate,
	"add":    parseAdd,
	"edit":   parseEdit,
	"delete": parseDelete,
	"list":   noArgs(commands.ListCommand{}),
	"find":   parseFind,
	"sort":   parseSort,
	"filter": parseFilter,
	"clear":  noArgs(commands.ClearCommand{}),
	"help":   parseHelp,
	"exit":   noArgs(commands.ExitCommand{}),
}

// ParseCommand parses one line of user input into a command.
func ParseCommand(input string) (commands.Command, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, errs.New(errs.KindInvalidCommandFormat,
			MessageInvalidCommandFormat+"\n"+commands.UsageMessage("help"))
	}

	word, args := splitCommandWord(trimmed)
	parse, ok := parsers[word]
	if !ok {
		return nil, errs.Newf(errs.KindUnknownCommand, "%s: %s", MessageUnknownCommand, word)
	}

	logger.Logger.Debug("parsing command", "word", word, "args", args)
	cmd, err := parse(args)
	if err != nil {
		logger.Logger.Debug("command rejected", "word", word, "kind", errs.KindOf(err), "err", err)
		return nil, err
	}
	return cmd, nil
}

// splitCommandWord separates the first word from the rest of the input. The
// rest keeps its leading space so a prefix right after the word still counts.
func splitCommandWord(input string) (string, string) {
	i := strings.IndexFunc(input, isSpace)
	if i < 0 {
		return input, ""
	}
	return input[:i], input[i:]
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' }

func invalidFormat(word string, cause error) error {
	msg := MessageInvalidCommandFormat + "\n" + commands.UsageMessage(word)
	if cause != nil {
		return errs.Wrap(errs.KindInvalidCommandFormat, cause, msg)
	}
	return errs.New(errs.KindInvalidCommandFormat, msg)
}

func noArgs(cmd commands.Command) commandParser {
	return func(args string) (commands.Command, error) {
		if strings.TrimSpace(args) != "" {
			return nil, invalidFormat(cmd.Word(), nil)
		}
		return cmd, nil
	}
}

// parseIndexedPreamble reads the INDEX preamble of add, edit and delete.
func parseIndexedPreamble(word string, mm ArgMultimap) (model.Index, error) {
	if mm.Preamble() == "" {
		return model.Index{}, invalidFormat(word, nil)
	}
	index, err := ParseIndex(mm.Preamble())
	if err != nil {
		return model.Index{}, invalidFormat(word, err)
	}
	return index, nil
}

func parseCreate(args string) (commands.Command, error) {
	mm := Tokenize(args, PersonPrefixes...)
	if !mm.Has(PrefixName) || mm.Preamble() != "" {
		return nil, invalidFormat("create", nil)
	}
	if err := mm.VerifyNoDuplicatePrefixesFor(PrefixName, PrefixGraduation, PrefixPriority); err != nil {
		return nil, err
	}

	d, err := GenerateDescriptor(mm)
	if err != nil {
		return nil, err
	}
	person, err := d.Build()
	if err != nil {
		return nil, err
	}
	return commands.CreateCommand{Person: person}, nil
}

var addPrefixes = PersonPrefixes[1:]

func parseAdd(args string) (commands.Command, error) {
	mm := Tokenize(args, addPrefixes...)
	index, err := parseIndexedPreamble("add", mm)
	if err != nil {
		return nil, err
	}
	if err := mm.VerifyNoDuplicatePrefixesFor(PrefixGraduation, PrefixPriority); err != nil {
		return nil, err
	}

	d, err := GenerateDescriptor(mm)
	if err != nil {
		return nil, err
	}
	if cleared := d.ClearedFields(); len(cleared) > 0 {
		return nil, errs.Newf(errs.KindInvalidFieldFormat,
			"Values to add cannot be empty: %s", strings.Join(cleared, ", "))
	}
	if !d.IsAnyFieldEdited() {
		return nil, errs.New(errs.KindNothingToEdit, commands.MessageNothingToAdd)
	}
	return commands.AddCommand{Index: index, Descriptor: d}, nil
}

// editSingularPrefixes may appear once in an edit: edit replaces a whole
// field with one value, and only tags take several. add appends instead.
var editSingularPrefixes = []Prefix{
	PrefixName, PrefixPhone, PrefixEmail, PrefixLink, PrefixGraduation,
	PrefixCourse, PrefixSpecialisation, PrefixPriority,
}

func parseEdit(args string) (commands.Command, error) {
	mm := Tokenize(args, PersonPrefixes...)
	index, err := parseIndexedPreamble("edit", mm)
	if err != nil {
		return nil, err
	}
	if err := mm.VerifyNoDuplicatePrefixesFor(editSingularPrefixes...); err != nil {
		return nil, err
	}

	d, err := GenerateDescriptor(mm)
	if err != nil {
		return nil, err
	}
	if !d.IsAnyFieldEdited() {
		return nil, errs.New(errs.KindNothingToEdit, commands.MessageNotEdited)
	}
	return commands.EditCommand{Index: index, Descriptor: d}, nil
}

func parseDelete(args string) (commands.Command, error) {
	mm := Tokenize(args)
	index, err := parseIndexedPreamble("delete", mm)
	if err != nil {
		return nil, err
	}
	return commands.DeleteCommand{Index: index}, nil
}

func parseFind(args string) (commands.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat("find", nil)
	}
	return commands.FindCommand{Keywords: keywords}, nil
}

func parseSort(args string) (commands.Command, error) {
	mm := Tokenize(args, PrefixSortField, PrefixSortOrder)
	if !mm.Has(PrefixSortField) || mm.Preamble() != "" {
		return nil, invalidFormat("sort", nil)
	}
	if err := mm.VerifyNoDuplicatePrefixesFor(PrefixSortField, PrefixSortOrder); err != nil {
		return nil, err
	}

	rawField, _ := mm.Value(PrefixSortField)
	field, err := parseSortField(rawField)
	if err != nil {
		return nil, err
	}
	order := model.SortAscending
	if rawOrder, ok := mm.Value(PrefixSortOrder); ok {
		if order, err = parseSortOrder(rawOrder); err != nil {
			return nil, err
		}
	}
	return commands.SortCommand{Field: field, Order: order}, nil
}

func parseSortField(raw string) (model.SortField, error) {
	want := model.SortField(strings.ToLower(strings.TrimSpace(raw)))
	for _, f := range model.SortFields {
		if f == want {
			return f, nil
		}
	}
	return "", errs.ForField("sort field", "Sort field should be one of: name, grad, priority, none")
}

func parseSortOrder(raw string) (model.SortOrder, error) {
	switch model.SortOrder(strings.ToLower(strings.TrimSpace(raw))) {
	case model.SortAscending:
		return model.SortAscending, nil
	case model.SortDescending:
		return model.SortDescending, nil
	default:
		return "", errs.ForField("sort order", "Sort order should be either asc or desc")
	}
}

func parseFilter(args string) (commands.Command, error) {
	mm := Tokenize(args, PrefixFilterField, PrefixFilterFinished)
	if err := mm.VerifyNoDuplicatePrefixesFor(PrefixFilterField, PrefixFilterFinished); err != nil {
		return nil, err
	}

	var cmd commands.FilterCommand
	if raw, ok := mm.Value(PrefixFilterFinished); ok {
		fin, err := ParseBool(raw)
		if err != nil {
			return nil, err
		}
		cmd.Finished = &fin
	}

	field, ok := mm.Value(PrefixFilterField)
	if !ok || field == "" || mm.Preamble() != "" {
		return nil, invalidFormat("filter", nil)
	}
	cmd.Field = field
	return cmd, nil
}

func parseHelp(args string) (commands.Command, error) {
	topic := strings.TrimSpace(args)
	if topic == "" {
		return commands.HelpCommand{}, nil
	}
	if _, ok := commands.GetCommandMeta(topic); !ok {
		return nil, errs.Newf(errs.KindUnknownCommand, "%s: %s", MessageUnknownCommand, topic)
	}
	return commands.HelpCommand{Topic: topic}, nil
}
