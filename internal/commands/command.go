package commands

import (
	"github.com/networkbook/networkbook/internal/errs"
	"github.com/networkbook/networkbook/internal/model"
)

// UIAction tells the presentation layer what to do after a command, beyond
// showing its feedback.
type UIAction int

const (
	ActionNone UIAction = iota
	ActionHelp
	ActionExit
)

func (a UIAction) String() string {
	switch a {
	case ActionHelp:
		return "help"
	case ActionExit:
		return "exit"
	default:
		return "none"
	}
}

// Result is what a command hands back to the presentation layer.
type Result struct {
	Feedback string
	Action   UIAction
	// Topic is the command word help was requested for, if any.
	Topic string
}

// Command is a parsed, ready-to-run command.
type Command interface {
	// Word is the registry name of the command.
	Word() string
	// Execute runs the command against m. On error m is left unchanged.
	Execute(m model.Model) (Result, error)
}

const (
	MessageInvalidPersonIndex = "The person index provided is invalid"
	MessageDuplicatePerson    = "This person already exists in the network book."
	MessageNotEdited          = "At least one field to edit must be provided."
	MessageNothingToAdd       = "At least one field to add must be provided."

	MessageCreateSuccess = "New person added: %s"
	MessageAddSuccess    = "Added details to Person: %s"
	MessageEditSuccess   = "Edited Person: %s"
	MessageDeleteSuccess = "Deleted Person: %s"
	MessageListSuccess   = "Listed all persons"
	MessagePersonsListed = "%d persons listed!"
	MessageSortSuccess   = "Sorted by %s (%s)"
	MessageFilterPending = "To be implemented"
	MessageClearSuccess  = "Network book has been cleared!"
	MessageShowingHelp   = "Opened help window."
	MessageExit          = "Exiting Network Book as requested ..."
)

// personAt resolves index against the displayed list.
func personAt(m model.Model, index model.Index) (model.Person, error) {
	shown := m.FilteredPersonList()
	if !index.InRange(len(shown)) {
		return model.Person{}, errs.New(errs.KindInvalidIndex, MessageInvalidPersonIndex)
	}
	return shown[index.ZeroBased()], nil
}
