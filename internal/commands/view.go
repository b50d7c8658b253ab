package commands

import (
	"fmt"
	"strings"

	"github.com/networkbook/networkbook/internal/model"
)

// ListCommand shows every person.
type ListCommand struct{}

func (ListCommand) Word() string { return "list" }

func (ListCommand) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredPersonList(nil)
	return Result{Feedback: MessageListSuccess}, nil
}

// FindCommand shows persons whose name contains any keyword.
type FindCommand struct {
	Keywords []string
}

func (c FindCommand) Word() string { return "find" }

func (c FindCommand) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredPersonList(NameContainsKeywords(c.Keywords))
	return Result{Feedback: fmt.Sprintf(MessagePersonsListed, len(m.FilteredPersonList()))}, nil
}

// NameContainsKeywords matches persons whose name contains any of keywords,
// ignoring case. Blank keywords never match.
func NameContainsKeywords(keywords []string) func(model.Person) bool {
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			lowered = append(lowered, k)
		}
	}
	return func(p model.Person) bool {
		name := p.Name.Key()
		for _, k := range lowered {
			if strings.Contains(name, k) {
				return true
			}
		}
		return false
	}
}

// SortCommand orders the displayed list.
type SortCommand struct {
	Field model.SortField
	Order model.SortOrder
}

func (c SortCommand) Word() string { return "sort" }

func (c SortCommand) Execute(m model.Model) (Result, error) {
	m.SortFilteredPersonList(model.LessFunc(c.Field, c.Order))
	return Result{Feedback: fmt.Sprintf(MessageSortSuccess, c.Field, c.Order)}, nil
}

// FilterCommand carries a parsed filter request. Filtering itself is not
// implemented; executing it only reports that.
type FilterCommand struct {
	Field string
	// Finished is nil when fin/ was not given.
	Finished *bool
}

func (c FilterCommand) Word() string { return "filter" }

func (c FilterCommand) Execute(model.Model) (Result, error) {
	return Result{Feedback: MessageFilterPending}, nil
}
