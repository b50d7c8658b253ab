package commands

import (
	"fmt"

	"github.com/networkbook/networkbook/internal/edit"
	"github.com/networkbook/networkbook/internal/errs"
	"github.com/networkbook/networkbook/internal/logger"
	"github.com/networkbook/networkbook/internal/model"
)

// CreateCommand adds a new person.
type CreateCommand struct {
	Person model.Person
}

func (c CreateCommand) Word() string { return "create" }

func (c CreateCommand) Execute(m model.Model) (Result, error) {
	if m.HasPerson(c.Person) {
		return Result{}, errs.New(errs.KindDuplicatePerson, MessageDuplicatePerson)
	}
	if err := m.AddPerson(c.Person); err != nil {
		return Result{}, err
	}
	logger.Logger.Info("person created", "name", c.Person.Name.String())
	return Result{Feedback: fmt.Sprintf(MessageCreateSuccess, c.Person)}, nil
}

// AddCommand appends details to the person at Index.
type AddCommand struct {
	Index      model.Index
	Descriptor edit.Descriptor
}

func (c AddCommand) Word() string { return "add" }

func (c AddCommand) Execute(m model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	updated, err := c.Descriptor.AppendTo(target)
	if err != nil {
		return Result{}, err
	}
	if err := m.SetPerson(target, updated); err != nil {
		return Result{}, err
	}
	logger.Logger.Info("details added", "index", c.Index.OneBased(), "name", updated.Name.String())
	return Result{Feedback: fmt.Sprintf(MessageAddSuccess, updated)}, nil
}

// EditCommand replaces fields of the person at Index.
type EditCommand struct {
	Index      model.Index
	Descriptor edit.Descriptor
}

func (c EditCommand) Word() string { return "edit" }

func (c EditCommand) Execute(m model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited := c.Descriptor.ApplyTo(target)
	if !target.IsSamePerson(edited) && m.HasPerson(edited) {
		return Result{}, errs.New(errs.KindDuplicatePerson, MessageDuplicatePerson)
	}
	if err := m.SetPerson(target, edited); err != nil {
		return Result{}, err
	}
	logger.Logger.Info("person edited", "index", c.Index.OneBased(), "name", edited.Name.String(),
		"cleared", c.Descriptor.ClearedFields())
	return Result{Feedback: fmt.Sprintf(MessageEditSuccess, edited)}, nil
}

// DeleteCommand removes the person at Index.
type DeleteCommand struct {
	Index model.Index
}

func (c DeleteCommand) Word() string { return "delete" }

func (c DeleteCommand) Execute(m model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeletePerson(target); err != nil {
		return Result{}, err
	}
	logger.Logger.Info("person deleted", "index", c.Index.OneBased(), "name", target.Name.String())
	return Result{Feedback: fmt.Sprintf(MessageDeleteSuccess, target)}, nil
}

// ClearCommand removes every person.
type ClearCommand struct{}

func (ClearCommand) Word() string { return "clear" }

func (ClearCommand) Execute(m model.Model) (Result, error) {
	m.ClearPersons()
	logger.Logger.Info("network book cleared")
	return Result{Feedback: MessageClearSuccess}, nil
}
