package commands

import "github.com/networkbook/networkbook/internal/model"

// HelpCommand asks the presentation layer to show help, optionally for one command.
type HelpCommand struct {
	Topic string
}

func (c HelpCommand) Word() string { return "help" }

func (c HelpCommand) Execute(model.Model) (Result, error) {
	if c.Topic == "" {
		return Result{Feedback: MessageShowingHelp, Action: ActionHelp}, nil
	}
	return Result{Feedback: UsageMessage(c.Topic), Action: ActionHelp, Topic: c.Topic}, nil
}

// ExitCommand ends the session.
type ExitCommand struct{}

func (ExitCommand) Word() string { return "exit" }

func (ExitCommand) Execute(model.Model) (Result, error) {
	return Result{Feedback: MessageExit, Action: ActionExit}, nil
}
