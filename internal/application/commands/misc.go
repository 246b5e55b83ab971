package commands

import (
	"github.com/ersonp/eventbook-core/internal/domain/services"
)

// ClearCommand empties the entity store and the link manager.
type ClearCommand struct{}

// Execute clears all state atomically.
func (c ClearCommand) Execute(model *services.Model) (*Result, error) {
	model.Clear()
	return &Result{Message: MessageCleared, StateChanged: true}, nil
}

// CanonicalString renders the command in input grammar form.
func (c ClearCommand) CanonicalString() string { return "clear" }

// HelpCommand asks the UI to show the usage text.
type HelpCommand struct{}

// Execute returns a help result; the input loop renders the usage text.
func (c HelpCommand) Execute(_ *services.Model) (*Result, error) {
	return &Result{Message: MessageHelp, ShowHelp: true}, nil
}

// CanonicalString renders the command in input grammar form.
func (c HelpCommand) CanonicalString() string { return "help" }

// ExitCommand terminates the input loop.
type ExitCommand struct{}

// Execute returns an exit result.
func (c ExitCommand) Execute(_ *services.Model) (*Result, error) {
	return &Result{Message: MessageExit, Exit: true}, nil
}

// CanonicalString renders the command in input grammar form.
func (c ExitCommand) CanonicalString() string { return "exit" }
