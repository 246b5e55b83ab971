// Package commands contains the typed command values produced by the parser
// and executed against the model. Commands are plain values carrying only
// parsed parameters, comparable by structural equality.
package commands

import (
	"github.com/ersonp/eventbook-core/internal/domain/services"
)

// Result is the user-visible outcome of a successfully executed command.
type Result struct {
	// Message is the single line shown to the user.
	Message string
	// StateChanged marks commands that mutated the store; the executor
	// persists a snapshot after them.
	StateChanged bool
	// ShowHelp asks the UI to display the full usage text.
	ShowHelp bool
	// Exit asks the input loop to terminate.
	Exit bool
}

// Command is a parsed, typed intent from one input line. Execute applies it
// as a single transaction against the model: either the mutation applies and
// all invariants hold, or an error is returned and the model is untouched.
type Command interface {
	Execute(model *services.Model) (*Result, error)

	// CanonicalString renders the command in its input grammar form; parsing
	// it again yields an equal command value.
	CanonicalString() string
}

// Index is a one-based index into a filtered view, as supplied by the user.
type Index int

// OneBased returns the index as the user typed it.
func (i Index) OneBased() int { return int(i) }

// ZeroBased returns the index for slice access.
func (i Index) ZeroBased() int { return int(i) - 1 }
