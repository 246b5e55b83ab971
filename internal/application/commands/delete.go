package commands

import (
	"fmt"

	"github.com/ersonp/eventbook-core/internal/domain/services"
)

// DeletePersonCommand removes the person at the given visible index,
// cascading link removal.
type DeletePersonCommand struct {
	Index Index
}

// Execute resolves the index against the visible person list and deletes.
func (c DeletePersonCommand) Execute(model *services.Model) (*Result, error) {
	target, ok := model.PersonAt(c.Index.ZeroBased())
	if !ok {
		return nil, ErrInvalidPersonIndex
	}
	if err := model.DeletePerson(target); err != nil {
		return nil, err
	}
	return &Result{
		Message:      fmt.Sprintf(MessageDeletePersonSuccess, target),
		StateChanged: true,
	}, nil
}

// CanonicalString renders the command in input grammar form.
func (c DeletePersonCommand) CanonicalString() string {
	return fmt.Sprintf("delete p %d", c.Index.OneBased())
}

// DeleteEventCommand removes the event at the given visible index, cascading
// link removal.
type DeleteEventCommand struct {
	Index Index
}

// Execute resolves the index against the visible event list and deletes.
func (c DeleteEventCommand) Execute(model *services.Model) (*Result, error) {
	target, ok := model.EventAt(c.Index.ZeroBased())
	if !ok {
		return nil, ErrInvalidEventIndex
	}
	if err := model.DeleteEvent(target); err != nil {
		return nil, err
	}
	return &Result{
		Message:      fmt.Sprintf(MessageDeleteEventSuccess, target),
		StateChanged: true,
	}, nil
}

// CanonicalString renders the command in input grammar form.
func (c DeleteEventCommand) CanonicalString() string {
	return fmt.Sprintf("delete e %d", c.Index.OneBased())
}
