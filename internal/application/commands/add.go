package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ersonp/eventbook-core/internal/domain/entities"
	"github.com/ersonp/eventbook-core/internal/domain/services"
)

// AddPersonCommand inserts a new person into the address book.
type AddPersonCommand struct {
	Person entities.Person
}

// Execute adds the person, rejecting identity duplicates.
func (c AddPersonCommand) Execute(model *services.Model) (*Result, error) {
	if err := model.AddPerson(c.Person); err != nil {
		if errors.Is(err, entities.ErrDuplicatePerson) {
			return nil, ErrDuplicatePerson
		}
		return nil, err
	}
	return &Result{
		Message:      fmt.Sprintf(MessageAddPersonSuccess, c.Person),
		StateChanged: true,
	}, nil
}

// CanonicalString renders the command in input grammar form.
func (c AddPersonCommand) CanonicalString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "add p n/%s p/%s e/%s a/%s", c.Person.Name, c.Person.Phone, c.Person.Email, c.Person.Address)
	for _, t := range c.Person.Tags {
		fmt.Fprintf(&b, " t/%s", t)
	}
	return b.String()
}

// AddEventCommand inserts a new event into the address book.
type AddEventCommand struct {
	Event entities.Event
}

// Execute adds the event, rejecting identity duplicates.
func (c AddEventCommand) Execute(model *services.Model) (*Result, error) {
	if err := model.AddEvent(c.Event); err != nil {
		if errors.Is(err, entities.ErrDuplicateEvent) {
			return nil, ErrDuplicateEvent
		}
		return nil, err
	}
	return &Result{
		Message:      fmt.Sprintf(MessageAddEventSuccess, c.Event),
		StateChanged: true,
	}, nil
}

// CanonicalString renders the command in input grammar form.
func (c AddEventCommand) CanonicalString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "add e n/%s a/%s s/%s", c.Event.Name, c.Event.Address, c.Event.StartTime)
	for _, t := range c.Event.Tags {
		fmt.Fprintf(&b, " t/%s", t)
	}
	return b.String()
}
