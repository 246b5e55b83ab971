package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ersonp/eventbook-core/internal/domain/entities"
	"github.com/ersonp/eventbook-core/internal/domain/services"
)

// EditPersonDescriptor is a sparse overlay of person fields. Nil fields keep
// the current value; a non-nil empty Tags slice clears the tag set.
type EditPersonDescriptor struct {
	Name    *entities.Name
	Phone   *entities.Phone
	Email   *entities.Email
	Address *entities.Address
	Tags    *[]entities.Tag
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditPersonDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil || d.Tags != nil
}

// Apply overlays the descriptor onto a person.
func (d EditPersonDescriptor) Apply(p entities.Person) entities.Person {
	if d.Name != nil {
		p.Name = *d.Name
	}
	if d.Phone != nil {
		p.Phone = *d.Phone
	}
	if d.Email != nil {
		p.Email = *d.Email
	}
	if d.Address != nil {
		p.Address = *d.Address
	}
	if d.Tags != nil {
		p.Tags = *d.Tags
	}
	return p
}

// EditPersonCommand edits the person at the given visible index.
type EditPersonCommand struct {
	Index      Index
	Descriptor EditPersonDescriptor
}

// Execute resolves the index against the visible list, overlays the
// descriptor, and replaces the person. Links referencing the old identity are
// rewritten by the model.
func (c EditPersonCommand) Execute(model *services.Model) (*Result, error) {
	if !c.Descriptor.IsAnyFieldEdited() {
		return nil, ErrNoFieldEdited
	}
	target, ok := model.PersonAt(c.Index.ZeroBased())
	if !ok {
		return nil, ErrInvalidPersonIndex
	}
	edited := c.Descriptor.Apply(target)
	if err := model.SetPerson(target, edited); err != nil {
		if errors.Is(err, entities.ErrDuplicatePerson) {
			return nil, ErrDuplicatePerson
		}
		return nil, err
	}
	return &Result{
		Message:      fmt.Sprintf(MessageEditPersonSuccess, edited),
		StateChanged: true,
	}, nil
}

// CanonicalString renders the command in input grammar form.
func (c EditPersonCommand) CanonicalString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "edit p %d", c.Index.OneBased())
	if c.Descriptor.Name != nil {
		fmt.Fprintf(&b, " n/%s", *c.Descriptor.Name)
	}
	if c.Descriptor.Phone != nil {
		fmt.Fprintf(&b, " p/%s", *c.Descriptor.Phone)
	}
	if c.Descriptor.Email != nil {
		fmt.Fprintf(&b, " e/%s", *c.Descriptor.Email)
	}
	if c.Descriptor.Address != nil {
		fmt.Fprintf(&b, " a/%s", *c.Descriptor.Address)
	}
	writeTagOverlay(&b, c.Descriptor.Tags)
	return b.String()
}

// EditEventDescriptor is a sparse overlay of event fields.
type EditEventDescriptor struct {
	Name      *entities.Name
	Address   *entities.Address
	StartTime *entities.DateTime
	Tags      *[]entities.Tag
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditEventDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Address != nil || d.StartTime != nil || d.Tags != nil
}

// Apply overlays the descriptor onto an event.
func (d EditEventDescriptor) Apply(e entities.Event) entities.Event {
	if d.Name != nil {
		e.Name = *d.Name
	}
	if d.Address != nil {
		e.Address = *d.Address
	}
	if d.StartTime != nil {
		e.StartTime = *d.StartTime
	}
	if d.Tags != nil {
		e.Tags = *d.Tags
	}
	return e
}

// EditEventCommand edits the event at the given visible index.
type EditEventCommand struct {
	Index      Index
	Descriptor EditEventDescriptor
}

// Execute resolves the index, overlays the descriptor, and replaces the
// event. Linked persons are preserved across the identity change.
func (c EditEventCommand) Execute(model *services.Model) (*Result, error) {
	if !c.Descriptor.IsAnyFieldEdited() {
		return nil, ErrNoFieldEdited
	}
	target, ok := model.EventAt(c.Index.ZeroBased())
	if !ok {
		return nil, ErrInvalidEventIndex
	}
	edited := c.Descriptor.Apply(target)
	if err := model.SetEvent(target, edited); err != nil {
		if errors.Is(err, entities.ErrDuplicateEvent) {
			return nil, ErrDuplicateEvent
		}
		return nil, err
	}
	return &Result{
		Message:      fmt.Sprintf(MessageEditEventSuccess, edited),
		StateChanged: true,
	}, nil
}

// CanonicalString renders the command in input grammar form.
func (c EditEventCommand) CanonicalString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "edit e %d", c.Index.OneBased())
	if c.Descriptor.Name != nil {
		fmt.Fprintf(&b, " n/%s", *c.Descriptor.Name)
	}
	if c.Descriptor.Address != nil {
		fmt.Fprintf(&b, " a/%s", *c.Descriptor.Address)
	}
	if c.Descriptor.StartTime != nil {
		fmt.Fprintf(&b, " s/%s", *c.Descriptor.StartTime)
	}
	writeTagOverlay(&b, c.Descriptor.Tags)
	return b.String()
}

func writeTagOverlay(b *strings.Builder, tags *[]entities.Tag) {
	if tags == nil {
		return
	}
	if len(*tags) == 0 {
		b.WriteString(" t/")
		return
	}
	for _, t := range *tags {
		fmt.Fprintf(b, " t/%s", t)
	}
}
