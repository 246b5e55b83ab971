package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ersonp/eventbook-core/internal/domain/entities"
	"github.com/ersonp/eventbook-core/internal/domain/services"
)

// LinkCommand links the person at the given visible index to the stored event
// matching the carried event identity.
type LinkCommand struct {
	Index Index
	Event entities.Event
}

// Execute resolves the person index and the event identity, then adds the
// link.
func (c LinkCommand) Execute(model *services.Model) (*Result, error) {
	person, ok := model.PersonAt(c.Index.ZeroBased())
	if !ok {
		return nil, ErrInvalidPersonIndex
	}
	event, ok := model.GetEvent(c.Event)
	if !ok {
		return nil, ErrEventNotFound
	}
	if err := model.Link(person, event); err != nil {
		if errors.Is(err, entities.ErrDuplicateLink) {
			return nil, ErrDuplicateLink
		}
		return nil, err
	}
	return &Result{
		Message:      fmt.Sprintf(MessageLinkSuccess, event),
		StateChanged: true,
	}, nil
}

// CanonicalString renders the command in input grammar form.
func (c LinkCommand) CanonicalString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "link %d n/%s a/%s s/%s", c.Index.OneBased(), c.Event.Name, c.Event.Address, c.Event.StartTime)
	for _, t := range c.Event.Tags {
		fmt.Fprintf(&b, " t/%s", t)
	}
	return b.String()
}

// UnlinkCommand removes the link between the person at the given visible
// index and the stored event matching the carried identity.
type UnlinkCommand struct {
	Index Index
	Event entities.Event
}

// Execute resolves the person index and the event identity, then removes the
// link.
func (c UnlinkCommand) Execute(model *services.Model) (*Result, error) {
	person, ok := model.PersonAt(c.Index.ZeroBased())
	if !ok {
		return nil, ErrInvalidPersonIndex
	}
	event, ok := model.GetEvent(c.Event)
	if !ok {
		return nil, ErrEventNotFound
	}
	if err := model.Unlink(person, event); err != nil {
		if errors.Is(err, entities.ErrLinkNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	return &Result{
		Message:      fmt.Sprintf(MessageUnlinkSuccess, event),
		StateChanged: true,
	}, nil
}

// CanonicalString renders the command in input grammar form.
func (c UnlinkCommand) CanonicalString() string {
	return fmt.Sprintf("unlink %d n/%s a/%s s/%s", c.Index.OneBased(), c.Event.Name, c.Event.Address, c.Event.StartTime)
}
