package parser

import (
	"github.com/ersonp/eventbook-core/internal/application/commands"
	"github.com/ersonp/eventbook-core/internal/domain/entities"
)

func parseAdd(entity EntityType, args string) (commands.Command, error) {
	switch entity {
	case EntityPerson:
		return parseAddPerson(args)
	case EntityEvent:
		return parseAddEvent(args)
	default:
		return nil, invalidFormat(AddUsage)
	}
}

func parseAddPerson(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)
	if !allPresent(m, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress) || m.Preamble() != "" {
		return nil, invalidFormat(AddUsage)
	}
	if msg := m.VerifyNoDuplicates(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress); msg != "" {
		return nil, invalidFormat(msg)
	}

	nameValue, _ := m.Value(PrefixName)
	name, err := entities.NewName(nameValue)
	if err != nil {
		return nil, err
	}
	phoneValue, _ := m.Value(PrefixPhone)
	phone, err := entities.NewPhone(phoneValue)
	if err != nil {
		return nil, err
	}
	emailValue, _ := m.Value(PrefixEmail)
	email, err := entities.NewEmail(emailValue)
	if err != nil {
		return nil, err
	}
	addressValue, _ := m.Value(PrefixAddress)
	address, err := entities.NewAddress(addressValue)
	if err != nil {
		return nil, err
	}
	tags, err := entities.NewTagSet(m.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}

	return commands.AddPersonCommand{Person: entities.Person{
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
		Tags:    tags,
	}}, nil
}

func parseAddEvent(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixName, PrefixAddress, PrefixStartTime, PrefixTag)
	if !allPresent(m, PrefixName, PrefixAddress, PrefixStartTime) || m.Preamble() != "" {
		return nil, invalidFormat(AddUsage)
	}
	if msg := m.VerifyNoDuplicates(PrefixName, PrefixAddress, PrefixStartTime); msg != "" {
		return nil, invalidFormat(msg)
	}

	event, err := parseEventIdentity(m, true)
	if err != nil {
		return nil, err
	}
	return commands.AddEventCommand{Event: event}, nil
}

// parseEventIdentity builds an event from the n/ a/ s/ values, optionally
// with tags. Shared by the add, link, and unlink parsers.
func parseEventIdentity(m *ArgumentMultimap, withTags bool) (entities.Event, error) {
	nameValue, _ := m.Value(PrefixName)
	name, err := entities.NewName(nameValue)
	if err != nil {
		return entities.Event{}, err
	}
	addressValue, _ := m.Value(PrefixAddress)
	address, err := entities.NewAddress(addressValue)
	if err != nil {
		return entities.Event{}, err
	}
	startValue, _ := m.Value(PrefixStartTime)
	start, err := entities.NewDateTime(startValue)
	if err != nil {
		return entities.Event{}, err
	}
	event := entities.Event{Name: name, Address: address, StartTime: start}
	if withTags {
		tags, err := entities.NewTagSet(m.AllValues(PrefixTag))
		if err != nil {
			return entities.Event{}, err
		}
		event.Tags = tags
	}
	return event, nil
}
