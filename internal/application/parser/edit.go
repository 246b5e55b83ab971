package parser

import (
	"github.com/ersonp/eventbook-core/internal/application/commands"
	"github.com/ersonp/eventbook-core/internal/domain/entities"
)

func parseEdit(entity EntityType, args string) (commands.Command, error) {
	switch entity {
	case EntityPerson:
		return parseEditPerson(args)
	case EntityEvent:
		return parseEditEvent(args)
	default:
		return nil, invalidFormat(EditUsage)
	}
}

func parseEditPerson(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)
	index, ok := parseIndex(m.Preamble())
	if !ok {
		return nil, invalidFormat(EditPersonUsage)
	}
	if msg := m.VerifyNoDuplicates(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress); msg != "" {
		return nil, invalidFormat(msg)
	}

	var d commands.EditPersonDescriptor
	if v, ok := m.Value(PrefixName); ok {
		name, err := entities.NewName(v)
		if err != nil {
			return nil, err
		}
		d.Name = &name
	}
	if v, ok := m.Value(PrefixPhone); ok {
		phone, err := entities.NewPhone(v)
		if err != nil {
			return nil, err
		}
		d.Phone = &phone
	}
	if v, ok := m.Value(PrefixEmail); ok {
		email, err := entities.NewEmail(v)
		if err != nil {
			return nil, err
		}
		d.Email = &email
	}
	if v, ok := m.Value(PrefixAddress); ok {
		address, err := entities.NewAddress(v)
		if err != nil {
			return nil, err
		}
		d.Address = &address
	}
	tags, err := parseTagOverlay(m.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}
	d.Tags = tags

	if !d.IsAnyFieldEdited() {
		return nil, commands.ErrNoFieldEdited
	}
	return commands.EditPersonCommand{Index: index, Descriptor: d}, nil
}

func parseEditEvent(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixName, PrefixAddress, PrefixStartTime, PrefixTag)
	index, ok := parseIndex(m.Preamble())
	if !ok {
		return nil, invalidFormat(EditEventUsage)
	}
	if msg := m.VerifyNoDuplicates(PrefixName, PrefixAddress, PrefixStartTime); msg != "" {
		return nil, invalidFormat(msg)
	}

	var d commands.EditEventDescriptor
	if v, ok := m.Value(PrefixName); ok {
		name, err := entities.NewName(v)
		if err != nil {
			return nil, err
		}
		d.Name = &name
	}
	if v, ok := m.Value(PrefixAddress); ok {
		address, err := entities.NewAddress(v)
		if err != nil {
			return nil, err
		}
		d.Address = &address
	}
	if v, ok := m.Value(PrefixStartTime); ok {
		start, err := entities.NewDateTime(v)
		if err != nil {
			return nil, err
		}
		d.StartTime = &start
	}
	tags, err := parseTagOverlay(m.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}
	d.Tags = tags

	if !d.IsAnyFieldEdited() {
		return nil, commands.ErrNoFieldEdited
	}
	return commands.EditEventCommand{Index: index, Descriptor: d}, nil
}
