package parser

import (
	"github.com/ersonp/eventbook-core/internal/application/commands"
)

func parseDelete(entity EntityType, args string) (commands.Command, error) {
	m := Tokenize(args)
	index, ok := parseIndex(m.Preamble())
	if !ok {
		return nil, invalidFormat(DeleteUsage)
	}
	switch entity {
	case EntityPerson:
		return commands.DeletePersonCommand{Index: index}, nil
	case EntityEvent:
		return commands.DeleteEventCommand{Index: index}, nil
	default:
		return nil, invalidFormat(DeleteUsage)
	}
}
