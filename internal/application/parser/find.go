package parser

import (
	"strings"

	"github.com/ersonp/eventbook-core/internal/application/commands"
)

func parseFind(entity EntityType, args string) (commands.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(FindUsage)
	}
	switch entity {
	case EntityPerson:
		return commands.FindPersonCommand{Keywords: keywords}, nil
	case EntityEvent:
		return commands.FindEventCommand{Keywords: keywords}, nil
	default:
		return nil, invalidFormat(FindUsage)
	}
}
